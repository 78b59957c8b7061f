package quizgen

import (
	"fmt"
	"quiz-forge/internal/domain"
	"strings"
)

// BuildConceptPrompt asks for one new broad concept for themeName. At most
// maxAvoid of usedConcepts are listed as forbidden.
func BuildConceptPrompt(themeName string, usedConcepts []string, maxAvoid int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "You are helping create quiz questions for a %q themed quiz app for a GENERAL AUDIENCE.\n\n", themeName)

	listed := usedConcepts
	if maxAvoid >= 0 && len(listed) > maxAvoid {
		listed = listed[:maxAvoid]
	}
	if len(listed) > 0 {
		b.WriteString("CRITICAL: these concepts have ALREADY been covered:\n")
		for i, c := range listed {
			fmt.Fprintf(&b, "%d. %s\n", i+1, c)
		}
		b.WriteString("\nYou MUST choose a COMPLETELY DIFFERENT concept that is not in this list.\n\n")
	}

	fmt.Fprintf(&b, "Task: suggest ONE specific, interesting concept related to %q.\n\n", themeName)
	b.WriteString(`Requirements:
- BROAD and WELL-KNOWN, not too specific
- a general topic that allows questions from multiple angles
- recognizable by most people
`)
	fmt.Fprintf(&b, "- related to %s\n", themeName)
	b.WriteString(`- allows diverse questions at different difficulty levels
- COMPLETELY DIFFERENT from every concept listed above

Examples of GOOD concepts (broad):
- "The Legend of Zelda" (not "The Legend of Zelda: Ocarina of Time")
- "World War II" (not "The Battle of Stalingrad")
- "The Solar System" (not "Jupiter's Great Red Spot")
- "Vincent van Gogh" (not "Vincent van Gogh's Starry Night")

Examples of BAD concepts (too narrow):
- "The Legend of Zelda: Ocarina of Time Water Temple"
- "The Third Punic War's naval tactics"
- "Cytochrome P450 enzyme family"

Examples of BAD concepts (too basic):
- "Colors", "Numbers", "Animals"

Respond ONLY with valid JSON (no markdown):

{
  "concept": "Concept name in English",
  "concept_fr": "Nom du concept en français"
}`)

	return b.String()
}

// BuildQuestionsPrompt asks for split.Total() bilingual questions about concept.
func BuildQuestionsPrompt(concept, themeName string, split domain.DifficultySplit) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Generate %d diverse and high-quality quiz questions about %q (theme: %s).\n\n", split.Total(), concept, themeName)

	b.WriteString("CRITICAL REQUIREMENTS:\n")
	fmt.Fprintf(&b, "- ALL questions MUST be specifically about %q\n", concept)
	b.WriteString("- Questions must be DIVERSE (different aspects, angles and perspectives)\n")
	fmt.Fprintf(&b, "- Difficulty distribution: %d EASY, %d MEDIUM, %d HARD\n", split.Easy, split.Medium, split.Hard)
	b.WriteString(`- Factually accurate and verifiable
- 4 answers per question, exactly 1 correct
- Interesting and educational

Difficulty guidelines:
`)
	fmt.Fprintf(&b, "- EASY (%d questions): requires genuine knowledge of %q, not common sense. Someone unfamiliar with the topic must not be able to guess the answer.\n", split.Easy, concept)
	b.WriteString("  Good: \"What is the main weapon used by Link in The Legend of Zelda?\"\n")
	b.WriteString("  Bad: \"What color is the sky?\" or \"Who is the main character of Zelda?\"\n")
	fmt.Fprintf(&b, "- MEDIUM (%d questions): known by about 40-50%% of people with some interest in the theme.\n", split.Medium)
	b.WriteString("  Example: \"What year did World War II end?\"\n")
	fmt.Fprintf(&b, "- HARD (%d questions): specific details known by about 15-25%% of people, enthusiasts and experts only.\n", split.Hard)
	b.WriteString("  Example: \"Which treaty ended World War I?\"\n\n")

	b.WriteString(`NEVER generate trivially obvious questions such as "What is X famous for?" or "Who is the creator of Y?".

RESPOND ONLY WITH VALID JSON (no markdown, no explanation):

{
  "questions": [
    {
      "question_en": "Question in English",
      "question_fr": "Question en français",
      "explanation_en": "Why the correct answer is correct (2-3 sentences)",
      "explanation_fr": "Explication en français (2-3 phrases)",
      "difficulty": "easy",
      "answers_en": [
        {"text": "Wrong answer 1", "is_correct": false},
        {"text": "Correct answer", "is_correct": true},
        {"text": "Wrong answer 2", "is_correct": false},
        {"text": "Wrong answer 3", "is_correct": false}
      ],
      "answers_fr": [
        {"text": "Mauvaise réponse 1", "is_correct": false},
        {"text": "Bonne réponse", "is_correct": true},
        {"text": "Mauvaise réponse 2", "is_correct": false},
        {"text": "Mauvaise réponse 3", "is_correct": false}
      ]
    }
  ]
}`)

	return b.String()
}
