package quizgen

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"quiz-forge/internal/domain"
	"strings"
)

// stripCodeFences removes a surrounding markdown code fence, if any.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```json") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimSpace(s)
	} else if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSpace(s)
	}
	if strings.HasSuffix(s, "```") {
		s = strings.TrimSuffix(s, "```")
		s = strings.TrimSpace(s)
	}
	return s
}

// unmarshalObject decodes a model reply into v. When the de-fenced text is not
// valid JSON, the outermost {...} span is tried once.
func unmarshalObject(raw string, v any) error {
	text := stripCodeFences(raw)
	err := json.Unmarshal([]byte(text), v)
	if err == nil {
		return nil
	}

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return err
	}
	if spanErr := json.Unmarshal([]byte(text[start:end+1]), v); spanErr != nil {
		return err
	}
	return nil
}

// ParseConcept extracts the concept proposal from a model reply.
func ParseConcept(raw string) (*domain.ConceptProposal, error) {
	var p domain.ConceptProposal
	if err := unmarshalObject(raw, &p); err != nil {
		return nil, domain.NewMalformedModelOutputError("Failed to parse concept JSON", err)
	}

	p.Concept = strings.TrimSpace(p.Concept)
	p.ConceptFR = strings.TrimSpace(p.ConceptFR)
	if p.Concept == "" {
		return nil, domain.NewMalformedModelOutputError("Concept reply has no concept", nil)
	}
	if p.ConceptFR == "" {
		p.ConceptFR = p.Concept
	}
	return &p, nil
}

type questionsEnvelope struct {
	Questions json.RawMessage `json:"questions"`
}

var errQuestionsNotArray = errors.New("questions is not an array")

// ParseQuestions extracts the candidate list from a model reply. Elements that
// do not decode are kept with DecodeErr set so they can be rejected one by one.
func ParseQuestions(raw string) ([]*domain.CandidateQuestion, error) {
	var env questionsEnvelope
	if err := unmarshalObject(raw, &env); err != nil {
		return nil, domain.NewMalformedModelOutputError("Failed to parse questions JSON", err)
	}

	trimmed := bytes.TrimSpace(env.Questions)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, domain.NewMalformedModelOutputError("Questions reply has no questions array", errQuestionsNotArray)
	}

	var elems []json.RawMessage
	if err := json.Unmarshal(trimmed, &elems); err != nil {
		return nil, domain.NewMalformedModelOutputError("Failed to parse questions array", err)
	}

	candidates := make([]*domain.CandidateQuestion, 0, len(elems))
	for i, elem := range elems {
		c := &domain.CandidateQuestion{}
		if err := json.Unmarshal(elem, c); err != nil {
			c = &domain.CandidateQuestion{DecodeErr: fmt.Errorf("question %d: %w", i, err)}
		}
		candidates = append(candidates, c)
	}
	return candidates, nil
}
