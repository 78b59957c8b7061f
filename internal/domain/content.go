package domain

import (
	"strings"
	"time"
)

// Language codes every question and answer must be translated into.
const (
	LangEN = "en"
	LangFR = "fr"
)

// Difficulty is the intended obscurity tier of a question.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Difficulties lists the tiers in prompt and report order.
var Difficulties = []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}

// ParseDifficulty reports whether label names a known tier.
func ParseDifficulty(label string) (Difficulty, bool) {
	switch d := Difficulty(strings.ToLower(strings.TrimSpace(label))); d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return d, true
	default:
		return "", false
	}
}

// Theme is a top-level category. Themes exist before any pipeline run.
type Theme struct {
	ID    string
	Icon  string
	Names map[string]string // language code -> display name
}

// Name returns the localized name or fallback when none is recorded.
func (t *Theme) Name(lang, fallback string) string {
	if t == nil || t.Names == nil {
		return fallback
	}
	if n := strings.TrimSpace(t.Names[lang]); n != "" {
		return n
	}
	return fallback
}

// Concept is a named subject under a theme that one batch of questions covers.
type Concept struct {
	ID        string
	Name      string
	NameEN    string
	NameFR    string
	ThemeID   string
	CreatedAt time.Time
}

// Question is the language-neutral part of a quiz question.
type Question struct {
	ID         string
	ThemeID    string
	ConceptID  string
	Difficulty Difficulty
	TimesUsed  int
	CreatedAt  time.Time
}

// QuestionTranslation holds the text of a question in one language.
type QuestionTranslation struct {
	ID           string
	QuestionID   string
	LanguageCode string
	QuestionText string
	Explanation  string
}

// Answer is one of the four options of a question.
type Answer struct {
	ID           string
	QuestionID   string
	IsCorrect    bool
	DisplayOrder int
}

// AnswerTranslation holds the text of an answer option in one language.
type AnswerTranslation struct {
	ID           string
	AnswerID     string
	LanguageCode string
	AnswerText   string
}
