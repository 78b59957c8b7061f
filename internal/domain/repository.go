package domain

import "context"

// ThemeRepository reads the pre-existing themes.
type ThemeRepository interface {
	// ListThemes returns themes ordered by id. A non-empty themeID narrows the
	// result to that theme.
	ListThemes(ctx context.Context, themeID string) ([]*Theme, error)

	// GetThemeName returns the theme's display name in lang, or "" if none.
	GetThemeName(ctx context.Context, themeID, lang string) (string, error)
}

// ConceptRepository persists concepts.
type ConceptRepository interface {
	// ListConceptNamesByTheme returns every concept name of the theme, newest first.
	ListConceptNamesByTheme(ctx context.Context, themeID string) ([]string, error)
	InsertConcept(ctx context.Context, concept *Concept) error
	// DeleteConcept is idempotent.
	DeleteConcept(ctx context.Context, id string) error
}

// QuestionRepository persists questions and their dependent rows. Batch
// inserts return the number of rows the store confirmed. Deletes are
// idempotent: removing rows that do not exist is not an error.
type QuestionRepository interface {
	CountQuestionsByTheme(ctx context.Context, themeID string) (int, error)
	// FindQuestionIDByText returns the id of a question whose translation in
	// lang has exactly text, or "" if there is none.
	FindQuestionIDByText(ctx context.Context, lang, text string) (string, error)

	InsertQuestion(ctx context.Context, q *Question) error
	InsertQuestionTranslations(ctx context.Context, rows []*QuestionTranslation) (int64, error)
	InsertAnswers(ctx context.Context, rows []*Answer) (int64, error)
	InsertAnswerTranslations(ctx context.Context, rows []*AnswerTranslation) (int64, error)

	DeleteQuestion(ctx context.Context, id string) error
	DeleteQuestionTranslations(ctx context.Context, questionID string) error
	DeleteAnswers(ctx context.Context, questionID string) error
	DeleteAnswerTranslations(ctx context.Context, answerIDs []string) error
}

// UserStatsRepository reads the streak state used by reminders.
type UserStatsRepository interface {
	// ListStreakCandidates returns users with current_streak >= minStreak whose
	// timezone offset is one of offsets.
	ListStreakCandidates(ctx context.Context, minStreak int, offsets []int) ([]*UserStats, error)
}

// PushTokenRepository reads registered device tokens.
type PushTokenRepository interface {
	ListTokens(ctx context.Context, userID string) ([]string, error)
}
