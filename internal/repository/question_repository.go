package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"quiz-forge/internal/domain"
	"quiz-forge/internal/util"
	"time"
)

var (
	questionTranslationColumns = []string{"id", "question_id", "language_code", "question_text", "explanation"}
	answerColumns              = []string{"id", "question_id", "is_correct", "display_order"}
	answerTranslationColumns   = []string{"id", "answer_id", "language_code", "answer_text"}
)

// QuestionDatabaseAdapter implements domain.QuestionRepository
type QuestionDatabaseAdapter struct {
	db DBTX
}

// NewQuestionDatabaseAdapter creates a new instance of QuestionDatabaseAdapter
func NewQuestionDatabaseAdapter(db DBTX) domain.QuestionRepository {
	return &QuestionDatabaseAdapter{db: db}
}

func (r *QuestionDatabaseAdapter) CountQuestionsByTheme(ctx context.Context, themeID string) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM questions WHERE theme_id = :1`, themeID); err != nil {
		return 0, fmt.Errorf("failed to count questions for theme %s: %w", themeID, err)
	}
	return count, nil
}

func (r *QuestionDatabaseAdapter) FindQuestionIDByText(ctx context.Context, lang, text string) (string, error) {
	query := `SELECT question_id "question_id" FROM question_translations
	WHERE language_code = :1 AND question_text = :2
	FETCH FIRST 1 ROWS ONLY`

	var id string
	if err := r.db.GetContext(ctx, &id, query, lang, text); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("failed to look up question text: %w", err)
	}
	return id, nil
}

func (r *QuestionDatabaseAdapter) InsertQuestion(ctx context.Context, q *domain.Question) error {
	if q == nil {
		return fmt.Errorf("cannot save nil question")
	}
	if q.ID == "" {
		q.ID = util.NewULID()
	}
	if q.CreatedAt.IsZero() {
		q.CreatedAt = time.Now()
	}

	query := `INSERT INTO questions (id, theme_id, concept_id, difficulty, times_used, created_at)
	VALUES (:1, :2, :3, :4, :5, :6)`
	if _, err := r.db.ExecContext(ctx, query, q.ID, q.ThemeID, q.ConceptID, string(q.Difficulty), q.TimesUsed, q.CreatedAt); err != nil {
		return fmt.Errorf("failed to insert question: %w", err)
	}
	return nil
}

func (r *QuestionDatabaseAdapter) InsertQuestionTranslations(ctx context.Context, rows []*domain.QuestionTranslation) (int64, error) {
	values := make([][]any, len(rows))
	for i, t := range rows {
		if t.ID == "" {
			t.ID = util.NewULID()
		}
		values[i] = []any{t.ID, t.QuestionID, t.LanguageCode, t.QuestionText, t.Explanation}
	}
	return execBatch(ctx, r.db, "question_translations", questionTranslationColumns, values)
}

func (r *QuestionDatabaseAdapter) InsertAnswers(ctx context.Context, rows []*domain.Answer) (int64, error) {
	values := make([][]any, len(rows))
	for i, a := range rows {
		if a.ID == "" {
			a.ID = util.NewULID()
		}
		values[i] = []any{a.ID, a.QuestionID, boolToNumber(a.IsCorrect), a.DisplayOrder}
	}
	return execBatch(ctx, r.db, "answers", answerColumns, values)
}

func (r *QuestionDatabaseAdapter) InsertAnswerTranslations(ctx context.Context, rows []*domain.AnswerTranslation) (int64, error) {
	values := make([][]any, len(rows))
	for i, t := range rows {
		if t.ID == "" {
			t.ID = util.NewULID()
		}
		values[i] = []any{t.ID, t.AnswerID, t.LanguageCode, t.AnswerText}
	}
	return execBatch(ctx, r.db, "answer_translations", answerTranslationColumns, values)
}

func (r *QuestionDatabaseAdapter) DeleteQuestion(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM questions WHERE id = :1`, id); err != nil {
		return fmt.Errorf("failed to delete question %s: %w", id, err)
	}
	return nil
}

func (r *QuestionDatabaseAdapter) DeleteQuestionTranslations(ctx context.Context, questionID string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM question_translations WHERE question_id = :1`, questionID); err != nil {
		return fmt.Errorf("failed to delete translations of question %s: %w", questionID, err)
	}
	return nil
}

func (r *QuestionDatabaseAdapter) DeleteAnswers(ctx context.Context, questionID string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM answers WHERE question_id = :1`, questionID); err != nil {
		return fmt.Errorf("failed to delete answers of question %s: %w", questionID, err)
	}
	return nil
}

func (r *QuestionDatabaseAdapter) DeleteAnswerTranslations(ctx context.Context, answerIDs []string) error {
	if len(answerIDs) == 0 {
		return nil
	}
	args := make([]any, len(answerIDs))
	for i, id := range answerIDs {
		args[i] = id
	}
	query := fmt.Sprintf(`DELETE FROM answer_translations WHERE answer_id IN (%s)`, placeholders(1, len(answerIDs)))
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to delete answer translations: %w", err)
	}
	return nil
}
