package repository

import (
	"context"
	"fmt"
	"quiz-forge/internal/domain"
	"quiz-forge/internal/util"
	"time"
)

// ConceptDatabaseAdapter implements domain.ConceptRepository
type ConceptDatabaseAdapter struct {
	db DBTX
}

// NewConceptDatabaseAdapter creates a new instance of ConceptDatabaseAdapter
func NewConceptDatabaseAdapter(db DBTX) domain.ConceptRepository {
	return &ConceptDatabaseAdapter{db: db}
}

// ListConceptNamesByTheme returns every concept name of the theme, newest first.
func (r *ConceptDatabaseAdapter) ListConceptNamesByTheme(ctx context.Context, themeID string) ([]string, error) {
	query := `SELECT concept "concept" FROM question_concepts
	WHERE theme_id = :1
	ORDER BY created_at DESC, id DESC`

	names := []string{}
	if err := r.db.SelectContext(ctx, &names, query, themeID); err != nil {
		return nil, fmt.Errorf("failed to list concepts for theme %s: %w", themeID, err)
	}
	return names, nil
}

// InsertConcept assigns an id and timestamp when they are unset.
func (r *ConceptDatabaseAdapter) InsertConcept(ctx context.Context, c *domain.Concept) error {
	if c == nil {
		return fmt.Errorf("cannot save nil concept")
	}
	if c.ID == "" {
		c.ID = util.NewULID()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
	}

	query := `INSERT INTO question_concepts (id, concept, concept_en, concept_fr, theme_id, created_at)
	VALUES (:1, :2, :3, :4, :5, :6)`
	if _, err := r.db.ExecContext(ctx, query, c.ID, c.Name, c.NameEN, c.NameFR, c.ThemeID, c.CreatedAt); err != nil {
		return fmt.Errorf("failed to insert concept %q: %w", c.Name, err)
	}
	return nil
}

func (r *ConceptDatabaseAdapter) DeleteConcept(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM question_concepts WHERE id = :1`, id); err != nil {
		return fmt.Errorf("failed to delete concept %s: %w", id, err)
	}
	return nil
}
