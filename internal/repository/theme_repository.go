package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"quiz-forge/internal/domain"
	"quiz-forge/internal/repository/models"
)

// ThemeDatabaseAdapter implements domain.ThemeRepository
type ThemeDatabaseAdapter struct {
	db DBTX
}

// NewThemeDatabaseAdapter creates a new instance of ThemeDatabaseAdapter
func NewThemeDatabaseAdapter(db DBTX) domain.ThemeRepository {
	return &ThemeDatabaseAdapter{db: db}
}

func (r *ThemeDatabaseAdapter) ListThemes(ctx context.Context, themeID string) ([]*domain.Theme, error) {
	query := `SELECT id "id", icon "icon", created_at "created_at" FROM themes`
	args := []any{}
	if themeID != "" {
		query += ` WHERE id = :1`
		args = append(args, themeID)
	}
	query += ` ORDER BY id`

	var rows []models.Theme
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list themes: %w", err)
	}

	themes := make([]*domain.Theme, len(rows))
	for i, row := range rows {
		themes[i] = &domain.Theme{ID: row.ID, Icon: row.Icon.String}
	}
	return themes, nil
}

func (r *ThemeDatabaseAdapter) GetThemeName(ctx context.Context, themeID, lang string) (string, error) {
	query := `SELECT name "name" FROM theme_translations
	WHERE theme_id = :1 AND language_code = :2
	FETCH FIRST 1 ROWS ONLY`

	var name string
	if err := r.db.GetContext(ctx, &name, query, themeID, lang); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("failed to get theme name for %s: %w", themeID, err)
	}
	return name, nil
}
