package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"

	"quiz-forge/internal/domain"
	"quiz-forge/internal/util"
)

// ThemeSeedAdapter writes themes. Only the seeding tool creates themes.
type ThemeSeedAdapter struct {
	db DBTX
}

func NewThemeSeedAdapter(db DBTX) *ThemeSeedAdapter {
	return &ThemeSeedAdapter{db: db}
}

// FindThemeIDByName returns the id of the theme named name in lang, or "".
func (r *ThemeSeedAdapter) FindThemeIDByName(ctx context.Context, lang, name string) (string, error) {
	query := `SELECT theme_id "theme_id" FROM theme_translations
	WHERE language_code = :1 AND name = :2
	FETCH FIRST 1 ROWS ONLY`

	var id string
	if err := r.db.GetContext(ctx, &id, query, lang, name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("failed to look up theme %q: %w", name, err)
	}
	return id, nil
}

// InsertTheme inserts the theme and one translation per entry of t.Names.
// An empty ID is assigned.
func (r *ThemeSeedAdapter) InsertTheme(ctx context.Context, t *domain.Theme) error {
	if t.ID == "" {
		t.ID = util.NewULID()
	}
	if _, err := r.db.ExecContext(ctx, `INSERT INTO themes (id, icon) VALUES (:1, :2)`, t.ID, t.Icon); err != nil {
		return fmt.Errorf("failed to insert theme: %w", err)
	}

	langs := make([]string, 0, len(t.Names))
	for lang := range t.Names {
		langs = append(langs, lang)
	}
	sort.Strings(langs)

	rows := make([][]any, len(langs))
	for i, lang := range langs {
		rows[i] = []any{util.NewULID(), t.ID, lang, t.Names[lang]}
	}
	n, err := execBatch(ctx, r.db, "theme_translations", []string{"id", "theme_id", "language_code", "name"}, rows)
	if err != nil {
		return err
	}
	if n != int64(len(rows)) {
		return fmt.Errorf("theme_translations: store confirmed %d of %d rows", n, len(rows))
	}
	return nil
}
