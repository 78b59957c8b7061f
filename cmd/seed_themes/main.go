// Command seed_themes inserts the themes listed in a JSON file. Themes whose
// English name already exists are skipped.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"quiz-forge/internal/config"
	"quiz-forge/internal/database"
	"quiz-forge/internal/domain"
	"quiz-forge/internal/logger"
	"quiz-forge/internal/repository"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// seedTheme is one entry of the seed file.
type seedTheme struct {
	Icon  string            `json:"icon"`
	Names map[string]string `json:"names"`
}

func main() {
	seedFile := flag.String("file", "config/seed/themes.json", "path to the theme seed file")
	flag.Parse()

	ctx := context.Background()
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if err := logger.Initialize(cfg.Logger); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	log := logger.Get()

	db, err := database.NewSQLXOracleDB(ctx, database.DSN(cfg.DB))
	if err != nil {
		log.Fatal("Failed to connect to Oracle database", zap.Error(err))
	}
	defer db.Close()

	raw, err := os.ReadFile(*seedFile)
	if err != nil {
		log.Fatal("Failed to read seed file", zap.String("path", *seedFile), zap.Error(err))
	}
	var themes []seedTheme
	if err := json.Unmarshal(raw, &themes); err != nil {
		log.Fatal("Failed to unmarshal seed data", zap.Error(err))
	}
	log.Info("Loaded seed data", zap.Int("themes", len(themes)))

	created := 0
	for _, st := range themes {
		ok, err := seedOne(ctx, db, log, st)
		if err != nil {
			log.Error("Error seeding theme, transaction rolled back", zap.String("theme", st.Names[domain.LangEN]), zap.Error(err))
			continue
		}
		if ok {
			created++
		}
	}
	log.Info("Theme seeding completed", zap.Int("created", created), zap.Int("total", len(themes)))
}

func seedOne(ctx context.Context, db *sqlx.DB, log *zap.Logger, st seedTheme) (created bool, err error) {
	name := strings.TrimSpace(st.Names[domain.LangEN])
	if name == "" {
		return false, fmt.Errorf("theme without english name")
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction for theme %s: %w", name, err)
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		} else if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Error("Failed to rollback transaction", zap.Error(rbErr))
			}
		} else if cErr := tx.Commit(); cErr != nil {
			err = cErr
		}
	}()

	repo := repository.NewThemeSeedAdapter(tx)
	existing, err := repo.FindThemeIDByName(ctx, domain.LangEN, name)
	if err != nil {
		return false, err
	}
	if existing != "" {
		log.Info("Theme already exists, skipping", zap.String("theme", name), zap.String("theme_id", existing))
		return false, nil
	}

	theme := &domain.Theme{Icon: st.Icon, Names: st.Names}
	if err := repo.InsertTheme(ctx, theme); err != nil {
		return false, err
	}
	log.Info("Theme created", zap.String("theme", name), zap.String("theme_id", theme.ID))
	return true, nil
}
