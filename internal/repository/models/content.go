package models

import (
	"database/sql"
	"time"
)

// Theme represents the themes table structure
type Theme struct {
	ID        string         `db:"id"`
	Icon      sql.NullString `db:"icon"`
	CreatedAt time.Time      `db:"created_at"`
}

// ThemeTranslation represents the theme_translations table structure
type ThemeTranslation struct {
	ID           string `db:"id"`
	ThemeID      string `db:"theme_id"`
	LanguageCode string `db:"language_code"`
	Name         string `db:"name"`
}

// UserStats represents the user_stats table structure
type UserStats struct {
	UserID              string         `db:"user_id"`
	CurrentStreak       int            `db:"current_streak"`
	LastPlayedAt        sql.NullTime   `db:"last_played_at"`
	PreferredLanguage   sql.NullString `db:"preferred_language"`
	TimezoneOffsetHours sql.NullInt64  `db:"timezone_offset_hours"`
}
