package repository

import (
	"context"
	"fmt"
	"quiz-forge/internal/domain"
	"quiz-forge/internal/repository/models"
)

// UserStatsDatabaseAdapter implements domain.UserStatsRepository
type UserStatsDatabaseAdapter struct {
	db DBTX
}

func NewUserStatsDatabaseAdapter(db DBTX) domain.UserStatsRepository {
	return &UserStatsDatabaseAdapter{db: db}
}

func (r *UserStatsDatabaseAdapter) ListStreakCandidates(ctx context.Context, minStreak int, offsets []int) ([]*domain.UserStats, error) {
	if len(offsets) == 0 {
		return []*domain.UserStats{}, nil
	}

	args := make([]any, 0, len(offsets)+1)
	args = append(args, minStreak)
	for _, o := range offsets {
		args = append(args, o)
	}
	query := fmt.Sprintf(`SELECT
		user_id "user_id",
		current_streak "current_streak",
		last_played_at "last_played_at",
		preferred_language "preferred_language",
		timezone_offset_hours "timezone_offset_hours"
	FROM user_stats
	WHERE current_streak >= :1
	AND timezone_offset_hours IN (%s)
	ORDER BY user_id`, placeholders(2, len(offsets)))

	var rows []models.UserStats
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list streak candidates: %w", err)
	}

	out := make([]*domain.UserStats, len(rows))
	for i, row := range rows {
		out[i] = toDomainUserStats(&row)
	}
	return out, nil
}

func toDomainUserStats(m *models.UserStats) *domain.UserStats {
	s := &domain.UserStats{
		UserID:            m.UserID,
		CurrentStreak:     m.CurrentStreak,
		PreferredLanguage: domain.LangEN,
	}
	if m.LastPlayedAt.Valid {
		t := m.LastPlayedAt.Time
		s.LastPlayedAt = &t
	}
	if m.PreferredLanguage.Valid && m.PreferredLanguage.String != "" {
		s.PreferredLanguage = m.PreferredLanguage.String
	}
	if m.TimezoneOffsetHours.Valid {
		s.TimezoneOffsetHours = int(m.TimezoneOffsetHours.Int64)
	}
	return s
}
