package repository

import (
	"context"
	"fmt"
	"quiz-forge/internal/domain"
)

// PushTokenDatabaseAdapter implements domain.PushTokenRepository
type PushTokenDatabaseAdapter struct {
	db DBTX
}

func NewPushTokenDatabaseAdapter(db DBTX) domain.PushTokenRepository {
	return &PushTokenDatabaseAdapter{db: db}
}

func (r *PushTokenDatabaseAdapter) ListTokens(ctx context.Context, userID string) ([]string, error) {
	tokens := []string{}
	query := `SELECT token "token" FROM user_fcm_tokens WHERE user_id = :1 ORDER BY created_at`
	if err := r.db.SelectContext(ctx, &tokens, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list push tokens for user %s: %w", userID, err)
	}
	return tokens, nil
}
