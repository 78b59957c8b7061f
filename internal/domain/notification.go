package domain

import (
	"context"
	"time"
)

// UserStats is the streak state of one user.
type UserStats struct {
	UserID              string
	CurrentStreak       int
	LastPlayedAt        *time.Time
	PreferredLanguage   string
	TimezoneOffsetHours int
}

// PushMessage is one notification addressed to one device token.
type PushMessage struct {
	Token string
	Title string
	Body  string
	Data  map[string]string
}

// PushResult is the gateway's answer for one PushMessage.
type PushResult struct {
	Status int
	Body   map[string]any
}

// PushGateway delivers push notifications.
type PushGateway interface {
	Send(ctx context.Context, msg PushMessage) (*PushResult, error)
}
