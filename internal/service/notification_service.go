package service

import (
	"context"
	"strings"

	"quiz-forge/internal/domain"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const tokenPreviewLen = 20

// SendResult is the outcome of one device token push.
type SendResult struct {
	Token  string         `json:"token"`
	Status int            `json:"status"`
	Result map[string]any `json:"result"`
}

// SendReport is returned by NotificationService.SendToUser.
type SendReport struct {
	Sent    int          `json:"sent"`
	Results []SendResult `json:"results"`
}

// NotificationService pushes ad-hoc notifications to every device of a user.
type NotificationService struct {
	tokens  domain.PushTokenRepository
	gateway domain.PushGateway
	logger  *zap.Logger
}

func NewNotificationService(tokens domain.PushTokenRepository, gateway domain.PushGateway, logger *zap.Logger) *NotificationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NotificationService{tokens: tokens, gateway: gateway, logger: logger}
}

// SendToUser pushes title and body to every token of userID. A rejected or
// failed token is reported in its result rather than failing the call.
func (s *NotificationService) SendToUser(ctx context.Context, userID, title, body string) (*SendReport, error) {
	if strings.TrimSpace(userID) == "" || strings.TrimSpace(title) == "" || strings.TrimSpace(body) == "" {
		return nil, domain.NewInvalidInputError("Missing required fields: userId, title, body")
	}

	tokens, err := s.tokens.ListTokens(ctx, userID)
	if err != nil {
		return nil, domain.NewStoreError("Failed to load push tokens", err)
	}
	if len(tokens) == 0 {
		return nil, domain.NewNoPushTokensError(userID)
	}
	if s.gateway == nil {
		return nil, domain.NewPushNotConfiguredError()
	}

	results := make([]SendResult, len(tokens))
	var g errgroup.Group
	for i, token := range tokens {
		g.Go(func() error {
			results[i] = s.sendOne(ctx, domain.PushMessage{Token: token, Title: title, Body: body})
			return nil
		})
	}
	_ = g.Wait()

	s.logger.Info("Notification sent", zap.String("user_id", userID), zap.Int("tokens", len(tokens)))
	return &SendReport{Sent: len(results), Results: results}, nil
}

func (s *NotificationService) sendOne(ctx context.Context, msg domain.PushMessage) SendResult {
	out := SendResult{Token: previewToken(msg.Token)}
	res, err := s.gateway.Send(ctx, msg)
	if err != nil {
		s.logger.Warn("Push failed", zap.String("token", out.Token), zap.Error(err))
		out.Result = map[string]any{"error": err.Error()}
		return out
	}
	out.Status = res.Status
	out.Result = res.Body
	return out
}

func previewToken(token string) string {
	if len(token) > tokenPreviewLen {
		token = token[:tokenPreviewLen]
	}
	return token + "..."
}
