package push

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"quiz-forge/internal/domain"

	"go.uber.org/zap"
	"golang.org/x/oauth2"
	fcm "google.golang.org/api/fcm/v1"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// FCMGateway sends notifications through the FCM HTTP v1 API.
type FCMGateway struct {
	svc       *fcm.Service
	projectID string
	logger    *zap.Logger
}

// NewFCMGateway builds a gateway authenticated as the service account.
// Extra client options (such as a test endpoint) are applied last.
func NewFCMGateway(ctx context.Context, rawServiceAccount []byte, httpClient *http.Client, logger *zap.Logger, opts ...option.ClientOption) (*FCMGateway, error) {
	sa, err := ParseServiceAccount(rawServiceAccount)
	if err != nil {
		return nil, err
	}
	ts, err := NewTokenSource(ctx, sa, httpClient)
	if err != nil {
		return nil, err
	}
	return NewFCMGatewayWithTokenSource(ctx, sa.ProjectID, ts, logger, opts...)
}

func NewFCMGatewayWithTokenSource(ctx context.Context, projectID string, ts oauth2.TokenSource, logger *zap.Logger, opts ...option.ClientOption) (*FCMGateway, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	clientOpts := append([]option.ClientOption{option.WithTokenSource(ts)}, opts...)
	svc, err := fcm.NewService(ctx, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create FCM service: %w", err)
	}
	return &FCMGateway{svc: svc, projectID: projectID, logger: logger}, nil
}

// Send delivers msg. A rejection by FCM is reported in the result; only
// transport and authentication failures are returned as errors.
func (g *FCMGateway) Send(ctx context.Context, msg domain.PushMessage) (*domain.PushResult, error) {
	req := &fcm.SendMessageRequest{
		Message: &fcm.Message{
			Token: msg.Token,
			Notification: &fcm.Notification{
				Title: msg.Title,
				Body:  msg.Body,
			},
			Data: msg.Data,
		},
	}

	sent, err := g.svc.Projects.Messages.Send("projects/"+g.projectID, req).Context(ctx).Do()
	if err != nil {
		var apiErr *googleapi.Error
		if errors.As(err, &apiErr) {
			g.logger.Warn("FCM rejected message", zap.Int("status", apiErr.Code), zap.String("message", apiErr.Message))
			return &domain.PushResult{Status: apiErr.Code, Body: decodeBody(apiErr.Body, apiErr.Message)}, nil
		}
		return nil, domain.NewPushGatewayError(err)
	}

	return &domain.PushResult{
		Status: sent.HTTPStatusCode,
		Body:   map[string]any{"name": sent.Name},
	}, nil
}

func decodeBody(body, fallback string) map[string]any {
	out := map[string]any{}
	if body != "" && json.Unmarshal([]byte(body), &out) == nil {
		return out
	}
	return map[string]any{"error": fallback}
}

var _ domain.PushGateway = (*FCMGateway)(nil)
