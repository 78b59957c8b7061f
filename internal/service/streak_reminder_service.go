package service

import (
	"context"
	"fmt"
	"time"

	"quiz-forge/internal/cache"
	"quiz-forge/internal/config"
	"quiz-forge/internal/domain"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	msgNoTargetTimezone = "No timezone at %dh right now"
	msgNoCandidates     = "No eligible users"
	msgAllPlayedToday   = "All eligible users already played today"
)

// ReminderReport is returned by one reminder sweep.
type ReminderReport struct {
	Message string `json:"message,omitempty"`
	Sent    int    `json:"sent"`
}

// StreakReminderService warns users whose streak ends at their local midnight.
type StreakReminderService struct {
	stats   domain.UserStatsRepository
	tokens  domain.PushTokenRepository
	gateway domain.PushGateway
	cache   domain.Cache
	cfg     config.NotificationConfig
	now     func() time.Time
	logger  *zap.Logger
}

func NewStreakReminderService(
	stats domain.UserStatsRepository,
	tokens domain.PushTokenRepository,
	gateway domain.PushGateway,
	cache domain.Cache,
	cfg config.NotificationConfig,
	logger *zap.Logger,
) *StreakReminderService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StreakReminderService{
		stats:   stats,
		tokens:  tokens,
		gateway: gateway,
		cache:   cache,
		cfg:     cfg,
		now:     time.Now,
		logger:  logger,
	}
}

// StreakReminderMessage returns the localized title and body. Unknown
// languages get English.
func StreakReminderMessage(lang string, streak int) (string, string) {
	if lang == domain.LangFR {
		plural := ""
		if streak > 1 {
			plural = "s"
		}
		return "🔥 Ne perds pas ta série !",
			fmt.Sprintf("Tu as %d jour%s de suite. Joue maintenant avant minuit !", streak, plural)
	}
	return "🔥 Don't lose your streak!",
		fmt.Sprintf("You have a %d-day streak. Play now before midnight!", streak)
}

// SendReminders runs one sweep over the offsets currently at the reminder hour.
func (s *StreakReminderService) SendReminders(ctx context.Context) (*ReminderReport, error) {
	now := s.now().UTC()

	offsets := TargetOffsets(now, s.cfg.ReminderLocalHour)
	if len(offsets) == 0 {
		return &ReminderReport{Message: fmt.Sprintf(msgNoTargetTimezone, s.cfg.ReminderLocalHour)}, nil
	}

	candidates, err := s.stats.ListStreakCandidates(ctx, s.cfg.MinStreak, offsets)
	if err != nil {
		return nil, domain.NewStoreError("Failed to load streak candidates", err)
	}
	if len(candidates) == 0 {
		return &ReminderReport{Message: msgNoCandidates}, nil
	}

	var eligible []*domain.UserStats
	for _, u := range candidates {
		if u.CurrentStreak >= s.cfg.MinStreak && IsStreakSavable(u, now) {
			eligible = append(eligible, u)
		}
	}
	if len(eligible) == 0 {
		return &ReminderReport{Message: msgAllPlayedToday}, nil
	}
	if s.gateway == nil {
		return nil, domain.NewPushNotConfiguredError()
	}

	s.logger.Info("Sending streak reminders",
		zap.Ints("offsets", offsets),
		zap.Int("candidates", len(candidates)),
		zap.Int("eligible", len(eligible)))

	report := &ReminderReport{}
	for _, u := range eligible {
		if s.remindUser(ctx, u, now) {
			report.Sent++
		}
	}
	s.logger.Info("Streak reminders sent", zap.Int("sent", report.Sent))
	return report, nil
}

func (s *StreakReminderService) remindUser(ctx context.Context, u *domain.UserStats, now time.Time) bool {
	log := s.logger.With(zap.String("user_id", u.UserID))

	tokens, err := s.tokens.ListTokens(ctx, u.UserID)
	if err != nil {
		log.Warn("Failed to load push tokens", zap.Error(err))
		return false
	}
	if len(tokens) == 0 {
		return false
	}

	if s.cache != nil {
		key := cache.GenerateCacheKey("reminder", "streak", u.UserID, LocalDate(now, u.TimezoneOffsetHours))
		acquired, err := s.cache.SetNX(ctx, key, "1", s.cfg.DedupeTTL)
		if err != nil {
			log.Warn("Reminder dedupe unavailable", zap.Error(err))
		} else if !acquired {
			log.Debug("Reminder already sent today")
			return false
		}
	}

	title, body := StreakReminderMessage(u.PreferredLanguage, u.CurrentStreak)
	var g errgroup.Group
	for _, token := range tokens {
		g.Go(func() error {
			res, err := s.gateway.Send(ctx, domain.PushMessage{
				Token: token,
				Title: title,
				Body:  body,
				Data:  map[string]string{"type": "streak"},
			})
			if err != nil {
				log.Warn("Push failed", zap.String("token", previewToken(token)), zap.Error(err))
			} else if res.Status >= 300 {
				log.Warn("Push rejected", zap.String("token", previewToken(token)), zap.Int("status", res.Status))
			}
			return nil
		})
	}
	_ = g.Wait()
	return true
}
