package handler

import (
	"context"

	"quiz-forge/internal/dto"
	"quiz-forge/internal/service"

	"github.com/gofiber/fiber/v2"
)

// NotificationSender pushes a message to every device of a user.
type NotificationSender interface {
	SendToUser(ctx context.Context, userID, title, body string) (*service.SendReport, error)
}

// ReminderSweeper sends the streak reminders due now.
type ReminderSweeper interface {
	SendReminders(ctx context.Context) (*service.ReminderReport, error)
}

type NotificationHandler struct {
	sender    NotificationSender
	reminders ReminderSweeper
}

func NewNotificationHandler(sender NotificationSender, reminders ReminderSweeper) *NotificationHandler {
	return &NotificationHandler{sender: sender, reminders: reminders}
}

// SendNotification godoc
// @Summary Push a notification to a user
// @Tags notifications
// @Accept json
// @Produce json
// @Param request body dto.SendNotificationRequest true "Recipient and message"
// @Success 200 {object} dto.SendNotificationResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /notifications/send [post]
func (h *NotificationHandler) SendNotification(c *fiber.Ctx) error {
	var req dto.SendNotificationRequest
	// An unreadable body fails the required-field check below.
	_ = c.BodyParser(&req)

	report, err := h.sender.SendToUser(c.UserContext(), req.UserID, req.Title, req.Body)
	if err != nil {
		return err
	}

	results := make([]dto.TokenResult, len(report.Results))
	for i, r := range report.Results {
		results[i] = dto.TokenResult{Token: r.Token, Status: r.Status, Result: r.Result}
	}
	return c.JSON(dto.SendNotificationResponse{Success: true, Sent: report.Sent, Results: results})
}

// SendStreakReminders godoc
// @Summary Send streak reminders
// @Description Reminds users whose local time is the reminder hour and whose streak ends at midnight.
// @Tags notifications
// @Produce json
// @Success 200 {object} dto.StreakRemindersResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /notifications/streak-reminders [post]
func (h *NotificationHandler) SendStreakReminders(c *fiber.Ctx) error {
	report, err := h.reminders.SendReminders(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(dto.StreakRemindersResponse{Success: true, Message: report.Message, Sent: report.Sent})
}
