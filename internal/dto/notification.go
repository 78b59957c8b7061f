package dto

// SendNotificationRequest is the body of POST /api/notifications/send
type SendNotificationRequest struct {
	UserID string `json:"userId"`
	Title  string `json:"title"`
	Body   string `json:"body"`
}

// TokenResult is the outcome of one device push
type TokenResult struct {
	Token  string         `json:"token"`
	Status int            `json:"status"`
	Result map[string]any `json:"result"`
}

// SendNotificationResponse lists the per-token outcomes
type SendNotificationResponse struct {
	Success bool          `json:"success"`
	Sent    int           `json:"sent"`
	Results []TokenResult `json:"results"`
}

// StreakRemindersResponse is returned by one reminder sweep
type StreakRemindersResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Sent    int    `json:"sent"`
}
