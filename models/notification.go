package models

// NotificationRequest is transient: consumed once by the Notification
// Service and discarded after the send attempt.
type NotificationRequest struct {
	Type      string `json:"type" binding:"required"`
	Title     string `json:"title"`
	Message   string `json:"message"`
	Recipient string `json:"recipient"`
	IsHTML    bool   `json:"isHtml"`
}

// DeliveryResult summarizes one send attempt. Simulated is true when no
// network delivery happened (unconfigured credentials or non-email types).
type DeliveryResult struct {
	ID        string `json:"id"`
	Success   bool   `json:"success"`
	Simulated bool   `json:"simulated"`
	Message   string `json:"message"`
	Type      string `json:"type"`
	Recipient string `json:"recipient"`
	Timestamp string `json:"timestamp"`
}
