package events

import "time"

const NotificationCreatedTopic = "hr.leave.notification.v1"

type NotificationCreatedEvent struct {
	EventType           string    `json:"event_type"`
	NotificationID      string    `json:"notification_id"`
	RecipientEmployeeID string    `json:"recipient_employee_id"`
	NotificationType    string    `json:"notification_type"`
	Title               string    `json:"title"`
	Link                string    `json:"link"`
	OccurredAt          time.Time `json:"occurred_at"`
}
