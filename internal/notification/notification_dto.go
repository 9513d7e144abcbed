package notification

import "encoding/json"

type NotificationResponse struct {
	ID                  string          `json:"id"`
	RecipientEmployeeID string          `json:"recipient_employee_id"`
	Type                string          `json:"type"`
	Title               string          `json:"title"`
	Body                string          `json:"body,omitempty"`
	Link                string          `json:"link,omitempty"`
	Data                json.RawMessage `json:"data,omitempty"`
	ReadAt              *string         `json:"read_at,omitempty"`
	CreatedAt           string          `json:"created_at"`
}
