package notification

import (
	"time"

	"github.com/google/uuid"
)

const (
	TypeLeaveRequest = "LEAVE_REQUEST"
	TypeLeaveStatus  = "LEAVE_STATUS"
)

type Notification struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey"`
	RecipientEmployeeID uuid.UUID `gorm:"type:uuid;not null;index:idx_notifications_recipient"`
	Type                string    `gorm:"type:varchar(30);not null"`
	Title               string    `gorm:"size:255;not null"`
	Body                string    `gorm:"type:text"`
	Link                string    `gorm:"size:255"`
	Data                []byte    `gorm:"type:jsonb"`
	ReadAt              *time.Time
	DeliveredAt         *time.Time
	CreatedAt           time.Time
}

// NotificationDelivery records a push delivery exactly once per notification
// and channel; the unique index is the consumer's idempotency fence.
type NotificationDelivery struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	NotificationID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_notification_deliveries_channel"`
	Channel        string    `gorm:"size:30;not null;uniqueIndex:uq_notification_deliveries_channel"`
	DeliveredAt    time.Time
}
