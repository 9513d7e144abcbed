package notification

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, n *Notification) error
	FindAllByRecipient(ctx context.Context, recipientEmployeeID string) ([]Notification, error)
	MarkRead(ctx context.Context, id, recipientEmployeeID string) (int64, error)
	MarkAllRead(ctx context.Context, recipientEmployeeID string) error
	CreateDelivery(ctx context.Context, d *NotificationDelivery) error
	MarkDelivered(ctx context.Context, notificationID string, at time.Time) error
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

// Create inserts through the enclosing *sql.Tx when one is present so
// notification rows commit atomically with the business transition that
// produced them.
func (r *repository) Create(ctx context.Context, n *Notification) error {
	if r.tx != nil {
		query := `
INSERT INTO notifications (id, recipient_employee_id, type, title, body, link, data, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
`
		_, err := r.tx.ExecContext(ctx, query,
			n.ID, n.RecipientEmployeeID, n.Type, n.Title, n.Body, n.Link, n.Data,
		)
		return err
	}
	return r.db.WithContext(ctx).Create(n).Error
}

func (r *repository) FindAllByRecipient(ctx context.Context, recipientEmployeeID string) ([]Notification, error) {
	var items []Notification
	err := r.db.WithContext(ctx).
		Where("recipient_employee_id = ?", recipientEmployeeID).
		Order("created_at DESC").
		Find(&items).Error
	return items, err
}

func (r *repository) MarkRead(ctx context.Context, id, recipientEmployeeID string) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&Notification{}).
		Where("id = ?", id).
		Where("recipient_employee_id = ?", recipientEmployeeID).
		Where("read_at IS NULL").
		Update("read_at", time.Now().UTC())
	return res.RowsAffected, res.Error
}

func (r *repository) MarkAllRead(ctx context.Context, recipientEmployeeID string) error {
	return r.db.WithContext(ctx).
		Model(&Notification{}).
		Where("recipient_employee_id = ?", recipientEmployeeID).
		Where("read_at IS NULL").
		Update("read_at", time.Now().UTC()).Error
}

func (r *repository) CreateDelivery(ctx context.Context, d *NotificationDelivery) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *repository) MarkDelivered(ctx context.Context, notificationID string, at time.Time) error {
	return r.db.WithContext(ctx).
		Model(&Notification{}).
		Where("id = ?", notificationID).
		Where("delivered_at IS NULL").
		Update("delivered_at", at).Error
}
