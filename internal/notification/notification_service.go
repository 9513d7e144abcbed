package notification

import (
	"context"
	"time"

	notificationerrors "go-hradmin/internal/notification/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service interface {
	My(ctx context.Context, recipientEmployeeID string) ([]NotificationResponse, error)
	MarkRead(ctx context.Context, id, recipientEmployeeID string) error
	MarkAllRead(ctx context.Context, recipientEmployeeID string) error
	RecordDelivery(ctx context.Context, notificationID, channel string) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("notification.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("notification.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) My(ctx context.Context, recipientEmployeeID string) ([]NotificationResponse, error) {
	if _, err := uuid.Parse(recipientEmployeeID); err != nil {
		return nil, notificationerrors.ErrInvalidRecipientID
	}

	items, err := s.repo.FindAllByRecipient(ctx, recipientEmployeeID)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(items), nil
}

func (s *service) MarkRead(ctx context.Context, id, recipientEmployeeID string) error {
	affected, err := s.repo.MarkRead(ctx, id, recipientEmployeeID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return notificationerrors.ErrNotificationNotFound
	}
	return nil
}

func (s *service) MarkAllRead(ctx context.Context, recipientEmployeeID string) error {
	return s.repo.MarkAllRead(ctx, recipientEmployeeID)
}

func (s *service) RecordDelivery(ctx context.Context, notificationID, channel string) error {
	notifUUID, err := uuid.Parse(notificationID)
	if err != nil {
		return notificationerrors.ErrNotificationNotFound
	}

	now := time.Now().UTC()
	d := &NotificationDelivery{
		ID:             uuid.New(),
		NotificationID: notifUUID,
		Channel:        channel,
		DeliveredAt:    now,
	}
	if err := s.repo.CreateDelivery(ctx, d); err != nil {
		return err
	}

	if err := s.repo.MarkDelivered(ctx, notificationID, now); err != nil {
		s.logger.Error("mark notification delivered failed",
			zap.String("notification_id", notificationID),
			zap.Error(err),
		)
		return err
	}

	return nil
}

func mapToResponse(n Notification) NotificationResponse {
	resp := NotificationResponse{
		ID:                  n.ID.String(),
		RecipientEmployeeID: n.RecipientEmployeeID.String(),
		Type:                n.Type,
		Title:               n.Title,
		Body:                n.Body,
		Link:                n.Link,
		Data:                n.Data,
		CreatedAt:           n.CreatedAt.Format(time.RFC3339),
	}
	if n.ReadAt != nil {
		v := n.ReadAt.Format(time.RFC3339)
		resp.ReadAt = &v
	}
	return resp
}

func mapToListResponse(items []Notification) []NotificationResponse {
	resp := make([]NotificationResponse, len(items))
	for i, n := range items {
		resp[i] = mapToResponse(n)
	}
	return resp
}
