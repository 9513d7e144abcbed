package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"go-hradmin/internal/events"
	"go-hradmin/internal/notification"

	"github.com/jackc/pgx/v5/pgconn"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const deliveryChannel = "push"

func ConsumeNotificationCreated(
	ctx context.Context,
	reader *kafkago.Reader,
	notificationService notification.Service,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.notification_created")
	log.Info("notification delivery consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("notification delivery consumer stopped")
				return
			}
			log.Error("fetch notification_created message failed", zap.Error(err))
			continue
		}

		var event events.NotificationCreatedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode notification_created event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		if err := notificationService.RecordDelivery(ctx, event.NotificationID, deliveryChannel); err != nil {
			if isUniqueDeliveryViolation(err) {
				log.Warn("notification already delivered for event, skipping",
					zap.String("notification_id", event.NotificationID),
				)
				_ = reader.CommitMessages(ctx, msg)
				continue
			}

			log.Error("record notification delivery failed",
				zap.String("notification_id", event.NotificationID),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit notification_created message failed", zap.Error(err))
			continue
		}

		log.Info("notification delivery recorded from notification_created event",
			zap.String("notification_id", event.NotificationID),
			zap.String("recipient_employee_id", event.RecipientEmployeeID),
		)
	}
}

func isUniqueDeliveryViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" && pgErr.ConstraintName == "uq_notification_deliveries_channel"
	}

	errMsg := strings.ToLower(err.Error())
	return strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_notification_deliveries_channel")
}
