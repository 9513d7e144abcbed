package leaverequest

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go-hradmin/internal/events"
	leaverequesterrors "go-hradmin/internal/leaverequest/errors"
	"go-hradmin/internal/leavetype"
	"go-hradmin/internal/messaging/kafka"
	"go-hradmin/internal/notification"
	"go-hradmin/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service interface {
	Create(ctx context.Context, userID, employeeID string, req CreateLeaveRequestRequest) (LeaveRequestResponse, error)
	My(ctx context.Context, userID string) ([]LeaveRequestResponse, error)
	MyPendingApprovals(ctx context.Context, approverEmployeeID string) ([]LeaveRequestResponse, error)
	Cancel(ctx context.Context, id, userID string) (LeaveRequestResponse, error)
	Approve(ctx context.Context, id, actorEmployeeID string) (DecisionResponse, error)
	Reject(ctx context.Context, id, actorEmployeeID string, comment *string) (DecisionResponse, error)
}

type service struct {
	db            *sql.DB
	repo          Repository
	types         leavetype.Repository
	notifications notification.Repository
	outbox        kafka.OutboxRepository
	logger        *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	types leavetype.Repository,
	notifications notification.Repository,
	outbox kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("leaverequest.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leaverequest.service")
	}
	return &service{
		db:            db,
		repo:          repo,
		types:         types,
		notifications: notifications,
		outbox:        outbox,
		logger:        l,
	}
}

func (s *service) Create(ctx context.Context, userID, employeeID string, req CreateLeaveRequestRequest) (LeaveRequestResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create leave request requested",
		zap.String("request_id", rid),
		zap.String("user_id", userID),
		zap.String("employee_id", employeeID),
		zap.String("type_id", req.TypeID),
		zap.String("start_date", req.StartDate),
		zap.String("end_date", req.EndDate),
	)

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return LeaveRequestResponse{}, leaverequesterrors.ErrInvalidActorID
	}
	employeeUUID, err := uuid.Parse(employeeID)
	if err != nil {
		return LeaveRequestResponse{}, leaverequesterrors.ErrInvalidActorID
	}
	typeUUID, err := uuid.Parse(req.TypeID)
	if err != nil {
		return LeaveRequestResponse{}, leaverequesterrors.ErrInvalidTypeID
	}

	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return LeaveRequestResponse{}, err
	}
	endDate, err := parseDate(req.EndDate)
	if err != nil {
		return LeaveRequestResponse{}, err
	}
	if startDate.After(endDate) {
		return LeaveRequestResponse{}, leaverequesterrors.ErrInvalidDateRange
	}
	if len(req.Reason) > 1000 {
		return LeaveRequestResponse{}, leaverequesterrors.ErrReasonTooLong
	}

	if _, err := s.types.FindByID(ctx, req.TypeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveRequestResponse{}, leaverequesterrors.ErrLeaveTypeNotFound
		}
		s.logger.Error("create leave request type lookup failed", zap.Error(err))
		return LeaveRequestResponse{}, err
	}

	approvals, err := BuildApprovalChain(employeeUUID, req.ApproverEmployeeIDs)
	if err != nil {
		s.logger.Warn("create leave request chain validation failed", zap.Error(err))
		return LeaveRequestResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create leave request begin tx failed", zap.Error(err))
		return LeaveRequestResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	overlap, err := qtx.HasOverlappingRequest(ctx, employeeID, startDate, endDate)
	if err != nil {
		s.logger.Error("create leave request overlap check failed", zap.Error(err))
		return LeaveRequestResponse{}, err
	}
	if overlap {
		s.logger.Warn("create leave request overlap detected",
			zap.String("employee_id", employeeID),
			zap.String("start_date", req.StartDate),
			zap.String("end_date", req.EndDate),
		)
		return LeaveRequestResponse{}, leaverequesterrors.ErrOverlappingRequest
	}

	firstOrder := 1
	lr := &LeaveRequest{
		ID:                   uuid.New(),
		EmployeeID:           employeeUUID,
		UserID:               userUUID,
		TypeID:               typeUUID,
		StartDate:            startDate,
		EndDate:              endDate,
		Reason:               req.Reason,
		Status:               StatusPending,
		CurrentApprovalOrder: &firstOrder,
	}

	if err := qtx.Create(ctx, lr, approvals); err != nil {
		s.logger.Error("create leave request persist failed", zap.Error(err))
		return LeaveRequestResponse{}, err
	}
	lr.Approvals = approvals

	if err := s.notifyInTx(ctx, tx, &notification.Notification{
		ID:                  uuid.New(),
		RecipientEmployeeID: approvals[0].ApproverEmployeeID,
		Type:                notification.TypeLeaveRequest,
		Title:               "A new leave request needs your approval",
		Body:                fmt.Sprintf("From %s to %s", req.StartDate, req.EndDate),
		Link:                "/approvals/leaves/" + lr.ID.String(),
		Data:                stepPayload(lr.ID, 1, len(approvals)),
	}); err != nil {
		s.logger.Error("create leave request notify failed", zap.Error(err))
		return LeaveRequestResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create leave request commit failed", zap.Error(err))
		return LeaveRequestResponse{}, err
	}
	s.logger.Info("create leave request success",
		zap.String("leave_request_id", lr.ID.String()),
		zap.String("employee_id", employeeID),
		zap.Int("approvers", len(approvals)),
	)

	return mapToResponse(*lr), nil
}

func (s *service) My(ctx context.Context, userID string) ([]LeaveRequestResponse, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return nil, leaverequesterrors.ErrInvalidActorID
	}

	items, err := s.repo.FindAllByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(items), nil
}

func (s *service) MyPendingApprovals(ctx context.Context, approverEmployeeID string) ([]LeaveRequestResponse, error) {
	if _, err := uuid.Parse(approverEmployeeID); err != nil {
		return nil, leaverequesterrors.ErrInvalidActorID
	}

	items, err := s.repo.FindPendingByApprover(ctx, approverEmployeeID)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(items), nil
}

func (s *service) Cancel(ctx context.Context, id, userID string) (LeaveRequestResponse, error) {
	s.logger.Debug("cancel leave request requested",
		zap.String("leave_request_id", id),
		zap.String("user_id", userID),
	)

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return LeaveRequestResponse{}, leaverequesterrors.ErrInvalidActorID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("cancel leave request begin tx failed", zap.Error(err))
		return LeaveRequestResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	lr, err := qtx.LockByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return LeaveRequestResponse{}, leaverequesterrors.ErrRequestNotFound
		}
		s.logger.Error("cancel leave request lock failed", zap.Error(err))
		return LeaveRequestResponse{}, err
	}
	if lr.UserID != userUUID {
		return LeaveRequestResponse{}, leaverequesterrors.ErrNotSubmitter
	}
	if lr.Status != StatusPending {
		return LeaveRequestResponse{}, leaverequesterrors.ErrRequestNotPending
	}

	// Approval rows keep whatever status they had; cancellation is a request
	// level change only and emits no notification.
	now := time.Now().UTC()
	if err := qtx.UpdateRequestState(ctx, id, StatusCanceled, nil, &now); err != nil {
		s.logger.Error("cancel leave request persist failed", zap.Error(err))
		return LeaveRequestResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("cancel leave request commit failed", zap.Error(err))
		return LeaveRequestResponse{}, err
	}

	lr.Status = StatusCanceled
	lr.CurrentApprovalOrder = nil
	lr.DecidedAt = &now

	s.logger.Info("cancel leave request success", zap.String("leave_request_id", id))
	return mapToResponse(*lr), nil
}

func (s *service) Approve(ctx context.Context, id, actorEmployeeID string) (DecisionResponse, error) {
	s.logger.Debug("approve leave request requested",
		zap.String("leave_request_id", id),
		zap.String("actor_employee_id", actorEmployeeID),
	)

	actorUUID, err := uuid.Parse(actorEmployeeID)
	if err != nil {
		return DecisionResponse{}, leaverequesterrors.ErrInvalidActorID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("approve leave request begin tx failed", zap.Error(err))
		return DecisionResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	lr, cur, err := s.lockCurrentStep(ctx, qtx, id, actorUUID)
	if err != nil {
		s.logger.Warn("approve leave request guard failed",
			zap.String("leave_request_id", id),
			zap.Error(err),
		)
		return DecisionResponse{}, err
	}

	now := time.Now().UTC()
	if err := qtx.UpdateApprovalState(ctx, cur.ID.String(), ApprovalApproved, nil, &now); err != nil {
		s.logger.Error("approve leave request step persist failed", zap.Error(err))
		return DecisionResponse{}, err
	}

	next := lr.approvalAt(cur.Order + 1)
	if next != nil {
		nextOrder := next.Order
		if err := qtx.UpdateRequestState(ctx, id, StatusPending, &nextOrder, nil); err != nil {
			s.logger.Error("approve leave request advance persist failed", zap.Error(err))
			return DecisionResponse{}, err
		}

		if err := s.notifyInTx(ctx, tx, &notification.Notification{
			ID:                  uuid.New(),
			RecipientEmployeeID: next.ApproverEmployeeID,
			Type:                notification.TypeLeaveRequest,
			Title:               "A leave request is waiting for your decision",
			Body:                fmt.Sprintf("Step %d of %d", nextOrder, len(lr.Approvals)),
			Link:                "/approvals/leaves/" + id,
			Data:                stepPayload(lr.ID, nextOrder, len(lr.Approvals)),
		}); err != nil {
			s.logger.Error("approve leave request notify failed", zap.Error(err))
			return DecisionResponse{}, err
		}
	} else {
		// Chain exhausted, the request is finally approved
		if err := qtx.UpdateRequestState(ctx, id, StatusApproved, nil, &now); err != nil {
			s.logger.Error("approve leave request finalize persist failed", zap.Error(err))
			return DecisionResponse{}, err
		}

		if err := s.notifyInTx(ctx, tx, &notification.Notification{
			ID:                  uuid.New(),
			RecipientEmployeeID: lr.EmployeeID,
			Type:                notification.TypeLeaveStatus,
			Title:               "Your leave request has been approved",
			Link:                "/leaves/" + id,
			Data:                leavePayload(lr.ID),
		}); err != nil {
			s.logger.Error("approve leave request notify failed", zap.Error(err))
			return DecisionResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("approve leave request commit failed", zap.Error(err))
		return DecisionResponse{}, err
	}

	s.logger.Info("approve leave request success",
		zap.String("leave_request_id", id),
		zap.Int("order", cur.Order),
		zap.Bool("finalized", next == nil),
	)
	return DecisionResponse{Ok: true}, nil
}

func (s *service) Reject(ctx context.Context, id, actorEmployeeID string, comment *string) (DecisionResponse, error) {
	s.logger.Debug("reject leave request requested",
		zap.String("leave_request_id", id),
		zap.String("actor_employee_id", actorEmployeeID),
	)

	actorUUID, err := uuid.Parse(actorEmployeeID)
	if err != nil {
		return DecisionResponse{}, leaverequesterrors.ErrInvalidActorID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("reject leave request begin tx failed", zap.Error(err))
		return DecisionResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	lr, cur, err := s.lockCurrentStep(ctx, qtx, id, actorUUID)
	if err != nil {
		s.logger.Warn("reject leave request guard failed",
			zap.String("leave_request_id", id),
			zap.Error(err),
		)
		return DecisionResponse{}, err
	}

	now := time.Now().UTC()
	if err := qtx.UpdateApprovalState(ctx, cur.ID.String(), ApprovalRejected, comment, &now); err != nil {
		s.logger.Error("reject leave request step persist failed", zap.Error(err))
		return DecisionResponse{}, err
	}

	// One "no" kills the whole request; later approvers never get a turn and
	// their steps are marked SKIPPED to keep that distinction in the history.
	if err := qtx.SkipApprovalsAfter(ctx, id, cur.Order); err != nil {
		s.logger.Error("reject leave request skip persist failed", zap.Error(err))
		return DecisionResponse{}, err
	}

	if err := qtx.UpdateRequestState(ctx, id, StatusRejected, nil, &now); err != nil {
		s.logger.Error("reject leave request finalize persist failed", zap.Error(err))
		return DecisionResponse{}, err
	}

	body := ""
	if comment != nil {
		body = *comment
	}
	if err := s.notifyInTx(ctx, tx, &notification.Notification{
		ID:                  uuid.New(),
		RecipientEmployeeID: lr.EmployeeID,
		Type:                notification.TypeLeaveStatus,
		Title:               "Your leave request has been rejected",
		Body:                body,
		Link:                "/leaves/" + id,
		Data:                leavePayload(lr.ID),
	}); err != nil {
		s.logger.Error("reject leave request notify failed", zap.Error(err))
		return DecisionResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("reject leave request commit failed", zap.Error(err))
		return DecisionResponse{}, err
	}

	s.logger.Info("reject leave request success",
		zap.String("leave_request_id", id),
		zap.Int("order", cur.Order),
	)
	return DecisionResponse{Ok: true}, nil
}

// lockCurrentStep loads the request under FOR UPDATE and re-checks every
// decision guard against the locked state. The re-check after the lock is
// what makes two concurrent decisions on the same step serialize: the loser
// sees the winner's writes and fails its precondition here.
func (s *service) lockCurrentStep(ctx context.Context, qtx Repository, id string, actor uuid.UUID) (*LeaveRequest, *LeaveApproval, error) {
	lr, err := qtx.LockByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, leaverequesterrors.ErrRequestNotFound
		}
		return nil, nil, err
	}

	if lr.Status != StatusPending {
		return nil, nil, leaverequesterrors.ErrRequestNotPending
	}
	if lr.CurrentApprovalOrder == nil {
		return nil, nil, leaverequesterrors.ErrNoActiveStep
	}

	cur := lr.approvalAt(*lr.CurrentApprovalOrder)
	if cur == nil {
		return nil, nil, leaverequesterrors.ErrApprovalChainCorrupted
	}
	if cur.ApproverEmployeeID != actor {
		return nil, nil, leaverequesterrors.ErrNotYourTurn
	}
	if cur.Status != ApprovalPending {
		return nil, nil, leaverequesterrors.ErrStepAlreadyDecided
	}

	return lr, cur, nil
}

func (s *service) notifyInTx(ctx context.Context, tx *sql.Tx, n *notification.Notification) error {
	if err := s.notifications.WithTx(tx).Create(ctx, n); err != nil {
		return err
	}

	if s.outbox == nil {
		return nil
	}

	event := events.NotificationCreatedEvent{
		EventType:           "notification.created",
		NotificationID:      n.ID.String(),
		RecipientEmployeeID: n.RecipientEmployeeID.String(),
		NotificationType:    n.Type,
		Title:               n.Title,
		Link:                n.Link,
		OccurredAt:          time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.New().String(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: "notification",
		AggregateID:   n.ID.String(),
		EventType:     event.EventType,
		Topic:         events.NotificationCreatedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

func parseDate(v string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return time.Time{}, leaverequesterrors.ErrInvalidDateFormat
	}
	return t, nil
}

func stepPayload(leaveID uuid.UUID, step, total int) []byte {
	payload, _ := json.Marshal(map[string]any{
		"leave_id": leaveID.String(),
		"step":     step,
		"total":    total,
	})
	return payload
}

func leavePayload(leaveID uuid.UUID) []byte {
	payload, _ := json.Marshal(map[string]any{
		"leave_id": leaveID.String(),
	})
	return payload
}

func mapToResponse(lr LeaveRequest) LeaveRequestResponse {
	resp := LeaveRequestResponse{
		ID:                   lr.ID.String(),
		EmployeeID:           lr.EmployeeID.String(),
		UserID:               lr.UserID.String(),
		TypeID:               lr.TypeID.String(),
		StartDate:            lr.StartDate.Format("2006-01-02"),
		EndDate:              lr.EndDate.Format("2006-01-02"),
		Reason:               lr.Reason,
		Status:               lr.Status,
		CurrentApprovalOrder: lr.CurrentApprovalOrder,
		CreatedAt:            lr.CreatedAt.Format(time.RFC3339),
		Approvals:            make([]LeaveApprovalResponse, len(lr.Approvals)),
	}
	if lr.Type != nil {
		resp.TypeName = lr.Type.Name
	}
	if lr.DecidedAt != nil {
		v := lr.DecidedAt.Format(time.RFC3339)
		resp.DecidedAt = &v
	}
	for i, a := range lr.Approvals {
		ar := LeaveApprovalResponse{
			ID:                 a.ID.String(),
			Order:              a.Order,
			ApproverEmployeeID: a.ApproverEmployeeID.String(),
			Status:             a.Status,
			Comment:            a.Comment,
		}
		if a.DecidedAt != nil {
			v := a.DecidedAt.Format(time.RFC3339)
			ar.DecidedAt = &v
		}
		resp.Approvals[i] = ar
	}
	return resp
}

func mapToListResponse(items []LeaveRequest) []LeaveRequestResponse {
	resp := make([]LeaveRequestResponse, len(items))
	for i, lr := range items {
		resp[i] = mapToResponse(lr)
	}
	return resp
}
