package leaverequest_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"go-hradmin/internal/leaverequest"
	leaverequesterrors "go-hradmin/internal/leaverequest/errors"
	"go-hradmin/internal/leavetype"
	"go-hradmin/internal/messaging/kafka"
	"go-hradmin/internal/notification"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeLeaveRequestRepository struct {
	createFn                func(ctx context.Context, req *leaverequest.LeaveRequest, approvals []leaverequest.LeaveApproval) error
	lockByIDFn              func(ctx context.Context, id string) (*leaverequest.LeaveRequest, error)
	findAllByUserFn         func(ctx context.Context, userID string) ([]leaverequest.LeaveRequest, error)
	findPendingByApproverFn func(ctx context.Context, approverEmployeeID string) ([]leaverequest.LeaveRequest, error)
	updateRequestStateFn    func(ctx context.Context, id, status string, currentOrder *int, decidedAt *time.Time) error
	updateApprovalStateFn   func(ctx context.Context, approvalID, status string, comment *string, decidedAt *time.Time) error
	skipApprovalsAfterFn    func(ctx context.Context, requestID string, order int) error
	hasOverlappingRequestFn func(ctx context.Context, employeeID string, startDate, endDate time.Time) (bool, error)
}

func (f *fakeLeaveRequestRepository) WithTx(tx *sql.Tx) leaverequest.Repository {
	return f
}

func (f *fakeLeaveRequestRepository) Create(ctx context.Context, req *leaverequest.LeaveRequest, approvals []leaverequest.LeaveApproval) error {
	if f.createFn != nil {
		return f.createFn(ctx, req, approvals)
	}
	return nil
}

func (f *fakeLeaveRequestRepository) LockByID(ctx context.Context, id string) (*leaverequest.LeaveRequest, error) {
	if f.lockByIDFn != nil {
		return f.lockByIDFn(ctx, id)
	}
	return nil, sql.ErrNoRows
}

func (f *fakeLeaveRequestRepository) FindAllByUser(ctx context.Context, userID string) ([]leaverequest.LeaveRequest, error) {
	if f.findAllByUserFn != nil {
		return f.findAllByUserFn(ctx, userID)
	}
	return nil, nil
}

func (f *fakeLeaveRequestRepository) FindPendingByApprover(ctx context.Context, approverEmployeeID string) ([]leaverequest.LeaveRequest, error) {
	if f.findPendingByApproverFn != nil {
		return f.findPendingByApproverFn(ctx, approverEmployeeID)
	}
	return nil, nil
}

func (f *fakeLeaveRequestRepository) UpdateRequestState(ctx context.Context, id, status string, currentOrder *int, decidedAt *time.Time) error {
	if f.updateRequestStateFn != nil {
		return f.updateRequestStateFn(ctx, id, status, currentOrder, decidedAt)
	}
	return nil
}

func (f *fakeLeaveRequestRepository) UpdateApprovalState(ctx context.Context, approvalID, status string, comment *string, decidedAt *time.Time) error {
	if f.updateApprovalStateFn != nil {
		return f.updateApprovalStateFn(ctx, approvalID, status, comment, decidedAt)
	}
	return nil
}

func (f *fakeLeaveRequestRepository) SkipApprovalsAfter(ctx context.Context, requestID string, order int) error {
	if f.skipApprovalsAfterFn != nil {
		return f.skipApprovalsAfterFn(ctx, requestID, order)
	}
	return nil
}

func (f *fakeLeaveRequestRepository) HasOverlappingRequest(ctx context.Context, employeeID string, startDate, endDate time.Time) (bool, error) {
	if f.hasOverlappingRequestFn != nil {
		return f.hasOverlappingRequestFn(ctx, employeeID, startDate, endDate)
	}
	return false, nil
}

type fakeLeaveTypeRepository struct {
	findByIDFn func(ctx context.Context, id string) (*leavetype.LeaveType, error)
}

func (f *fakeLeaveTypeRepository) WithTx(tx *sql.Tx) leavetype.Repository { return f }
func (f *fakeLeaveTypeRepository) Create(ctx context.Context, lt *leavetype.LeaveType) error {
	return nil
}
func (f *fakeLeaveTypeRepository) FindAll(ctx context.Context) ([]leavetype.LeaveType, error) {
	return nil, nil
}
func (f *fakeLeaveTypeRepository) FindByID(ctx context.Context, id string) (*leavetype.LeaveType, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return &leavetype.LeaveType{ID: uuid.MustParse(id), Name: "Annual Leave"}, nil
}
func (f *fakeLeaveTypeRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	return false, nil
}

type fakeNotificationRepository struct {
	createFn func(ctx context.Context, n *notification.Notification) error
	created  []notification.Notification
}

func (f *fakeNotificationRepository) WithTx(tx *sql.Tx) notification.Repository { return f }
func (f *fakeNotificationRepository) Create(ctx context.Context, n *notification.Notification) error {
	f.created = append(f.created, *n)
	if f.createFn != nil {
		return f.createFn(ctx, n)
	}
	return nil
}
func (f *fakeNotificationRepository) FindAllByRecipient(ctx context.Context, recipientEmployeeID string) ([]notification.Notification, error) {
	return nil, nil
}
func (f *fakeNotificationRepository) MarkRead(ctx context.Context, id, recipientEmployeeID string) (int64, error) {
	return 0, nil
}
func (f *fakeNotificationRepository) MarkAllRead(ctx context.Context, recipientEmployeeID string) error {
	return nil
}
func (f *fakeNotificationRepository) CreateDelivery(ctx context.Context, d *notification.NotificationDelivery) error {
	return nil
}
func (f *fakeNotificationRepository) MarkDelivered(ctx context.Context, notificationID string, at time.Time) error {
	return nil
}

type fakeOutboxRepository struct {
	created []kafka.OutboxEvent
}

func (f *fakeOutboxRepository) WithTx(tx *sql.Tx) kafka.OutboxRepository { return f }
func (f *fakeOutboxRepository) Create(ctx context.Context, event kafka.OutboxEvent) error {
	f.created = append(f.created, event)
	return nil
}
func (f *fakeOutboxRepository) ListPending(ctx context.Context, limit int) ([]kafka.OutboxEvent, error) {
	return nil, nil
}
func (f *fakeOutboxRepository) MarkSent(ctx context.Context, id string) error { return nil }
func (f *fakeOutboxRepository) MarkFailed(ctx context.Context, id string, reason string) error {
	return nil
}
func (f *fakeOutboxRepository) PurgeSent(ctx context.Context, olderThan time.Duration) (int64, error) {
	return 0, nil
}

type leaveRequestServiceDeps struct {
	db            *sql.DB
	sqlMock       sqlmock.Sqlmock
	service       leaverequest.Service
	repo          *fakeLeaveRequestRepository
	types         *fakeLeaveTypeRepository
	notifications *fakeNotificationRepository
	outbox        *fakeOutboxRepository
}

func setupLeaveRequestServiceTest(t *testing.T) *leaveRequestServiceDeps {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)

	repo := &fakeLeaveRequestRepository{}
	types := &fakeLeaveTypeRepository{}
	notifications := &fakeNotificationRepository{}
	outbox := &fakeOutboxRepository{}

	svc := leaverequest.NewService(db, repo, types, notifications, outbox)

	return &leaveRequestServiceDeps{
		db:            db,
		sqlMock:       sqlMock,
		service:       svc,
		repo:          repo,
		types:         types,
		notifications: notifications,
		outbox:        outbox,
	}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func pendingRequest(employeeID, userID uuid.UUID, approverIDs ...uuid.UUID) *leaverequest.LeaveRequest {
	id := uuid.New()
	firstOrder := 1
	req := &leaverequest.LeaveRequest{
		ID:                   id,
		EmployeeID:           employeeID,
		UserID:               userID,
		TypeID:               uuid.New(),
		StartDate:            time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		EndDate:              time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC),
		Status:               leaverequest.StatusPending,
		CurrentApprovalOrder: &firstOrder,
	}
	for i, approverID := range approverIDs {
		req.Approvals = append(req.Approvals, leaverequest.LeaveApproval{
			ID:                 uuid.New(),
			LeaveRequestID:     id,
			Order:              i + 1,
			ApproverEmployeeID: approverID,
			Status:             leaverequest.ApprovalPending,
		})
	}
	return req
}

func TestLeaveRequestService_Create(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New().String()
	employeeID := uuid.New().String()
	typeID := uuid.New().String()
	approverA := uuid.New().String()
	approverB := uuid.New().String()

	validReq := func() leaverequest.CreateLeaveRequestRequest {
		return leaverequest.CreateLeaveRequestRequest{
			TypeID:              typeID,
			StartDate:           "2026-09-01",
			EndDate:             "2026-09-03",
			Reason:              "Family event",
			ApproverEmployeeIDs: []string{approverA, approverB},
		}
	}

	t.Run("success", func(t *testing.T) {
		deps := setupLeaveRequestServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)

		deps.repo.createFn = func(ctx context.Context, req *leaverequest.LeaveRequest, approvals []leaverequest.LeaveApproval) error {
			assert.Equal(t, leaverequest.StatusPending, req.Status)
			assert.NotNil(t, req.CurrentApprovalOrder)
			assert.Equal(t, 1, *req.CurrentApprovalOrder)
			assert.Len(t, approvals, 2)
			return nil
		}

		resp, err := deps.service.Create(ctx, userID, employeeID, validReq())

		assert.NoError(t, err)
		assert.Equal(t, leaverequest.StatusPending, resp.Status)
		assert.Equal(t, 1, *resp.CurrentApprovalOrder)
		assert.Len(t, resp.Approvals, 2)

		// First approver gets the prompt and an outbox event rides the same tx.
		assert.Len(t, deps.notifications.created, 1)
		assert.Equal(t, approverA, deps.notifications.created[0].RecipientEmployeeID.String())
		assert.Equal(t, notification.TypeLeaveRequest, deps.notifications.created[0].Type)
		assert.Len(t, deps.outbox.created, 1)
		assert.Equal(t, "notification.created", deps.outbox.created[0].EventType)

		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative bad date format", func(t *testing.T) {
		deps := setupLeaveRequestServiceTest(t)
		defer deps.db.Close()

		req := validReq()
		req.StartDate = "01-09-2026"

		_, err := deps.service.Create(ctx, userID, employeeID, req)
		assert.ErrorIs(t, err, leaverequesterrors.ErrInvalidDateFormat)
	})

	t.Run("negative start after end", func(t *testing.T) {
		deps := setupLeaveRequestServiceTest(t)
		defer deps.db.Close()

		req := validReq()
		req.StartDate = "2026-09-10"

		_, err := deps.service.Create(ctx, userID, employeeID, req)
		assert.ErrorIs(t, err, leaverequesterrors.ErrInvalidDateRange)
	})

	t.Run("success single day range", func(t *testing.T) {
		deps := setupLeaveRequestServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)

		req := validReq()
		req.StartDate = "2026-09-02"
		req.EndDate = "2026-09-02"

		_, err := deps.service.Create(ctx, userID, employeeID, req)
		assert.NoError(t, err)
	})

	t.Run("negative unknown leave type", func(t *testing.T) {
		deps := setupLeaveRequestServiceTest(t)
		defer deps.db.Close()

		deps.types.findByIDFn = func(ctx context.Context, id string) (*leavetype.LeaveType, error) {
			return nil, gorm.ErrRecordNotFound
		}

		_, err := deps.service.Create(ctx, userID, employeeID, validReq())
		assert.ErrorIs(t, err, leaverequesterrors.ErrLeaveTypeNotFound)
	})

	t.Run("negative submitter as approver", func(t *testing.T) {
		deps := setupLeaveRequestServiceTest(t)
		defer deps.db.Close()

		req := validReq()
		req.ApproverEmployeeIDs = []string{approverA, employeeID}

		_, err := deps.service.Create(ctx, userID, employeeID, req)
		assert.ErrorIs(t, err, leaverequesterrors.ErrSelfApproval)
	})

	t.Run("negative overlapping request", func(t *testing.T) {
		deps := setupLeaveRequestServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)

		deps.repo.hasOverlappingRequestFn = func(ctx context.Context, eid string, startDate, endDate time.Time) (bool, error) {
			assert.Equal(t, employeeID, eid)
			return true, nil
		}

		_, err := deps.service.Create(ctx, userID, employeeID, validReq())
		assert.ErrorIs(t, err, leaverequesterrors.ErrOverlappingRequest)
		assert.Empty(t, deps.notifications.created)
	})

	t.Run("negative persist failure rolls back", func(t *testing.T) {
		deps := setupLeaveRequestServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)

		deps.repo.createFn = func(ctx context.Context, req *leaverequest.LeaveRequest, approvals []leaverequest.LeaveApproval) error {
			return errors.New("insert failed")
		}

		_, err := deps.service.Create(ctx, userID, employeeID, validReq())
		assert.Error(t, err)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestLeaveRequestService_Approve(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New()
	userID := uuid.New()
	approverA := uuid.New()
	approverB := uuid.New()

	t.Run("success advances to next step", func(t *testing.T) {
		deps := setupLeaveRequestServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)

		req := pendingRequest(employeeID, userID, approverA, approverB)
		deps.repo.lockByIDFn = func(ctx context.Context, id string) (*leaverequest.LeaveRequest, error) {
			assert.Equal(t, req.ID.String(), id)
			return req, nil
		}

		var approvalStatus string
		deps.repo.updateApprovalStateFn = func(ctx context.Context, approvalID, status string, comment *string, decidedAt *time.Time) error {
			assert.Equal(t, req.Approvals[0].ID.String(), approvalID)
			assert.Nil(t, comment)
			assert.NotNil(t, decidedAt)
			approvalStatus = status
			return nil
		}

		var requestStatus string
		var nextOrder *int
		deps.repo.updateRequestStateFn = func(ctx context.Context, id, status string, currentOrder *int, decidedAt *time.Time) error {
			requestStatus = status
			nextOrder = currentOrder
			assert.Nil(t, decidedAt)
			return nil
		}

		resp, err := deps.service.Approve(ctx, req.ID.String(), approverA.String())

		assert.NoError(t, err)
		assert.True(t, resp.Ok)
		assert.Equal(t, leaverequest.ApprovalApproved, approvalStatus)
		assert.Equal(t, leaverequest.StatusPending, requestStatus)
		assert.NotNil(t, nextOrder)
		assert.Equal(t, 2, *nextOrder)

		assert.Len(t, deps.notifications.created, 1)
		assert.Equal(t, approverB, deps.notifications.created[0].RecipientEmployeeID)
		assert.Equal(t, notification.TypeLeaveRequest, deps.notifications.created[0].Type)
	})

	t.Run("success final step approves request", func(t *testing.T) {
		deps := setupLeaveRequestServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)

		req := pendingRequest(employeeID, userID, approverA)
		deps.repo.lockByIDFn = func(ctx context.Context, id string) (*leaverequest.LeaveRequest, error) {
			return req, nil
		}

		var requestStatus string
		var clearedOrder *int
		var decided *time.Time
		deps.repo.updateRequestStateFn = func(ctx context.Context, id, status string, currentOrder *int, decidedAt *time.Time) error {
			requestStatus = status
			clearedOrder = currentOrder
			decided = decidedAt
			return nil
		}

		resp, err := deps.service.Approve(ctx, req.ID.String(), approverA.String())

		assert.NoError(t, err)
		assert.True(t, resp.Ok)
		assert.Equal(t, leaverequest.StatusApproved, requestStatus)
		assert.Nil(t, clearedOrder)
		assert.NotNil(t, decided)

		assert.Len(t, deps.notifications.created, 1)
		assert.Equal(t, employeeID, deps.notifications.created[0].RecipientEmployeeID)
		assert.Equal(t, notification.TypeLeaveStatus, deps.notifications.created[0].Type)
	})

	t.Run("negative request not found", func(t *testing.T) {
		deps := setupLeaveRequestServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)

		deps.repo.lockByIDFn = func(ctx context.Context, id string) (*leaverequest.LeaveRequest, error) {
			return nil, sql.ErrNoRows
		}

		_, err := deps.service.Approve(ctx, uuid.New().String(), approverA.String())
		assert.ErrorIs(t, err, leaverequesterrors.ErrRequestNotFound)
	})

	t.Run("negative request already finalized", func(t *testing.T) {
		deps := setupLeaveRequestServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)

		req := pendingRequest(employeeID, userID, approverA)
		req.Status = leaverequest.StatusApproved
		req.CurrentApprovalOrder = nil
		deps.repo.lockByIDFn = func(ctx context.Context, id string) (*leaverequest.LeaveRequest, error) {
			return req, nil
		}

		_, err := deps.service.Approve(ctx, req.ID.String(), approverA.String())
		assert.ErrorIs(t, err, leaverequesterrors.ErrRequestNotPending)
	})

	t.Run("negative approver out of turn", func(t *testing.T) {
		deps := setupLeaveRequestServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)

		req := pendingRequest(employeeID, userID, approverA, approverB)
		deps.repo.lockByIDFn = func(ctx context.Context, id string) (*leaverequest.LeaveRequest, error) {
			return req, nil
		}

		_, err := deps.service.Approve(ctx, req.ID.String(), approverB.String())
		assert.ErrorIs(t, err, leaverequesterrors.ErrNotYourTurn)
		assert.Empty(t, deps.notifications.created)
	})

	t.Run("negative step already decided", func(t *testing.T) {
		deps := setupLeaveRequestServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)

		// Simulates the loser of a concurrent double decision: the row it
		// locked shows its own step already resolved by the winner.
		req := pendingRequest(employeeID, userID, approverA, approverB)
		req.Approvals[0].Status = leaverequest.ApprovalApproved
		deps.repo.lockByIDFn = func(ctx context.Context, id string) (*leaverequest.LeaveRequest, error) {
			return req, nil
		}

		_, err := deps.service.Approve(ctx, req.ID.String(), approverA.String())
		assert.ErrorIs(t, err, leaverequesterrors.ErrStepAlreadyDecided)
	})
}

func TestLeaveRequestService_Reject(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New()
	userID := uuid.New()
	approverA := uuid.New()
	approverB := uuid.New()
	approverC := uuid.New()

	t.Run("success rejection is terminal and skips later steps", func(t *testing.T) {
		deps := setupLeaveRequestServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)

		req := pendingRequest(employeeID, userID, approverA, approverB, approverC)
		secondOrder := 2
		req.CurrentApprovalOrder = &secondOrder
		req.Approvals[0].Status = leaverequest.ApprovalApproved
		deps.repo.lockByIDFn = func(ctx context.Context, id string) (*leaverequest.LeaveRequest, error) {
			return req, nil
		}

		comment := "headcount too low that week"
		var rejectedComment *string
		deps.repo.updateApprovalStateFn = func(ctx context.Context, approvalID, status string, c *string, decidedAt *time.Time) error {
			assert.Equal(t, req.Approvals[1].ID.String(), approvalID)
			assert.Equal(t, leaverequest.ApprovalRejected, status)
			rejectedComment = c
			return nil
		}

		var skippedAfter int
		deps.repo.skipApprovalsAfterFn = func(ctx context.Context, requestID string, order int) error {
			assert.Equal(t, req.ID.String(), requestID)
			skippedAfter = order
			return nil
		}

		var requestStatus string
		deps.repo.updateRequestStateFn = func(ctx context.Context, id, status string, currentOrder *int, decidedAt *time.Time) error {
			requestStatus = status
			assert.Nil(t, currentOrder)
			assert.NotNil(t, decidedAt)
			return nil
		}

		resp, err := deps.service.Reject(ctx, req.ID.String(), approverB.String(), &comment)

		assert.NoError(t, err)
		assert.True(t, resp.Ok)
		assert.Equal(t, comment, *rejectedComment)
		assert.Equal(t, 2, skippedAfter)
		assert.Equal(t, leaverequest.StatusRejected, requestStatus)

		assert.Len(t, deps.notifications.created, 1)
		assert.Equal(t, employeeID, deps.notifications.created[0].RecipientEmployeeID)
		assert.Equal(t, comment, deps.notifications.created[0].Body)
	})

	t.Run("negative reject out of turn", func(t *testing.T) {
		deps := setupLeaveRequestServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)

		req := pendingRequest(employeeID, userID, approverA, approverB)
		deps.repo.lockByIDFn = func(ctx context.Context, id string) (*leaverequest.LeaveRequest, error) {
			return req, nil
		}

		_, err := deps.service.Reject(ctx, req.ID.String(), approverB.String(), nil)
		assert.ErrorIs(t, err, leaverequesterrors.ErrNotYourTurn)
	})
}

func TestLeaveRequestService_Cancel(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New()
	userID := uuid.New()
	approverA := uuid.New()

	t.Run("success", func(t *testing.T) {
		deps := setupLeaveRequestServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)

		req := pendingRequest(employeeID, userID, approverA)
		deps.repo.lockByIDFn = func(ctx context.Context, id string) (*leaverequest.LeaveRequest, error) {
			return req, nil
		}

		var status string
		deps.repo.updateRequestStateFn = func(ctx context.Context, id, s string, currentOrder *int, decidedAt *time.Time) error {
			status = s
			assert.Nil(t, currentOrder)
			return nil
		}

		resp, err := deps.service.Cancel(ctx, req.ID.String(), userID.String())

		assert.NoError(t, err)
		assert.Equal(t, leaverequest.StatusCanceled, status)
		assert.Equal(t, leaverequest.StatusCanceled, resp.Status)
		assert.Nil(t, resp.CurrentApprovalOrder)

		// Cancellation is silent, no approver is notified.
		assert.Empty(t, deps.notifications.created)
		assert.Empty(t, deps.outbox.created)
	})

	t.Run("negative only the submitter may cancel", func(t *testing.T) {
		deps := setupLeaveRequestServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)

		req := pendingRequest(employeeID, userID, approverA)
		deps.repo.lockByIDFn = func(ctx context.Context, id string) (*leaverequest.LeaveRequest, error) {
			return req, nil
		}

		_, err := deps.service.Cancel(ctx, req.ID.String(), uuid.New().String())
		assert.ErrorIs(t, err, leaverequesterrors.ErrNotSubmitter)
	})

	t.Run("negative finalized request cannot be canceled", func(t *testing.T) {
		deps := setupLeaveRequestServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)

		req := pendingRequest(employeeID, userID, approverA)
		req.Status = leaverequest.StatusRejected
		req.CurrentApprovalOrder = nil
		deps.repo.lockByIDFn = func(ctx context.Context, id string) (*leaverequest.LeaveRequest, error) {
			return req, nil
		}

		_, err := deps.service.Cancel(ctx, req.ID.String(), userID.String())
		assert.ErrorIs(t, err, leaverequesterrors.ErrRequestNotPending)
	})
}

func TestLeaveRequestService_Queries(t *testing.T) {
	ctx := context.Background()

	t.Run("success my requests newest first from repo", func(t *testing.T) {
		deps := setupLeaveRequestServiceTest(t)
		defer deps.db.Close()

		userID := uuid.New()
		deps.repo.findAllByUserFn = func(ctx context.Context, uid string) ([]leaverequest.LeaveRequest, error) {
			assert.Equal(t, userID.String(), uid)
			return []leaverequest.LeaveRequest{
				*pendingRequest(uuid.New(), userID, uuid.New()),
			}, nil
		}

		resp, err := deps.service.My(ctx, userID.String())
		assert.NoError(t, err)
		assert.Len(t, resp, 1)
	})

	t.Run("negative malformed actor id", func(t *testing.T) {
		deps := setupLeaveRequestServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.MyPendingApprovals(ctx, "nope")
		assert.ErrorIs(t, err, leaverequesterrors.ErrInvalidActorID)
	})
}
