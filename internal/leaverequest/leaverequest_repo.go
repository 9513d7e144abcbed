package leaverequest

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, req *LeaveRequest, approvals []LeaveApproval) error
	LockByID(ctx context.Context, id string) (*LeaveRequest, error)
	FindAllByUser(ctx context.Context, userID string) ([]LeaveRequest, error)
	FindPendingByApprover(ctx context.Context, approverEmployeeID string) ([]LeaveRequest, error)
	UpdateRequestState(ctx context.Context, id, status string, currentOrder *int, decidedAt *time.Time) error
	UpdateApprovalState(ctx context.Context, approvalID, status string, comment *string, decidedAt *time.Time) error
	SkipApprovalsAfter(ctx context.Context, requestID string, order int) error
	HasOverlappingRequest(ctx context.Context, employeeID string, startDate, endDate time.Time) (bool, error)
}

type repository struct {
	db    *gorm.DB
	sqlDB *sql.DB
	tx    *sql.Tx
}

func NewRepository(db *gorm.DB, sqlDB *sql.DB) Repository {
	return &repository{db: db, sqlDB: sqlDB}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, sqlDB: r.sqlDB, tx: tx}
}

// The mutating paths go through raw SQL on the enclosing transaction so the
// whole transition commits or rolls back as one unit; the read-only query
// surfaces stay on gorm.

func (r *repository) Create(ctx context.Context, req *LeaveRequest, approvals []LeaveApproval) error {
	exec := r.execer()

	query := `
INSERT INTO leave_requests (
	id, employee_id, user_id, type_id, start_date, end_date, reason, status, current_approval_order, created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())
`
	if _, err := exec.ExecContext(ctx, query,
		req.ID, req.EmployeeID, req.UserID, req.TypeID,
		req.StartDate, req.EndDate, req.Reason, req.Status, req.CurrentApprovalOrder,
	); err != nil {
		return err
	}

	approvalQuery := `
INSERT INTO leave_approvals (
	id, leave_request_id, approval_order, approver_employee_id, status, created_at
) VALUES ($1, $2, $3, $4, $5, NOW())
`
	for i := range approvals {
		approvals[i].LeaveRequestID = req.ID
		if _, err := exec.ExecContext(ctx, approvalQuery,
			approvals[i].ID, req.ID, approvals[i].Order,
			approvals[i].ApproverEmployeeID, approvals[i].Status,
		); err != nil {
			return err
		}
	}

	return nil
}

// LockByID reads the request row under FOR UPDATE. Holding the row lock until
// commit is the concurrency fence: of two concurrent decisions on the same
// request, the second blocks here and then observes the first one's writes.
func (r *repository) LockByID(ctx context.Context, id string) (*LeaveRequest, error) {
	q := r.querier()

	query := `
SELECT id, employee_id, user_id, type_id, start_date, end_date, reason, status, current_approval_order, decided_at, created_at
FROM leave_requests
WHERE id = $1
FOR UPDATE
`
	var (
		req          LeaveRequest
		currentOrder sql.NullInt64
		decidedAt    sql.NullTime
	)
	row := q.QueryRowContext(ctx, query, id)
	if err := row.Scan(
		&req.ID, &req.EmployeeID, &req.UserID, &req.TypeID,
		&req.StartDate, &req.EndDate, &req.Reason, &req.Status,
		&currentOrder, &decidedAt, &req.CreatedAt,
	); err != nil {
		return nil, err
	}
	if currentOrder.Valid {
		v := int(currentOrder.Int64)
		req.CurrentApprovalOrder = &v
	}
	if decidedAt.Valid {
		v := decidedAt.Time
		req.DecidedAt = &v
	}

	approvalQuery := `
SELECT id, leave_request_id, approval_order, approver_employee_id, status, comment, decided_at, created_at
FROM leave_approvals
WHERE leave_request_id = $1
ORDER BY approval_order ASC
`
	rows, err := q.QueryContext(ctx, approvalQuery, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			a          LeaveApproval
			comment    sql.NullString
			aDecidedAt sql.NullTime
		)
		if err := rows.Scan(
			&a.ID, &a.LeaveRequestID, &a.Order, &a.ApproverEmployeeID,
			&a.Status, &comment, &aDecidedAt, &a.CreatedAt,
		); err != nil {
			return nil, err
		}
		if comment.Valid {
			v := comment.String
			a.Comment = &v
		}
		if aDecidedAt.Valid {
			v := aDecidedAt.Time
			a.DecidedAt = &v
		}
		req.Approvals = append(req.Approvals, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &req, nil
}

func (r *repository) FindAllByUser(ctx context.Context, userID string) ([]LeaveRequest, error) {
	var items []LeaveRequest
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Preload("Approvals", func(db *gorm.DB) *gorm.DB {
			return db.Order("approval_order ASC")
		}).
		Preload("Type").
		Order("created_at DESC").
		Find(&items).Error
	return items, err
}

// FindPendingByApprover returns only current-turn items: an approver with a
// future pending step must not see the request until the chain reaches them.
func (r *repository) FindPendingByApprover(ctx context.Context, approverEmployeeID string) ([]LeaveRequest, error) {
	var items []LeaveRequest
	err := r.db.WithContext(ctx).
		Joins("JOIN leave_approvals ON leave_approvals.leave_request_id = leave_requests.id").
		Where("leave_requests.status = ?", StatusPending).
		Where("leave_approvals.approver_employee_id = ?", approverEmployeeID).
		Where("leave_approvals.status = ?", ApprovalPending).
		Where("leave_approvals.approval_order = leave_requests.current_approval_order").
		Preload("Approvals", func(db *gorm.DB) *gorm.DB {
			return db.Order("approval_order ASC")
		}).
		Preload("Type").
		Order("leave_requests.created_at DESC").
		Find(&items).Error
	return items, err
}

func (r *repository) UpdateRequestState(ctx context.Context, id, status string, currentOrder *int, decidedAt *time.Time) error {
	query := `
UPDATE leave_requests
SET status = $2, current_approval_order = $3, decided_at = $4
WHERE id = $1
`
	_, err := r.execer().ExecContext(ctx, query, id, status, currentOrder, decidedAt)
	return err
}

func (r *repository) UpdateApprovalState(ctx context.Context, approvalID, status string, comment *string, decidedAt *time.Time) error {
	query := `
UPDATE leave_approvals
SET status = $2, comment = $3, decided_at = $4
WHERE id = $1
`
	_, err := r.execer().ExecContext(ctx, query, approvalID, status, comment, decidedAt)
	return err
}

func (r *repository) SkipApprovalsAfter(ctx context.Context, requestID string, order int) error {
	query := `
UPDATE leave_approvals
SET status = $3
WHERE leave_request_id = $1 AND approval_order > $2
`
	_, err := r.execer().ExecContext(ctx, query, requestID, order, ApprovalSkipped)
	return err
}

// HasOverlappingRequest is the Overlap Guard predicate: an interval intersects
// when neither range ends before the other starts. Only PENDING and APPROVED
// requests block; canceled and rejected ones never do.
func (r *repository) HasOverlappingRequest(ctx context.Context, employeeID string, startDate, endDate time.Time) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&LeaveRequest{}).
		Where("employee_id = ?", employeeID).
		Where("status IN ?", []string{StatusPending, StatusApproved}).
		Where("NOT (end_date < ? OR start_date > ?)", startDate, endDate).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) execer() interface {
	ExecContext(context.Context, string, ...any) (sql.Result, error)
} {
	if r.tx != nil {
		return r.tx
	}
	return r.sqlDB
}

func (r *repository) querier() interface {
	QueryRowContext(context.Context, string, ...any) *sql.Row
	QueryContext(context.Context, string, ...any) (*sql.Rows, error)
} {
	if r.tx != nil {
		return r.tx
	}
	return r.sqlDB
}
