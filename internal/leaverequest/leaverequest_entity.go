package leaverequest

import (
	"time"

	"go-hradmin/internal/leavetype"

	"github.com/google/uuid"
)

// Request statuses. PENDING is the only non-terminal state.
const (
	StatusPending  = "PENDING"
	StatusApproved = "APPROVED"
	StatusRejected = "REJECTED"
	StatusCanceled = "CANCELED"
)

// Approval step statuses. SKIPPED marks steps that never got a turn because an
// earlier step rejected the request.
const (
	ApprovalPending  = "PENDING"
	ApprovalApproved = "APPROVED"
	ApprovalRejected = "REJECTED"
	ApprovalSkipped  = "SKIPPED"
)

type LeaveRequest struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;index:idx_leave_requests_employee_dates"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index"`
	TypeID     uuid.UUID `gorm:"type:uuid;not null"`

	StartDate time.Time `gorm:"type:date;not null;index:idx_leave_requests_employee_dates"`
	EndDate   time.Time `gorm:"type:date;not null;index:idx_leave_requests_employee_dates"`
	Reason    string    `gorm:"type:varchar(1000)"`

	// CurrentApprovalOrder is non-null exactly while Status == PENDING; it is
	// the rank of the step awaiting a decision.
	Status               string `gorm:"type:varchar(20);not null;default:'PENDING';index"`
	CurrentApprovalOrder *int   `gorm:"type:int"`

	DecidedAt *time.Time
	CreatedAt time.Time

	Type      *leavetype.LeaveType `gorm:"foreignKey:TypeID"`
	Approvals []LeaveApproval      `gorm:"foreignKey:LeaveRequestID"`
}

type LeaveApproval struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	LeaveRequestID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_leave_approvals_order"`

	// Order is the 1-based rank in the chain, contiguous per request.
	Order              int       `gorm:"column:approval_order;not null;uniqueIndex:uq_leave_approvals_order"`
	ApproverEmployeeID uuid.UUID `gorm:"type:uuid;not null;index"`

	Status    string  `gorm:"type:varchar(20);not null;default:'PENDING'"`
	Comment   *string `gorm:"type:text"`
	DecidedAt *time.Time
	CreatedAt time.Time
}

func (LeaveRequest) TableName() string {
	return "leave_requests"
}

func (LeaveApproval) TableName() string {
	return "leave_approvals"
}

func (r *LeaveRequest) approvalAt(order int) *LeaveApproval {
	for i := range r.Approvals {
		if r.Approvals[i].Order == order {
			return &r.Approvals[i]
		}
	}
	return nil
}
