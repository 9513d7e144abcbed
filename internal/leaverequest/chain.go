package leaverequest

import (
	leaverequesterrors "go-hradmin/internal/leaverequest/errors"

	"github.com/google/uuid"
)

// BuildApprovalChain validates the submitter-supplied approver list and
// materializes it as ordered approval steps. The input sequence IS the
// escalation order: orders are assigned 1..N with no reordering. A repeated
// approver or the submitter appearing in the list is a rejection, not a
// silent drop.
func BuildApprovalChain(submitterEmployeeID uuid.UUID, approverIDs []string) ([]LeaveApproval, error) {
	if len(approverIDs) == 0 {
		return nil, leaverequesterrors.ErrEmptyApproverList
	}

	seen := make(map[uuid.UUID]struct{}, len(approverIDs))
	approvals := make([]LeaveApproval, 0, len(approverIDs))

	for i, raw := range approverIDs {
		approverID, err := uuid.Parse(raw)
		if err != nil {
			return nil, leaverequesterrors.ErrInvalidActorID
		}
		if approverID == submitterEmployeeID {
			return nil, leaverequesterrors.ErrSelfApproval
		}
		if _, dup := seen[approverID]; dup {
			return nil, leaverequesterrors.ErrDuplicateApprover
		}
		seen[approverID] = struct{}{}

		approvals = append(approvals, LeaveApproval{
			ID:                 uuid.New(),
			Order:              i + 1,
			ApproverEmployeeID: approverID,
			Status:             ApprovalPending,
		})
	}

	return approvals, nil
}
