package leaverequesterrors

import (
	"net/http"

	"go-hradmin/internal/shared/apperror"
)

var (
	ErrInvalidActorID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid actor id",
		http.StatusBadRequest,
	)
	ErrInvalidTypeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid leave type id",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"start_date must be before or equal end_date",
		http.StatusBadRequest,
	)
	ErrReasonTooLong = apperror.New(
		apperror.CodeInvalidInput,
		"reason must not exceed 1000 characters",
		http.StatusBadRequest,
	)
	ErrLeaveTypeNotFound = apperror.New(
		apperror.CodeInvalidInput,
		"leave type does not exist",
		http.StatusBadRequest,
	)
	ErrEmptyApproverList = apperror.New(
		apperror.CodeInvalidInput,
		"at least one approver is required",
		http.StatusBadRequest,
	)
	ErrDuplicateApprover = apperror.New(
		apperror.CodeInvalidInput,
		"approver list contains duplicates",
		http.StatusBadRequest,
	)
	ErrSelfApproval = apperror.New(
		apperror.CodeInvalidInput,
		"the submitter cannot be their own approver",
		http.StatusBadRequest,
	)
	ErrOverlappingRequest = apperror.New(
		apperror.CodeConflict,
		"an active leave request already covers part of this period",
		http.StatusConflict,
	)
	ErrRequestNotFound = apperror.New(
		apperror.CodeNotFound,
		"leave request not found",
		http.StatusNotFound,
	)
	ErrNotSubmitter = apperror.New(
		apperror.CodeForbidden,
		"only the submitter can cancel this request",
		http.StatusForbidden,
	)
	ErrNotYourTurn = apperror.New(
		apperror.CodeForbidden,
		"it is not your turn to decide this request",
		http.StatusForbidden,
	)
	ErrRequestNotPending = apperror.New(
		apperror.CodeInvalidState,
		"leave request is no longer pending",
		http.StatusConflict,
	)
	ErrNoActiveStep = apperror.New(
		apperror.CodeInvalidState,
		"leave request has no approval step in flight",
		http.StatusConflict,
	)
	ErrStepAlreadyDecided = apperror.New(
		apperror.CodeInvalidState,
		"the current approval step was already decided",
		http.StatusConflict,
	)
	ErrApprovalChainCorrupted = apperror.New(
		apperror.CodeInvalidState,
		"approval chain is missing its current step",
		http.StatusConflict,
	)
)
