package leavetypeerrors

import (
	"net/http"

	"go-hradmin/internal/shared/apperror"
)

var (
	ErrLeaveTypeNotFound = apperror.New(
		apperror.CodeNotFound,
		"leave type not found",
		http.StatusNotFound,
	)
	ErrLeaveTypeNameTaken = apperror.New(
		apperror.CodeConflict,
		"leave type with this name already exists",
		http.StatusConflict,
	)
)
