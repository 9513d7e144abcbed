package leaverequest

import (
	"errors"
	"io"
	"net/http"

	"go-hradmin/internal/shared/apperror"
	"go-hradmin/internal/shared/contextutil"
	"go-hradmin/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("leaverequest.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leaverequest.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) Create(c *gin.Context) {
	userID, employeeID, ok := actorIdentity(c)
	if !ok {
		writeServiceError(c, apperror.ErrUnauthorized)
		return
	}

	var req CreateLeaveRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindingError(c, err)
		return
	}

	resp, err := h.service.Create(c.Request.Context(), userID, employeeID, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) My(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		writeServiceError(c, apperror.ErrUnauthorized)
		return
	}

	resp, err := h.service.My(c.Request.Context(), userID)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) MyPendingApprovals(c *gin.Context) {
	_, employeeID, ok := actorIdentity(c)
	if !ok {
		writeServiceError(c, apperror.ErrUnauthorized)
		return
	}

	resp, err := h.service.MyPendingApprovals(c.Request.Context(), employeeID)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Cancel(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		writeServiceError(c, apperror.ErrUnauthorized)
		return
	}

	resp, err := h.service.Cancel(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Approve(c *gin.Context) {
	_, employeeID, ok := actorIdentity(c)
	if !ok {
		writeServiceError(c, apperror.ErrUnauthorized)
		return
	}

	resp, err := h.service.Approve(c.Request.Context(), c.Param("id"), employeeID)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Reject(c *gin.Context) {
	_, employeeID, ok := actorIdentity(c)
	if !ok {
		writeServiceError(c, apperror.ErrUnauthorized)
		return
	}

	// The comment is optional and a bare reject has no body at all, which
	// gin reports as EOF.
	var req RejectLeaveRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		writeBindingError(c, err)
		return
	}

	resp, err := h.service.Reject(c.Request.Context(), c.Param("id"), employeeID, req.Comment)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

// actorIdentity resolves who is acting. Accounts provisioned before their
// employee record exists have no employee_id claim, so the user id doubles
// as the actor identity for them.
func actorIdentity(c *gin.Context) (userID, actorID string, ok bool) {
	userID = c.GetString("user_id")
	if userID == "" {
		return "", "", false
	}
	actorID = c.GetString("employee_id")
	if actorID == "" {
		actorID = userID
	}
	return userID, actorID, true
}

func writeBindingError(c *gin.Context, err error) {
	var vErrs validator.ValidationErrors
	if errors.As(err, &vErrs) {
		writeServiceError(c, apperror.MapValidationError(vErrs))
		return
	}
	writeServiceError(c, apperror.ErrInvalidInput)
}

func writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	if httpErr.Status >= http.StatusInternalServerError {
		ctx := c.Request.Context()
		meta := contextutil.ExtractMetadata(ctx)
		contextutil.GetLogger(ctx, nil).Error("leave request failed",
			zap.String("path", c.FullPath()),
			zap.String("request_id", meta.RequestID),
			zap.String("user_id", meta.UserID),
			zap.String("employee_id", meta.EmployeeID),
			zap.Error(err),
		)
	}
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}
