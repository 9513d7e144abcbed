package middleware

import (
	"go-hradmin/internal/domain"
	"go-hradmin/internal/shared/apperror"
	"go-hradmin/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// RBACService is a local interface so any package exposing Enforce can be
// plugged in without importing the rbac package here.
type RBACService interface {
	Enforce(req domain.EnforceRequest) (bool, error)
}

func RBACAuthorize(service RBACService, resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := c.Get("role")
		if !ok {
			abortWith(c, apperror.ErrUnauthorized, nil)
			return
		}

		req := domain.EnforceRequest{
			Role:     role.(string),
			Resource: resource,
			Action:   action,
		}

		allowed, err := service.Enforce(req)
		if err != nil {
			abortWith(c, apperror.ErrInternal, nil)
			return
		}

		if !allowed {
			abortWith(c, apperror.ErrForbidden, gin.H{"required": resource + ":" + action})
			return
		}
		c.Next()
	}
}

func abortWith(c *gin.Context, appErr *apperror.AppError, details any) {
	response.Error(c, appErr.HTTPStatus, appErr.Code, appErr.Message, details)
	c.Abort()
}
