package notification

import (
	"go-hradmin/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
) {
	notifications := r.Group("/notifications")
	notifications.Use(middleware.AuthMiddleware())
	{
		notifications.GET("", middleware.RBACAuthorize(rbacService, "notification", "read"), handler.My)
		notifications.PATCH("/:id/read", middleware.RBACAuthorize(rbacService, "notification", "read"), handler.MarkRead)
		notifications.PATCH("/read-all", middleware.RBACAuthorize(rbacService, "notification", "read"), handler.MarkAllRead)
	}
}
