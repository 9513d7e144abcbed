package leaverequest

import (
	"go-hradmin/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
) {
	leaves := r.Group("/leaves")
	leaves.Use(middleware.AuthMiddleware())
	{
		leaves.POST("", middleware.RBACAuthorize(rbacService, "leave", "create"), handler.Create)
		leaves.GET("/my", middleware.RBACAuthorize(rbacService, "leave", "read"), handler.My)
		leaves.POST("/:id/cancel", middleware.RBACAuthorize(rbacService, "leave", "cancel"), handler.Cancel)
	}

	approvals := r.Group("/approvals/leaves")
	approvals.Use(middleware.AuthMiddleware())
	{
		approvals.GET("", middleware.RBACAuthorize(rbacService, "leave", "decide"), handler.MyPendingApprovals)
		approvals.POST("/:id/approve", middleware.RBACAuthorize(rbacService, "leave", "decide"), handler.Approve)
		approvals.POST("/:id/reject", middleware.RBACAuthorize(rbacService, "leave", "decide"), handler.Reject)
	}
}
