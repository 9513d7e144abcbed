package leavetype

import (
	"go-hradmin/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
) {
	types := r.Group("/leave-types")
	types.Use(middleware.AuthMiddleware())
	{
		types.GET("", middleware.RBACAuthorize(rbacService, "leavetype", "read"), handler.GetAll)
		types.GET("/:id", middleware.RBACAuthorize(rbacService, "leavetype", "read"), handler.GetById)
		types.POST("", middleware.RBACAuthorize(rbacService, "leavetype", "create"), handler.Create)
	}
}
