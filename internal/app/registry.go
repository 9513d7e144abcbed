package app

import (
	"database/sql"
	"path/filepath"

	"go-hradmin/internal/auth"
	"go-hradmin/internal/department"
	"go-hradmin/internal/employee"
	"go-hradmin/internal/leaverequest"
	"go-hradmin/internal/leavetype"
	"go-hradmin/internal/messaging/kafka"
	"go-hradmin/internal/notification"
	"go-hradmin/internal/position"
	"go-hradmin/internal/rbac"
	"go-hradmin/internal/rbac/infra"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	// --- Repositories ---
	authRepo := auth.NewRepository(gormDB)
	departmentRepo := department.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	leaveRequestRepo := leaverequest.NewRepository(gormDB, db)
	leaveTypeRepo := leavetype.NewRepository(gormDB)
	notificationRepo := notification.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)
	positionRepo := position.NewRepository(gormDB)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer(filepath.Join("internal", "rbac", "infra", "model.conf"))
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(enforcer)
	if err := rbacService.LoadDefaultPolicy(); err != nil {
		return err
	}

	// --- Services ---
	authService := auth.NewService(authRepo, employeeRepo)
	departmentService := department.NewService(departmentRepo)
	employeeService := employee.NewService(employeeRepo, rdb)
	leaveRequestService := leaverequest.NewService(db, leaveRequestRepo, leaveTypeRepo, notificationRepo, outboxRepo)
	leaveTypeService := leavetype.NewService(db, leaveTypeRepo, rdb)
	notificationService := notification.NewService(notificationRepo)
	positionService := position.NewService(positionRepo)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	departmentHandler := department.NewHandler(departmentService)
	employeeHandler := employee.NewHandler(employeeService)
	leaveRequestHandler := leaverequest.NewHandler(leaveRequestService)
	leaveTypeHandler := leavetype.NewHandler(leaveTypeService)
	notificationHandler := notification.NewHandler(notificationService)
	positionHandler := position.NewHandler(positionService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler)
		department.RegisterRoutes(api, departmentHandler, rbacService)
		employee.RegisterRoutes(api, employeeHandler, rbacService)
		leaverequest.RegisterRoutes(api, leaveRequestHandler, rbacService)
		leavetype.RegisterRoutes(api, leaveTypeHandler, rbacService)
		notification.RegisterRoutes(api, notificationHandler, rbacService)
		position.RegisterRoutes(api, positionHandler, rbacService)
	}

	return nil
}
