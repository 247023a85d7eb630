package app

import (
	"database/sql"

	"github.com/SopitaJW/leave-management/internal/department"
	"github.com/SopitaJW/leave-management/internal/employee"
	"github.com/SopitaJW/leave-management/internal/entitlement"
	"github.com/SopitaJW/leave-management/internal/leave"
	"github.com/SopitaJW/leave-management/internal/leavetype"
	"github.com/SopitaJW/leave-management/internal/messaging/kafka"
	"github.com/SopitaJW/leave-management/internal/middleware"
	"github.com/SopitaJW/leave-management/internal/shared/counter"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	// --- Repositories ---
	departmentRepo := department.NewRepository(gormDB)
	leaveTypeRepo := leavetype.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	entitlementRepo := entitlement.NewRepository(gormDB, db)
	leaveRepo := leave.NewRepository(gormDB, db)
	counterRepo := counter.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- Services ---
	departmentService := department.NewService(db, departmentRepo)
	leaveTypeService := leavetype.NewService(db, leaveTypeRepo)
	employeeService := employee.NewService(db, employeeRepo)
	entitlementService := entitlement.NewService(db, entitlementRepo)
	leaveService := leave.NewServiceWithOutbox(
		db, leaveRepo, entitlementRepo, employeeRepo, counterRepo, outboxRepo, rdb,
	)

	// --- Handlers ---
	departmentHandler := department.NewHandler(departmentService)
	leaveTypeHandler := leavetype.NewHandler(leaveTypeService)
	employeeHandler := employee.NewHandler(employeeService)
	entitlementHandler := entitlement.NewHandler(entitlementService)
	leaveHandler := leave.NewHandler(leaveService, rdb)

	// --- Routes Registration ---
	router.Use(middleware.RequestID())
	router.Use(middleware.RateLimitByIP(rate.Limit(20), 40))

	api := router.Group("/api/v1")
	{
		department.RegisterRoutes(api, departmentHandler)
		leavetype.RegisterRoutes(api, leaveTypeHandler)
		employee.RegisterRoutes(api, employeeHandler)
		entitlement.RegisterRoutes(api, entitlementHandler)
		leave.RegisterRoutes(api, leaveHandler, rdb)
	}

	return nil
}
