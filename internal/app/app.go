package app

import (
	"os"

	"github.com/SopitaJW/leave-management/internal/department"
	"github.com/SopitaJW/leave-management/internal/employee"
	"github.com/SopitaJW/leave-management/internal/entitlement"
	"github.com/SopitaJW/leave-management/internal/leave"
	"github.com/SopitaJW/leave-management/internal/leavetype"
	"github.com/SopitaJW/leave-management/internal/messaging/kafka"
	"github.com/SopitaJW/leave-management/internal/shared/connection"
	"github.com/SopitaJW/leave-management/internal/shared/counter"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func BuildApp(router *gin.Engine) error {
	gormDB, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}

	if err := migrate(gormDB); err != nil {
		return err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}

	redisClient, err := connection.ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		zap.L().Warn("redis unavailable, idempotency and stats caching disabled", zap.Error(err))
		redisClient = nil
	}

	return registerModules(router, sqlDB, gormDB, redisClient)
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&department.Department{},
		&leavetype.LeaveType{},
		&employee.Employee{},
		&entitlement.LeaveEntitlement{},
		&leave.LeaveRequest{},
		&counter.Counter{},
		&kafka.OutboxEvent{},
	)
}
