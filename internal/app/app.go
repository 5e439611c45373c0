package app

import (
	"errors"

	"go-leave/internal/employee"
	"go-leave/internal/leave"
	"go-leave/internal/notification"
	"go-leave/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const connectRetries = 5

// Adapters are the concrete implementations injected into the leave workflow.
type Adapters struct {
	Employees employee.Repository
	Leaves    leave.Repository
	Notifier  notification.Service
}

// BuildApp connects the adapters selected by cfg and registers every route on router.
// The returned cleanup closes whatever connections were opened.
func BuildApp(router *gin.Engine, cfg Config) (func(), error) {
	logger := zap.L().Named("app")
	var closers []func() error
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			if err := closers[i](); err != nil {
				logger.Warn("close resource failed", zap.Error(err))
			}
		}
	}

	adapters, err := buildAdapters(cfg, &closers)
	if err != nil {
		cleanup()
		return nil, err
	}

	registerModules(router, cfg, adapters)
	logger.Info("app built",
		zap.String("storage_driver", cfg.StorageDriver),
		zap.Bool("employee_cache", cfg.RedisAddr != ""),
		zap.String("notifier", cfg.Notifier),
	)
	return cleanup, nil
}

func buildAdapters(cfg Config, closers *[]func() error) (Adapters, error) {
	var adapters Adapters

	switch cfg.StorageDriver {
	case StoragePostgres:
		gormDB, err := connection.ConnectGORMWithRetry(cfg.Postgres, connectRetries)
		if err != nil {
			return Adapters{}, err
		}
		sqlDB, err := gormDB.DB()
		if err != nil {
			return Adapters{}, err
		}
		*closers = append(*closers, sqlDB.Close)

		if err := gormDB.AutoMigrate(&employee.Employee{}, &leave.LeaveRequest{}); err != nil {
			return Adapters{}, err
		}
		adapters.Employees = employee.NewRepository(gormDB)
		adapters.Leaves = leave.NewRepository(gormDB)
	case StorageMemory:
		adapters.Employees = employee.NewMemoryRepository(employee.NewMemoryStore())
		adapters.Leaves = leave.NewMemoryRepository(leave.NewMemoryStore())
	default:
		return Adapters{}, errors.New("unknown storage driver: " + cfg.StorageDriver)
	}

	if cfg.RedisAddr != "" {
		rdb, err := connection.ConnectRedisWithRetry(cfg.RedisAddr, connectRetries)
		if err != nil {
			return Adapters{}, err
		}
		*closers = append(*closers, rdb.Close)
		adapters.Employees = employee.NewCachedRepository(adapters.Employees, rdb, cfg.EmployeeCacheTTL)
	}

	switch cfg.Notifier {
	case NotifierLog:
		adapters.Notifier = notification.NewLogNotifier()
	case NotifierSMTP:
		adapters.Notifier = notification.NewSMTPNotifier(cfg.SMTP)
	case NotifierKafka:
		writer, err := connection.ConnectKafkaWithRetry(cfg.KafkaBroker, connectRetries)
		if err != nil {
			return Adapters{}, err
		}
		*closers = append(*closers, writer.Close)
		adapters.Notifier = notification.NewKafkaNotifier(writer, cfg.NotificationTopic)
	default:
		return Adapters{}, errors.New("unknown notifier: " + cfg.Notifier)
	}

	return adapters, nil
}
