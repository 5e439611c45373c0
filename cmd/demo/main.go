package main

import (
	"context"

	"go-leave/internal/app"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	result, err := app.RunDemo(context.Background())
	if err != nil {
		logger.Fatal("demo failed", zap.Error(err))
	}
	logger.Info("demo finished",
		zap.Int("leave_requests", len(result.LeaveRequests)),
		zap.Int("notifications", len(result.Notifications)),
	)
}
