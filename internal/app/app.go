package app

import (
	"go-assetms/internal/employee"
	"go-assetms/internal/office"
	"go-assetms/internal/shared/connection"
	"go-assetms/internal/shared/token"
	"go-assetms/internal/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func BuildApp(router *gin.Engine, cfg Config, logger *zap.Logger) error {
	// 1. Setup Infrastructure
	db, err := connection.ConnectGORMWithRetry(cfg.DatabaseURL, 5)
	if err != nil {
		return err
	}
	logger.Info("database connection established")

	if err := db.AutoMigrate(
		&office.Office{},
		&employee.Employee{},
		&user.User{},
	); err != nil {
		return err
	}

	tokens := token.NewManager(cfg.JWTSecret, cfg.JWTTTL)

	// 2. Register Modules & Routes
	return registerModules(router, db, tokens, logger)
}
