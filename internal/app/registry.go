package app

import (
	"net/http"
	"time"

	"go-assetms/internal/employee"
	"go-assetms/internal/office"
	"go-assetms/internal/shared/token"
	"go-assetms/internal/user"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	gormDB *gorm.DB,
	tokens *token.Manager,
	logger *zap.Logger,
) error {
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	// --- Repositories ---
	officeRepo := office.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	userRepo := user.NewRepository(gormDB)

	// --- Services ---
	officeService := office.NewService(officeRepo, logger)
	employeeService := employee.NewService(employeeRepo, logger)
	userService := user.NewService(gormDB, userRepo, employeeRepo, tokens, logger)

	// --- Handlers ---
	officeHandler := office.NewHandler(officeService, logger)
	employeeHandler := employee.NewHandler(employeeService, logger)
	userHandler := user.NewHandler(userService, logger)

	// --- Routes Registration ---
	api := router.Group("/api")
	{
		office.RegisterRoutes(api, officeHandler)
		employee.RegisterRoutes(api, employeeHandler, tokens, logger)
		user.RegisterRoutes(api, userHandler)
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return nil
}
