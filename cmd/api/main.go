package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/salonops/salon-scheduler/internal/config"
	dbpkg "github.com/salonops/salon-scheduler/internal/db"
	"github.com/salonops/salon-scheduler/internal/logging"
	"github.com/salonops/salon-scheduler/internal/middleware"
	"github.com/salonops/salon-scheduler/internal/routes"
)

func main() {

	cfg := config.Load()
	logging.Init(cfg.IsProduction())
	logger := logging.Get()

	db := dbpkg.NewDB(cfg)

	r := gin.Default()

	r.Use(middleware.CORS(cfg.CORSAllowedOrigins))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg)

	logger.Info("server running", zap.String("addr", cfg.Addr()))
	if err := r.Run(cfg.Addr()); err != nil {
		logger.Fatal("failed to start server", zap.Error(err))
	}
}
