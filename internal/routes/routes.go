package routes

import (
	"github.com/cyberportal/api/internal/config"
	"github.com/cyberportal/api/internal/features/auth"
	"github.com/cyberportal/api/internal/features/catalog"
	"github.com/cyberportal/api/internal/features/media"
	"github.com/cyberportal/api/internal/features/realtime"
	"github.com/cyberportal/api/internal/features/reports"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

func SetupRoutes(router *gin.Engine, db *mongo.Database, cfg *config.Config, hub *realtime.Hub) {
	// API v1 group
	api := router.Group("/api/v1")

	auth.RegisterRoutes(api, cfg)
	catalog.RegisterRoutes(api, db)
	reports.RegisterRoutes(api, db, cfg, hub)
	realtime.RegisterRoutes(api, hub)
	media.RegisterRoutes(api, cfg)
}
