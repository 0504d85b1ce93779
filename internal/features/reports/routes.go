package reports

import (
	"github.com/cyberportal/api/internal/config"
	"github.com/cyberportal/api/internal/features/auth"
	"github.com/cyberportal/api/internal/features/realtime"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

func RegisterRoutes(router *gin.RouterGroup, db *mongo.Database, cfg *config.Config, hub *realtime.Hub) {
	repo := NewRepository(db)
	service := NewService(repo, hub)
	handler := NewHandler(service)
	adminGuard := auth.AdminGuard(cfg)

	router.POST("/reports", handler.Create)
	router.GET("/reports", handler.List)

	// Transitions take POST or PATCH; dashboards use PATCH.
	router.PATCH("/reports/:id/status", adminGuard, handler.UpdateStatus)
	router.POST("/reports/:id/status", adminGuard, handler.UpdateStatus)
	router.PATCH("/reports/:id/resolve", adminGuard, handler.Resolve)
	router.POST("/reports/:id/resolve", adminGuard, handler.Resolve)
}
