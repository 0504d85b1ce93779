package catalog

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

func RegisterRoutes(router *gin.RouterGroup, db *mongo.Database) {
	handler := NewHandler(NewRepository(db))

	router.GET("/threat-types", handler.ListThreatTypes)
	router.GET("/statuses", handler.ListStatuses)
}
