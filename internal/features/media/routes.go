package media

import (
	"log"

	"github.com/cyberportal/api/internal/config"
	"github.com/cyberportal/api/internal/pkg/cloudinary"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup, cfg *config.Config) {
	cld, err := cloudinary.NewService(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret, "cyberportal")
	if err != nil {
		log.Printf("media uploads disabled: %v", err)
		return
	}

	handler := NewHandler(cld)
	router.POST("/media/evidence", handler.UploadEvidence)
}
