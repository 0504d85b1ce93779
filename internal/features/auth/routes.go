package auth

import (
	"github.com/cyberportal/api/internal/config"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup, cfg *config.Config) {
	// Login only exists when admin auth is fully configured.
	if cfg.AdminJWTSecret == "" || cfg.AdminPassword == "" {
		return
	}

	handler := NewHandler(cfg)
	router.POST("/auth/login", handler.Login)
}
