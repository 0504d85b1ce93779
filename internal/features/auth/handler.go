package auth

import (
	"crypto/subtle"
	"log"
	"net/http"

	"github.com/cyberportal/api/internal/config"
	"github.com/cyberportal/api/internal/pkg/response"
	"github.com/gin-gonic/gin"
)

type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}

type Handler struct {
	cfg *config.Config
}

func NewHandler(cfg *config.Config) *Handler {
	return &Handler{cfg: cfg}
}

// @Summary Admin login
// @Description Exchanges the shared admin password for a bearer token.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Admin password"
// @Success 200 {object} response.Envelope{token=string}
// @Failure 401 {object} response.Envelope
// @Router /auth/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if subtle.ConstantTimeCompare([]byte(req.Password), []byte(h.cfg.AdminPassword)) != 1 {
		response.Unauthorized(c, "Invalid credentials")
		return
	}

	token, err := GenerateToken(h.cfg)
	if err != nil {
		log.Printf("LOGIN ERROR: %v", err)
		response.Fail(c, http.StatusOK, "Failed to issue token")
		return
	}

	response.OK(c, gin.H{"token": token})
}
