package catalog

import (
	"log"

	"github.com/cyberportal/api/internal/pkg/response"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{repo: repo}
}

// @Summary List threat types
// @Tags catalog
// @Produce json
// @Success 200 {object} response.Envelope{threat_types=[]catalog.ThreatType}
// @Router /threat-types [get]
func (h *Handler) ListThreatTypes(c *gin.Context) {
	types, err := h.repo.ListThreatTypes(c.Request.Context())
	if err != nil {
		log.Printf("CATALOG ERROR: %v", err)
		response.Fail(c, 200, "Failed to fetch threat types")
		return
	}
	response.OK(c, gin.H{"threat_types": types})
}

// @Summary List report statuses
// @Tags catalog
// @Produce json
// @Success 200 {object} response.Envelope{statuses=[]catalog.Status}
// @Router /statuses [get]
func (h *Handler) ListStatuses(c *gin.Context) {
	statuses, err := h.repo.ListStatuses(c.Request.Context())
	if err != nil {
		log.Printf("CATALOG ERROR: %v", err)
		response.Fail(c, 200, "Failed to fetch statuses")
		return
	}
	response.OK(c, gin.H{"statuses": statuses})
}
