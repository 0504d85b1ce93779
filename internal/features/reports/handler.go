package reports

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/cyberportal/api/internal/pkg/response"
	apperrors "github.com/cyberportal/api/pkg/errors"
	"github.com/gin-gonic/gin"
)

// ReportService is what the HTTP layer needs from the engine.
type ReportService interface {
	Submit(ctx context.Context, req CreateReportRequest) (*Report, error)
	List(ctx context.Context, filter ListFilter) ([]Report, error)
	Transition(ctx context.Context, id string, expectedVersion int64, targetStatus string) (*Report, error)
	Resolve(ctx context.Context, id string, expectedVersion int64) (*Report, error)
}

type Handler struct {
	service ReportService
}

func NewHandler(service ReportService) *Handler {
	return &Handler{service: service}
}

// @Summary Submit a threat report
// @Tags reports
// @Accept json
// @Produce json
// @Param request body CreateReportRequest true "Report fields"
// @Success 200 {object} response.Envelope{report=Report}
// @Failure 400 {object} response.Envelope
// @Router /reports [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	report, err := h.service.Submit(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			response.BadRequest(c, "Unknown threat type")
			return
		}
		log.Printf("INSERT ERROR: %v", err)
		response.Fail(c, http.StatusOK, "Failed to submit report")
		return
	}

	response.OK(c, gin.H{"report": report})
}

// @Summary List reports
// @Tags reports
// @Produce json
// @Param status query string false "Exact status code (NOT_OPENED, UNDER_PROCESS, RESOLVED)"
// @Param search query string false "Case-insensitive substring over name, phone, location"
// @Success 200 {object} response.Envelope{reports=[]Report}
// @Router /reports [get]
func (h *Handler) List(c *gin.Context) {
	filter := ListFilter{
		StatusCode: c.Query("status"),
		Search:     c.Query("search"),
	}

	results, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		log.Printf("LIST ERROR: %v", err)
		response.Fail(c, http.StatusOK, "Failed to fetch reports")
		return
	}

	response.OK(c, gin.H{"reports": results})
}

// @Summary Transition a report's status
// @Description Optimistic concurrency: the write applies only if `version` still matches the stored version.
// @Tags reports
// @Accept json
// @Produce json
// @Param id path string true "Report id"
// @Param request body UpdateStatusRequest true "Target status and expected version"
// @Success 200 {object} response.Envelope{report=Report}
// @Router /reports/{id}/status [patch]
func (h *Handler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	report, err := h.service.Transition(c.Request.Context(), c.Param("id"), req.Version, req.NewStatus)
	if err != nil {
		h.failTransition(c, err, "UPDATE", "Failed to update status")
		return
	}

	response.OK(c, gin.H{"report": report})
}

// @Summary Resolve a report
// @Description Same operation as the status transition with the target fixed to RESOLVED.
// @Tags reports
// @Accept json
// @Produce json
// @Param id path string true "Report id"
// @Param request body ResolveRequest true "Expected version"
// @Success 200 {object} response.Envelope{report=Report}
// @Router /reports/{id}/resolve [patch]
func (h *Handler) Resolve(c *gin.Context) {
	var req ResolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	report, err := h.service.Resolve(c.Request.Context(), c.Param("id"), req.Version)
	if err != nil {
		h.failTransition(c, err, "RESOLVE", "Failed to resolve report")
		return
	}

	response.OK(c, gin.H{"report": report})
}

// failTransition maps engine errors onto the response envelope. Conflict
// and NotFound are business outcomes carried in a 200 envelope, never
// transport errors; conflicts are routine and not logged.
func (h *Handler) failTransition(c *gin.Context, err error, op, fallback string) {
	switch {
	case errors.Is(err, apperrors.ErrConflict):
		response.Fail(c, http.StatusOK, "Version mismatch")
	case errors.Is(err, apperrors.ErrNotFound):
		response.Fail(c, http.StatusOK, "Not found")
	case errors.Is(err, apperrors.ErrValidation):
		response.BadRequest(c, "Invalid status")
	case errors.Is(err, apperrors.ErrTransient):
		log.Printf("%s ERROR (transient): %v", op, err)
		response.Fail(c, http.StatusOK, "Temporarily unavailable, please retry")
	default:
		log.Printf("%s ERROR: %v", op, err)
		response.Fail(c, http.StatusOK, fallback)
	}
}
