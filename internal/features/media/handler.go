package media

import (
	"log"
	"net/http"

	"github.com/cyberportal/api/internal/pkg/cloudinary"
	"github.com/cyberportal/api/internal/pkg/response"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	cloudinary *cloudinary.Service
}

func NewHandler(cld *cloudinary.Service) *Handler {
	return &Handler{cloudinary: cld}
}

// @Summary Upload evidence image
// @Description Uploads an image and returns its URL for use as a report's evidence_url.
// @Tags media
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image to upload"
// @Success 200 {object} response.Envelope{upload=cloudinary.UploadResult}
// @Failure 400 {object} response.Envelope
// @Router /media/evidence [post]
func (h *Handler) UploadEvidence(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		response.BadRequest(c, "File is required")
		return
	}
	defer file.Close()

	if err := cloudinary.ValidateImageFile(header); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.cloudinary.UploadImage(c.Request.Context(), file, header.Filename)
	if err != nil {
		log.Printf("UPLOAD ERROR: %v", err)
		response.Fail(c, http.StatusOK, "Failed to upload file")
		return
	}

	response.OK(c, gin.H{"upload": result})
}
