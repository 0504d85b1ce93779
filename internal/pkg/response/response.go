// ================== internal/pkg/response/response.go ==================
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Envelope is the wire shape for every endpoint: {ok:true, ...} on success,
// {ok:false, error} on failure. Documented here for swagger; handlers build
// the success payload with OK so extra keys (report, reports, token) sit
// beside "ok" rather than under a data wrapper.
type Envelope struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty" example:"Version mismatch"`
}

// OK sends {ok:true} merged with the given fields.
func OK(c *gin.Context, fields gin.H) {
	payload := gin.H{"ok": true}
	for k, v := range fields {
		payload[k] = v
	}
	c.JSON(http.StatusOK, payload)
}

// Fail sends {ok:false, error} with the given HTTP status. Business
// outcomes (conflict, not found) use http.StatusOK; the envelope carries
// the failure, not the transport.
func Fail(c *gin.Context, status int, message string) {
	c.JSON(status, Envelope{OK: false, Error: message})
}

// BadRequest sends a 400 {ok:false, error}.
func BadRequest(c *gin.Context, message string) {
	Fail(c, http.StatusBadRequest, message)
}

// Unauthorized sends a 401 {ok:false, error}.
func Unauthorized(c *gin.Context, message string) {
	Fail(c, http.StatusUnauthorized, message)
}
