package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"applykit/internal/domain"
)

// ErrorResponse is the JSON error shape shared by every route.
type ErrorResponse struct {
	Error string `json:"error"`
}

// RespondError writes a JSON error body with the given status.
func RespondError(c *gin.Context, status int, msg string) {
	c.JSON(status, ErrorResponse{Error: msg})
}

// HandleError reports a pipeline failure. Upstream auth failures surface as
// plain 500s here; only the assistant route distinguishes them, through
// HandleAuthAwareError.
func HandleError(c *gin.Context, err error) {
	requestID, _ := c.Get("request_id")
	log.Printf("[%s] request failed: %v", requestID, err)
	RespondError(c, http.StatusInternalServerError, err.Error())
}

// HandleAuthAwareError maps an invalid upstream API key to 401 and defers to
// HandleError for everything else.
func HandleAuthAwareError(c *gin.Context, err error) {
	if errors.Is(err, domain.ErrInvalidAPIKey) {
		RespondError(c, http.StatusUnauthorized,
			"The provided Gemini API key is not valid. Please check and try again.")
		return
	}
	HandleError(c, err)
}

// requireJSON rejects requests whose body is not declared as JSON. Returns
// false after writing a 415 when the content type does not match.
func requireJSON(c *gin.Context) bool {
	if c.ContentType() != "application/json" {
		RespondError(c, http.StatusUnsupportedMediaType, "Expected application/json")
		return false
	}
	return true
}
