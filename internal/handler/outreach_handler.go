package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"applykit/internal/prompt"
	"applykit/internal/service"
)

// Outreach message kinds accepted by the outreach route.
const (
	OutreachAfterApplying = "after-applying"
	OutreachExpandNetwork = "expand-network"
)

// OutreachHandler serves the outreach-message route.
type OutreachHandler struct {
	svc service.OutreachService
}

// NewOutreachHandler creates a new OutreachHandler.
func NewOutreachHandler(svc service.OutreachService) *OutreachHandler {
	return &OutreachHandler{svc: svc}
}

type outreachRequest struct {
	Type   string          `json:"type"`
	APIKey string          `json:"apiKey"`
	Data   json.RawMessage `json:"data"`
}

type outreachResponse struct {
	Message string `json:"message"`
}

// Generate handles POST /api/outreach. The payload shape of "data" depends
// on "type", so it is decoded per kind.
func (h *OutreachHandler) Generate(c *gin.Context) {
	var req outreachRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "Invalid request body.")
		return
	}
	if req.APIKey == "" {
		RespondError(c, http.StatusBadRequest, "Gemini API key is required.")
		return
	}

	var (
		message string
		err     error
	)
	switch req.Type {
	case OutreachAfterApplying:
		var data prompt.AfterApplyingInput
		if err := json.Unmarshal(req.Data, &data); err != nil {
			RespondError(c, http.StatusBadRequest, "Invalid data for after-applying message.")
			return
		}
		message, err = h.svc.AfterApplying(c.Request.Context(), req.APIKey, data)
	case OutreachExpandNetwork:
		var data prompt.ExpandNetworkInput
		if err := json.Unmarshal(req.Data, &data); err != nil {
			RespondError(c, http.StatusBadRequest, "Invalid data for expand-network message.")
			return
		}
		message, err = h.svc.ExpandNetwork(c.Request.Context(), req.APIKey, data)
	default:
		RespondError(c, http.StatusBadRequest, "Invalid generation type")
		return
	}

	if err != nil {
		HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, outreachResponse{Message: message})
}
