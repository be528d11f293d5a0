package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"applykit/internal/service"
)

// AssistantHandler serves the application-assistant route.
type AssistantHandler struct {
	svc service.AssistantService
}

// NewAssistantHandler creates a new AssistantHandler.
func NewAssistantHandler(svc service.AssistantService) *AssistantHandler {
	return &AssistantHandler{svc: svc}
}

type assistRequest struct {
	APIKey            string `json:"apiKey"`
	CandidateName     string `json:"candidateName"`
	CandidateJobTitle string `json:"candidateJobTitle"`
	CandidateData     string `json:"candidateData"`
	Question          string `json:"question"`
	JobTitle          string `json:"jobTitle"`
	JobDescription    string `json:"jobDescription"`
	CompanyInfo       string `json:"companyInfo"`
	UserGuideline     string `json:"userGuideline"`
}

type assistResponse struct {
	Answer string `json:"answer"`
}

// Assist handles POST /api/assist. This is the only route that reports an
// invalid upstream API key as 401.
func (h *AssistantHandler) Assist(c *gin.Context) {
	var req assistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "Invalid request body.")
		return
	}
	if req.APIKey == "" {
		RespondError(c, http.StatusBadRequest, "API key is missing.")
		return
	}
	if req.Question == "" || req.JobTitle == "" {
		RespondError(c, http.StatusBadRequest, "Question and Job Title are required fields.")
		return
	}

	answer, err := h.svc.Answer(c.Request.Context(), service.AnswerInput{
		APIKey:            req.APIKey,
		CandidateName:     req.CandidateName,
		CandidateJobTitle: req.CandidateJobTitle,
		CandidateData:     req.CandidateData,
		Question:          req.Question,
		JobTitle:          req.JobTitle,
		JobDescription:    req.JobDescription,
		CompanyInfo:       req.CompanyInfo,
		UserGuideline:     req.UserGuideline,
	})
	if err != nil {
		HandleAuthAwareError(c, err)
		return
	}
	c.JSON(http.StatusOK, assistResponse{Answer: answer})
}
