package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"applykit/internal/config"
	"applykit/internal/domain"
	"applykit/internal/service"
)

// CVHandler serves the CV pipeline routes: extract, curate, preview, and
// PDF creation.
type CVHandler struct {
	cvSvc     service.CVService
	renderSvc service.RenderService
	filename  string
}

// NewCVHandler creates a new CVHandler.
func NewCVHandler(cvSvc service.CVService, renderSvc service.RenderService, cfg *config.RendererConfig) *CVHandler {
	return &CVHandler{
		cvSvc:     cvSvc,
		renderSvc: renderSvc,
		filename:  cfg.Filename,
	}
}

type extractRequest struct {
	GeminiAPIKey string `json:"geminiApiKey"`
	LinkedinData string `json:"linkedinData"`
}

// Extract handles POST /api/extract. The response body is the extracted
// profile itself, not an envelope.
func (h *CVHandler) Extract(c *gin.Context) {
	if !requireJSON(c) {
		return
	}

	var req extractRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.GeminiAPIKey == "" || req.LinkedinData == "" {
		RespondError(c, http.StatusBadRequest, "Missing required fields for extraction.")
		return
	}

	profile, err := h.cvSvc.Extract(c.Request.Context(), req.GeminiAPIKey, req.LinkedinData)
	if err != nil {
		HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

type curateRequest struct {
	GeminiAPIKey    string                   `json:"geminiApiKey"`
	GeminiModel     string                   `json:"geminiModel"`
	ExtractedJSON   *domain.ExtractedProfile `json:"extractedJson"`
	TargetJobTitle  string                   `json:"targetJobTitle"`
	PersonalDetails *domain.PersonalDetails  `json:"personalDetails"`
	URLs            *domain.Links            `json:"urls"`
	JobInfo         string                   `json:"jobInfo"`
	CompanyInfo     string                   `json:"companyInfo"`
}

// Curate handles POST /api/curate.
func (h *CVHandler) Curate(c *gin.Context) {
	if !requireJSON(c) {
		return
	}

	var req curateRequest
	if err := c.ShouldBindJSON(&req); err != nil ||
		req.GeminiAPIKey == "" || req.GeminiModel == "" ||
		req.ExtractedJSON == nil || req.TargetJobTitle == "" {
		RespondError(c, http.StatusBadRequest, "Missing required fields for curation.")
		return
	}

	curated, err := h.cvSvc.Curate(c.Request.Context(), service.CurateInput{
		APIKey:          req.GeminiAPIKey,
		Model:           req.GeminiModel,
		Extracted:       req.ExtractedJSON,
		TargetJobTitle:  req.TargetJobTitle,
		PersonalDetails: req.PersonalDetails,
		Links:           req.URLs,
		JobInfo:         req.JobInfo,
		CompanyInfo:     req.CompanyInfo,
	})
	if err != nil {
		HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, curated)
}

type renderRequest struct {
	CuratedData  *domain.CuratedProfile `json:"curatedData"`
	ProfilePhoto *domain.ProfilePhoto   `json:"profilePhoto"`
}

// CreatePDF handles POST /api/create-pdf. The rendered document is returned
// as a file attachment.
func (h *CVHandler) CreatePDF(c *gin.Context) {
	if !requireJSON(c) {
		return
	}

	var req renderRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.CuratedData == nil || req.ProfilePhoto == nil {
		RespondError(c, http.StatusBadRequest, "Missing curated data or photo for PDF generation.")
		return
	}

	pdf, err := h.renderSvc.Render(c.Request.Context(), req.CuratedData, req.ProfilePhoto)
	if err != nil {
		HandleError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", h.filename))
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// Preview handles POST /api/preview. It returns the same markup the PDF path
// prints, so callers can render it locally instead of paying for a headless
// browser round trip. The photo is optional here.
func (h *CVHandler) Preview(c *gin.Context) {
	if !requireJSON(c) {
		return
	}

	var req renderRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.CuratedData == nil {
		RespondError(c, http.StatusBadRequest, "Missing curated data for preview.")
		return
	}

	html, err := h.renderSvc.Preview(req.CuratedData, req.ProfilePhoto)
	if err != nil {
		HandleError(c, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}
