package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"applykit/internal/attachment"
	"applykit/internal/config"
	"applykit/internal/domain"
	"applykit/internal/service"
)

// CoverLetterHandler serves the cover-letter route. The request is multipart
// because the candidate document arrives as a file upload.
type CoverLetterHandler struct {
	svc      service.CoverLetterService
	maxBytes int64
}

// NewCoverLetterHandler creates a new CoverLetterHandler.
func NewCoverLetterHandler(svc service.CoverLetterService, cfg *config.UploadConfig) *CoverLetterHandler {
	return &CoverLetterHandler{
		svc:      svc,
		maxBytes: cfg.MaxAttachmentMB * 1024 * 1024,
	}
}

type coverLetterResponse struct {
	Result string `json:"result"`
}

// Generate handles POST /api/cover-letter.
func (h *CoverLetterHandler) Generate(c *gin.Context) {
	model := c.PostForm("model")
	apiKey := c.PostForm("apiKey")
	if model == "" || apiKey == "" {
		RespondError(c, http.StatusBadRequest, "Model and API key are required.")
		return
	}

	candidateInfo, ok := h.readAttachment(c)
	if !ok {
		return
	}

	result, err := h.svc.Generate(c.Request.Context(), service.CoverLetterInput{
		APIKey:            apiKey,
		Model:             model,
		CandidateInfo:     candidateInfo,
		JobDescription:    c.PostForm("jobDescription"),
		CompanyInfo:       c.PostForm("companyInfo"),
		UserGuideline:     c.PostForm("userGuideline"),
		RoleTitle:         c.PostForm("roleTitle"),
		RecipientName:     c.PostForm("recipientName"),
		RecipientPosition: c.PostForm("recipientPosition"),
	})
	if err != nil {
		HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, coverLetterResponse{Result: result})
}

// readAttachment extracts candidate text from the optional uploaded file.
// Returns ok=false after writing an error response.
func (h *CoverLetterHandler) readAttachment(c *gin.Context) (string, bool) {
	fileHeader, err := c.FormFile("attachment")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return "", true
		}
		RespondError(c, http.StatusBadRequest, "Invalid attachment upload.")
		return "", false
	}

	if fileHeader.Size > h.maxBytes {
		RespondError(c, http.StatusRequestEntityTooLarge, "Attachment exceeds the maximum allowed size.")
		return "", false
	}

	f, err := fileHeader.Open()
	if err != nil {
		HandleError(c, err)
		return "", false
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, h.maxBytes))
	if err != nil {
		HandleError(c, err)
		return "", false
	}

	text, err := attachment.ExtractText(fileHeader.Filename, data)
	if err != nil {
		if errors.Is(err, domain.ErrUnsupportedAttachment) {
			RespondError(c, http.StatusBadRequest, err.Error())
			return "", false
		}
		HandleError(c, err)
		return "", false
	}
	return text, true
}
