package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"applykit/internal/config"
	"applykit/internal/handler"
	"applykit/internal/router"
	"applykit/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testServices struct {
	cv          service.CVService
	render      service.RenderService
	assistant   service.AssistantService
	outreach    service.OutreachService
	coverLetter service.CoverLetterService
}

func newTestRouter(svcs testServices) *gin.Engine {
	cfg := &config.Config{
		CORS:     config.CORSConfig{AllowedOrigins: []string{"*"}},
		Renderer: config.RendererConfig{Filename: "CV_Final.pdf"},
		Upload:   config.UploadConfig{MaxAttachmentMB: 10},
	}

	cvH := handler.NewCVHandler(svcs.cv, svcs.render, &cfg.Renderer)
	assistantH := handler.NewAssistantHandler(svcs.assistant)
	outreachH := handler.NewOutreachHandler(svcs.outreach)
	coverLetterH := handler.NewCoverLetterHandler(svcs.coverLetter, &cfg.Upload)
	healthH := handler.NewHealthHandler()

	return router.Setup(cfg, cvH, assistantH, outreachH, coverLetterH, healthH)
}

func postJSON(t *testing.T, r *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func errorMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp["error"]
}
