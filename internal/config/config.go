package config

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Log      LogConfig
	CORS     CORSConfig
	Gemini   GeminiConfig
	Renderer RendererConfig
	Upload   UploadConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CORSConfig holds CORS settings. A single "*" entry allows any origin.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// GeminiConfig holds settings for the upstream text-generation API. The API
// key itself is supplied per-request by the caller and is never configured
// or stored server-side.
type GeminiConfig struct {
	BaseURL        string `mapstructure:"base_url"`
	ExtractModel   string `mapstructure:"extract_model"`
	AssistantModel string `mapstructure:"assistant_model"`
	OutreachModel  string `mapstructure:"outreach_model"`
	TimeoutSecs    int    `mapstructure:"timeout_secs"`
}

// RendererConfig holds headless-browser PDF rendering settings. When
// BrowserWSURL is set, renders attach to that devtools endpoint; otherwise a
// local headless Chrome is launched per render.
type RendererConfig struct {
	BrowserWSURL string `mapstructure:"browser_ws_url"`
	TimeoutSecs  int    `mapstructure:"timeout_secs"`
	Filename     string `mapstructure:"filename"`
}

// UploadConfig holds limits for multipart uploads.
type UploadConfig struct {
	MaxAttachmentMB int64 `mapstructure:"max_attachment_mb"`
}

// Load reads configuration from environment variables with the APPLYKIT_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("APPLYKIT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "120s")
	v.SetDefault("server.environment", "development")

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults: the SPA is served from arbitrary origins, so default open
	v.SetDefault("cors.allowed_origins", "*")

	// Gemini defaults
	v.SetDefault("gemini.base_url", "https://generativelanguage.googleapis.com/v1beta/models")
	v.SetDefault("gemini.extract_model", "gemini-2.5-flash")
	v.SetDefault("gemini.assistant_model", "gemini-2.5-flash")
	v.SetDefault("gemini.outreach_model", "gemini-2.0-flash-lite")
	v.SetDefault("gemini.timeout_secs", 120)

	// Renderer defaults
	v.SetDefault("renderer.browser_ws_url", "")
	v.SetDefault("renderer.timeout_secs", 60)
	v.SetDefault("renderer.filename", "CV_Final.pdf")

	// Upload defaults
	v.SetDefault("upload.max_attachment_mb", 10)

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":             "APPLYKIT_SERVER_PORT",
		"server.read_timeout":     "APPLYKIT_SERVER_READ_TIMEOUT",
		"server.write_timeout":    "APPLYKIT_SERVER_WRITE_TIMEOUT",
		"server.environment":      "APPLYKIT_SERVER_ENVIRONMENT",
		"log.level":               "APPLYKIT_LOG_LEVEL",
		"log.format":              "APPLYKIT_LOG_FORMAT",
		"cors.allowed_origins":    "APPLYKIT_CORS_ALLOWED_ORIGINS",
		"gemini.base_url":         "APPLYKIT_GEMINI_BASE_URL",
		"gemini.extract_model":    "APPLYKIT_GEMINI_EXTRACT_MODEL",
		"gemini.assistant_model":  "APPLYKIT_GEMINI_ASSISTANT_MODEL",
		"gemini.outreach_model":   "APPLYKIT_GEMINI_OUTREACH_MODEL",
		"gemini.timeout_secs":     "APPLYKIT_GEMINI_TIMEOUT_SECS",
		"renderer.browser_ws_url": "APPLYKIT_RENDERER_BROWSER_WS_URL",
		"renderer.timeout_secs":   "APPLYKIT_RENDERER_TIMEOUT_SECS",
		"renderer.filename":       "APPLYKIT_RENDERER_FILENAME",
		"upload.max_attachment_mb": "APPLYKIT_UPLOAD_MAX_ATTACHMENT_MB",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if APPLYKIT_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("APPLYKIT_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}

	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: corsOrigins,
	}

	cfg.Gemini = GeminiConfig{
		BaseURL:        v.GetString("gemini.base_url"),
		ExtractModel:   v.GetString("gemini.extract_model"),
		AssistantModel: v.GetString("gemini.assistant_model"),
		OutreachModel:  v.GetString("gemini.outreach_model"),
		TimeoutSecs:    v.GetInt("gemini.timeout_secs"),
	}
	cfg.Renderer = RendererConfig{
		BrowserWSURL: v.GetString("renderer.browser_ws_url"),
		TimeoutSecs:  v.GetInt("renderer.timeout_secs"),
		Filename:     v.GetString("renderer.filename"),
	}
	cfg.Upload = UploadConfig{
		MaxAttachmentMB: v.GetInt64("upload.max_attachment_mb"),
	}

	return cfg, nil
}
