package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "CareCompanion AI", cfg.App.ProjectName)
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, "/api/v1", cfg.App.APIPrefix)
	assert.Equal(t, 8000, cfg.Server.Port)
	assert.Equal(t, 10, cfg.Upload.MaxFileSizeMB)
	assert.Equal(t, int64(10*1024*1024), cfg.Upload.MaxBytes())
	assert.Equal(t, []string{"jpg", "jpeg", "png", "gif", "bmp", "tiff", "webp"}, cfg.Upload.AllowedExtensions)
	assert.Contains(t, cfg.Server.AllowedOrigins, "http://localhost:5173")
	assert.Equal(t, "mock", cfg.Pipeline.OCRProvider)
	assert.Equal(t, "heuristic", cfg.Pipeline.ExplainerProvider)
	assert.Equal(t, 1.0, cfg.Pipeline.LatencyScale)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, "localhost:6379", cfg.Redis.RedisAddr())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("MAX_FILE_SIZE_MB", "2")
	t.Setenv("ALLOWED_EXTENSIONS", ".PNG, jpg,,")
	t.Setenv("ALLOWED_ORIGINS", "https://care.example.com")
	t.Setenv("PIPELINE_LATENCY_SCALE", "0")
	t.Setenv("STRICT_IMAGE_VALIDATION", "true")
	t.Setenv("REQUEST_TIMEOUT_SECONDS", "5")
	t.Setenv("API_V1_STR", "/api/v2/")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.Upload.MaxFileSizeMB)
	assert.Equal(t, []string{"png", "jpg"}, cfg.Upload.AllowedExtensions)
	assert.Equal(t, []string{"https://care.example.com"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, 0.0, cfg.Pipeline.LatencyScale)
	assert.True(t, cfg.Pipeline.StrictImageValidation)
	assert.Equal(t, 5*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "/api/v2", cfg.App.APIPrefix)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"zero size", "MAX_FILE_SIZE_MB", "0"},
		{"negative latency", "PIPELINE_LATENCY_SCALE", "-1"},
		{"unknown ocr", "OCR_PROVIDER", "cloud"},
		{"unknown explainer", "EXPLAINER_PROVIDER", "oracle"},
		{"bad port", "PORT", "70000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
