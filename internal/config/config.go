package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Upload   UploadConfig
	Pipeline PipelineConfig
	LLM      LLMConfig
	Redis    RedisConfig
	OTEL     OTELConfig
}

type AppConfig struct {
	ProjectName string
	Version     string
	Environment string
	Debug       bool
	LogLevel    string
	APIPrefix   string
}

type ServerConfig struct {
	Host                string
	Port                int
	RequestTimeout      time.Duration
	ReadTimeout         time.Duration
	WriteTimeout        time.Duration
	MaxConnections      int
	AllowedOrigins      []string
	ShutdownGracePeriod time.Duration
}

type UploadConfig struct {
	MaxFileSizeMB     int
	AllowedExtensions []string
}

// MaxBytes is the upload limit in bytes.
func (u UploadConfig) MaxBytes() int64 {
	return int64(u.MaxFileSizeMB) * 1024 * 1024
}

type PipelineConfig struct {
	LatencyScale          float64
	StrictImageValidation bool
	OCRProvider           string
	OCRLanguages          []string
	ExplainerProvider     string
}

type LLMConfig struct {
	Provider        string
	Model           string
	OpenAIAPIKey    string
	OpenAIBaseURL   string
	AnthropicAPIKey string
	GoogleAPIKey    string
	HTTPTimeout     time.Duration
}

type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
	CacheTTL time.Duration
}

func (r *RedisConfig) RedisAddr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type OTELConfig struct {
	Enabled     bool
	Endpoint    string
	ServiceName string
}

var defaultOrigins = []string{
	"http://localhost:5173",
	"http://localhost:3000",
	"http://127.0.0.1:5173",
	"http://127.0.0.1:3000",
}

var defaultExtensions = []string{"jpg", "jpeg", "png", "gif", "bmp", "tiff", "webp"}

// Load reads an optional .env file and then the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		App: AppConfig{
			ProjectName: getEnv("PROJECT_NAME", "CareCompanion AI"),
			Version:     getEnv("VERSION", "1.0.0"),
			Environment: getEnv("ENVIRONMENT", "development"),
			Debug:       getEnvAsBool("DEBUG", false),
			LogLevel:    strings.ToLower(getEnv("LOG_LEVEL", "info")),
			APIPrefix:   strings.TrimRight(getEnv("API_V1_STR", "/api/v1"), "/"),
		},
		Server: ServerConfig{
			Host:                getEnv("SERVER_HOST", "0.0.0.0"),
			Port:                getEnvAsInt("PORT", 8000),
			RequestTimeout:      time.Duration(getEnvAsInt("REQUEST_TIMEOUT_SECONDS", 60)) * time.Second,
			ReadTimeout:         time.Duration(getEnvAsInt("READ_TIMEOUT_SECONDS", 30)) * time.Second,
			WriteTimeout:        time.Duration(getEnvAsInt("WRITE_TIMEOUT_SECONDS", 90)) * time.Second,
			MaxConnections:      getEnvAsInt("MAX_CONCURRENT_CONNECTIONS", 0),
			AllowedOrigins:      getEnvAsList("ALLOWED_ORIGINS", defaultOrigins),
			ShutdownGracePeriod: time.Duration(getEnvAsInt("SHUTDOWN_GRACE_SECONDS", 10)) * time.Second,
		},
		Upload: UploadConfig{
			MaxFileSizeMB:     getEnvAsInt("MAX_FILE_SIZE_MB", 10),
			AllowedExtensions: lowerAll(getEnvAsList("ALLOWED_EXTENSIONS", defaultExtensions)),
		},
		Pipeline: PipelineConfig{
			LatencyScale:          getEnvAsFloat("PIPELINE_LATENCY_SCALE", 1),
			StrictImageValidation: getEnvAsBool("STRICT_IMAGE_VALIDATION", false),
			OCRProvider:           strings.ToLower(getEnv("OCR_PROVIDER", "mock")),
			OCRLanguages:          getEnvAsList("OCR_LANGUAGES", []string{"eng"}),
			ExplainerProvider:     strings.ToLower(getEnv("EXPLAINER_PROVIDER", "heuristic")),
		},
		LLM: LLMConfig{
			Provider:        strings.ToLower(getEnv("LLM_PROVIDER", "")),
			Model:           getEnv("LLM_MODEL", ""),
			OpenAIAPIKey:    getEnv("OPENAI_API_KEY", ""),
			OpenAIBaseURL:   strings.TrimRight(getEnv("OPENAI_API_BASE", ""), "/"),
			AnthropicAPIKey: getEnv("ANTHROPIC_API_KEY", ""),
			GoogleAPIKey:    getEnv("GOOGLE_API_KEY", ""),
			HTTPTimeout:     time.Duration(getEnvAsInt("LLM_HTTP_TIMEOUT_MS", 45000)) * time.Millisecond,
		},
		Redis: RedisConfig{
			Enabled:  getEnvAsBool("REDIS_ENABLED", false),
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnvAsInt("REDIS_PORT", 6379),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
			CacheTTL: time.Duration(getEnvAsInt("PRICING_CACHE_TTL_SECONDS", 3600)) * time.Second,
		},
		OTEL: OTELConfig{
			Enabled:     getEnvAsBool("OTEL_ENABLED", false),
			Endpoint:    getEnv("OTEL_ENDPOINT", "localhost:4317"),
			ServiceName: getEnv("OTEL_SERVICE_NAME", "carecompanion"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the server cannot run with.
func (c *Config) Validate() error {
	if c.Upload.MaxFileSizeMB <= 0 {
		return fmt.Errorf("MAX_FILE_SIZE_MB must be positive, got %d", c.Upload.MaxFileSizeMB)
	}
	if len(c.Upload.AllowedExtensions) == 0 {
		return fmt.Errorf("ALLOWED_EXTENSIONS must not be empty")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("PORT out of range: %d", c.Server.Port)
	}
	if c.Pipeline.LatencyScale < 0 {
		return fmt.Errorf("PIPELINE_LATENCY_SCALE must not be negative")
	}
	switch c.Pipeline.OCRProvider {
	case "mock", "tesseract":
	default:
		return fmt.Errorf("unknown OCR_PROVIDER %q", c.Pipeline.OCRProvider)
	}
	switch c.Pipeline.ExplainerProvider {
	case "heuristic", "llm":
	default:
		return fmt.Errorf("unknown EXPLAINER_PROVIDER %q", c.Pipeline.ExplainerProvider)
	}
	return nil
}

func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

// getEnvAsList splits a comma separated value, dropping empty entries.
func getEnvAsList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return append([]string(nil), defaultValue...)
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func lowerAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		out = append(out, strings.ToLower(strings.TrimPrefix(s, ".")))
	}
	return out
}
