package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"alfredoptarigan/resume-analyzer/internal/services"
)

const (
	ProviderGroq   = "groq"
	ProviderGemini = "gemini"
)

type Config struct {
	Server   ServerConfig
	Provider ProviderConfig
	Groq     GroqConfig
	Gemini   GeminiConfig
	Storage  StorageConfig
	Worker   WorkerConfig
	Log      LogConfig
}

type ServerConfig struct {
	Port         string
	Env          string
	AllowOrigins string
}

type ProviderConfig struct {
	Name     string
	ProbeURL string
	Timeout  time.Duration
}

type GroqConfig struct {
	APIKey  string
	BaseURL string
	Model   string
}

type GeminiConfig struct {
	APIKey  string
	BaseURL string
	Model   string
}

type StorageConfig struct {
	UploadPath  string
	MaxFileSize int64
}

type WorkerConfig struct {
	Concurrency int
}

type LogConfig struct {
	JSON  bool
	Debug bool
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using environment and default values.")
	}

	env := getEnv("ENV", "development")

	return &Config{
		Server: ServerConfig{
			Port:         getEnv("PORT", "8000"),
			Env:          env,
			AllowOrigins: getEnv("CORS_ALLOW_ORIGINS", "*"),
		},
		Provider: ProviderConfig{
			Name:     strings.ToLower(getEnv("LLM_PROVIDER", ProviderGroq)),
			ProbeURL: getEnv("PROVIDER_PROBE_URL", "https://api.groq.com/"),
			Timeout:  getEnvAsDuration("FEEDBACK_TIMEOUT", "60s"),
		},
		Groq: GroqConfig{
			APIKey:  getEnv("GROQ_API_KEY", ""),
			BaseURL: getEnv("GROQ_BASE_URL", "https://api.groq.com/openai/v1"),
			Model:   getEnv("GROQ_MODEL", "llama3-70b-8192"),
		},
		Gemini: GeminiConfig{
			APIKey:  getEnv("GEMINI_API_KEY", ""),
			BaseURL: getEnv("GEMINI_BASE_URL", ""),
			Model:   getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		},
		Storage: StorageConfig{
			UploadPath:  getEnv("UPLOAD_PATH", "./uploads"),
			MaxFileSize: getEnvAsInt64("MAX_FILE_SIZE", 10485760),
		},
		Worker: WorkerConfig{
			Concurrency: getEnvAsInt("WORKER_CONCURRENCY", 4),
		},
		Log: LogConfig{
			JSON:  getEnvAsBool("LOG_JSON", false),
			Debug: env == "development",
		},
	}
}

// Validate reports configuration that must stop the process from starting.
func (c *Config) Validate() error {
	switch c.Provider.Name {
	case ProviderGroq:
		if c.Groq.APIKey == "" {
			return errors.New("GROQ_API_KEY not set")
		}
	case ProviderGemini:
		if c.Gemini.APIKey == "" {
			return errors.New("GEMINI_API_KEY not set")
		}
	default:
		return fmt.Errorf("unknown LLM_PROVIDER %q", c.Provider.Name)
	}

	if c.Worker.Concurrency < 1 {
		return fmt.Errorf("WORKER_CONCURRENCY must be positive, got %d", c.Worker.Concurrency)
	}

	return nil
}

// APIKey returns the credential of the selected provider.
func (c *Config) APIKey() string {
	if c.Provider.Name == ProviderGemini {
		return c.Gemini.APIKey
	}
	return c.Groq.APIKey
}

// ProviderSettings returns the connection settings of the selected provider.
func (c *Config) ProviderSettings() services.ProviderSettings {
	if c.Provider.Name == ProviderGemini {
		return services.ProviderSettings{
			Name:    ProviderGemini,
			APIKey:  c.Gemini.APIKey,
			BaseURL: c.Gemini.BaseURL,
			Model:   c.Gemini.Model,
		}
	}
	return services.ProviderSettings{
		Name:    ProviderGroq,
		APIKey:  c.Groq.APIKey,
		BaseURL: c.Groq.BaseURL,
		Model:   c.Groq.Model,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	if duration, err := time.ParseDuration(valueStr); err == nil {
		return duration
	}
	duration, _ := time.ParseDuration(defaultValue)
	return duration
}
