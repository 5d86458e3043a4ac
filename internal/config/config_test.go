package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "gsk_test")
	t.Setenv("PORT", "")
	t.Setenv("LLM_PROVIDER", "")
	t.Setenv("FEEDBACK_TIMEOUT", "")

	cfg := Load()

	assert.Equal(t, "8000", cfg.Server.Port)
	assert.Equal(t, ProviderGroq, cfg.Provider.Name)
	assert.Equal(t, "https://api.groq.com/openai/v1", cfg.Groq.BaseURL)
	assert.Equal(t, "llama3-70b-8192", cfg.Groq.Model)
	assert.Equal(t, 60*time.Second, cfg.Provider.Timeout)
	assert.Equal(t, "gsk_test", cfg.APIKey())
	require.NoError(t, cfg.Validate())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "Gemini")
	t.Setenv("GEMINI_API_KEY", "gm_test")
	t.Setenv("WORKER_CONCURRENCY", "8")
	t.Setenv("FEEDBACK_TIMEOUT", "not-a-duration")
	t.Setenv("LOG_JSON", "true")

	cfg := Load()

	assert.Equal(t, ProviderGemini, cfg.Provider.Name)
	assert.Equal(t, 8, cfg.Worker.Concurrency)
	assert.Equal(t, 60*time.Second, cfg.Provider.Timeout)
	assert.True(t, cfg.Log.JSON)
	assert.Equal(t, "gm_test", cfg.APIKey())
	require.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{
			name:    "groq without key",
			cfg:     Config{Provider: ProviderConfig{Name: ProviderGroq}, Worker: WorkerConfig{Concurrency: 1}},
			wantErr: "GROQ_API_KEY",
		},
		{
			name:    "gemini without key",
			cfg:     Config{Provider: ProviderConfig{Name: ProviderGemini}, Worker: WorkerConfig{Concurrency: 1}},
			wantErr: "GEMINI_API_KEY",
		},
		{
			name:    "unknown provider",
			cfg:     Config{Provider: ProviderConfig{Name: "bard"}, Worker: WorkerConfig{Concurrency: 1}},
			wantErr: "unknown LLM_PROVIDER",
		},
		{
			name: "zero workers",
			cfg: Config{
				Provider: ProviderConfig{Name: ProviderGroq},
				Groq:     GroqConfig{APIKey: "k"},
			},
			wantErr: "WORKER_CONCURRENCY",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
