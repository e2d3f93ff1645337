package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"APP_NAMESPACE", "LLM_MODEL", "LOGIN_DELAY", "TOAST_TTL", "STORAGE_BACKEND", "ASSISTANT_TOPIC", "AI_REQUEST_TIMEOUT"} {
		if value, ok := os.LookupEnv(key); ok {
			key := key
			t.Cleanup(func() { os.Setenv(key, value) })
			os.Unsetenv(key)
		}
	}

	cfg := Load()
	assert.Equal(t, "eduai", cfg.App.Namespace)
	assert.Empty(t, cfg.Ai.LLMModel)
	assert.Equal(t, 60*time.Second, cfg.Ai.RequestTimeout)
	assert.Equal(t, time.Second, cfg.Session.LoginDelay)
	assert.Equal(t, 3*time.Second, cfg.Session.ToastTTL)
	assert.Equal(t, "memory", cfg.Database.StorageBackend)
	assert.Equal(t, "ASSISTANT_PROMPT", cfg.Assistant.PromptTopic)
}

func TestLoadLeavesModelToProvider(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "ollama")
	t.Setenv("LLM_MODEL", "")

	cfg := Load()
	assert.Equal(t, "ollama", cfg.Ai.LLMProvider)
	assert.Empty(t, cfg.Ai.LLMModel)
}

func TestGetEnvAsDuration(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  time.Duration
	}{
		{"go duration", "1500ms", 1500 * time.Millisecond},
		{"bare seconds", "5", 5 * time.Second},
		{"zero", "0", 0},
		{"garbage falls back", "soon", 3 * time.Second},
		{"empty falls back", "", 3 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("EDUAI_TEST_DURATION", tt.value)
			assert.Equal(t, tt.want, getEnvAsDuration("EDUAI_TEST_DURATION", 3*time.Second))
		})
	}
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("APP_NAMESPACE", "campus")
	t.Setenv("LOGIN_DELAY", "250ms")
	t.Setenv("STORAGE_BACKEND", "redis")
	t.Setenv("GO_ENV", "production")

	cfg := Load()
	assert.Equal(t, "campus", cfg.App.Namespace)
	assert.Equal(t, 250*time.Millisecond, cfg.Session.LoginDelay)
	assert.Equal(t, "redis", cfg.Database.StorageBackend)
	assert.True(t, cfg.IsProduction())
}
