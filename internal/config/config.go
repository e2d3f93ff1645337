package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"ai-notetaking-be/internal/constant"

	"github.com/joho/godotenv"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Keys      APIKeys
	Ai        AIConfig
	Session   SessionConfig
	Assistant AssistantConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	NatsURL            string
	RedisURL           string
	Namespace          string
}

type DatabaseConfig struct {
	Connection     string
	StorageBackend string // "postgres", "redis" or "memory"
}

type APIKeys struct {
	GoogleGemini string
	JwtSecret    string
}

type AIConfig struct {
	LLMProvider    string // "gemini" or "ollama"
	LLMModel       string // empty picks the provider's default
	OllamaBaseURL  string
	RequestTimeout time.Duration
}

type SessionConfig struct {
	TTL        time.Duration
	LoginDelay time.Duration
	ToastTTL   time.Duration
}

type AssistantConfig struct {
	PromptTopic string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000"),
			NatsURL:            getEnv("NATS_URL", ""),
			RedisURL:           getEnv("REDIS_URL", ""),
			Namespace:          getEnv("APP_NAMESPACE", constant.DefaultNamespace),
		},
		Database: DatabaseConfig{
			Connection:     getEnv("DB_CONNECTION_STRING", ""),
			StorageBackend: getEnv("STORAGE_BACKEND", "memory"),
		},
		Keys: APIKeys{
			GoogleGemini: getEnv("GOOGLE_GEMINI_API_KEY", ""),
			JwtSecret:    getEnv("JWT_SECRET", ""),
		},
		Ai: AIConfig{
			LLMProvider:    getEnv("LLM_PROVIDER", "gemini"),
			LLMModel:       getEnv("LLM_MODEL", ""),
			OllamaBaseURL:  getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			RequestTimeout: getEnvAsDuration("AI_REQUEST_TIMEOUT", 60*time.Second),
		},
		Session: SessionConfig{
			TTL:        getEnvAsDuration("SESSION_TTL", constant.DefaultSessionTTL),
			LoginDelay: getEnvAsDuration("LOGIN_DELAY", constant.DefaultLoginDelay),
			ToastTTL:   getEnvAsDuration("TOAST_TTL", constant.DefaultToastTTL),
		},
		Assistant: AssistantConfig{
			PromptTopic: getEnv("ASSISTANT_TOPIC", "ASSISTANT_PROMPT"),
		},
	}
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

// getEnvAsDuration accepts Go durations ("1500ms", "2s") or a bare number of seconds.
func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	strValue := getEnv(key, "")
	if strValue == "" {
		return fallback
	}
	if d, err := time.ParseDuration(strValue); err == nil {
		return d
	}
	if seconds := getEnvAsInt(key, -1); seconds >= 0 {
		return time.Duration(seconds) * time.Second
	}
	log.Printf("[WARN] Invalid duration for %s: %q, using %s", key, strValue, fallback)
	return fallback
}
