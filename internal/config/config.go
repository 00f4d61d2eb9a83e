// Package config provides configuration loading and validation for the
// analyzer service. Values come from environment variables; main loads a
// .env file first when present.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all runtime settings for the service.
type Config struct {
	// Server
	Port     int
	LogJSON  bool
	LogDebug bool

	// Security. An empty APIKey disables the API-key check (dev mode).
	APIKey string

	// Cache
	RedisURL    string
	CacheTTL    time.Duration
	EnableCache bool

	// Embeddings
	GeminiAPIKey     string
	EmbeddingModel   string
	EnableEmbeddings bool
	EmbedTimeout     time.Duration

	// Analysis
	MaxTextLength int
	SkillsPath    string
	MetadataDir   string

	// Model versions
	MatchVersion     string
	RecommendVersion string
	InterviewVersion string
	FeedbackVersion  string
	ATSVersion       string
}

// Load reads configuration from the environment, applying defaults for
// anything unset, and validates the result.
func Load() (*Config, error) {
	cfg := &Config{
		Port:             envInt("PORT", 8000),
		LogJSON:          envBool("LOG_JSON", true),
		LogDebug:         envBool("DEBUG", false),
		APIKey:           os.Getenv("API_KEY"),
		RedisURL:         os.Getenv("REDIS_URL"),
		CacheTTL:         time.Duration(envInt("CACHE_TTL", 86400)) * time.Second,
		EnableCache:      envBool("ENABLE_CACHE", true),
		GeminiAPIKey:     os.Getenv("GEMINI_API_KEY"),
		EmbeddingModel:   envString("EMBEDDING_MODEL", "text-embedding-004"),
		EnableEmbeddings: envBool("ENABLE_EMBEDDINGS", true),
		EmbedTimeout:     time.Duration(envInt("EMBED_TIMEOUT_SECONDS", 10)) * time.Second,
		MaxTextLength:    envInt("MAX_TEXT_LENGTH", 10000),
		SkillsPath:       os.Getenv("SKILLS_PATH"),
		MetadataDir:      envString("MODEL_DIR", "./models"),
		MatchVersion:     envString("MATCH_MODEL_VERSION", "match-v1"),
		RecommendVersion: envString("RECOMMEND_MODEL_VERSION", "recommend-v1"),
		InterviewVersion: envString("INTERVIEW_MODEL_VERSION", "interview-v1"),
		FeedbackVersion:  envString("FEEDBACK_MODEL_VERSION", "feedback-v1"),
		ATSVersion:       envString("ATS_MODEL_VERSION", "ats-v1"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the configuration has usable values.
// Embeddings without an API key are downgraded to disabled rather than
// failing startup; the similarity engine then falls back to lexical
// strategies.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("config error: PORT must be in 1-65535, got %d", c.Port)
	}
	if c.MaxTextLength < 1 {
		return fmt.Errorf("config error: MAX_TEXT_LENGTH must be positive, got %d", c.MaxTextLength)
	}
	if c.CacheTTL < 0 {
		return fmt.Errorf("config error: CACHE_TTL must be non-negative")
	}
	if c.EnableEmbeddings && c.GeminiAPIKey == "" {
		c.EnableEmbeddings = false
	}
	return nil
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
