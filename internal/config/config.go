package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type Config struct {
	DatabaseURL string
	Port        string

	// LLM Configuration
	LLMProvider string // "openai", "groq", "ollama" or "none"
	LLMModel    string // "gpt-4o-mini", "llama-3.3-70b-versatile", "llama3.1"
	LLMAPIKey   string // OpenAI or Groq API key
	LLMURL      string // endpoint override; OLLAMA_URL for ollama

	// Extraction strategies
	AIEnabled      bool
	NERFallback    bool
	AITimeout      time.Duration
	StreamDebounce time.Duration
	StreamIdleTTL  time.Duration // abandoned stream sessions are closed after this

	GazetteerPath  string
	ConfidenceFile string
	UploadsDir     string

	LogLevel  string
	LogFormat string // "text" or "json"

	// EnvFile is the .env file that was loaded, empty if none was found.
	EnvFile string
}

var defaultModels = map[string]string{
	"openai": "gpt-4o-mini",
	"groq":   "llama-3.3-70b-versatile",
	"ollama": "llama3.1",
}

// LoadConfig reads .env (from the working directory or the repository root
// when run from cmd/*) and then the process environment.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	for _, path := range []string{".env", "../../.env"} {
		if err := godotenv.Load(path); err == nil {
			cfg.EnvFile = path
			break
		}
	}

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	cfg.Port = getenv("PORT", "8080")

	cfg.LLMProvider = strings.ToLower(getenv("LLM_PROVIDER", "none"))
	cfg.LLMModel = getenv("LLM_MODEL", defaultModels[cfg.LLMProvider])
	switch cfg.LLMProvider {
	case "openai":
		cfg.LLMAPIKey = os.Getenv("OPENAI_API_KEY")
	case "groq":
		cfg.LLMAPIKey = os.Getenv("GROQ_API_KEY")
	case "ollama":
		cfg.LLMURL = os.Getenv("OLLAMA_URL")
	}

	var err error
	if cfg.AIEnabled, err = boolEnv("AI_ENABLED", true); err != nil {
		return nil, err
	}
	if cfg.NERFallback, err = boolEnv("NER_FALLBACK", true); err != nil {
		return nil, err
	}
	if cfg.AITimeout, err = durationEnv("AI_TIMEOUT", 30*time.Second); err != nil {
		return nil, err
	}
	if cfg.StreamDebounce, err = durationEnv("STREAM_DEBOUNCE", 500*time.Millisecond); err != nil {
		return nil, err
	}
	if cfg.StreamIdleTTL, err = durationEnv("STREAM_IDLE_TTL", 10*time.Minute); err != nil {
		return nil, err
	}

	cfg.GazetteerPath = getenv("GAZETTEER_PATH", "data/gazetteer.toml")
	cfg.ConfidenceFile = os.Getenv("CONFIDENCE_FILE")
	cfg.UploadsDir = getenv("UPLOADS_DIR", "uploads")
	cfg.LogLevel = getenv("LOG_LEVEL", "info")
	cfg.LogFormat = getenv("LOG_FORMAT", "text")

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func boolEnv(key string, fallback bool) (bool, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, errors.Wrapf(err, "invalid %s", key)
	}
	return b, nil
}

// durationEnv accepts Go durations ("750ms", "30s") or a bare number of
// milliseconds.
func durationEnv(key string, fallback time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if ms, convErr := strconv.Atoi(v); convErr == nil {
		d, err = time.Duration(ms)*time.Millisecond, nil
	}
	if err != nil {
		return 0, errors.Wrapf(err, "invalid %s", key)
	}
	if d <= 0 {
		return 0, errors.Errorf("invalid %s: must be positive", key)
	}
	return d, nil
}

// Logger builds the root logger from LOG_LEVEL and LOG_FORMAT. An unknown
// level falls back to info.
func (c *Config) Logger() *logrus.Logger {
	logger := logrus.New()
	if c.LogFormat == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
		defer logger.WithField("level", c.LogLevel).Warn("unknown log level, using info")
	}
	logger.SetLevel(level)
	return logger
}
