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
	// Server configuration
	Port        string
	CORSOrigins string

	// Database configuration
	DBType            string // mongo, mysql, postgres, sqlite, sqlserver
	DBHost            string
	DBPort            string
	DBDatabase        string
	DBUser            string
	DBPassword        string
	DBConnectionLimit int
	MongoURI          string

	// Chat fan-out; empty means in-process only
	RedisURL      string
	ChatHeartbeat time.Duration

	// Session configuration
	SessionSecret string
	SessionTTL    time.Duration
	SessionSecure bool
	AdminEmail    string
	AdminPassword string

	// Uploads
	UploadDir      string
	UploadMaxBytes int

	// Similarity analysis
	GenAIAPIKey        string
	GenAIModel         string
	SimilarityInterval time.Duration
	SimilarityLimit    int

	// Ledger (smart contract) configuration
	LedgerRPCURL       string
	LedgerContract     string
	LedgerPollInterval time.Duration
	LedgerWaitTimeout  time.Duration

	// Logging
	LogLevel  string
	LogFormat string
}

// Load loads configuration from environment variables.
// ENV_FILE (or a local .env) is read first when present; real environment variables win.
func Load() (*Config, error) {
	envFile := getEnv("ENV_FILE", ".env")
	if _, err := os.Stat(envFile); err == nil {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}

	cfg := &Config{
		Port:               getEnv("PORT", "3000"),
		CORSOrigins:        getEnv("CORS_ORIGINS", "http://localhost:3000"),
		DBType:             strings.ToLower(getEnv("DB_TYPE", "mongo")),
		DBHost:             getEnv("DB_HOST", "localhost"),
		DBPort:             getEnv("DB_PORT", "3306"),
		DBDatabase:         getEnv("DB_DATABASE", "innohub"),
		DBUser:             getEnv("DB_USER", ""),
		DBPassword:         getEnv("DB_PASSWORD", ""),
		DBConnectionLimit:  getEnvAsInt("DB_CONNECTION_LIMIT", 10),
		MongoURI:           getEnv("MONGO_URI", "mongodb://localhost:27017"),
		RedisURL:           getEnv("REDIS_URL", ""),
		ChatHeartbeat:      getEnvAsDuration("CHAT_HEARTBEAT", 15*time.Second),
		SessionSecret:      getEnv("SESSION_SECRET", ""),
		SessionTTL:         getEnvAsDuration("SESSION_TTL", 24*time.Hour),
		SessionSecure:      getEnvAsBool("SESSION_SECURE", false),
		AdminEmail:         getEnv("ADMIN_EMAIL", ""),
		AdminPassword:      getEnv("ADMIN_PASSWORD", ""),
		UploadDir:          getEnv("UPLOAD_DIR", "./uploads"),
		UploadMaxBytes:     getEnvAsInt("UPLOAD_MAX_BYTES", 10<<20),
		GenAIAPIKey:        getEnv("GENAI_API_KEY", ""),
		GenAIModel:         getEnv("GENAI_MODEL", "gemini-embedding-001"),
		SimilarityInterval: getEnvAsDuration("SIMILARITY_INTERVAL", 500*time.Millisecond),
		SimilarityLimit:    getEnvAsInt("SIMILARITY_LIMIT", 10),
		LedgerRPCURL:       getEnv("LEDGER_RPC_URL", ""),
		LedgerContract:     getEnv("LEDGER_CONTRACT", ""),
		LedgerPollInterval: getEnvAsDuration("LEDGER_POLL_INTERVAL", 2*time.Second),
		LedgerWaitTimeout:  getEnvAsDuration("LEDGER_WAIT_TIMEOUT", 2*time.Minute),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		LogFormat:          getEnv("LOG_FORMAT", "json"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks required fields and cross-field constraints
func (cfg *Config) Validate() error {
	if cfg.SessionSecret == "" {
		return fmt.Errorf("SESSION_SECRET is required")
	}
	if len(cfg.SessionSecret) < 16 {
		return fmt.Errorf("SESSION_SECRET must be at least 16 characters")
	}

	switch cfg.DBType {
	case "mongo", "mongodb":
		if cfg.MongoURI == "" {
			return fmt.Errorf("MONGO_URI is required for DB_TYPE=%s", cfg.DBType)
		}
	case "sqlite":
	case "mysql", "mariadb", "postgres", "postgresql", "sqlserver", "mssql":
		if cfg.DBUser == "" {
			return fmt.Errorf("DB_USER is required for DB_TYPE=%s", cfg.DBType)
		}
	default:
		return fmt.Errorf("unsupported DB_TYPE: %s", cfg.DBType)
	}

	if cfg.DBDatabase == "" {
		return fmt.Errorf("DB_DATABASE is required")
	}
	if (cfg.AdminEmail == "") != (cfg.AdminPassword == "") {
		return fmt.Errorf("ADMIN_EMAIL and ADMIN_PASSWORD must be set together")
	}
	if cfg.LedgerRPCURL != "" && cfg.LedgerContract == "" {
		return fmt.Errorf("LEDGER_CONTRACT is required when LEDGER_RPC_URL is set")
	}

	return nil
}

// IsMongo reports whether the document store backend is selected
func (cfg *Config) IsMongo() bool {
	return cfg.DBType == "mongo" || cfg.DBType == "mongodb"
}

// AllowedOrigins returns the CORS origins as a comma separated list without blanks
func (cfg *Config) AllowedOrigins() string {
	parts := strings.Split(cfg.CORSOrigins, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			origins = append(origins, p)
		}
	}
	return strings.Join(origins, ",")
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt gets an environment variable as an integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsDuration accepts Go durations ("500ms") or plain seconds ("30")
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(valueStr); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(valueStr); err == nil {
		return time.Duration(secs) * time.Second
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
