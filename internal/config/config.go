package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort int
	GinMode    string
	LogLevel   string

	DBDriver   string
	DBDSN      string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
	DBLogLevel string

	FirebaseProjectID string
	FirebaseJWKSURL   string
	AuthDevSecret     string

	CORSAllowedOrigins []string

	OpenAIAPIKey string
	OpenAIModel  string
}

const defaultFirebaseJWKSURL = "https://www.googleapis.com/service_accounts/v1/jwk/securetoken@system.gserviceaccount.com"

// Load reads the configuration from the environment. A .env file in the
// working directory, if present, is applied first without overriding
// variables that are already set.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ServerPort: getEnvInt("SERVER_PORT", 8080),
		GinMode:    getEnv("GIN_MODE", "debug"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),

		DBDriver:   strings.ToLower(getEnv("DB_DRIVER", "postgres")),
		DBDSN:      getEnv("DB_DSN", ""),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "sabidos"),
		DBPassword: getEnv("DB_PASSWORD", "sabidos"),
		DBName:     getEnv("DB_NAME", "sabidos"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),
		DBLogLevel: getEnv("DB_LOG_LEVEL", "warn"),

		FirebaseProjectID: getEnv("FIREBASE_PROJECT_ID", ""),
		FirebaseJWKSURL:   getEnv("FIREBASE_JWKS_URL", defaultFirebaseJWKSURL),
		AuthDevSecret:     getEnv("AUTH_DEV_SECRET", ""),

		CORSAllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000")),

		OpenAIAPIKey: getEnv("OPENAI_API_KEY", ""),
		OpenAIModel:  getEnv("OPENAI_MODEL", "gpt-4o"),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			result = append(result, p)
		}
	}
	return result
}
