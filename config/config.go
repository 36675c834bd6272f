package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	ApiBaseUrl string // origin of the learning platform API; "/api" is appended to every path
	SessionDb  string // sqlite file holding the persisted session token

	HttpTimeoutSeconds int

	MockPort string // port for the local mock API server
	JWTKey   string // signing key used by the mock API server only
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	// Initialize AppConfig with values from environment variables
	AppConfig = &Config{
		ApiBaseUrl: getEnv("API_BASE_URL", "http://localhost:3000"),
		SessionDb:  getEnv("SESSION_DB", "session.db"),

		HttpTimeoutSeconds: getEnvInt("HTTP_TIMEOUT_SECONDS", 15),

		MockPort: getEnv("MOCK_PORT", "3000"),
		JWTKey:   getEnv("JWT_SECRET_KEY", "defaultSecret"),
	}

	// Validate critical configuration
	if AppConfig.JWTKey == "defaultSecret" {
		log.Println("Warning: Using default JWT_SECRET_KEY. Update it in your environment.")
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}
