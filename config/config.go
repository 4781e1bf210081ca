package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port   string
	JWTKey string

	StoreBackend string // "file" or "gorm"
	DataDir      string // file store directory
	DBDriver     string // gorm store driver: "sqlite" or "postgres"
	DSN          string // gorm store connection string

	EnforcePrerequisites bool

	BackupDir      string
	BackupSchedule string // cron spec, empty disables backups
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	AppConfig = &Config{
		Port:   getEnv("PORT", "3000"),
		JWTKey: getEnv("JWT_SECRET_KEY", "defaultSecret"),

		StoreBackend: getEnv("STORE_BACKEND", "file"),
		DataDir:      getEnv("DATA_DIR", "./data"),
		DBDriver:     getEnv("DB_DRIVER", "sqlite"),
		DSN:          getEnv("DB_DSN", "eduverse.db"),

		EnforcePrerequisites: getEnvBool("ENFORCE_PREREQUISITES", false),

		BackupDir:      getEnv("BACKUP_DIR", "./backups"),
		BackupSchedule: getEnv("BACKUP_SCHEDULE", "@daily"),
	}

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

// getEnvBool retrieves an environment variable as a bool or returns the default
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to bool: %v", key, err)
		return defaultValue
	}
	return boolValue
}
