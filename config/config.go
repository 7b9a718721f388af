package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything the service reads from the environment.
type Config struct {
	Port         string
	Env          string
	AllowOrigins string

	// DataDir holds the app-owned volatile database file.
	DataDir string
	// AssetDir, when set, designates the durable JSON folder for this
	// session. It is never persisted; every process start states it again.
	AssetDir string

	JWTSecret string
	AdminPIN  string
	TokenTTL  time.Duration

	LogLevel string
	LogFile  string
}

// Load reads configuration from a .env file (optional) and the environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment variables")
	}

	return &Config{
		Port:         getEnv("PORT", "8080"),
		Env:          getEnv("APP_ENV", "development"),
		AllowOrigins: getEnv("ALLOW_ORIGINS", "http://127.0.0.1:5500,http://localhost:5500,http://localhost:3000"),
		DataDir:      getEnv("POS_DATA_DIR", "./data"),
		AssetDir:     getEnv("POS_ASSET_DIR", ""),
		JWTSecret:    getEnv("JWT_SECRET", "pos-secret-key"),
		AdminPIN:     getEnv("ADMIN_PIN", "0000"),
		TokenTTL:     time.Duration(getEnvAsInt("TOKEN_TTL_HOURS", 24)) * time.Hour,
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		LogFile:      getEnv("LOG_FILE", ""),
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, err := strconv.Atoi(getEnv(key, "")); err == nil {
		return value
	}
	return defaultValue
}
