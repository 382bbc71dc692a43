package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv        string
	Port          string
	APIBaseURL    string
	LoginURL      string
	SessionCookie string
	CartTTL       time.Duration
	CatalogTTL    time.Duration
	JWTSecret     string
	JWTExpiry     string
	AdminPassHash string
	MaxUploadSize int64
}

var AppConfig *Config

func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	maxUploadSize, _ := strconv.ParseInt(os.Getenv("MAX_UPLOAD_SIZE"), 10, 64)
	if maxUploadSize == 0 {
		maxUploadSize = 5242880
	}

	cartTTL, err := time.ParseDuration(getEnv("CART_TTL", "72h"))
	if err != nil {
		cartTTL = 72 * time.Hour
	}
	catalogTTL, err := time.ParseDuration(getEnv("CATALOG_TTL", "5m"))
	if err != nil {
		catalogTTL = 5 * time.Minute
	}

	AppConfig = &Config{
		AppEnv:        getEnv("APP_ENV", "development"),
		Port:          getEnv("APP_PORT", getEnv("PORT", "3000")),
		APIBaseURL:    getEnv("API_BASE_URL", "http://localhost:8080"),
		LoginURL:      getEnv("LOGIN_URL", "http://localhost:8080/login"),
		SessionCookie: getEnv("SESSION_COOKIE", "cart_session"),
		CartTTL:       cartTTL,
		CatalogTTL:    catalogTTL,
		JWTSecret:     getEnv("JWT_SECRET", "secret"),
		JWTExpiry:     getEnv("JWT_EXPIRY", "24h"),
		AdminPassHash: os.Getenv("ADMIN_PASSWORD_HASH"),
		MaxUploadSize: maxUploadSize,
	}

	log.Println("Configuration loaded successfully")
	log.Printf("Environment: %s", AppConfig.AppEnv)
	log.Printf("Marketplace API: %s", AppConfig.APIBaseURL)
	log.Printf("Server will run on port: %s", AppConfig.Port)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
