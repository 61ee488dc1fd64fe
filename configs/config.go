package configs

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBSource  string
	Port      string
	JWTSecret string
	JWTTTL    time.Duration

	// External text-classification collaborator. Empty URL disables the call
	// and every review gets the neutral default.
	SentimentBaseURL string
	SentimentTimeout time.Duration

	AdminEmail    string
	AdminPassword string
}

func LoadConfig() *Config {
	// .env is optional; real deployments set env directly.
	_ = godotenv.Load()

	return &Config{
		DBSource:         getEnv("DB_SOURCE", "canteen.db"),
		Port:             getEnv("PORT", "8000"),
		JWTSecret:        getEnv("JWT_SECRET", "changeme"),
		JWTTTL:           time.Duration(getEnvInt("JWT_TTL_HOURS", 24)) * time.Hour,
		SentimentBaseURL: os.Getenv("SENTIMENT_BASE_URL"),
		SentimentTimeout: time.Duration(getEnvInt("SENTIMENT_TIMEOUT_SECONDS", 3)) * time.Second,
		AdminEmail:       getEnv("ADMIN_EMAIL", "admin@canteen.local"),
		AdminPassword:    os.Getenv("ADMIN_PASSWORD"),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("invalid %s=%q, using %d", key, v, fallback)
		return fallback
	}
	return n
}
