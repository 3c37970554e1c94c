package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL  string
	JWTSecret    string
	GeminiAPIKey string
	CORSOrigins  string
	ServerPort   string
}

func LoadConfig() (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file, using environment variables")
	}

	return &Config{
		DatabaseURL:  getEnv("DATABASE_URL", "host=localhost port=5432 user=postgres password=postgres dbname=goalpad sslmode=disable"),
		JWTSecret:    getEnv("JWT_SECRET", "secret"),
		GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),
		CORSOrigins:  getEnv("CORS_ORIGINS", "*"),
		ServerPort:   getEnv("SERVER_PORT", "8000"),
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
