package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// loads configuration from environment variables
func LoadEnvironmentVariables() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		_ = err // not an error - production environments may not have .env file
	}

	databaseURL := os.Getenv("DATABASE_URL")
	redisURL := os.Getenv("REDIS_URL")
	jwtSecret := os.Getenv("JWT_SECRET")
	geminiKey := os.Getenv("GEMINI_API_KEY")
	clipdropKey := os.Getenv("CLIPDROP_API_KEY")
	cloudinaryCloud := os.Getenv("CLOUDINARY_CLOUD_NAME")
	cloudinaryKey := os.Getenv("CLOUDINARY_API_KEY")
	cloudinarySecret := os.Getenv("CLOUDINARY_API_SECRET")
	environment := os.Getenv("ENVIRONMENT")

	if databaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	if redisURL == "" {
		return nil, fmt.Errorf("REDIS_URL environment variable is required")
	}

	if jwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is required")
	}

	if geminiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}

	if clipdropKey == "" {
		return nil, fmt.Errorf("CLIPDROP_API_KEY environment variable is required")
	}

	if cloudinaryCloud == "" || cloudinaryKey == "" || cloudinarySecret == "" {
		return nil, fmt.Errorf("CLOUDINARY_CLOUD_NAME, CLOUDINARY_API_KEY and CLOUDINARY_API_SECRET environment variables are required")
	}

	if environment == "" {
		environment = "development"
	}

	return &Config{
		Environment:      environment,
		DatabaseURL:      databaseURL,
		RedisURL:         redisURL,
		JWTSecret:        jwtSecret,
		GeminiKey:        geminiKey,
		ClipDropKey:      clipdropKey,
		CloudinaryCloud:  cloudinaryCloud,
		CloudinaryKey:    cloudinaryKey,
		CloudinarySecret: cloudinarySecret,
	}, nil
}
