package config

type Config struct {
	Environment      string
	DatabaseURL      string
	RedisURL         string
	JWTSecret        string
	GeminiKey        string
	ClipDropKey      string
	CloudinaryCloud  string
	CloudinaryKey    string
	CloudinarySecret string
}
