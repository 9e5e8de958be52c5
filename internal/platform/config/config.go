package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	APIPort  string
	TokenKey []byte
	TokenExp time.Duration

	VerifyTokenExp time.Duration
	ResetTokenExp  time.Duration

	MongoURI string
	MongoDB  string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	MailHost string
	MailPort int
	MailUser string
	MailPass string
	MailFrom string

	// Domain is the public base URL embedded in emailed links.
	Domain string

	RateLimitPerMinute int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	return &Config{
		APIPort:            getEnv("API_PORT", "8080"),
		TokenKey:           []byte(getEnv("TOKEN_SECRET", "defaultsecret")),
		TokenExp:           time.Duration(getEnvAsInt("TOKEN_EXPIRATION_HOURS", 24)) * time.Hour,
		VerifyTokenExp:     time.Duration(getEnvAsInt("VERIFY_TOKEN_EXPIRATION_MINUTES", 60)) * time.Minute,
		ResetTokenExp:      time.Duration(getEnvAsInt("RESET_TOKEN_EXPIRATION_MINUTES", 60)) * time.Minute,
		MongoURI:           getEnv("MONGODB_URI", "mongodb://localhost:27017"),
		MongoDB:            getEnv("MONGODB_DATABASE", "authstack"),
		RedisAddr:          getEnv("REDIS_ADDR", ""),
		RedisPassword:      getEnv("REDIS_PASSWORD", ""),
		RedisDB:            getEnvAsInt("REDIS_DB", 0),
		MailHost:           getEnv("MAIL_HOST", ""),
		MailPort:           getEnvAsInt("MAIL_PORT", 587),
		MailUser:           getEnv("MAIL_USER", ""),
		MailPass:           getEnv("MAIL_PASS", ""),
		MailFrom:           getEnv("MAIL_FROM", "noreply@localhost"),
		Domain:             getEnv("DOMAIN", "http://localhost:3000"),
		RateLimitPerMinute: getEnvAsInt("RATE_LIMIT_PER_MINUTE", 30),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}
