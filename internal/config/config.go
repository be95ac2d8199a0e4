package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"Community_Hub/internal/pkg"
)

type Config struct {
	Port        string
	PostgresDSN string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	AccessSecret  string
	RefreshSecret string

	KafkaBrokers []string
	KafkaTopic   string

	SMTP       pkg.SMTPConfig
	Cloudinary pkg.CloudinaryConfig
}

// Load reads .env when present, then the environment, with dev defaults.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment")
	}

	cfg := Config{
		Port:          getenv("PORT", "8080"),
		PostgresDSN:   getenv("POSTGRES_DSN", "host=127.0.0.1 user=postgres password=postgres dbname=community_hub port=5432 sslmode=disable"),
		RedisAddr:     getenv("REDIS_ADDR", "127.0.0.1:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		AccessSecret:  os.Getenv("JWT_ACCESS_SECRET"),
		RefreshSecret: os.Getenv("JWT_REFRESH_SECRET"),
		KafkaBrokers:  strings.Split(getenv("KAFKA_BROKERS", "127.0.0.1:9092"), ","),
		KafkaTopic:    getenv("KAFKA_TOPIC", "community-activity"),
		SMTP: pkg.SMTPConfig{
			Host:     getenv("SMTP_HOST", "127.0.0.1"),
			Port:     587,
			Username: os.Getenv("SMTP_USERNAME"),
			Password: os.Getenv("SMTP_PASSWORD"),
			From:     getenv("SMTP_FROM", "NoReply <no-reply@example.com>"),
		},
		Cloudinary: pkg.CloudinaryConfig{
			CloudName:    os.Getenv("CLOUDINARY_CLOUD_NAME"),
			UploadPreset: getenv("CLOUDINARY_UPLOAD_PRESET", "community_hub_preset"),
		},
	}
	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
