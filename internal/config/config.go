package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port              string
	DatabaseURL       string
	JWTSecret         string
	GoogleAudience    string
	AllowOrigins      []string
	LogstashTCPAddr   string
	MinIOEndpoint     string
	MinIOAccessKey    string
	MinIOSecretKey    string
	MinIOUseSSL       bool
	MinIOBucket       string
	MinIOPublicURL    string
	SessionTTL        time.Duration
	UploadMaxBytes    int64
	ImageMaxDimension int
	FFmpegPath        string
}

func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	sessionTTL := 24 * time.Hour
	if d, err := time.ParseDuration(getenv("SESSION_TTL", "24h")); err == nil && d > 0 {
		sessionTTL = d
	}

	uploadMax := int64(10 * 1024 * 1024)
	if v, err := strconv.ParseInt(getenv("UPLOAD_MAX_BYTES", "10485760"), 10, 64); err == nil && v > 0 {
		uploadMax = v
	}

	imageMaxDim := 0
	if v, err := strconv.Atoi(getenv("IMAGE_MAX_DIMENSION", "0")); err == nil && v > 0 {
		imageMaxDim = v
	}

	return Config{
		Port:              getenv("PORT", "8080"),
		DatabaseURL:       must("DATABASE_URL"),
		JWTSecret:         must("JWT_SECRET"),
		GoogleAudience:    getenv("GOOGLE_AUDIENCE", ""),
		AllowOrigins:      splitAndTrim(getenv("ALLOW_ORIGINS", "*")),
		LogstashTCPAddr:   getenv("LOGSTASH_TCP_ADDR", ""),
		MinIOEndpoint:     must("MINIO_ENDPOINT"),
		MinIOAccessKey:    must("MINIO_ACCESS_KEY"),
		MinIOSecretKey:    must("MINIO_SECRET_KEY"),
		MinIOUseSSL:       getenv("MINIO_USE_SSL", "false") == "true",
		MinIOBucket:       getenv("MINIO_BUCKET", "trails-uploads"),
		MinIOPublicURL:    getenv("MINIO_PUBLIC_URL", ""),
		SessionTTL:        sessionTTL,
		UploadMaxBytes:    uploadMax,
		ImageMaxDimension: imageMaxDim,
		FFmpegPath:        getenv("FFMPEG_PATH", ""),
	}
}

func splitAndTrim(input string) []string {
	parts := strings.Split(input, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func must(k string) string {
	v := os.Getenv(k)
	if v == "" {
		panic("missing env: " + k)
	}
	return v
}
