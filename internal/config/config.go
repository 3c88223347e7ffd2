package config

import (
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Port     string
	LogLevel string

	// SQLite
	DatabasePath string

	// S3 / MinIO. An empty endpoint switches storage to mock mode.
	S3Endpoint        string
	S3AccessKeyID     string
	S3SecretAccessKey string
	S3BucketName      string
	S3UseSSL          bool

	// Gemini. An empty API key switches the provider to mock mode.
	GeminiAPIKey string
	GeminiModel  string

	// Validation bounds
	MinContentLength int
	MaxContentLength int
	MaxFileSizeMB    int64
	AllowedMimeTypes []string

	CORSOrigins []string
}

func Load() (*Config, error) {
	cfg := &Config{
		Port:              getEnv("PORT", "8080"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		DatabasePath:      getEnv("DATABASE_PATH", "data/studyaid.db"),
		S3Endpoint:        getEnv("S3_ENDPOINT", ""),
		S3AccessKeyID:     getEnv("S3_ACCESS_KEY_ID", "minioadmin"),
		S3SecretAccessKey: getEnv("S3_SECRET_ACCESS_KEY", "minioadmin"),
		S3BucketName:      getEnv("S3_BUCKET_NAME", "uploads"),
		S3UseSSL:          getEnv("S3_USE_SSL", "false") == "true",
		GeminiAPIKey:      getEnv("GEMINI_API_KEY", ""),
		GeminiModel:       getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		MinContentLength:  getEnvInt("MIN_CONTENT_LENGTH", 50),
		MaxContentLength:  getEnvInt("MAX_CONTENT_LENGTH", 100000),
		MaxFileSizeMB:     int64(getEnvInt("MAX_FILE_SIZE_MB", 10)),
		AllowedMimeTypes: getEnvList("ALLOWED_MIME_TYPES", []string{
			"application/pdf",
			"text/plain",
			"image/png",
			"image/jpeg",
			"image/webp",
		}),
		CORSOrigins: getEnvList("CORS_ORIGINS", []string{"http://localhost:5173"}),
	}

	return cfg, nil
}

// MaxFileSizeBytes returns the upload limit in bytes.
func (c *Config) MaxFileSizeBytes() int64 {
	return c.MaxFileSizeMB * 1024 * 1024
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
