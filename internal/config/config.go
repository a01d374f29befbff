package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// DatabaseConfig holds PostgreSQL database connection settings.
type DatabaseConfig struct {
	Host               string
	Port               string
	User               string
	Password           string
	Name               string
	SSLMode            string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeSec int
}

// MinIOConfig holds object storage settings for MinIO.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// S3Config holds settings for the AWS S3 backend.
type S3Config struct {
	Region          string
	Bucket          string
	AccessKeyID     string
	SecretAccessKey string
	Endpoint        string
	UsePathStyle    bool
	CreateBucket    bool
}

// StorageConfig selects the blob store backend.
type StorageConfig struct {
	// Backend is one of "minio", "s3", "fs" or "memory".
	Backend   string
	FSBaseDir string
}

// AuthConfig holds token signing settings.
type AuthConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
}

// Shared link modes for GET /pdf/shared/:file_id.
const (
	SharedLinkAuthenticated = "authenticated"
	SharedLinkPublic        = "public"
	SharedLinkDisabled      = "disabled"
)

// DocumentsConfig holds upload and sharing settings.
type DocumentsConfig struct {
	MaxUploadBytes int
	SharedLinkMode string
	ShareLinkTTL   time.Duration
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	AppHost  string
	Port     string
	Timezone string
	LogLevel string
	// CORSAllowOrigins is a comma separated origin list, "*" for any.
	CORSAllowOrigins string
	// RegistryBackend is "postgres" or "memory".
	RegistryBackend string
	Database        DatabaseConfig
	MinIO           MinIOConfig
	S3              S3Config
	Storage         StorageConfig
	Auth            AuthConfig
	Documents       DocumentsConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	return &AppConfig{
		AppHost:          getEnv("APP_HOST", "localhost:8080"),
		Port:             getEnv("PORT", "8080"),
		Timezone:         getEnv("APP_TIMEZONE", "UTC"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		CORSAllowOrigins: getEnv("CORS_ALLOW_ORIGINS", "*"),
		RegistryBackend:  strings.ToLower(getEnv("REGISTRY_BACKEND", "postgres")),
		Database:         DatabaseConfig{
			Host:               getEnv("DB_HOST", ""),
			Port:               getEnv("DB_PORT", "5432"),
			User:               getEnv("DB_USER", ""),
			Password:           getEnv("DB_PASSWORD", ""),
			Name:               getEnv("DB_NAME", ""),
			SSLMode:            getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns:       getEnvInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:       getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetimeSec: getEnvInt("DB_CONN_MAX_LIFETIME_SEC", 300),
		},
		MinIO: MinIOConfig{
			Endpoint:  getEnv("MINIO_ENDPOINT", ""),
			AccessKey: getEnv("MINIO_ACCESS_KEY", ""),
			SecretKey: getEnv("MINIO_SECRET_KEY", ""),
			Bucket:    getEnv("MINIO_BUCKET", ""),
			UseSSL:    getEnvBool("MINIO_USE_SSL", false),
		},
		S3: S3Config{
			Region:          getEnv("S3_REGION", "us-east-1"),
			Bucket:          getEnv("S3_BUCKET", ""),
			AccessKeyID:     getEnv("S3_ACCESS_KEY_ID", ""),
			SecretAccessKey: getEnv("S3_SECRET_ACCESS_KEY", ""),
			Endpoint:        getEnv("S3_ENDPOINT", ""),
			UsePathStyle:    getEnvBool("S3_USE_PATH_STYLE", false),
			CreateBucket:    getEnvBool("S3_CREATE_BUCKET", false),
		},
		Storage: StorageConfig{
			Backend:   strings.ToLower(getEnv("STORAGE_BACKEND", "minio")),
			FSBaseDir: getEnv("STORAGE_FS_DIR", "data/blobs"),
		},
		Auth: AuthConfig{
			JWTSecret: getEnv("JWT_SECRET", ""),
			TokenTTL:  getEnvDuration("JWT_TTL", 10*time.Hour),
		},
		Documents: DocumentsConfig{
			MaxUploadBytes: getEnvInt("MAX_UPLOAD_BYTES", 50*1024*1024),
			SharedLinkMode: sharedLinkMode(getEnv("SHARED_LINK_MODE", SharedLinkAuthenticated)),
			ShareLinkTTL:   getEnvDuration("SHARE_LINK_TTL", time.Hour),
		},
	}
}

// sharedLinkMode falls back to the authenticated mode for unknown values.
func sharedLinkMode(v string) string {
	switch v = strings.ToLower(strings.TrimSpace(v)); v {
	case SharedLinkPublic, SharedLinkDisabled, SharedLinkAuthenticated:
		return v
	default:
		return SharedLinkAuthenticated
	}
}

// Location resolves Timezone, defaulting to UTC.
func (c *AppConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		d, err := time.ParseDuration(v)
		if err == nil {
			return d
		}
	}
	return def
}
