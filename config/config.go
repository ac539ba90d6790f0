package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Store backends
const (
	StoreFirestore = "firestore"
	StorePostgres  = "postgres"
	StoreMemory    = "memory"
)

const defaultFirebaseJWKSURL = "https://www.googleapis.com/service_accounts/v1/jwk/securetoken@system.gserviceaccount.com"

type Config struct {
	Port        string
	Env         string
	FrontendURL string

	// Document store
	StoreBackend          string
	FirebaseProjectID     string
	GoogleCredentialsFile string
	DBUrl                 string
	MemorySeedFile        string

	// Identity
	FirebaseJWKSURL string
	AuthJWTSecret   string // HS256, local development only

	// Redis Configuration
	RedisURL      string
	RedisPassword string

	// Profile photo storage (S3-compatible)
	S3Region          string
	S3Bucket          string
	S3AccessKeyID     string
	S3SecretAccessKey string
	S3Endpoint        string
	PhotoURLTTLMin    int

	// Rate Limiting Configuration
	RateLimitEnabled         bool
	RateLimitWindowSeconds   int
	RateLimitGlobalThreshold int

	// Status toggle guard
	ToggleGuardTTLSeconds int

	Report ReportConfig
}

// ReportConfig holds presentation parameters for the report and history views.
type ReportConfig struct {
	ExcellentThreshold float64
	GoodThreshold      float64
	CardRingRadius     float64
	ReportRingRadius   float64
	ExportExtension    string
}

func LoadConfig() (*Config, error) {
	// Load .env file when present; production injects real environment variables
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		Env:         getEnv("APP_ENV", "development"),
		FrontendURL: strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:3000"), "/"),

		StoreBackend:          strings.ToLower(getEnv("STORE_BACKEND", StoreFirestore)),
		FirebaseProjectID:     getEnv("FIREBASE_PROJECT_ID", getEnv("GOOGLE_CLOUD_PROJECT", "")),
		GoogleCredentialsFile: getEnv("GOOGLE_APPLICATION_CREDENTIALS", ""),
		DBUrl:                 getEnv("DATABASE_URL", ""),
		MemorySeedFile:        getEnv("MEMORY_SEED_FILE", ""),

		FirebaseJWKSURL: strings.TrimRight(getEnv("FIREBASE_JWKS_URL", defaultFirebaseJWKSURL), "/"),
		AuthJWTSecret:   getEnv("AUTH_JWT_SECRET", ""),

		RedisURL:      getEnv("REDIS_URL", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),

		S3Region:          getEnv("S3_REGION", ""),
		S3Bucket:          getEnv("S3_PHOTO_BUCKET", ""),
		S3AccessKeyID:     getEnv("S3_ACCESS_KEY_ID", ""),
		S3SecretAccessKey: getEnv("S3_SECRET_ACCESS_KEY", ""),
		S3Endpoint:        getEnv("S3_ENDPOINT", ""),
		PhotoURLTTLMin:    getEnvInt("PHOTO_URL_TTL_MINUTES", 15),

		RateLimitEnabled:         getEnvBool("RATE_LIMIT_ENABLED", true),
		RateLimitWindowSeconds:   getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),
		RateLimitGlobalThreshold: getEnvInt("RATE_LIMIT_GLOBAL_THRESHOLD", 100),

		ToggleGuardTTLSeconds: getEnvInt("TOGGLE_GUARD_TTL_SECONDS", 30),

		Report: ReportConfig{
			ExcellentThreshold: getEnvFloat("REPORT_EXCELLENT_THRESHOLD", 70),
			GoodThreshold:      getEnvFloat("REPORT_GOOD_THRESHOLD", 40),
			CardRingRadius:     getEnvFloat("REPORT_CARD_RING_RADIUS", 36),
			ReportRingRadius:   getEnvFloat("REPORT_RING_RADIUS", 56),
			ExportExtension:    normalizeExtension(getEnv("REPORT_EXPORT_EXTENSION", ".pdf")),
		},
	}

	if cfg.FirebaseProjectID == "" {
		log.Println("WARNING: FIREBASE_PROJECT_ID is missing. Firebase ID tokens will be rejected and the Firestore client may fail to start.")
	}

	switch cfg.StoreBackend {
	case StoreFirestore:
	case StorePostgres:
		if cfg.DBUrl == "" {
			log.Println("WARNING: DATABASE_URL is missing. Application may fail to connect.")
		}
	case StoreMemory:
		log.Println("WARNING: STORE_BACKEND=memory. Data is not persisted.")
	default:
		log.Printf("WARNING: unknown STORE_BACKEND %q, falling back to firestore", cfg.StoreBackend)
		cfg.StoreBackend = StoreFirestore
	}

	if cfg.RedisURL == "" {
		log.Println("WARNING: REDIS_URL not configured. Rate limiting and toggle guard use in-memory fallback.")
	}

	return cfg, nil
}

// IsProduction reports whether the service runs with production settings.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// PhotoStorageConfigured reports whether stored photo keys can be presigned.
func (c *Config) PhotoStorageConfigured() bool {
	return c.S3Bucket != "" && c.S3Region != ""
}

func normalizeExtension(ext string) string {
	ext = strings.TrimSpace(ext)
	if ext == "" {
		return ".pdf"
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return strings.ToLower(ext)
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvFloat returns a float environment variable or fallback if not set/invalid
func getEnvFloat(key string, fallback float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return fallback
}

// getEnvBool returns a boolean environment variable or fallback if not set/invalid
func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}
