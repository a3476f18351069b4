package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort string
	DB         DBConfig
	Redis      RedisConfig
	JWTSecret  string
	Storage    StorageConfig
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// StorageConfig points at the S3-compatible bucket product images are
// uploaded to. An empty Endpoint disables uploads.
type StorageConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	PublicURL string
	UseSSL    bool
}

// Load reads .env (when present) and the process environment into a Config.
// It returns an error instead of falling back to defaults for JWT_SECRET:
// signing tokens with an empty secret is never acceptable.
func Load() (Config, error) {
	// A missing .env is fine in production, env vars come from the host there.
	_ = godotenv.Load()

	cfg := Config{
		ServerPort: getenv("PORT", "2112"),
		DB: DBConfig{
			Host:     getenv("DB_HOST", "localhost"),
			Port:     getenv("DB_PORT", "5432"),
			User:     os.Getenv("DB_USER"),
			Password: os.Getenv("DB_PASSWORD"),
			Name:     os.Getenv("DB_NAME"),
		},
		Redis: RedisConfig{
			Addr:     getenv("REDIS_ADDR", "127.0.0.1:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       0,
		},
		JWTSecret: os.Getenv("JWT_SECRET"),
		Storage: StorageConfig{
			Endpoint:  os.Getenv("STORAGE_ENDPOINT"),
			AccessKey: os.Getenv("STORAGE_ACCESS_KEY"),
			SecretKey: os.Getenv("STORAGE_SECRET_KEY"),
			Bucket:    getenv("STORAGE_BUCKET", "products"),
			PublicURL: os.Getenv("STORAGE_PUBLIC_URL"),
			UseSSL:    os.Getenv("STORAGE_USE_SSL") == "true",
		},
	}

	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET is not set")
	}
	return cfg, nil
}

func (c DBConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s", c.User, c.Password, c.Host, c.Port, c.Name)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
