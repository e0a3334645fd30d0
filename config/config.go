package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	PostgresHost     string
	PostgresPort     string
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	PostgresSSLMode  string

	CSVPath   string
	BatchSize int

	HTTPAddr   string
	SalesLimit int
}

// Load reads the .env file and returns a populated Config struct.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("[config] No .env file found, falling back to system env vars")
	}

	return &Config{
		PostgresHost:     getEnv("POSTGRES_HOST", "localhost"),
		PostgresPort:     getEnv("POSTGRES_PORT", "5432"),
		PostgresUser:     getEnv("POSTGRES_USER", "arv"),
		PostgresPassword: getEnv("POSTGRES_PASSWORD", "arv123"),
		PostgresDB:       getEnv("POSTGRES_DB", "arv_db"),
		PostgresSSLMode:  getEnv("POSTGRES_SSLMODE", "disable"),

		CSVPath:   getEnv("CSV_PATH", "./data/demo/densest_complete_only.csv"),
		BatchSize: getEnvInt("BATCH_SIZE", 1000),

		HTTPAddr:   getEnv("HTTP_ADDR", ":8080"),
		SalesLimit: getEnvInt("SALES_LIMIT", 200),
	}
}

// DSN returns the PostgreSQL connection string.
func (c *Config) DSN() string {
	return "host=" + c.PostgresHost +
		" port=" + c.PostgresPort +
		" user=" + c.PostgresUser +
		" password=" + c.PostgresPassword +
		" dbname=" + c.PostgresDB +
		" sslmode=" + c.PostgresSSLMode
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		n, err := strconv.Atoi(val)
		if err != nil {
			log.Printf("[config] Invalid %s=%q, using default %d", key, val, fallback)
			return fallback
		}
		return n
	}
	return fallback
}
