package config

import (
	"errors"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var ErrMissingConfig = errors.New("konfigurasi wajib tidak ditemukan")

type Config struct {
	DatabaseURL    string
	JWTSecret      string
	AccessTokenTTL time.Duration
	RedisAddr      string
	RedisPassword  string
	KafkaBrokers   []string
	Port           string
	AllowOrigins   []string
	SeedDev        bool
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func splitList(v string) []string {
	var out []string
	for _, s := range strings.Split(v, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// Load membaca .env (kalau ada) lalu environment proses.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  File .env tidak ditemukan, lanjut pakai environment bawaan")
	}

	ttl, err := time.ParseDuration(getenv("ACCESS_TOKEN_TTL", "1h"))
	if err != nil || ttl <= 0 {
		log.Printf("⚠️  ACCESS_TOKEN_TTL tidak valid, pakai 1h")
		ttl = time.Hour
	}

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		dbURL = os.Getenv("DB_URL")
	}

	return Config{
		DatabaseURL:    dbURL,
		JWTSecret:      os.Getenv("JWT_SECRET"),
		AccessTokenTTL: ttl,
		RedisAddr:      getenv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:  os.Getenv("REDIS_PASSWORD"),
		KafkaBrokers:   splitList(os.Getenv("KAFKA_BROKERS")),
		Port:           getenv("PORT", "8080"),
		AllowOrigins:   splitList(getenv("ALLOW_ORIGINS", "http://localhost:3000")),
		SeedDev:        os.Getenv("SEED_DEV") == "1",
	}
}
