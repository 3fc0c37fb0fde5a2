package configs

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBSource     string
	Port         string
	JWTSecret    string
	JWTTTL       time.Duration
	SeedDatabase bool
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment")
	}

	// โหมด release ห้ามใช้ secret ค่า default
	secret := getEnv("JWT_SECRET", "changeme")
	if os.Getenv("GIN_MODE") == "release" {
		secret = MustGetEnv("JWT_SECRET")
	}

	return &Config{
		DBSource:     getEnv("DB_SOURCE", "restaurant.db"),
		Port:         getEnv("PORT", "5000"),
		JWTSecret:    secret,
		JWTTTL:       time.Duration(7*24) * time.Hour,
		SeedDatabase: getEnv("SEED_DATABASE", "false") == "true",
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

// MustGetEnv ใช้กับ env ที่ขาดไม่ได้ ขาดแล้ว fatal เลย
func MustGetEnv(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok {
		log.Fatalf("missing env: %s", key)
	}
	return v
}
