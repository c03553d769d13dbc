package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port    string
	GinMode string

	// Database settings. DBDriver: "postgres" или "sqlite"
	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
	SQLitePath string

	// Redis используется только для счётчиков посещений; пустой адрес отключает их
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	MediaDir  string
	MediaURL  string
	StaticDir string
	LogsDir   string
	TimeZone  string

	SeedDemo           bool
	AllowedOrigins     []string
	VisitFlushSchedule string
}

func LoadConfig() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}
	return &Config{
		Port:               getenvOrDefault("PORT", "8080"),
		GinMode:            os.Getenv("GIN_MODE"),
		DBDriver:           strings.ToLower(getenvOrDefault("DB_DRIVER", "postgres")),
		DBHost:             getenvOrDefault("DB_HOST", "localhost"),
		DBPort:             getenvOrDefault("DB_PORT", "5432"),
		DBUser:             os.Getenv("DB_USER"),
		DBPassword:         os.Getenv("DB_PASSWORD"),
		DBName:             os.Getenv("DB_NAME"),
		DBSSLMode:          getenvOrDefault("DB_SSLMODE", "disable"),
		SQLitePath:         getenvOrDefault("SQLITE_PATH", "blog.db"),
		RedisAddr:          os.Getenv("REDIS_ADDR"),
		RedisPassword:      os.Getenv("REDIS_PASSWORD"),
		RedisDB:            getenvInt("REDIS_DB", 0),
		MediaDir:           getenvOrDefault("MEDIA_DIR", "./media"),
		MediaURL:           getenvOrDefault("MEDIA_URL", "/media/"),
		StaticDir:          getenvOrDefault("STATIC_DIR", "./static"),
		LogsDir:            getenvOrDefault("LOGS_DIR", "logs"),
		TimeZone:           getenvOrDefault("TIME_ZONE", "Europe/Moscow"),
		SeedDemo:           getenvBool("SEED_DEMO", false),
		AllowedOrigins:     splitList(os.Getenv("ALLOWED_ORIGINS")),
		VisitFlushSchedule: getenvOrDefault("VISIT_FLUSH_SCHEDULE", "*/15 * * * *"),
	}
}

// getenvOrDefault returns the environment variable value if set, otherwise returns def
func getenvOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("invalid %s=%q, using %d", key, v, def)
		return def
	}
	return n
}

func getenvBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Printf("invalid %s=%q, using %t", key, v, def)
		return def
	}
	return b
}

// splitList разбирает "a, b,c" в []string{"a", "b", "c"}
func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
