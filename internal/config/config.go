package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config содержит настройки приложения
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Auth     AuthConfig
	Storage  StorageConfig
}

// ServerConfig - настройки HTTP сервера
type ServerConfig struct {
	Port string
}

// DatabaseConfig - настройки подключения к БД
type DatabaseConfig struct {
	// Driver: postgres или sqlite
	Driver   string
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
	// Path используется только для sqlite
	Path string
}

// AuthConfig - настройки выпуска и проверки токенов
type AuthConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
}

// StorageConfig - настройки хранилища файлов документов
type StorageConfig struct {
	// Driver: disk или s3
	Driver string
	// Dir используется драйвером disk
	Dir string
	// Bucket и Endpoint используются драйвером s3
	Bucket   string
	Region   string
	Endpoint string
	// Статические ключи для совместимых хранилищ (MinIO, LocalStack).
	// Пустые значения оставляют стандартную цепочку провайдеров AWS
	AccessKey string
	SecretKey string
}

// DSN возвращает строку подключения к PostgreSQL
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
}

// Load загружает конфигурацию из переменных окружения.
// Файл .env, если присутствует, подхватывается до чтения переменных
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "8080"),
		},
		Database: DatabaseConfig{
			Driver:   getEnv("DB_DRIVER", "postgres"),
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "console"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
			Path:     getEnv("DB_PATH", "console.db"),
		},
		Auth: AuthConfig{
			JWTSecret: getEnv("JWT_SECRET", "dev-secret-change-me"),
			TokenTTL:  getDurationEnv("TOKEN_TTL", 12*time.Hour),
		},
		Storage: StorageConfig{
			Driver:    getEnv("STORAGE_DRIVER", "disk"),
			Dir:       getEnv("STORAGE_DIR", "uploads"),
			Bucket:    getEnv("STORAGE_S3_BUCKET", ""),
			Region:    getEnv("STORAGE_S3_REGION", "eu-south-1"),
			Endpoint:  getEnv("STORAGE_S3_ENDPOINT", ""),
			AccessKey: getEnv("STORAGE_S3_ACCESS_KEY", ""),
			SecretKey: getEnv("STORAGE_S3_SECRET_KEY", ""),
		},
	}
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getDurationEnv читает длительность в секундах
func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if secs, err := strconv.Atoi(value); err == nil {
			return time.Duration(secs) * time.Second
		}
	}
	return defaultValue
}
