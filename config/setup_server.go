package config

import (
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"gopkg.in/yaml.v3"
)

type AppConfig struct {
	DatabaseConfig DatabaseConfig `yaml:"databaseConfig"`
	RedisConfig    RedisConfig    `yaml:"redisConfig"`
	ServerAddr     string         `yaml:"serverAddr"`
	JWT            JWTConfig      `yaml:"jwt"`
	Cookie         CookieConfig   `yaml:"cookie"`
}

// LoadConfig читает config.yaml и применяет поверх него переменные окружения.
// Конфигурация загружается один раз при старте и дальше не изменяется
func LoadConfig(path string) (*AppConfig, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg AppConfig
	if err := yaml.Unmarshal(file, &cfg); err != nil {
		return nil, err
	}

	applyEnvOverrides(&cfg)
	return &cfg, nil
}

// applyEnvOverrides подменяет секреты значениями из окружения (.env),
// чтобы не хранить их в yaml файле
func applyEnvOverrides(cfg *AppConfig) {
	if v := os.Getenv("DATABASE_DSN"); v != "" {
		cfg.DatabaseConfig.DSN = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		cfg.RedisConfig.Addr = v
	}
	if v := os.Getenv("ACCESS_TOKEN_SECRET"); v != "" {
		cfg.JWT.AccessSecretKey = v
	}
	if v := os.Getenv("REFRESH_TOKEN_SECRET"); v != "" {
		cfg.JWT.RefreshSecretKey = v
	}
	if v := os.Getenv("SERVER_ADDRESS"); v != "" {
		cfg.ServerAddr = v
	}
}

func SetupServer(serverAddress string) (*http.Server, *chi.Mux) {
	router := chi.NewRouter()
	server := &http.Server{
		Addr:    serverAddress,
		Handler: router,
	}

	return server, router
}

func SetupDatabase(dsn string) (*Database, error) {
	return NewDatabaseConnection("postgres", dsn)
}

func SetupRedis(cfg *RedisConfig) (*RedisClient, error) {
	return NewRedisClient(cfg)
}
