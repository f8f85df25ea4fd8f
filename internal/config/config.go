package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Префикс переменных окружения, переопределяющих значения из файла
const envPrefix = "HEAL_"

// Config конфигурация сервиса
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Database  DatabaseConfig  `toml:"database"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
	Auth      AuthConfig      `toml:"auth"`
	Booking   BookingConfig   `toml:"booking"`
	RateLimit RateLimitConfig `toml:"ratelimit"`
	Redis     RedisConfig     `toml:"redis"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// URL строка подключения для golang-migrate
func (d DatabaseConfig) URL() string {
	u := &url.URL{
		Scheme: "postgres",
		Host:   fmt.Sprintf("%s:%d", d.Host, d.Port),
		User:   url.UserPassword(d.User, d.Password),
		Path:   d.DBName,
	}
	q := u.Query()
	q.Set("sslmode", d.SSLMode)
	u.RawQuery = q.Encode()
	return u.String()
}

// LogsConfig настройки логирования
type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// MetricsConfig настройки prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// AuthConfig настройки сессий и хэширования паролей
type AuthConfig struct {
	JWTSecret         string `toml:"jwt_secret"`
	TokenTTLHours     int    `toml:"token_ttl_hours"`
	Argon2Memory      uint32 `toml:"argon2_memory"`
	Argon2Iterations  uint32 `toml:"argon2_iterations"`
	Argon2Parallelism uint8  `toml:"argon2_parallelism"`
}

// TokenTTL время жизни токена сессии
func (a AuthConfig) TokenTTL() time.Duration {
	return time.Duration(a.TokenTTLHours) * time.Hour
}

// BookingConfig настройки бронирования
type BookingConfig struct {
	Timezone string `toml:"timezone"`
}

// Location часовой пояс, в котором интерпретируются даты бронирований
func (b BookingConfig) Location() (*time.Location, error) {
	return time.LoadLocation(b.Timezone)
}

// RateLimitConfig настройки token bucket для публичных POST запросов
type RateLimitConfig struct {
	Enabled               bool   `toml:"enabled"`
	Capacity              int    `toml:"capacity"`
	RefillTokens          int    `toml:"refill_tokens"`
	RefillIntervalSeconds int    `toml:"refill_interval_seconds"`
	TTLSeconds            int    `toml:"ttl_seconds"`
	Prefix                string `toml:"prefix"`

	// TrustProxyHeaders брать ip клиента из X-Forwarded-For/X-Real-IP.
	// Включать только за собственным reverse proxy.
	TrustProxyHeaders bool `toml:"trust_proxy_headers"`
}

// RefillInterval период пополнения
func (r RateLimitConfig) RefillInterval() time.Duration {
	return time.Duration(r.RefillIntervalSeconds) * time.Second
}

// TTL время жизни ключа в redis
func (r RateLimitConfig) TTL() time.Duration {
	return time.Duration(r.TTLSeconds) * time.Second
}

// RedisConfig настройки redis
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// Load загружает конфигурацию из TOML файла, затем из .env (если есть),
// затем применяет переменные окружения HEAL_*
func Load(path string) (*Config, error) {
	cfg := defaults()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	applyEnv(cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "heal-booking-service",
		},
		Auth: AuthConfig{
			TokenTTLHours:     24,
			Argon2Memory:      64 * 1024,
			Argon2Iterations:  3,
			Argon2Parallelism: 4,
		},
		Booking: BookingConfig{
			Timezone: "Europe/Stockholm",
		},
		RateLimit: RateLimitConfig{
			Capacity:              10,
			RefillTokens:          1,
			RefillIntervalSeconds: 6,
			TTLSeconds:            600,
			Prefix:                "rl",
		},
		Redis: RedisConfig{
			Addr: "localhost:6379",
		},
	}
}

func applyEnv(cfg *Config) {
	setString(&cfg.Database.Host, "DB_HOST")
	setInt(&cfg.Database.Port, "DB_PORT")
	setString(&cfg.Database.User, "DB_USER")
	setString(&cfg.Database.Password, "DB_PASSWORD")
	setString(&cfg.Database.DBName, "DB_NAME")
	setString(&cfg.Auth.JWTSecret, "JWT_SECRET")
	setString(&cfg.Redis.Addr, "REDIS_ADDR")
	setString(&cfg.Redis.Password, "REDIS_PASSWORD")
	setString(&cfg.Logs.Level, "LOG_LEVEL")
	setInt(&cfg.Server.HTTPPort, "HTTP_PORT")
}

func setString(dst *string, key string) {
	if v, ok := os.LookupEnv(envPrefix + key); ok && v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	v, ok := os.LookupEnv(envPrefix + key)
	if !ok || v == "" {
		return
	}
	if n, err := strconv.Atoi(v); err == nil {
		*dst = n
	}
}

func (c *Config) validate() error {
	if c.Auth.JWTSecret == "" {
		return errors.New("auth.jwt_secret is required (or HEAL_JWT_SECRET)")
	}
	if c.Auth.TokenTTLHours <= 0 {
		return errors.New("auth.token_ttl_hours must be positive")
	}
	if _, err := c.Booking.Location(); err != nil {
		return fmt.Errorf("booking.timezone: %w", err)
	}
	if c.RateLimit.Enabled {
		if c.RateLimit.Capacity < 1 || c.RateLimit.RefillTokens < 1 || c.RateLimit.RefillIntervalSeconds < 1 {
			return errors.New("ratelimit: capacity, refill_tokens and refill_interval_seconds must be positive")
		}
	}
	return nil
}
