package config

import (
	"errors"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"

	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	Env string

	Database DatabaseConfig
	Redis    RedisConfig
	Log      LogConfig
	HTTP     HTTPConfig
	Export   ExportConfig
}

type DatabaseConfig struct {
	Driver     string
	Path       string // sqlite file
	Host       string
	Port       int
	User       string
	Password   string
	Name       string
	SSLMode    string
	MaxRetries int
}

// RedisConfig enables the department search cache when Addr is set.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	CacheTTL time.Duration
}

type LogConfig struct {
	Level  string
	Format string
	Output []string
}

type HTTPConfig struct {
	Port           string
	AllowedOrigins []string
	RateLimitRPS   float64
	RateLimitBurst int
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
}

type ExportConfig struct {
	Dir string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !isMissingFile(err) {
			return nil, err
		}
	}

	return fromViper(v), nil
}

func fromViper(v *viper.Viper) *Config {
	cfg := &Config{}
	cfg.Env = v.GetString("ENV")

	cfg.Database = DatabaseConfig{
		Driver:     strings.ToLower(v.GetString("DB_DRIVER")),
		Path:       v.GetString("DB_PATH"),
		Host:       v.GetString("DB_HOST"),
		Port:       v.GetInt("DB_PORT"),
		User:       v.GetString("DB_USER"),
		Password:   v.GetString("DB_PASSWORD"),
		Name:       v.GetString("DB_NAME"),
		SSLMode:    v.GetString("DB_SSLMODE"),
		MaxRetries: v.GetInt("DB_MAX_RETRIES"),
	}

	cfg.Redis = RedisConfig{
		Addr:     v.GetString("REDIS_ADDR"),
		Password: v.GetString("REDIS_PASSWORD"),
		DB:       v.GetInt("REDIS_DB"),
		CacheTTL: parseDuration(v.GetString("CACHE_TTL"), time.Hour),
	}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
		Output: splitAndTrim(v.GetString("LOG_OUTPUT")),
	}

	cfg.HTTP = HTTPConfig{
		Port:           v.GetString("HTTP_PORT"),
		AllowedOrigins: splitAndTrim(v.GetString("ALLOWED_ORIGINS")),
		RateLimitRPS:   v.GetFloat64("RATE_LIMIT_RPS"),
		RateLimitBurst: v.GetInt("RATE_LIMIT_BURST"),
		ReadTimeout:    parseDuration(v.GetString("HTTP_READ_TIMEOUT"), 5*time.Second),
		WriteTimeout:   parseDuration(v.GetString("HTTP_WRITE_TIMEOUT"), 10*time.Second),
		IdleTimeout:    parseDuration(v.GetString("HTTP_IDLE_TIMEOUT"), 60*time.Second),
	}

	cfg.Export = ExportConfig{Dir: v.GetString("EXPORT_DIR")}

	return cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)

	v.SetDefault("DB_DRIVER", DriverSQLite)
	v.SetDefault("DB_PATH", "payroll.db")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "payroll")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_MAX_RETRIES", 5)

	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("CACHE_TTL", "1h")

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("LOG_OUTPUT", "payroll.log")

	v.SetDefault("HTTP_PORT", "3000")
	v.SetDefault("ALLOWED_ORIGINS", "")
	v.SetDefault("RATE_LIMIT_RPS", 5)
	v.SetDefault("RATE_LIMIT_BURST", 10)

	v.SetDefault("EXPORT_DIR", "exports")
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}

	return d
}

func splitAndTrim(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}
