package configs

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	AuthModeSupabase = "supabase"
	AuthModeJWT      = "jwt"
)

type DatabaseConfig struct {
	URL          string
	MaxConns     int32
	QueryTimeout time.Duration
}

type RESTconfig struct {
	PORT            string
	ShutdownTimeout time.Duration
	MetricsEnabled  bool
}

// AuthConfig описывает провайдера авторизации. В режиме supabase токен проверяется
// запросом к AUTH_URL, в режиме jwt локально по AUTH_JWT_SECRET.
type AuthConfig struct {
	Mode        string
	URL         string
	AnonKey     string
	JWTSecret   string
	JWTAudience string
	Timeout     time.Duration
}

type RevealConfig struct {
	DefaultPageSize   int
	MaxPageSize       int
	ExposeStoreErrors bool
}

type StdoutLogConfig struct {
	Level  string
	IsJSON bool
}

type FluentBitConfig struct {
	Host    string
	Port    int
	Enabled bool
	Level   string
}

// AppConfig хранит всю конфигурацию приложения
type AppConfig struct {
	AppName      string
	Database     DatabaseConfig
	Rest         RESTconfig
	Auth         AuthConfig
	Reveal       RevealConfig
	FluentBit    FluentBitConfig
	StdoutLogger StdoutLogConfig
}

// LoadConfig загружает .env (если есть) и читает конфигурацию из окружения.
// Явно переданный путь к .env обязан существовать.
func LoadConfig(envPath ...string) (*AppConfig, error) {
	if len(envPath) > 0 {
		if err := godotenv.Load(envPath[0]); err != nil {
			return nil, fmt.Errorf("could not load .env file (path: %v): %w", envPath[0], err)
		}
	} else if err := godotenv.Load(); err != nil {
		log.Printf("Info: .env file not loaded (%v), using process environment.", err)
	}

	cfg := &AppConfig{}

	cfg.AppName = getEnvAsString("APP_NAME", "reveal-contact-service")

	cfg.Database.URL = os.Getenv("DATABASE_URL")
	if cfg.Database.URL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}
	cfg.Database.MaxConns = int32(getEnvAsInt("DB_MAX_CONNS", 0))
	cfg.Database.QueryTimeout = getEnvAsDuration("DB_QUERY_TIMEOUT", 0)

	cfg.Rest.PORT = getEnvAsString("PORT", "8080")
	cfg.Rest.ShutdownTimeout = getEnvAsDuration("SHUTDOWN_TIMEOUT", 10*time.Second)
	cfg.Rest.MetricsEnabled = getEnvAsBool("METRICS_ENABLED", true)

	if err := loadAuthConfig(&cfg.Auth); err != nil {
		return nil, err
	}

	cfg.Reveal.MaxPageSize = getEnvAsInt("MAX_PAGE_SIZE", 100)
	if cfg.Reveal.MaxPageSize < 1 {
		return nil, fmt.Errorf("MAX_PAGE_SIZE must be positive, got %d", cfg.Reveal.MaxPageSize)
	}
	cfg.Reveal.DefaultPageSize = getEnvAsInt("DEFAULT_PAGE_SIZE", 20)
	if cfg.Reveal.DefaultPageSize < 1 || cfg.Reveal.DefaultPageSize > cfg.Reveal.MaxPageSize {
		return nil, fmt.Errorf("DEFAULT_PAGE_SIZE must be in [1, %d], got %d", cfg.Reveal.MaxPageSize, cfg.Reveal.DefaultPageSize)
	}
	cfg.Reveal.ExposeStoreErrors = getEnvAsBool("EXPOSE_STORE_ERRORS", true)

	cfg.FluentBit.Enabled = getEnvAsBool("FLUENTBIT_ENABLED", false)
	if cfg.FluentBit.Enabled {
		cfg.FluentBit.Host = os.Getenv("FLUENTBIT_HOST")
		if cfg.FluentBit.Host == "" {
			log.Println("WARNING: FLUENTBIT_ENABLED is true, but FLUENTBIT_HOST is not set. Disabling Fluent Bit.")
			cfg.FluentBit.Enabled = false
		}

		cfg.FluentBit.Port = getEnvAsInt("FLUENTBIT_PORT", 24224)
		cfg.FluentBit.Level = getEnvAsString("FLUENTBIT_LOG_LEVEL", "info")
	}

	cfg.StdoutLogger.Level = getEnvAsString("STDOUT_LOG_LEVEL", "debug")
	cfg.StdoutLogger.IsJSON = getEnvAsBool("STDOUT_LOG_JSON", false)

	return cfg, nil
}

func loadAuthConfig(auth *AuthConfig) error {
	auth.Mode = strings.ToLower(getEnvAsString("AUTH_MODE", AuthModeSupabase))
	auth.URL = os.Getenv("AUTH_URL")
	auth.AnonKey = os.Getenv("AUTH_ANON_KEY")
	auth.JWTSecret = os.Getenv("AUTH_JWT_SECRET")
	auth.JWTAudience = getEnvAsString("AUTH_JWT_AUDIENCE", "authenticated")
	auth.Timeout = getEnvAsDuration("AUTH_TIMEOUT", 10*time.Second)

	switch auth.Mode {
	case AuthModeSupabase:
		if auth.URL == "" || auth.AnonKey == "" {
			return fmt.Errorf("AUTH_URL and AUTH_ANON_KEY environment variables are required for AUTH_MODE=%s", AuthModeSupabase)
		}
	case AuthModeJWT:
		if auth.JWTSecret == "" {
			return fmt.Errorf("AUTH_JWT_SECRET environment variable is required for AUTH_MODE=%s", AuthModeJWT)
		}
	default:
		return fmt.Errorf("unknown AUTH_MODE %q, expected %q or %q", auth.Mode, AuthModeSupabase, AuthModeJWT)
	}
	return nil
}

func getEnvAsString(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt читает переменную окружения как int или возвращает значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnvAsString(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnvAsString(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// getEnvAsDuration понимает "10s", "1500ms" и голое число секунд.
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := strings.TrimSpace(getEnvAsString(key, ""))
	if valueStr == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(valueStr); err == nil {
		return d
	}
	if seconds, err := strconv.Atoi(valueStr); err == nil {
		return time.Duration(seconds) * time.Second
	}
	return defaultValue
}
