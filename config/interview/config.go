package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
	ProviderCanned = "canned"

	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	Port      int    `env:"PORT" env-default:"8000"`
	LogLevel  string `env:"LOG_LEVEL" env-default:"info"`
	LogJSON   bool   `env:"LOG_JSON" env-default:"false"`
	JWTSecret string `env:"JWT_SECRET"`

	Database DatabaseConfig
	LLM      LLMConfig
	Audio    AudioConfig
	Report   ReportConfig
}

type DatabaseConfig struct {
	Driver   string `env:"DB_DRIVER" env-default:"postgres"`
	Host     string `env:"DB_HOST" env-default:"localhost"`
	Port     int    `env:"DB_PORT" env-default:"5432"`
	User     string `env:"DB_USER" env-default:"postgres"`
	Password string `env:"DB_PASSWORD"`
	Name     string `env:"DB_NAME" env-default:"interview"`
	SSLMode  string `env:"DB_SSLMODE" env-default:"disable"`
	Path     string `env:"DB_PATH" env-default:"interview.db"`
}

type LLMConfig struct {
	Provider      string        `env:"LLM_PROVIDER" env-default:"gemini"`
	Model         string        `env:"LLM_MODEL"`
	GoogleAPIKey  string        `env:"GOOGLE_API_KEY"`
	OpenAIAPIKey  string        `env:"OPENAI_API_KEY"`
	OpenAIBaseURL string        `env:"OPENAI_BASE_URL"`
	STTProvider   string        `env:"STT_PROVIDER" env-default:"gemini"`
	STTModel      string        `env:"STT_MODEL"`
	RPS           float64       `env:"LLM_RPS" env-default:"1"`
	Burst         int           `env:"LLM_BURST" env-default:"2"`
	MaxRetries    uint          `env:"LLM_MAX_RETRIES" env-default:"3"`
	RetryDelay    time.Duration `env:"LLM_RETRY_DELAY" env-default:"2s"`
	Timeout       time.Duration `env:"LLM_TIMEOUT" env-default:"60s"`
}

type AudioConfig struct {
	FFmpeg          string        `env:"AUDIO_FFMPEG" env-default:"ffmpeg"`
	MaxBytes        int64         `env:"AUDIO_MAX_BYTES" env-default:"52428800"`
	DownloadTimeout time.Duration `env:"AUDIO_DOWNLOAD_TIMEOUT" env-default:"2m"`
	TempDir         string        `env:"AUDIO_TEMP_DIR"`
}

type ReportConfig struct {
	Timeout   time.Duration `env:"REPORT_TIMEOUT" env-default:"15m"`
	Retention time.Duration `env:"REPORT_RETENTION" env-default:"1h"`
}

// Load reads path as a dotenv file when it exists, then lets the process
// environment override it. An empty path reads the environment only.
func Load(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := cleanenv.ReadConfig(path, &cfg); err != nil {
				return nil, fmt.Errorf("failed to read config %s: %w", path, err)
			}
			return &cfg, nil
		}
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment variables: %w", err)
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	var errs []error

	if c.Port <= 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("PORT %d out of range", c.Port))
	}

	switch c.Database.Driver {
	case DriverPostgres:
		if c.Database.Host == "" || c.Database.Name == "" {
			errs = append(errs, errors.New("DB_HOST and DB_NAME are required for postgres"))
		}
	case DriverSQLite:
		if c.Database.Path == "" {
			errs = append(errs, errors.New("DB_PATH is required for sqlite"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown DB_DRIVER %q", c.Database.Driver))
	}

	if err := c.LLM.requireKey("LLM_PROVIDER", c.LLM.Provider); err != nil {
		errs = append(errs, err)
	}
	if err := c.LLM.requireKey("STT_PROVIDER", c.LLM.STTProvider); err != nil {
		errs = append(errs, err)
	}
	if c.LLM.RPS <= 0 {
		errs = append(errs, errors.New("LLM_RPS must be positive"))
	}
	if c.LLM.Burst < 1 {
		errs = append(errs, errors.New("LLM_BURST must be at least 1"))
	}
	if c.LLM.OpenAIBaseURL != "" {
		if _, err := url.ParseRequestURI(c.LLM.OpenAIBaseURL); err != nil {
			errs = append(errs, fmt.Errorf("invalid OPENAI_BASE_URL: %w", err))
		}
	}

	if c.Audio.MaxBytes <= 0 {
		errs = append(errs, errors.New("AUDIO_MAX_BYTES must be positive"))
	}

	return errors.Join(errs...)
}

func (l LLMConfig) requireKey(name, provider string) error {
	switch provider {
	case ProviderGemini:
		if l.GoogleAPIKey == "" {
			return fmt.Errorf("%s=%s requires GOOGLE_API_KEY", name, provider)
		}
	case ProviderOpenAI:
		if l.OpenAIAPIKey == "" {
			return fmt.Errorf("%s=%s requires OPENAI_API_KEY", name, provider)
		}
	case ProviderCanned:
	default:
		return fmt.Errorf("unknown %s %q", name, provider)
	}
	return nil
}

// DSN returns the data source name for the configured driver.
func (d DatabaseConfig) DSN() string {
	if d.Driver == DriverSQLite {
		return d.Path
	}

	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Password),
		Host:     fmt.Sprintf("%s:%d", d.Host, d.Port),
		Path:     "/" + strings.TrimPrefix(d.Name, "/"),
		RawQuery: url.Values{"sslmode": {d.SSLMode}}.Encode(),
	}
	return u.String()
}

func MustLoad() *Config {
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = ".env"
	}

	cfg, err := Load(path)
	if err != nil {
		panic(err.Error())
	}
	if err := cfg.Validate(); err != nil {
		panic("invalid configuration: " + err.Error())
	}
	return cfg
}
