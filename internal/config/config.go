package config

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server" mapstructure:"server"`
	Store      StoreConfig      `yaml:"store" mapstructure:"store"`
	Log        LogConfig        `yaml:"log" mapstructure:"log"`
	Auth       AuthConfig       `yaml:"auth" mapstructure:"auth"`
	Naver      NaverConfig      `yaml:"naver" mapstructure:"naver"`
	Geocode    GeocodeConfig    `yaml:"geocode" mapstructure:"geocode"`
	Summarizer SummarizerConfig `yaml:"summarizer" mapstructure:"summarizer"`
	OpenAI     ModelConfig      `yaml:"openai" mapstructure:"openai"`
	Gemini     ModelConfig      `yaml:"gemini" mapstructure:"gemini"`
	Anthropic  ModelConfig      `yaml:"anthropic" mapstructure:"anthropic"`
	Enrichment EnrichmentConfig `yaml:"enrichment" mapstructure:"enrichment"`
	Wizard     WizardConfig     `yaml:"wizard" mapstructure:"wizard"`
}

// ServerConfig configures the HTTP server.
type ServerConfig struct {
	Port int    `yaml:"port" mapstructure:"port"`
	Mode string `yaml:"mode" mapstructure:"mode"`
}

// StoreConfig configures the database backend ("postgres" or "sqlite").
type StoreConfig struct {
	Driver      string `yaml:"driver" mapstructure:"driver"`
	DatabaseURL string `yaml:"database_url" mapstructure:"database_url"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// AuthConfig holds the shared secret of the identity provider's tokens.
type AuthConfig struct {
	JWTSecret string `yaml:"jwt_secret" mapstructure:"jwt_secret"`
}

// NaverConfig holds Naver Search Open API settings for local and blog search.
type NaverConfig struct {
	ClientID      string  `yaml:"client_id" mapstructure:"client_id"`
	ClientSecret  string  `yaml:"client_secret" mapstructure:"client_secret"`
	BaseURL       string  `yaml:"base_url" mapstructure:"base_url"`
	Display       int     `yaml:"display" mapstructure:"display"`
	ReviewDisplay int     `yaml:"review_display" mapstructure:"review_display"`
	TimeoutSecs   int     `yaml:"timeout_secs" mapstructure:"timeout_secs"`
	RPS           float64 `yaml:"rps" mapstructure:"rps"`
}

// GeocodeConfig configures the secondary geocoder.
type GeocodeConfig struct {
	GoogleKey     string `yaml:"google_key" mapstructure:"google_key"`
	BaseURL       string `yaml:"base_url" mapstructure:"base_url"`
	CacheTTLHours int    `yaml:"cache_ttl_hours" mapstructure:"cache_ttl_hours"`
}

// SummarizerConfig selects the review summarization provider.
type SummarizerConfig struct {
	Provider    string `yaml:"provider" mapstructure:"provider"`
	TimeoutSecs int    `yaml:"timeout_secs" mapstructure:"timeout_secs"`
}

// ModelConfig holds credentials and the model id of one AI provider.
type ModelConfig struct {
	Key   string `yaml:"key" mapstructure:"key"`
	Model string `yaml:"model" mapstructure:"model"`
}

// EnrichmentConfig configures the enrichment cache.
type EnrichmentConfig struct {
	CacheTTLMinutes int `yaml:"cache_ttl_minutes" mapstructure:"cache_ttl_minutes"`
}

// WizardConfig configures wizard session lifetime.
type WizardConfig struct {
	SessionTTLMinutes int `yaml:"session_ttl_minutes" mapstructure:"session_ttl_minutes"`
}

// Load reads configuration from .env, config.yaml and WEDDY_* environment variables.
func Load() (*Config, error) {
	// .env is optional; real environment variables win over it.
	_ = godotenv.Load()

	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("WEDDY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "release")
	v.SetDefault("store.driver", "postgres")
	v.SetDefault("store.database_url", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("naver.client_id", "")
	v.SetDefault("naver.client_secret", "")
	v.SetDefault("naver.base_url", "https://openapi.naver.com/v1/search")
	v.SetDefault("naver.display", 5)
	v.SetDefault("naver.review_display", 10)
	v.SetDefault("naver.timeout_secs", 8)
	v.SetDefault("naver.rps", 10)
	v.SetDefault("geocode.google_key", "")
	v.SetDefault("geocode.base_url", "https://maps.googleapis.com/maps/api/geocode/json")
	v.SetDefault("geocode.cache_ttl_hours", 720)
	v.SetDefault("summarizer.provider", "openai")
	v.SetDefault("summarizer.timeout_secs", 30)
	v.SetDefault("openai.key", "")
	v.SetDefault("openai.model", "gpt-4o-mini")
	v.SetDefault("gemini.key", "")
	v.SetDefault("gemini.model", "gemini-1.5-flash")
	v.SetDefault("anthropic.key", "")
	v.SetDefault("anthropic.model", "claude-haiku-4-5-20251001")
	v.SetDefault("enrichment.cache_ttl_minutes", 360)
	v.SetDefault("wizard.session_ttl_minutes", 30)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// Validate checks the settings every deployment needs.
func (c *Config) Validate() error {
	switch c.Store.Driver {
	case "postgres", "sqlite":
	default:
		return eris.Errorf("config: unsupported store driver %q", c.Store.Driver)
	}
	if c.Store.DatabaseURL == "" {
		return eris.New("config: store.database_url is required")
	}
	if c.Auth.JWTSecret == "" {
		return eris.New("config: auth.jwt_secret is required")
	}
	switch strings.ToLower(c.Summarizer.Provider) {
	case "openai", "gemini", "anthropic":
	default:
		return eris.Errorf("config: unsupported summarizer provider %q", c.Summarizer.Provider)
	}
	return nil
}

// SummarizerModel returns the credentials of the selected summarizer provider.
func (c *Config) SummarizerModel() ModelConfig {
	switch strings.ToLower(c.Summarizer.Provider) {
	case "gemini":
		return c.Gemini
	case "anthropic":
		return c.Anthropic
	default:
		return c.OpenAI
	}
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
