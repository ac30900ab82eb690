package config

import (
	"fmt"
	"time"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Log        LogConfig        `mapstructure:"log"`
	Dictionary DictionaryConfig `mapstructure:"dictionary"`
	Scraper    ScraperConfig    `mapstructure:"scraper"`
	Gemini     GeminiConfig     `mapstructure:"gemini"`
	Phonetics  PhoneticsConfig  `mapstructure:"phonetics"`
	Cache      CacheConfig      `mapstructure:"cache"`
	DailyWord  DailyWordConfig  `mapstructure:"daily_word"`
	Database   DatabaseConfig   `mapstructure:"database"`
}

type ServerConfig struct {
	Port int        `mapstructure:"port" validate:"min=1,max=65535"`
	CORS CORSConfig `mapstructure:"cors"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type LogConfig struct {
	Level string `mapstructure:"level" validate:"oneof=debug info warn error"`
}

type DictionaryConfig struct {
	BaseURL     string        `mapstructure:"base_url" validate:"required,url"`
	Timeout     time.Duration `mapstructure:"timeout" validate:"gt=0"`
	MinInterval time.Duration `mapstructure:"min_interval" validate:"gte=0"`
}

// ScraperConfig points at the headless-browser phrase service. An empty
// BaseURL disables the scraper.
type ScraperConfig struct {
	BaseURL        string        `mapstructure:"base_url" validate:"omitempty,url"`
	Timeout        time.Duration `mapstructure:"timeout" validate:"gt=0"`
	MinInterval    time.Duration `mapstructure:"min_interval" validate:"gte=0"`
	RetryAttempts  uint          `mapstructure:"retry_attempts" validate:"max=10"`
	RetryDelay     time.Duration `mapstructure:"retry_delay" validate:"gte=0"`
	SourceLanguage string        `mapstructure:"source_language" validate:"required"`
	TargetLanguage string        `mapstructure:"target_language" validate:"required"`
}

type GeminiConfig struct {
	APIKey      string        `mapstructure:"api_key"`
	Model       string        `mapstructure:"model" validate:"required"`
	Timeout     time.Duration `mapstructure:"timeout" validate:"gt=0"`
	MinInterval time.Duration `mapstructure:"min_interval" validate:"gte=0"`
}

type PhoneticsConfig struct {
	DictionaryFile string `mapstructure:"dictionary_file" validate:"required,file"`
}

type CacheConfig struct {
	WordTTL        time.Duration `mapstructure:"word_ttl" validate:"gt=0"`
	TranslationTTL time.Duration `mapstructure:"translation_ttl" validate:"gt=0"`
	DailyWordTTL   time.Duration `mapstructure:"daily_word_ttl" validate:"gt=0"`
	MaxEntries     int           `mapstructure:"max_entries" validate:"gte=0"`
}

type DailyWordConfig struct {
	Attempts       int           `mapstructure:"attempts" validate:"min=1"`
	RetryDelay     time.Duration `mapstructure:"retry_delay" validate:"gte=0"`
	RandomAttempts int           `mapstructure:"random_attempts" validate:"min=1"`
}

// DatabaseConfig is only validated when Enabled is set.
type DatabaseConfig struct {
	Enabled         bool              `mapstructure:"enabled"`
	Host            string            `mapstructure:"host" validate:"required_if=Enabled true"`
	Port            int               `mapstructure:"port" validate:"required_if=Enabled true"`
	Database        string            `mapstructure:"database" validate:"required_if=Enabled true"`
	Username        string            `mapstructure:"username" validate:"required_if=Enabled true"`
	Password        string            `mapstructure:"password"`
	TLS             bool              `mapstructure:"tls"`
	Params          map[string]string `mapstructure:"params"`
	MaxOpenConns    int               `mapstructure:"max_open_conns"`
	MaxIdleConns    int               `mapstructure:"max_idle_conns"`
	ConnMaxLifetime int               `mapstructure:"conn_max_lifetime_seconds"`
}

type ConfigLoader struct {
	viper      *viper.Viper
	validator  *validator.Validate
	translator ut.Translator
}

func NewConfigLoader(configFile string) (*ConfigLoader, error) {
	validate, trans, err := newValidator()
	if err != nil {
		return nil, fmt.Errorf("failed to create new validator: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/transcriptus")
	}

	return &ConfigLoader{
		viper:      v,
		validator:  validate,
		translator: trans,
	}, nil
}

func (loader *ConfigLoader) Load() (*Config, error) {
	v := loader.viper

	v.SetDefault("server.port", 3000)
	v.SetDefault("server.cors.allowed_origins", []string{"http://localhost:3000"})
	v.SetDefault("log.level", "info")
	v.SetDefault("dictionary.base_url", "https://api.dictionaryapi.dev/api/v2/entries/en")
	v.SetDefault("dictionary.timeout", 10*time.Second)
	v.SetDefault("dictionary.min_interval", 2*time.Second)
	// The scraper stays disabled until a phrase service is configured
	v.SetDefault("scraper.base_url", "")
	v.SetDefault("scraper.timeout", 30*time.Second)
	v.SetDefault("scraper.min_interval", time.Duration(0))
	v.SetDefault("scraper.retry_attempts", 3)
	v.SetDefault("scraper.retry_delay", 2*time.Second)
	v.SetDefault("scraper.source_language", "english")
	v.SetDefault("scraper.target_language", "portuguese")
	v.SetDefault("gemini.model", "gemini-2.0-flash")
	v.SetDefault("gemini.timeout", 30*time.Second)
	v.SetDefault("gemini.min_interval", time.Second)
	v.SetDefault("phonetics.dictionary_file", "ipadict.txt")
	v.SetDefault("cache.word_ttl", 24*time.Hour)
	v.SetDefault("cache.translation_ttl", time.Hour)
	v.SetDefault("cache.daily_word_ttl", 24*time.Hour)
	v.SetDefault("cache.max_entries", 10000)
	v.SetDefault("daily_word.attempts", 5)
	v.SetDefault("daily_word.retry_delay", time.Second)
	v.SetDefault("daily_word.random_attempts", 10)
	v.SetDefault("database.enabled", false)
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.database", "transcriptus")
	v.SetDefault("database.username", "user")

	// Secrets are bound to environment variables only (not from config file)
	if err := v.BindEnv("gemini.api_key", "GEMINI_API_KEY"); err != nil {
		return nil, fmt.Errorf("failed to bind GEMINI_API_KEY environment variable: %w", err)
	}
	if err := v.BindEnv("database.password", "DB_PASSWORD"); err != nil {
		return nil, fmt.Errorf("failed to bind DB_PASSWORD environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := loader.validator.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %s", translateErrors(err, loader.translator))
	}

	return &cfg, nil
}
