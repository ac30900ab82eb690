package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port: 3000,
			CORS: CORSConfig{AllowedOrigins: []string{"http://localhost:3000"}},
		},
		Log: LogConfig{Level: "info"},
		Dictionary: DictionaryConfig{
			BaseURL:     "https://api.dictionaryapi.dev/api/v2/entries/en",
			Timeout:     10 * time.Second,
			MinInterval: 2 * time.Second,
		},
		Scraper: ScraperConfig{
			Timeout:        30 * time.Second,
			RetryAttempts:  3,
			RetryDelay:     2 * time.Second,
			SourceLanguage: "english",
			TargetLanguage: "portuguese",
		},
		Gemini: GeminiConfig{
			Model:       "gemini-2.0-flash",
			Timeout:     30 * time.Second,
			MinInterval: time.Second,
		},
		Phonetics: PhoneticsConfig{DictionaryFile: "ipadict.txt"},
		Cache: CacheConfig{
			WordTTL:        24 * time.Hour,
			TranslationTTL: time.Hour,
			DailyWordTTL:   24 * time.Hour,
			MaxEntries:     10000,
		},
		DailyWord: DailyWordConfig{
			Attempts:       5,
			RetryDelay:     time.Second,
			RandomAttempts: 10,
		},
		Database: DatabaseConfig{
			Host:     "localhost",
			Port:     3306,
			Database: "transcriptus",
			Username: "user",
		},
	}
}

func TestConfigLoader_Load(t *testing.T) {
	tests := []struct {
		name              string
		configContent     string
		useExplicitPath   bool
		env               map[string]string
		want              func() *Config
		wantErrorContains []string
	}{
		{
			name:          "no config file uses defaults",
			configContent: "",
			want:          defaultConfig,
		},
		{
			name: "custom values",
			configContent: `server:
  port: 8080
log:
  level: debug
scraper:
  base_url: http://localhost:9222
  retry_attempts: 5
  retry_delay: 500ms
cache:
  word_ttl: 12h
  max_entries: 0
daily_word:
  attempts: 3
`,
			want: func() *Config {
				cfg := defaultConfig()
				cfg.Server.Port = 8080
				cfg.Log.Level = "debug"
				cfg.Scraper.BaseURL = "http://localhost:9222"
				cfg.Scraper.RetryAttempts = 5
				cfg.Scraper.RetryDelay = 500 * time.Millisecond
				cfg.Cache.WordTTL = 12 * time.Hour
				cfg.Cache.MaxEntries = 0
				cfg.DailyWord.Attempts = 3
				return cfg
			},
		},
		{
			name: "secrets come from the environment only",
			configContent: `gemini:
  model: gemini-2.5-flash
database:
  enabled: true
  host: db.example.com
`,
			useExplicitPath: true,
			env: map[string]string{
				"GEMINI_API_KEY": "test-key",
				"DB_PASSWORD":    "secret",
			},
			want: func() *Config {
				cfg := defaultConfig()
				cfg.Gemini.APIKey = "test-key"
				cfg.Gemini.Model = "gemini-2.5-flash"
				cfg.Database.Enabled = true
				cfg.Database.Host = "db.example.com"
				cfg.Database.Password = "secret"
				return cfg
			},
		},
		{
			name: "invalid YAML format",
			configContent: `server:
  port: 8080
  invalid yaml format here [[[
`,
			wantErrorContains: []string{
				"configuration file found but could not be read",
				"Please check the file format and permissions",
			},
		},
		{
			name: "missing phonetics dictionary",
			configContent: `phonetics:
  dictionary_file: missing.txt
`,
			wantErrorContains: []string{
				"invalid configuration",
				"phonetics.dictionary_file must be an existing and readable file",
			},
		},
		{
			name: "unknown log level",
			configContent: `log:
  level: verbose
`,
			wantErrorContains: []string{"invalid configuration", "level"},
		},
		{
			name: "invalid dictionary URL",
			configContent: `dictionary:
  base_url: not a url
`,
			wantErrorContains: []string{"invalid configuration", "base_url"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tempDir := t.TempDir()
			t.Chdir(tempDir)
			require.NoError(t, os.WriteFile(filepath.Join(tempDir, "ipadict.txt"), []byte("hello həˈloʊ\n"), 0644))
			t.Setenv("GEMINI_API_KEY", "")
			t.Setenv("DB_PASSWORD", "")
			for key, value := range tt.env {
				t.Setenv(key, value)
			}

			var configPath string
			if tt.useExplicitPath {
				configPath = filepath.Join(tempDir, "transcriptus.yml")
				require.NoError(t, os.WriteFile(configPath, []byte(tt.configContent), 0644))
			} else if tt.configContent != "" {
				require.NoError(t, os.WriteFile(filepath.Join(tempDir, "config.yaml"), []byte(tt.configContent), 0644))
			}

			loader, err := NewConfigLoader(configPath)
			require.NoError(t, err)
			got, err := loader.Load()

			if len(tt.wantErrorContains) > 0 {
				assert.Error(t, err)
				assert.Nil(t, got)
				for _, wantMsg := range tt.wantErrorContains {
					assert.Contains(t, err.Error(), wantMsg)
				}
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want(), got)
		})
	}
}
