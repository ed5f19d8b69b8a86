package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var ErrMissingEnvironmentVariables = errors.New("missing required environment variables")

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	Env              string   `mapstructure:"env"`               // current application environment (local, dev, production etc)
	TelegramAPIToken string   `mapstructure:"-"`                 // Telegram API token loaded from environment
	LexiconJSONPath  string   `mapstructure:"lexicon_json_path"` // path to JSON file with the practice lexicon
	DB               DB       `mapstructure:"database"`          // database configuration section
	Matcher          Matcher  `mapstructure:"matcher"`           // pronunciation matching thresholds
	Practice         Practice `mapstructure:"practice"`          // practice loop tuning
}

// DB contains database-related configuration parameters.
type DB struct {
	URL             string        `mapstructure:"-"`                 // database connection string loaded from environment
	MaxConnections  int           `mapstructure:"max_connections"`   // maximum number of open connections in the pool
	MaxConnLifetime time.Duration `mapstructure:"max_conn_lifetime"` // maximum lifetime of a single connection
	Migrate         bool          `mapstructure:"migrate"`           // apply embedded migrations on startup
}

// Matcher contains the grading thresholds, in percent.
type Matcher struct {
	AcceptThreshold  int  `mapstructure:"accept_threshold"`
	PartialThreshold int  `mapstructure:"partial_threshold"`
	CrossLexicon     bool `mapstructure:"cross_lexicon"`
}

type Practice struct {
	MasteryCorrect int `mapstructure:"mastery_correct"` // correct answers needed to master a word
	Suggestions    int `mapstructure:"suggestions"`     // "did you mean" entries shown on a miss
}

// DSN returns the database connection string if it is configured.
func (db DB) DSN() (string, error) {
	if db.URL == "" {
		return "", ErrMissingEnvironmentVariables
	}
	return db.URL, nil
}

// Validate checks value ranges that viper cannot express.
func (c *Config) Validate() error {
	m := c.Matcher
	if m.AcceptThreshold < 0 || m.AcceptThreshold > 100 || m.PartialThreshold < 0 || m.PartialThreshold > 100 {
		return fmt.Errorf("matcher thresholds must be within [0, 100], got accept=%d partial=%d",
			m.AcceptThreshold, m.PartialThreshold)
	}
	if m.PartialThreshold > m.AcceptThreshold {
		return fmt.Errorf("matcher partial threshold %d is above accept threshold %d",
			m.PartialThreshold, m.AcceptThreshold)
	}
	if c.Practice.MasteryCorrect <= 0 {
		return fmt.Errorf("practice mastery_correct must be positive, got %d", c.Practice.MasteryCorrect)
	}
	if c.DB.MaxConnections <= 0 {
		return fmt.Errorf("database max_connections must be positive, got %d", c.DB.MaxConnections)
	}
	return nil
}

// Load reads configuration from config files and environment variables.
// A .env file in the working directory, if present, is loaded first.
func Load() (*Config, error) {
	_ = godotenv.Load()

	return load("./config")
}

func load(paths ...string) (*Config, error) {
	// Initialize Viper instance and base config options.
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	// Set default values for configuration keys.
	v.SetDefault("env", "local")
	v.SetDefault("lexicon_json_path", "assets/data/lexicon.json")
	v.SetDefault("database.max_connections", 20)
	v.SetDefault("database.max_conn_lifetime", "30s")
	v.SetDefault("database.migrate", true)
	v.SetDefault("matcher.accept_threshold", 70)
	v.SetDefault("matcher.partial_threshold", 30)
	v.SetDefault("matcher.cross_lexicon", true)
	v.SetDefault("practice.mastery_correct", 3)
	v.SetDefault("practice.suggestions", 3)

	// Configure environment variable handling and key mapping.
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // map nested keys to ENV style names
	v.AutomaticEnv()

	// Bind explicit environment variables to configuration keys.
	_ = v.BindEnv("telegram_api_token", "TELEGRAM_API_TOKEN")
	_ = v.BindEnv("database_url", "DATABASE_URL")
	_ = v.BindEnv("env", "APP_ENV")

	// Try to read configuration file if present.
	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	// Unmarshal configuration into strongly typed struct.
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	// Load sensitive values from environment variables.
	cfg.TelegramAPIToken = v.GetString("telegram_api_token")
	if cfg.TelegramAPIToken == "" {
		return nil, ErrMissingEnvironmentVariables
	}

	cfg.DB.URL = v.GetString("database_url")
	if cfg.DB.URL == "" {
		return nil, ErrMissingEnvironmentVariables
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
