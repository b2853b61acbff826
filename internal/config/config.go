package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config keys, also the names used in config.yaml
const (
	KeyAPIBaseURL    = "api_base_url"
	KeySpriteBaseURL = "sprite_base_url"
	KeyRosterCeiling = "roster_ceiling"
	KeyTypeLimit     = "type_limit"
	KeyDBPath        = "db_path"
	KeyHTTPTimeout   = "http_timeout"
	KeyLogLevel      = "log_level"
	KeyLogFile       = "log_file"
)

const (
	DefaultAPIBaseURL    = "https://pokeapi.co/api/v2/"
	DefaultSpriteBaseURL = "https://raw.githubusercontent.com/PokeAPI/sprites/master/sprites/pokemon"
	DefaultRosterCeiling = 1025
	DefaultTypeLimit     = 30
	DefaultHTTPTimeout   = 15 * time.Second
	DefaultLogLevel      = "info"
)

// EnvPrefix prefixes every environment override (POKEIO_LOG_LEVEL, ...)
const EnvPrefix = "POKEIO"

// Config is the resolved runtime configuration
type Config struct {
	APIBaseURL    string        `key:"api_base_url" validate:"required,url"`
	SpriteBaseURL string        `key:"sprite_base_url" validate:"required,url"`
	RosterCeiling int           `key:"roster_ceiling" validate:"gt=0"`
	TypeLimit     int           `key:"type_limit" validate:"gt=0"`
	DBPath        string        `key:"db_path"` // empty means the store's XDG default
	HTTPTimeout   time.Duration `key:"http_timeout" validate:"gt=0"`
	LogLevel      string        `key:"log_level" validate:"oneof=debug info warn error"`
	LogFile       string        `key:"log_file"` // empty means stderr
}

var validate = newValidator()

// newValidator reports fields by their config key
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return f.Tag.Get("key")
	})
	return v
}

// Dir returns the config directory from POKEIO_CONFIG_DIR,
// falling back to $XDG_CONFIG_HOME/pokeio.
func Dir() string {
	if env := os.Getenv(EnvPrefix + "_CONFIG_DIR"); env != "" {
		return env
	}
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "pokeio")
}

// Load reads config.yaml from dir when present and applies POKEIO_*
// environment overrides on top of the defaults. A missing file is not an
// error.
func Load(dir string) (*Config, error) {
	v := viper.New()
	v.SetDefault(KeyAPIBaseURL, DefaultAPIBaseURL)
	v.SetDefault(KeySpriteBaseURL, DefaultSpriteBaseURL)
	v.SetDefault(KeyRosterCeiling, DefaultRosterCeiling)
	v.SetDefault(KeyTypeLimit, DefaultTypeLimit)
	v.SetDefault(KeyDBPath, "")
	v.SetDefault(KeyHTTPTimeout, DefaultHTTPTimeout)
	v.SetDefault(KeyLogLevel, DefaultLogLevel)
	v.SetDefault(KeyLogFile, "")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if dir != "" {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(dir)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	cfg := &Config{
		APIBaseURL:    v.GetString(KeyAPIBaseURL),
		SpriteBaseURL: v.GetString(KeySpriteBaseURL),
		RosterCeiling: v.GetInt(KeyRosterCeiling),
		TypeLimit:     v.GetInt(KeyTypeLimit),
		DBPath:        v.GetString(KeyDBPath),
		HTTPTimeout:   v.GetDuration(KeyHTTPTimeout),
		LogLevel:      v.GetString(KeyLogLevel),
		LogFile:       v.GetString(KeyLogFile),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects values no component can run with
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return formatValidationError(err)
	}
	return nil
}

func formatValidationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	msgs := make([]string, 0, len(fieldErrs))
	for _, e := range fieldErrs {
		msgs = append(msgs, formatFieldError(e))
	}
	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}

func formatFieldError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", e.Field())
	case "url":
		return fmt.Sprintf("%s must be an absolute URL, got %q", e.Field(), e.Value())
	case "gt":
		return fmt.Sprintf("%s must be positive, got %v", e.Field(), e.Value())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", e.Field(), e.Param())
	default:
		return fmt.Sprintf("%s is invalid", e.Field())
	}
}
