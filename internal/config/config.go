// Package config manages environment variables.
//
// It reads variables from the process environment (optionally seeded
// from a `.env` file), maps them into structured Go types, validates
// that required values are present so the app fails fast on bad or
// missing config, and fills in defaults for optional pool tuning.
package config

import (
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	// Side-effect import: loads a `.env` file into the process env
	// before any variable is read. No explicit call needed.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"github.com/rs/zerolog"
)

// envPrefix selects which environment variables belong to this service.
//
// Nesting uses a double underscore, e.g.
// CATALOG_DATABASE__MAX_CONNS -> database.max_conns -> Config.Database.MaxConns.
const envPrefix = "CATALOG_"

// Config is the root configuration object for the application.
//
// The `koanf:"..."` tags specify where koanf should map values from,
// and the `validate:"required"` tags enforce presence at startup.
type Config struct {
	Primary  Primary        `koanf:"primary" validate:"required"`
	Server   ServerConfig   `koanf:"server" validate:"required"`
	Database DatabaseConfig `koanf:"database" validate:"required"`
}

// Primary holds top-level information about the runtime environment.
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups settings for the HTTP server runtime.
// Timeouts are stored as seconds.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"required"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"required"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"required"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required"`
}

// DatabaseConfig contains PostgreSQL connection parameters and pool tuning.
//
// The pool fields are optional; zero values are replaced with defaults:
//
//	max_conns          15  (upper bound, covers base pool plus burst)
//	min_conns           2  (connections kept warm)
//	max_conn_lifetime  30  (minutes before a connection is recycled)
//	max_conn_idle_time  5  (minutes before an idle connection is closed)
type DatabaseConfig struct {
	Host            string `koanf:"host" validate:"required"`
	Port            int    `koanf:"port" validate:"required"`
	User            string `koanf:"user" validate:"required"`
	Password        string `koanf:"password" validate:"required"`
	Name            string `koanf:"name" validate:"required"`
	SSLMode         string `koanf:"ssl_mode" validate:"required"`
	MaxConns        int    `koanf:"max_conns"`
	MinConns        int    `koanf:"min_conns"`
	MaxConnLifetime int    `koanf:"max_conn_lifetime"`
	MaxConnIdleTime int    `koanf:"max_conn_idle_time"`
}

// New loads configuration from environment variables, unmarshals it into
// Config, validates it, applies pool defaults, and returns the result.
//
// It logs fatally on any failure: a service with broken config has
// nothing useful left to do.
func New() *Config {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	// "." is the key-path delimiter koanf uses for nesting,
	// e.g. "database.host" means Config.Database.Host.
	k := koanf.New(".")

	// Strip the prefix, lowercase, and turn the "__" nesting marker into
	// the koanf delimiter: CATALOG_SERVER__PORT -> server.port.
	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "__", ".")
	}), nil)
	if err != nil {
		logger.Fatal().Err(err).Msg("could not load env variables")
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		logger.Fatal().Err(err).Msg("could not unmarshal config")
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		logger.Fatal().Err(err).Msg("config validation failed")
	}

	cfg.Database.applyDefaults()

	return cfg
}

func (d *DatabaseConfig) applyDefaults() {
	if d.MaxConns == 0 {
		d.MaxConns = 15
	}
	if d.MinConns == 0 {
		d.MinConns = 2
	}
	if d.MaxConnLifetime == 0 {
		d.MaxConnLifetime = 30
	}
	if d.MaxConnIdleTime == 0 {
		d.MaxConnIdleTime = 5
	}
}
