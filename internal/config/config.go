package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ErrInvalid wraps every validation problem reported by Load
var ErrInvalid = errors.New("invalid configuration")

// Config contains runtime settings for the server
type Config struct {
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	Host     string `env:"MCP_HOST"  envDefault:"0.0.0.0"`
	Port     string `env:"PORT"      envDefault:"8080"`

	HH           HHConfig `envPrefix:"HH_"`
	Connectivity ConnectivityConfig
	Neo4j        Neo4jConfig `envPrefix:"NEO4J_"`
	Redis        RedisConfig `envPrefix:"REDIS_"`
	Cache        CacheConfig
	Sheets       SheetsConfig
	Sync         SyncConfig
}

// HHConfig configures the job-listing API gateway
type HHConfig struct {
	BaseURL   string        `env:"BASE_URL"   envDefault:"https://api.hh.ru"`
	Timeout   time.Duration `env:"TIMEOUT"    envDefault:"10s"`
	Token     string        `env:"TOKEN"`
	UserAgent string        `env:"USER_AGENT" envDefault:"vacancy-gateway/0.1 (dev@honeycarbs.io)"`
	PageSize  int           `env:"PAGE_SIZE"  envDefault:"20"`
}

// ConnectivityConfig configures the network probe and which operations use it
type ConnectivityConfig struct {
	Targets      []string      `env:"CONNECTIVITY_TARGETS"      envDefault:"api.hh.ru:443"`
	Timeout      time.Duration `env:"CONNECTIVITY_TIMEOUT"      envDefault:"2s"`
	CheckLookups bool          `env:"CHECK_LOOKUP_CONNECTIVITY" envDefault:"false"`
}

// Neo4jConfig is optional; storage is disabled when URI is empty
type Neo4jConfig struct {
	URI      string `env:"URI"`
	Username string `env:"USERNAME"`
	Password string `env:"PASSWORD"`
}

func (c Neo4jConfig) Enabled() bool { return c.URI != "" }

// RedisConfig is optional; the lookup cache is disabled when Addr is empty
type RedisConfig struct {
	Addr     string `env:"ADDR"`
	Password string `env:"PASSWORD"`
	DB       int    `env:"DB" envDefault:"0"`
}

func (c RedisConfig) Enabled() bool { return c.Addr != "" }

// CacheConfig contains lookup cache settings (Redis-based)
type CacheConfig struct {
	TTL time.Duration `env:"LOOKUP_CACHE_TTL" envDefault:"12h"`
}

type SheetsConfig struct {
	CredentialsPath string `env:"GOOGLE_SHEETS_CREDENTIALS_PATH"`
}

func (c SheetsConfig) Enabled() bool { return c.CredentialsPath != "" }

// SyncConfig holds the cron schedule of the lookup sync; empty disables it
type SyncConfig struct {
	Schedule string `env:"LOOKUP_SYNC_SCHEDULE"`
}

func (c SyncConfig) Enabled() bool { return strings.TrimSpace(c.Schedule) != "" }

// Addr is the listen address of the HTTP server
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

// Load reads an optional .env file, then populates config from environment
// variables and validates it.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		var pathErr *os.PathError
		if !errors.As(err, &pathErr) {
			return Config{}, fmt.Errorf("load .env file: %w", err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate reports every problem at once
func (c Config) Validate() error {
	var problems []string

	if c.HH.Timeout <= 0 {
		problems = append(problems, "HH_TIMEOUT must be positive")
	}
	if u, err := url.ParseRequestURI(c.HH.BaseURL); err != nil || u.Host == "" {
		problems = append(problems, fmt.Sprintf("HH_BASE_URL %q is not an absolute url", c.HH.BaseURL))
	}
	if c.HH.PageSize <= 0 {
		problems = append(problems, "HH_PAGE_SIZE must be positive")
	}
	if c.Connectivity.Timeout <= 0 {
		problems = append(problems, "CONNECTIVITY_TIMEOUT must be positive")
	}

	if c.Neo4j.Enabled() {
		var missing []string
		if c.Neo4j.Username == "" {
			missing = append(missing, "NEO4J_USERNAME")
		}
		if c.Neo4j.Password == "" {
			missing = append(missing, "NEO4J_PASSWORD")
		}
		if len(missing) > 0 {
			problems = append(problems, "missing required environment variables: "+strings.Join(missing, ", "))
		}
	}

	if c.Redis.Enabled() && c.Cache.TTL <= 0 {
		problems = append(problems, "LOOKUP_CACHE_TTL must be positive")
	}
	if c.Sync.Enabled() && !c.Neo4j.Enabled() {
		problems = append(problems, "LOOKUP_SYNC_SCHEDULE requires NEO4J_URI")
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(problems, "; "))
	}
	return nil
}
