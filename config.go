package securelend

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/SecureLend/sdk/core/apierror"
	"github.com/SecureLend/sdk/core/transport/middleware"
	"github.com/SecureLend/sdk/providers/observability/slogobs"
)

// Environment variables read by ApplyEnv and NewFromEnv.
const (
	EnvAPIKey     = "SECURELEND_API_KEY"
	EnvMCPURL     = "SECURELEND_MCP_URL"
	EnvDebug      = "SECURELEND_DEBUG"
	EnvTimeout    = "SECURELEND_TIMEOUT"
	EnvRepairJSON = "SECURELEND_REPAIR_JSON"
	EnvLogLevel   = "SECURELEND_LOG_LEVEL"
	EnvLogFormat  = "SECURELEND_LOG_FORMAT"
)

// Config is the file form of the client options.
//
//	apiKey: sk_test_...
//	mcpURL: https://mcp.securelend.ai/sse
//	timeout: 10s
//	rateLimit:
//	  rps: 5
//	  burst: 2
//	log:
//	  level: debug
//	  format: json
type Config struct {
	APIKey     string          `yaml:"apiKey"`
	MCPURL     string          `yaml:"mcpURL"`
	Debug      bool            `yaml:"debug"`
	Timeout    time.Duration   `yaml:"timeout"`
	RepairJSON bool            `yaml:"repairJSON"`
	RateLimit  RateLimitConfig `yaml:"rateLimit"`
	Log        LogConfig       `yaml:"log"`
}

// RateLimitConfig enables the client-side rate limiter when RPS > 0.
type RateLimitConfig struct {
	RPS      float64 `yaml:"rps"`
	Burst    int     `yaml:"burst"`
	PerTool  bool    `yaml:"perTool"`
	FailFast bool    `yaml:"failFast"`
}

// LogConfig selects the slog handler. Both fields empty keeps the default
// logger.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// LoadConfig reads a YAML file and applies environment overrides on top.
// Unknown keys are rejected. Every failure is a validation_error.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apierror.Validation(fmt.Sprintf("Cannot read config %s", path)).WithCause(err)
	}

	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, apierror.Validation(fmt.Sprintf("Invalid config %s: %v", path, err)).WithCause(err)
	}

	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ApplyEnv overwrites fields whose SECURELEND_* variable is set and
// non-blank. A value that does not parse is a validation_error naming the
// variable.
func (c *Config) ApplyEnv() error {
	if v := env(EnvAPIKey); v != "" {
		c.APIKey = v
	}
	if v := env(EnvMCPURL); v != "" {
		c.MCPURL = v
	}
	if v := env(EnvDebug); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return invalidEnv(EnvDebug, "a boolean", err)
		}
		c.Debug = b
	}
	if v := env(EnvTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return invalidEnv(EnvTimeout, "a duration such as 30s", err)
		}
		c.Timeout = d
	}
	if v := env(EnvRepairJSON); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return invalidEnv(EnvRepairJSON, "a boolean", err)
		}
		c.RepairJSON = b
	}
	if v := env(EnvLogLevel); v != "" {
		c.Log.Level = v
	}
	if v := env(EnvLogFormat); v != "" {
		c.Log.Format = v
	}
	return nil
}

// Options converts the config into client options.
func (c *Config) Options() []Option {
	var opts []Option
	if c.MCPURL != "" {
		opts = append(opts, WithMCPURL(c.MCPURL))
	}
	if c.Timeout > 0 {
		opts = append(opts, WithTimeout(c.Timeout))
	}
	if c.Debug {
		opts = append(opts, WithDebug(true))
	}
	if c.RepairJSON {
		opts = append(opts, WithRepairJSON())
	}
	if c.RateLimit.RPS > 0 {
		opts = append(opts, WithMiddleware(middleware.NewRateLimitMiddleware(middleware.RateLimitConfig{
			RPS:      c.RateLimit.RPS,
			Burst:    c.RateLimit.Burst,
			PerTool:  c.RateLimit.PerTool,
			FailFast: c.RateLimit.FailFast,
		})))
	}
	if c.Log.Level != "" || c.Log.Format != "" {
		level := slog.LevelDebug
		if c.Log.Level != "" {
			level = slogobs.ParseLogLevel(c.Log.Level)
		}
		opts = append(opts, WithLogger(slog.New(slogobs.NewHandler(&slogobs.HandlerOptions{
			Format: slogobs.ParseFormat(c.Log.Format),
			Level:  level,
		}))))
	}
	return opts
}

// NewFromConfig builds a client from cfg. opts are applied after the
// config's own options and win over them.
func NewFromConfig(cfg *Config, opts ...Option) (*SecureLend, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	return New(cfg.APIKey, append(cfg.Options(), opts...)...)
}

// NewFromEnv loads ./.env when present and builds a client from the
// SECURELEND_* variables.
func NewFromEnv(opts ...Option) (*SecureLend, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, apierror.Validation("Cannot load .env file").WithCause(err)
	}

	cfg := &Config{}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	return NewFromConfig(cfg, opts...)
}

func invalidEnv(key, want string, err error) error {
	return apierror.InvalidField(key, fmt.Sprintf("%s must be %s", key, want)).WithCause(err)
}

func env(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}
