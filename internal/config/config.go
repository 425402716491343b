// Package config defines configuration parsing and helpers.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"gopkg.in/yaml.v3"
)

// Greeter implementation selectors accepted by GREETER_MODE.
const (
	GreeterModePlain = "plain"
	GreeterModeStub  = "stub"
)

// Config holds all application configuration parsed from environment variables.
type Config struct {
	AppEnv string `env:"APP_ENV" envDefault:"dev"`
	// ConfigFile points at an optional YAML file overlaying defaults for
	// keys whose environment variables are unset.
	ConfigFile string `env:"APP_CONFIG_FILE" envDefault:""`
	Port       int    `env:"PORT" envDefault:"8080"`
	// TestPort is the listener port used when AppEnv is test, so a dev
	// instance and a test run never contend for the same port.
	TestPort              int           `env:"HTTP_TEST_PORT" envDefault:"8081"`
	GreeterMode           string        `env:"GREETER_MODE" envDefault:"plain"`
	OTLPEndpoint          string        `env:"OTEL_EXPORTER_OTLP_ENDPOINT" envDefault:""`
	OTELServiceName       string        `env:"OTEL_SERVICE_NAME" envDefault:"greeting-service"`
	MaxBodyKB             int64         `env:"MAX_BODY_KB" envDefault:"64"`
	CORSAllowOrigins      string        `env:"CORS_ALLOW_ORIGINS" envDefault:"*"`
	RateLimitPerMin       int           `env:"RATE_LIMIT_PER_MIN" envDefault:"60"`
	ServerShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	HTTPReadTimeout       time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"15s"`
	HTTPWriteTimeout      time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"30s"`
	HTTPIdleTimeout       time.Duration `env:"HTTP_IDLE_TIMEOUT" envDefault:"60s"`
}

// fileConfig mirrors the YAML overlay. Pointer fields distinguish absent
// keys from zero values.
type fileConfig struct {
	App struct {
		Env *string `yaml:"env"`
	} `yaml:"app"`
	Greeter struct {
		Mode *string `yaml:"mode"`
	} `yaml:"greeter"`
	HTTP struct {
		Port     *int `yaml:"port"`
		TestPort *int `yaml:"test_port"`
	} `yaml:"http"`
}

// Load parses environment variables into a Config, then overlays the
// optional YAML file. Precedence: environment, then file, then defaults.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("op=config.Load: %w", err)
	}
	if cfg.ConfigFile != "" {
		if err := overlayFile(&cfg, cfg.ConfigFile); err != nil {
			return Config{}, err
		}
	}
	switch cfg.GreeterMode {
	case GreeterModePlain, GreeterModeStub:
	default:
		return Config{}, fmt.Errorf("op=config.Load: unknown GREETER_MODE %q", cfg.GreeterMode)
	}
	return cfg, nil
}

// overlayFile applies file values for keys whose environment variables are
// unset. Environment always wins over the file.
func overlayFile(cfg *Config, path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("op=config.overlayFile: %w", err)
	}
	var fc fileConfig
	if err := yaml.Unmarshal(b, &fc); err != nil {
		return fmt.Errorf("op=config.overlayFile: %w", err)
	}
	if fc.App.Env != nil && !envSet("APP_ENV") {
		cfg.AppEnv = *fc.App.Env
	}
	if fc.Greeter.Mode != nil && !envSet("GREETER_MODE") {
		cfg.GreeterMode = *fc.Greeter.Mode
	}
	if fc.HTTP.Port != nil && !envSet("PORT") {
		cfg.Port = *fc.HTTP.Port
	}
	if fc.HTTP.TestPort != nil && !envSet("HTTP_TEST_PORT") {
		cfg.TestPort = *fc.HTTP.TestPort
	}
	return nil
}

func envSet(key string) bool {
	_, ok := os.LookupEnv(key)
	return ok
}

// EffectivePort returns the port the HTTP listener binds for the current
// environment: TestPort when running tests, Port otherwise.
func (c Config) EffectivePort() int {
	if c.IsTest() {
		return c.TestPort
	}
	return c.Port
}

// MaxBodyBytes returns the request body cap in bytes.
func (c Config) MaxBodyBytes() int64 { return c.MaxBodyKB << 10 }

// UseStubGreeter reports whether the stub greeter should serve requests.
func (c Config) UseStubGreeter() bool { return c.GreeterMode == GreeterModeStub }

// IsDev reports whether the app is running in development mode.
func (c Config) IsDev() bool { return strings.ToLower(c.AppEnv) == "dev" }

// IsProd reports whether the app is running in production mode.
func (c Config) IsProd() bool { return strings.ToLower(c.AppEnv) == "prod" }

// IsTest reports whether the app is running in test mode.
func (c Config) IsTest() bool { return strings.ToLower(c.AppEnv) == "test" }
