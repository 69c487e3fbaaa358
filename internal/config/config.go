package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/wmsconsole/wms-console/internal/console"
)

const (
	DefaultBaseURL = "http://localhost:8080"
	DefaultTimeout = 10 * time.Second
	DefaultFormat  = "table"
)

// Config is the full configuration of the console client.
type Config struct {
	API     APIConfig     `yaml:"api"`
	Log     LogConfig     `yaml:"log"`
	Output  OutputConfig  `yaml:"output"`
	Console ConsoleConfig `yaml:"console"`
}

// APIConfig locates and authenticates against the WMS backend.
type APIConfig struct {
	BaseURL    string        `yaml:"base_url" env:"WMS_API_BASE_URL"`
	Token      string        `yaml:"token" env:"WMS_API_TOKEN"`
	ClientID   string        `yaml:"client_id" env:"WMS_CLIENT_ID"`
	Timeout    time.Duration `yaml:"timeout" env:"WMS_API_TIMEOUT"`
	RetryCount int           `yaml:"retry_count" env:"WMS_API_RETRY_COUNT"`
}

// LogConfig selects the zap level.
type LogConfig struct {
	Level string `yaml:"level" env:"WMS_LOG_LEVEL"`
}

// OutputConfig selects the default renderer of the CLI.
type OutputConfig struct {
	Format string `yaml:"format" env:"WMS_OUTPUT_FORMAT"`
}

// ConsoleConfig carries the footer and top bar shown by the console.
type ConsoleConfig struct {
	Footer console.Footer `yaml:"footer"`
	TopBar console.TopBar `yaml:"top_bar"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		API: APIConfig{
			BaseURL: DefaultBaseURL,
			Timeout: DefaultTimeout,
		},
		Log:    LogConfig{Level: "info"},
		Output: OutputConfig{Format: DefaultFormat},
		Console: ConsoleConfig{
			Footer: console.DefaultFooter(),
			TopBar: console.DefaultTopBar(),
		},
	}
}

// Load builds the configuration in layers: an optional .env file, the
// defaults, the YAML file at path (when not empty), and finally the WMS_*
// environment variables. The result is validated.
func Load(path, envFile string) (*Config, error) {
	if err := loadEnvFile(envFile); err != nil {
		return nil, err
	}

	ip := NewInputParser()
	cfg := Default()
	if path != "" {
		if err := ip.decodeFile(path, cfg); err != nil {
			return nil, err
		}
	}
	if err := ip.ApplyEnv(cfg); err != nil {
		return nil, err
	}
	if err := ip.ValidateConfiguration(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

func loadEnvFile(envFile string) error {
	if envFile == "" {
		// A missing .env is normal when the environment is set directly.
		_ = godotenv.Load()
		return nil
	}
	if err := godotenv.Load(envFile); err != nil {
		return fmt.Errorf("failed loading env file %s: %w", envFile, err)
	}
	return nil
}

// InputParser handles parsing of configuration files
type InputParser struct {
	environment map[string]string
}

// NewInputParser creates a parser reading overrides from the process
// environment.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// WithEnvironment makes ApplyEnv read overrides from vars instead of the
// process environment.
func (ip *InputParser) WithEnvironment(vars map[string]string) *InputParser {
	ip.environment = vars
	return ip
}

// LoadFromFile loads a YAML configuration file over the defaults and
// validates it. Environment overrides are not applied.
func (ip *InputParser) LoadFromFile(filename string) (*Config, error) {
	cfg := Default()
	if err := ip.decodeFile(filename, cfg); err != nil {
		return nil, err
	}
	if err := ip.ValidateConfiguration(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

func (ip *InputParser) decodeFile(filename string, cfg *Config) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}
	return nil
}

// envOverrides limits environment parsing to the scalar sections; the
// console section is only configurable from YAML.
type envOverrides struct {
	API    *APIConfig
	Log    *LogConfig
	Output *OutputConfig
}

// ApplyEnv overrides cfg with every WMS_* variable that is set.
func (ip *InputParser) ApplyEnv(cfg *Config) error {
	opts := env.Options{}
	if ip.environment != nil {
		opts.Environment = ip.environment
	}
	target := envOverrides{API: &cfg.API, Log: &cfg.Log, Output: &cfg.Output}
	if err := env.ParseWithOptions(&target, opts); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// ValidateConfiguration validates the loaded configuration
func (ip *InputParser) ValidateConfiguration(cfg *Config) error {
	if cfg == nil {
		return errors.New("config is nil")
	}
	if err := ip.validateAPI(&cfg.API); err != nil {
		return fmt.Errorf("api: %w", err)
	}
	if _, err := zapcore.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("log: %w", err)
	}
	if err := cfg.Console.Footer.Validate(); err != nil {
		return fmt.Errorf("console footer: %w", err)
	}
	if err := cfg.Console.TopBar.Validate(); err != nil {
		return fmt.Errorf("console top bar: %w", err)
	}
	return nil
}

func (ip *InputParser) validateAPI(api *APIConfig) error {
	if api.BaseURL == "" {
		return errors.New("base_url must be provided")
	}
	u, err := url.Parse(api.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid base_url: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("base_url %q must be an http(s) URL", api.BaseURL)
	}
	if api.Timeout < 0 {
		return fmt.Errorf("timeout cannot be negative")
	}
	if api.RetryCount < 0 {
		return fmt.Errorf("retry_count cannot be negative")
	}
	return nil
}
