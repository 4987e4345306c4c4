package config

import (
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Defaults applied before the file is read.
const (
	DefaultRPCURL      = "https://bsc-dataseed1.binance.org"
	DefaultChainID     = 56
	DefaultNetworkName = "Binance Smart Chain"
	DefaultListenAddr  = ":1337"
	defaultTimeout     = 5 * time.Second
)

// Environment variables overriding file values.
const (
	EnvRPCURL     = "TWINDEX_RPC_URL"
	EnvListenAddr = "TWINDEX_LISTEN_ADDR"
	EnvLogLevel   = "LOG_LEVEL"
)

// Config holds application configuration loaded from file.
type Config struct {
	RPCURL            string        `yaml:"rpc_url"`
	ChainID           uint64        `yaml:"chain_id"`
	NetworkName       string        `yaml:"network_name"`
	ListenAddr        string        `yaml:"listen_addr"`
	GraceTimeout      time.Duration `yaml:"shutdown_timeout"`
	RequestTimeout    time.Duration `yaml:"request_timeout"`
	ReadHeaderTimeout time.Duration `yaml:"read_header_timeout"`
	CallTimeout       time.Duration `yaml:"call_timeout"`
	Log               LogConfig     `yaml:"log"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		RPCURL:            DefaultRPCURL,
		ChainID:           DefaultChainID,
		NetworkName:       DefaultNetworkName,
		ListenAddr:        DefaultListenAddr,
		GraceTimeout:      defaultTimeout,
		RequestTimeout:    defaultTimeout,
		ReadHeaderTimeout: defaultTimeout,
		CallTimeout:       defaultTimeout,
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Load reads the config from a YAML file path. A missing file leaves the
// defaults in place. Environment overrides are applied last.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return Config{}, errors.Wrap(err, "os.ReadFile")
	}

	if len(data) > 0 {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, errors.Wrap(err, "yaml.Unmarshal")
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return Config{}, errors.Wrap(err, "cfg.Validate")
	}

	return cfg, nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(EnvRPCURL); v != "" {
		c.RPCURL = v
	}
	if v := os.Getenv(EnvListenAddr); v != "" {
		c.ListenAddr = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Log.Level = strings.ToLower(v)
	}
}

// Validate checks required values and fills zero timeouts.
func (c *Config) Validate() error {
	if c.RPCURL == "" {
		return errors.Errorf("rpc_url is required (set %s)", EnvRPCURL)
	}
	if c.ChainID == 0 {
		return errors.New("chain_id must be positive")
	}
	if c.ListenAddr == "" {
		c.ListenAddr = DefaultListenAddr
	}

	// Fallbacks
	for _, d := range []*time.Duration{&c.GraceTimeout, &c.RequestTimeout, &c.ReadHeaderTimeout, &c.CallTimeout} {
		if *d < 0 {
			return errors.Errorf("timeout cannot be negative: %s", *d)
		}
		if *d == 0 {
			*d = defaultTimeout
		}
	}

	switch c.Log.Format {
	case "", "json", "console":
	default:
		return errors.Errorf("log.format must be json or console, got %q", c.Log.Format)
	}

	return nil
}
