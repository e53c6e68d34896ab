package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/goran-ethernal/ChainCache/internal/network"
	pkgconfig "github.com/goran-ethernal/ChainCache/pkg/config"
)

// EnvPrefix is the prefix of every environment override, e.g. CHAINCACHE_RPC_URL.
const EnvPrefix = "chaincache"

// envOverrides are applied on top of the file contents before defaults.
type envOverrides struct {
	RPCURL         string `envconfig:"RPC_URL"`
	DBPath         string `envconfig:"DB_PATH"`
	LogLevel       string `envconfig:"LOG_LEVEL"`
	DefaultNetwork string `envconfig:"DEFAULT_NETWORK"`
}

// format is a config file encoding.
type format struct {
	name      string
	unmarshal func([]byte, any) error
	marshal   func(any) ([]byte, error)
}

var (
	yamlFormat = format{name: "YAML", unmarshal: yaml.Unmarshal, marshal: yaml.Marshal}
	jsonFormat = format{name: "JSON", unmarshal: json.Unmarshal, marshal: marshalJSON}
	tomlFormat = format{name: "TOML", unmarshal: toml.Unmarshal, marshal: marshalTOML}
)

func marshalJSON(v any) ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}

func marshalTOML(v any) ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(v); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func formatFor(path string) (format, error) {
	ext := strings.ToLower(filepath.Ext(path))

	switch ext {
	case ".yaml", ".yml":
		return yamlFormat, nil
	case ".json":
		return jsonFormat, nil
	case ".toml":
		return tomlFormat, nil
	default:
		return format{}, fmt.Errorf("unsupported config file format: %s (supported: .yaml, .yml, .json, .toml)", ext)
	}
}

// LoadFromFile loads configuration from a file, auto-detecting the format by extension.
// Supported formats: .yaml, .yml, .json, .toml
func LoadFromFile(path string) (*pkgconfig.Config, error) {
	f, err := formatFor(path)
	if err != nil {
		return nil, err
	}

	return load(path, f)
}

// LoadFromYAML loads configuration from a YAML file.
func LoadFromYAML(path string) (*pkgconfig.Config, error) {
	return load(path, yamlFormat)
}

// LoadFromJSON loads configuration from a JSON file.
func LoadFromJSON(path string) (*pkgconfig.Config, error) {
	return load(path, jsonFormat)
}

// LoadFromTOML loads configuration from a TOML file.
func LoadFromTOML(path string) (*pkgconfig.Config, error) {
	return load(path, tomlFormat)
}

// UpgradeFile reads a config file of any supported version and returns it
// upgraded to the current layout, encoded in the same format.
func UpgradeFile(path string) ([]byte, error) {
	f, err := formatFor(path)
	if err != nil {
		return nil, err
	}

	upgraded, err := readUpgraded(path, f)
	if err != nil {
		return nil, err
	}

	out, err := f.marshal(upgraded)
	if err != nil {
		return nil, fmt.Errorf("failed to encode upgraded %s config: %w", f.name, err)
	}

	return out, nil
}

// readUpgraded decodes the file into a generic document and upgrades it.
func readUpgraded(path string, f format) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	raw := make(map[string]any)
	if err := f.unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse %s config: %w", f.name, err)
	}

	upgraded, err := Upgrade(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to upgrade config: %w", err)
	}

	return upgraded, nil
}

func load(path string, f format) (*pkgconfig.Config, error) {
	upgraded, err := readUpgraded(path, f)
	if err != nil {
		return nil, err
	}

	// Re-encode in the source format so the format specific struct tags and decoders apply.
	data, err := f.marshal(upgraded)
	if err != nil {
		return nil, fmt.Errorf("failed to encode upgraded %s config: %w", f.name, err)
	}

	var cfg pkgconfig.Config
	if err := f.unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s config: %w", f.name, err)
	}

	return processConfig(&cfg)
}

// processConfig applies environment overrides and defaults, then validates the configuration.
func processConfig(cfg *pkgconfig.Config) (*pkgconfig.Config, error) {
	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func applyEnvOverrides(cfg *pkgconfig.Config) error {
	var env envOverrides
	if err := envconfig.Process(EnvPrefix, &env); err != nil {
		return fmt.Errorf("failed to read environment overrides: %w", err)
	}

	if env.RPCURL != "" {
		cfg.RPC.URL = env.RPCURL
	}
	if env.DBPath != "" {
		cfg.Cache.DB.Path = env.DBPath
	}
	if env.LogLevel != "" {
		if cfg.Logging == nil {
			cfg.Logging = &pkgconfig.LoggingConfig{}
		}
		cfg.Logging.DefaultLevel = env.LogLevel
	}
	if env.DefaultNetwork != "" {
		chainID, err := network.NewDirectory(cfg.Networks, nil).ChainID(env.DefaultNetwork)
		if err != nil {
			return fmt.Errorf("invalid CHAINCACHE_DEFAULT_NETWORK: %w", err)
		}
		cfg.DefaultNetwork = chainID
	}

	return nil
}
