// Package config loads CLI configuration for the rdfc10canon command:
// a YAML file layered with environment variables and overridden by
// flags, the same layering pattern cayleygraph/cayley's command wires
// with spf13/viper.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config holds the settings that steer a single canonicalize run.
type Config struct {
	// HndqCallLimit bounds HashNDegreeQuads recursion. Zero means use
	// the library default (rdfc10.DefaultHndqCallLimit).
	HndqCallLimit int `yaml:"hndqCallLimit"`

	// Digest selects "sha256" or "sha384".
	Digest string `yaml:"digest"`

	// PerNodeBudget selects the per-reference-node call counter variant
	// instead of the dataset-wide default (see rdfc10.NewPerNodeCallCounter).
	PerNodeBudget bool `yaml:"perNodeBudget"`
}

// Default returns the configuration the CLI uses when no file, env var
// or flag overrides a field.
func Default() Config {
	return Config{
		HndqCallLimit: 4000,
		Digest:        "sha256",
	}
}

// Load reads path (if non-empty) as YAML, layers `RDFC10_*` environment
// variables over it via viper, and returns the merged configuration.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("reading config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}

	v := viper.New()
	v.SetEnvPrefix("RDFC10")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if v.IsSet("HNDQ_CALL_LIMIT") {
		cfg.HndqCallLimit = v.GetInt("HNDQ_CALL_LIMIT")
	}
	if v.IsSet("DIGEST") {
		cfg.Digest = v.GetString("DIGEST")
	}
	if v.IsSet("PER_NODE_BUDGET") {
		cfg.PerNodeBudget = v.GetBool("PER_NODE_BUDGET")
	}

	return cfg, nil
}
