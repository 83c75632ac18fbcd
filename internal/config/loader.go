package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// flagKeys maps CLI flag names to config keys.
var flagKeys = map[string]string{
	"workflows":   "workflows_path",
	"catalog":     "catalog_path",
	"output":      "output_path",
	"listen":      "listen_addr",
	"cors-origin": "cors_origin",
	"verbose":     "verbose",
}

// findConfigFile finds the config file to use.
// Priority: explicit path > stacklens.yaml > stacklens.yml
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	for _, name := range []string{"stacklens.yaml", "stacklens.yml"} {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

// Load builds the effective configuration.
// Precedence (highest to lowest): flags > env vars > config file > defaults.
// flags may be nil when no CLI flag set applies (e.g. the bare API server).
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(map[string]interface{}{
		"workflows_path": DefaultWorkflowsPath,
		"catalog_path":   DefaultCatalogPath,
		"output_path":    DefaultOutputPath,
		"listen_addr":    DefaultListenAddr,
		"cors_origin":    DefaultCORSOrigin,
		"verbose":        false,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if configFile := findConfigFile(cfgFile); configFile != "" {
		if err := k.Load(file.Provider(configFile), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", configFile, err)
		}
	}

	// STACKLENS_WORKFLOWS_PATH -> workflows_path
	if err := k.Load(env.Provider("STACKLENS_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "STACKLENS_"))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed {
				return "", nil
			}
			key, ok := flagKeys[f.Name]
			if !ok {
				return "", nil
			}
			return key, posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	return &cfg, nil
}
