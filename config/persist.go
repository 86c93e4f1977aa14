package config

import (
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/declgen/declgen/errors"
)

// tomlConfig mirrors Config with toml tags for serialization.
// Viper owns reading; go-toml owns writing.
type tomlConfig struct {
	Generation tomlGeneration `toml:"generation"`
}

type tomlGeneration struct {
	Namespace         string   `toml:"namespace"`
	AdditionalImports []string `toml:"additional_imports"`
	Output            string   `toml:"output"`
}

// Marshal renders a Config as TOML.
func Marshal(c *Config) ([]byte, error) {
	out := tomlConfig{
		Generation: tomlGeneration{
			Namespace:         c.Generation.Namespace,
			AdditionalImports: c.Generation.AdditionalImports,
			Output:            c.Generation.Output,
		},
	}
	data, err := toml.Marshal(out)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal config")
	}
	return data, nil
}

// WriteDefault writes the built-in configuration to path. It refuses to
// overwrite an existing file.
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return errors.Newf("config file already exists: %s", path)
	}

	data, err := Marshal(Default())
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrapf(err, "failed to write config file %s", path)
	}
	return nil
}
