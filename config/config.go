// Package config holds the declgen run configuration and its loading rules.
//
// Configuration is read-only input scoped to one generation run. It merges,
// in precedence order: built-in defaults, a project declgen.toml found by
// walking up from the working directory, an explicit --config file, and
// DECLGEN_* environment variables.
package config

// Config is the root declgen configuration.
type Config struct {
	Generation Generation `mapstructure:"generation"`
}

// Generation configures one translation run of the file generator.
type Generation struct {
	// Namespace is the optional root namespace identifier. When set, every
	// generated file name is prefixed with it and an extra anchor file is
	// emitted first.
	Namespace string `mapstructure:"namespace"`

	// AdditionalImports are appended after the built-in import list, order
	// preserved. Duplicates are kept as written.
	AdditionalImports []string `mapstructure:"additional_imports"`

	// Output is where the generate command writes the file manifest.
	// Empty means stdout.
	Output string `mapstructure:"output"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{}
}
