package config

import (
	"fmt"

	"github.com/danibachar/tuist/graph"
	"github.com/danibachar/tuist/hashing"
	"github.com/spf13/viper"
)

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	// Generate defaults
	v.SetDefault("generate.manifest", graph.ManifestFileName)
	v.SetDefault("generate.parallelism", 0) // one worker per CPU
	v.SetDefault("generate.dry_run", false)
	v.SetDefault("generate.derived_directory", graph.DerivedDirectoryName)

	// Hashing defaults
	v.SetDefault("hashing.algorithm", hashing.DefaultAlgorithm)

	// Log defaults
	v.SetDefault("log.json", false)
	v.SetDefault("log.verbosity", 0)
}

// Default returns the configuration with only defaults applied.
func Default() *Config {
	v := viper.New()
	SetDefaults(v)
	cfg, err := LoadWithViper(v)
	if err != nil {
		// Defaults always decode.
		panic(err)
	}
	return cfg
}

// String returns a string representation of the config
func (c *Config) String() string {
	return fmt.Sprintf("Config{Generate: {Manifest: %s, Parallelism: %d, DryRun: %t, DerivedDirectory: %s}, Hashing: {Algorithm: %s}}",
		c.Generate.Manifest, c.Generate.Parallelism, c.Generate.DryRun, c.Generate.DerivedDirectory, c.Hashing.Algorithm)
}
