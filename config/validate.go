package config

import (
	"path/filepath"
	"slices"
	"strings"

	"github.com/danibachar/tuist/errors"
	"github.com/danibachar/tuist/hashing"
)

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	// Parallelism: 0 = one per CPU, negative = invalid
	if c.Generate.Parallelism < 0 {
		return errors.Newf("generate.parallelism must be >= 0, got %d", c.Generate.Parallelism)
	}

	if c.Generate.Manifest == "" {
		return errors.New("generate.manifest cannot be empty")
	}

	// Derived directory must stay inside the project
	dir := c.Generate.DerivedDirectory
	if dir == "" {
		return errors.New("generate.derived_directory cannot be empty")
	}
	if filepath.IsAbs(dir) || slices.Contains(strings.Split(filepath.ToSlash(dir), "/"), "..") {
		return errors.WithHint(
			errors.Newf("generate.derived_directory must be relative to the project, got %q", dir),
			"use a path such as \"Derived\"",
		)
	}

	if _, err := hashing.New(c.Hashing.Algorithm); err != nil {
		return errors.Wrap(err, "hashing.algorithm")
	}

	if c.Log.Verbosity < 0 {
		return errors.Newf("log.verbosity must be >= 0, got %d", c.Log.Verbosity)
	}

	return nil
}
