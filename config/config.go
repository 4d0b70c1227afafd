// Package config loads generator settings from TOML files and TUIST_*
// environment variables.
//
// Sources, lowest to highest precedence:
//
//	built-in defaults
//	~/.tuist/config.toml
//	tuist.toml in the working directory or the nearest parent
//	TUIST_* environment variables (TUIST_GENERATE_PARALLELISM, ...)
//
// Command-line flags are applied on top by the CLI.
package config

// Config represents the generator configuration
type Config struct {
	Generate GenerateConfig `mapstructure:"generate" toml:"generate"`
	Hashing  HashingConfig  `mapstructure:"hashing" toml:"hashing"`
	Log      LogConfig      `mapstructure:"log" toml:"log"`
}

// GenerateConfig configures project mapping
type GenerateConfig struct {
	Manifest         string `mapstructure:"manifest" toml:"manifest"`                   // manifest path, relative to the working directory
	Parallelism      int    `mapstructure:"parallelism" toml:"parallelism"`             // targets mapped at once (0 = one per CPU)
	DryRun           bool   `mapstructure:"dry_run" toml:"dry_run"`                     // print planned changes instead of writing
	DerivedDirectory string `mapstructure:"derived_directory" toml:"derived_directory"` // relative to the project path (default: Derived)
}

// HashingConfig selects the content digest recorded on generated sources
type HashingConfig struct {
	Algorithm string `mapstructure:"algorithm" toml:"algorithm"` // md5, sha256 or blake3 (default: md5)
}

// LogConfig configures logging
type LogConfig struct {
	JSON      bool `mapstructure:"json" toml:"json"`           // JSON lines instead of the console format
	Verbosity int  `mapstructure:"verbosity" toml:"verbosity"` // same scale as repeated -v flags
}

// File locations
const (
	EnvPrefix             = "TUIST"
	UserConfigDirName     = ".tuist"
	UserConfigFileName    = "config.toml"
	ProjectConfigFileName = "tuist.toml"
)

// File system constants
const (
	DefaultDirPermissions  = 0755 // Standard directory permissions (rwxr-xr-x)
	DefaultFilePermissions = 0644 // Standard file permissions (rw-r--r--)
)
