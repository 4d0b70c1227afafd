package config

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/danibachar/tuist/errors"
	"github.com/spf13/viper"
)

var (
	mu            sync.Mutex
	globalConfig  *Config
	viperInstance *viper.Viper
	// ConfigSources records which file each key was read from during the
	// last load. Keys never read from a file are absent.
	ConfigSources map[string]SourceInfo
)

// Load reads the configuration from the default sources. The result is
// cached until Reset.
func Load() (*Config, error) {
	mu.Lock()
	defer mu.Unlock()

	if globalConfig != nil {
		return globalConfig, nil
	}

	cfg, err := LoadWithViper(initViper())
	if err != nil {
		return nil, err
	}
	globalConfig = cfg
	return globalConfig, nil
}

// GetViper returns the Viper instance for advanced configuration access
func GetViper() *viper.Viper {
	mu.Lock()
	defer mu.Unlock()
	return initViper()
}

// LoadWithViper loads configuration using a provided Viper instance
func LoadWithViper(v *viper.Viper) (*Config, error) {
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	return &config, nil
}

// LoadFromFile loads configuration from a specific file path. Defaults
// apply; environment variables do not.
func LoadFromFile(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("toml")
	SetDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "failed to read config file %s", configPath)
	}

	config, err := LoadWithViper(v)
	if err != nil {
		return nil, errors.Wrapf(err, "config file %s", configPath)
	}
	return config, nil
}

// Reset clears the cached configuration (useful for testing)
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	globalConfig = nil
	viperInstance = nil
	ConfigSources = nil
}

// initViper initializes Viper with configuration sources and defaults.
// Callers hold mu.
func initViper() *viper.Viper {
	if viperInstance != nil {
		return viperInstance
	}

	workDir, _ := os.Getwd()
	homeDir, _ := os.UserHomeDir()
	v, sources := NewViper(workDir, homeDir)

	viperInstance = v
	ConfigSources = sources
	return v
}

// NewViper builds a Viper instance reading the user config under homeDir
// and the project config nearest to workDir. Either directory may be empty
// to skip that source. The returned map records the file each key came from.
func NewViper(workDir, homeDir string) (*viper.Viper, map[string]SourceInfo) {
	v := viper.New()

	// Set up environment variable binding
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	SetDefaults(v)

	sources := make(map[string]SourceInfo)
	for _, file := range configFiles(workDir, homeDir) {
		mergeConfigFile(v, file, sources)
	}
	return v, sources
}

type configFile struct {
	path   string
	source ConfigSource
}

// configFiles lists candidate files lowest precedence first.
func configFiles(workDir, homeDir string) []configFile {
	var files []configFile
	if homeDir != "" {
		files = append(files, configFile{filepath.Join(homeDir, UserConfigDirName, UserConfigFileName), SourceUser})
	}
	if workDir != "" {
		if project := findProjectConfig(workDir); project != "" {
			files = append(files, configFile{project, SourceProject})
		}
	}
	return files
}

// findProjectConfig searches for tuist.toml by walking up the directory tree
// Returns the path to the first config file found, or empty string if none found
func findProjectConfig(dir string) string {
	for {
		path := filepath.Join(dir, ProjectConfigFileName)
		if _, err := os.Stat(path); err == nil {
			return path
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root, stop searching
			return ""
		}
		dir = parent
	}
}

// mergeConfigFile merges file into v below environment variables. Missing
// or unreadable files are skipped.
func mergeConfigFile(v *viper.Viper, file configFile, sources map[string]SourceInfo) {
	if _, err := os.Stat(file.path); err != nil {
		return
	}

	tempViper := viper.New()
	tempViper.SetConfigFile(file.path)
	tempViper.SetConfigType("toml")
	if err := tempViper.ReadInConfig(); err != nil {
		return
	}

	if err := v.MergeConfigMap(tempViper.AllSettings()); err != nil {
		return
	}
	for _, key := range tempViper.AllKeys() {
		sources[key] = SourceInfo{Source: file.source, Path: file.path}
	}
}
