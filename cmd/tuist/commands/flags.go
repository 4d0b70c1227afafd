package commands

import (
	"github.com/danibachar/tuist/config"
	"github.com/danibachar/tuist/errors"
	"github.com/spf13/cobra"
)

// commandConfig returns the loaded configuration with the generate flags
// of cmd applied on top. Flags left at their defaults do not override.
func commandConfig(cmd *cobra.Command) (*config.Config, error) {
	loaded, err := config.Load()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load config")
	}
	cfg := *loaded

	flags := cmd.Flags()
	if flags.Changed("manifest") {
		cfg.Generate.Manifest, _ = flags.GetString("manifest")
	}
	if flags.Changed("parallelism") {
		cfg.Generate.Parallelism, _ = flags.GetInt("parallelism")
	}
	if flags.Changed("dry-run") {
		cfg.Generate.DryRun, _ = flags.GetBool("dry-run")
	}
	if flags.Changed("hasher") {
		cfg.Hashing.Algorithm, _ = flags.GetString("hasher")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// addManifestFlags registers the flags shared by generate and check.
func addManifestFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("manifest", "m", "", "Project manifest (default from config: project.yaml)")
	cmd.Flags().Int("parallelism", 0, "Targets mapped at once (0 = one per CPU)")
	cmd.Flags().String("hasher", "", "Content hash algorithm: md5, sha256, blake3")
}
