package commands

import (
	"context"
	"io"

	"github.com/danibachar/tuist/config"
	"github.com/danibachar/tuist/errors"
	"github.com/danibachar/tuist/sideeffect"
	"github.com/pterm/pterm"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// CheckCmd represents the check command
var CheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Check that generated accessors are up to date",
	Long: `Map the manifest without writing anything and compare the result with
the files on disk. Prints a unified diff for every stale file and exits
non-zero when any file differs. Use it in CI next to "tuist generate".

Examples:
  tuist check                        # Check ./project.yaml
  tuist check -m App/project.yaml    # Check another manifest`,
	RunE: runCheck,
}

func init() {
	addManifestFlags(CheckCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := commandConfig(cmd)
	if err != nil {
		return err
	}
	return check(cmd.Context(), cmd.OutOrStdout(), afero.NewOsFs(), cfg)
}

func check(ctx context.Context, w io.Writer, fs afero.Fs, cfg *config.Config) error {
	_, effects, err := mapManifest(ctx, cfg)
	if err != nil {
		return err
	}

	changes, err := sideeffect.Plan(fs, effects)
	if err != nil {
		return err
	}
	stale := sideeffect.Pending(changes)
	if len(stale) == 0 {
		pterm.Success.WithWriter(w).Println("Generated files are up to date")
		return nil
	}

	for _, c := range stale {
		diff, err := sideeffect.Diff(c)
		if err != nil {
			return err
		}
		if diff == "" {
			pterm.Fprintln(w, string(c.Action)+" "+c.Descriptor.Path())
			continue
		}
		pterm.Fprint(w, diff)
	}

	return errors.WithHintf(
		errors.Wrapf(errors.ErrOutOfDate, "%d generated file(s) differ", len(stale)),
		"run: tuist generate -m %s", cfg.Generate.Manifest,
	)
}
