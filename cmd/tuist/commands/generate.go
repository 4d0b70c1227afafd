package commands

import (
	"context"
	"io"

	"github.com/danibachar/tuist/config"
	"github.com/danibachar/tuist/logger"
	"github.com/pterm/pterm"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// GenerateCmd represents the generate command
var GenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate resource bundles and bundle accessors",
	Long: `Map a project manifest and write the generated bundle accessors.

Targets whose product cannot embed resources get a companion bundle
target; targets reading resources through a bundle get Swift and, for
Objective-C sources, Objective-C accessors under Derived/Sources.

Examples:
  tuist generate                       # Map ./project.yaml
  tuist generate -m App/project.yaml   # Map another manifest
  tuist generate --dry-run -vv         # Show planned changes with diffs
  tuist generate --watch               # Regenerate on manifest changes`,
	RunE: runGenerate,
}

func init() {
	addManifestFlags(GenerateCmd)
	GenerateCmd.Flags().Bool("dry-run", false, "Print planned changes instead of writing them")
	GenerateCmd.Flags().Bool("watch", false, "Regenerate whenever the manifest changes")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := commandConfig(cmd)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	fs := afero.NewOsFs()
	if err := generate(ctx, cmd.OutOrStdout(), fs, cfg); err != nil {
		return err
	}

	watch, _ := cmd.Flags().GetBool("watch")
	if !watch {
		return nil
	}
	return watchManifest(ctx, cmd.OutOrStdout(), cmd.ErrOrStderr(), fs, cfg)
}

// watchManifest regenerates after every settled manifest change until ctx
// is done. Generation failures are printed and do not stop the watch.
func watchManifest(ctx context.Context, out, errOut io.Writer, fs afero.Fs, cfg *config.Config) error {
	log := logger.LoggerFromContext(ctx, logger.ComponentLogger("cli.watch"))

	w, err := config.Watch(ctx, func(path string) error {
		log.Infow("Manifest changed, regenerating", logger.FieldPath, path)
		if err := generate(ctx, out, fs, cfg); err != nil {
			PrintError(errOut, err)
		}
		return nil
	}, cfg.Generate.Manifest)
	if err != nil {
		return err
	}
	defer w.Stop()

	pterm.Info.WithWriter(out).Printfln("Watching %s for changes (Ctrl+C to stop)", cfg.Generate.Manifest)
	<-ctx.Done()
	return nil
}
