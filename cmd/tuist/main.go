package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/danibachar/tuist/cmd/tuist/commands"
	"github.com/danibachar/tuist/logger"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tuist",
	Short: "Generate resource bundles and bundle accessors",
	Long: `tuist - Resource bundles and bundle accessors for Xcode projects.

Reads a project manifest, moves the resources of targets that cannot
embed them into companion bundle targets and generates the Swift and
Objective-C accessors that locate those bundles at runtime.

Available commands:
  generate - Map a manifest and write generated accessors
  check    - Fail when generated accessors on disk are stale
  config   - Show or initialize configuration
  version  - Show version information

Examples:
  tuist generate                  # Map ./project.yaml and write accessors
  tuist generate --dry-run -vv    # Show what would change, with diffs
  tuist generate --watch          # Regenerate when the manifest changes
  tuist check                     # Exit non-zero when accessors are stale
  tuist config show               # Show effective configuration`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: commands.Setup,
}

func init() {
	commands.AddGlobalFlags(rootCmd)

	rootCmd.AddCommand(commands.GenerateCmd)
	rootCmd.AddCommand(commands.CheckCmd)
	rootCmd.AddCommand(commands.ConfigCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	logger.Cleanup()

	if err != nil {
		commands.PrintError(os.Stderr, err)
		os.Exit(1)
	}
}
