// Package commands implements the tuist subcommands.
package commands

import (
	"context"
	"io"

	"github.com/danibachar/tuist/config"
	"github.com/danibachar/tuist/errors"
	"github.com/danibachar/tuist/logger"
	"github.com/google/uuid"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var (
	// verbosity is the effective -v count after Setup
	verbosity int
	// jsonOutput selects JSON logs and machine-readable command output
	jsonOutput bool
)

// AddGlobalFlags registers the flags every subcommand inherits.
func AddGlobalFlags(root *cobra.Command) {
	root.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv, -vvv)")
	root.PersistentFlags().Bool("json", false, "Emit JSON logs and JSON command output")
}

// Setup initializes the global logger from flags and configuration and tags
// the command context with a fresh run ID.
func Setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}

	flagVerbosity, _ := cmd.Flags().GetCount("verbose")
	flagJSON, _ := cmd.Flags().GetBool("json")
	verbosity = max(flagVerbosity, cfg.Log.Verbosity)
	jsonOutput = flagJSON || cfg.Log.JSON

	if err := logger.Initialize(jsonOutput, verbosity); err != nil {
		return errors.Wrap(err, "failed to initialize logger")
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	runID := uuid.NewString()
	cmd.SetContext(logger.WithComponent(logger.WithRunID(ctx, runID), "cli."+cmd.Name()))
	logger.Logger.Debugw("Starting command", logger.FieldRunID, runID, logger.FieldOperation, cmd.CommandPath())
	return nil
}

// PrintError writes err and any hints attached to it.
func PrintError(w io.Writer, err error) {
	pterm.Error.WithWriter(w).Println(err.Error())
	if hints := errors.FlattenHints(err); hints != "" {
		pterm.Info.WithWriter(w).Println(hints)
	}
	if verbosity >= logger.VerbosityDebug {
		if details := errors.FlattenDetails(err); details != "" {
			pterm.Fprintln(w, details)
		}
	}
}
