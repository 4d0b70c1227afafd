package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/danibachar/tuist/config"
	"github.com/danibachar/tuist/errors"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// ConfigCmd represents the config command
var ConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or initialize configuration",
	Long: `Show or initialize the generator configuration.

Configuration sources (in order of precedence):
1. Command line flags
2. Environment variables (TUIST_* prefix)
3. Project config (tuist.toml in the working directory or a parent)
4. User config (~/.tuist/config.toml)
5. Default values

Examples:
  tuist config show           # Show effective settings and their sources
  tuist config show --json    # Same, as JSON
  tuist config init           # Write ./tuist.toml with the defaults
  tuist config init --user    # Write ~/.tuist/config.toml instead`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	Long:  "Display every effective setting with the source it was read from",
	RunE:  runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a configuration file with the defaults",
	Long:  "Write the default configuration to ./tuist.toml, or to ~/.tuist/config.toml with --user",
	RunE:  runConfigInit,
}

func init() {
	configInitCmd.Flags().Bool("user", false, "Write the user config instead of the project config")
	configInitCmd.Flags().Bool("force", false, "Overwrite an existing file (a backup is kept)")

	ConfigCmd.AddCommand(configShowCmd)
	ConfigCmd.AddCommand(configInitCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	settings := config.DescribeActive()

	if jsonOutput {
		data, err := json.MarshalIndent(settings, "", "  ")
		if err != nil {
			return errors.Wrap(err, "failed to marshal config to JSON")
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	rows := pterm.TableData{{"Key", "Value", "Source", "From"}}
	for _, s := range settings {
		rows = append(rows, []string{s.Key, fmt.Sprint(s.Value), string(s.Source), s.SourcePath})
	}
	return pterm.DefaultTable.WithHasHeader().WithWriter(cmd.OutOrStdout()).WithData(rows).Render()
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	user, _ := cmd.Flags().GetBool("user")
	force, _ := cmd.Flags().GetBool("force")

	path, err := initPath(user)
	if err != nil {
		return err
	}
	if _, err := os.Stat(path); err == nil && !force {
		return errors.WithHint(
			errors.Newf("%s already exists", path),
			"pass --force to overwrite it",
		)
	}

	if err := config.Save(path, config.Default()); err != nil {
		return err
	}
	pterm.Success.WithWriter(cmd.OutOrStdout()).Printfln("Wrote %s", path)
	return nil
}

func initPath(user bool) (string, error) {
	if user {
		return config.UserConfigPath()
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", errors.Wrap(err, "could not determine working directory")
	}
	return filepath.Join(wd, config.ProjectConfigFileName), nil
}
