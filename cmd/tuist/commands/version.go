package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/danibachar/tuist/errors"
	"github.com/danibachar/tuist/version"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// VersionCmd represents the version command
var VersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show tuist version information",
	Long: `Display version, build time, commit hash, and platform information.

With --resolve, also report the version pinned for the working directory
by the nearest .tuist-version file or .tuist-bin directory.`,
	RunE: runVersion,
}

func init() {
	VersionCmd.Flags().Bool("resolve", false, "Report the version pinned for the working directory")
}

type versionOutput struct {
	version.Info
	Pinned     string `json:"pinned,omitempty"`
	PinnedFrom string `json:"pinned_from,omitempty"`
}

func runVersion(cmd *cobra.Command, args []string) error {
	out := versionOutput{Info: version.Get()}

	resolve, _ := cmd.Flags().GetBool("resolve")
	var pin version.Resolved
	if resolve {
		wd, err := os.Getwd()
		if err != nil {
			return errors.Wrap(err, "could not determine working directory")
		}
		if pin, err = version.Resolve(wd); err != nil {
			return err
		}
		out.PinnedFrom = pin.Path
		if pin.Version != nil {
			out.Pinned = pin.Version.String()
		}
	}

	w := cmd.OutOrStdout()
	if jsonOutput {
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return errors.Wrap(err, "failed to marshal version to JSON")
		}
		fmt.Fprintln(w, string(data))
		return nil
	}

	fmt.Fprintln(w, out.Info.String())
	fmt.Fprintf(w, "Platform: %s\n", out.Platform)
	fmt.Fprintf(w, "Go: %s\n", out.GoVersion)
	if !resolve {
		return nil
	}

	switch pin.Kind {
	case version.ResolvedBin:
		fmt.Fprintf(w, "Pinned: bundled binary at %s\n", pin.Path)
	case version.ResolvedVersionFile:
		fmt.Fprintf(w, "Pinned: %s (%s)\n", out.Pinned, pin.Path)
		if !out.Info.Satisfies(pin.Version) {
			pterm.Warning.WithWriter(w).Printfln("running %s but %s pins %s", out.Version, pin.Path, out.Pinned)
		}
	default:
		fmt.Fprintln(w, "Pinned: none")
	}
	return nil
}
