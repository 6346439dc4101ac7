package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/appkit-labs/appkit/internal/manifest"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(checkCmd)
}

var checkCmd = &cobra.Command{
	Use:   "check [dir]",
	Short: "Validate a workspace's package.json",
	Long: `Validate the package.json in dir (default: current directory) against the
fields appkit writes: name, scripts, dependencies, devDependencies, prettier.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := "."
		if len(args) == 1 {
			dir = args[0]
		}
		return runCheck(cmd.OutOrStdout(), dir)
	},
}

func runCheck(out io.Writer, dir string) error {
	path := filepath.Join(dir, manifest.FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	result, err := manifest.Validate(data)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	if result.Valid {
		fmt.Fprintf(out, "%s %s\n", color.GreenString("OK"), path)
		return nil
	}

	fmt.Fprintf(out, "%s %s\n", color.YellowString("Invalid"), path)
	for _, issue := range result.Issues {
		msg := issue.Message
		if issue.Path != "" {
			msg = issue.Path + ": " + msg
		}
		fmt.Fprintf(out, "  - %s\n", msg)
	}
	return fmt.Errorf("%s has %d issue(s)", path, len(result.Issues))
}
