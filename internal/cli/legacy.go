package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/tintctl/internal/engine"
)

var setCmd = &cobra.Command{
	Use:   "set <THEME_NAME>",
	Short: "Set a base16-shell theme",
	Long: `Copy the base16-shell script for a theme next to the config file, record
the theme name and source the script. The "base16-" prefix is optional.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}

		result, err := a.engine.SetLegacy(cmd.Context(), &engine.SetRequest{Name: args[0]})
		if err != nil {
			return err
		}
		return printLegacy(cmd, result)
	},
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Load the base16-shell theme chosen with set",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}

		result, err := a.engine.InitLegacy(cmd.Context())
		if err != nil {
			return err
		}
		return printLegacy(cmd, result)
	},
}

func printLegacy(cmd *cobra.Command, result *engine.LegacyResult) error {
	if jsonOutput {
		return outputJSON(cmd.OutOrStdout(), result)
	}
	_, _ = fmt.Fprint(cmd.ErrOrStderr(), result.Stderr)
	if result.Output != "" {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), result.Output)
	}
	return nil
}
