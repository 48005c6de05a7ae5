package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/tintctl/internal/engine"
)

var applyCmd = &cobra.Command{
	Use:   "apply <SCHEME_NAME>",
	Short: "Apply a scheme to every configured item",
	Long: `Apply a scheme, e.g. "tintctl apply base16-oceanicnext".

Each configured item's theme file for the scheme is copied into the data
directory and the item's hook runs with %f replaced by that file. Global hooks
run afterwards. The combined output of all hooks is printed, and the scheme is
recorded as current.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		result, err := a.engine.Apply(cmd.Context(), &engine.ApplyRequest{Scheme: args[0]})

		if jsonOutput {
			if jsonErr := outputJSON(cmd.OutOrStdout(), result); jsonErr != nil {
				return jsonErr
			}
			return err
		}

		if result != nil {
			_, _ = fmt.Fprint(cmd.ErrOrStderr(), result.Stderr)
			_, _ = fmt.Fprint(cmd.OutOrStdout(), result.Output)
		}
		return err
	},
}
