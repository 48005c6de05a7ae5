package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/tintctl/internal/engine"
)

var currentCmd = &cobra.Command{
	Use:   "current",
	Short: "Print the currently applied scheme",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}

		id, ok, err := a.engine.Current()
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: run `%s apply <SCHEME_NAME>` first", engine.ErrNoCurrentScheme, cmd.Root().Name())
		}

		if jsonOutput {
			return outputJSON(cmd.OutOrStdout(), map[string]string{
				"scheme": id.String(),
				"system": string(id.System),
				"name":   id.Name,
			})
		}
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), id)
		return nil
	},
}
