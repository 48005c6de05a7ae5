package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List installed schemes",
	Long:  `Print every installed scheme identifier, one per line, sorted by name.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}

		if err := a.schemes.CheckInstalled(); err != nil {
			return err
		}

		if jsonOutput {
			ids := make([]string, 0, a.schemes.Len())
			for id := range a.schemes.List() {
				ids = append(ids, id.String())
			}
			return outputJSON(cmd.OutOrStdout(), ids)
		}

		for id := range a.schemes.List() {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), id)
		}
		return nil
	},
}
