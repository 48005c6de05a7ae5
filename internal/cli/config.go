package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	configPathOnly  bool
	dataDirPathOnly bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration tintctl runs with, after defaults and TINTCTL_*
environment variables are applied.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		w := cmd.OutOrStdout()

		switch {
		case configPathOnly:
			_, _ = fmt.Fprintln(w, a.paths.ConfigFile)
			return nil
		case dataDirPathOnly:
			_, _ = fmt.Fprintln(w, a.paths.DataDir)
			return nil
		case jsonOutput:
			return outputJSON(w, a.engine.Config())
		}

		data, err := a.engine.Config().YAML()
		if err != nil {
			return err
		}
		_, _ = w.Write(data)
		return nil
	},
}

func init() {
	configCmd.Flags().BoolVar(&configPathOnly, "config-path", false, "Print only the config file path")
	configCmd.Flags().BoolVar(&dataDirPathOnly, "data-dir-path", false, "Print only the data directory path")
	configCmd.MarkFlagsMutuallyExclusive("config-path", "data-dir-path")
}
