package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/tintctl/internal/engine"
	"github.com/danieljhkim/tintctl/internal/scheme"
)

var infoCmd = &cobra.Command{
	Use:   "info [SCHEME_NAME]",
	Short: "Show a scheme's metadata and palette",
	Long: `Show the name, author, variant and palette of a scheme.
Without an argument the current scheme is shown.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}

		var id scheme.ID
		if len(args) == 1 {
			if id, err = scheme.ParseID(args[0]); err != nil {
				return err
			}
		} else {
			var ok bool
			id, ok, err = a.engine.Current()
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("%w: pass a scheme name or apply one first", engine.ErrNoCurrentScheme)
			}
		}

		meta, err := a.schemes.LoadMeta(id)
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(cmd.OutOrStdout(), meta)
		}

		w := cmd.OutOrStdout()
		PrintSection(w, id.String())
		PrintLabelValue(w, "Name", meta.Name)
		if meta.Author != "" {
			PrintLabelValue(w, "Author", meta.Author)
		}
		if meta.Variant != "" {
			PrintLabelValue(w, "Variant", meta.Variant)
		}
		PrintLabelValue(w, "Palette", PrintCount(len(meta.Palette), "color", "colors"))

		for _, key := range meta.Keys() {
			hex := meta.Palette[key]
			r, g, b, err := scheme.RGB(hex)
			if err != nil {
				return err
			}
			PrintSwatch(w, key, hex, r, g, b)
		}
		return nil
	},
}
