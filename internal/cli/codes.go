package cli

import (
	"github.com/jstrait/fileinspector"
	"github.com/spf13/cobra"
)

func newCodesCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "codes",
		Short: "List the supported format codes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := f.settings(cmd.Flags())
			if err != nil {
				return err
			}
			// The catalog reads best as a table unless asked otherwise.
			if !cmd.Flags().Changed("output") {
				cfg.Output = string(fileinspector.Table)
			}
			format, err := fileinspector.ParseFormat(cfg.Output)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			opts, err := f.writeOptions(cfg, out)
			if err != nil {
				return err
			}
			return fileinspector.Write(out, format, fileinspector.NewCatalog(), opts...)
		},
	}
}
