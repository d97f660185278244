package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/yuriiter/bikeshare/pkg/sources"
)

func newCitiesCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "cities",
		Short: "List the cities that can be explored and where their data comes from",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveConfig(cmd, opts)
			if err != nil {
				return err
			}
			src := sources.New(&cfg)
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			for _, name := range cfg.CityNames() {
				location, err := src.Location(name)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(tw, "%s\t%s\n", name, location)
			}
			return tw.Flush()
		},
	}
}
