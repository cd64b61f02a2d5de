package cli

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/w-029/DP-TemplatePattern/pkg/beverage"
)

func (a *app) newMenuCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "List the beverages that can be brewed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)

			err := enc.Encode(beverage.Menu())
			if err != nil {
				return errors.Wrap(err, "unable to encode menu")
			}

			return enc.Close()
		},
	}
}
