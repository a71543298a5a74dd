package cmd

import (
	"github.com/soulgarden/yobit-pairs/conf"
	"github.com/spf13/cobra"
)

//nolint: gochecknoglobals
var pairsCmd = &cobra.Command{
	Use:   "pairs",
	Short: "Print the numbered list of tradable pairs and exit",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := conf.New()
		logger := newLogger(cfg)

		a, err := newApp(cfg, cmd.OutOrStdout(), &logger)
		if err != nil {
			return err
		}

		if err := a.pairs.Refresh(cmd.Context()); err != nil {
			return err
		}

		a.printer.PrintPairs(a.session.Pairs.List())

		return nil
	},
}
