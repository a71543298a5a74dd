package cmd

import (
	"fmt"

	"github.com/soulgarden/yobit-pairs/conf"
	"github.com/soulgarden/yobit-pairs/dictionary"
	"github.com/soulgarden/yobit-pairs/service"
	"github.com/spf13/cobra"
)

//nolint: gochecknoglobals
var tickerLimit int

//nolint: gochecknoglobals
var tickerCmd = &cobra.Command{
	Use:   "ticker <pair>",
	Short: "Print volume, ask/bid and price statistics of one pair and exit",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		symbol := args[0]

		if !service.ValidLimit(tickerLimit) {
			return fmt.Errorf(
				"%w: %d not in [%d, %d]",
				dictionary.ErrInvalidLimit, tickerLimit, dictionary.MinDepthLimit, dictionary.MaxDepthLimit,
			)
		}

		cfg := conf.New()
		logger := newLogger(cfg)

		a, err := newApp(cfg, cmd.OutOrStdout(), &logger)
		if err != nil {
			return err
		}

		if err := a.pairs.Refresh(cmd.Context()); err != nil {
			return err
		}

		if !a.session.Pairs.Contains(symbol) {
			logger.Err(dictionary.ErrUnknownPair).Str("pair", symbol).Msg(dictionary.ErrUnknownPair.Error())

			return fmt.Errorf("%w: %s", dictionary.ErrUnknownPair, symbol)
		}

		d, err := a.detail.Fetch(cmd.Context(), symbol, tickerLimit)
		if err != nil {
			return err
		}

		a.printer.PrintDetail(d)

		return nil
	},
}

//nolint: gochecknoinits
func init() {
	tickerCmd.Flags().IntVar(&tickerLimit, "limit", dictionary.MinDepthLimit, "order book depth (150 - 2000)")
}
