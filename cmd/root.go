package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/soulgarden/yobit-pairs/client"
	"github.com/soulgarden/yobit-pairs/conf"
	"github.com/soulgarden/yobit-pairs/dictionary"
	"github.com/soulgarden/yobit-pairs/menu"
	"github.com/soulgarden/yobit-pairs/service"
	"github.com/soulgarden/yobit-pairs/storage"
	"github.com/spf13/cobra"
)

//nolint: gochecknoglobals
var rootCmd = &cobra.Command{
	Use:           "yobit-pairs",
	Short:         "Interactive client for the YObit public API",
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := conf.New()
		logger := newLogger(cfg)

		fmt.Fprintln(cmd.OutOrStdout(), "The application is loading...")

		a, err := newApp(cfg, cmd.OutOrStdout(), &logger)
		if err != nil {
			return err
		}

		if err := a.pairs.Refresh(cmd.Context()); err != nil {
			return err
		}

		return menu.New(cfg, a.session, a.pairs, a.detail, a.printer, cmd.InOrStdin(), cmd.OutOrStdout(), &logger).
			Run(cmd.Context())
	},
}

func Execute() {
	rootCmd.AddCommand(pairsCmd)
	rootCmd.AddCommand(tickerCmd)

	if err := rootCmd.Execute(); err != nil {
		code := dictionary.ExitCode(err)

		log.Err(err).Int("exit_code", code).Msg("command execution failed")
		os.Exit(code)
	}
}

type app struct {
	session *storage.Session
	pairs   *service.Pairs
	detail  *service.Detail
	printer *service.Printer
}

func newApp(cfg *conf.App, out io.Writer, logger *zerolog.Logger) (*app, error) {
	cli, err := client.New(cfg, logger)
	if err != nil {
		return nil, err
	}

	printer, err := service.NewPrinter(cfg.Locale, out)
	if err != nil {
		return nil, err
	}

	registry := storage.NewPairs()

	return &app{
		session: storage.NewSession(registry),
		pairs:   service.NewPairs(cli, registry, logger),
		detail:  service.NewDetail(cli, logger),
		printer: printer,
	}, nil
}

func newLogger(cfg *conf.App) zerolog.Logger {
	defaultLogLevel := zerolog.InfoLevel
	if cfg.Debug {
		defaultLogLevel = zerolog.DebugLevel
	}

	ctx := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(defaultLogLevel).With().Timestamp()
	if cfg.Debug {
		ctx = ctx.Caller()
	}

	logger := ctx.Logger()
	log.Logger = logger

	return logger
}
