package menu

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
	"github.com/soulgarden/yobit-pairs/conf"
	"github.com/soulgarden/yobit-pairs/dictionary"
	"github.com/soulgarden/yobit-pairs/service"
	"github.com/soulgarden/yobit-pairs/storage"
)

// Menu is the interactive loop: it reads one-character commands and
// dispatches them against the session.
type Menu struct {
	cfg      *conf.App
	session  *storage.Session
	pairs    *service.Pairs
	detail   *service.Detail
	printer  *service.Printer
	prompter *Prompter
	out      io.Writer
	title    lipgloss.Style
	logger   *zerolog.Logger
}

func New(
	cfg *conf.App,
	session *storage.Session,
	pairs *service.Pairs,
	detail *service.Detail,
	printer *service.Printer,
	in io.Reader,
	out io.Writer,
	logger *zerolog.Logger,
) *Menu {
	return &Menu{
		cfg:      cfg,
		session:  session,
		pairs:    pairs,
		detail:   detail,
		printer:  printer,
		prompter: NewPrompter(in, out),
		out:      out,
		title:    lipgloss.NewRenderer(out).NewStyle().Bold(true),
		logger:   logger,
	}
}

// Run serves commands until q or the end of input. A non-nil error means a
// fetch failed and the process has to terminate with the matching exit code.
func (m *Menu) Run(ctx context.Context) error {
	m.logger.Debug().Str("session_id", m.session.ID).Msg("menu started")

	for {
		cmd, err := m.command()
		if errors.Is(err, io.EOF) {
			m.farewell()

			return nil
		}

		if err != nil {
			return err
		}

		switch cmd {
		case dictionary.CmdView:
			m.printer.PrintPairs(m.session.Pairs.List())
		case dictionary.CmdUpdate:
			err = m.update(ctx)
		case dictionary.CmdTicker:
			err = m.ticker(ctx)
		case dictionary.CmdRepeat:
			err = m.repeat(ctx)
		case dictionary.CmdExit:
			m.farewell()

			return nil
		}

		if errors.Is(err, io.EOF) {
			m.farewell()

			return nil
		}

		if err != nil {
			if !m.cfg.RecoverFetchErrors {
				return err
			}

			m.logger.Err(err).Str("command", string(cmd)).Msg("command failed")
			m.printer.Separator()
		}
	}
}

func (m *Menu) command() (rune, error) {
	return Until(func() (rune, bool, error) {
		r, ok, err := m.prompter.Char(m.menuText())
		if err != nil {
			return 0, false, err
		}

		m.printer.Separator()

		return r, ok, nil
	}, isCommand)
}

func isCommand(r rune) bool {
	switch r {
	case dictionary.CmdView, dictionary.CmdUpdate, dictionary.CmdTicker, dictionary.CmdRepeat, dictionary.CmdExit:
		return true
	default:
		return false
	}
}

func (m *Menu) menuText() string {
	var b strings.Builder

	b.WriteString(m.title.Render(strings.Repeat(">", 11)+" Menu "+strings.Repeat("<", 11)) + "\n")

	for _, item := range []struct {
		label string
		cmd   rune
	}{
		{"View pairs", dictionary.CmdView},
		{"Update pairs", dictionary.CmdUpdate},
		{"Select ticker", dictionary.CmdTicker},
		{"Repeat ticker", dictionary.CmdRepeat},
		{"Exit", dictionary.CmdExit},
	} {
		fmt.Fprintf(&b, "%-14s - %c\n", item.label, item.cmd)
	}

	b.WriteString("Select the menu item: ")

	return b.String()
}

func (m *Menu) update(ctx context.Context) error {
	fmt.Fprintln(m.out, "Pairs are updating...")

	if err := m.pairs.Refresh(ctx); err != nil {
		return err
	}

	fmt.Fprintln(m.out, "Completed")
	m.printer.Separator()

	return nil
}

func (m *Menu) ticker(ctx context.Context) error {
	registry := m.session.Pairs

	if registry.Len() == 0 {
		m.logger.Err(dictionary.ErrNoPairs).Msg("There are no trading pairs!")
		m.printer.Separator()

		return nil
	}

	ordinal, err := m.prompter.IntUntil("Enter a number of ticker: ", registry.InRange)
	if err != nil {
		return err
	}

	symbol, _ := registry.Resolve(ordinal)

	fmt.Fprintf(m.out, "You chose %s.\n", symbol)

	limit, err := m.prompter.IntUntil(
		fmt.Sprintf("Enter the limit of the depth (%d - %d): ", dictionary.MinDepthLimit, dictionary.MaxDepthLimit),
		service.ValidLimit,
	)
	if err != nil {
		return err
	}

	m.printer.Separator()

	m.session.SetLastQuery(symbol, limit)

	return m.show(ctx, symbol, limit)
}

// repeat re-runs the last ticker query without checking the symbol against
// the current registry.
func (m *Menu) repeat(ctx context.Context) error {
	q, ok := m.session.LastQuery()
	if !ok {
		fmt.Fprintln(m.out, "There is no previous ticker.")
		m.printer.Separator()

		return nil
	}

	return m.show(ctx, q.Symbol, q.Limit)
}

func (m *Menu) show(ctx context.Context, symbol string, limit int) error {
	fmt.Fprintln(m.out, "Processing...")

	d, err := m.detail.Fetch(ctx, symbol, limit)
	if err != nil {
		return err
	}

	m.printer.PrintDetail(d)

	return nil
}

func (m *Menu) farewell() {
	fmt.Fprintln(m.out, "The application has completed its task and will close now.")
}
