package service

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
	"github.com/soulgarden/yobit-pairs/dictionary"
	"github.com/soulgarden/yobit-pairs/storage"
)

const separatorWidth = 28

type layout struct {
	header string
	width  int

	vol, limit, asksVol, bidsVol, asksPrice, bidsPrice, last, buy, sell string
}

//nolint: gochecknoglobals
var layouts = map[string]layout{
	dictionary.LocaleEN: {
		header:    ">>>> TICKER: ",
		width:     14,
		vol:       "Vol: ",
		limit:     "Depth limit: ",
		asksVol:   "Vol of asks: ",
		bidsVol:   "Vol of bids: ",
		asksPrice: "Asks price: ",
		bidsPrice: "Bids price: ",
		last:      "Last: ",
		buy:       "Buy: ",
		sell:      "Sell: ",
	},
	dictionary.LocaleRU: {
		header:    ">>>> ТОРГОВАЯ ПАРА: ",
		width:     28,
		vol:       "Объём торгов: ",
		limit:     "Глубина стакана: ",
		asksVol:   "Ордера на продажу: ",
		bidsVol:   "Ордера на покупку: ",
		asksPrice: "Цена на продажу по лимиту: ",
		bidsPrice: "Цена на покупку по лимиту: ",
		last:      "Цена последней сделки: ",
		buy:       "Цена покупки: ",
		sell:      "Цена продажи: ",
	},
}

// Printer writes pair lists and pair details as aligned text in one locale.
type Printer struct {
	out    io.Writer
	layout layout
	header lipgloss.Style
}

func NewPrinter(locale string, out io.Writer) (*Printer, error) {
	l, ok := layouts[locale]
	if !ok {
		return nil, fmt.Errorf("%w: %s", dictionary.ErrInvalidLocale, locale)
	}

	return &Printer{
		out:    out,
		layout: l,
		header: lipgloss.NewRenderer(out).NewStyle().Bold(true),
	}, nil
}

func (p *Printer) Separator() {
	fmt.Fprintln(p.out, strings.Repeat("=", separatorWidth))
}

func (p *Printer) PrintPairs(pairs []string) {
	if len(pairs) == 0 {
		fmt.Fprintln(p.out, ">> There are no tickers <<")

		return
	}

	fmt.Fprintln(p.out, p.header.Render(">>> The list of tickers  <<<"))

	for i, symbol := range pairs {
		fmt.Fprintf(p.out, "%d - %s\n", i+1, symbol)
	}

	fmt.Fprintln(p.out, "The end of the tickers list.")
	p.Separator()
}

func (p *Printer) PrintDetail(d *storage.PairDetail) {
	l := p.layout

	fmt.Fprintln(p.out, p.header.Render(l.header+d.Symbol))

	p.row(l.vol, fixed(d.Vol))
	p.row(l.limit, fmt.Sprint(d.Limit))
	p.row(l.asksVol, fixed(d.AsksVol))
	p.row(l.bidsVol, fixed(d.BidsVol))
	p.row(l.asksPrice, fixed(d.AsksPrice))
	p.row(l.bidsPrice, fixed(d.BidsPrice))
	p.row(l.last, fixed(d.Last))
	p.row(l.buy, fixed(d.Buy))
	p.row(l.sell, fixed(d.Sell))

	p.Separator()
}

func (p *Printer) row(label, value string) {
	fmt.Fprintf(p.out, "%-*s%s\n", p.layout.width, label, value)
}

func fixed(d decimal.Decimal) string {
	return d.StringFixed(dictionary.DisplayPrecision)
}
