package response

import (
	"github.com/mailru/easyjson/jlexer"
	"github.com/shopspring/decimal"
)

const (
	tickerVol = 1 << iota
	tickerLast
	tickerBuy
	tickerSell

	tickerAll = tickerVol | tickerLast | tickerBuy | tickerSell
)

// Ticker holds the 24h statistics of one pair. Fields the exchange sends
// besides vol, last, buy and sell are skipped.
type Ticker struct {
	Vol  decimal.Decimal
	Last decimal.Decimal
	Buy  decimal.Decimal
	Sell decimal.Decimal

	seen int
}

// Complete reports whether vol, last, buy and sell were all present.
func (v *Ticker) Complete() bool {
	return v.seen&tickerAll == tickerAll
}

// Missing lists the names of the required fields that were not present.
func (v *Ticker) Missing() []string {
	var missing []string

	for _, f := range []struct {
		bit  int
		name string
	}{
		{tickerVol, "vol"},
		{tickerLast, "last"},
		{tickerBuy, "buy"},
		{tickerSell, "sell"},
	} {
		if v.seen&f.bit == 0 {
			missing = append(missing, f.name)
		}
	}

	return missing
}

func (v *Ticker) UnmarshalEasyJSON(in *jlexer.Lexer) {
	in.Delim('{')

	for !in.IsDelim('}') {
		key := in.UnsafeString()
		in.WantColon()

		switch key {
		case "vol":
			v.Vol = decimal.NewFromFloat(in.Float64())
			v.seen |= tickerVol
		case "last":
			v.Last = decimal.NewFromFloat(in.Float64())
			v.seen |= tickerLast
		case "buy":
			v.Buy = decimal.NewFromFloat(in.Float64())
			v.seen |= tickerBuy
		case "sell":
			v.Sell = decimal.NewFromFloat(in.Float64())
			v.seen |= tickerSell
		default:
			in.SkipRecursive()
		}

		in.WantComma()
	}

	in.Delim('}')
}

// Tickers is the body of the ticker endpoint, keyed by pair symbol.
type Tickers map[string]*Ticker

func (v *Tickers) UnmarshalEasyJSON(in *jlexer.Lexer) {
	isTopLevel := in.IsStart()

	if in.IsNull() {
		if isTopLevel {
			in.Consumed()
		}

		in.Skip()

		return
	}

	if *v == nil {
		*v = make(Tickers)
	}

	in.Delim('{')

	for !in.IsDelim('}') {
		symbol := in.String()
		in.WantColon()

		if in.IsNull() {
			in.Skip()
			in.WantComma()

			continue
		}

		t := &Ticker{}
		t.UnmarshalEasyJSON(in)

		(*v)[symbol] = t

		in.WantComma()
	}

	in.Delim('}')

	if isTopLevel {
		in.Consumed()
	}
}
