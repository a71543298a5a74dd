package response

import (
	"fmt"

	"github.com/mailru/easyjson/jlexer"
	"github.com/shopspring/decimal"
)

// Order is one order book level: [price, amount].
type Order struct {
	Price  decimal.Decimal
	Amount decimal.Decimal
}

type Depth struct {
	Asks []Order
	Bids []Order

	// HasAsks and HasBids are false when the side is absent or null.
	HasAsks bool
	HasBids bool
}

func (v *Depth) UnmarshalEasyJSON(in *jlexer.Lexer) {
	in.Delim('{')

	for !in.IsDelim('}') {
		key := in.UnsafeString()
		in.WantColon()

		switch key {
		case "asks":
			v.Asks, v.HasAsks = decodeOrders(in)
		case "bids":
			v.Bids, v.HasBids = decodeOrders(in)
		default:
			in.SkipRecursive()
		}

		in.WantComma()
	}

	in.Delim('}')
}

func decodeOrders(in *jlexer.Lexer) ([]Order, bool) {
	if in.IsNull() {
		in.Skip()

		return nil, false
	}

	orders := []Order{}

	in.Delim('[')

	for !in.IsDelim(']') {
		orders = append(orders, decodeOrder(in))
		in.WantComma()
	}

	in.Delim(']')

	return orders, true
}

func decodeOrder(in *jlexer.Lexer) Order {
	var (
		o Order
		n int
	)

	in.Delim('[')

	for !in.IsDelim(']') {
		val := in.Float64()

		switch n {
		case 0:
			o.Price = decimal.NewFromFloat(val)
		case 1:
			o.Amount = decimal.NewFromFloat(val)
		}

		n++

		in.WantComma()
	}

	in.Delim(']')

	if n < 2 && in.Ok() {
		in.AddError(fmt.Errorf("order level has %d values, want price and amount", n))
	}

	return o
}

// Depths is the body of the depth endpoint, keyed by pair symbol.
type Depths map[string]*Depth

func (v *Depths) UnmarshalEasyJSON(in *jlexer.Lexer) {
	isTopLevel := in.IsStart()

	if in.IsNull() {
		if isTopLevel {
			in.Consumed()
		}

		in.Skip()

		return
	}

	if *v == nil {
		*v = make(Depths)
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

		d := &Depth{}
		d.UnmarshalEasyJSON(in)

		(*v)[symbol] = d

		in.WantComma()
	}

	in.Delim('}')

	if isTopLevel {
		in.Consumed()
	}
}
