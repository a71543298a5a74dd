package storage

import (
	"github.com/shopspring/decimal"
	"github.com/soulgarden/yobit-pairs/dictionary"
)

// PairDetail is the statistics of one pair at one order book depth.
// Vol, Last, Buy and Sell hold dictionary.NotFetched and the ask/bid
// aggregates hold zero until the detail is filled.
type PairDetail struct {
	Symbol string
	Limit  int

	Vol decimal.Decimal

	AsksVol   decimal.Decimal
	AsksPrice decimal.Decimal
	BidsVol   decimal.Decimal
	BidsPrice decimal.Decimal

	Last decimal.Decimal
	Buy  decimal.Decimal
	Sell decimal.Decimal
}

func NewPairDetail(symbol string, limit int) *PairDetail {
	return &PairDetail{
		Symbol:    symbol,
		Limit:     limit,
		Vol:       dictionary.NotFetched,
		AsksVol:   decimal.Zero,
		AsksPrice: decimal.Zero,
		BidsVol:   decimal.Zero,
		BidsPrice: decimal.Zero,
		Last:      dictionary.NotFetched,
		Buy:       dictionary.NotFetched,
		Sell:      dictionary.NotFetched,
	}
}
