package service

import (
	"context"
	"fmt"
	"net/url"

	"github.com/mailru/easyjson"
	"github.com/rs/zerolog"
	uuid "github.com/satori/go.uuid"
	"github.com/shopspring/decimal"
	"github.com/soulgarden/yobit-pairs/dictionary"
	"github.com/soulgarden/yobit-pairs/response"
	"github.com/soulgarden/yobit-pairs/storage"
)

// ValidLimit reports whether limit is an accepted order book depth.
func ValidLimit(limit int) bool {
	return limit >= dictionary.MinDepthLimit && limit <= dictionary.MaxDepthLimit
}

type Detail struct {
	cli    Getter
	logger *zerolog.Logger
}

func NewDetail(cli Getter, logger *zerolog.Logger) *Detail {
	return &Detail{cli: cli, logger: logger}
}

// Fetch requests the ticker and then the depth of symbol and aggregates both
// into one PairDetail. Nothing is returned unless both steps succeed.
func (s *Detail) Fetch(ctx context.Context, symbol string, limit int) (*storage.PairDetail, error) {
	logger := s.logger.With().
		Str("query_id", uuid.NewV4().String()).
		Str("pair", symbol).
		Int("limit", limit).
		Logger()

	body, err := s.cli.Get(ctx, dictionary.TickerEndpoint+"/"+url.PathEscape(symbol))
	if err != nil {
		return nil, err
	}

	ticker, err := parseTicker(body, symbol, &logger)
	if err != nil {
		return nil, err
	}

	body, err = s.cli.Get(ctx, fmt.Sprintf("%s/%s?%d", dictionary.DepthEndpoint, url.PathEscape(symbol), limit))
	if err != nil {
		return nil, err
	}

	depth, err := parseDepth(body, symbol, &logger)
	if err != nil {
		return nil, err
	}

	d := storage.NewPairDetail(symbol, limit)

	d.Vol = ticker.Vol
	d.Last = ticker.Last
	d.Buy = ticker.Buy
	d.Sell = ticker.Sell

	d.AsksVol, d.AsksPrice = aggregate(depth.Asks)
	d.BidsVol, d.BidsPrice = aggregate(depth.Bids)

	logger.Debug().
		Str("asks_vol", d.AsksVol.String()).
		Str("bids_vol", d.BidsVol.String()).
		Msg("pair detail fetched")

	return d, nil
}

// aggregate sums the amounts of all levels and takes the price of the last
// level in the order the exchange returned them, not the best one.
func aggregate(orders []response.Order) (volume, price decimal.Decimal) {
	volume = decimal.Zero
	price = decimal.Zero

	for _, o := range orders {
		price = o.Price
		volume = volume.Add(o.Amount)
	}

	return volume, price
}

func parseTicker(body []byte, symbol string, logger *zerolog.Logger) (*response.Ticker, error) {
	if err := checkErrorResponse(body, dictionary.ErrTickerParse, logger); err != nil {
		return nil, err
	}

	tickers := response.Tickers{}

	if err := easyjson.Unmarshal(body, &tickers); err != nil {
		logger.Err(err).Bytes("body", body).Msg("unmarshall ticker")

		return nil, fmt.Errorf("%w: %s", dictionary.ErrTickerParse, err.Error())
	}

	ticker, ok := tickers[symbol]
	if !ok {
		logger.Error().Msg("ticker has no entry for pair")

		return nil, fmt.Errorf("%w: no entry for %s", dictionary.ErrTickerParse, symbol)
	}

	if !ticker.Complete() {
		logger.Error().Strs("missing", ticker.Missing()).Msg("ticker is incomplete")

		return nil, fmt.Errorf("%w: missing %v", dictionary.ErrTickerParse, ticker.Missing())
	}

	return ticker, nil
}

func parseDepth(body []byte, symbol string, logger *zerolog.Logger) (*response.Depth, error) {
	if err := checkErrorResponse(body, dictionary.ErrDepthParse, logger); err != nil {
		return nil, err
	}

	depths := response.Depths{}

	if err := easyjson.Unmarshal(body, &depths); err != nil {
		logger.Err(err).Int("size", len(body)).Msg("unmarshall depth")

		return nil, fmt.Errorf("%w: %s", dictionary.ErrDepthParse, err.Error())
	}

	depth, ok := depths[symbol]
	if !ok {
		logger.Error().Msg("depth has no entry for pair")

		return nil, fmt.Errorf("%w: no entry for %s", dictionary.ErrDepthParse, symbol)
	}

	if !depth.HasAsks || !depth.HasBids {
		logger.Error().Bool("asks", depth.HasAsks).Bool("bids", depth.HasBids).Msg("depth side is null")

		return nil, fmt.Errorf("%w: asks or bids are null", dictionary.ErrDepthParse)
	}

	return depth, nil
}
