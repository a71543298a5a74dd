package service

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/soulgarden/yobit-pairs/dictionary"
	"github.com/soulgarden/yobit-pairs/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDetail() *storage.PairDetail {
	d := storage.NewPairDetail("btc_usd", 150)
	d.Vol = decimal.RequireFromString("100.5")
	d.AsksVol = decimal.RequireFromString("0.3")
	d.AsksPrice = decimal.NewFromInt(51050)
	d.BidsVol = decimal.RequireFromString("0.3")
	d.BidsPrice = decimal.NewFromInt(49000)
	d.Last = decimal.NewFromInt(50000)
	d.Buy = decimal.NewFromInt(49999)
	d.Sell = decimal.NewFromInt(50001)

	return d
}

func TestPrinter_PrintDetail_EN(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}

	p, err := NewPrinter(dictionary.LocaleEN, out)
	require.NoError(t, err)

	p.PrintDetail(sampleDetail())

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 11)

	assert.Contains(t, lines[0], ">>>> TICKER: btc_usd")
	assert.Equal(t, []string{
		"Vol:          100.50000000",
		"Depth limit:  150",
		"Vol of asks:  0.30000000",
		"Vol of bids:  0.30000000",
		"Asks price:   51050.00000000",
		"Bids price:   49000.00000000",
		"Last:         50000.00000000",
		"Buy:          49999.00000000",
		"Sell:         50001.00000000",
		strings.Repeat("=", 28),
	}, lines[1:])
}

func TestPrinter_PrintDetail_RU(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}

	p, err := NewPrinter(dictionary.LocaleRU, out)
	require.NoError(t, err)

	p.PrintDetail(storage.NewPairDetail("eth_usd", 2000))

	s := out.String()
	assert.Contains(t, s, ">>>> ТОРГОВАЯ ПАРА: eth_usd")
	assert.Contains(t, s, "Объём торгов:               -1.00000000\n")
	assert.Contains(t, s, "Глубина стакана:            2000\n")
	assert.Contains(t, s, "Цена на продажу по лимиту:  0.00000000\n")
	assert.Contains(t, s, "Цена продажи:               -1.00000000\n")
}

func TestPrinter_PrintPairs(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}

	p, err := NewPrinter(dictionary.LocaleEN, out)
	require.NoError(t, err)

	p.PrintPairs([]string{"ltc_btc", "btc_usd"})

	s := out.String()
	assert.Contains(t, s, "The list of tickers")
	assert.Contains(t, s, "1 - ltc_btc\n2 - btc_usd\n")
	assert.Contains(t, s, "The end of the tickers list.")

	out.Reset()
	p.PrintPairs(nil)

	assert.Equal(t, ">> There are no tickers <<\n", out.String())
}

func TestNewPrinter_UnknownLocale(t *testing.T) {
	t.Parallel()

	_, err := NewPrinter("de", &bytes.Buffer{})
	assert.ErrorIs(t, err, dictionary.ErrInvalidLocale)
}
