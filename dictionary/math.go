package dictionary

import "github.com/shopspring/decimal"

var NotFetched = decimal.NewFromInt(-1) //nolint: gochecknoglobals

const DisplayPrecision = 8
