package dictionary

import "errors"

var ErrClientInit = errors.New("http client init")

var ErrTransport = errors.New("transport failure")

var ErrPairsParse = errors.New("pairs list is invalid")

var ErrNoPairs = errors.New("there are no trading pairs")

var ErrTickerParse = errors.New("ticker content is invalid")

var ErrDepthParse = errors.New("depth content is invalid")

var ErrUnknownPair = errors.New("pair is missing in pairs list")

var ErrInvalidLimit = errors.New("depth limit is out of range")

var ErrInvalidLocale = errors.New("unsupported locale")
