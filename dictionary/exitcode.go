package dictionary

import "errors"

const (
	ExitOK          = 0
	ExitGeneric     = 1
	ExitClientInit  = -1
	ExitPairsParse  = -2
	ExitNoPairs     = -3
	ExitTransport   = -4
	ExitTickerParse = -5
	ExitDepthParse  = -6
)

// ExitCode maps an error returned by a command to the process exit code.
// Transport failures win over parse failures when both are wrapped.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrClientInit):
		return ExitClientInit
	case errors.Is(err, ErrTransport):
		return ExitTransport
	case errors.Is(err, ErrPairsParse):
		return ExitPairsParse
	case errors.Is(err, ErrNoPairs), errors.Is(err, ErrUnknownPair):
		return ExitNoPairs
	case errors.Is(err, ErrTickerParse):
		return ExitTickerParse
	case errors.Is(err, ErrDepthParse):
		return ExitDepthParse
	default:
		return ExitGeneric
	}
}
