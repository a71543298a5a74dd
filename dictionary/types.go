package dictionary

const (
	InfoEndpoint   = "info"
	TickerEndpoint = "ticker"
	DepthEndpoint  = "depth"
)

// Menu commands, case-sensitive.
const (
	CmdView   = 'v'
	CmdUpdate = 'u'
	CmdTicker = 't'
	CmdRepeat = 'r'
	CmdExit   = 'q'
)

const (
	MinDepthLimit = 150
	MaxDepthLimit = 2000
)

const (
	LocaleEN = "en"
	LocaleRU = "ru"
)
