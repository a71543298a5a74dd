package response

import "github.com/mailru/easyjson/jlexer"

// Info is the body of the info endpoint. Pair metadata is skipped, only the
// symbols are kept, in the order the exchange sent them.
type Info struct {
	Pairs []string
	// HasPairs is false when the "pairs" key is absent or null.
	HasPairs bool
}

func (v *Info) UnmarshalEasyJSON(in *jlexer.Lexer) {
	isTopLevel := in.IsStart()

	if in.IsNull() {
		if isTopLevel {
			in.Consumed()
		}

		in.Skip()

		return
	}

	in.Delim('{')

	for !in.IsDelim('}') {
		key := in.UnsafeString()
		in.WantColon()

		switch key {
		case "pairs":
			v.decodePairs(in)
		default:
			in.SkipRecursive()
		}

		in.WantComma()
	}

	in.Delim('}')

	if isTopLevel {
		in.Consumed()
	}
}

func (v *Info) decodePairs(in *jlexer.Lexer) {
	if in.IsNull() {
		in.Skip()

		v.HasPairs = false
		v.Pairs = nil

		return
	}

	v.HasPairs = true
	v.Pairs = []string{}

	in.Delim('{')

	for !in.IsDelim('}') {
		symbol := in.String()
		in.WantColon()
		in.SkipRecursive()
		in.WantComma()

		if in.Ok() {
			v.Pairs = append(v.Pairs, symbol)
		}
	}

	in.Delim('}')
}
