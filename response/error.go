package response

import "github.com/mailru/easyjson/jlexer"

// Error is the envelope the exchange sends instead of the expected payload,
// e.g. {"success":0,"error":"Invalid pair name: abc_def"}.
type Error struct {
	Success int
	Reason  string
}

func (v *Error) UnmarshalEasyJSON(in *jlexer.Lexer) {
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

		if in.IsNull() {
			in.Skip()
			in.WantComma()

			continue
		}

		switch key {
		case "success":
			v.Success = int(in.Float64())
		case "error":
			v.Reason = in.String()
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
