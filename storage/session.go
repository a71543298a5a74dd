package storage

import uuid "github.com/satori/go.uuid"

// Query is the symbol and depth limit of a ticker request, kept so it can be repeated.
type Query struct {
	Symbol string
	Limit  int
}

// Session is the state of one interactive run: the pair registry and the
// most recent ticker query. It lives for the process lifetime only.
type Session struct {
	ID    string
	Pairs *Pairs

	lastQuery *Query
}

func NewSession(pairs *Pairs) *Session {
	return &Session{
		ID:    uuid.NewV4().String(),
		Pairs: pairs,
	}
}

func (s *Session) SetLastQuery(symbol string, limit int) {
	s.lastQuery = &Query{Symbol: symbol, Limit: limit}
}

// LastQuery returns the stored query and false when no ticker was requested yet.
func (s *Session) LastQuery() (Query, bool) {
	if s.lastQuery == nil {
		return Query{}, false
	}

	return *s.lastQuery, true
}
