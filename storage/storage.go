package storage

// Pairs is the registry of tradable pair symbols. The order of symbols is
// the order the exchange listed them and only drives display numbering.
type Pairs struct {
	symbols []string
	index   map[string]int
}

func NewPairs() *Pairs {
	return &Pairs{index: map[string]int{}}
}

// Replace drops the current contents and stores symbols instead.
// Duplicates keep their first position.
func (p *Pairs) Replace(symbols []string) {
	list := make([]string, 0, len(symbols))
	index := make(map[string]int, len(symbols))

	for _, symbol := range symbols {
		if _, ok := index[symbol]; ok {
			continue
		}

		index[symbol] = len(list)
		list = append(list, symbol)
	}

	p.symbols = list
	p.index = index
}

func (p *Pairs) Len() int {
	return len(p.symbols)
}

// List returns a copy of the symbols in display order.
func (p *Pairs) List() []string {
	list := make([]string, len(p.symbols))
	copy(list, p.symbols)

	return list
}

func (p *Pairs) Contains(symbol string) bool {
	_, ok := p.index[symbol]

	return ok
}

// Resolve maps a 1-based ordinal to its symbol.
func (p *Pairs) Resolve(ordinal int) (string, bool) {
	if !p.InRange(ordinal) {
		return "", false
	}

	return p.symbols[ordinal-1], true
}

// InRange reports whether ordinal is within [1, Len()].
func (p *Pairs) InRange(ordinal int) bool {
	return ordinal >= 1 && ordinal <= len(p.symbols)
}
