package source

// StringID identifies an interned string. The zero value, NoStringID,
// always maps to "".
type StringID uint32

const NoStringID StringID = 0

// Interner deduplicates identifier and literal text so AST nodes can
// carry a small integer instead of copying strings repeatedly.
type Interner struct {
	byID  []string
	index map[string]StringID
}

func NewInterner() *Interner {
	return &Interner{
		byID:  []string{""},
		index: map[string]StringID{"": 0},
	}
}

// Intern inserts s if new and returns its StringID; repeated calls with
// the same text return the same ID.
func (i *Interner) Intern(s string) StringID {
	if id, ok := i.index[s]; ok {
		return id
	}
	cpy := string([]byte(s)) // own copy, independent of the source buffer
	id := StringID(len(i.byID))
	i.byID = append(i.byID, cpy)
	i.index[cpy] = id
	return id
}

// Lookup returns the interned string for id.
func (i *Interner) Lookup(id StringID) (string, bool) {
	if !i.Has(id) {
		return "", false
	}
	return i.byID[id], true
}

// MustLookup is Lookup but panics on an invalid id; ids handed out by
// this Interner are always valid, so a panic here means a caller mixed
// IDs from two different Interners.
func (i *Interner) MustLookup(id StringID) string {
	s, ok := i.Lookup(id)
	if !ok {
		panic("source: invalid string id")
	}
	return s
}

func (i *Interner) Has(id StringID) bool {
	return int(id) >= 0 && int(id) < len(i.byID)
}

func (i *Interner) Len() int { return len(i.byID) }
