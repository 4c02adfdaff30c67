package source

import "sync"

// StringID identifies an interned string by value equality: identical
// text always interns to the same StringID (spec.md §3.5).
type StringID uint32

// NoStringID is the reserved ID for the empty string.
const NoStringID StringID = 0

// Interner deduplicates identifier and string-literal text encountered
// while parsing. Parsing a single source is sequential, but the REPL
// reuses one Interner across lines submitted from bubbletea's event
// loop, so Intern/MustLookup take a lock rather than assume a single
// writer.
type Interner struct {
	mu    sync.RWMutex
	byID  []string            // index -> string; byID[0] == "" for NoStringID
	index map[string]StringID // string -> index
}

// NewInterner returns an Interner with NoStringID already bound to "".
func NewInterner() *Interner {
	return &Interner{
		byID:  []string{""},
		index: map[string]StringID{"": NoStringID},
	}
}

// Intern inserts s if not already present and returns its StringID.
func (i *Interner) Intern(s string) StringID {
	i.mu.RLock()
	if id, ok := i.index[s]; ok {
		i.mu.RUnlock()
		return id
	}
	i.mu.RUnlock()

	// Copy so the interned string doesn't keep the caller's backing
	// array (often a slice of the full source file) alive.
	cpy := string([]byte(s))

	i.mu.Lock()
	defer i.mu.Unlock()
	if id, ok := i.index[cpy]; ok {
		return id
	}
	id := StringID(len(i.byID))
	i.byID = append(i.byID, cpy)
	i.index[cpy] = id
	return id
}

// MustLookup returns the string for id, panicking if id was never
// interned. AST nodes only ever carry a StringID produced by Intern, so
// a miss here is an AST-building bug, not a recoverable runtime error.
func (i *Interner) MustLookup(id StringID) string {
	i.mu.RLock()
	defer i.mu.RUnlock()
	if int(id) < 0 || int(id) >= len(i.byID) {
		panic("invalid string ID")
	}
	return i.byID[id]
}
