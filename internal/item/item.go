package item

import "sync"

// List owns an insertion-ordered sequence of todo items. The sequence only
// ever grows: Append is the single mutation, there is no delete, reorder, or
// dedup. Items are bare strings with no identity, so two equal strings are
// two distinct entries.
type List struct {
	mu       sync.RWMutex
	items    []string
	onChange func([]string) // Callback fired after each mutation
}

// New creates a List seeded with a copy of seed. A nil seed yields an empty
// sequence. onChange (may be nil) is invoked after every Append with a fresh
// snapshot of the sequence; it is not invoked for the seed.
func New(seed []string, onChange func([]string)) *List {
	items := make([]string, len(seed))
	copy(items, seed)
	return &List{
		items:    items,
		onChange: onChange,
	}
}

// Append adds item to the end of the sequence and notifies onChange.
// Empty strings and duplicates are appended like any other value; existing
// items keep their positions.
func (l *List) Append(item string) {
	l.mu.Lock()
	l.items = append(l.items, item)
	snapshot := l.snapshot()
	cb := l.onChange
	l.mu.Unlock()

	if cb != nil {
		cb(snapshot)
	}
}

// Items returns a snapshot copy of the sequence in insertion order. The
// result is never nil and mutating it does not affect the List.
func (l *List) Items() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.snapshot()
}

// Len returns the number of items.
func (l *List) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.items)
}

// snapshot copies the backing slice. Must be called with a lock held.
func (l *List) snapshot() []string {
	out := make([]string, len(l.items))
	copy(out, l.items)
	return out
}
