// Package theme holds the single source of truth for the active theme and its change subscriptions.
package theme

import (
	"fmt"
	"strconv"

	"github.com/samber/lo"

	"github.com/tinct-ui/tinct/token"
)

// Signature tokens feeding ComputeID. Two themes that differ only outside
// this pair alias to the same id; the fingerprint trades exactness for a
// near-free computation on every theme swap.
const (
	SignatureBackground = "backgroundColor"
	SignatureAccent     = "accentColor"
)

// Snapshot is the published form of a theme: its tokens flattened free of
// indirections, plus the fingerprint identifying it for cache partitioning.
// A snapshot is referentially stable between one SetTheme call and the next
// and is never mutated in place.
type Snapshot struct {
	Tokens token.Theme
	ID     string
}

// Token returns a flattened token value from the snapshot.
func (s *Snapshot) Token(name string) (any, bool) {
	if s == nil {
		return nil, false
	}
	value, ok := s.Tokens[name]
	return value, ok
}

// Store owns the current theme snapshot and a set of change listeners.
// Like the rest of the engine it belongs to a single render sequence and is
// not safe for concurrent use.
type Store struct {
	snapshot  *Snapshot
	listeners map[int]func()
	nextID    int
}

// NewStore constructs a store with no published theme. GetSnapshot returns
// nil until the first SetTheme call; consumers treat that as "not yet
// themed", not as an error.
func NewStore() *Store {
	return &Store{listeners: make(map[int]func())}
}

// SetTheme flattens the theme, computes its fingerprint, swaps the snapshot
// and then notifies every listener synchronously. Notification is
// unconditional: listeners decide for themselves, through the selector
// contract, whether the change is observable to them. SetTheme does not
// return until every listener has run, so code executing immediately
// afterward observes the new snapshot consistently.
func (s *Store) SetTheme(t token.Theme) *Snapshot {
	s.snapshot = &Snapshot{
		Tokens: token.Flatten(t),
		ID:     ComputeID(t),
	}

	// Listeners may subscribe or unsubscribe while being notified; iterate
	// over a copy of the set so the map is never mutated mid-traversal.
	for _, listener := range lo.Values(s.listeners) {
		listener()
	}

	return s.snapshot
}

// GetSnapshot returns the currently published snapshot, or nil before the
// first SetTheme call.
func (s *Store) GetSnapshot() *Snapshot {
	return s.snapshot
}

// GetServerSnapshot mirrors GetSnapshot for non-interactive render paths
// that must not assume a live subscription lifecycle exists.
func (s *Store) GetServerSnapshot() *Snapshot {
	return s.snapshot
}

// Subscribe registers a zero-argument change listener and returns its
// unsubscribe function. Both are safe to call during notification.
func (s *Store) Subscribe(listener func()) (unsubscribe func()) {
	id := s.nextID
	s.nextID++
	s.listeners[id] = listener

	return func() {
		delete(s.listeners, id)
	}
}

// ComputeID fingerprints a theme for cache partitioning. It hashes only the
// two signature tokens through a 32-bit rolling string hash: cheap and
// collision-tolerant rather than cryptographic.
func ComputeID(t token.Theme) string {
	signature := signatureValue(t, SignatureBackground) + "|" + signatureValue(t, SignatureAccent)

	var hash int32
	for _, ch := range signature {
		hash = hash*31 + int32(ch)
	}

	value := int64(hash)
	if value < 0 {
		value = -value
	}
	return "theme_" + strconv.FormatInt(value, 36)
}

func signatureValue(t token.Theme, name string) string {
	raw, ok := t[name]
	if !ok {
		return ""
	}
	if s, ok := raw.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", raw)
}
