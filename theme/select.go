package theme

import (
	"errors"
	"reflect"
)

// ErrNoStore indicates a selector accessor constructed without a store in
// scope. This is a usage error and fails loudly at construction time; it is
// never silently defaulted.
var ErrNoStore = errors.New("no theme store in scope")

// Selector derives a slice of the theme snapshot.
type Selector[T any] func(*Snapshot) T

// Selection subscribes a consumer to a derived slice of the theme. It only
// exposes a new result when that slice actually changes by value, giving
// consumers a stable identity they can use for their own memoization even
// when the underlying snapshot has been replaced.
type Selection[T any] struct {
	store      *Store
	selector   Selector[T]
	seen       *Snapshot
	result     T
	hasResult  bool
	generation uint64
}

// Select builds a selection against the store. A nil store fails immediately
// with ErrNoStore.
func Select[T any](store *Store, selector Selector[T]) (*Selection[T], error) {
	if store == nil {
		return nil, ErrNoStore
	}
	return &Selection[T]{store: store, selector: selector}, nil
}

// SetSelector swaps in a fresh selector without invalidating the memoized
// result. Selectors are expected to be cheap and semantically stable across
// calls; only snapshot changes trigger recomputation.
func (s *Selection[T]) SetSelector(selector Selector[T]) {
	s.selector = selector
}

// Get returns the current derived value. If the snapshot is referentially
// identical to the one last seen, the memoized result is returned without
// re-invoking the selector. Otherwise the selector runs, and the previous
// result keeps being returned as long as the fresh one is shallow-equal
// to it.
func (s *Selection[T]) Get() T {
	snapshot := s.store.GetSnapshot()
	if s.hasResult && snapshot == s.seen {
		return s.result
	}

	next := s.selector(snapshot)
	if s.hasResult && shallowEqual(s.result, next) {
		s.seen = snapshot
		return s.result
	}

	s.seen = snapshot
	s.result = next
	s.hasResult = true
	s.generation++
	return s.result
}

// Watch invokes fn with the derived value whenever a theme change is
// observable through the selector; shallow-equal changes never fire. The
// returned function cancels the watch.
func (s *Selection[T]) Watch(fn func(T)) (unwatch func()) {
	return s.store.Subscribe(func() {
		before := s.generation
		value := s.Get()
		if s.generation != before {
			fn(value)
		}
	})
}

// SelectMany batches named selectors into a single selection producing one
// map result. The map identity is stabilized field-wise: a theme change that
// leaves every selected slice shallow-equal yields the previous map.
func SelectMany(store *Store, selectors map[string]Selector[any]) (*Selection[map[string]any], error) {
	return Select(store, func(snapshot *Snapshot) map[string]any {
		result := make(map[string]any, len(selectors))
		for name, selector := range selectors {
			result[name] = selector(snapshot)
		}
		return result
	})
}

// shallowEqual compares two derived results: primitives by equality, map
// results per-field one level deep. Deeper structures intentionally compare
// by leaf identity only.
func shallowEqual(a, b any) bool {
	am, aok := stringKeyed(a)
	bm, bok := stringKeyed(b)

	if aok || bok {
		if !aok || !bok || len(am) != len(bm) {
			return false
		}
		for key, av := range am {
			bv, ok := bm[key]
			if !ok || !leafEqual(av, bv) {
				return false
			}
		}
		return true
	}

	return leafEqual(a, b)
}

func leafEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || !ta.Comparable() {
		return false
	}
	return a == b
}

// stringKeyed normalizes any string-keyed map result so Style, Theme and
// plain map[string]any all stabilize the same way.
func stringKeyed(v any) (map[string]any, bool) {
	if v == nil {
		return nil, false
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}

	out := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		out[iter.Key().String()] = iter.Value().Interface()
	}
	return out, true
}
