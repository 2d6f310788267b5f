package aatree

import "cmp"

type entry[K, V any] struct {
	key   K
	value V
}

// Iterator provides a forward-only view over a snapshot of the map.
// The snapshot is taken when the iterator is created; later mutations of
// the map are not observed. An exhausted iterator stays exhausted.
type Iterator[K cmp.Ordered, V any] struct {
	entries []entry[K, V]
	pos     int
	key     K
	value   V
	valid   bool
}

// Iterator returns a new iterator positioned before the first element.
func (m *Map[K, V]) Iterator() *Iterator[K, V] {
	entries := make([]entry[K, V], 0, m.length)
	return &Iterator[K, V]{
		entries: collect(m.root, entries),
		pos:     -1,
	}
}

// Valid reports whether the iterator currently points at an element.
func (it *Iterator[K, V]) Valid() bool {
	if it == nil {
		return false
	}
	return it.valid
}

// Key returns the key at the iterator's current position.
// It should only be called when Valid reports true.
func (it *Iterator[K, V]) Key() K {
	var zero K
	if it == nil || !it.valid {
		return zero
	}
	return it.key
}

// Value returns the value at the iterator's current position.
// It should only be called when Valid reports true.
func (it *Iterator[K, V]) Value() V {
	var zero V
	if it == nil || !it.valid {
		return zero
	}
	return it.value
}

// Next advances the iterator to the next element and reports whether it
// successfully moved forward.
func (it *Iterator[K, V]) Next() bool {
	if it == nil {
		return false
	}
	if it.pos+1 >= len(it.entries) {
		it.pos = len(it.entries)
		it.invalidate()
		return false
	}

	it.pos++
	e := it.entries[it.pos]
	it.key = e.key
	it.value = e.value
	it.valid = true
	return true
}

// Remaining returns how many elements Next can still yield.
func (it *Iterator[K, V]) Remaining() int {
	if it == nil {
		return 0
	}
	return max(len(it.entries)-it.pos-1, 0)
}

func (it *Iterator[K, V]) invalidate() {
	it.valid = false
	var zeroK K
	var zeroV V
	it.key = zeroK
	it.value = zeroV
}
