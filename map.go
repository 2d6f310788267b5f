package aatree

import (
	"cmp"
	"sync"
)

// Map is an ordered map backed by an AA-tree.
//
// A Map is not safe for concurrent use: callers either confine it to a
// single goroutine or guard it with a mutex. Concurrent readers are fine
// as long as no mutation is in flight.
type Map[K cmp.Ordered, V any] struct {
	root     *node[K, V]
	sentinel *node[K, V]
	length   int
	mutator  mutatorImpl[K, V]
	metrics  *Metrics
	nodePool sync.Pool
}

// New returns an empty Map ordered by the natural order of K.
func New[K cmp.Ordered, V any]() *Map[K, V] {
	s := newSentinel[K, V]()
	m := &Map[K, V]{
		root:     s,
		sentinel: s,
		metrics:  newMetrics(),
	}
	m.nodePool.New = func() any { return new(node[K, V]) }
	m.mutator = mutatorImpl[K, V]{m: m}
	return m
}

// Len returns the number of entries. It is maintained by Put and Delete
// and always agrees with Size.
func (m *Map[K, V]) Len() int {
	return m.length
}

// IsEmpty reports whether the map holds no entries.
func (m *Map[K, V]) IsEmpty() bool {
	return m.root.isSentinel()
}

// Get returns the value for a key.
// The boolean is true if the key exists, false otherwise.
func (m *Map[K, V]) Get(key K) (V, bool) {
	n := m.root
	for !n.isSentinel() {
		switch c := cmp.Compare(key, n.key); {
		case c < 0:
			n = n.left
		case c > 0:
			n = n.right
		default:
			return n.value, true
		}
	}
	var zero V
	return zero, false
}

// Contains returns true if the key exists in the map.
func (m *Map[K, V]) Contains(key K) bool {
	_, ok := m.Get(key)
	return ok
}

// Put inserts or updates the value for the given key.
// It returns the previous value and a flag indicating whether an existing entry was replaced.
func (m *Map[K, V]) Put(key K, value V) (V, bool) {
	var (
		old      V
		replaced bool
	)
	m.root, old, replaced = m.mutator.put(m.root, key, value)
	m.assertValid("put")
	return old, replaced
}

// Delete removes the entry for key and returns its value. Deleting an
// absent key leaves the map unchanged and returns false.
func (m *Map[K, V]) Delete(key K) (V, bool) {
	var (
		old     V
		deleted bool
	)
	m.root, old, deleted = m.mutator.delete(m.root, key)
	m.assertValid("delete")
	return old, deleted
}

// Clear removes every entry. The nodes are handed back to the map's pool
// so nothing outside the map keeps them reachable.
func (m *Map[K, V]) Clear() {
	m.releaseTree(m.root)
	m.root = m.sentinel
	m.length = 0
	m.assertValid("clear")
}

// RebalanceStats reports how many skew rotations, split rotations and
// level demotions the map has performed since it was created.
func (m *Map[K, V]) RebalanceStats() (skews, splits, demotions int64) {
	return m.metrics.RebalanceStats()
}
