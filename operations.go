package aatree

import "cmp"

// mutatorImpl groups the mutating algorithms.
type mutatorImpl[K cmp.Ordered, V any] struct {
	m *Map[K, V]
}

// put inserts or updates key in the subtree rooted at n and returns the new
// subtree root. When the key already exists its value is overwritten in
// place, the old value is returned and no rebalancing takes place.
func (u *mutatorImpl[K, V]) put(n *node[K, V], key K, value V) (*node[K, V], V, bool) {
	var old V
	if n.isSentinel() {
		u.m.length++
		return u.m.acquireNode(key, value), old, false
	}

	var replaced bool
	switch c := cmp.Compare(key, n.key); {
	case c < 0:
		n.left, old, replaced = u.put(n.left, key, value)
	case c > 0:
		n.right, old, replaced = u.put(n.right, key, value)
	default:
		old = n.value
		n.value = value
		return n, old, true
	}
	if replaced {
		return n, old, true
	}

	n = u.m.skew(n)
	n = u.m.split(n)
	if putUnwindHook != nil {
		putUnwindHook(n)
	}
	return n, old, false
}

// delete removes key from the subtree rooted at n and returns the new
// subtree root together with the removed value.
func (u *mutatorImpl[K, V]) delete(n *node[K, V], key K) (*node[K, V], V, bool) {
	var old V
	if n.isSentinel() {
		return n, old, false
	}

	var deleted bool
	switch c := cmp.Compare(key, n.key); {
	case c < 0:
		n.left, old, deleted = u.delete(n.left, key)
	case c > 0:
		n.right, old, deleted = u.delete(n.right, key)
	default:
		old, deleted = n.value, true
		switch {
		case n.hasNoChildren():
			u.unlink(n)
			return u.m.sentinel, old, true
		case n.left.isSentinel():
			r := n.right
			u.unlink(n)
			return r, old, true
		case n.right.isSentinel():
			l := n.left
			u.unlink(n)
			return l, old, true
		default:
			// Take over the in-order successor, then remove it from the
			// right subtree where it has at most one child.
			succ := minimum(n.right)
			n.key, n.value = succ.key, succ.value
			n.right, _, _ = u.delete(n.right, succ.key)
		}
	}
	if !deleted {
		return n, old, false
	}

	n = u.rebalance(n)
	if deleteUnwindHook != nil {
		deleteUnwindHook(n)
	}
	return n, old, true
}

// rebalance restores the level invariants at n after a node was removed
// somewhere below it. A removal lowers a child's level by at most one, so
// a single demotion of n is enough.
func (u *mutatorImpl[K, V]) rebalance(n *node[K, V]) *node[K, V] {
	m := u.m
	if n.left.level < n.level-1 || n.right.level < n.level-1 {
		n.level--
		m.metrics.IncDemotion()
		if n.right.level > n.level {
			n.right.level = n.level
		}
	}

	n = m.skew(n)
	n.right = m.skew(n.right)
	if !n.right.isSentinel() {
		n.right.right = m.skew(n.right.right)
	}
	n = m.split(n)
	n.right = m.split(n.right)
	return n
}

func (u *mutatorImpl[K, V]) unlink(n *node[K, V]) {
	u.m.length--
	u.m.releaseNode(n)
}
