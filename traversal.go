package aatree

// minimum returns the leftmost node of the subtree rooted at n, or n itself
// when n is the sentinel.
func minimum[K, V any](n *node[K, V]) *node[K, V] {
	if n.isSentinel() {
		return n
	}
	for !n.left.isSentinel() {
		n = n.left
	}
	return n
}

// maximum returns the rightmost node of the subtree rooted at n, or n itself
// when n is the sentinel.
func maximum[K, V any](n *node[K, V]) *node[K, V] {
	if n.isSentinel() {
		return n
	}
	for !n.right.isSentinel() {
		n = n.right
	}
	return n
}

// Min returns the entry with the smallest key.
// The boolean is false if the map is empty.
func (m *Map[K, V]) Min() (K, V, bool) {
	n := minimum(m.root)
	if n.isSentinel() {
		var (
			k K
			v V
		)
		return k, v, false
	}
	return n.key, n.value, true
}

// Max returns the entry with the largest key.
// The boolean is false if the map is empty.
func (m *Map[K, V]) Max() (K, V, bool) {
	n := maximum(m.root)
	if n.isSentinel() {
		var (
			k K
			v V
		)
		return k, v, false
	}
	return n.key, n.value, true
}

// Size counts the entries by walking the tree.
func (m *Map[K, V]) Size() int {
	return size(m.root)
}

func size[K, V any](n *node[K, V]) int {
	if n.isSentinel() {
		return 0
	}
	return 1 + size(n.left) + size(n.right)
}

// Height returns the number of nodes on the longest root-to-leaf path.
// An empty map has height 0.
func (m *Map[K, V]) Height() int {
	return height(m.root)
}

func height[K, V any](n *node[K, V]) int {
	if n.isSentinel() {
		return 0
	}
	return 1 + max(height(n.left), height(n.right))
}

// InOrder returns the keys in ascending order.
func (m *Map[K, V]) InOrder() []K {
	keys := make([]K, 0, m.length)
	return inOrder(m.root, keys)
}

// PreOrder returns the keys with every node visited before its subtrees.
func (m *Map[K, V]) PreOrder() []K {
	keys := make([]K, 0, m.length)
	return preOrder(m.root, keys)
}

// PostOrder returns the keys with every node visited after its subtrees.
func (m *Map[K, V]) PostOrder() []K {
	keys := make([]K, 0, m.length)
	return postOrder(m.root, keys)
}

func inOrder[K, V any](n *node[K, V], keys []K) []K {
	if n.isSentinel() {
		return keys
	}
	keys = inOrder(n.left, keys)
	keys = append(keys, n.key)
	return inOrder(n.right, keys)
}

func preOrder[K, V any](n *node[K, V], keys []K) []K {
	if n.isSentinel() {
		return keys
	}
	keys = append(keys, n.key)
	keys = preOrder(n.left, keys)
	return preOrder(n.right, keys)
}

func postOrder[K, V any](n *node[K, V], keys []K) []K {
	if n.isSentinel() {
		return keys
	}
	keys = postOrder(n.left, keys)
	keys = postOrder(n.right, keys)
	return append(keys, n.key)
}

// collect appends the entries of the subtree rooted at n in key order.
func collect[K, V any](n *node[K, V], entries []entry[K, V]) []entry[K, V] {
	if n.isSentinel() {
		return entries
	}
	entries = collect(n.left, entries)
	entries = append(entries, entry[K, V]{key: n.key, value: n.value})
	return collect(n.right, entries)
}
