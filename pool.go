package aatree

func (m *Map[K, V]) acquireNode(key K, value V) *node[K, V] {
	n := m.nodePool.Get().(*node[K, V])

	n.level = 1
	n.key = key
	n.value = value
	n.left = m.sentinel
	n.right = m.sentinel
	return n
}

// releaseNode zeroes n and hands it back to the pool. A released node has
// level 0, so releasing it a second time is a no-op.
func (m *Map[K, V]) releaseNode(n *node[K, V]) {
	if n == nil || n.isSentinel() {
		return
	}

	var zeroK K
	var zeroV V
	n.level = 0
	n.key = zeroK
	n.value = zeroV
	n.left = nil
	n.right = nil

	m.nodePool.Put(n)
}

// releaseTree releases every genuine node of the subtree rooted at n,
// children first.
func (m *Map[K, V]) releaseTree(n *node[K, V]) {
	if n.isSentinel() {
		return
	}
	m.releaseTree(n.left)
	m.releaseTree(n.right)
	m.releaseNode(n)
}
