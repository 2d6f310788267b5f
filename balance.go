package aatree

// skew removes a left horizontal link with a right rotation:
//
//	    n            l
//	   / \          / \
//	  l   r   =>   a   n
//	 / \              / \
//	a   b            b   r
//
// It returns the new subtree root.
func (m *Map[K, V]) skew(n *node[K, V]) *node[K, V] {
	if n.isSentinel() || n.left.level != n.level {
		return n
	}
	l := n.left
	n.left = l.right
	l.right = n
	m.metrics.IncSkew()
	return l
}

// split removes two consecutive right horizontal links with a left rotation,
// promoting the middle node one level:
//
//	  n                  r
//	 / \                / \
//	a   r      =>      n   x
//	   / \            / \
//	  b   x          a   b
//
// It returns the new subtree root.
func (m *Map[K, V]) split(n *node[K, V]) *node[K, V] {
	if n.isSentinel() || n.right.right.level != n.level {
		return n
	}
	r := n.right
	n.right = r.left
	r.left = n
	r.level++
	m.metrics.IncSplit()
	return r
}
