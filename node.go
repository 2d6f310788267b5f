package aatree

// node holds key/value, the AA level and the two children.
// Children of a genuine node are either genuine nodes or the map's sentinel.
type node[K, V any] struct {
	level int
	key   K
	value V
	left  *node[K, V]
	right *node[K, V]
}

// newSentinel creates the level-0 empty marker. Both of its children point
// back at itself so that child.level and child.right.level never need a nil
// check. It is never written to after this call.
func newSentinel[K, V any]() *node[K, V] {
	s := &node[K, V]{}
	s.left = s
	s.right = s
	return s
}

// isSentinel reports whether n is the empty marker. Only the sentinel
// carries level 0.
func (n *node[K, V]) isSentinel() bool {
	return n.level == 0
}

// hasNoChildren reports whether both children are the sentinel.
func (n *node[K, V]) hasNoChildren() bool {
	return n.left.isSentinel() && n.right.isSentinel()
}
