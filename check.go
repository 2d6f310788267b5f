package aatree

import (
	"cmp"
	"errors"
	"fmt"
)

// ErrCorrupt is returned by Validate when the tree violates one of the
// AA-tree invariants. A healthy Map never reports it.
var ErrCorrupt = errors.New("aatree: invariant violated")

// Validate walks the whole tree and checks the sentinel, the level rules,
// key ordering and the cached length. It returns nil for a healthy map.
func (m *Map[K, V]) Validate() error {
	s := m.sentinel
	if s.level != 0 || s.left != s || s.right != s {
		return fmt.Errorf("%w: sentinel was modified", ErrCorrupt)
	}

	count, err := m.checkSubtree(m.root, nil, nil)
	if err != nil {
		return err
	}
	if count != m.length {
		return fmt.Errorf("%w: length is %d but %d nodes are reachable", ErrCorrupt, m.length, count)
	}
	return nil
}

// checkSubtree validates the subtree rooted at n whose keys must lie strictly
// between lo and hi (nil meaning unbounded). It returns the node count.
func (m *Map[K, V]) checkSubtree(n *node[K, V], lo, hi *K) (int, error) {
	if n.isSentinel() {
		if n != m.sentinel {
			return 0, fmt.Errorf("%w: stray level 0 node reachable", ErrCorrupt)
		}
		return 0, nil
	}

	switch {
	case lo != nil && cmp.Compare(n.key, *lo) <= 0:
		return 0, fmt.Errorf("%w: key %v not above %v", ErrCorrupt, n.key, *lo)
	case hi != nil && cmp.Compare(n.key, *hi) >= 0:
		return 0, fmt.Errorf("%w: key %v not below %v", ErrCorrupt, n.key, *hi)
	case n.hasNoChildren() && n.level != 1:
		return 0, fmt.Errorf("%w: leaf %v has level %d", ErrCorrupt, n.key, n.level)
	case n.left.level != n.level-1:
		return 0, fmt.Errorf("%w: node %v level %d has left child level %d", ErrCorrupt, n.key, n.level, n.left.level)
	case n.right.level != n.level && n.right.level != n.level-1:
		return 0, fmt.Errorf("%w: node %v level %d has right child level %d", ErrCorrupt, n.key, n.level, n.right.level)
	case n.right.right.level >= n.level:
		return 0, fmt.Errorf("%w: node %v level %d has right grandchild level %d", ErrCorrupt, n.key, n.level, n.right.right.level)
	}

	key := n.key
	left, err := m.checkSubtree(n.left, lo, &key)
	if err != nil {
		return 0, err
	}
	right, err := m.checkSubtree(n.right, &key, hi)
	if err != nil {
		return 0, err
	}
	return 1 + left + right, nil
}
