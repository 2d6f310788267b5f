//go:build aatreedebug

package aatree

import "fmt"

// assertValid panics when a mutation left the tree in an invalid state.
// Only compiled with the aatreedebug build tag.
func (m *Map[K, V]) assertValid(op string) {
	if err := m.Validate(); err != nil {
		panic(fmt.Sprintf("aatree: after %s: %v", op, err))
	}
}
