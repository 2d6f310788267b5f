//go:build !aatreedebug

package aatree

func (m *Map[K, V]) assertValid(string) {}
