// Package aatree - an ordered map backed by an AA-tree, a balanced
// binary search tree that tracks balance with an integer level per node
// and repairs it with two rotations, skew and split.
//
// Note: a Map is not thread safe, so either access it only in a single
// go routine or use mutex/rwmutex to restrict access.
//
// Empty subtrees are represented by a per-map sentinel node of level 0
// whose children point back at itself, so the algorithms never test for
// nil children.
//
// Keys are ordered by their natural order (cmp.Compare). Building with
// the aatreedebug tag validates the whole tree after every mutation and
// panics on the first broken invariant.
package aatree
