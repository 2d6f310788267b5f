package aatree

import (
	"fmt"
	"io"
)

// to control the print routine
type branch int

const (
	rootBranch branch = iota
	leftBranch
	rightBranch
)

type printer struct {
	w         io.Writer
	printData bool
	err       error
}

// Fprint draws the tree on w, right subtrees above and left subtrees below
// their parent. Each node shows its key and level, plus its value when
// printData is set. It returns the depth of the tree and the first write
// error, if any.
func (m *Map[K, V]) Fprint(w io.Writer, printData bool) (int, error) {
	p := &printer{w: w, printData: printData}
	depth := printTree(p, m.root, "", rootBranch)
	return depth, p.err
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func printTree[K, V any](p *printer, n *node[K, V], prefix string, br branch) int {
	if n.isSentinel() {
		return 0
	}
	rd := 0
	ld := 0
	if !n.right.isSentinel() {
		t := "       "
		if br == leftBranch {
			t = "|      "
		}
		rd = printTree(p, n.right, prefix+t, rightBranch)
	}
	switch br {
	case rootBranch:
		p.printf("%s|------+ ", prefix)
	case leftBranch:
		p.printf("%s\\------+ ", prefix)
	case rightBranch:
		p.printf("%s/------+ ", prefix)
	}
	if p.printData {
		p.printf("%v → %v [%d]\n", n.key, n.value, n.level)
	} else {
		p.printf("%v [%d]\n", n.key, n.level)
	}
	if !n.left.isSentinel() {
		t := "       "
		if br == rightBranch {
			t = "|      "
		}
		ld = printTree(p, n.left, prefix+t, leftBranch)
	}
	return 1 + max(rd, ld)
}
