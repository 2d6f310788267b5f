package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/metailurini/aatree"
)

// Op is one step of a script.
type Op struct {
	Op    string `yaml:"op"`
	Key   *int   `yaml:"key"`
	Value *int   `yaml:"value"`
}

// Script is a sequence of operations run against a fresh Map[int, int].
type Script struct {
	Ops []Op `yaml:"ops"`
}

var errEmptyScript = errors.New("script has no ops")

// operations lists every op name and whether it needs a key and a value.
var operations = map[string]struct{ key, value bool }{
	"insert":    {key: true, value: true},
	"delete":    {key: true},
	"lookup":    {key: true},
	"inorder":   {},
	"preorder":  {},
	"postorder": {},
	"size":      {},
	"height":    {},
	"min":       {},
	"max":       {},
	"print":     {},
	"validate":  {},
	"clear":     {},
}

func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	return ParseScript(data)
}

// ParseScript decodes a YAML script and checks every op before anything runs.
func ParseScript(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(s.Ops) == 0 {
		return nil, errEmptyScript
	}
	for i, op := range s.Ops {
		want, ok := operations[op.Op]
		switch {
		case !ok:
			return nil, fmt.Errorf("op %d: unknown op %q", i, op.Op)
		case want.key && op.Key == nil:
			return nil, fmt.Errorf("op %d: %s needs a key", i, op.Op)
		case want.value && op.Value == nil:
			return nil, fmt.Errorf("op %d: %s needs a value", i, op.Op)
		}
	}
	return &s, nil
}

// Runner executes scripts against one map and reports every result on out.
type Runner struct {
	tree   *aatree.Map[int, int]
	out    io.Writer
	logger *log.Logger
}

func NewRunner(out io.Writer, logger *log.Logger) *Runner {
	return &Runner{
		tree:   aatree.New[int, int](),
		out:    out,
		logger: logger,
	}
}

func (r *Runner) Run(s *Script) error {
	for i, op := range s.Ops {
		if r.logger != nil {
			r.logger.Printf("op %d: %s", i, describe(op))
		}
		if err := r.apply(op); err != nil {
			return fmt.Errorf("op %d: %s: %w", i, op.Op, err)
		}
	}
	return nil
}

func (r *Runner) apply(op Op) error {
	switch op.Op {
	case "insert":
		if old, replaced := r.tree.Put(*op.Key, *op.Value); replaced {
			fmt.Fprintf(r.out, "insert %d=%d (replaced %d)\n", *op.Key, *op.Value, old)
		} else {
			fmt.Fprintf(r.out, "insert %d=%d\n", *op.Key, *op.Value)
		}
	case "delete":
		if old, ok := r.tree.Delete(*op.Key); ok {
			fmt.Fprintf(r.out, "delete %d: removed %d\n", *op.Key, old)
		} else {
			fmt.Fprintf(r.out, "delete %d: not found\n", *op.Key)
		}
	case "lookup":
		if v, ok := r.tree.Get(*op.Key); ok {
			fmt.Fprintf(r.out, "lookup %d: %d\n", *op.Key, v)
		} else {
			fmt.Fprintf(r.out, "lookup %d: not found\n", *op.Key)
		}
	case "inorder":
		fmt.Fprintf(r.out, "inorder: %v\n", r.tree.InOrder())
	case "preorder":
		fmt.Fprintf(r.out, "preorder: %v\n", r.tree.PreOrder())
	case "postorder":
		fmt.Fprintf(r.out, "postorder: %v\n", r.tree.PostOrder())
	case "size":
		fmt.Fprintf(r.out, "size: %d\n", r.tree.Size())
	case "height":
		fmt.Fprintf(r.out, "height: %d\n", r.tree.Height())
	case "min":
		if k, v, ok := r.tree.Min(); ok {
			fmt.Fprintf(r.out, "min: %d=%d\n", k, v)
		} else {
			fmt.Fprintln(r.out, "min: empty")
		}
	case "max":
		if k, v, ok := r.tree.Max(); ok {
			fmt.Fprintf(r.out, "max: %d=%d\n", k, v)
		} else {
			fmt.Fprintln(r.out, "max: empty")
		}
	case "print":
		if _, err := r.tree.Fprint(r.out, true); err != nil {
			return err
		}
	case "validate":
		if err := r.tree.Validate(); err != nil {
			return err
		}
		fmt.Fprintln(r.out, "validate: ok")
	case "clear":
		r.tree.Clear()
		fmt.Fprintln(r.out, "clear")
	default:
		return fmt.Errorf("unknown op %q", op.Op)
	}
	return nil
}

func describe(op Op) string {
	s := op.Op
	if op.Key != nil {
		s += fmt.Sprintf(" key=%d", *op.Key)
	}
	if op.Value != nil {
		s += fmt.Sprintf(" value=%d", *op.Value)
	}
	return s
}
