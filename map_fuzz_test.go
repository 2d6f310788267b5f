package aatree

import (
	"testing"
)

type fuzzOp struct {
	typ byte
	key int
	val int
}

func FuzzMapMatchesModel(f *testing.F) {
	f.Add([]byte{0, 1, 1, 0, 2, 2})
	f.Add([]byte{1, 2, 3, 2, 2, 4})
	f.Add([]byte{2, 3, 5, 0, 3, 7})
	f.Add([]byte{0, 1, 1, 0, 2, 2, 0, 3, 3, 0, 4, 4, 2, 2, 0, 2, 1, 0})

	f.Fuzz(func(t *testing.T, input []byte) {
		const maxOps = 256
		ops := decodeFuzzOps(input, maxOps)
		if len(ops) == 0 {
			t.Skip()
		}

		m := New[int, int]()
		model := make(map[int]int)

		for i, op := range ops {
			switch op.typ {
			case 0: // Put
				old, replaced := m.Put(op.key, op.val)
				prev, present := model[op.key]
				if replaced != present || (present && old != prev) {
					t.Fatalf("op %d put(%d): got (%d, %t), model (%d, %t)", i, op.key, old, replaced, prev, present)
				}
				model[op.key] = op.val
			case 1: // Get
				got, ok := m.Get(op.key)
				want, present := model[op.key]
				if ok != present || got != want {
					t.Fatalf("op %d get(%d): got (%d, %t), model (%d, %t)", i, op.key, got, ok, want, present)
				}
			case 2: // Delete
				old, deleted := m.Delete(op.key)
				prev, present := model[op.key]
				if deleted != present || (present && old != prev) {
					t.Fatalf("op %d delete(%d): got (%d, %t), model (%d, %t)", i, op.key, old, deleted, prev, present)
				}
				delete(model, op.key)
			}

			if err := m.Validate(); err != nil {
				t.Fatalf("op %d: %v", i, err)
			}
		}

		assertMatchesModel(t, m, model)
	})
}

func decodeFuzzOps(input []byte, maxOps int) []fuzzOp {
	if maxOps <= 0 {
		return nil
	}
	ops := make([]fuzzOp, 0, maxOps)
	for i := 0; i+2 < len(input) && len(ops) < maxOps; i += 3 {
		typ := input[i] % 3
		key := int(input[i+1] % 64)
		val := int(int8(input[i+2]))
		ops = append(ops, fuzzOp{typ: typ, key: key, val: val})
	}
	return ops
}
