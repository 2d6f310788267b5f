package aatree

import (
	"math/rand"
	"testing"
)

type distributionKind int

const (
	distUniform distributionKind = iota
	distAscending
	distZipf
)

func BenchmarkMapWorkloads(b *testing.B) {
	distributions := []struct {
		name string
		kind distributionKind
	}{
		{name: "Uniform", kind: distUniform},
		{name: "Ascending", kind: distAscending},
		{name: "Zipfian", kind: distZipf},
	}

	workloads := []struct {
		name         string
		writePercent int
	}{
		{name: "ReadMostly", writePercent: 5},
		{name: "WriteHeavy", writePercent: 90},
		{name: "Mixed", writePercent: 50},
	}

	const keyRange = 1 << 12

	for _, dist := range distributions {
		dist := dist
		b.Run(dist.name, func(b *testing.B) {
			for _, workload := range workloads {
				workload := workload
				b.Run(workload.name, func(b *testing.B) {
					m := New[int, int]()
					for i := 0; i < keyRange/2; i++ {
						_, _ = m.Put(i, i)
					}

					r := rand.New(rand.NewSource(1_000_003))
					var zipf *rand.Zipf
					if dist.kind == distZipf {
						zipf = rand.NewZipf(r, 1.2, 1, keyRange-1)
					}
					var ascendingCounter int

					skewsBefore, splitsBefore, _ := m.RebalanceStats()

					b.ResetTimer()
					for i := 0; i < b.N; i++ {
						var key int
						switch dist.kind {
						case distUniform:
							key = r.Intn(keyRange)
						case distAscending:
							key = ascendingCounter % keyRange
							ascendingCounter++
						case distZipf:
							key = int(zipf.Uint64())
						}

						opChoice := r.Intn(100)
						if opChoice < workload.writePercent {
							if r.Intn(2) == 0 {
								_, _ = m.Put(key, r.Intn(1<<16))
							} else {
								_, _ = m.Delete(key)
							}
						} else {
							if r.Intn(2) == 0 {
								_, _ = m.Get(key)
							} else {
								_ = m.Contains(key)
							}
						}
					}
					b.StopTimer()

					skewsAfter, splitsAfter, _ := m.RebalanceStats()
					rotations := (skewsAfter - skewsBefore) + (splitsAfter - splitsBefore)
					b.ReportMetric(float64(rotations)/float64(b.N), "rotations/op")
				})
			}
		})
	}
}

func BenchmarkMapPutAscending(b *testing.B) {
	m := New[int, int]()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		m.Put(i, i)
	}
}

func BenchmarkMapChurnReusesNodes(b *testing.B) {
	m := New[int, int]()
	for i := 0; i < 1024; i++ {
		m.Put(i, i)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		k := i % 1024
		m.Delete(k)
		m.Put(k, i)
	}
}

func BenchmarkMapInOrder(b *testing.B) {
	m := New[int, int]()
	for i := 0; i < 1<<12; i++ {
		m.Put(i, i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m.InOrder()
	}
}
