package aatree

// Metrics counts the rebalancing work done by a Map. The counters are plain
// integers because a Map has a single writer.
type Metrics struct {
	skews     int64
	splits    int64
	demotions int64
}

func newMetrics() *Metrics {
	return &Metrics{}
}

func (m *Metrics) IncSkew() {
	m.skews++
}

func (m *Metrics) IncSplit() {
	m.splits++
}

func (m *Metrics) IncDemotion() {
	m.demotions++
}

func (m *Metrics) RebalanceStats() (skews, splits, demotions int64) {
	return m.skews, m.splits, m.demotions
}
