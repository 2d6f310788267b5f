package aatree

// Test hooks (kept separate so instrumentation doesn't clutter logic).
// They receive the subtree root right after it has been rebalanced.
var (
	putUnwindHook    func(n any)
	deleteUnwindHook func(n any)
)
