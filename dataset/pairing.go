package dataset

// slashCycle hands out slash sample keys round-robin. The pool is the
// ascending key union of the slash group's members on one partition side;
// the cursor advances only when a record asks, so the i-th negated record of
// a build receives pool[i mod len(pool)] regardless of how non-negated
// records interleave.
type slashCycle struct {
	pool []uint64
	next int
}

// newSlashCycle wraps an already-sorted pool.
func newSlashCycle(pool []uint64) *slashCycle {
	return &slashCycle{pool: pool}
}

// empty reports whether the cycle has no keys to hand out.
func (c *slashCycle) empty() bool { return len(c.pool) == 0 }

// take returns the next slash key and advances the cursor.
func (c *slashCycle) take() uint64 {
	key := c.pool[c.next]
	c.next = (c.next + 1) % len(c.pool)
	return key
}
