package solver

import "sync"

// barrier is a cyclic rendezvous point for a fixed number of parties.
// Await blocks until every party has arrived, releases them all together,
// then re-arms for the next cycle. Release of generation g happens-before
// any party's return from Await in generation g, which is what makes the
// grid's read-during-relax / write-during-commit split race-free.
type barrier struct {
	mu      sync.Mutex
	cond    *sync.Cond
	parties int
	arrived int
	gen     uint64
}

// newBarrier creates a barrier for parties participants. parties must be
// positive; this is a programmer error, not a user-facing condition.
func newBarrier(parties int) *barrier {
	b := &barrier{parties: parties}
	b.cond = sync.NewCond(&b.mu)

	return b
}

// Await blocks the caller until all parties have arrived, then releases the
// whole generation. The last arrival re-arms the barrier before waking the
// others, so back-to-back cycles cannot mix generations.
func (b *barrier) Await() {
	b.mu.Lock()
	gen := b.gen
	b.arrived++
	if b.arrived == b.parties {
		b.arrived = 0
		b.gen++
		b.cond.Broadcast()
		b.mu.Unlock()

		return
	}
	for gen == b.gen {
		b.cond.Wait()
	}
	b.mu.Unlock()
}
