package service

import "sync/atomic"

// queryGuard serializes overlapping queries on one surface with a
// latest-request-wins policy. Responses are the only suspension points, so a
// slow response for a superseded request must be discarded rather than
// rendered over a newer result.
type queryGuard struct {
	seq atomic.Uint64
}

// begin registers a new query and returns its sequence number.
func (g *queryGuard) begin() uint64 {
	return g.seq.Add(1)
}

// latest reports whether seq still identifies the most recent query.
func (g *queryGuard) latest(seq uint64) bool {
	return g.seq.Load() == seq
}
