package model

// Histogram tallies indent-diff votes per signature over a single scan.
// Keys are only ever added, never removed.
type Histogram map[Signature]int

// Vote records one occurrence of the given signature.
func (h Histogram) Vote(sig Signature) {
	h[sig]++
}

// Count returns the number of votes recorded for the given signature.
func (h Histogram) Count(sig Signature) int {
	return h[sig]
}

// Empty reports whether no votes were recorded at all.
func (h Histogram) Empty() bool {
	return len(h) == 0
}

// Winner returns the most voted signature and its vote count. Ties resolve
// to the signature with the lexicographically smallest rendering, keeping
// the result independent of map iteration order.
func (h Histogram) Winner() (Signature, int) {
	best := Unknown()
	bestVotes := -1

	for sig, votes := range h {
		if votes > bestVotes || (votes == bestVotes && sig.String() < best.String()) {
			best = sig
			bestVotes = votes
		}
	}

	if bestVotes < 0 {
		return Unknown(), 0
	}

	return best, bestVotes
}
