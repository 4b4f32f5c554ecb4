// Package scoring contains the pure match-scoring computations: the ball
// sequencer that assigns (over, ball) coordinates to deliveries, and the
// aggregator that projects a match's ball log into a scorecard summary.
package scoring

// Coordinate identifies a delivery's position in a match's sequence.
// Over and Ball are both 1-based; Ball is always in 1..6.
type Coordinate struct {
	Over int `json:"over"`
	Ball int `json:"ball"`
}

// BallsPerOver is the number of legal deliveries in an over.
const BallsPerOver = 6

// Less reports whether c precedes other in delivery order.
func (c Coordinate) Less(other Coordinate) bool {
	if c.Over != other.Over {
		return c.Over < other.Over
	}
	return c.Ball < other.Ball
}

// Next computes the coordinate that follows last. A nil last means no
// deliveries have been recorded yet and the sequence starts at (1, 1).
// Ball 6 rolls over to the first ball of the next over. The match's
// configured overs limit is deliberately not consulted here: the sequence
// continues past the nominal match length.
func Next(last *Coordinate) Coordinate {
	if last == nil {
		return Coordinate{Over: 1, Ball: 1}
	}
	if last.Ball < BallsPerOver {
		return Coordinate{Over: last.Over, Ball: last.Ball + 1}
	}
	return Coordinate{Over: last.Over + 1, Ball: 1}
}

// NextFromLog computes the next coordinate from an unordered log snapshot
// by first locating the maximum recorded coordinate.
func NextFromLog(log []Coordinate) Coordinate {
	if len(log) == 0 {
		return Next(nil)
	}
	last := log[0]
	for _, c := range log[1:] {
		if last.Less(c) {
			last = c
		}
	}
	return Next(&last)
}
