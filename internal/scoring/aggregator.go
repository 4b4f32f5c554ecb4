package scoring

import (
	"fmt"

	"github.com/google/uuid"
)

// Ball is one recorded delivery as seen by the aggregator. It carries the
// player names alongside the ids so summaries can be rendered without
// another lookup.
type Ball struct {
	Coordinate
	BatsmanID   uuid.UUID
	BatsmanName string
	BowlerID    uuid.UUID
	BowlerName  string
	Runs        int
	IsWicket    bool
}

// BatsmanStats accumulates a single batsman's figures across the log.
type BatsmanStats struct {
	PlayerID uuid.UUID `json:"player_id"`
	Name     string    `json:"name"`
	Runs     int       `json:"runs"`
	Fours    int       `json:"fours"`
	Sixes    int       `json:"sixes"`
}

// BowlerStats accumulates a single bowler's figures across the log.
// Overs is the dotted display form of Balls: completed overs, a dot, then
// the balls into the current over (12 balls -> "2.0", 13 -> "2.1").
type BowlerStats struct {
	PlayerID uuid.UUID `json:"player_id"`
	Name     string    `json:"name"`
	Balls    int       `json:"balls"`
	Runs     int       `json:"runs"`
	Wickets  int       `json:"wickets"`
	Overs    string    `json:"overs"`
}

// Summary is the full scorecard projection of a match's ball log.
type Summary struct {
	TotalRuns    int            `json:"total_runs"`
	TotalWickets int            `json:"total_wickets"`
	Batsmen      []BatsmanStats `json:"batsmen"`
	Bowlers      []BowlerStats  `json:"bowlers"`
}

// OversDisplay formats a ball count in dotted over notation.
func OversDisplay(balls int) string {
	return fmt.Sprintf("%d.%d", balls/BallsPerOver, balls%BallsPerOver)
}

// Aggregate computes the scorecard summary in a single pass over the log.
// Totals are order-independent; batsman and bowler entries are listed in
// order of first appearance. Stats are keyed by player id, so two players
// who share a name keep separate entries.
func Aggregate(balls []Ball) Summary {
	summary := Summary{
		Batsmen: []BatsmanStats{},
		Bowlers: []BowlerStats{},
	}
	batsmen := make(map[uuid.UUID]int)
	bowlers := make(map[uuid.UUID]int)

	for _, b := range balls {
		summary.TotalRuns += b.Runs
		if b.IsWicket {
			summary.TotalWickets++
		}

		bi, ok := batsmen[b.BatsmanID]
		if !ok {
			bi = len(summary.Batsmen)
			batsmen[b.BatsmanID] = bi
			summary.Batsmen = append(summary.Batsmen, BatsmanStats{
				PlayerID: b.BatsmanID,
				Name:     b.BatsmanName,
			})
		}
		bs := &summary.Batsmen[bi]
		bs.Runs += b.Runs
		if b.Runs == 4 {
			bs.Fours++
		}
		if b.Runs == 6 {
			bs.Sixes++
		}

		wi, ok := bowlers[b.BowlerID]
		if !ok {
			wi = len(summary.Bowlers)
			bowlers[b.BowlerID] = wi
			summary.Bowlers = append(summary.Bowlers, BowlerStats{
				PlayerID: b.BowlerID,
				Name:     b.BowlerName,
			})
		}
		bw := &summary.Bowlers[wi]
		bw.Balls++
		bw.Runs += b.Runs
		if b.IsWicket {
			bw.Wickets++
		}
	}

	for i := range summary.Bowlers {
		summary.Bowlers[i].Overs = OversDisplay(summary.Bowlers[i].Balls)
	}

	return summary
}
