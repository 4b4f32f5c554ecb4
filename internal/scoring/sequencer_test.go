package scoring_test

import (
	"testing"

	"cricket-scoring/internal/scoring"

	"github.com/stretchr/testify/assert"
)

func TestNext(t *testing.T) {
	testCases := []struct {
		name     string
		last     *scoring.Coordinate
		expected scoring.Coordinate
	}{
		{
			name:     "Empty log starts at first ball of first over",
			last:     nil,
			expected: scoring.Coordinate{Over: 1, Ball: 1},
		},
		{
			name:     "Mid-over increments the ball",
			last:     &scoring.Coordinate{Over: 1, Ball: 1},
			expected: scoring.Coordinate{Over: 1, Ball: 2},
		},
		{
			name:     "Fifth ball advances to sixth",
			last:     &scoring.Coordinate{Over: 3, Ball: 5},
			expected: scoring.Coordinate{Over: 3, Ball: 6},
		},
		{
			name:     "Sixth ball rolls over to next over",
			last:     &scoring.Coordinate{Over: 1, Ball: 6},
			expected: scoring.Coordinate{Over: 2, Ball: 1},
		},
		{
			name:     "Rollover works deep into the match",
			last:     &scoring.Coordinate{Over: 19, Ball: 6},
			expected: scoring.Coordinate{Over: 20, Ball: 1},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, scoring.Next(tc.last))
		})
	}
}

func TestNextFromLog(t *testing.T) {
	testCases := []struct {
		name     string
		log      []scoring.Coordinate
		expected scoring.Coordinate
	}{
		{
			name:     "Empty log",
			log:      nil,
			expected: scoring.Coordinate{Over: 1, Ball: 1},
		},
		{
			name: "Ordered log ending mid-over",
			log: []scoring.Coordinate{
				{Over: 1, Ball: 1}, {Over: 1, Ball: 2}, {Over: 1, Ball: 3},
			},
			expected: scoring.Coordinate{Over: 1, Ball: 4},
		},
		{
			name: "Full over rolls to the next one",
			log: []scoring.Coordinate{
				{Over: 1, Ball: 1}, {Over: 1, Ball: 2}, {Over: 1, Ball: 3},
				{Over: 1, Ball: 4}, {Over: 1, Ball: 5}, {Over: 1, Ball: 6},
			},
			expected: scoring.Coordinate{Over: 2, Ball: 1},
		},
		{
			name: "Unordered snapshot still finds the maximum",
			log: []scoring.Coordinate{
				{Over: 2, Ball: 3}, {Over: 1, Ball: 6}, {Over: 2, Ball: 1},
			},
			expected: scoring.Coordinate{Over: 2, Ball: 4},
		},
		{
			name: "Over takes precedence over ball",
			log: []scoring.Coordinate{
				{Over: 1, Ball: 6}, {Over: 2, Ball: 1},
			},
			expected: scoring.Coordinate{Over: 2, Ball: 2},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, scoring.NextFromLog(tc.log))
		})
	}
}

func TestCoordinateLess(t *testing.T) {
	assert.True(t, scoring.Coordinate{Over: 1, Ball: 6}.Less(scoring.Coordinate{Over: 2, Ball: 1}))
	assert.True(t, scoring.Coordinate{Over: 2, Ball: 1}.Less(scoring.Coordinate{Over: 2, Ball: 2}))
	assert.False(t, scoring.Coordinate{Over: 2, Ball: 1}.Less(scoring.Coordinate{Over: 1, Ball: 6}))
	assert.False(t, scoring.Coordinate{Over: 1, Ball: 1}.Less(scoring.Coordinate{Over: 1, Ball: 1}))
}
