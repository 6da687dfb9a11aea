package domain

import (
	"fmt"
	"strings"
)

// Priority ranks a course for scheduling. Higher priorities are placed
// first and carry a larger share of their workload into the first half
// of the planning horizon.
type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
)

// priorityWeights feed the interleave-oriented scoring only.
var priorityWeights = map[Priority]float64{
	PriorityLow:    1.0,
	PriorityMedium: 1.2,
	PriorityHigh:   1.5,
}

// frontLoadRatios give the fraction of a course's workload that belongs
// in the first half of the horizon.
var frontLoadRatios = map[Priority]float64{
	PriorityLow:    0.40,
	PriorityMedium: 0.50,
	PriorityHigh:   0.60,
}

// priorityRanks order priorities for sorting (higher rank first).
var priorityRanks = map[Priority]int{
	PriorityLow:    0,
	PriorityMedium: 1,
	PriorityHigh:   2,
}

// Weight returns the scoring weight for the priority tier.
func (p Priority) Weight() float64 {
	return priorityWeights[p]
}

// FrontLoadRatio returns the first-half workload fraction for the tier.
// Unset priorities fall back to an even split.
func (p Priority) FrontLoadRatio() float64 {
	if r, ok := frontLoadRatios[p]; ok {
		return r
	}
	return 0.5
}

// Rank returns the sort rank of the priority (HIGH highest).
func (p Priority) Rank() int {
	return priorityRanks[p]
}

// UnknownPriorityError reports a priority token that matches no tier.
type UnknownPriorityError struct {
	Value string
}

func (e *UnknownPriorityError) Error() string {
	return fmt.Sprintf("unknown priority %q: valid values are HIGH, MEDIUM, MED, LOW", e.Value)
}

// PriorityFromString parses a priority name case-insensitively.
// "MED" is accepted as an alias for MEDIUM.
func PriorityFromString(s string) (Priority, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "HIGH":
		return PriorityHigh, nil
	case "MEDIUM", "MED":
		return PriorityMedium, nil
	case "LOW":
		return PriorityLow, nil
	default:
		return "", &UnknownPriorityError{Value: s}
	}
}
