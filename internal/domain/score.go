package domain

import (
	"math"
	"time"
)

// Recalculate rebuilds the schedule score from the current block list.
// It runs after every block mutation so Score never drifts from Blocks.
// An empty schedule scores zero on every dimension.
func (s *Schedule) Recalculate() {
	if len(s.Blocks) == 0 {
		s.Score = ScheduleScore{CourseHours: map[string]float64{}}
		return
	}

	score := ScheduleScore{
		TotalScheduledHours: s.TotalScheduledHours(),
		CourseHours:         make(map[string]float64),
	}
	for _, id := range s.CourseIDs() {
		score.CourseHours[id] = s.HoursForCourse(id)
	}

	score.SpreadnessScore = s.spreadnessScore()
	score.BufferScore = s.bufferScore()
	score.InterleaveScore = s.interleaveScore()
	score.OverallScore = clampScore((score.SpreadnessScore + score.BufferScore + score.InterleaveScore) / 3.0)

	s.Score = score
}

// spreadnessScore rewards even distribution of hours across days. A low
// standard deviation of daily hours scores high; everything on one day
// is neutral.
func (s *Schedule) spreadnessScore() float64 {
	daily := make(map[string]float64)
	for _, b := range s.Blocks {
		daily[b.Date] += b.DurationHours()
	}
	if len(daily) <= 1 {
		return 50.0
	}

	var mean float64
	for _, h := range daily {
		mean += h
	}
	mean /= float64(len(daily))

	var variance float64
	for _, h := range daily {
		variance += (h - mean) * (h - mean)
	}
	variance /= float64(len(daily))

	return clampScore(100.0 - math.Sqrt(variance)*25.0)
}

// bufferScore is the percentage of blocks sitting more than one day
// before their deadline. Blocks without a deadline always count as
// buffered.
func (s *Schedule) bufferScore() float64 {
	buffered := 0
	for _, b := range s.Blocks {
		if b.Deadline == nil {
			buffered++
			continue
		}
		date, err := time.Parse(DateLayout, b.Date)
		if err != nil {
			continue
		}
		if date.Before(b.Deadline.AddDate(0, 0, -1)) {
			buffered++
		}
	}
	return clampScore(float64(buffered) * 100.0 / float64(len(s.Blocks)))
}

// interleaveScore is the fraction of adjacent block pairs that switch
// course, neutral when there is nothing to interleave.
func (s *Schedule) interleaveScore() float64 {
	if len(s.Blocks) <= 1 || len(s.CourseIDs()) <= 1 {
		return 50.0
	}
	transitions := 0
	for i := 1; i < len(s.Blocks); i++ {
		if s.Blocks[i].CourseID != s.Blocks[i-1].CourseID {
			transitions++
		}
	}
	return clampScore(float64(transitions) * 100.0 / float64(len(s.Blocks)-1))
}

func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
