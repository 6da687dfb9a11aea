package repository

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/elite3012/Multi-subject-Scheduler-Chatbot/internal/domain"
)

// timestampLayout formats generation timestamps in persisted payloads.
const timestampLayout = "2006-01-02T15:04:05"

// SchedulePayload is the JSON form of a schedule: dates as YYYY-MM-DD,
// times as HH:MM, generation timestamp as YYYY-MM-DDTHH:MM:SS.
type SchedulePayload struct {
	PlanName     string          `json:"planName"`
	GeneratedAt  string          `json:"generatedAt"`
	StartDate    string          `json:"startDate"`
	EndDate      string          `json:"endDate"`
	Blocks       []BlockPayload  `json:"blocks"`
	Score        ScorePayload    `json:"score"`
	Explanations []string        `json:"explanations"`
	Metadata     MetadataPayload `json:"metadata"`
}

type BlockPayload struct {
	CourseID        string `json:"courseId"`
	CourseName      string `json:"courseName"`
	Priority        string `json:"priority"`
	Date            string `json:"date"`
	StartTime       string `json:"startTime"`
	EndTime         string `json:"endTime"`
	DurationMinutes int    `json:"durationMinutes"`
	ComponentName   string `json:"componentName,omitempty"`
	Deadline        string `json:"deadline,omitempty"`
	Reason          string `json:"reason"`
}

type ScorePayload struct {
	OverallScore        float64            `json:"overallScore"`
	SpreadnessScore     float64            `json:"spreadnessScore"`
	BufferScore         float64            `json:"bufferScore"`
	InterleaveScore     float64            `json:"interleaveScore"`
	TotalScheduledHours float64            `json:"totalScheduledHours"`
	CourseHours         map[string]float64 `json:"courseHours"`
}

type MetadataPayload struct {
	TotalCourses        int     `json:"totalCourses"`
	TotalBlocks         int     `json:"totalBlocks"`
	TotalAvailableHours float64 `json:"totalAvailableHours"`
	CompletionRate      float64 `json:"completionRate"`
	UtilizationRate     float64 `json:"utilizationRate"`
	StudyPeriodDays     int     `json:"studyPeriodDays"`
}

// EncodeSchedule converts a schedule to its persisted payload form.
func EncodeSchedule(s *domain.Schedule) *SchedulePayload {
	payload := &SchedulePayload{
		PlanName:     s.PlanName,
		GeneratedAt:  s.GeneratedAt.Format(timestampLayout),
		StartDate:    s.StartDate.Format(domain.DateLayout),
		EndDate:      s.EndDate.Format(domain.DateLayout),
		Blocks:       make([]BlockPayload, 0, len(s.Blocks)),
		Explanations: s.Explanations,
		Score: ScorePayload{
			OverallScore:        s.Score.OverallScore,
			SpreadnessScore:     s.Score.SpreadnessScore,
			BufferScore:         s.Score.BufferScore,
			InterleaveScore:     s.Score.InterleaveScore,
			TotalScheduledHours: s.Score.TotalScheduledHours,
			CourseHours:         s.Score.CourseHours,
		},
		Metadata: MetadataPayload{
			TotalCourses:        s.Metadata.TotalCourses,
			TotalBlocks:         s.Metadata.TotalBlocks,
			TotalAvailableHours: s.Metadata.TotalAvailableHours,
			CompletionRate:      s.Metadata.CompletionRate,
			UtilizationRate:     s.Metadata.UtilizationRate,
			StudyPeriodDays:     s.Metadata.StudyPeriodDays,
		},
	}
	for _, b := range s.Blocks {
		bp := BlockPayload{
			CourseID:        b.CourseID,
			CourseName:      b.CourseName,
			Priority:        string(b.Priority),
			Date:            b.Date,
			StartTime:       b.StartTime,
			EndTime:         b.EndTime,
			DurationMinutes: b.DurationMinutes,
			ComponentName:   b.ComponentName,
			Reason:          b.Reason,
		}
		if b.Deadline != nil {
			bp.Deadline = b.Deadline.Format(domain.DateLayout)
		}
		payload.Blocks = append(payload.Blocks, bp)
	}
	return payload
}

// DecodeSchedule rebuilds a schedule from its persisted payload form.
// The score is recalculated from the decoded blocks rather than trusted
// from the payload.
func DecodeSchedule(payload *SchedulePayload) (*domain.Schedule, error) {
	start, err := time.Parse(domain.DateLayout, payload.StartDate)
	if err != nil {
		return nil, fmt.Errorf("parsing start date: %w", err)
	}
	end, err := time.Parse(domain.DateLayout, payload.EndDate)
	if err != nil {
		return nil, fmt.Errorf("parsing end date: %w", err)
	}

	s := domain.NewSchedule(payload.PlanName, start, end)
	if t, err := time.Parse(timestampLayout, payload.GeneratedAt); err == nil {
		s.GeneratedAt = t
	}
	s.Explanations = payload.Explanations
	s.Metadata = domain.ScheduleMetadata{
		TotalCourses:        payload.Metadata.TotalCourses,
		TotalBlocks:         payload.Metadata.TotalBlocks,
		TotalAvailableHours: payload.Metadata.TotalAvailableHours,
		CompletionRate:      payload.Metadata.CompletionRate,
		UtilizationRate:     payload.Metadata.UtilizationRate,
		StudyPeriodDays:     payload.Metadata.StudyPeriodDays,
	}

	for _, bp := range payload.Blocks {
		block := domain.ScheduledBlock{
			CourseID:        bp.CourseID,
			CourseName:      bp.CourseName,
			Priority:        domain.Priority(bp.Priority),
			Date:            bp.Date,
			StartTime:       bp.StartTime,
			EndTime:         bp.EndTime,
			DurationMinutes: bp.DurationMinutes,
			ComponentName:   bp.ComponentName,
			Reason:          bp.Reason,
		}
		if bp.Deadline != "" {
			deadline, err := time.Parse(domain.DateLayout, bp.Deadline)
			if err != nil {
				return nil, fmt.Errorf("parsing deadline for block %s: %w", bp.CourseID, err)
			}
			block.Deadline = &deadline
		}
		s.Blocks = append(s.Blocks, block)
	}
	s.Recalculate()
	return s, nil
}

// MarshalSchedule renders the schedule payload as indented JSON.
func MarshalSchedule(s *domain.Schedule) ([]byte, error) {
	data, err := json.MarshalIndent(EncodeSchedule(s), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding schedule: %w", err)
	}
	return data, nil
}

// UnmarshalSchedule parses a schedule payload from JSON.
func UnmarshalSchedule(data []byte) (*domain.Schedule, error) {
	var payload SchedulePayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("parsing schedule payload: %w", err)
	}
	return DecodeSchedule(&payload)
}

// SaveScheduleFile writes the schedule payload to a JSON file.
func SaveScheduleFile(path string, s *domain.Schedule) error {
	data, err := MarshalSchedule(s)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing schedule file: %w", err)
	}
	return nil
}

// LoadScheduleFile reads a schedule payload from a JSON file.
func LoadScheduleFile(path string) (*domain.Schedule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return UnmarshalSchedule(data)
}
