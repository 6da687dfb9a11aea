package export

import (
	"encoding/csv"
	"strconv"
	"strings"

	"github.com/elite3012/Multi-subject-Scheduler-Chatbot/internal/domain"
)

var csvHeader = []string{
	"Date", "Course ID", "Course Name", "Start Time", "End Time",
	"Duration (minutes)", "Priority", "Component", "Deadline", "Reason",
}

// CSV renders the schedule as spreadsheet-friendly CSV with one row per
// study block.
func CSV(schedule *domain.Schedule) (string, error) {
	var b strings.Builder
	w := csv.NewWriter(&b)

	if err := w.Write(csvHeader); err != nil {
		return "", err
	}

	for _, block := range schedule.Blocks {
		deadline := ""
		if block.Deadline != nil {
			deadline = block.Deadline.Format(domain.DateLayout)
		}
		record := []string{
			block.Date,
			block.CourseID,
			block.CourseName,
			block.StartTime,
			block.EndTime,
			strconv.Itoa(block.DurationMinutes),
			string(block.Priority),
			block.ComponentName,
			deadline,
			block.Reason,
		}
		if err := w.Write(record); err != nil {
			return "", err
		}
	}

	w.Flush()
	return b.String(), w.Error()
}
