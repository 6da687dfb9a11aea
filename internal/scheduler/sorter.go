package scheduler

import (
	"sort"

	"github.com/elite3012/Multi-subject-Scheduler-Chatbot/internal/domain"
)

// SortCoursesByPriority returns the courses ordered HIGH > MEDIUM > LOW.
// The sort is stable: ties keep plan insertion order, which decides
// which course gets first pick of scarce capacity.
func SortCoursesByPriority(courses []domain.CourseSpec) []domain.CourseSpec {
	sorted := make([]domain.CourseSpec, len(courses))
	copy(sorted, courses)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Priority.Rank() > sorted[j].Priority.Rank()
	})
	return sorted
}
