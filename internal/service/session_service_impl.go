package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/elite3012/Multi-subject-Scheduler-Chatbot/internal/contract"
	"github.com/elite3012/Multi-subject-Scheduler-Chatbot/internal/domain"
	"github.com/elite3012/Multi-subject-Scheduler-Chatbot/internal/parser"
	"github.com/elite3012/Multi-subject-Scheduler-Chatbot/internal/repository"
	"github.com/elite3012/Multi-subject-Scheduler-Chatbot/internal/scheduler"
)

type sessionService struct {
	plan      *domain.PlanSpec
	schedule  *domain.Schedule
	schedules repository.ScheduleRepo
	history   repository.HistoryRepo
}

// NewSessionService creates a session with an empty plan.
func NewSessionService(schedules repository.ScheduleRepo, history repository.HistoryRepo) SessionService {
	return &sessionService{
		plan:      domain.NewPlanSpec(),
		schedules: schedules,
		history:   history,
	}
}

func (s *sessionService) CurrentPlan() *domain.PlanSpec {
	return s.plan
}

func (s *sessionService) CurrentSchedule() *domain.Schedule {
	return s.schedule
}

func (s *sessionService) Execute(ctx context.Context, commandText string) (*contract.CommandResult, error) {
	cmd, err := parser.Parse(commandText)
	if err != nil {
		return nil, err
	}

	// Every command except the history read lands in the log.
	if cmd.Kind != parser.KindShowHistory {
		entry := domain.HistoryEntry{
			EnteredAt: time.Now(),
			Command:   commandText,
			Kind:      string(cmd.Kind),
		}
		if err := s.history.Append(ctx, entry); err != nil {
			return nil, err
		}
	}

	switch cmd.Kind {
	case parser.KindAddSubject:
		return s.execAddSubject(cmd), nil
	case parser.KindSetAvailability:
		return s.execSetAvailability(cmd), nil
	case parser.KindGenerateSchedule:
		return s.execGenerate(ctx)
	case parser.KindShowSchedule:
		return s.execShowSchedule(), nil
	case parser.KindListSubjects:
		return s.execListSubjects(), nil
	case parser.KindListAvailability:
		return s.execListAvailability(), nil
	case parser.KindDeleteSubject:
		return s.execDeleteSubject(cmd), nil
	case parser.KindUpdateSubjectHours:
		return s.execUpdateHours(cmd), nil
	case parser.KindUpdateSubjectPriority:
		return s.execUpdatePriority(cmd), nil
	case parser.KindClearAll:
		return s.execClearAll(ctx)
	case parser.KindClearSubjects:
		s.plan.ClearCourses()
		return contract.Success(string(cmd.Kind), "All subjects cleared"), nil
	case parser.KindClearSchedule:
		s.schedule = nil
		return contract.Success(string(cmd.Kind), "Current schedule cleared"), nil
	case parser.KindShowHistory:
		return s.execShowHistory(ctx)
	case parser.KindLoadSchedule:
		return s.execLoadSchedule(ctx, cmd)
	default:
		return contract.Failure(string(cmd.Kind), fmt.Sprintf("Unsupported command kind %s", cmd.Kind)), nil
	}
}

func (s *sessionService) execAddSubject(cmd *parser.Command) *contract.CommandResult {
	s.plan.AddCourse(*cmd.Course)
	return contract.Success(string(cmd.Kind),
		fmt.Sprintf("Added subject %q (%.0f hours, priority %s)",
			cmd.Course.ID, cmd.Course.WorkloadHours, cmd.Course.Priority))
}

func (s *sessionService) execSetAvailability(cmd *parser.Command) *contract.CommandResult {
	s.plan.SetAvailability(cmd.Date, cmd.Capacity)
	return contract.Success(string(cmd.Kind),
		fmt.Sprintf("Availability on %s set to %.1f hours", cmd.Date, cmd.Capacity))
}

func (s *sessionService) execGenerate(ctx context.Context) (*contract.CommandResult, error) {
	kind := string(parser.KindGenerateSchedule)

	if len(s.plan.Courses) == 0 && len(s.plan.Availability) == 0 {
		return contract.Failure(kind, "No plan specified"), nil
	}

	if errs := s.plan.Validate(); len(errs) > 0 {
		result := contract.Failure(kind, "Plan validation failed")
		result.ValidationErrors = errs
		return result, nil
	}

	schedule := scheduler.Generate(s.plan)
	s.schedule = schedule

	handle, err := s.schedules.Save(ctx, schedule)
	if err != nil {
		return nil, fmt.Errorf("saving schedule: %w", err)
	}

	result := contract.Success(kind, fmt.Sprintf("Schedule generated and saved as %s", handle))
	result.Schedule = schedule
	result.SavedTo = handle
	return result, nil
}

func (s *sessionService) execShowSchedule() *contract.CommandResult {
	kind := string(parser.KindShowSchedule)
	if s.schedule == nil {
		return contract.Failure(kind, "No schedule generated yet")
	}
	result := contract.Success(kind, "")
	result.Schedule = s.schedule
	return result
}

func (s *sessionService) execListSubjects() *contract.CommandResult {
	result := contract.Success(string(parser.KindListSubjects), "")
	result.Courses = make([]domain.CourseSpec, len(s.plan.Courses))
	copy(result.Courses, s.plan.Courses)
	return result
}

func (s *sessionService) execListAvailability() *contract.CommandResult {
	result := contract.Success(string(parser.KindListAvailability), "")
	dates := s.plan.AvailabilityDates()
	sort.Strings(dates)
	result.Availability = make([]contract.AvailabilityEntry, 0, len(dates))
	for _, d := range dates {
		result.Availability = append(result.Availability, contract.AvailabilityEntry{
			Date:  d,
			Hours: s.plan.AvailabilityOn(d),
		})
	}
	return result
}

func (s *sessionService) execDeleteSubject(cmd *parser.Command) *contract.CommandResult {
	kind := string(cmd.Kind)
	if !s.plan.RemoveCourse(cmd.TargetSubject) {
		return contract.Failure(kind, fmt.Sprintf("Subject %q not found", cmd.TargetSubject))
	}
	return contract.Success(kind, fmt.Sprintf("Deleted subject %q", cmd.TargetSubject))
}

func (s *sessionService) execUpdateHours(cmd *parser.Command) *contract.CommandResult {
	kind := string(cmd.Kind)
	course := s.plan.Course(cmd.TargetSubject)
	if course == nil {
		return contract.Failure(kind, fmt.Sprintf("Subject %q not found", cmd.TargetSubject))
	}
	course.WorkloadHours = cmd.Hours
	return contract.Success(kind,
		fmt.Sprintf("Updated subject %q to %.0f hours", cmd.TargetSubject, cmd.Hours))
}

func (s *sessionService) execUpdatePriority(cmd *parser.Command) *contract.CommandResult {
	kind := string(cmd.Kind)
	course := s.plan.Course(cmd.TargetSubject)
	if course == nil {
		return contract.Failure(kind, fmt.Sprintf("Subject %q not found", cmd.TargetSubject))
	}
	course.Priority = cmd.Priority
	return contract.Success(kind,
		fmt.Sprintf("Updated subject %q to priority %s", cmd.TargetSubject, cmd.Priority))
}

func (s *sessionService) execClearAll(ctx context.Context) (*contract.CommandResult, error) {
	s.plan.Clear()
	s.schedule = nil
	if err := s.history.Clear(ctx); err != nil {
		return nil, err
	}
	return contract.Success(string(parser.KindClearAll), "Plan, schedule and history cleared"), nil
}

func (s *sessionService) execShowHistory(ctx context.Context) (*contract.CommandResult, error) {
	entries, err := s.history.List(ctx)
	if err != nil {
		return nil, err
	}
	result := contract.Success(string(parser.KindShowHistory), "")
	if entries == nil {
		entries = []domain.HistoryEntry{}
	}
	result.History = entries
	return result, nil
}

// execLoadSchedule resolves the argument as a JSON payload file when it
// names an existing file, otherwise as a saved-schedule handle.
func (s *sessionService) execLoadSchedule(ctx context.Context, cmd *parser.Command) (*contract.CommandResult, error) {
	kind := string(cmd.Kind)

	var schedule *domain.Schedule
	if _, statErr := os.Stat(cmd.Path); statErr == nil {
		loaded, err := repository.LoadScheduleFile(cmd.Path)
		if err != nil {
			return contract.Failure(kind, fmt.Sprintf("Failed to load schedule: %v", err)), nil
		}
		schedule = loaded
	} else {
		loaded, err := s.schedules.GetByID(ctx, cmd.Path)
		if errors.Is(err, repository.ErrNotFound) {
			return contract.Failure(kind, fmt.Sprintf("No schedule found at %q", cmd.Path)), nil
		}
		if err != nil {
			return nil, err
		}
		schedule = loaded
	}

	s.schedule = schedule
	result := contract.Success(kind, "Schedule loaded successfully")
	result.Schedule = schedule
	return result, nil
}
