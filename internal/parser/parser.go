// Package parser converts one line of DSL text into a structured
// command fragment. Parsing is stateless: each call is independent and
// never touches plan state, validation or scheduling.
package parser

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/elite3012/Multi-subject-Scheduler-Chatbot/internal/domain"
)

// Kind tags the command recognized from one line of DSL text.
type Kind string

const (
	KindAddSubject            Kind = "ADD_SUBJECT"
	KindSetAvailability       Kind = "SET_AVAILABILITY"
	KindGenerateSchedule      Kind = "GENERATE_SCHEDULE"
	KindShowSchedule          Kind = "SHOW_SCHEDULE"
	KindListSubjects          Kind = "LIST_SUBJECTS"
	KindListAvailability      Kind = "LIST_AVAILABILITY"
	KindDeleteSubject         Kind = "DELETE_SUBJECT"
	KindUpdateSubjectHours    Kind = "UPDATE_SUBJECT_HOURS"
	KindUpdateSubjectPriority Kind = "UPDATE_SUBJECT_PRIORITY"
	KindClearAll              Kind = "CLEAR_ALL"
	KindClearSubjects         Kind = "CLEAR_SUBJECTS"
	KindClearSchedule         Kind = "CLEAR_SCHEDULE"
	KindShowHistory           Kind = "SHOW_HISTORY"
	KindLoadSchedule          Kind = "LOAD_SCHEDULE"
)

// Command is the IR fragment produced from one DSL line. Only the
// fields introduced by the recognized command are populated; merging
// into the running plan is the session orchestrator's job.
type Command struct {
	Kind Kind

	// ADD_SUBJECT
	Course *domain.CourseSpec

	// SET_AVAILABILITY
	Date     string // DateLayout form
	Capacity float64

	// DELETE_SUBJECT / UPDATE_SUBJECT_*
	TargetSubject string
	Hours         float64
	Priority      domain.Priority

	// LOAD_SCHEDULE
	Path string
}

// Parse recognizes one DSL command line. It returns an
// *EmptyCommandError for blank input, a *SyntaxError for text that does
// not match the grammar and a *SemanticError for locally invalid data.
func Parse(text string) (*Command, error) {
	if strings.TrimSpace(text) == "" {
		return nil, &EmptyCommandError{}
	}

	tokens, err := lex(text)
	if err != nil {
		return nil, err
	}

	p := &commandParser{tokens: tokens}
	cmd, err := p.parseCommand()
	if err != nil {
		return nil, err
	}
	if tok := p.peek(); tok.kind != tokenEOF {
		return nil, p.unexpected(tok, "unexpected trailing input")
	}
	return cmd, nil
}

type commandParser struct {
	tokens []token
	pos    int
}

func (p *commandParser) peek() token {
	return p.tokens[p.pos]
}

func (p *commandParser) next() token {
	tok := p.tokens[p.pos]
	if tok.kind != tokenEOF {
		p.pos++
	}
	return tok
}

func (p *commandParser) unexpected(tok token, msg string) *SyntaxError {
	display := tok.text
	if tok.kind == tokenEOF {
		display = "<end of command>"
	}
	return &SyntaxError{Line: tok.line, Column: tok.column, Token: display, Message: msg}
}

// expectKeyword consumes one word token matching the given keyword
// case-insensitively.
func (p *commandParser) expectKeyword(keyword string) error {
	tok := p.next()
	if tok.kind != tokenWord || !strings.EqualFold(tok.text, keyword) {
		return p.unexpected(tok, "expected keyword "+strconv.Quote(keyword))
	}
	return nil
}

// expectString consumes one quoted-string token.
func (p *commandParser) expectString(what string) (string, error) {
	tok := p.next()
	if tok.kind != tokenString {
		return "", p.unexpected(tok, "expected quoted "+what)
	}
	return tok.text, nil
}

// expectWord consumes one bare word token.
func (p *commandParser) expectWord(what string) (token, error) {
	tok := p.next()
	if tok.kind != tokenWord {
		return tok, p.unexpected(tok, "expected "+what)
	}
	return tok, nil
}

func (p *commandParser) parseCommand() (*Command, error) {
	tok := p.next()
	if tok.kind != tokenWord {
		return nil, p.unexpected(tok, "expected a command keyword")
	}

	switch strings.ToLower(tok.text) {
	case "add":
		return p.parseAddSubject()
	case "set":
		return p.parseSetAvailability()
	case "generate":
		if err := p.expectKeyword("schedule"); err != nil {
			return nil, err
		}
		return &Command{Kind: KindGenerateSchedule}, nil
	case "show":
		return p.parseShow()
	case "list":
		return p.parseList()
	case "delete":
		return p.parseDeleteSubject()
	case "update":
		return p.parseUpdateSubject()
	case "clear":
		return p.parseClear()
	case "load":
		return p.parseLoadSchedule()
	default:
		return nil, p.unexpected(tok, "unknown command")
	}
}

// add subject "<name>" hours <int> priority <P>
func (p *commandParser) parseAddSubject() (*Command, error) {
	if err := p.expectKeyword("subject"); err != nil {
		return nil, err
	}
	name, err := p.expectString("subject name")
	if err != nil {
		return nil, err
	}
	if err := p.expectKeyword("hours"); err != nil {
		return nil, err
	}
	hours, err := p.parseIntArg("hours")
	if err != nil {
		return nil, err
	}
	if err := p.expectKeyword("priority"); err != nil {
		return nil, err
	}
	priority, err := p.parsePriorityArg()
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(name) == "" {
		return nil, semanticf("subject name cannot be empty")
	}
	if hours <= 0 {
		return nil, semanticf("hours must be positive, got: %d", hours)
	}

	return &Command{
		Kind: KindAddSubject,
		Course: &domain.CourseSpec{
			ID:            name,
			Priority:      priority,
			WorkloadHours: float64(hours),
		},
	}, nil
}

// set availability on <date> capacity <number> hours
func (p *commandParser) parseSetAvailability() (*Command, error) {
	if err := p.expectKeyword("availability"); err != nil {
		return nil, err
	}
	if err := p.expectKeyword("on"); err != nil {
		return nil, err
	}
	dateTok, err := p.expectWord("a date")
	if err != nil {
		return nil, err
	}
	if err := p.expectKeyword("capacity"); err != nil {
		return nil, err
	}
	capTok, err := p.expectWord("a capacity number")
	if err != nil {
		return nil, err
	}
	if err := p.expectKeyword("hours"); err != nil {
		return nil, err
	}

	date, err := ParseDate(dateTok.text)
	if err != nil {
		return nil, err
	}
	capacity, err := strconv.ParseFloat(capTok.text, 64)
	if err != nil {
		return nil, semanticf("invalid number format for capacity: %s", capTok.text)
	}
	if capacity <= 0 {
		return nil, semanticf("capacity must be positive, got: %g", capacity)
	}

	return &Command{
		Kind:     KindSetAvailability,
		Date:     date.Format(domain.DateLayout),
		Capacity: capacity,
	}, nil
}

// show schedule | show history
func (p *commandParser) parseShow() (*Command, error) {
	tok, err := p.expectWord(`"schedule" or "history"`)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(tok.text) {
	case "schedule":
		return &Command{Kind: KindShowSchedule}, nil
	case "history":
		return &Command{Kind: KindShowHistory}, nil
	default:
		return nil, p.unexpected(tok, `expected "schedule" or "history"`)
	}
}

// list subjects | list availability
func (p *commandParser) parseList() (*Command, error) {
	tok, err := p.expectWord(`"subjects" or "availability"`)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(tok.text) {
	case "subjects":
		return &Command{Kind: KindListSubjects}, nil
	case "availability":
		return &Command{Kind: KindListAvailability}, nil
	default:
		return nil, p.unexpected(tok, `expected "subjects" or "availability"`)
	}
}

// delete subject "<name>"
func (p *commandParser) parseDeleteSubject() (*Command, error) {
	if err := p.expectKeyword("subject"); err != nil {
		return nil, err
	}
	name, err := p.expectString("subject name")
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(name) == "" {
		return nil, semanticf("subject name cannot be empty")
	}
	return &Command{Kind: KindDeleteSubject, TargetSubject: name}, nil
}

// update subject "<name>" hours <int>
// update subject "<name>" priority <P>
func (p *commandParser) parseUpdateSubject() (*Command, error) {
	if err := p.expectKeyword("subject"); err != nil {
		return nil, err
	}
	name, err := p.expectString("subject name")
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(name) == "" {
		return nil, semanticf("subject name cannot be empty")
	}

	tok, err := p.expectWord(`"hours" or "priority"`)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(tok.text) {
	case "hours":
		hours, err := p.parseIntArg("hours")
		if err != nil {
			return nil, err
		}
		if hours <= 0 {
			return nil, semanticf("hours must be positive, got: %d", hours)
		}
		return &Command{Kind: KindUpdateSubjectHours, TargetSubject: name, Hours: float64(hours)}, nil
	case "priority":
		priority, err := p.parsePriorityArg()
		if err != nil {
			return nil, err
		}
		return &Command{Kind: KindUpdateSubjectPriority, TargetSubject: name, Priority: priority}, nil
	default:
		return nil, p.unexpected(tok, `expected "hours" or "priority"`)
	}
}

// clear all | clear subjects | clear schedule
func (p *commandParser) parseClear() (*Command, error) {
	tok, err := p.expectWord(`"all", "subjects" or "schedule"`)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(tok.text) {
	case "all":
		return &Command{Kind: KindClearAll}, nil
	case "subjects":
		return &Command{Kind: KindClearSubjects}, nil
	case "schedule":
		return &Command{Kind: KindClearSchedule}, nil
	default:
		return nil, p.unexpected(tok, `expected "all", "subjects" or "schedule"`)
	}
}

// load schedule "<path>"
func (p *commandParser) parseLoadSchedule() (*Command, error) {
	if err := p.expectKeyword("schedule"); err != nil {
		return nil, err
	}
	path, err := p.expectString("schedule path")
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(path) == "" {
		return nil, semanticf("schedule file path cannot be empty")
	}
	return &Command{Kind: KindLoadSchedule, Path: path}, nil
}

func (p *commandParser) parseIntArg(what string) (int, error) {
	tok, err := p.expectWord("a number of " + what)
	if err != nil {
		return 0, err
	}
	n, convErr := strconv.Atoi(tok.text)
	if convErr != nil {
		return 0, semanticf("invalid number format for %s: %s", what, tok.text)
	}
	return n, nil
}

func (p *commandParser) parsePriorityArg() (domain.Priority, error) {
	tok, err := p.expectWord("a priority")
	if err != nil {
		return "", err
	}
	priority, convErr := domain.PriorityFromString(tok.text)
	if convErr != nil {
		var unknown *domain.UnknownPriorityError
		if errors.As(convErr, &unknown) {
			return "", semanticf("invalid priority: %s. Valid values are: HIGH, MEDIUM, MED, LOW", tok.text)
		}
		return "", convErr
	}
	return priority, nil
}

var dateLayouts = []string{domain.DateLayout, "02/01/2006"}

// ParseDate accepts YYYY-MM-DD or DD/MM/YYYY, first match wins.
func ParseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, semanticf("invalid date format: %s. Expected YYYY-MM-DD or DD/MM/YYYY", s)
}
