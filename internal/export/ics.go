// Package export renders a schedule into calendar and spreadsheet formats.
package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/elite3012/Multi-subject-Scheduler-Chatbot/internal/domain"
)

const (
	icsTimezone   = "Asia/Ho_Chi_Minh"
	icsTimeLayout = "20060102T150405"
)

// vtimezone is the fixed-offset block calendar clients need before any
// TZID reference. Vietnam has no DST, so a single STANDARD rule suffices.
const vtimezone = "BEGIN:VTIMEZONE\r\n" +
	"TZID:Asia/Ho_Chi_Minh\r\n" +
	"BEGIN:STANDARD\r\n" +
	"DTSTART:19700101T000000\r\n" +
	"TZOFFSETFROM:+0700\r\n" +
	"TZOFFSETTO:+0700\r\n" +
	"TZNAME:ICT\r\n" +
	"END:STANDARD\r\n" +
	"END:VTIMEZONE\r\n"

// ICS renders the schedule as an iCalendar document with one VEVENT per
// study block.
func ICS(schedule *domain.Schedule) string {
	var b strings.Builder

	b.WriteString("BEGIN:VCALENDAR\r\n")
	b.WriteString("VERSION:2.0\r\n")
	b.WriteString("PRODID:-//Multi-Subject Scheduler Chatbot//EN\r\n")
	b.WriteString("CALSCALE:GREGORIAN\r\n")
	b.WriteString(vtimezone)

	stamp := time.Now().UTC().Format(icsTimeLayout) + "Z"
	for _, block := range schedule.Blocks {
		writeEvent(&b, block, stamp)
	}

	b.WriteString("END:VCALENDAR\r\n")
	return b.String()
}

func writeEvent(b *strings.Builder, block domain.ScheduledBlock, stamp string) {
	date := strings.ReplaceAll(block.Date, "-", "")

	b.WriteString("BEGIN:VEVENT\r\n")
	fmt.Fprintf(b, "UID:%s-%s-%s@studyplan\r\n",
		block.CourseID, block.Date, block.StartTime)
	fmt.Fprintf(b, "DTSTAMP:%s\r\n", stamp)
	fmt.Fprintf(b, "DTSTART;TZID=%s:%sT%s00\r\n", icsTimezone, date, strings.ReplaceAll(block.StartTime, ":", ""))
	fmt.Fprintf(b, "DTEND;TZID=%s:%sT%s00\r\n", icsTimezone, date, strings.ReplaceAll(block.EndTime, ":", ""))
	fmt.Fprintf(b, "SUMMARY:%s\r\n", escapeText(eventSummary(block)))
	fmt.Fprintf(b, "DESCRIPTION:%s\r\n", escapeText(eventDescription(block)))
	b.WriteString("END:VEVENT\r\n")
}

func eventSummary(block domain.ScheduledBlock) string {
	if block.CourseName != "" {
		return block.CourseName
	}
	return block.CourseID
}

func eventDescription(block domain.ScheduledBlock) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Course: %s", block.CourseID)
	if block.ComponentName != "" {
		fmt.Fprintf(&b, "\nComponent: %s", block.ComponentName)
	}
	fmt.Fprintf(&b, "\nPriority: %s", block.Priority)
	if block.Deadline != nil {
		fmt.Fprintf(&b, "\nDeadline: %s", block.Deadline.Format(domain.DateLayout))
	}
	if block.Reason != "" {
		fmt.Fprintf(&b, "\nReason: %s", block.Reason)
	}
	return b.String()
}

// escapeText applies RFC 5545 TEXT escaping.
func escapeText(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, ";", `\;`)
	s = strings.ReplaceAll(s, ",", `\,`)
	s = strings.ReplaceAll(s, "\n", `\n`)
	return s
}
