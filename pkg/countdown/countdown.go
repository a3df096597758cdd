// Package countdown holds the time arithmetic behind countdown elements.
// Every function is a pure function of its arguments; callers supply the
// current time.
package countdown

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	AttrStart      = "data-start"
	AttrDuration   = "data-duration"
	AttrServerTime = "data-server-time"
	AttrTime       = "data-time"

	day = 24 * time.Hour
)

var ErrNoCountdown = errors.New("element carries no parseable countdown attributes")

type Mode int

const (
	ModeNone Mode = iota
	ModeDays
	ModeTimeOfDay
)

// Attributes is anything countdown attributes can be read from.
type Attributes interface {
	Attr(name string) (string, bool)
}

type Descriptor struct {
	Mode Mode

	// Days mode
	Start      time.Time
	Duration   int
	ServerTime *time.Time

	// Time-of-day mode
	Hour   int
	Minute int
}

var instantLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// Parse reads a descriptor from attrs. Days mode wins when both data-start
// and data-duration parse.
func Parse(attrs Attributes) (Descriptor, error) {
	if d, ok := parseDays(attrs); ok {
		return d, nil
	}
	if raw, ok := attrs.Attr(AttrTime); ok {
		h, m, err := ParseClock(raw)
		if err == nil {
			return Descriptor{Mode: ModeTimeOfDay, Hour: h, Minute: m}, nil
		}
	}
	return Descriptor{}, ErrNoCountdown
}

func parseDays(attrs Attributes) (Descriptor, bool) {
	rawStart, ok := attrs.Attr(AttrStart)
	if !ok {
		return Descriptor{}, false
	}
	rawDuration, ok := attrs.Attr(AttrDuration)
	if !ok {
		return Descriptor{}, false
	}
	start, err := ParseInstant(rawStart)
	if err != nil {
		return Descriptor{}, false
	}
	duration, err := strconv.Atoi(strings.TrimSpace(rawDuration))
	if err != nil {
		return Descriptor{}, false
	}
	d := Descriptor{Mode: ModeDays, Start: start, Duration: duration}
	if rawServer, ok := attrs.Attr(AttrServerTime); ok {
		// An unparseable anchor falls back to the client clock.
		if st, err := ParseInstant(rawServer); err == nil {
			d.ServerTime = &st
		}
	}
	return d, true
}

// ParseInstant accepts RFC 3339 timestamps and bare ISO dates or
// date-times. Values without an offset are taken as UTC.
func ParseInstant(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range instantLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unsupported time format %q", raw)
}

// ParseClock parses "HH:MM".
func ParseClock(raw string) (int, int, error) {
	hs, ms, ok := strings.Cut(strings.TrimSpace(raw), ":")
	if !ok {
		return 0, 0, fmt.Errorf("invalid clock %q", raw)
	}
	h, err := strconv.Atoi(hs)
	if err != nil || h < 0 || h > 23 {
		return 0, 0, fmt.Errorf("invalid hour in %q", raw)
	}
	m, err := strconv.Atoi(ms)
	if err != nil || m < 0 || m > 59 {
		return 0, 0, fmt.Errorf("invalid minute in %q", raw)
	}
	return h, m, nil
}

func utcDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysRemaining counts whole UTC calendar days between start and base and
// subtracts them from duration. The result is never negative.
func DaysRemaining(start time.Time, duration int, base time.Time) int {
	passed := int(utcDay(base).Sub(utcDay(start)) / day)
	remaining := duration - passed
	if remaining < 0 {
		return 0
	}
	return remaining
}

// NextOccurrence returns the next instant strictly after now at hour:minute
// in now's location.
func NextOccurrence(hour, minute int, now time.Time) time.Time {
	target := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
	if !target.After(now) {
		target = target.AddDate(0, 0, 1)
	}
	return target
}

// Remaining is always strictly positive.
func Remaining(hour, minute int, now time.Time) time.Duration {
	return NextOccurrence(hour, minute, now).Sub(now)
}

type clock struct {
	h, m, s int64
}

func split(d time.Duration) clock {
	ms := d.Milliseconds()
	if ms < 0 {
		ms = 0
	}
	return clock{
		h: ms / 3_600_000,
		m: (ms % 3_600_000) / 60_000,
		s: (ms % 60_000) / 1_000,
	}
}

// FormatCompact renders "HH:MM remaining", or "HH:MM:SS remaining" when
// live.
func FormatCompact(d time.Duration, live bool) string {
	c := split(d)
	if live {
		return fmt.Sprintf("%02d:%02d:%02d remaining", c.h, c.m, c.s)
	}
	return fmt.Sprintf("%02d:%02d remaining", c.h, c.m)
}

// FormatVerbose renders "HHh MMm remaining", or "HHh MMm SSs remaining"
// when live.
func FormatVerbose(d time.Duration, live bool) string {
	c := split(d)
	if live {
		return fmt.Sprintf("%02dh %02dm %02ds remaining", c.h, c.m, c.s)
	}
	return fmt.Sprintf("%02dh %02dm remaining", c.h, c.m)
}

type ReminderWindow struct {
	Pre  time.Time
	Main time.Time
	Post time.Time
}

// ReminderWindows places a reminder at hour:minute on ref's date and
// surrounds it with pre and post reminders.
func ReminderWindows(hour, minute int, before, after time.Duration, ref time.Time) ReminderWindow {
	main := time.Date(ref.Year(), ref.Month(), ref.Day(), hour, minute, 0, 0, ref.Location())
	return ReminderWindow{
		Pre:  main.Add(-before),
		Main: main,
		Post: main.Add(after),
	}
}
