package service

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	errorvalues "github.com/limbo/flowmotion/internal/error_values"
	"github.com/limbo/flowmotion/pkg/countdown"
	"github.com/limbo/flowmotion/pkg/dom"
)

const (
	CountdownSelector     = ".countdown-timer, #widget-countdown, .countdown"
	WidgetCountdownID     = "widget-countdown"
	CompactCountdownClass = "countdown-compact"

	DefaultTickInterval = time.Second
	MaxTickInterval     = time.Minute
)

type CountdownService struct {
	live   bool
	loc    *time.Location
	now    func() time.Time
	onTick func(rendered int)
	logger *slog.Logger
}

type CountdownOption func(*CountdownService)

// WithLive adds seconds to time-of-day countdowns.
func WithLive(live bool) CountdownOption {
	return func(cs *CountdownService) { cs.live = live }
}

// WithLocation sets the zone time-of-day targets are interpreted in.
func WithLocation(loc *time.Location) CountdownOption {
	return func(cs *CountdownService) {
		if loc != nil {
			cs.loc = loc
		}
	}
}

func WithClock(now func() time.Time) CountdownOption {
	return func(cs *CountdownService) {
		if now != nil {
			cs.now = now
		}
	}
}

// WithTickHook registers f to run after every tick of Run.
func WithTickHook(f func(rendered int)) CountdownOption {
	return func(cs *CountdownService) { cs.onTick = f }
}

func NewCountdownService(opts ...CountdownOption) *CountdownService {
	cs := &CountdownService{
		loc:    time.Local,
		now:    time.Now,
		logger: slog.Default().With(slog.String("component", "countdown")),
	}
	for _, opt := range opts {
		opt(cs)
	}
	return cs
}

// Render recomputes el's text from its current attributes. Elements without
// parseable attributes are left untouched and false is returned.
func (cs *CountdownService) Render(el *dom.Element, now time.Time) bool {
	d, err := countdown.Parse(el)
	if err != nil {
		return false
	}
	switch d.Mode {
	case countdown.ModeDays:
		base := now
		if d.ServerTime != nil {
			base = *d.ServerTime
		}
		el.SetText(strconv.Itoa(countdown.DaysRemaining(d.Start, d.Duration, base)))
	case countdown.ModeTimeOfDay:
		left := countdown.Remaining(d.Hour, d.Minute, now.In(cs.loc))
		if isCompact(el) {
			el.SetText(countdown.FormatCompact(left, cs.live))
		} else {
			el.SetText(countdown.FormatVerbose(left, cs.live))
		}
	default:
		return false
	}
	return true
}

// The format is picked by the element's role, not by its attributes.
func isCompact(el *dom.Element) bool {
	return el.ID() == WidgetCountdownID || el.HasClass(CompactCountdownClass)
}

// Tick renders every countdown element of doc and returns how many were
// updated.
func (cs *CountdownService) Tick(doc DocumentI) int {
	now := cs.now()
	rendered := 0
	for _, el := range doc.QuerySelectorAll(CountdownSelector) {
		if cs.Render(el, now) {
			rendered++
		}
	}
	return rendered
}

// Run ticks immediately and then every interval until ctx is done.
func (cs *CountdownService) Run(ctx context.Context, doc DocumentI, interval time.Duration) error {
	if interval <= 0 || interval > MaxTickInterval {
		return errorvalues.ErrInvalidTickInterval
	}
	cs.tick(doc)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			cs.logger.Debug("countdown stopped")
			return nil
		case <-ticker.C:
			cs.tick(doc)
		}
	}
}

func (cs *CountdownService) tick(doc DocumentI) {
	n := cs.Tick(doc)
	if cs.onTick != nil {
		cs.onTick(n)
	}
}
