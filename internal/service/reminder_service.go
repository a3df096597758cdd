package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"time"

	"github.com/limbo/flowmotion/pkg/countdown"
	"github.com/limbo/flowmotion/pkg/entity"
)

const ReminderTitlePrefix = "FlowMotion: "

type ReminderOption func(*ReminderService)

// WithReminderClock replaces time.Now when placing early and follow-up
// reminders.
func WithReminderClock(now func() time.Time) ReminderOption {
	return func(s *ReminderService) { s.now = now }
}

// ReminderService turns the server's upcoming reminders into schedule
// messages for the worker.
type ReminderService struct {
	source  RemindersSourceI
	handler MessageHandlerI
	now     func() time.Time
	logger  *slog.Logger
}

func NewReminderService(source RemindersSourceI, handler MessageHandlerI, opts ...ReminderOption) *ReminderService {
	if source == nil || handler == nil {
		log.Fatal("on reminder service provided nil source or handler")
	}
	s := &ReminderService{
		source:  source,
		handler: handler,
		now:     time.Now,
		logger:  slog.Default().With(slog.String("component", "reminders")),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Sync schedules the notifications of every reminder and returns how many
// were accepted.
func (s *ReminderService) Sync(ctx context.Context) (int, error) {
	reminders, err := s.source.Reminders(ctx)
	if err != nil {
		return 0, fmt.Errorf("fetching reminders error: %w", err)
	}
	var (
		scheduled int
		errs      []error
	)
	now := s.now()
	for _, r := range reminders {
		for _, msg := range ReminderMessages(r, now) {
			if err := s.handler.HandleMessage(ctx, msg); err != nil {
				s.logger.Warn("reminder not scheduled", slog.String("habit_id", r.ID.String()), slog.String("error", err.Error()))
				errs = append(errs, fmt.Errorf("reminder %s: %w", r.ID, err))
				continue
			}
			scheduled++
		}
	}
	s.logger.Info("reminders synced", slog.Int("scheduled", scheduled), slog.Int("total", len(reminders)))
	return scheduled, errors.Join(errs...)
}

func ReminderMessage(r entity.Reminder) entity.WorkerMessage {
	body := r.Question
	if body == "" {
		body = "Time for " + r.Name
	}
	delay := r.DelayMs
	if delay < 0 {
		delay = 0
	}
	return entity.WorkerMessage{
		Type:  entity.MessageTypeScheduleNotification,
		Title: ReminderTitlePrefix + r.Name,
		Body:  body,
		URL:   r.URL,
		Delay: delay,
	}
}

// ReminderMessages returns the main reminder preceded by an early one and
// followed by a follow-up when the reminder asks for them. Windows already
// behind now are skipped. All share the habit's tag, so each replaces the
// previous one on screen.
func ReminderMessages(r entity.Reminder, now time.Time) []entity.WorkerMessage {
	main := ReminderMessage(r)
	if r.MinutesBefore <= 0 && r.MinutesAfter <= 0 {
		return []entity.WorkerMessage{main}
	}
	at := now.Add(time.Duration(main.Delay) * time.Millisecond)
	w := countdown.ReminderWindows(at.Hour(), at.Minute(),
		time.Duration(r.MinutesBefore)*time.Minute, time.Duration(r.MinutesAfter)*time.Minute, at)

	var res []entity.WorkerMessage
	if r.MinutesBefore > 0 && w.Pre.After(now) {
		pre := main
		pre.Body = fmt.Sprintf("In %d min: %s", r.MinutesBefore, main.Body)
		pre.Delay = w.Pre.Sub(now).Milliseconds()
		res = append(res, pre)
	}
	res = append(res, main)
	if r.MinutesAfter > 0 {
		post := main
		post.Body = "Still pending: " + main.Body
		post.Delay = w.Post.Sub(now).Milliseconds()
		res = append(res, post)
	}
	return res
}
