package service

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"math"
	"net/url"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/flowmotion/internal/error_values"
	"github.com/limbo/flowmotion/internal/repository"
	"github.com/limbo/flowmotion/pkg/entity"
)

const (
	TagPrefix        = "habit-reminder-"
	DefaultClickURL  = "/dashboard/"
	NotificationIcon = "/static/img/flowmotion-icon.png"

	// Longest delay, in milliseconds, a time.Duration can hold
	maxDelayMs = math.MaxInt64 / int64(time.Millisecond)
)

type WorkerState int

const (
	StateInstalling WorkerState = iota
	StateActivated
	StateIdle
)

func (s WorkerState) String() string {
	switch s {
	case StateInstalling:
		return "installing"
	case StateActivated:
		return "activated"
	case StateIdle:
		return "idle"
	}
	return fmt.Sprintf("WorkerState(%d)", int(s))
}

// NotificationTag is shared by every notification for url, so repeated
// reminders for one page replace each other.
func NotificationTag(url string) string {
	return TagPrefix + url
}

// RelayService is the background worker: it turns schedule messages into
// delayed notifications and routes clicks to page contexts. Scheduled
// notifications live only in memory.
type RelayService struct {
	mu       sync.Mutex
	state    WorkerState
	nextID   uint64
	pending  map[uint64]*time.Timer
	active   map[string]entity.Notification
	notifier NotifierI
	contexts repository.PageContextsRepositoryI
	origin   *url.URL
	now      func() time.Time
	logger   *slog.Logger
}

// NewRelayService returns a worker in the installing state. origin, when
// set, resolves relative notification URLs.
func NewRelayService(notifier NotifierI, contexts repository.PageContextsRepositoryI, origin string) *RelayService {
	if notifier == nil || contexts == nil {
		log.Fatal("on relay service provided nil notifier or page contexts")
	}
	rs := &RelayService{
		state:    StateInstalling,
		pending:  make(map[uint64]*time.Timer),
		active:   make(map[string]entity.Notification),
		notifier: notifier,
		contexts: contexts,
		now:      time.Now,
		logger:   slog.Default().With(slog.String("component", "relay")),
	}
	if origin != "" {
		u, err := url.Parse(origin)
		if err != nil || u.Scheme == "" || u.Host == "" {
			log.Fatalf("invalid relay origin %q", origin)
		}
		rs.origin = u
	}
	rs.logger.Info("worker installed")
	return rs
}

func (rs *RelayService) State() WorkerState {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	return rs.state
}

// Activate takes control of every open page context and goes idle right
// away, without waiting for an older worker to finish.
func (rs *RelayService) Activate(ctx context.Context) error {
	rs.mu.Lock()
	if rs.state != StateInstalling {
		rs.mu.Unlock()
		return nil
	}
	rs.state = StateActivated
	rs.mu.Unlock()
	rs.logger.Info("worker activated")

	pages, err := rs.contexts.List(ctx)
	if err != nil {
		return fmt.Errorf("claiming page contexts error: %w", err)
	}

	rs.mu.Lock()
	rs.state = StateIdle
	rs.mu.Unlock()
	rs.logger.Info("worker idle", slog.Int("claimed_contexts", len(pages)))
	return nil
}

// HandleMessage schedules a notification. Messages of other types are
// ignored.
func (rs *RelayService) HandleMessage(ctx context.Context, msg entity.WorkerMessage) error {
	if rs.State() != StateIdle {
		return errorvalues.ErrWorkerNotReady
	}
	if msg.Type != entity.MessageTypeScheduleNotification {
		rs.logger.Debug("ignoring message", slog.String("type", msg.Type))
		return nil
	}
	if msg.Delay > maxDelayMs {
		return fmt.Errorf("%w: delay %dms out of range", errorvalues.ErrInvalidMessage, msg.Delay)
	}
	sn := entity.ScheduledNotification{
		Title: msg.Title,
		Body:  msg.Body,
		URL:   msg.URL,
		Delay: time.Duration(msg.Delay) * time.Millisecond,
	}
	if err := validate.Struct(sn); err != nil {
		return fmt.Errorf("%w: %s", errorvalues.ErrInvalidMessage, err.Error())
	}
	rs.logger.Info("scheduling notification",
		slog.String("title", sn.Title),
		slog.Duration("delay", sn.Delay),
	)
	if sn.Delay == 0 {
		rs.display(ctx, sn)
		return nil
	}
	rs.mu.Lock()
	id := rs.nextID
	rs.nextID++
	rs.pending[id] = time.AfterFunc(sn.Delay, func() { rs.fire(id, sn) })
	rs.mu.Unlock()
	return nil
}

func (rs *RelayService) fire(id uint64, sn entity.ScheduledNotification) {
	rs.mu.Lock()
	_, ok := rs.pending[id]
	delete(rs.pending, id)
	rs.mu.Unlock()
	if !ok {
		return
	}
	rs.display(context.Background(), sn)
}

func (rs *RelayService) display(ctx context.Context, sn entity.ScheduledNotification) {
	n := entity.Notification{
		Title: sn.Title,
		Body:  sn.Body,
		Icon:  rs.resolve(NotificationIcon),
		Tag:   NotificationTag(sn.URL),
		Data:  entity.NotificationData{URL: sn.URL},
		Actions: []entity.NotificationAction{
			{Action: entity.ActionOpen, Title: "✅ Open Habit"},
			{Action: entity.ActionDismiss, Title: "❌ Dismiss"},
		},
		RequireInteraction: true,
		ShownAt:            rs.now(),
	}
	if err := rs.notifier.Show(ctx, n); err != nil {
		rs.logger.Error("showing notification error", slog.String("tag", n.Tag), slog.String("error", err.Error()))
		return
	}
	rs.mu.Lock()
	rs.active[n.Tag] = n
	rs.mu.Unlock()
	rs.logger.Info("notification shown", slog.String("tag", n.Tag))
}

// HandleClick closes the notification and, unless dismissed, shows its URL
// in a dashboard or habit page, opening a new one if none is open.
func (rs *RelayService) HandleClick(ctx context.Context, tag, action string) error {
	rs.mu.Lock()
	n, ok := rs.active[tag]
	delete(rs.active, tag)
	rs.mu.Unlock()
	if !ok {
		return errorvalues.ErrNotificationNotFound
	}
	if err := rs.notifier.Close(ctx, tag); err != nil {
		rs.logger.Warn("closing notification error", slog.String("tag", tag), slog.String("error", err.Error()))
	}
	if action == entity.ActionDismiss {
		rs.logger.Info("notification dismissed", slog.String("tag", tag))
		return nil
	}

	target := n.Data.URL
	if target == "" {
		target = DefaultClickURL
	}
	target = rs.resolve(target)

	pages, err := rs.contexts.List(ctx)
	if err != nil {
		return fmt.Errorf("listing page contexts error: %w", err)
	}
	for _, pc := range pages {
		if !pc.Navigable() {
			continue
		}
		if strings.Contains(pc.URL, "/dashboard") || strings.Contains(pc.URL, "/habits") {
			if err := rs.contexts.Navigate(ctx, pc.ID, target); err != nil {
				return fmt.Errorf("navigating page context error: %w", err)
			}
			if err := rs.contexts.Focus(ctx, pc.ID); err != nil {
				return fmt.Errorf("focusing page context error: %w", err)
			}
			rs.logger.Info("page context reused", slog.String("context_id", pc.ID.String()), slog.String("url", target))
			return nil
		}
	}
	pc, err := rs.contexts.Open(ctx, target)
	if err != nil {
		return fmt.Errorf("opening page context error: %w", err)
	}
	rs.logger.Info("page context opened", slog.String("context_id", pc.ID.String()), slog.String("url", target))
	return nil
}

// Active lists displayed notifications, oldest first.
func (rs *RelayService) Active() []entity.Notification {
	rs.mu.Lock()
	res := make([]entity.Notification, 0, len(rs.active))
	for _, n := range rs.active {
		res = append(res, n)
	}
	rs.mu.Unlock()
	sort.Slice(res, func(i, j int) bool {
		if res[i].ShownAt.Equal(res[j].ShownAt) {
			return res[i].Tag < res[j].Tag
		}
		return res[i].ShownAt.Before(res[j].ShownAt)
	})
	return res
}

// Pending returns the number of notifications still waiting for their delay.
func (rs *RelayService) Pending() int {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	return len(rs.pending)
}

// Shutdown drops every pending notification. They are not persisted.
func (rs *RelayService) Shutdown() error {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	for id, t := range rs.pending {
		t.Stop()
		delete(rs.pending, id)
	}
	return nil
}

func (rs *RelayService) RegisterContext(ctx context.Context, req entity.RegisterContextRequest) (*entity.PageContext, error) {
	if err := validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %s", errorvalues.ErrInvalidMessage, err.Error())
	}
	pc, err := rs.contexts.Register(ctx, req.URL, req.Kind)
	if err != nil {
		return nil, fmt.Errorf("registering page context error: %w", err)
	}
	return pc, nil
}

func (rs *RelayService) UnregisterContext(ctx context.Context, id uuid.UUID) error {
	if err := rs.contexts.Delete(ctx, id); err != nil {
		return fmt.Errorf("unregistering page context error: %w", err)
	}
	rs.logger.Debug("page context unregistered", slog.String("context_id", id.String()))
	return nil
}

func (rs *RelayService) Contexts(ctx context.Context) ([]*entity.PageContext, error) {
	return rs.contexts.List(ctx)
}

func (rs *RelayService) Context(ctx context.Context, id uuid.UUID) (*entity.PageContext, error) {
	return rs.contexts.GetByID(ctx, id)
}

func (rs *RelayService) resolve(ref string) string {
	if rs.origin == nil {
		return ref
	}
	u, err := url.Parse(ref)
	if err != nil {
		return ref
	}
	return rs.origin.ResolveReference(u).String()
}
