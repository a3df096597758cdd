package entity

import (
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
)

const (
	MessageTypeScheduleNotification = "SCHEDULE_NOTIFICATION"

	ActionOpen    = "open"
	ActionDismiss = "dismiss"
)

// HabitForm is a habit-response form captured at submit time.
type HabitForm struct {
	HabitID uuid.UUID `validate:"required"`
	Action  string    `validate:"required,page_url"`
	Fields  url.Values
	Cookies []*http.Cookie
}

type RespondResult struct {
	Success        bool   `json:"success"`
	Completed      *bool  `json:"completed,omitempty"`
	EmotionalState string `json:"emotional_state,omitempty"`
	CurrentStreak  *int   `json:"current_streak,omitempty"`
	Feedback       string `json:"feedback,omitempty"`
}

type AcknowledgeResult struct {
	Success bool `json:"success"`
}

// WorkerMessage is what page contexts post to the background worker.
type WorkerMessage struct {
	Type  string `json:"type" validate:"required"`
	Title string `json:"title"`
	Body  string `json:"body"`
	URL   string `json:"url"`
	// Delay in milliseconds
	Delay int64 `json:"delay"`
}

type ScheduledNotification struct {
	Title string        `validate:"required"`
	Body  string        `validate:"max=1000"`
	URL   string        `validate:"required,app_path"`
	Delay time.Duration `validate:"gte=0"`
}

type NotificationAction struct {
	Action string `json:"action"`
	Title  string `json:"title"`
}

type NotificationData struct {
	URL string `json:"url"`
}

type Notification struct {
	Title              string               `json:"title"`
	Body               string               `json:"body"`
	Icon               string               `json:"icon"`
	Tag                string               `json:"tag"`
	Data               NotificationData     `json:"data"`
	Actions            []NotificationAction `json:"actions"`
	RequireInteraction bool                 `json:"require_interaction"`
	ShownAt            time.Time            `json:"shown_at"`
}

// PageContext is an open application window the worker can control.
// Page context kinds. Command contexts belong to CLI invocations and are
// never reused to show a page.
const (
	ContextKindWindow  = "window"
	ContextKindCommand = "command"
)

type PageContext struct {
	ID        uuid.UUID `json:"id"`
	URL       string    `json:"url"`
	Kind      string    `json:"kind"`
	Focused   bool      `json:"focused"`
	CreatedAt time.Time `json:"created_at"`
}

func (pc *PageContext) Navigable() bool {
	return pc.Kind != ContextKindCommand
}

type Reminder struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Question     string    `json:"question"`
	ReminderTime string    `json:"reminder_time"`
	DelayMs      int64     `json:"delay_ms"`
	URL          string    `json:"url"`
	Color        string    `json:"color"`
	// Early and follow-up reminders around the main one; zero disables
	MinutesBefore int `json:"minutes_before"`
	MinutesAfter  int `json:"minutes_after"`
}

type RemindersResponse struct {
	Reminders []Reminder `json:"reminders"`
}

// Bridge payloads exchanged between page contexts and the worker.

type RegisterContextRequest struct {
	URL  string `json:"url" validate:"required,page_url"`
	Kind string `json:"kind,omitempty" validate:"omitempty,oneof=window command"`
}

type RegisterContextResponse struct {
	ID    uuid.UUID `json:"id"`
	Token string    `json:"token"`
}

type ClickRequest struct {
	Tag    string `json:"tag"`
	Action string `json:"action"`
}
