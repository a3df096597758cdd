package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/limbo/flowmotion/pkg/dom"
	"github.com/limbo/flowmotion/pkg/entity"
)

type HabitClientI interface {
	// Posts the form in the background and decodes the JSON reply
	Respond(ctx context.Context, form *entity.HabitForm) (*entity.RespondResult, error)
	// Ordinary form submission, used as fallback
	SubmitStandard(ctx context.Context, form *entity.HabitForm) error
	Acknowledge(ctx context.Context, habitID uuid.UUID, token string) (*entity.AcknowledgeResult, error)
}

type RemindersSourceI interface {
	Reminders(ctx context.Context) ([]entity.Reminder, error)
}

type NotifierI interface {
	// Displays n. A notification with the same tag replaces the previous one
	Show(ctx context.Context, n entity.Notification) error
	Close(ctx context.Context, tag string) error
}

type MessageHandlerI interface {
	HandleMessage(ctx context.Context, msg entity.WorkerMessage) error
}

type RelayServiceI interface {
	MessageHandlerI
	// Handles a click on the notification with tag. Action is "open", "dismiss" or empty
	HandleClick(ctx context.Context, tag, action string) error
	// Lists notifications currently on display
	Active() []entity.Notification
	RegisterContext(ctx context.Context, req entity.RegisterContextRequest) (*entity.PageContext, error)
	UnregisterContext(ctx context.Context, id uuid.UUID) error
	Contexts(ctx context.Context) ([]*entity.PageContext, error)
	Context(ctx context.Context, id uuid.UUID) (*entity.PageContext, error)
}

type DocumentI interface {
	GetElementByID(id string) *dom.Element
	QuerySelectorAll(selectors string) []*dom.Element
}
