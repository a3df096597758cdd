package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/url"
	"strconv"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/flowmotion/internal/error_values"
	"github.com/limbo/flowmotion/pkg/entity"
)

const (
	CompletedField = "completed"
	CompletedYes   = "yes"

	CompletedClass = "completed"
	CompletedBadge = "✅ Completed"
	PendingBadge   = "❌ Not completed"
)

// Element ids of a rendered habit card.
func StreakElementID(habitID uuid.UUID) string { return "streak-" + habitID.String() }
func StatusElementID(habitID uuid.UUID) string { return "status-" + habitID.String() }
func CardElementID(habitID uuid.UUID) string   { return "habit-" + habitID.String() }

// ResponderService submits habit-response forms in the background. On
// success it patches the habit card in place; every other outcome ends in
// exactly one standard submission of the same form.
type ResponderService struct {
	client HabitClientI
	view   DocumentI
	logger *slog.Logger
}

func NewResponderService(client HabitClientI, view DocumentI) *ResponderService {
	if client == nil || view == nil {
		log.Fatal("on responder service provided nil client or view")
	}
	return &ResponderService{
		client: client,
		view:   view,
		logger: slog.Default().With(slog.String("component", "responder")),
	}
}

// Submit sends form. A non-empty submitter is the value of the button that
// triggered the submission and overrides the "completed" field.
func (rs *ResponderService) Submit(ctx context.Context, form *entity.HabitForm, submitter string) (*entity.RespondResult, error) {
	if err := validate.Struct(form); err != nil {
		return nil, fmt.Errorf("invalid habit form: %w", err)
	}
	sub := *form
	sub.Fields = cloneValues(form.Fields)
	if submitter != "" {
		sub.Fields.Set(CompletedField, submitter)
	}
	logger := rs.logger.With(slog.String("habit_id", form.HabitID.String()))

	res, err := rs.client.Respond(ctx, &sub)
	if err == nil && !res.Success {
		err = errorvalues.ErrUnsuccessful
	}
	if err != nil {
		logger.Warn("background submission failed, submitting form normally", slog.String("error", err.Error()))
		if fbErr := rs.client.SubmitStandard(ctx, &sub); fbErr != nil {
			logger.Error("standard submission failed", slog.String("error", fbErr.Error()))
			return nil, fmt.Errorf("standard submission error: %w (background error: %v)", fbErr, err)
		}
		return nil, fmt.Errorf("%w: %w", errorvalues.ErrFellBack, err)
	}

	completed := sub.Fields.Get(CompletedField) == CompletedYes
	if res.Completed != nil {
		completed = *res.Completed
	}
	rs.patchCard(form.HabitID, res, completed)
	if res.Feedback != "" {
		logger.Info("feedback", slog.String("message", res.Feedback))
	}
	logger.Info("habit response recorded", slog.Bool("completed", completed))
	return res, nil
}

func (rs *ResponderService) patchCard(habitID uuid.UUID, res *entity.RespondResult, completed bool) {
	if el := rs.view.GetElementByID(StreakElementID(habitID)); el != nil && res.CurrentStreak != nil {
		el.SetText(strconv.Itoa(*res.CurrentStreak))
	}
	if el := rs.view.GetElementByID(StatusElementID(habitID)); el != nil {
		if completed {
			el.SetText(CompletedBadge)
		} else {
			el.SetText(PendingBadge)
		}
	}
	if el := rs.view.GetElementByID(CardElementID(habitID)); el != nil && completed {
		el.AddClass(CompletedClass)
	}
}

// Acknowledge tells the server the user has seen the habit's reminder.
func (rs *ResponderService) Acknowledge(ctx context.Context, habitID uuid.UUID, token string) error {
	if habitID == uuid.Nil {
		return errors.New("acknowledge: empty habit id")
	}
	res, err := rs.client.Acknowledge(ctx, habitID, token)
	if err != nil {
		return fmt.Errorf("acknowledge error: %w", err)
	}
	if !res.Success {
		return errorvalues.ErrNotAcknowledged
	}
	rs.logger.Info("habit acknowledged", slog.String("habit_id", habitID.String()))
	return nil
}

func cloneValues(v url.Values) url.Values {
	res := make(url.Values, len(v))
	for k, vals := range v {
		res[k] = append([]string(nil), vals...)
	}
	return res
}
