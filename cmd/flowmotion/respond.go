package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/flowmotion/internal/error_values"
	"github.com/limbo/flowmotion/internal/service"
	"github.com/limbo/flowmotion/pkg/client"
	"github.com/limbo/flowmotion/pkg/dom"
	"github.com/limbo/flowmotion/pkg/entity"
)

type RespondCmd struct {
	HabitID   string `arg:"" help:"Habit to respond to."`
	Completed string `help:"Whether the habit was done." enum:"yes,no" default:"yes"`
}

func (c *RespondCmd) Run(ctx context.Context, g *Globals, out io.Writer) error {
	id, err := uuid.Parse(c.HabitID)
	if err != nil {
		return fmt.Errorf("invalid habit id: %w", err)
	}
	form := &entity.HabitForm{
		HabitID: id,
		Action:  g.ServerURL + "/habits/" + id.String() + "/respond/",
		Fields:  url.Values{},
		Cookies: g.cookies(),
	}
	if g.CSRF != "" {
		form.Fields.Set(client.CSRFField, g.CSRF)
	}

	// A detached card the responder patches on success
	streak := dom.NewElement(service.StreakElementID(id))
	status := dom.NewElement(service.StatusElementID(id))
	card := dom.NewElement(service.CardElementID(id))
	responder := service.NewResponderService(g.client(), dom.NewDocument(card, streak, status))

	res, err := responder.Submit(ctx, form, c.Completed)
	if errors.Is(err, errorvalues.ErrFellBack) {
		fmt.Fprintln(out, "Response submitted.")
		return nil
	}
	if err != nil {
		return describeServerError(err)
	}
	fmt.Fprintln(out, status.Text())
	if streak.Text() != "" {
		fmt.Fprintf(out, "Streak: %s\n", streak.Text())
	}
	if res.Feedback != "" {
		fmt.Fprintln(out, res.Feedback)
	}
	return nil
}

// describeServerError hints at the fix for failures the user can act on.
func describeServerError(err error) error {
	switch {
	case client.IsStatus(err, http.StatusUnauthorized), client.IsStatus(err, http.StatusForbidden):
		return fmt.Errorf("%w (session or CSRF token rejected, sign in again and pass --session and --csrf)", err)
	case client.IsServerError(err):
		return fmt.Errorf("%w (FlowMotion server error, try again later)", err)
	}
	return err
}

type AcknowledgeCmd struct {
	HabitID string `arg:"" help:"Habit whose reminder to acknowledge."`
}

func (c *AcknowledgeCmd) Run(ctx context.Context, g *Globals, out io.Writer) error {
	id, err := uuid.Parse(c.HabitID)
	if err != nil {
		return fmt.Errorf("invalid habit id: %w", err)
	}
	responder := service.NewResponderService(g.client(), dom.NewDocument())
	if err := responder.Acknowledge(ctx, id, g.CSRF); err != nil {
		return describeServerError(err)
	}
	fmt.Fprintln(out, "Reminder acknowledged.")
	return nil
}
