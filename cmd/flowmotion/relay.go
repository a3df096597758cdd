package main

import (
	"context"
	"errors"
	"log/slog"

	"github.com/limbo/flowmotion/internal/api"
	"github.com/limbo/flowmotion/internal/repository"
	"github.com/limbo/flowmotion/internal/service"
	"github.com/limbo/flowmotion/pkg/cleanup"
	"github.com/limbo/flowmotion/pkg/desktop"
	jwtservice "github.com/limbo/flowmotion/pkg/jwt_service"
)

type RelayCmd struct {
	Address       string `help:"Bridge listen address." default:"${bridge_address}"`
	Secret        string `help:"Secret signing page-context tokens." default:"${bridge_secret}"`
	Notifications bool   `help:"Show desktop notifications." default:"${desktop_notifications}" negatable:""`
	SyncReminders bool   `help:"Schedule today's reminders from the server on start."`
}

func (c *RelayCmd) Run(ctx context.Context, g *Globals) error {
	if c.Secret == "" {
		return errors.New("bridge secret is required, set BRIDGE_SECRET or --secret")
	}
	contexts := repository.NewPageContextsRepo(desktop.OpenBrowser)
	relay := service.NewRelayService(desktop.NewNotifier(c.Notifications), contexts, g.ServerURL)
	cleanup.Register(&cleanup.Job{Name: "relay", F: relay.Shutdown})
	if err := relay.Activate(ctx); err != nil {
		return err
	}

	if c.SyncReminders {
		reminders := service.NewReminderService(g.client(), relay)
		if _, err := reminders.Sync(ctx); err != nil {
			// Reminders that did get scheduled still fire
			slog.Warn("reminder sync incomplete", slog.String("error", err.Error()))
		}
	}

	serv := api.New(&api.ServicesList{
		RelayService: relay,
		JwtService:   jwtservice.New(c.Secret),
	})
	return serv.Run(ctx, c.Address)
}
