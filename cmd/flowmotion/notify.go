package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/limbo/flowmotion/pkg/client"
	"github.com/limbo/flowmotion/pkg/entity"
)

type NotifyCmd struct {
	Bridge string        `help:"Relay bridge URL." default:"${bridge_url}"`
	Page   string        `help:"Page the notification is posted from." default:"${server_url}/dashboard/"`
	Title  string        `help:"Notification title." required:""`
	Body   string        `help:"Notification body."`
	URL    string        `help:"Page to open on click." name:"url" default:"/dashboard/"`
	Delay  time.Duration `help:"Delay before the notification is shown." default:"0s"`
}

// attach registers the command with the relay as a page context that clicks
// never reuse. detach removes it again.
func attach(ctx context.Context, bridgeURL, page string) (bridge *client.Bridge, detach func(), err error) {
	bridge = client.NewBridge(bridgeURL)
	_, err = bridge.Register(ctx, entity.RegisterContextRequest{URL: page, Kind: entity.ContextKindCommand})
	if err != nil {
		return nil, nil, describeBridgeError(err)
	}
	detach = func() {
		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
		defer cancel()
		if err := bridge.Unregister(ctx); err != nil {
			slog.Warn("leaving relay error", slog.String("error", err.Error()))
		}
	}
	return bridge, detach, nil
}

func describeBridgeError(err error) error {
	if client.IsStatus(err, http.StatusServiceUnavailable) {
		return fmt.Errorf("%w (relay is still starting, try again)", err)
	}
	return err
}

func (c *NotifyCmd) Run(ctx context.Context, out io.Writer) error {
	bridge, detach, err := attach(ctx, c.Bridge, c.Page)
	if err != nil {
		return err
	}
	defer detach()
	err = bridge.PostMessage(ctx, entity.WorkerMessage{
		Type:  entity.MessageTypeScheduleNotification,
		Title: c.Title,
		Body:  c.Body,
		URL:   c.URL,
		Delay: c.Delay.Milliseconds(),
	})
	if err != nil {
		return describeBridgeError(err)
	}
	fmt.Fprintf(out, "Notification scheduled in %s.\n", c.Delay)
	return nil
}

type NotificationsCmd struct {
	Bridge  string `help:"Relay bridge URL." default:"${bridge_url}"`
	Page    string `help:"Page the request is made from." default:"${server_url}/dashboard/"`
	Open    string `help:"Click the notification with this tag." xor:"click"`
	Dismiss string `help:"Dismiss the notification with this tag." xor:"click"`
}

func (c *NotificationsCmd) Run(ctx context.Context, out io.Writer) error {
	bridge, detach, err := attach(ctx, c.Bridge, c.Page)
	if err != nil {
		return err
	}
	defer detach()
	switch {
	case c.Open != "":
		return bridge.Click(ctx, c.Open, entity.ActionOpen)
	case c.Dismiss != "":
		return bridge.Click(ctx, c.Dismiss, entity.ActionDismiss)
	}
	active, err := bridge.Notifications(ctx)
	if err != nil {
		return err
	}
	if len(active) == 0 {
		fmt.Fprintln(out, "No notifications on display.")
		return nil
	}
	for _, n := range active {
		fmt.Fprintf(out, "%s  %s  %s\n", n.ShownAt.Format(time.Kitchen), n.Tag, n.Title)
	}
	return nil
}
