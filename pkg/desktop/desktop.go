// Package desktop shows worker notifications on the local desktop and opens
// page contexts in the default browser.
package desktop

import (
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"runtime"

	"github.com/limbo/flowmotion/pkg/entity"
)

const AppName = "FlowMotion"

var (
	execCommand = exec.CommandContext
	lookPath    = exec.LookPath
	goos        = runtime.GOOS

	// Called once an opener process has been reaped
	openerExited = func(url string, err error) {
		if err != nil {
			slog.Debug("browser opener failed", slog.String("url", url), slog.String("error", err.Error()))
		}
	}
)

type Notifier struct {
	enabled bool
	logger  *slog.Logger
}

// NewNotifier returns a notify-send backed notifier. A disabled notifier
// only logs what it would have shown.
func NewNotifier(enabled bool) *Notifier {
	return &Notifier{
		enabled: enabled,
		logger:  slog.Default().With(slog.String("component", "desktop")),
	}
}

func (d *Notifier) Show(ctx context.Context, n entity.Notification) error {
	if !d.enabled {
		d.logger.Info("notification", slog.String("title", n.Title), slog.String("body", n.Body), slog.String("tag", n.Tag))
		return nil
	}
	bin, err := lookPath("notify-send")
	if err != nil {
		d.logger.Warn("notify-send not found",
			slog.String("title", n.Title),
			slog.String("body", n.Body),
		)
		return nil
	}
	if err := execCommand(ctx, bin, notifyArgs(n)...).Run(); err != nil {
		return fmt.Errorf("notify-send error: %w", err)
	}
	return nil
}

func notifyArgs(n entity.Notification) []string {
	urgency := "normal"
	if n.RequireInteraction {
		urgency = "critical"
	}
	args := []string{"-a", AppName, "-u", urgency}
	if n.Tag != "" {
		// Notification servers replace a notification carrying the same hint
		args = append(args, "-h", "string:x-canonical-private-synchronous:"+n.Tag)
	}
	return append(args, n.Title, n.Body)
}

// Close is a no-op: notify-send cannot withdraw a notification.
func (d *Notifier) Close(context.Context, string) error {
	return nil
}

// OpenBrowser opens url in the user's default browser.
func OpenBrowser(url string) error {
	var cmd *exec.Cmd
	switch goos {
	case "darwin":
		cmd = execCommand(context.Background(), "open", url)
	case "linux":
		cmd = execCommand(context.Background(), "xdg-open", url)
	case "windows":
		cmd = execCommand(context.Background(), "rundll32", "url.dll,FileProtocolHandler", url)
	default:
		return fmt.Errorf("unsupported OS: %s", goos)
	}
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() {
		openerExited(url, cmd.Wait())
	}()
	return nil
}
