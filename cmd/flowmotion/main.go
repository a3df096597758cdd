package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/limbo/flowmotion/internal/service"
	"github.com/limbo/flowmotion/pkg/cleanup"
	"github.com/limbo/flowmotion/pkg/client"
	"github.com/limbo/flowmotion/pkg/config"
)

const sessionCookie = "sessionid"

type Globals struct {
	ServerURL string `help:"FlowMotion web application URL." name:"server-url" default:"${server_url}"`
	Session   string `help:"Session cookie of a signed-in user." env:"FLOWMOTION_SESSION"`
	CSRF      string `help:"CSRF token sent with form submissions." name:"csrf" env:"FLOWMOTION_CSRF"`
	Debug     bool   `help:"Enable debug logging."`
	LogFile   string `help:"Also write logs to this file, rotated by size." default:"${log_file}"`
}

func (g *Globals) cookies() []*http.Cookie {
	var res []*http.Cookie
	if g.Session != "" {
		res = append(res, &http.Cookie{Name: sessionCookie, Value: g.Session})
	}
	if g.CSRF != "" {
		res = append(res, &http.Cookie{Name: client.CSRFCookie, Value: g.CSRF})
	}
	return res
}

func (g *Globals) client() *client.Client {
	return client.New(g.ServerURL, g.cookies()...)
}

var CLI struct {
	Globals

	Relay         RelayCmd         `cmd:"" help:"Run the notification relay and its message bridge."`
	Countdown     CountdownCmd     `cmd:"" help:"Render a countdown."`
	Respond       RespondCmd       `cmd:"" help:"Respond to a habit."`
	Acknowledge   AcknowledgeCmd   `cmd:"" help:"Acknowledge a habit reminder."`
	Notify        NotifyCmd        `cmd:"" help:"Schedule a notification through a running relay."`
	Notifications NotificationsCmd `cmd:"" help:"List or click notifications on display."`
}

func init() {
	service.InitValidator()
}

// bridgeURL turns a listen address into a URL clients can reach.
func bridgeURL(addr string) string {
	if strings.HasPrefix(addr, ":") {
		addr = "localhost" + addr
	}
	return "http://" + addr
}

func main() {
	cfg := config.New()
	bridgeAddress := cfg.GetString("BRIDGE_ADDRESS")
	if bridgeAddress == "" {
		bridgeAddress = ":8081"
	}
	serverURL := cfg.GetString("FLOWMOTION_SERVER_URL")
	if serverURL == "" {
		serverURL = "http://localhost:8000"
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	kctx := kong.Parse(&CLI,
		kong.Name("flowmotion"),
		kong.Description("FlowMotion habit companion: responder, countdowns and notification relay"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"server_url":            strings.TrimRight(serverURL, "/"),
			"bridge_address":        bridgeAddress,
			"bridge_url":            bridgeURL(bridgeAddress),
			"bridge_secret":         cfg.GetString("BRIDGE_SECRET"),
			"countdown_interval":    cfg.GetDuration("COUNTDOWN_INTERVAL", service.DefaultTickInterval).String(),
			"countdown_live":        fmt.Sprint(cfg.GetBool("COUNTDOWN_LIVE", false)),
			"desktop_notifications": fmt.Sprint(cfg.GetBool("DESKTOP_NOTIFICATIONS", true)),
			"log_file":              cfg.GetString("LOG_FILE"),
		},
		kong.BindTo(ctx, (*context.Context)(nil)),
		kong.BindTo(io.Writer(os.Stdout), (*io.Writer)(nil)),
	)

	setupLogging(CLI.Debug, CLI.LogFile)

	err := kctx.Run(&CLI.Globals)
	cleanup.CleanUp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
