package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/limbo/flowmotion/internal/service"
	"github.com/limbo/flowmotion/pkg/countdown"
	"github.com/limbo/flowmotion/pkg/dom"
)

type CountdownCmd struct {
	Time       string        `help:"Target time of day, HH:MM."`
	Start      string        `help:"First day of the period, e.g. 2024-01-01."`
	Duration   int           `help:"Length of the period in days."`
	ServerTime string        `help:"Server clock to count from instead of the local one."`
	Compact    bool          `help:"Use the compact widget format."`
	Live       bool          `help:"Show seconds." default:"${countdown_live}"`
	Interval   time.Duration `help:"Refresh interval." default:"${countdown_interval}"`
	Once       bool          `help:"Render once and exit."`
}

// element builds the countdown element the flags describe.
func (c *CountdownCmd) element() *dom.Element {
	var el *dom.Element
	if c.Compact {
		el = dom.NewElement(service.WidgetCountdownID)
	} else {
		el = dom.NewElement("", "countdown")
	}
	if c.Time != "" {
		el.SetAttr(countdown.AttrTime, c.Time)
	}
	if c.Start != "" {
		el.SetAttr(countdown.AttrStart, c.Start)
		el.SetAttr(countdown.AttrDuration, fmt.Sprint(c.Duration))
	}
	if c.ServerTime != "" {
		el.SetAttr(countdown.AttrServerTime, c.ServerTime)
	}
	return el
}

func (c *CountdownCmd) Run(ctx context.Context, out io.Writer) error {
	el := c.element()
	doc := dom.NewDocument(el)
	if c.Once {
		if service.NewCountdownService(service.WithLive(c.Live)).Tick(doc) == 0 {
			return errors.New("nothing to count down: set --time or --start with --duration")
		}
		fmt.Fprintln(out, el.Text())
		return nil
	}
	serv := service.NewCountdownService(
		service.WithLive(c.Live),
		service.WithTickHook(func(rendered int) {
			if rendered > 0 {
				fmt.Fprintln(out, el.Text())
			}
		}),
	)
	if _, err := countdown.Parse(el); err != nil {
		return errors.New("nothing to count down: set --time or --start with --duration")
	}
	return serv.Run(ctx, doc, c.Interval)
}
