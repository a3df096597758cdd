package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/flowmotion/internal/error_values"
	"github.com/limbo/flowmotion/pkg/entity"
)

const (
	HeaderRequestedWith = "X-Requested-With"
	HeaderCSRFToken     = "X-CSRFToken"
	RequestedWithXHR    = "XMLHttpRequest"

	CSRFField  = "csrfmiddlewaretoken"
	CSRFCookie = "csrftoken"
)

// Client talks to the FlowMotion web application.
type Client struct {
	baseURL    string
	cookies    []*http.Cookie
	httpClient *http.Client
}

// New creates a client for the application at baseURL. Session cookies are
// attached to every request the client builds itself.
func New(baseURL string, cookies ...*http.Cookie) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		cookies: cookies,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// CSRFToken takes the anti-forgery token from the form body, falling back to
// the csrftoken cookie.
func CSRFToken(form *entity.HabitForm) string {
	if tok := form.Fields.Get(CSRFField); tok != "" {
		return tok
	}
	for _, ck := range form.Cookies {
		if ck.Name == CSRFCookie {
			return ck.Value
		}
	}
	return ""
}

// Respond posts a habit-response form in the background and decodes the
// JSON reply.
func (c *Client) Respond(ctx context.Context, form *entity.HabitForm) (*entity.RespondResult, error) {
	req, err := c.newFormRequest(ctx, form.Action, form.Fields, form.Cookies)
	if err != nil {
		return nil, fmt.Errorf("client.Respond: %w", err)
	}
	req.Header.Set(HeaderRequestedWith, RequestedWithXHR)
	req.Header.Set("Accept", "application/json")
	if tok := CSRFToken(form); tok != "" {
		req.Header.Set(HeaderCSRFToken, tok)
	}
	var res entity.RespondResult
	if err := c.do(req, &res); err != nil {
		return nil, fmt.Errorf("client.Respond: %w", err)
	}
	return &res, nil
}

// SubmitStandard performs an ordinary form submission: no XHR marker,
// redirects followed, response body discarded.
func (c *Client) SubmitStandard(ctx context.Context, form *entity.HabitForm) error {
	req, err := c.newFormRequest(ctx, form.Action, form.Fields, form.Cookies)
	if err != nil {
		return fmt.Errorf("client.SubmitStandard: %w", err)
	}
	if err := c.do(req, nil); err != nil {
		return fmt.Errorf("client.SubmitStandard: %w", err)
	}
	return nil
}

// Acknowledge marks a habit reminder as acknowledged.
func (c *Client) Acknowledge(ctx context.Context, habitID uuid.UUID, token string) (*entity.AcknowledgeResult, error) {
	fields := url.Values{}
	if token != "" {
		fields.Set(CSRFField, token)
	}
	req, err := c.newFormRequest(ctx, c.baseURL+"/habits/"+url.PathEscape(habitID.String())+"/acknowledge/", fields, nil)
	if err != nil {
		return nil, fmt.Errorf("client.Acknowledge: %w", err)
	}
	req.Header.Set(HeaderRequestedWith, RequestedWithXHR)
	if token != "" {
		req.Header.Set(HeaderCSRFToken, token)
	}
	var res entity.AcknowledgeResult
	if err := c.do(req, &res); err != nil {
		return nil, fmt.Errorf("client.Acknowledge: %w", err)
	}
	return &res, nil
}

// Reminders returns today's upcoming reminders for the session user.
func (c *Client) Reminders(ctx context.Context) ([]entity.Reminder, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/notifications/reminders/", nil)
	if err != nil {
		return nil, fmt.Errorf("client.Reminders: create request: %w", err)
	}
	c.addSession(req)
	req.Header.Set(HeaderRequestedWith, RequestedWithXHR)
	var res entity.RemindersResponse
	if err := c.do(req, &res); err != nil {
		return nil, fmt.Errorf("client.Reminders: %w", err)
	}
	return res.Reminders, nil
}

func (c *Client) newFormRequest(ctx context.Context, target string, fields url.Values, cookies []*http.Cookie) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, strings.NewReader(fields.Encode()))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	c.addSession(req)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	return req, nil
}

func (c *Client) addSession(req *http.Request) {
	for _, ck := range c.cookies {
		req.AddCookie(ck)
	}
}

func (c *Client) do(req *http.Request, out any) error {
	return send(c.httpClient, req, out)
}

func send(hc *http.Client, req *http.Request, out any) error {
	resp, err := hc.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // best-effort close

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		respBody, readErr := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
		if readErr != nil {
			return &HTTPError{StatusCode: resp.StatusCode, Message: fmt.Sprintf("failed to read body: %v", readErr)}
		}
		return &HTTPError{StatusCode: resp.StatusCode, Message: string(respBody)}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := sonic.ConfigDefault.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %s", errorvalues.ErrMalformedBody, err.Error())
	}
	return nil
}
