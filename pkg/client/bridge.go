package client

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/limbo/flowmotion/pkg/entity"
)

// Bridge is a page context's handle on the background worker.
type Bridge struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

func NewBridge(baseURL string) *Bridge {
	return &Bridge{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Register announces a page context and keeps the returned token for later
// calls.
func (b *Bridge) Register(ctx context.Context, req entity.RegisterContextRequest) (*entity.RegisterContextResponse, error) {
	var res entity.RegisterContextResponse
	if err := b.doRequest(ctx, http.MethodPost, "/api/v1/clients", req, &res); err != nil {
		return nil, fmt.Errorf("bridge.Register: %w", err)
	}
	b.token = res.Token
	return &res, nil
}

// Unregister removes the page context and forgets its token.
func (b *Bridge) Unregister(ctx context.Context) error {
	if err := b.doRequest(ctx, http.MethodDelete, "/api/v1/clients/me", nil, nil); err != nil {
		return fmt.Errorf("bridge.Unregister: %w", err)
	}
	b.token = ""
	return nil
}

func (b *Bridge) PostMessage(ctx context.Context, msg entity.WorkerMessage) error {
	if err := b.doRequest(ctx, http.MethodPost, "/api/v1/messages", msg, nil); err != nil {
		return fmt.Errorf("bridge.PostMessage: %w", err)
	}
	return nil
}

func (b *Bridge) Click(ctx context.Context, tag, action string) error {
	if err := b.doRequest(ctx, http.MethodPost, "/api/v1/notifications/click", entity.ClickRequest{Tag: tag, Action: action}, nil); err != nil {
		return fmt.Errorf("bridge.Click: %w", err)
	}
	return nil
}

func (b *Bridge) Notifications(ctx context.Context) ([]entity.Notification, error) {
	var res []entity.Notification
	if err := b.doRequest(ctx, http.MethodGet, "/api/v1/notifications", nil, &res); err != nil {
		return nil, fmt.Errorf("bridge.Notifications: %w", err)
	}
	return res, nil
}

func (b *Bridge) doRequest(ctx context.Context, method, path string, body any, out any) error {
	var reqBody *bytes.Reader
	if body != nil {
		data, err := sonic.ConfigDefault.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	} else {
		reqBody = bytes.NewReader(nil)
	}
	req, err := http.NewRequestWithContext(ctx, method, b.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if b.token != "" {
		req.Header.Set("Authorization", "Bearer "+b.token)
	}
	return send(b.httpClient, req, out)
}
