package api

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// WithContextID marks r as sent by page context cid.
func WithContextID(r *http.Request, cid uuid.UUID) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), cidContextKey, cid))
}
