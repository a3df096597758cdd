package errorvalues

import "errors"

var (
	ErrFellBack        = errors.New("background submission failed, standard submission performed")
	ErrNotAcknowledged = errors.New("server refused acknowledgement")
	ErrUnsuccessful    = errors.New("server reported unsuccessful response")
	ErrMalformedBody   = errors.New("malformed response body")
)

var (
	ErrWorkerNotReady       = errors.New("worker is not idle yet")
	ErrInvalidMessage       = errors.New("invalid worker message")
	ErrNotificationNotFound = errors.New("notification doesn't exist")
	ErrPageContextNotFound  = errors.New("page context doesn't exist")
	ErrInvalidToken         = errors.New("invalid token")
	ErrInvalidTickInterval  = errors.New("tick interval must be positive and at most one minute")
)
