package linkpreview

import "errors"

// Sentinel errors for preview fetching.
var (
	ErrInvalidURL        = errors.New("invalid preview URL")
	ErrRequest           = errors.New("preview request failed")
	ErrUnexpectedStatus  = errors.New("unexpected HTTP status")
	ErrTooManyRedirects  = errors.New("too many redirects")
	ErrUnreadableContent = errors.New("unreadable page content")
)
