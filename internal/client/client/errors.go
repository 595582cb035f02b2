package client

import "errors"

var (
	ErrUnavailable  = errors.New("authority unavailable")
	ErrUnauthorized = errors.New("device not authorized")
	ErrRejected     = errors.New("request rejected by authority")
)
