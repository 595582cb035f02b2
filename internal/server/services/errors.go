package services

import "errors"

var (
	ErrEventNotFound  = errors.New("event not found")
	ErrListNotFound   = errors.New("check-in list not found")
	ErrInvalidRequest = errors.New("invalid request")
)
