package admin

import "errors"

var (
	ErrUnknownEntity = errors.New("unknown admin entity")
	ErrDuplicateView = errors.New("admin view is already registered")
	ErrEmptyViewName = errors.New("admin view name is empty")
	ErrInvalidBody   = errors.New("invalid admin request body")
)
