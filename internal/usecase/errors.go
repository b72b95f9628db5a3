package usecase

import "errors"

var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrInvalidInput = errors.New("invalid input")
	ErrInternal     = errors.New("internal error")

	ErrEmptyPostContent   = errors.New("post content cannot be empty")
	ErrPostContentTooLong = errors.New("post content too long (max 3000 characters)")
	ErrEmptyMessage       = errors.New("message content or media is required")
	ErrInvalidBucket      = errors.New("invalid bucket")
)
