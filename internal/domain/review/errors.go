package review

import "errors"

var (
	// ErrReviewNotFound indicates the review doesn't exist.
	ErrReviewNotFound = errors.New("review not found")
	// ErrInvalidInput indicates invalid review input.
	ErrInvalidInput = errors.New("invalid review input")
)
