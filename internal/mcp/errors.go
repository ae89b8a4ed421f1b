package mcp

import (
	"errors"
	"fmt"

	"github.com/eishan-studio/eishan/internal/domain/auth"
	"github.com/eishan-studio/eishan/internal/domain/project"
	"github.com/eishan-studio/eishan/internal/domain/review"
	"github.com/eishan-studio/eishan/internal/domain/view"
)

// errUnauthorized rejects mutating tool calls made without a session.
var errUnauthorized = errors.New("unauthorized: sign in before mutating content")

// errConfirmRequired rejects deletes missing the confirmation flag.
var errConfirmRequired = errors.New("confirmation required: pass confirm=true to delete")

// APIError represents an MCP error response.
type APIError struct {
	Code         string `json:"code"`
	Message      string `json:"message"`
	RecoveryHint string `json:"recovery_hint,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// MapError maps domain errors to MCP error codes.
func MapError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, project.ErrProjectNotFound):
		return &APIError{Code: "PROJECT_NOT_FOUND", Message: "project not found", RecoveryHint: "Check the project ID with list_projects"}
	case errors.Is(err, review.ErrReviewNotFound):
		return &APIError{Code: "REVIEW_NOT_FOUND", Message: "review not found", RecoveryHint: "Check the review ID with list_reviews"}
	case errors.Is(err, project.ErrInvalidInput), errors.Is(err, review.ErrInvalidInput), errors.Is(err, auth.ErrInvalidInput):
		return &APIError{Code: "INVALID_INPUT", Message: err.Error()}
	case errors.Is(err, errUnauthorized):
		return &APIError{Code: "UNAUTHORIZED", Message: errUnauthorized.Error(), RecoveryHint: "Sign in through the site login"}
	case errors.Is(err, errConfirmRequired):
		return &APIError{Code: "CONFIRM_REQUIRED", Message: errConfirmRequired.Error()}
	case errors.Is(err, view.ErrUnknownScreen):
		return &APIError{Code: "UNKNOWN_SCREEN", Message: err.Error(), RecoveryHint: "Valid screens: home, oil, login, register, dashboard"}
	default:
		return err
	}
}
