package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInvalidFormat     = 4001
	CodeInvalidAmount     = 4002
	CodeInvalidRequest    = 4003
	CodeUnauthorized      = 4010
	CodeCategoryNotFound  = 4040
	CodeCategoryAmbiguous = 4090

	// 5xxx - Server errors
	CodeInternalServer     = 5000
	CodeUserCreationFailed = 5001
	CodePersistence        = 5002
)

// Base error types
var (
	// ErrInvalidFormat is returned when a command message has fewer than two tokens
	ErrInvalidFormat = errors.New("invalid message format")

	// ErrInvalidAmount is returned when the amount token is not a finite number
	ErrInvalidAmount = errors.New("invalid amount format")

	// ErrCategoryNotFound is returned when no single category matches the category token
	ErrCategoryNotFound = errors.New("category not found")

	// ErrCategoryAmbiguous is returned when more than one category matches the category token.
	// It also matches ErrCategoryNotFound through errors.Is.
	ErrCategoryAmbiguous = errors.New("category is ambiguous")

	// ErrUserNotFound is returned when no user exists for a contact identifier
	ErrUserNotFound = errors.New("user not found")

	// ErrUserCreationFailed is returned when a user could not be resolved or created
	ErrUserCreationFailed = errors.New("user creation failed")

	// ErrPersistence is returned when the ledger entry could not be stored
	ErrPersistence = errors.New("persistence error")

	// ErrReplyDispatch is returned by message senders; it is logged and never surfaced
	ErrReplyDispatch = errors.New("reply dispatch failed")

	// ErrUnauthorized is returned when a caller presents a wrong shared secret
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")

	// ErrDatabaseConnection is returned when there's a problem talking to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrConstraintViolation is returned when a database constraint is violated
	ErrConstraintViolation = errors.New("database constraint violation")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidFormat):
		return CodeInvalidFormat
	case errors.Is(err, ErrInvalidAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrInvalidRequest):
		return CodeInvalidRequest
	case errors.Is(err, ErrUnauthorized):
		return CodeUnauthorized
	case errors.Is(err, ErrCategoryAmbiguous):
		return CodeCategoryAmbiguous
	case errors.Is(err, ErrCategoryNotFound):
		return CodeCategoryNotFound
	case errors.Is(err, ErrUserCreationFailed):
		return CodeUserCreationFailed
	case errors.Is(err, ErrPersistence):
		return CodePersistence
	default:
		return CodeInternalServer
	}
}

// CategoryResolutionError describes a category token that did not resolve to exactly one category
type CategoryResolutionError struct {
	Token   string
	Matches int
}

// Error implements the error interface
func (e *CategoryResolutionError) Error() string {
	if e.Matches == 0 {
		return fmt.Sprintf("no category matches %q", e.Token)
	}
	return fmt.Sprintf("%d categories match %q", e.Matches, e.Token)
}

// Is reports whether target is one of the category sentinels this error stands for
func (e *CategoryResolutionError) Is(target error) bool {
	if target == ErrCategoryNotFound {
		return true
	}
	return target == ErrCategoryAmbiguous && e.Matches > 1
}

// LogFields returns a map of fields for structured logging
func (e *CategoryResolutionError) LogFields() map[string]any {
	return map[string]any{
		"error_type":     "category_resolution",
		"category_token": e.Token,
		"matches":        e.Matches,
		"error_code":     ErrorCode(e),
	}
}

// NewCategoryNotFoundError creates an error for a token without matching categories
func NewCategoryNotFoundError(token string) error {
	return &CategoryResolutionError{Token: token}
}

// NewCategoryAmbiguousError creates an error for a token matching several categories
func NewCategoryAmbiguousError(token string, matches int) error {
	return &CategoryResolutionError{Token: token, Matches: matches}
}

// PipelineError wraps a failure of one command pipeline stage
type PipelineError struct {
	Stage  string
	Sender string
	Reason string
	Err    error
}

// Error implements the error interface
func (e *PipelineError) Error() string {
	return fmt.Sprintf("%s failed for sender %s: %s: %v", e.Stage, e.Sender, e.Reason, e.Err)
}

// Unwrap returns the underlying error
func (e *PipelineError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *PipelineError) LogFields() map[string]any {
	fields := map[string]any{
		"error_type": "pipeline_error",
		"stage":      e.Stage,
		"sender":     e.Sender,
		"reason":     e.Reason,
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e.Err),
	}
	var categoryErr *CategoryResolutionError
	if errors.As(e.Err, &categoryErr) {
		fields["category_token"] = categoryErr.Token
		fields["matches"] = categoryErr.Matches
	}
	return fields
}

// NewPipelineError creates a detailed pipeline stage error
func NewPipelineError(stage, sender, reason string, err error) error {
	return &PipelineError{
		Stage:  stage,
		Sender: sender,
		Reason: reason,
		Err:    err,
	}
}

// IsInvalidFormatError checks if the error is a message format error
func IsInvalidFormatError(err error) bool {
	return errors.Is(err, ErrInvalidFormat)
}

// IsInvalidAmountError checks if the error is an amount parsing error
func IsInvalidAmountError(err error) bool {
	return errors.Is(err, ErrInvalidAmount)
}

// IsCategoryNotFoundError checks if the error is a category resolution error, ambiguous ones included
func IsCategoryNotFoundError(err error) bool {
	return errors.Is(err, ErrCategoryNotFound)
}

// IsCategoryAmbiguousError checks if the category token matched more than one category
func IsCategoryAmbiguousError(err error) bool {
	return errors.Is(err, ErrCategoryAmbiguous)
}

// IsUserNotFoundError checks if the error is a user not found error
func IsUserNotFoundError(err error) bool {
	return errors.Is(err, ErrUserNotFound)
}

// IsUserCreationFailedError checks if the user could not be resolved or created
func IsUserCreationFailedError(err error) bool {
	return errors.Is(err, ErrUserCreationFailed)
}

// IsPersistenceError checks if the ledger entry could not be stored
func IsPersistenceError(err error) bool {
	return errors.Is(err, ErrPersistence)
}

// IsClientError checks if the error was caused by the message content rather than the server
func IsClientError(err error) bool {
	return IsInvalidFormatError(err) ||
		IsInvalidAmountError(err) ||
		IsCategoryNotFoundError(err) ||
		errors.Is(err, ErrInvalidRequest)
}
