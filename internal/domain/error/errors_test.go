package error

import (
	"errors"
	"fmt"
	"testing"
)

func TestBaseErrorTypes(t *testing.T) {
	if ErrInvalidFormat.Error() != "invalid message format" {
		t.Errorf("ErrInvalidFormat has unexpected message: %s", ErrInvalidFormat.Error())
	}
	if ErrInvalidAmount.Error() != "invalid amount format" {
		t.Errorf("ErrInvalidAmount has unexpected message: %s", ErrInvalidAmount.Error())
	}
}

func TestErrorCode(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"InvalidFormat", ErrInvalidFormat, 4001},
		{"InvalidAmount", ErrInvalidAmount, 4002},
		{"InvalidRequest", ErrInvalidRequest, 4003},
		{"Unauthorized", ErrUnauthorized, 4010},
		{"CategoryNotFound", ErrCategoryNotFound, 4040},
		{"CategoryNotFoundTyped", NewCategoryNotFoundError("xyz"), 4040},
		{"CategoryAmbiguousTyped", NewCategoryAmbiguousError("a", 3), 4090},
		{"UserCreationFailed", ErrUserCreationFailed, 5001},
		{"Persistence", ErrPersistence, 5002},
		{"UnknownError", errors.New("unknown error"), 5000},
		{"WrappedError", fmt.Errorf("wrapped: %w", ErrInvalidAmount), 4002},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			code := ErrorCode(tc.err)
			if code != tc.expected {
				t.Errorf("ErrorCode(%v) = %d, want %d", tc.err, code, tc.expected)
			}
		})
	}
}

func TestCategoryResolutionError(t *testing.T) {
	notFound := NewCategoryNotFoundError("xyz123")
	if !errors.Is(notFound, ErrCategoryNotFound) {
		t.Errorf("errors.Is(notFound, ErrCategoryNotFound) = false, want true")
	}
	if errors.Is(notFound, ErrCategoryAmbiguous) {
		t.Errorf("errors.Is(notFound, ErrCategoryAmbiguous) = true, want false")
	}
	if notFound.Error() != `no category matches "xyz123"` {
		t.Errorf("unexpected message: %s", notFound.Error())
	}

	ambiguous := NewCategoryAmbiguousError("a", 2)
	if !errors.Is(ambiguous, ErrCategoryNotFound) {
		t.Errorf("errors.Is(ambiguous, ErrCategoryNotFound) = false, want true")
	}
	if !IsCategoryAmbiguousError(ambiguous) {
		t.Errorf("IsCategoryAmbiguousError(ambiguous) = false, want true")
	}
	if ambiguous.Error() != `2 categories match "a"` {
		t.Errorf("unexpected message: %s", ambiguous.Error())
	}

	fields := ambiguous.(*CategoryResolutionError).LogFields()
	if fields["matches"] != 2 || fields["error_code"] != CodeCategoryAmbiguous {
		t.Errorf("unexpected log fields: %v", fields)
	}
}

func TestPipelineError(t *testing.T) {
	pipelineErr := NewPipelineError("resolve", "628123456789", "category lookup", NewCategoryNotFoundError("xyz"))

	expected := `resolve failed for sender 628123456789: category lookup: no category matches "xyz"`
	if pipelineErr.Error() != expected {
		t.Errorf("PipelineError.Error() = %s, want %s", pipelineErr.Error(), expected)
	}
	if !IsCategoryNotFoundError(pipelineErr) {
		t.Errorf("IsCategoryNotFoundError(pipelineErr) = false, want true")
	}
	if !IsClientError(pipelineErr) {
		t.Errorf("IsClientError(pipelineErr) = false, want true")
	}

	var typed *PipelineError
	if !errors.As(pipelineErr, &typed) {
		t.Fatalf("errors.As did not find *PipelineError")
	}
	fields := typed.LogFields()
	if fields["stage"] != "resolve" || fields["category_token"] != "xyz" {
		t.Errorf("unexpected log fields: %v", fields)
	}
}

func TestErrorHelpers(t *testing.T) {
	wrappedPersistence := fmt.Errorf("%w: insert failed", ErrPersistence)
	if !IsPersistenceError(wrappedPersistence) {
		t.Errorf("IsPersistenceError should be true for wrapped ErrPersistence")
	}
	if IsClientError(wrappedPersistence) {
		t.Errorf("IsClientError should be false for persistence errors")
	}
	if !IsUserCreationFailedError(fmt.Errorf("%w: duplicate", ErrUserCreationFailed)) {
		t.Errorf("IsUserCreationFailedError should be true for wrapped ErrUserCreationFailed")
	}
	if !IsUserNotFoundError(ErrUserNotFound) {
		t.Errorf("IsUserNotFoundError should be true for ErrUserNotFound")
	}
	if !IsInvalidFormatError(ErrInvalidFormat) || !IsInvalidAmountError(ErrInvalidAmount) {
		t.Errorf("format and amount helpers should match their sentinels")
	}
}
