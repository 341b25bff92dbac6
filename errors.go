package testmail

import (
	"errors"
	"fmt"
	"time"

	"github.com/testmail-app/client-go/internal/api"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrMissingAPIKey is returned when no API key is provided.
	ErrMissingAPIKey = errors.New("API key is required")

	// ErrMissingNamespace is returned when no namespace is provided.
	ErrMissingNamespace = errors.New("namespace is required")

	// ErrInvalidAddressFormat is returned when an address does not match
	// the {namespace}.{tag}@inbox.testmail.app pattern.
	ErrInvalidAddressFormat = errors.New("invalid inbox address format")

	// ErrNoInboxAvailable is returned when a receive operation has no
	// inbox to work with: none was passed and none is current.
	ErrNoInboxAvailable = errors.New("no inbox available")

	// ErrEmailTimeout is returned when polling exhausts its budget
	// without any new emails arriving.
	ErrEmailTimeout = errors.New("timed out waiting for email")

	// ErrUnauthorized is returned when the API key is invalid or expired.
	ErrUnauthorized = errors.New("invalid or expired API key")

	// ErrRateLimited is returned when the API rate limit is exceeded.
	ErrRateLimited = errors.New("rate limit exceeded")
)

// TestmailError is implemented by all SDK errors.
type TestmailError interface {
	error
	TestmailError() // marker method
}

// APIError represents an error response from the testmail.app API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("API error %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("API error %d", e.StatusCode)
}

// TestmailError implements the TestmailError interface.
func (e *APIError) TestmailError() {}

// Is implements errors.Is for sentinel error matching.
func (e *APIError) Is(target error) bool {
	switch e.StatusCode {
	case 401, 403:
		return target == ErrUnauthorized
	case 429:
		return target == ErrRateLimited
	}
	return false
}

// NetworkError represents a network-level failure.
type NetworkError struct {
	Err     error
	URL     string
	Attempt int
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// TestmailError implements the TestmailError interface.
func (e *NetworkError) TestmailError() {}

// TimeoutError is returned when a receive operation exhausts its polling
// budget. Attempts is the number of polls issued. LastErr holds the most
// recent transport or service error seen while polling, if any; a timeout
// does not distinguish "service kept failing" from "no email yet".
type TimeoutError struct {
	Timeout  time.Duration
	Attempts int
	LastErr  error
}

func (e *TimeoutError) Error() string {
	if e.LastErr != nil {
		return fmt.Sprintf("no email received after %v (%d polls, last error: %v)", e.Timeout, e.Attempts, e.LastErr)
	}
	return fmt.Sprintf("no email received after %v (%d polls)", e.Timeout, e.Attempts)
}

// Is implements errors.Is for sentinel error matching.
func (e *TimeoutError) Is(target error) bool {
	return target == ErrEmailTimeout
}

// TestmailError implements the TestmailError interface.
func (e *TimeoutError) TestmailError() {}

// AddressFormatError reports an address that failed to parse.
type AddressFormatError struct {
	Address string
}

func (e *AddressFormatError) Error() string {
	return fmt.Sprintf("address %q does not match {namespace}.{tag}@%s", e.Address, addressDomain)
}

// Is implements errors.Is for sentinel error matching.
func (e *AddressFormatError) Is(target error) bool {
	return target == ErrInvalidAddressFormat
}

// TestmailError implements the TestmailError interface.
func (e *AddressFormatError) TestmailError() {}

// wrapError converts internal API errors to public errors so that
// errors.Is() checks work with the public sentinels.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		return &APIError{
			StatusCode: apiErr.StatusCode,
			Message:    apiErr.Message,
		}
	}

	var netErr *api.NetworkError
	if errors.As(err, &netErr) {
		return &NetworkError{
			Err:     netErr.Err,
			URL:     netErr.URL,
			Attempt: netErr.Attempt,
		}
	}

	return err
}
