// Package errors provides custom error types for the application.
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Auth errors
var (
	ErrSessionNotFound    = errors.New("session not found or expired")
	ErrNotLoggedIn        = errors.New("User not logged in.")
	ErrInvalidCredentials = errors.New("Login failed. Please check your credentials.")
	ErrMissingFields      = errors.New("All fields are required.")
	ErrInsufficientRole   = errors.New("insufficient permissions")
	ErrRegistrationFailed = errors.New("Registration failed.")
	ErrProfileFetchFailed = errors.New("Failed to fetch user details.")
	ErrUserNotFound       = errors.New("User not found.")
)

// Disposal workflow errors
var (
	ErrDisposalNotFound     = errors.New("disposal not found")
	ErrNoImage              = errors.New("Please select an image of the item.")
	ErrInvalidImage         = errors.New("only image files are accepted")
	ErrImageTooLarge        = errors.New("image exceeds the maximum upload size")
	ErrBinFull              = errors.New("Selected bin is full. Please choose another bin.")
	ErrBinNotInSelection    = errors.New("bin is not in the selection list")
	ErrInvalidTransition    = errors.New("action not allowed in the current disposal state")
	ErrClassificationFailed = errors.New("Failed to classify the item.")
	ErrDepositFailed        = errors.New("Failed to deposit item to bin.")
	ErrRewardFailed         = errors.New("Reward failed.")
	ErrRewardClaimNotFound  = errors.New("reward claim not found")
	ErrDisposalBusy         = errors.New("disposal is already being processed")
	ErrChainInterrupted     = errors.New("Processing was interrupted. Please try again.")
)

// Management errors
var (
	ErrFetchUsersFailed    = errors.New("Failed to fetch users")
	ErrDeleteUserFailed    = errors.New("Failed to delete user")
	ErrFetchBinsFailed     = errors.New("Failed to fetch bins")
	ErrDeleteBinFailed     = errors.New("Failed to delete bin")
	ErrAddBinFailed        = errors.New("Failed to add bin")
	ErrFetchDepositsFailed = errors.New("Failed to fetch deposits")
	ErrRecordNotFound      = errors.New("record not found")
)

// BackendError is the uniform error returned by every backend call.
// Op names the call ("list bins", "login", ...), StatusCode is zero when the
// request never produced a response.
type BackendError struct {
	Op         string
	StatusCode int
	Message    string
	Err        error
}

func (e *BackendError) Error() string {
	switch {
	case e.StatusCode == 0 && e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	case e.Message != "":
		return fmt.Sprintf("%s: %d %s", e.Op, e.StatusCode, e.Message)
	default:
		return fmt.Sprintf("%s: %d %s", e.Op, e.StatusCode, http.StatusText(e.StatusCode))
	}
}

func (e *BackendError) Unwrap() error {
	return e.Err
}

// Detail returns the backend supplied message, falling back to the HTTP
// status text.
func (e *BackendError) Detail() string {
	if e.Message != "" {
		return e.Message
	}
	if e.StatusCode != 0 {
		return http.StatusText(e.StatusCode)
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return ""
}

// AsBackendError unwraps err into a *BackendError.
func AsBackendError(err error) (*BackendError, bool) {
	var be *BackendError
	if errors.As(err, &be) {
		return be, true
	}
	return nil, false
}

// IsStatus reports whether err is a BackendError with the given HTTP status.
func IsStatus(err error, status int) bool {
	be, ok := AsBackendError(err)
	return ok && be.StatusCode == status
}

// UserFacingError pairs the message shown to the user with its cause.
type UserFacingError struct {
	Message error
	Cause   error
}

func (e *UserFacingError) Error() string {
	return e.Message.Error()
}

func (e *UserFacingError) Unwrap() []error {
	return []error{e.Message, e.Cause}
}

// Wrap attaches a user facing sentinel to cause. errors.Is matches both.
func Wrap(message, cause error) error {
	if cause == nil {
		return message
	}
	return &UserFacingError{Message: message, Cause: cause}
}
