package core

import "fmt"

// Error codes in CATEGORY.SPECIFIC form.
const (
	ErrCodeAlreadyInitialized = "LOGGER.ALREADY_INITIALIZED"
	ErrCodeConsumed           = "LOGGER.BUILDER_CONSUMED"
	ErrCodeEmptyModule        = "FILTER.EMPTY_MODULE"
	ErrCodeUnknownLevel       = "LEVEL.UNKNOWN"
	ErrCodeConfigLoad         = "CONFIG.LOAD_FAILED"
	ErrCodeConfigParse        = "CONFIG.PARSE_FAILED"
)

var (
	// ErrAlreadyInitialized is returned by a second successful-looking
	// initialization in the same process. The first registration stays active.
	ErrAlreadyInitialized = NewError(ErrCodeAlreadyInitialized, "logger already initialized", nil)

	// ErrConsumed is returned when a builder is initialized more than once.
	ErrConsumed = NewError(ErrCodeConsumed, "builder already consumed by Init", nil)

	// ErrEmptyModule is returned when a filter is created without a module path.
	ErrEmptyModule = NewError(ErrCodeEmptyModule, "filter module must not be empty", nil)

	// ErrUnknownLevel matches errors from ParseLevel.
	ErrUnknownLevel = NewError(ErrCodeUnknownLevel, "unrecognized level name", nil)

	// ErrConfigLoad and ErrConfigParse match configuration failures.
	ErrConfigLoad  = NewError(ErrCodeConfigLoad, "cannot load configuration", nil)
	ErrConfigParse = NewError(ErrCodeConfigParse, "invalid configuration", nil)
)

// Error is a coded error. Two Errors match under errors.Is when their codes
// are equal, so callers can compare against the exported sentinels even
// when the message carries extra detail.
type Error struct {
	Code    string
	Message string
	Cause   error
}

// NewError creates an Error with the given code, message and optional cause.
func NewError(code, message string, cause error) *Error {
	return &Error{Code: code, Message: message, Cause: cause}
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the cause for errors.Is/As.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches any *Error carrying the same code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}
