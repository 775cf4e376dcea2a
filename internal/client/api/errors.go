package api

import "errors"

var (
	// ErrServer covers transport failures, timeouts, and malformed responses.
	// The wrapped detail is for logs; the sentinel text is what users see.
	ErrServer = errors.New("server error, please try again")

	// ErrRequestPending is returned when an auth request is started while a
	// previous one is still in flight. The caller should ignore the action,
	// the same way the app disables its button while loading.
	ErrRequestPending = errors.New("request already in progress")
)

// AuthError is a rejection from the backend (non-2xx) carrying a message
// suitable for direct display.
type AuthError struct {
	StatusCode int
	Message    string
}

func (e *AuthError) Error() string {
	return e.Message
}

// ValidationError reports a client-side validation failure. It is returned
// before any network call is made.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
