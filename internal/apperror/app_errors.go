package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrSessionBusy  = errors.New("session is busy")
	ErrGameFinished = errors.New("game is already finished")
	ErrCellOccupied = errors.New("cell is already occupied")
	ErrNoActiveGame = errors.New("no active game")
	ErrInvalidCell  = errors.New("invalid cell index")
)

// ValidationError - bad or missing caller input, rejected before any network call.
type ValidationError struct {
	Field  string
	Reason string
}

func (that *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %q: %s", that.Field, that.Reason)
}

func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// RemoteError - a non-success HTTP status or a transport failure.
// StatusCode is 0 when the request never produced a response.
// Body holds the best-effort parsed response body: decoded JSON when the
// content type says JSON, the raw text otherwise, nil when there was none.
type RemoteError struct {
	StatusCode int
	Body       any
	Raw        []byte
	Err        error
}

func (that *RemoteError) Error() string {
	if that.StatusCode == 0 {
		return fmt.Sprintf("remote request failed: %v", that.Err)
	}
	return fmt.Sprintf("remote responded with status %d", that.StatusCode)
}

func (that *RemoteError) Unwrap() error {
	return that.Err
}

// IsClientRejection - reports whether the remote rejected the request itself (4xx).
func (that *RemoteError) IsClientRejection() bool {
	return that.StatusCode >= http.StatusBadRequest && that.StatusCode < http.StatusInternalServerError
}

// IsServerFailure - reports whether the failure was on the remote or transport side.
func (that *RemoteError) IsServerFailure() bool {
	return that.StatusCode == 0 || that.StatusCode >= http.StatusInternalServerError
}
