package guest

import "errors"

var (
	ErrBadRequest           = errors.New("bad request")
	ErrNotFound             = errors.New("not found")
	ErrUnauthorized         = errors.New("unauthorized")
	ErrDuplicateApplication = errors.New("already applied to this session")
	ErrSessionFull          = errors.New("session guest slots are full")
	ErrInvalidState         = errors.New("invalid application state")
)

func IsErrBadRequest(err error) bool           { return errors.Is(err, ErrBadRequest) }
func IsErrNotFound(err error) bool             { return errors.Is(err, ErrNotFound) }
func IsErrUnauthorized(err error) bool         { return errors.Is(err, ErrUnauthorized) }
func IsErrDuplicateApplication(err error) bool { return errors.Is(err, ErrDuplicateApplication) }
func IsErrSessionFull(err error) bool          { return errors.Is(err, ErrSessionFull) }
func IsErrInvalidState(err error) bool         { return errors.Is(err, ErrInvalidState) }
