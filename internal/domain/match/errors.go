package match

import "errors"

var (
	ErrBadRequest    = errors.New("bad request")
	ErrNotFound      = errors.New("not found")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrMatchFull     = errors.New("match is full")
	ErrAlreadyJoined = errors.New("already joined this match")
	ErrNotJoined     = errors.New("not a participant of this match")
)

func IsErrBadRequest(err error) bool    { return errors.Is(err, ErrBadRequest) }
func IsErrNotFound(err error) bool      { return errors.Is(err, ErrNotFound) }
func IsErrUnauthorized(err error) bool  { return errors.Is(err, ErrUnauthorized) }
func IsErrMatchFull(err error) bool     { return errors.Is(err, ErrMatchFull) }
func IsErrAlreadyJoined(err error) bool { return errors.Is(err, ErrAlreadyJoined) }
func IsErrNotJoined(err error) bool     { return errors.Is(err, ErrNotJoined) }
