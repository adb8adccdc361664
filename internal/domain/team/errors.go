package team

import "errors"

var (
	ErrBadRequest       = errors.New("bad request")
	ErrNotFound         = errors.New("not found")
	ErrUnauthorized     = errors.New("unauthorized")
	ErrTeamFull         = errors.New("team is full")
	ErrAlreadyMember    = errors.New("already a member")
	ErrNotRecruiting    = errors.New("team is not recruiting")
	ErrDuplicateRequest = errors.New("already applied to this team")
	ErrCaptainRemoval   = errors.New("cannot remove team captain")
)

func IsErrBadRequest(err error) bool       { return errors.Is(err, ErrBadRequest) }
func IsErrNotFound(err error) bool         { return errors.Is(err, ErrNotFound) }
func IsErrUnauthorized(err error) bool     { return errors.Is(err, ErrUnauthorized) }
func IsErrTeamFull(err error) bool         { return errors.Is(err, ErrTeamFull) }
func IsErrAlreadyMember(err error) bool    { return errors.Is(err, ErrAlreadyMember) }
func IsErrNotRecruiting(err error) bool    { return errors.Is(err, ErrNotRecruiting) }
func IsErrDuplicateRequest(err error) bool { return errors.Is(err, ErrDuplicateRequest) }
func IsErrCaptainRemoval(err error) bool   { return errors.Is(err, ErrCaptainRemoval) }
