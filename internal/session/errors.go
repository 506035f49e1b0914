package session

import "errors"

// AuthError reports a failed authentication attempt. Reason carries the auth
// endpoint's stated message and is safe to show to the user.
type AuthError struct {
	Reason string
}

func (e *AuthError) Error() string {
	if e.Reason == "" {
		return "authentication failed"
	}
	return e.Reason
}

// ErrCorruptState marks unusable persisted session state. It is resolved by a
// forced logout and never surfaced to the user.
var ErrCorruptState = errors.New("corrupt persisted session state")

// ErrLoginSuperseded is returned when a logout landed while the login call was
// in flight. The logout wins and the endpoint's response is discarded.
var ErrLoginSuperseded = errors.New("login superseded by logout")

// ErrInvalidAuthPair rejects adopting a token without a valid user or vice
// versa; the pairing invariant is enforced at the API.
var ErrInvalidAuthPair = errors.New("token and user must be set together")
