package domain

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExists         = errors.New("username already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrPasswordTooLong    = errors.New("password is too long")

	// ErrMissingSecret is returned when a token has to be minted but no
	// signing secret is configured.
	ErrMissingSecret = errors.New("signing secret is not configured")
	ErrInvalidToken  = errors.New("invalid token")

	ErrCityNotFound = errors.New("city not found")
	// ErrUpstream marks failures of the geocoding or weather provider.
	ErrUpstream = errors.New("upstream request failed")
)

// UpstreamError describes a failed provider call. Message is safe to return
// to clients: it never carries request URLs or credentials.
type UpstreamError struct {
	Provider string
	Status   int
	Message  string
	Err      error
}

func (e *UpstreamError) Error() string { return e.Message }

func (e *UpstreamError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrUpstream}
	}
	return []error{ErrUpstream, e.Err}
}
