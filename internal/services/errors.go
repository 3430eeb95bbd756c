package services

import "errors"

// Typed failures returned by the interaction engine. Handlers map these to
// HTTP statuses; everything else propagates as a store failure.
var (
	ErrNotFound           = errors.New("resource not found")
	ErrForbidden          = errors.New("actor does not own this resource")
	ErrEmptyText          = errors.New("text is empty")
	ErrInvalidParent      = errors.New("invalid parent comment")
	ErrSelfFollow         = errors.New("cannot follow yourself")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)
