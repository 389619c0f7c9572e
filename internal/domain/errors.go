package domain

import "errors"

var (
	ErrEventNotFound      = errors.New("event not found")
	ErrRegistrantNotFound = errors.New("registrant not found")
	ErrAccountNotFound    = errors.New("account not found")
)

var (
	ErrEventFull            = errors.New("event is fully booked")
	ErrAlreadyRegistered    = errors.New("already registered for this event")
	ErrRegistrationConflict = errors.New("registration lost a concurrent update, retry")
)

var (
	ErrEmailTaken         = errors.New("email is already taken")
	ErrAdminExists        = errors.New("first admin has already been registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

var (
	ErrValidation       = errors.New("validation error")
	ErrStoreUnavailable = errors.New("store unavailable")
)
