package domain

import "errors"

var (
	// ErrInvalidShift is returned when a caller references a shift the catalog does not define.
	ErrInvalidShift = errors.New("invalid shift")

	// ErrInvalidEntry is returned for an entry index outside of its shift.
	ErrInvalidEntry = errors.New("invalid entry")

	// ErrInvalidTimeSpec is returned for a malformed HH:MM value.
	ErrInvalidTimeSpec = errors.New("invalid time spec")

	// ErrTimerRegistrationFailed is returned when the timer facility rejects a registration.
	ErrTimerRegistrationFailed = errors.New("timer registration failed")

	// ErrDeliveryFailed is returned when the messaging platform could not deliver a message.
	ErrDeliveryFailed = errors.New("delivery failed")

	// ErrPersistenceCorrupt is returned when a stored snapshot cannot be loaded.
	ErrPersistenceCorrupt = errors.New("persistence corrupt")

	// ErrInvalidAction is returned for an unparseable callback payload or command.
	ErrInvalidAction = errors.New("invalid action")
)
