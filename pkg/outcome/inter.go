package outcome

import "time"

type ValueProvider[T any] interface {
	// Value returns the successful payload value
	Value() T
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// WithFailure defines an interface for types that can return a value or a failure payload
type WithFailure[T, E any] interface {
	ValueProvider[T]
	// Err returns the failure payload if the operation failed
	Err() E
	// IsSuccess returns true if the operation was successful
	IsSuccess() bool
}

// WithPresence defines an interface for types that may hold no value at all
type WithPresence[T any] interface {
	ValueProvider[T]
	// IsPresent returns true if a payload value is held
	IsPresent() bool
}
