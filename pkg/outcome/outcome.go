package outcome

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Outcome holds either a success payload of type T or a failure payload of
// type E. Exactly one variant is active; values are immutable after
// construction.
type Outcome[T, E any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	err       E
	isSuccess bool
	isFailure bool
}

func Success[T, E any](v T) Outcome[T, E] {
	return Outcome[T, E]{
		value:     v,
		isSuccess: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Failure[T, E any](err E) Outcome[T, E] {
	return Outcome[T, E]{
		err:       err,
		isFailure: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// FailureFrom carries a failure across a payload type change, keeping the
// original failure payload, id and creation time.
func FailureFrom[In, Out, E any](from Outcome[In, E]) Outcome[Out, E] {
	return Outcome[Out, E]{
		err:       from.err,
		isFailure: from.isFailure,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

func (o Outcome[T, E]) Value() T {
	return o.value
}

func (o Outcome[T, E]) Err() E {
	return o.err
}

func (o Outcome[T, E]) IsSuccess() bool {
	return o.isSuccess
}

func (o Outcome[T, E]) IsFailure() bool {
	return o.isFailure
}

// IsEmpty reports a zero value that was never constructed through
// Success or Failure. Such a value is a programmer error, not a variant.
func (o Outcome[T, E]) IsEmpty() bool {
	return !o.isSuccess && !o.isFailure
}

func (o Outcome[T, E]) CreatedAt() time.Time {
	return o.createdAt
}

func (o Outcome[T, E]) Id() uuid.UUID {
	return o.id
}

// Get returns the success payload and true, or the zero value and false.
// The conditional-binding form: callers test the bool instead of aborting.
func (o Outcome[T, E]) Get() (T, bool) {
	return o.value, o.isSuccess
}

// GetErr returns the failure payload and true, or the zero value and false.
func (o Outcome[T, E]) GetErr() (E, bool) {
	return o.err, o.isFailure
}

// UnwrapOr returns the success payload, or def on failure. Never fails.
func (o Outcome[T, E]) UnwrapOr(def T) T {
	if o.isSuccess {
		return o.value
	}
	return def
}

// UnwrapOrElse returns the success payload, or the value computed from the
// failure payload.
func (o Outcome[T, E]) UnwrapOrElse(onFailure func(err E) T) T {
	if o.isSuccess {
		return o.value
	}
	return onFailure(o.err)
}

// Unwrap returns the success payload and panics on any other variant.
// Reserved for cases the caller has already proven impossible.
func (o Outcome[T, E]) Unwrap() T {
	if !o.isSuccess {
		panic(fmt.Sprintf("outcome: Unwrap on %s", o))
	}
	return o.value
}

// Expect is Unwrap with a caller-supplied panic message.
func (o Outcome[T, E]) Expect(msg string) T {
	if !o.isSuccess {
		panic(fmt.Sprintf("%s: %s", msg, o))
	}
	return o.value
}

func (o Outcome[T, E]) String() string {
	if o.isSuccess {
		return fmt.Sprintf("Ok(%v)", o.value)
	}
	if o.isFailure {
		return fmt.Sprintf("Err(%v)", o.err)
	}
	return "<empty>"
}

// Map applies f to the success payload; a failure passes through unchanged,
// keeping its payload, id and creation time. f must be total over In.
func Map[In, Out, E any](o Outcome[In, E], f func(v In) Out) Outcome[Out, E] {
	if o.isSuccess {
		return Outcome[Out, E]{
			value:     f(o.value),
			isSuccess: true,
			createdAt: o.createdAt,
			id:        o.id,
		}
	}
	return FailureFrom[In, Out](o)
}

// MapErr applies f to the failure payload; a success passes through unchanged.
func MapErr[T, E, F any](o Outcome[T, E], f func(err E) F) Outcome[T, F] {
	if o.isFailure {
		return Outcome[T, F]{
			err:       f(o.err),
			isFailure: true,
			createdAt: o.createdAt,
			id:        o.id,
		}
	}
	return Outcome[T, F]{
		value:     o.value,
		isSuccess: o.isSuccess,
		createdAt: o.createdAt,
		id:        o.id,
	}
}
