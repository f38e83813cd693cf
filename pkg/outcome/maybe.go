package outcome

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Maybe holds either a present payload of type T or nothing. The zero value
// is Absent.
type Maybe[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	isPresent bool
}

func Present[T any](v T) Maybe[T] {
	return Maybe[T]{
		value:     v,
		isPresent: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Absent[T any]() Maybe[T] {
	return Maybe[T]{
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func (m Maybe[T]) Value() T {
	return m.value
}

func (m Maybe[T]) IsPresent() bool {
	return m.isPresent
}

func (m Maybe[T]) IsAbsent() bool {
	return !m.isPresent
}

func (m Maybe[T]) CreatedAt() time.Time {
	return m.createdAt
}

func (m Maybe[T]) Id() uuid.UUID {
	return m.id
}

// Get returns the payload and true, or the zero value and false.
func (m Maybe[T]) Get() (T, bool) {
	return m.value, m.isPresent
}

// UnwrapOr returns the payload if present, else def.
func (m Maybe[T]) UnwrapOr(def T) T {
	if m.isPresent {
		return m.value
	}
	return def
}

func (m Maybe[T]) String() string {
	if m.isPresent {
		return fmt.Sprint(m.value)
	}
	return "<absent>"
}

// MapMaybe applies f to a present payload; an absent value passes through,
// keeping its id and creation time.
func MapMaybe[In, Out any](m Maybe[In], f func(v In) Out) Maybe[Out] {
	if m.isPresent {
		return Maybe[Out]{
			value:     f(m.value),
			isPresent: true,
			createdAt: m.createdAt,
			id:        m.id,
		}
	}
	return Maybe[Out]{
		createdAt: m.createdAt,
		id:        m.id,
	}
}
