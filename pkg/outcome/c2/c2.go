package c2

import (
	"context"

	"github.com/ib-77/outcome/pkg/outcome"
	"github.com/ib-77/outcome/pkg/outcome/solo"
)

// Chain wraps an outcome.Outcome with context to enable fluent chaining.
// It keeps the original input alongside the current result so several
// alternatives can branch from the same source value.
type Chain[T, U, E any] struct {
	ctx    context.Context
	input  outcome.Outcome[T, E]
	result outcome.Outcome[U, E]
}

// Start creates a new chain from an outcome.Outcome
func Start[T, U, E any](ctx context.Context, result outcome.Outcome[T, E]) *Chain[T, U, E] {
	return &Chain[T, U, E]{
		ctx:   ctx,
		input: result,
	}
}

// FromValue creates a new chain from a successful value
func FromValue[T, E any](ctx context.Context, value T) *Chain[T, T, E] {
	return &Chain[T, T, E]{
		ctx:    ctx,
		input:  outcome.Success[T, E](value),
		result: outcome.Success[T, E](value),
	}
}

// Result returns the underlying outcome.Outcome
func (c *Chain[T, U, E]) Result() outcome.Outcome[U, E] {
	return c.result
}

func (c *Chain[T, U, E]) Input() outcome.Outcome[T, E] {
	return c.input
}

// Then chains a function that returns outcome.Outcome[U, E]
func (c *Chain[T, U, E]) Then(onSuccess func(context.Context, T) outcome.Outcome[U, E]) *Chain[T, U, E] {
	return &Chain[T, U, E]{
		ctx:    c.ctx,
		input:  c.input,
		result: solo.Switch(c.ctx, c.input, onSuccess),
	}
}

// ThenTry chains a function that returns (U, error)
func ThenTry[T, U any](c *Chain[T, U, error], tryOnSuccess func(context.Context, T) (U, error)) *Chain[T, U, error] {
	return &Chain[T, U, error]{
		ctx:    c.ctx,
		input:  c.input,
		result: solo.Try(c.ctx, c.input, tryOnSuccess),
	}
}

// Map chains a pure transformation function
func (c *Chain[T, U, E]) Map(onSuccess func(context.Context, T) U) *Chain[T, U, E] {
	return &Chain[T, U, E]{
		ctx:    c.ctx,
		input:  c.input,
		result: solo.Map(c.ctx, c.input, onSuccess),
	}
}

// MapErr rewrites the failure payload of the current result, keeping the input
func (c *Chain[T, U, E]) MapErr(onFailure func(context.Context, E) E) *Chain[T, U, E] {
	return &Chain[T, U, E]{
		ctx:    c.ctx,
		input:  c.input,
		result: solo.MapErr(c.ctx, c.result, onFailure),
	}
}

// Ensure performs a side effect without changing the result
func (c *Chain[T, U, E]) Ensure(onSuccess func(context.Context, T)) *Chain[T, T, E] {
	return &Chain[T, T, E]{
		ctx:   c.ctx,
		input: c.input,
		result: solo.Tee(c.ctx, c.input,
			func(ctx context.Context, result outcome.Outcome[T, E]) {
				if result.IsSuccess() {
					onSuccess(ctx, result.Value())
				}
			}),
	}
}

// Finally collapses the chain into a final result using solo.Finally
func (c *Chain[T, U, E]) Finally(onSuccess func(context.Context, T) U,
	onFailure func(context.Context, E) U) U {
	return solo.Finally(c.ctx, c.input, onSuccess, onFailure)
}
