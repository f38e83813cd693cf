package tiny

import (
	"context"

	"github.com/ib-77/outcome/pkg/outcome"
	"github.com/ib-77/outcome/pkg/outcome/solo"
)

type Chain[T, E any] struct {
	ctx context.Context
	res outcome.Outcome[T, E]
}

func Start[T, E any](ctx context.Context, r outcome.Outcome[T, E]) Chain[T, E] {
	return Chain[T, E]{ctx: ctx, res: r}
}

func FromValue[T, E any](ctx context.Context, v T) Chain[T, E] {
	return Start(ctx, outcome.Success[T, E](v))
}

func (c Chain[T, E]) Result() outcome.Outcome[T, E] {
	return c.res
}

// Then composes functions that already return outcome.Outcome[T, E]
func (c Chain[T, E]) Then(onSuccess func(ctx context.Context, t T) outcome.Outcome[T, E]) Chain[T, E] {
	if c.res.IsFailure() {
		return c
	}
	return Chain[T, E]{ctx: c.ctx, res: onSuccess(c.ctx, c.res.Value())}
}

func (c Chain[T, E]) RepeatUntil(onSuccess func(ctx context.Context, t T) outcome.Outcome[T, E],
	until func(ctx context.Context, t T) bool) Chain[T, E] {

	if c.res.IsFailure() {
		return c
	}

	for {
		c = c.Then(onSuccess)

		if c.res.IsFailure() || !until(c.ctx, c.res.Value()) {
			return c
		}
	}
}

func (c Chain[T, E]) While(onSuccess func(ctx context.Context, t T) outcome.Outcome[T, E],
	while func(ctx context.Context, t T) bool) Chain[T, E] {

	for !c.res.IsFailure() && while(c.ctx, c.res.Value()) {
		c = c.Then(onSuccess)
	}
	return c
}

func (c Chain[T, E]) Or(alternative Chain[T, E]) Chain[T, E] {
	return c.or(alternative)
}

func (c Chain[T, E]) or(chains ...Chain[T, E]) Chain[T, E] {
	candidates := make([]Chain[T, E], 0, len(chains)+1)
	candidates = append(candidates, c)
	candidates = append(candidates, chains...)

	hasFail := false
	var failRes outcome.Outcome[T, E]
	var failCtx context.Context

	for _, ch := range candidates {
		res := ch.res

		if res.IsSuccess() {
			return Chain[T, E]{ctx: ch.ctx, res: res}
		}

		if res.IsFailure() && !hasFail {
			hasFail = true
			failRes = res
			failCtx = ch.ctx
		}
	}

	if hasFail {
		return Chain[T, E]{ctx: failCtx, res: failRes}
	}

	return c
}

func (c Chain[T, E]) And(required Chain[T, E]) Chain[T, E] {
	return c.and(required)
}

func (c Chain[T, E]) and(chains ...Chain[T, E]) Chain[T, E] {
	candidates := make([]Chain[T, E], 0, len(chains)+1)
	candidates = append(candidates, c)
	candidates = append(candidates, chains...)

	var res outcome.Outcome[T, E]
	for _, ch := range candidates {
		res = ch.res

		if res.IsFailure() {
			return Chain[T, E]{ctx: ch.ctx, res: res}
		}
	}

	return Chain[T, E]{ctx: c.ctx, res: res}
}

// Map transforms the successful value to a new value
func (c Chain[T, E]) Map(onSuccess func(ctx context.Context, t T) T) Chain[T, E] {
	if c.res.IsFailure() {
		return c
	}

	return Chain[T, E]{ctx: c.ctx, res: outcome.Success[T, E](onSuccess(c.ctx, c.res.Value()))}
}

// MapErr transforms the failure payload, leaving a success untouched
func (c Chain[T, E]) MapErr(onFailure func(ctx context.Context, err E) E) Chain[T, E] {
	if c.res.IsSuccess() {
		return c
	}

	return Chain[T, E]{ctx: c.ctx, res: solo.MapErr(c.ctx, c.res, onFailure)}
}

// Ensure triggers side effects for success/failure without changing the result
func (c Chain[T, E]) Ensure(onSuccess func(context.Context, T), onFailure func(context.Context, E)) Chain[T, E] {

	if c.res.IsFailure() {
		if onFailure != nil {
			onFailure(c.ctx, c.res.Err())
		}
		return c
	}

	if onSuccess != nil {
		onSuccess(c.ctx, c.res.Value())
	}
	return c
}

// UnwrapOr collapses the chain to the success value or the given default
func (c Chain[T, E]) UnwrapOr(def T) T {
	return c.res.UnwrapOr(def)
}

// Finally collapses the chain to a final value, delegating to solo.Finally
func (c Chain[T, E]) Finally(
	onSuccess func(context.Context, T) T,
	onFailure func(context.Context, E) T,
) T {
	return solo.Finally(c.ctx, c.res, onSuccess, onFailure)
}
