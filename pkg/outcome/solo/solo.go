package solo

import (
	"context"
	"errors"

	"github.com/ib-77/outcome/pkg/outcome"
)

func Succeed[T, E any](input T) outcome.Outcome[T, E] {
	return outcome.Success[T, E](input)
}

func Fail[T, E any](err E) outcome.Outcome[T, E] {
	return outcome.Failure[T, E](err)
}

func Validate[T, E any](ctx context.Context, input T,
	validate func(ctx context.Context, in T) (valid bool, err E)) outcome.Outcome[T, E] {
	return AndValidate(ctx, Succeed[T, E](input), validate)
}

func AndValidate[T, E any](ctx context.Context, input outcome.Outcome[T, E],
	validate func(ctx context.Context, in T) (valid bool, err E)) outcome.Outcome[T, E] {

	if input.IsSuccess() {

		if valid, err := validate(ctx, input.Value()); valid {
			return outcome.Success[T, E](input.Value())
		} else {
			return outcome.Failure[T, E](err)
		}
	}
	return input
}

func ValidateAll[T any](
	ctx context.Context,
	input outcome.Outcome[T, error],
	breakOnError bool, // exit on first error
	inputsF ...func(ctx context.Context, in outcome.Outcome[T, error]) outcome.Outcome[T, error]) outcome.Outcome[T, error] {

	var err error
	return Join(
		ctx,
		input,
		breakOnError,
		func(ctx context.Context, current outcome.Outcome[T, error]) outcome.Outcome[T, error] {

			if current.IsFailure() {
				e := outcome.GetErrors(err)
				e = append(e, current.Err())
				err = errors.Join(e...)
			}

			if outcome.IsNil(err) {
				return current
			}

			return outcome.Failure[T, error](err)
		},
		inputsF...,
	)
}

func Switch[In, Out, E any](ctx context.Context,
	input outcome.Outcome[In, E],
	onSuccess func(ctx context.Context, r In) outcome.Outcome[Out, E]) outcome.Outcome[Out, E] {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Value())
	}
	return outcome.FailureFrom[In, Out](input)
}

func Map[In, Out, E any](ctx context.Context,
	input outcome.Outcome[In, E],
	onSuccess func(ctx context.Context, r In) Out) outcome.Outcome[Out, E] {

	if input.IsSuccess() {
		return outcome.Success[Out, E](onSuccess(ctx, input.Value()))
	}
	return outcome.FailureFrom[In, Out](input)
}

func MapErr[T, E, F any](ctx context.Context,
	input outcome.Outcome[T, E],
	onFailure func(ctx context.Context, err E) F) outcome.Outcome[T, F] {

	return outcome.MapErr(input, func(err E) F {
		return onFailure(ctx, err)
	})
}

func DoubleMap[In, Out, E any](ctx context.Context, input outcome.Outcome[In, E],
	onSuccess func(ctx context.Context, r In) Out,
	onFailure func(ctx context.Context, err E) E) outcome.Outcome[Out, E] {

	if input.IsSuccess() {
		return outcome.Success[Out, E](onSuccess(ctx, input.Value()))
	}
	return outcome.Failure[Out, E](onFailure(ctx, input.Err()))
}

func Try[In, Out any](ctx context.Context, input outcome.Outcome[In, error],
	onTryExecute func(ctx context.Context, r In) (Out, error)) outcome.Outcome[Out, error] {

	if input.IsSuccess() {

		out, err := onTryExecute(ctx, input.Value())
		if err != nil {
			return outcome.Failure[Out, error](err)
		}

		return outcome.Success[Out, error](out)
	}

	return outcome.FailureFrom[In, Out](input)
}

func Tee[T, E any](ctx context.Context,
	input outcome.Outcome[T, E],
	onSuccess func(ctx context.Context, r outcome.Outcome[T, E])) outcome.Outcome[T, E] {

	if input.IsSuccess() {
		onSuccess(ctx, input)
	}

	return input
}

func TeeIf[T, E any](ctx context.Context,
	input outcome.Outcome[T, E],
	condition func(ctx context.Context, r outcome.Outcome[T, E]) bool,
	onSuccessAndCondition func(ctx context.Context, r outcome.Outcome[T, E])) outcome.Outcome[T, E] {

	if input.IsSuccess() {
		if condition(ctx, input) {
			onSuccessAndCondition(ctx, input)
		}
	}

	return input
}

func DoubleTee[T, E any](ctx context.Context, input outcome.Outcome[T, E],
	onSuccess func(ctx context.Context, r T),
	onFailure func(ctx context.Context, err E)) outcome.Outcome[T, E] {

	if input.IsSuccess() {
		onSuccess(ctx, input.Value())
	} else {
		onFailure(ctx, input.Err())
	}

	return input
}

func FailOn[T, E any](ctx context.Context, input outcome.Outcome[T, E],
	check func(ctx context.Context, in T) (err E, failed bool)) outcome.Outcome[T, E] {
	if input.IsSuccess() {
		if err, failed := check(ctx, input.Value()); failed {
			return outcome.Failure[T, E](err)
		}
		return input
	}
	return input
}

func Finally[In, Out, E any](ctx context.Context, input outcome.Outcome[In, E],
	onSuccess func(ctx context.Context, r In) Out,
	onFailure func(ctx context.Context, err E) Out) Out {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Value())
	}
	return onFailure(ctx, input.Err())
}

func Join[T any](ctx context.Context,
	input outcome.Outcome[T, error],
	breakOnError bool, // exit on first error
	concat func(ctx context.Context, current outcome.Outcome[T, error]) outcome.Outcome[T, error],
	inputsF ...func(ctx context.Context, in outcome.Outcome[T, error]) outcome.Outcome[T, error]) outcome.Outcome[T, error] {

	if len(inputsF) == 0 || concat == nil || !outcome.IsNil(ctx.Err()) {
		return input
	}

	finalResult := concat(ctx, inputsF[0](ctx, input))

	if !outcome.IsNil(ctx.Err()) {
		return finalResult
	}

	if finalResult.IsSuccess() || !breakOnError {
		for _, in := range inputsF[1:] {
			if !outcome.IsNil(ctx.Err()) {
				return finalResult
			}

			nextRes := concat(ctx, in(ctx, finalResult))
			if nextRes.IsFailure() && breakOnError {
				return nextRes
			} else {
				finalResult = nextRes
			}
		}
	}
	return finalResult
}
