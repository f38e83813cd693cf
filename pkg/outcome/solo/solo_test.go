package solo

import (
	"context"
	"errors"
	"testing"

	"github.com/ib-77/outcome/pkg/outcome"
	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	ok := Validate(ctx, 5, func(ctx context.Context, in int) (bool, string) {
		return in > 0, "must be positive"
	})
	assert.True(t, ok.IsSuccess())
	assert.Equal(t, 5, ok.Value())

	bad := Validate(ctx, -5, func(ctx context.Context, in int) (bool, string) {
		return in > 0, "must be positive"
	})
	assert.True(t, bad.IsFailure())
	assert.Equal(t, "must be positive", bad.Err())
}

func TestAndValidate_PassesFailureThrough(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	called := false
	in := Fail[int]("earlier")
	out := AndValidate(ctx, in, func(ctx context.Context, in int) (bool, string) {
		called = true
		return true, ""
	})

	assert.False(t, called)
	assert.Equal(t, "earlier", out.Err())
}

func TestSwitch(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := Switch(ctx, Succeed[int, string](5), func(ctx context.Context, r int) outcome.Outcome[string, string] {
		return Succeed[string, string]("ok")
	})
	assert.True(t, out.IsSuccess())
	assert.Equal(t, "ok", out.Value())

	failed := Switch(ctx, Fail[int]("boom"), func(ctx context.Context, r int) outcome.Outcome[string, string] {
		t.Fatal("onSuccess must not run on failure input")
		return Succeed[string, string]("ok")
	})
	assert.True(t, failed.IsFailure())
	assert.Equal(t, "boom", failed.Err())
}

func TestMap(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := Map(ctx, Succeed[int, string](5), func(ctx context.Context, r int) int {
		return r * 2
	})
	assert.Equal(t, 10, out.Value())

	failed := Map(ctx, Fail[int]("boom"), func(ctx context.Context, r int) int {
		return r * 2
	})
	assert.True(t, failed.IsFailure())
	assert.Equal(t, "boom", failed.Err())
}

func TestMapErr(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	wrapped := MapErr(ctx, Fail[int]("Division by zero"), func(ctx context.Context, err string) string {
		return "Custom error: " + err
	})
	assert.True(t, wrapped.IsFailure())
	assert.Equal(t, "Custom error: Division by zero", wrapped.Err())

	untouched := MapErr(ctx, Succeed[int, string](5), func(ctx context.Context, err string) error {
		return errors.New(err)
	})
	assert.True(t, untouched.IsSuccess())
	assert.Equal(t, 5, untouched.Value())
}

func TestDoubleMap(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	s := DoubleMap(ctx, Succeed[int, string](3),
		func(ctx context.Context, r int) string { return "ok" },
		func(ctx context.Context, err string) string { return "wrapped: " + err })
	assert.Equal(t, "ok", s.Value())

	f := DoubleMap(ctx, Fail[int]("boom"),
		func(ctx context.Context, r int) string { return "ok" },
		func(ctx context.Context, err string) string { return "wrapped: " + err })
	assert.True(t, f.IsFailure())
	assert.Equal(t, "wrapped: boom", f.Err())
}

func TestTry(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	s := Try(ctx, Succeed[int, error](4), func(ctx context.Context, r int) (int, error) {
		return r * r, nil
	})
	assert.Equal(t, 16, s.Value())

	f := Try(ctx, Succeed[int, error](4), func(ctx context.Context, r int) (int, error) {
		return 0, errors.New("try-error")
	})
	assert.True(t, f.IsFailure())
	assert.EqualError(t, f.Err(), "try-error")

	skipped := Try(ctx, Fail[int](errors.New("earlier")), func(ctx context.Context, r int) (int, error) {
		t.Fatal("onTryExecute must not run on failure input")
		return 0, nil
	})
	assert.EqualError(t, skipped.Err(), "earlier")
}

func TestTee(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	seen := false
	out := Tee(ctx, Succeed[int, string](5), func(ctx context.Context, r outcome.Outcome[int, string]) {
		seen = true
	})
	assert.True(t, seen)
	assert.Equal(t, 5, out.Value())

	seen = false
	Tee(ctx, Fail[int]("boom"), func(ctx context.Context, r outcome.Outcome[int, string]) {
		seen = true
	})
	assert.False(t, seen)
}

func TestTeeIf(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	seen := false
	TeeIf(ctx, Succeed[int, string](5),
		func(ctx context.Context, r outcome.Outcome[int, string]) bool { return r.Value() > 10 },
		func(ctx context.Context, r outcome.Outcome[int, string]) { seen = true })
	assert.False(t, seen)

	TeeIf(ctx, Succeed[int, string](50),
		func(ctx context.Context, r outcome.Outcome[int, string]) bool { return r.Value() > 10 },
		func(ctx context.Context, r outcome.Outcome[int, string]) { seen = true })
	assert.True(t, seen)
}

func TestDoubleTee(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	var gotValue int
	var gotErr string
	DoubleTee(ctx, Succeed[int, string](5),
		func(ctx context.Context, r int) { gotValue = r },
		func(ctx context.Context, err string) { gotErr = err })
	assert.Equal(t, 5, gotValue)
	assert.Empty(t, gotErr)

	DoubleTee(ctx, Fail[int]("boom"),
		func(ctx context.Context, r int) { gotValue = -1 },
		func(ctx context.Context, err string) { gotErr = err })
	assert.Equal(t, "boom", gotErr)
}

func TestFailOn(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	kept := FailOn(ctx, Succeed[int, string](5), func(ctx context.Context, in int) (string, bool) {
		return "", false
	})
	assert.True(t, kept.IsSuccess())

	demoted := FailOn(ctx, Succeed[int, string](5), func(ctx context.Context, in int) (string, bool) {
		return "rejected", true
	})
	assert.True(t, demoted.IsFailure())
	assert.Equal(t, "rejected", demoted.Err())
}

func TestFinally(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	s := Finally(ctx, Succeed[int, string](5),
		func(ctx context.Context, r int) int { return r + 100 },
		func(ctx context.Context, err string) int { return -1 })
	assert.Equal(t, 105, s)

	f := Finally(ctx, Fail[int]("boom"),
		func(ctx context.Context, r int) int { return r },
		func(ctx context.Context, err string) int { return -1 })
	assert.Equal(t, -1, f)
}

func TestValidateAll_Accumulates(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	notNegative := func(ctx context.Context, in outcome.Outcome[int, error]) outcome.Outcome[int, error] {
		return AndValidate(ctx, in, func(ctx context.Context, v int) (bool, error) {
			return v >= 0, errors.New("must not be negative")
		})
	}
	even := func(ctx context.Context, in outcome.Outcome[int, error]) outcome.Outcome[int, error] {
		return AndValidate(ctx, in, func(ctx context.Context, v int) (bool, error) {
			return v%2 == 0, errors.New("must be even")
		})
	}

	ok := ValidateAll(ctx, Succeed[int, error](4), false, notNegative, even)
	assert.True(t, ok.IsSuccess())

	odd := ValidateAll(ctx, Succeed[int, error](3), true, notNegative, even)
	assert.True(t, odd.IsFailure())
	assert.ErrorContains(t, odd.Err(), "must be even")
	assert.Len(t, outcome.GetErrors(odd.Err()), 1)

	neg := ValidateAll(ctx, Succeed[int, error](-3), true, notNegative, even)
	assert.True(t, neg.IsFailure())
	assert.ErrorContains(t, neg.Err(), "must not be negative")
	assert.Len(t, outcome.GetErrors(neg.Err()), 1)
}
