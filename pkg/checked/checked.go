// Package checked provides guarded int64 arithmetic that reports failures as
// Outcome values instead of aborting the process.
package checked

import (
	"math"

	"github.com/ib-77/outcome/pkg/outcome"
)

// Error enumerates the arithmetic failure kinds.
type Error int

const (
	DivideByZero Error = iota + 1
	Overflow
)

func (e Error) Error() string {
	switch e {
	case DivideByZero:
		return "Division by zero"
	case Overflow:
		return "Integer overflow"
	default:
		return "unknown arithmetic error"
	}
}

// Result is the shorthand for outcomes of the operations in this package.
type Result = outcome.Outcome[int64, Error]

// Div performs truncating integer division. A zero denominator yields
// Failure(DivideByZero); math.MinInt64 / -1 does not fit in int64 and yields
// Failure(Overflow).
func Div(numerator, denominator int64) Result {
	if denominator == 0 {
		return outcome.Failure[int64, Error](DivideByZero)
	}
	if numerator == math.MinInt64 && denominator == -1 {
		return outcome.Failure[int64, Error](Overflow)
	}
	return outcome.Success[int64, Error](numerator / denominator)
}

// Mul performs checked multiplication, yielding Failure(Overflow) when the
// product does not fit in int64.
func Mul(a, b int64) Result {
	if a == 0 || b == 0 {
		return outcome.Success[int64, Error](0)
	}
	if (a == math.MinInt64 && b == -1) || (b == math.MinInt64 && a == -1) {
		return outcome.Failure[int64, Error](Overflow)
	}
	p := a * b
	if p/b != a {
		return outcome.Failure[int64, Error](Overflow)
	}
	return outcome.Success[int64, Error](p)
}

// DivMul divides i by j and multiplies the quotient by k, widening the typed
// failure payload to error so callers can mix it with other failure sources.
func DivMul(i, j, k int64) outcome.Outcome[int64, error] {
	q := Div(i, j)
	if err, failed := q.GetErr(); failed {
		return outcome.Failure[int64, error](err)
	}
	return outcome.MapErr(Mul(q.Value(), k), func(err Error) error {
		return err
	})
}
