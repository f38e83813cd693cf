package outcome

// ToMaybe projects an Outcome onto a Maybe, discarding the failure payload:
// Success(v) becomes Present(v), any Failure becomes Absent. Total and lossy;
// id and creation time carry through.
func ToMaybe[T, E any](o Outcome[T, E]) Maybe[T] {
	if o.isSuccess {
		return Maybe[T]{
			value:     o.value,
			isPresent: true,
			createdAt: o.createdAt,
			id:        o.id,
		}
	}
	return Maybe[T]{
		createdAt: o.createdAt,
		id:        o.id,
	}
}

// ErrMaybe is the dual projection: it keeps the failure payload and discards
// the success value.
func ErrMaybe[T, E any](o Outcome[T, E]) Maybe[E] {
	if o.isFailure {
		return Maybe[E]{
			value:     o.err,
			isPresent: true,
			createdAt: o.createdAt,
			id:        o.id,
		}
	}
	return Maybe[E]{
		createdAt: o.createdAt,
		id:        o.id,
	}
}

// ToOutcome lifts a Maybe back into an Outcome. No failure detail is
// recoverable from Absent, so the caller supplies err for that case.
func ToOutcome[T, E any](m Maybe[T], err E) Outcome[T, E] {
	if m.isPresent {
		return Outcome[T, E]{
			value:     m.value,
			isSuccess: true,
			createdAt: m.createdAt,
			id:        m.id,
		}
	}
	return Outcome[T, E]{
		err:       err,
		isFailure: true,
		createdAt: m.createdAt,
		id:        m.id,
	}
}
