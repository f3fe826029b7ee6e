package result

// Map applies f to the success value. A failure passes through unchanged.
func Map[T, U any](r Result[T], f func(T) U) Result[U] {
	if r.failed {
		return Result[U]{err: r.err, failed: true}
	}
	return Ok(f(r.value))
}

// MapErr applies f to the failure. A success passes through unchanged.
func MapErr[T any](r Result[T], f func(Error) Error) Result[T] {
	if !r.failed {
		return r
	}
	return Result[T]{err: f(r.err), failed: true}
}

// AndThen chains f on success. A failure passes through and f is not called.
func AndThen[T, U any](r Result[T], f func(T) Result[U]) Result[U] {
	if r.failed {
		return Result[U]{err: r.err, failed: true}
	}
	return f(r.value)
}

// OrElse calls f to recover from a failure. A success passes through and f is
// not called.
func OrElse[T any](r Result[T], f func(Error) Result[T]) Result[T] {
	if !r.failed {
		return r
	}
	return f(r.err)
}
