package result

import "errors"

// Unit is the empty success payload of a [Status].
type Unit struct{}

// Result holds either a success value of type T or an [Error].
//
// The zero Result is a success holding the zero T. Reading the inactive
// variant through [Result.Value] or [Result.Err] is a programming error and
// terminates the process; check [Result.IsOk] first, or use [Result.Get].
type Result[T any] struct {
	value  T
	err    Error
	failed bool
}

// Status is a [Result] without a success payload.
type Status = Result[Unit]

// Ok returns a successful result holding value.
func Ok[T any](value T) Result[T] {
	return Result[T]{value: value}
}

// Zero returns a successful result holding the zero T.
func Zero[T any]() Result[T] {
	return Result[T]{}
}

// Success returns a successful [Status].
func Success() Status {
	return Status{}
}

// Fail returns a failed result carrying e.
func Fail[T any](e Error) Result[T] {
	observeFailure(e.kind)
	return Result[T]{err: e, failed: true}
}

// Failure returns a failed [Status] carrying e.
func Failure(e Error) Status {
	return Fail[Unit](e)
}

// FromError converts a (value, error) pair. A nil error yields Ok(value); an
// [Error] anywhere in err's chain is kept as-is and not reported to the
// observer again. Any other error becomes a [KindGeneric] failure carrying
// err's text.
func FromError[T any](value T, err error) Result[T] {
	if err == nil {
		return Ok(value)
	}
	var e Error
	if errors.As(err, &e) {
		// already reported when it was first built
		return Result[T]{err: e, failed: true}
	}
	return Fail[T](Err(err.Error()))
}

// IsOk reports whether r holds a success value.
func (r Result[T]) IsOk() bool {
	return !r.failed
}

// IsErr reports whether r holds an [Error].
func (r Result[T]) IsErr() bool {
	return r.failed
}

// Value returns the success value. Calling it on a failed result terminates
// the process.
func (r Result[T]) Value() T {
	if r.failed {
		abortWith("Value", r.err)
	}
	return r.value
}

// Err returns the failure. Calling it on a successful result terminates the
// process.
func (r Result[T]) Err() Error {
	if !r.failed {
		abortMisuse("Err")
	}
	return r.err
}

// ValueOr returns the success value, or def when r failed.
func (r Result[T]) ValueOr(def T) T {
	if r.failed {
		return def
	}
	return r.value
}

// Get returns the value and a nil error on success, or the zero T and the
// [Error] on failure.
func (r Result[T]) Get() (T, error) {
	if r.failed {
		var zero T
		return zero, r.err
	}
	return r.value, nil
}

// Unwrap returns the success value of r. If r failed, it logs the failure and
// terminates the process with [AbortExitCode]; it never returns in that case.
//
// Use only where failure has been ruled out by construction, never on results
// that depend on external input.
func Unwrap[T any](r Result[T]) T {
	if r.failed {
		abortWith("Unwrap", r.err)
	}
	return r.value
}

// Verify is [Unwrap] for a [Status].
func Verify(s Status) {
	if s.failed {
		abortWith("Verify", s.err)
	}
}
