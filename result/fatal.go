package result

import (
	"os"
	"sync/atomic"

	"github.com/rs/zerolog"
)

// AbortExitCode is the process exit status used by the fatal path
// (128 + SIGABRT).
const AbortExitCode = 134

var (
	defaultLogger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	fatalLogger   atomic.Pointer[zerolog.Logger]

	// exit terminates the process without running deferred calls.
	exit = os.Exit
)

// SetLogger installs the logger used by the fatal path and returns a function
// restoring the previous one. restore is a no-op once another logger has
// replaced l.
func SetLogger(l zerolog.Logger) (restore func()) {
	next := &l
	prev := fatalLogger.Swap(next)
	return func() {
		fatalLogger.CompareAndSwap(next, prev)
	}
}

func logger() *zerolog.Logger {
	if l := fatalLogger.Load(); l != nil {
		return l
	}
	return &defaultLogger
}

func abortWith(op string, e Error) {
	logger().Error().
		Str("op", op).
		Str("kind", e.kind.String()).
		Str("message", e.message).
		Msg("result: unchecked failure, aborting")
	exit(AbortExitCode)
}

func abortMisuse(op string) {
	logger().Error().
		Str("op", op).
		Msg("result: failure accessed on a successful result, aborting")
	exit(AbortExitCode)
}
