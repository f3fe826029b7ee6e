package result

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"os/exec"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

type abortSignal struct {
	code int
}

// catchAbort runs fn with exit replaced by a panic and reports the exit code
// and the fatal log line, if fn aborted.
func catchAbort(t *testing.T, fn func()) (code int, aborted bool, logLine map[string]any) {
	t.Helper()

	var buf bytes.Buffer
	restoreLogger := SetLogger(zerolog.New(&buf))
	defer restoreLogger()

	prevExit := exit
	exit = func(c int) { panic(abortSignal{code: c}) }
	defer func() { exit = prevExit }()

	func() {
		defer func() {
			if r := recover(); r != nil {
				sig, ok := r.(abortSignal)
				if !ok {
					panic(r)
				}
				code, aborted = sig.code, true
			}
		}()
		fn()
	}()

	if aborted {
		logLine = make(map[string]any)
		if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &logLine); err != nil {
			t.Fatalf("fatal log is not a single JSON line: %v (%q)", err, buf.String())
		}
	}
	return code, aborted, logLine
}

func TestUnwrapSuccessDoesNotAbort(t *testing.T) {
	var got int
	_, aborted, _ := catchAbort(t, func() { got = Unwrap(Ok(5)) })
	if aborted {
		t.Fatal("Unwrap aborted on success")
	}
	if got != 5 {
		t.Fatalf("expected 5, got %d", got)
	}

	_, aborted, _ = catchAbort(t, func() { Verify(Success()) })
	if aborted {
		t.Fatal("Verify aborted on success")
	}
}

func TestUnwrapFailureAborts(t *testing.T) {
	code, aborted, line := catchAbort(t, func() {
		Unwrap(Fail[int](ErrOf(KindValue, "Invalid enum value")))
	})
	if !aborted {
		t.Fatal("expected abort")
	}
	if code != AbortExitCode {
		t.Fatalf("expected exit code %d, got %d", AbortExitCode, code)
	}
	if line["op"] != "Unwrap" || line["kind"] != "ValueError" || line["message"] != "Invalid enum value" {
		t.Fatalf("unexpected log fields: %v", line)
	}
	if line["level"] != "error" {
		t.Fatalf("expected error level, got %v", line["level"])
	}
}

func TestVerifyFailureAborts(t *testing.T) {
	code, aborted, line := catchAbort(t, func() {
		Verify(Failure(ErrOf(KindOS, "read failed")))
	})
	if !aborted || code != AbortExitCode {
		t.Fatalf("expected abort with %d, got aborted=%v code=%d", AbortExitCode, aborted, code)
	}
	if line["op"] != "Verify" || line["kind"] != "OSError" {
		t.Fatalf("unexpected log fields: %v", line)
	}
}

func TestWrongVariantAccessAborts(t *testing.T) {
	_, aborted, line := catchAbort(t, func() { _ = Fail[int](Err("x")).Value() })
	if !aborted || line["op"] != "Value" {
		t.Fatalf("Value on failure must abort, got aborted=%v line=%v", aborted, line)
	}

	_, aborted, line = catchAbort(t, func() { _ = Ok(1).Err() })
	if !aborted || line["op"] != "Err" {
		t.Fatalf("Err on success must abort, got aborted=%v line=%v", aborted, line)
	}
}

func TestUnwrapTerminatesProcess(t *testing.T) {
	if os.Getenv("GOCOMMON_RESULT_FATAL_CHILD") == "1" {
		Unwrap(Fail[int](ErrOf(KindValue, "Invalid enum value")))
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=^TestUnwrapTerminatesProcess$")
	cmd.Env = append(os.Environ(), "GOCOMMON_RESULT_FATAL_CHILD=1")
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err := cmd.Run()
	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("expected child to exit with failure, got %v", err)
	}
	if code := exitErr.ExitCode(); code != AbortExitCode {
		t.Fatalf("expected exit code %d, got %d", AbortExitCode, code)
	}
	if !strings.Contains(stderr.String(), `"kind":"ValueError"`) {
		t.Fatalf("fatal log missing from stderr: %q", stderr.String())
	}
}
