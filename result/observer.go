package result

import "sync/atomic"

// Observer receives failure and truncation events. Implementations must be
// safe for concurrent use and must not block.
type Observer interface {
	ObserveFailure(kind Kind)
	ObserveTruncation()
}

type observerBox struct {
	o Observer
}

var observer atomic.Pointer[observerBox]

// SetObserver installs o (nil removes the current observer) and returns a
// function restoring the previous one. [Fail] and [Failure] report every
// failed result they build; [Error.AppendDescribe] reports truncations.
//
// restore is a no-op once another observer has replaced o.
func SetObserver(o Observer) (restore func()) {
	var next *observerBox
	if o != nil {
		next = &observerBox{o: o}
	}
	prev := observer.Swap(next)
	return func() {
		observer.CompareAndSwap(next, prev)
	}
}

func observeFailure(kind Kind) {
	if b := observer.Load(); b != nil {
		b.o.ObserveFailure(kind)
	}
}

func observeTruncation() {
	if b := observer.Load(); b != nil {
		b.o.ObserveTruncation()
	}
}
