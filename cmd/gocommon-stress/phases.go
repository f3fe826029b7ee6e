package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"
	"sync/atomic"
	"time"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"

	goCommon "github.com/MrEthical07/goCommon"
	"github.com/MrEthical07/goCommon/flagset"
	"github.com/MrEthical07/goCommon/result"
)

const (
	phaseFlagSet = "flagset"
	phaseResult  = "result"
)

// netFlags leaves bit 2 unassigned so masking has a hole to respect.
type netFlags uint16

const (
	netTCP       netFlags = 1
	netUDP       netFlags = 2
	netIPv6      netFlags = 8
	netEncrypted netFlags = 16
)

func (netFlags) All() netFlags { return netTCP | netUDP | netIPv6 | netEncrypted }

// expectations counts what a phase produced, for comparison with the runtime
// metrics afterwards.
type expectations struct {
	failures    uint64
	truncations uint64
}

func (e *expectations) add(o expectations) {
	e.failures += o.failures
	e.truncations += o.truncations
}

func (e expectations) check(s goCommon.MetricsSnapshot) error {
	var failures uint64
	for _, v := range s.Failures {
		failures += v
	}
	if failures != e.failures {
		return fmt.Errorf("failure counters report %d, produced %d", failures, e.failures)
	}
	if s.Truncations != e.truncations {
		return fmt.Errorf("truncation counter reports %d, produced %d", s.Truncations, e.truncations)
	}
	return nil
}

// phaseFunc runs one operation and reports what it produced.
type phaseFunc func(r *rand.Rand, exp *expectations) error

var phases = map[string]phaseFunc{
	phaseFlagSet: flagSetOp,
	phaseResult:  resultOp,
}

var errViolation = errors.New("invariant violated")

func runPhase(ctx context.Context, op phaseFunc, ops, concurrency int, seed uint64) (phaseStats, expectations, error) {
	var (
		cursor   int64
		mu       sync.Mutex
		samples  = make([]time.Duration, 0, ops)
		produced expectations
	)

	g, ctx := errgroup.WithContext(ctx)
	start := time.Now()
	for w := 0; w < concurrency; w++ {
		worker := uint64(w)
		g.Go(func() error {
			r := rand.New(rand.NewPCG(seed, worker*7919+1))
			local := make([]time.Duration, 0, ops/concurrency+1)
			var exp expectations
			defer func() {
				mu.Lock()
				samples = append(samples, local...)
				produced.add(exp)
				mu.Unlock()
			}()

			for {
				if err := ctx.Err(); err != nil {
					return nil
				}
				if i := atomic.AddInt64(&cursor, 1) - 1; i >= int64(ops) {
					return nil
				}
				t0 := time.Now()
				err := op(r, &exp)
				local = append(local, time.Since(t0))
				if err != nil {
					return err
				}
			}
		})
	}
	err := g.Wait()
	total := time.Since(start)
	return computeStats(total, samples), produced, err
}

func flagSetOp(r *rand.Rand, exp *expectations) error {
	mask := uint64(flagset.Mask[netFlags]())
	raw := r.Uint64()

	s := flagset.FromUnderlying[netFlags](raw)
	if s.ToUnderlying() != raw&mask || !s.IsValid() {
		return fmt.Errorf("%w: FromUnderlying(%#x) = %s", errViolation, raw, s)
	}

	v := netFlags(raw)
	strict := flagset.FromEnum(v)
	if strict.IsOk() != flagset.IsValid(v) {
		return fmt.Errorf("%w: FromEnum(%#x) ok=%v", errViolation, v, strict.IsOk())
	}
	if strict.IsErr() {
		exp.failures++
	} else if strict.Value() != flagset.FromUnderlying[netFlags](uint64(v)) {
		return fmt.Errorf("%w: strict and lenient disagree on %#x", errViolation, v)
	}

	if wide := flagset.FromInteger[netFlags](int32(raw >> 32)); wide.IsErr() {
		exp.failures++
	}

	n := 0
	prev := netFlags(0)
	var ordered = true
	for f := range s.Flags() {
		if f <= prev {
			ordered = false
		}
		prev = f
		n++
	}
	visited := 0
	s.ForEach(func(netFlags) { visited++ })
	if !ordered || n != s.Count() || visited != n {
		return fmt.Errorf("%w: iteration of %s: n=%d count=%d forEach=%d ordered=%v", errViolation, s, n, s.Count(), visited, ordered)
	}
	if (s.Count() == 0) != s.HasNone() {
		return fmt.Errorf("%w: count/hasNone disagree on %s", errViolation, s)
	}

	if c := s.Not(); !c.IsValid() || s.And(c).HasAny() || s.Or(c).ToUnderlying() != mask {
		return fmt.Errorf("%w: complement of %s", errViolation, s)
	}

	candidate := netFlags(1) << (raw % 16)
	st := s.Toggle(candidate)
	if st.IsOk() != (uint64(candidate)&mask != 0) {
		return fmt.Errorf("%w: Toggle(%#x) ok=%v", errViolation, candidate, st.IsOk())
	}
	if st.IsErr() {
		exp.failures++
	}
	return nil
}

var messageAlphabet = []string{"a", "z", " ", "é", "€", "🙂"}

func resultOp(r *rand.Rand, exp *expectations) error {
	kind := result.Kind(r.IntN(result.NumKinds))

	var b strings.Builder
	for n := r.IntN(120); n > 0; n-- {
		b.WriteString(messageAlphabet[r.IntN(len(messageAlphabet))])
	}
	msg := b.String()

	e := result.ErrOf(kind, msg)
	d := e.Describe()
	prefix := kind.String() + ": "
	if len(d) > result.MaxDescribeLen || !utf8.ValidString(d) || !strings.HasPrefix(d, prefix) {
		return fmt.Errorf("%w: description of %d-byte %s message: len=%d", errViolation, len(msg), kind, len(d))
	}
	if len(prefix)+len(msg) > result.MaxDescribeLen {
		exp.truncations++
	} else if d != prefix+msg {
		return fmt.Errorf("%w: short description altered", errViolation)
	}

	chained := result.AndThen(result.Fail[int](e), func(v int) result.Result[int] {
		return result.Ok(v + 1)
	})
	exp.failures++
	if !chained.IsErr() || chained.Err() != e {
		return fmt.Errorf("%w: failure not propagated through AndThen", errViolation)
	}

	recovered := result.OrElse(chained, func(result.Error) result.Result[int] { return result.Ok(0) })
	if recovered.IsErr() {
		return fmt.Errorf("%w: OrElse did not recover", errViolation)
	}
	return nil
}
