package flagset

import (
	"strconv"
	"strings"
	"sync"

	"github.com/MrEthical07/goCommon/result"
)

// Registry maps names to the flags of E and to named presets (combinations of
// flags).
//
// A Registry is populated during initialization and then frozen. Freeze fails
// unless the registered flags cover the valid mask of E exactly, so a flag type
// whose All method disagrees with its declared flags is caught at start-up.
type Registry[E Enum[E]] struct {
	mu         sync.RWMutex
	nameToFlag map[string]E
	flagToName map[E]string
	presets    map[string]E
	frozen     bool
}

// NewRegistry creates an empty [Registry] for E. It fails with
// [result.KindValue] when E declares an empty mask.
func NewRegistry[E Enum[E]]() result.Result[*Registry[E]] {
	if Mask[E]() == 0 {
		return result.Fail[*Registry[E]](result.ErrOf(result.KindValue, msgEmptyMask))
	}
	return result.Ok(&Registry[E]{
		nameToFlag: make(map[string]E),
		flagToName: make(map[E]string),
		presets:    make(map[string]E),
	})
}

// Register names a single flag. Must be called before [Registry.Freeze].
func (r *Registry[E]) Register(name string, flag E) result.Status {
	r.mu.Lock()
	defer r.mu.Unlock()

	if st := r.checkName(name); st.IsErr() {
		return st
	}
	if !validFlag(flag) {
		return result.Failure(errInvalidFlag)
	}
	if prev, exists := r.flagToName[flag]; exists {
		return result.Failure(result.ErrOf(result.KindKey, "flag already registered as "+prev))
	}

	r.nameToFlag[name] = flag
	r.flagToName[flag] = name
	return result.Success()
}

// Preset names a combination of flags. Must be called before
// [Registry.Freeze].
func (r *Registry[E]) Preset(name string, flags ...E) result.Status {
	r.mu.Lock()
	defer r.mu.Unlock()

	if st := r.checkName(name); st.IsErr() {
		return st
	}

	var v E
	for _, f := range flags {
		v |= f
	}
	if v == 0 || !IsValid(v) {
		return result.Failure(result.ErrOf(result.KindValue, "preset "+name+" has no valid flags"))
	}

	r.presets[name] = v
	return result.Success()
}

func (r *Registry[E]) checkName(name string) result.Status {
	if r.frozen {
		return result.Failure(result.ErrOf(result.KindRuntime, "registry frozen"))
	}
	if name == "" {
		return result.Failure(result.ErrOf(result.KindValue, "flag name cannot be empty"))
	}
	if strings.ContainsAny(name, "|, \t") {
		return result.Failure(result.ErrOf(result.KindValue, "flag name contains a separator: "+name))
	}
	if _, exists := r.nameToFlag[name]; exists {
		return result.Failure(result.ErrOf(result.KindKey, "name already registered: "+name))
	}
	if _, exists := r.presets[name]; exists {
		return result.Failure(result.ErrOf(result.KindKey, "name already registered: "+name))
	}
	return result.Success()
}

// Freeze prevents further registrations. It fails with [result.KindValue],
// leaving the registry open, when the registered flags do not cover the valid
// mask of E. Freezing a frozen registry succeeds.
func (r *Registry[E]) Freeze() result.Status {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.frozen {
		return result.Success()
	}

	var covered E
	for flag := range r.flagToName {
		covered |= flag
	}
	if covered != Mask[E]() {
		missing := FlagSet[E]{bits: Mask[E]() &^ covered}
		return result.Failure(result.ErrOf(result.KindValue, "registered flags do not cover the flag type, missing "+missing.String()))
	}

	r.frozen = true
	return result.Success()
}

// Frozen reports whether [Registry.Freeze] has succeeded.
func (r *Registry[E]) Frozen() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.frozen
}

// Name returns the name registered for flag, or false if it has none.
func (r *Registry[E]) Name(flag E) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	name, ok := r.flagToName[flag]
	return name, ok
}

// Lookup returns the set named by a flag or preset name. Unknown names fail
// with [result.KindKey].
func (r *Registry[E]) Lookup(name string) result.Result[FlagSet[E]] {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.lookupLocked(name)
}

func (r *Registry[E]) lookupLocked(name string) result.Result[FlagSet[E]] {
	if flag, ok := r.nameToFlag[name]; ok {
		return result.Ok(FlagSet[E]{bits: flag})
	}
	if v, ok := r.presets[name]; ok {
		return result.Ok(FlagSet[E]{bits: v})
	}
	return result.Fail[FlagSet[E]](result.ErrOf(result.KindKey, "unknown flag name: "+name))
}

// Parse builds a set from flag and preset names separated by '|' or ','.
// Surrounding spaces and empty names are ignored, so "" parses to the empty
// set.
func (r *Registry[E]) Parse(text string) result.Result[FlagSet[E]] {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out FlagSet[E]
	for _, part := range strings.FieldsFunc(text, isSeparator) {
		name := strings.TrimSpace(part)
		if name == "" {
			continue
		}
		got := r.lookupLocked(name)
		if got.IsErr() {
			return got
		}
		out.OrAssign(got.Value())
	}
	return result.Ok(out)
}

func isSeparator(c rune) bool {
	return c == '|' || c == ','
}

// Format renders s as flag names joined by '|', in ascending bit position.
// Flags without a name are rendered in hexadecimal. The empty set renders as
// "".
func (r *Registry[E]) Format(s FlagSet[E]) string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var b strings.Builder
	for flag := range s.Flags() {
		if b.Len() > 0 {
			b.WriteByte('|')
		}
		if name, ok := r.flagToName[flag]; ok {
			b.WriteString(name)
			continue
		}
		b.WriteString("0x")
		b.WriteString(strconv.FormatUint(uint64(flag), 16))
	}
	return b.String()
}

// Count returns the number of named flags, presets excluded.
func (r *Registry[E]) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.nameToFlag)
}
