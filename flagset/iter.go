package flagset

import "iter"

// Flags returns the flags set in s, one bit at a time, in ascending bit
// position. The sequence may be ranged over any number of times.
func (s FlagSet[E]) Flags() iter.Seq[E] {
	return func(yield func(E) bool) {
		rest := s.bits
		for rest != 0 {
			flag := E(1) << uint(bitPosition(rest))
			if !yield(flag) {
				return
			}
			rest &^= flag
		}
	}
}

// ForEach calls fn for every flag in s, in the order of [FlagSet.Flags].
func (s FlagSet[E]) ForEach(fn func(E)) {
	for flag := range s.Flags() {
		fn(flag)
	}
}
