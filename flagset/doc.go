// Package flagset provides a validated bitmask set over a closed enumeration of
// single-bit flags, and a name registry for such flags.
//
// # Flag types
//
// A flag type is a named unsigned integer whose All method returns the union
// of every legal flag:
//
//	type Perm uint8
//
//	const (
//		Read Perm = 1 << iota
//		Write
//		Execute
//	)
//
//	func (Perm) All() Perm { return Read | Write | Execute }
//
// All defines the valid mask. A [FlagSet] never holds a bit outside it. Bit
// positions range over the bits spanned by the mask, not the full width of the
// underlying integer.
//
// # Strict and lenient ingestion
//
// [FromUnderlying] masks raw input and never fails. [FromEnum] and
// [FromInteger] reject input carrying unknown bits with a
// [result.KindValue] error. Single-flag operations ([FlagSet.Has],
// [FlagSet.Set], [FlagSet.Clear], [FlagSet.Toggle]) accept exactly one
// recognized flag.
//
// # Architecture boundaries
//
// The package is pure in-memory value manipulation. FlagSet values need no
// allocation and are safe to copy. A [Registry] is guarded by a mutex and is
// read-only once frozen.
//
// # What this package must NOT do
//
//   - Perform I/O or logging.
//   - Store a bit outside the valid mask.
//   - Grow the flag universe at runtime.
package flagset
