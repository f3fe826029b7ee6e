// Package format provides the bounded placeholder substitution used to render
// error descriptions without going through fmt.
//
// Only the literal two-byte sequence "%s" is a directive. Everything else,
// including other '%' sequences and "%s" with no argument left, is copied
// verbatim.
//
// # What this package must NOT do
//
//   - Allocate when the destination already has enough capacity.
//   - Append more than the caller's limit.
package format
