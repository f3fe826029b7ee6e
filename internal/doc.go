// Package internal holds helpers that are private to goCommon.
//
// # Sub-packages
//
//   - format: bounded "%s" substitution used by result error descriptions
//
// # What this package must NOT do
//
//   - Export types that appear in the public goCommon API.
//   - Be imported by any package outside the goCommon module.
package internal
