// +build !debug

// Package assert is a helper to allow assert tests in a more standardized
// and simple manner. Using it makes it clear that this is an assertion
// used in a non-production setting.
package assert

// DEBUG if set to true asserts are evaluated.
const DEBUG = false

// Assert is a no-op in release builds. The GO compiler eliminates the
// whole call site when DEBUG is a const false, provided call sites are
// also guarded with `if assert.DEBUG { ... }`.
//
// Example:
//  if assert.DEBUG {
//    assert.Assert(v.Count() == 64, "disc count invariant violated: %d", v.Count())
//  }
func Assert(test bool, msg string, a ...interface{}) {}
