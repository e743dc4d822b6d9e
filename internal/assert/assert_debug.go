// +build debug

package assert

import "fmt"

// DEBUG if set to true asserts are evaluated.
const DEBUG = true

// Assert panics with the formatted message if test is false. Only linked
// in when the repo is built with `-tags debug`; see assert_release.go for
// the no-op production variant.
func Assert(test bool, msg string, a ...interface{}) {
	if !test {
		panic(fmt.Sprintf("assertion failed: "+msg, a...))
	}
}
