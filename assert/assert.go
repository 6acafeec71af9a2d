package assert

import "github.com/oomph-ac/blockstate/oerror"

// IsTrue panics if ok is false. It is reserved for conditions that can
// only fail through incorrect API usage, never through bad input data.
func IsTrue(ok bool, message string, args ...interface{}) {
	if !ok {
		panic(oerror.New(message, args...))
	}
}
