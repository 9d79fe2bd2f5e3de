//go:build debug_hwsurface

package surfutils

import "github.com/cockroachdb/errors"

// DebugValidate panics if validatable reports an inconsistency, naming the structure that failed.
// Builds without the debug_hwsurface tag skip the check entirely.
func DebugValidate(name string, validatable Validatable) {
	if err := validatable.Validate(); err != nil {
		panic(errors.Wrapf(err, "%s is corrupt", name))
	}
}
