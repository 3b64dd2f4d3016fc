//go:build darwin || freebsd || windows || (linux && (amd64 || arm64))

package native

import (
	"fmt"

	"github.com/ebitengine/purego"
)

// bindFunc points the function variable at fptr to the C entry point sym.
// purego panics on signatures it cannot express for the current ABI; those
// are reported as errors so the symbol keeps its stub.
func bindFunc(fptr any, sym uintptr) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("unsupported signature: %v", r)
		}
	}()

	purego.RegisterFunc(fptr, sym)
	return nil
}

func newCallback(fn any) uintptr {
	return purego.NewCallback(fn)
}
