//go:build !darwin && !freebsd && !windows && !(linux && (amd64 || arm64))

package native

func dlopen(string) (uintptr, error) {
	return 0, ErrUnsupported
}

func dlsym(uintptr, string) (uintptr, error) {
	return 0, ErrUnsupported
}

func dlclose(uintptr) error {
	return ErrUnsupported
}

func bindFunc(any, uintptr) error {
	return ErrUnsupported
}

func newCallback(any) uintptr {
	panic(ErrUnsupported)
}
