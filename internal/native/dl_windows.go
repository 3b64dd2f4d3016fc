//go:build windows

package native

import (
	"golang.org/x/sys/windows"
)

func dlopen(path string) (uintptr, error) {
	h, err := windows.LoadLibrary(path)
	return uintptr(h), err
}

func dlsym(handle uintptr, name string) (uintptr, error) {
	return windows.GetProcAddress(windows.Handle(handle), name)
}

func dlclose(handle uintptr) error {
	return windows.FreeLibrary(windows.Handle(handle))
}
