//go:build cgo

// Package layoutprobe reports how a C compiler lays out the raylib and rlgl
// structs, and fills and checks instances of them from C. Only the layout
// tests import it.
package layoutprobe

// #cgo CFLAGS: -std=gnu11
// #include "probe.h"
import "C"

import (
	"unsafe"

	"github.com/jmorganca/raylib/internal/native"
)

// Layouts returns the C layout of every probed struct. Names drop the rl
// prefix of rlgl types so they match the Go names.
func Layouts() []native.Layout {
	n := int(C.probe_layout_count())
	layouts := make([]native.Layout, 0, n)
	for i := range n {
		p := C.probe_layout_at(C.int(i))

		l := native.Layout{
			Name:  C.GoString(p.name),
			Size:  uintptr(p.size),
			Align: uintptr(p.align),
		}
		for _, f := range p.fields[:p.count] {
			l.Fields = append(l.Fields, native.Field{
				Name:   C.GoString(f.name),
				Offset: uintptr(f.offset),
				Size:   uintptr(f.size),
			})
		}
		layouts = append(layouts, l)
	}
	return layouts
}

// Lookup returns the C layout of the struct called name.
func Lookup(name string) (native.Layout, bool) {
	for _, l := range Layouts() {
		if l.Name == name {
			return l, true
		}
	}
	return native.Layout{}, false
}

// Each Fill function writes a fixed pattern into the struct at p, which must
// point at the Go mirror of that struct. The matching Check function passes
// the struct to C by value and reports whether C reads the same pattern back.

func FillNPatchInfo(p unsafe.Pointer) { C.probe_fill_npatch((*C.NPatchInfo)(p)) }

func CheckNPatchInfo(p unsafe.Pointer) bool {
	return bool(C.probe_check_npatch(*(*C.NPatchInfo)(p)))
}

// FillShader points the shader's locations at a static array whose i-th
// entry is 2*i.
func FillShader(p unsafe.Pointer) { C.probe_fill_shader((*C.Shader)(p)) }

func CheckShader(p unsafe.Pointer) bool {
	return bool(C.probe_check_shader(*(*C.Shader)(p)))
}

func FillCamera3D(p unsafe.Pointer) { C.probe_fill_camera((*C.Camera3D)(p)) }

func CheckCamera3D(p unsafe.Pointer) bool {
	return bool(C.probe_check_camera(*(*C.Camera3D)(p)))
}

// FillFilePathList sets capacity 4 and two static paths.
func FillFilePathList(p unsafe.Pointer) { C.probe_fill_file_path_list((*C.FilePathList)(p)) }

func CheckFilePathList(p unsafe.Pointer) bool {
	return bool(C.probe_check_file_path_list(*(*C.FilePathList)(p)))
}

func FillAutomationEvent(p unsafe.Pointer) { C.probe_fill_automation_event((*C.AutomationEvent)(p)) }

func CheckAutomationEvent(p unsafe.Pointer) bool {
	return bool(C.probe_check_automation_event(*(*C.AutomationEvent)(p)))
}

// FillRenderBatch points the batch at one static vertex buffer and four
// static draw calls.
func FillRenderBatch(p unsafe.Pointer) { C.probe_fill_render_batch((*C.rlRenderBatch)(p)) }

func CheckRenderBatch(p unsafe.Pointer) bool {
	return bool(C.probe_check_render_batch(*(*C.rlRenderBatch)(p)))
}
