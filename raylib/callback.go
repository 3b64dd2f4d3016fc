package raylib

import (
	"math"
	"sync"
	"sync/atomic"
	"unsafe"

	"github.com/jmorganca/raylib/internal/native"
	"github.com/jmorganca/raylib/logutil"
)

// AudioProcessor receives the mixed output of every playing sound, music and
// stream before it reaches the device. Go funcs cannot be compared, so the
// processor's identity is its pointer: detaching requires the same
// *AudioProcessor that was attached.
type AudioProcessor struct {
	process func(samples []float32)
}

// NewAudioProcessor wraps fn. fn runs on raylib's audio thread with
// interleaved stereo samples that it may modify in place; it must not block
// and must not keep samples after returning.
func NewAudioProcessor(fn func(samples []float32)) *AudioProcessor {
	return &AudioProcessor{process: fn}
}

var (
	audioMixedSlot atomic.Pointer[AudioProcessor]

	trampolineMu         sync.Mutex
	audioMixedTrampoline uintptr
	newCallback          = native.NewCallback
)

// audioMixedCallback returns the C function pointer handed to raylib. It is
// created once and reused, so attach and detach always pass raylib the same
// address.
func audioMixedCallback() uintptr {
	trampolineMu.Lock()
	defer trampolineMu.Unlock()

	if audioMixedTrampoline == 0 {
		audioMixedTrampoline = newCallback(audioMixed)
	}
	return audioMixedTrampoline
}

// audioMixed is the native entry point. Events that arrive while no
// processor is attached are dropped.
func audioMixed(bufferData unsafe.Pointer, frameCount uint32) {
	p := audioMixedSlot.Load()
	if p == nil || bufferData == nil {
		return
	}

	n := min(uint64(frameCount)*2, math.MaxInt32)
	p.process(unsafe.Slice((*float32)(bufferData), n))
}

// AttachAudioMixedProcessor attaches p to the audio mixer. Only one
// processor is attached at a time; while one is, further calls do nothing.
func AttachAudioMixedProcessor(p *AudioProcessor) {
	if p == nil || !audioMixedSlot.CompareAndSwap(nil, p) {
		return
	}

	// the slot must be empty again if raylib never got the trampoline
	defer func() {
		if r := recover(); r != nil {
			audioMixedSlot.CompareAndSwap(p, nil)
			panic(r)
		}
	}()

	logutil.Trace("attach audio mixed processor", "processor", unsafe.Pointer(p))
	attachAudioMixedProcessor(audioMixedCallback())
}

// DetachAudioMixedProcessor detaches p if it is the attached processor, and
// does nothing otherwise.
func DetachAudioMixedProcessor(p *AudioProcessor) {
	if p == nil || audioMixedSlot.Load() != p {
		return
	}

	logutil.Trace("detach audio mixed processor", "processor", unsafe.Pointer(p))
	detachAudioMixedProcessor(audioMixedCallback())
	audioMixedSlot.CompareAndSwap(p, nil)
}
