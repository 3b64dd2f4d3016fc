package raylib

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fakeTrampoline uintptr = 0xfeed

// mixer stands in for raylib's audio mixer: it remembers the callback
// address it was given and invokes audioMixed when triggered.
type mixer struct {
	attached  []uintptr
	detached  []uintptr
	callbacks int
}

func newMixer(t *testing.T) *mixer {
	m := &mixer{}

	fake(t, &newCallback, func(fn any) uintptr {
		m.callbacks++
		return fakeTrampoline
	})
	fake(t, &attachAudioMixedProcessor, func(processor uintptr) { m.attached = append(m.attached, processor) })
	fake(t, &detachAudioMixedProcessor, func(processor uintptr) { m.detached = append(m.detached, processor) })

	audioMixedTrampoline = 0
	t.Cleanup(func() {
		audioMixedSlot.Store(nil)
		audioMixedTrampoline = 0
	})
	return m
}

// trigger delivers frames of stereo samples to the attached processor.
func (m *mixer) trigger(samples []float32) {
	audioMixed(unsafe.Pointer(&samples[0]), uint32(len(samples)/2))
}

func TestAttachFirstWins(t *testing.T) {
	m := newMixer(t)

	var calls []string
	a := NewAudioProcessor(func([]float32) { calls = append(calls, "a") })
	b := NewAudioProcessor(func([]float32) { calls = append(calls, "b") })

	AttachAudioMixedProcessor(a)
	AttachAudioMixedProcessor(b)
	m.trigger(make([]float32, 8))

	assert.Equal(t, []string{"a"}, calls)
	assert.Equal(t, []uintptr{fakeTrampoline}, m.attached, "second attach must not reach raylib")
}

func TestDetachNeverAttached(t *testing.T) {
	m := newMixer(t)

	var calls []string
	a := NewAudioProcessor(func([]float32) { calls = append(calls, "a") })
	b := NewAudioProcessor(func([]float32) { calls = append(calls, "b") })

	DetachAudioMixedProcessor(b)
	assert.Empty(t, m.detached)

	AttachAudioMixedProcessor(a)
	DetachAudioMixedProcessor(b)
	DetachAudioMixedProcessor(nil)
	assert.Empty(t, m.detached)

	m.trigger(make([]float32, 2))
	assert.Equal(t, []string{"a"}, calls)
}

func TestDetachAttached(t *testing.T) {
	m := newMixer(t)

	var calls int
	a := NewAudioProcessor(func([]float32) { calls++ })
	b := NewAudioProcessor(func([]float32) { calls += 10 })

	AttachAudioMixedProcessor(a)
	DetachAudioMixedProcessor(a)
	assert.Equal(t, []uintptr{fakeTrampoline}, m.detached)

	m.trigger(make([]float32, 2))
	assert.Zero(t, calls, "events with nothing attached are dropped")

	AttachAudioMixedProcessor(b)
	m.trigger(make([]float32, 2))
	assert.Equal(t, 10, calls)

	assert.Equal(t, 1, m.callbacks, "the trampoline is created once")
	assert.Equal(t, []uintptr{fakeTrampoline, fakeTrampoline}, m.attached)
}

func TestAudioMixedSamples(t *testing.T) {
	newMixer(t)

	var got []float32
	AttachAudioMixedProcessor(NewAudioProcessor(func(samples []float32) {
		got = append(got, samples...)
		for i := range samples {
			samples[i] *= 2
		}
	}))

	buf := []float32{0.1, 0.2, 0.3, 0.4, 0.5, 0.6}
	audioMixed(unsafe.Pointer(&buf[0]), 2)

	assert.Equal(t, []float32{0.1, 0.2, 0.3, 0.4}, got, "two stereo frames")
	assert.InDelta(t, 0.8, buf[3], 1e-6, "processor edits the buffer in place")
	assert.InDelta(t, 0.5, buf[4], 1e-6, "samples past the frame count are untouched")
}

func TestAudioMixedNilBuffer(t *testing.T) {
	newMixer(t)

	called := false
	AttachAudioMixedProcessor(NewAudioProcessor(func([]float32) { called = true }))

	require.NotPanics(t, func() { audioMixed(nil, 512) })
	assert.False(t, called)
}

func TestAttachFailureLeavesSlotEmpty(t *testing.T) {
	m := newMixer(t)

	a := NewAudioProcessor(func([]float32) {})
	b := NewAudioProcessor(func([]float32) {})

	fake(t, &attachAudioMixedProcessor, func(uintptr) {
		panic("raylib: AttachAudioMixedProcessor called before the native library was loaded")
	})
	assert.Panics(t, func() { AttachAudioMixedProcessor(a) })
	assert.Nil(t, audioMixedSlot.Load())

	fake(t, &attachAudioMixedProcessor, func(processor uintptr) { m.attached = append(m.attached, processor) })
	AttachAudioMixedProcessor(b)
	assert.Same(t, b, audioMixedSlot.Load())
	assert.Equal(t, []uintptr{fakeTrampoline}, m.attached)
}

func TestAttachCallbackUnsupported(t *testing.T) {
	m := newMixer(t)
	fake(t, &newCallback, func(any) uintptr { panic("callbacks are not supported on this platform") })

	a := NewAudioProcessor(func([]float32) {})
	assert.Panics(t, func() { AttachAudioMixedProcessor(a) })
	assert.Nil(t, audioMixedSlot.Load())
	assert.Empty(t, m.attached)
	assert.Zero(t, audioMixedTrampoline)
}

func TestAttachNil(t *testing.T) {
	m := newMixer(t)

	AttachAudioMixedProcessor(nil)
	assert.Nil(t, audioMixedSlot.Load())
	assert.Empty(t, m.attached)
}
