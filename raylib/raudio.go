package raylib

import (
	"unsafe"

	"github.com/jmorganca/raylib/internal/native"
)

var (
	initAudioDevice    func()
	closeAudioDevice   func()
	isAudioDeviceReady func() bool
	setMasterVolume    func(volume float32)
	getMasterVolume    func() float32

	loadWave           func(fileName *byte) Wave
	loadWaveFromMemory func(fileType *byte, fileData unsafe.Pointer, dataSize int32) Wave
	isWaveReady        func(wave Wave) bool
	unloadWave         func(wave Wave)
	exportWave         func(wave Wave, fileName *byte) bool
	loadWaveSamples    func(wave Wave) unsafe.Pointer
	unloadWaveSamples  func(samples unsafe.Pointer)

	loadSound         func(fileName *byte) Sound
	loadSoundFromWave func(wave Wave) Sound
	isSoundReady      func(sound Sound) bool
	updateSound       func(sound Sound, data unsafe.Pointer, sampleCount int32)
	unloadSound       func(sound Sound)
	playSound         func(sound Sound)
	stopSound         func(sound Sound)
	pauseSound        func(sound Sound)
	resumeSound       func(sound Sound)
	isSoundPlaying    func(sound Sound) bool
	setSoundVolume    func(sound Sound, volume float32)
	setSoundPitch     func(sound Sound, pitch float32)
	setSoundPan       func(sound Sound, pan float32)

	loadMusicStream      func(fileName *byte) Music
	isMusicReady         func(music Music) bool
	unloadMusicStream    func(music Music)
	playMusicStream      func(music Music)
	isMusicStreamPlaying func(music Music) bool
	updateMusicStream    func(music Music)
	stopMusicStream      func(music Music)
	pauseMusicStream     func(music Music)
	resumeMusicStream    func(music Music)
	seekMusicStream      func(music Music, position float32)
	setMusicVolume       func(music Music, volume float32)
	getMusicTimeLength   func(music Music) float32
	getMusicTimePlayed   func(music Music) float32

	loadAudioStream                 func(sampleRate, sampleSize, channels uint32) AudioStream
	isAudioStreamReady              func(stream AudioStream) bool
	unloadAudioStream               func(stream AudioStream)
	updateAudioStream               func(stream AudioStream, data unsafe.Pointer, frameCount int32)
	isAudioStreamProcessed          func(stream AudioStream) bool
	playAudioStream                 func(stream AudioStream)
	pauseAudioStream                func(stream AudioStream)
	resumeAudioStream               func(stream AudioStream)
	isAudioStreamPlaying            func(stream AudioStream) bool
	stopAudioStream                 func(stream AudioStream)
	setAudioStreamVolume            func(stream AudioStream, volume float32)
	setAudioStreamBufferSizeDefault func(size int32)

	attachAudioMixedProcessor func(processor uintptr)
	detachAudioMixedProcessor func(processor uintptr)
)

var raudioSymbols = []native.Symbol{
	{"InitAudioDevice", &initAudioDevice},
	{"CloseAudioDevice", &closeAudioDevice},
	{"IsAudioDeviceReady", &isAudioDeviceReady},
	{"SetMasterVolume", &setMasterVolume},
	{"GetMasterVolume", &getMasterVolume},

	{"LoadWave", &loadWave},
	{"LoadWaveFromMemory", &loadWaveFromMemory},
	{"IsWaveReady", &isWaveReady},
	{"UnloadWave", &unloadWave},
	{"ExportWave", &exportWave},
	{"LoadWaveSamples", &loadWaveSamples},
	{"UnloadWaveSamples", &unloadWaveSamples},

	{"LoadSound", &loadSound},
	{"LoadSoundFromWave", &loadSoundFromWave},
	{"IsSoundReady", &isSoundReady},
	{"UpdateSound", &updateSound},
	{"UnloadSound", &unloadSound},
	{"PlaySound", &playSound},
	{"StopSound", &stopSound},
	{"PauseSound", &pauseSound},
	{"ResumeSound", &resumeSound},
	{"IsSoundPlaying", &isSoundPlaying},
	{"SetSoundVolume", &setSoundVolume},
	{"SetSoundPitch", &setSoundPitch},
	{"SetSoundPan", &setSoundPan},

	{"LoadMusicStream", &loadMusicStream},
	{"IsMusicReady", &isMusicReady},
	{"UnloadMusicStream", &unloadMusicStream},
	{"PlayMusicStream", &playMusicStream},
	{"IsMusicStreamPlaying", &isMusicStreamPlaying},
	{"UpdateMusicStream", &updateMusicStream},
	{"StopMusicStream", &stopMusicStream},
	{"PauseMusicStream", &pauseMusicStream},
	{"ResumeMusicStream", &resumeMusicStream},
	{"SeekMusicStream", &seekMusicStream},
	{"SetMusicVolume", &setMusicVolume},
	{"GetMusicTimeLength", &getMusicTimeLength},
	{"GetMusicTimePlayed", &getMusicTimePlayed},

	{"LoadAudioStream", &loadAudioStream},
	{"IsAudioStreamReady", &isAudioStreamReady},
	{"UnloadAudioStream", &unloadAudioStream},
	{"UpdateAudioStream", &updateAudioStream},
	{"IsAudioStreamProcessed", &isAudioStreamProcessed},
	{"PlayAudioStream", &playAudioStream},
	{"PauseAudioStream", &pauseAudioStream},
	{"ResumeAudioStream", &resumeAudioStream},
	{"IsAudioStreamPlaying", &isAudioStreamPlaying},
	{"StopAudioStream", &stopAudioStream},
	{"SetAudioStreamVolume", &setAudioStreamVolume},
	{"SetAudioStreamBufferSizeDefault", &setAudioStreamBufferSizeDefault},

	{"AttachAudioMixedProcessor", &attachAudioMixedProcessor},
	{"DetachAudioMixedProcessor", &detachAudioMixedProcessor},
}

// InitAudioDevice opens the default audio device and starts the mixer.
func InitAudioDevice()         { initAudioDevice() }
func CloseAudioDevice()        { closeAudioDevice() }
func IsAudioDeviceReady() bool { return isAudioDeviceReady() }

// SetMasterVolume sets the master volume, 1.0 being the maximum.
func SetMasterVolume(volume float32) { setMasterVolume(volume) }
func GetMasterVolume() float32       { return getMasterVolume() }

func LoadWave(fileName string) Wave {
	name, release := native.CString(fileName)
	defer release()
	return loadWave(name)
}

// LoadWaveFromMemory decodes a wave from an encoded file held in memory.
// fileType is the extension including the dot, for example ".wav".
func LoadWaveFromMemory(fileType string, fileData []byte) Wave {
	t, release := native.CString(fileType)
	defer release()
	p, unpin := native.PinSlice(fileData)
	defer unpin()
	return loadWaveFromMemory(t, p, int32(len(fileData)))
}

func IsWaveReady(wave Wave) bool { return isWaveReady(wave) }
func UnloadWave(wave Wave)       { unloadWave(wave) }

func ExportWave(wave Wave, fileName string) bool {
	name, release := native.CString(fileName)
	defer release()
	return exportWave(wave, name)
}

// GetWaveSamples returns the wave's samples as interleaved float32 in
// [-1, 1], FrameCount*Channels of them.
func GetWaveSamples(wave Wave) []float32 {
	return native.LoadAndRelease(
		func() unsafe.Pointer { return loadWaveSamples(wave) },
		unloadWaveSamples,
		func(p unsafe.Pointer) []float32 {
			return native.CopySlice[float32](p, int(wave.FrameCount)*int(wave.Channels))
		},
	)
}

func LoadSound(fileName string) Sound {
	name, release := native.CString(fileName)
	defer release()
	return loadSound(name)
}

func LoadSoundFromWave(wave Wave) Sound { return loadSoundFromWave(wave) }
func IsSoundReady(sound Sound) bool     { return isSoundReady(sound) }

// frames is the number of whole frames of stream's format that data holds.
func frames[T any](stream AudioStream, data []T) int32 {
	frameSize := int(stream.SampleSize/8) * int(stream.Channels)
	if frameSize == 0 {
		return 0
	}
	return int32(native.ByteLen(data) / frameSize)
}

// UpdateSound replaces the sound's samples with data, which must be in the
// sound's sample format.
func UpdateSound[T any](sound Sound, data []T) {
	p, release := native.PinSlice(data)
	defer release()
	updateSound(sound, p, frames(sound.Stream, data))
}

func UnloadSound(sound Sound)                    { unloadSound(sound) }
func PlaySound(sound Sound)                      { playSound(sound) }
func StopSound(sound Sound)                      { stopSound(sound) }
func PauseSound(sound Sound)                     { pauseSound(sound) }
func ResumeSound(sound Sound)                    { resumeSound(sound) }
func IsSoundPlaying(sound Sound) bool            { return isSoundPlaying(sound) }
func SetSoundVolume(sound Sound, volume float32) { setSoundVolume(sound, volume) }
func SetSoundPitch(sound Sound, pitch float32)   { setSoundPitch(sound, pitch) }

// SetSoundPan sets the pan: 0.5 is center, 0.0 left and 1.0 right.
func SetSoundPan(sound Sound, pan float32) { setSoundPan(sound, pan) }

func LoadMusicStream(fileName string) Music {
	name, release := native.CString(fileName)
	defer release()
	return loadMusicStream(name)
}

func IsMusicReady(music Music) bool         { return isMusicReady(music) }
func UnloadMusicStream(music Music)         { unloadMusicStream(music) }
func PlayMusicStream(music Music)           { playMusicStream(music) }
func IsMusicStreamPlaying(music Music) bool { return isMusicStreamPlaying(music) }

// UpdateMusicStream refills the music's buffers. Call it every frame while
// the music plays.
func UpdateMusicStream(music Music) { updateMusicStream(music) }

func StopMusicStream(music Music)   { stopMusicStream(music) }
func PauseMusicStream(music Music)  { pauseMusicStream(music) }
func ResumeMusicStream(music Music) { resumeMusicStream(music) }

// SeekMusicStream seeks to position, in seconds.
func SeekMusicStream(music Music, position float32) { seekMusicStream(music, position) }

func SetMusicVolume(music Music, volume float32) { setMusicVolume(music, volume) }
func GetMusicTimeLength(music Music) float32     { return getMusicTimeLength(music) }
func GetMusicTimePlayed(music Music) float32     { return getMusicTimePlayed(music) }

// LoadAudioStream creates a stream for raw audio. sampleSize is in bits: 8,
// 16 or 32.
func LoadAudioStream(sampleRate, sampleSize, channels uint32) AudioStream {
	return loadAudioStream(sampleRate, sampleSize, channels)
}

func IsAudioStreamReady(stream AudioStream) bool { return isAudioStreamReady(stream) }
func UnloadAudioStream(stream AudioStream)       { unloadAudioStream(stream) }

// UpdateAudioStream queues data on the stream. The frame count passed to
// raylib is derived from the stream's sample size and channels.
func UpdateAudioStream[T any](stream AudioStream, data []T) {
	p, release := native.PinSlice(data)
	defer release()
	updateAudioStream(stream, p, frames(stream, data))
}

// IsAudioStreamProcessed checks if any of the stream's buffers needs
// refilling.
func IsAudioStreamProcessed(stream AudioStream) bool { return isAudioStreamProcessed(stream) }

func PlayAudioStream(stream AudioStream)                      { playAudioStream(stream) }
func PauseAudioStream(stream AudioStream)                     { pauseAudioStream(stream) }
func ResumeAudioStream(stream AudioStream)                    { resumeAudioStream(stream) }
func IsAudioStreamPlaying(stream AudioStream) bool            { return isAudioStreamPlaying(stream) }
func StopAudioStream(stream AudioStream)                      { stopAudioStream(stream) }
func SetAudioStreamVolume(stream AudioStream, volume float32) { setAudioStreamVolume(stream, volume) }

// SetAudioStreamBufferSizeDefault sets the buffer size, in frames, of streams
// created afterwards.
func SetAudioStreamBufferSizeDefault(size int32) { setAudioStreamBufferSizeDefault(size) }
