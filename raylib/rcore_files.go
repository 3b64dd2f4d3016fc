package raylib

import (
	"runtime"
	"sync"
	"unsafe"

	"github.com/jmorganca/raylib/internal/native"
)

var (
	loadFileData            func(fileName *byte, dataSize *int32) unsafe.Pointer
	unloadFileData          func(data unsafe.Pointer)
	saveFileData            func(fileName *byte, data unsafe.Pointer, dataSize int32) bool
	exportDataAsCode        func(data unsafe.Pointer, dataSize int32, fileName *byte) bool
	loadFileText            func(fileName *byte) unsafe.Pointer
	unloadFileText          func(text unsafe.Pointer)
	saveFileText            func(fileName, text *byte) bool
	fileExists              func(fileName *byte) bool
	directoryExists         func(dirPath *byte) bool
	isFileExtension         func(fileName, ext *byte) bool
	getFileLength           func(fileName *byte) int32
	getFileExtension        func(fileName *byte) unsafe.Pointer
	getFileName             func(filePath *byte) unsafe.Pointer
	getFileNameWithoutExt   func(filePath *byte) unsafe.Pointer
	getDirectoryPath        func(filePath *byte) unsafe.Pointer
	getPrevDirectoryPath    func(dirPath *byte) unsafe.Pointer
	getWorkingDirectory     func() unsafe.Pointer
	getApplicationDirectory func() unsafe.Pointer
	changeDirectory         func(dir *byte) bool
	isPathFile              func(path *byte) bool
	isFileNameValid         func(fileName *byte) bool
	loadDirectoryFiles      func(dirPath *byte) FilePathList
	loadDirectoryFilesEx    func(basePath, filter *byte, scanSubdirs bool) FilePathList
	unloadDirectoryFiles    func(files FilePathList)
	isFileDropped           func() bool
	loadDroppedFiles        func() FilePathList
	unloadDroppedFiles      func(files FilePathList)
	getFileModTime          func(fileName *byte) cLong

	compressData     func(data unsafe.Pointer, dataSize int32, compDataSize *int32) unsafe.Pointer
	decompressData   func(compData unsafe.Pointer, compDataSize int32, dataSize *int32) unsafe.Pointer
	encodeDataBase64 func(data unsafe.Pointer, dataSize int32, outputSize *int32) unsafe.Pointer
	decodeDataBase64 func(data *byte, outputSize *int32) unsafe.Pointer

	loadAutomationEventList       func(fileName *byte) AutomationEventList
	unloadAutomationEventList     func(list AutomationEventList)
	exportAutomationEventList     func(list AutomationEventList, fileName *byte) bool
	setAutomationEventList        func(list *AutomationEventList)
	setAutomationEventBaseFrame   func(frame int32)
	startAutomationEventRecording func()
	stopAutomationEventRecording  func()
	playAutomationEvent           func(event AutomationEvent)
)

var rcoreFileSymbols = []native.Symbol{
	{"LoadFileData", &loadFileData},
	{"UnloadFileData", &unloadFileData},
	{"SaveFileData", &saveFileData},
	{"ExportDataAsCode", &exportDataAsCode},
	{"LoadFileText", &loadFileText},
	{"UnloadFileText", &unloadFileText},
	{"SaveFileText", &saveFileText},
	{"FileExists", &fileExists},
	{"DirectoryExists", &directoryExists},
	{"IsFileExtension", &isFileExtension},
	{"GetFileLength", &getFileLength},
	{"GetFileExtension", &getFileExtension},
	{"GetFileName", &getFileName},
	{"GetFileNameWithoutExt", &getFileNameWithoutExt},
	{"GetDirectoryPath", &getDirectoryPath},
	{"GetPrevDirectoryPath", &getPrevDirectoryPath},
	{"GetWorkingDirectory", &getWorkingDirectory},
	{"GetApplicationDirectory", &getApplicationDirectory},
	{"ChangeDirectory", &changeDirectory},
	{"IsPathFile", &isPathFile},
	{"IsFileNameValid", &isFileNameValid},
	{"LoadDirectoryFiles", &loadDirectoryFiles},
	{"LoadDirectoryFilesEx", &loadDirectoryFilesEx},
	{"UnloadDirectoryFiles", &unloadDirectoryFiles},
	{"IsFileDropped", &isFileDropped},
	{"LoadDroppedFiles", &loadDroppedFiles},
	{"UnloadDroppedFiles", &unloadDroppedFiles},
	{"GetFileModTime", &getFileModTime},

	{"CompressData", &compressData},
	{"DecompressData", &decompressData},
	{"EncodeDataBase64", &encodeDataBase64},
	{"DecodeDataBase64", &decodeDataBase64},

	{"LoadAutomationEventList", &loadAutomationEventList},
	{"UnloadAutomationEventList", &unloadAutomationEventList},
	{"ExportAutomationEventList", &exportAutomationEventList},
	{"SetAutomationEventList", &setAutomationEventList},
	{"SetAutomationEventBaseFrame", &setAutomationEventBaseFrame},
	{"StartAutomationEventRecording", &startAutomationEventRecording},
	{"StopAutomationEventRecording", &stopAutomationEventRecording},
	{"PlayAutomationEvent", &playAutomationEvent},
}

// LoadFileData reads a whole file. The native buffer is copied and released
// before returning; a missing file yields nil.
func LoadFileData(fileName string) []byte {
	name, release := native.CString(fileName)
	defer release()

	var size int32
	sizePtr, unpin := native.PinValue(&size)
	defer unpin()

	return native.LoadAndRelease(
		func() unsafe.Pointer { return loadFileData(name, sizePtr) },
		unloadFileData,
		func(p unsafe.Pointer) []byte { return native.CopyBytes(p, int(size)) },
	)
}

// SaveFileData writes data to fileName, reporting whether it succeeded.
func SaveFileData(fileName string, data []byte) bool {
	name, release := native.CString(fileName)
	defer release()
	p, unpin := native.PinSlice(data)
	defer unpin()
	return saveFileData(name, p, int32(len(data)))
}

// ExportDataAsCode writes data as a C byte array header to fileName.
func ExportDataAsCode(data []byte, fileName string) bool {
	p, unpin := native.PinSlice(data)
	defer unpin()
	name, release := native.CString(fileName)
	defer release()
	return exportDataAsCode(p, int32(len(data)), name)
}

// LoadFileText reads a text file. A missing file yields "".
func LoadFileText(fileName string) string {
	name, release := native.CString(fileName)
	defer release()

	return native.LoadAndRelease(
		func() unsafe.Pointer { return loadFileText(name) },
		unloadFileText,
		native.GoString,
	)
}

func SaveFileText(fileName, text string) bool {
	name, release := native.CString(fileName)
	defer release()
	t, releaseText := native.CString(text)
	defer releaseText()
	return saveFileText(name, t)
}

func FileExists(fileName string) bool {
	name, release := native.CString(fileName)
	defer release()
	return fileExists(name)
}

func DirectoryExists(dirPath string) bool {
	p, release := native.CString(dirPath)
	defer release()
	return directoryExists(p)
}

// IsFileExtension checks the extension of fileName, including the dot. ext
// may list several extensions separated by semicolons: ".png;.wav".
func IsFileExtension(fileName, ext string) bool {
	name, release := native.CString(fileName)
	defer release()
	e, releaseExt := native.CString(ext)
	defer releaseExt()
	return isFileExtension(name, e)
}

func GetFileLength(fileName string) int32 {
	name, release := native.CString(fileName)
	defer release()
	return getFileLength(name)
}

// pathString calls a native path function that returns a string in raylib's
// static buffer. The buffer is copied before the next call can overwrite it.
func pathString(fn func(*byte) unsafe.Pointer, path string) string {
	p, release := native.CString(path)
	defer release()
	return native.GoString(fn(p))
}

// GetFileExtension returns the extension of fileName including the dot, or ""
// when it has none.
func GetFileExtension(fileName string) string {
	return pathString(getFileExtension, fileName)
}

func GetFileName(filePath string) string {
	return pathString(getFileName, filePath)
}

func GetFileNameWithoutExt(filePath string) string {
	return pathString(getFileNameWithoutExt, filePath)
}

func GetDirectoryPath(filePath string) string {
	return pathString(getDirectoryPath, filePath)
}

func GetPrevDirectoryPath(dirPath string) string {
	return pathString(getPrevDirectoryPath, dirPath)
}

func GetWorkingDirectory() string {
	return native.GoString(getWorkingDirectory())
}

func GetApplicationDirectory() string {
	return native.GoString(getApplicationDirectory())
}

func ChangeDirectory(dir string) bool {
	d, release := native.CString(dir)
	defer release()
	return changeDirectory(d)
}

func IsPathFile(path string) bool {
	p, release := native.CString(path)
	defer release()
	return isPathFile(p)
}

func IsFileNameValid(fileName string) bool {
	name, release := native.CString(fileName)
	defer release()
	return isFileNameValid(name)
}

// LoadDirectoryFiles lists the files and directories in dirPath.
func LoadDirectoryFiles(dirPath string) []string {
	p, release := native.CString(dirPath)
	defer release()

	return native.LoadAndRelease(
		func() FilePathList { return loadDirectoryFiles(p) },
		unloadDirectoryFiles,
		FilePathList.strings,
	)
}

// LoadDirectoryFilesEx lists basePath filtered by extension, for example
// ".png;.jpg". A filter of "DIR" includes directories.
func LoadDirectoryFilesEx(basePath, filter string, scanSubdirs bool) []string {
	p, release := native.CString(basePath)
	defer release()
	f, releaseFilter := native.CStringOrNil(filter)
	defer releaseFilter()

	return native.LoadAndRelease(
		func() FilePathList { return loadDirectoryFilesEx(p, f, scanSubdirs) },
		unloadDirectoryFiles,
		FilePathList.strings,
	)
}

func IsFileDropped() bool { return isFileDropped() }

// GetDroppedFiles returns the paths dropped on the window and releases
// raylib's list.
func GetDroppedFiles() []string {
	return native.LoadAndRelease(loadDroppedFiles, unloadDroppedFiles, FilePathList.strings)
}

// GetFileModTime returns the modification time of fileName as a Unix
// timestamp.
func GetFileModTime(fileName string) int64 {
	name, release := native.CString(fileName)
	defer release()
	return int64(getFileModTime(name))
}

// memFreed copies n elements of a buffer raylib allocated with its own
// allocator and releases it with MemFree.
func memFreed[T any](load func() unsafe.Pointer, n *int32) []T {
	return native.LoadAndRelease(load, MemFree, func(p unsafe.Pointer) []T {
		return native.CopySlice[T](p, int(*n))
	})
}

// CompressData compresses data with DEFLATE.
func CompressData(data []byte) []byte {
	p, unpin := native.PinSlice(data)
	defer unpin()

	var size int32
	sizePtr, unpinSize := native.PinValue(&size)
	defer unpinSize()

	return memFreed[byte](func() unsafe.Pointer {
		return compressData(p, int32(len(data)), sizePtr)
	}, &size)
}

// DecompressData inflates data produced by CompressData.
func DecompressData(compData []byte) []byte {
	p, unpin := native.PinSlice(compData)
	defer unpin()

	var size int32
	sizePtr, unpinSize := native.PinValue(&size)
	defer unpinSize()

	return memFreed[byte](func() unsafe.Pointer {
		return decompressData(p, int32(len(compData)), sizePtr)
	}, &size)
}

// EncodeDataBase64 encodes data as Base64 text. raylib reports the text's
// length through outputSize and does not NUL-terminate it.
func EncodeDataBase64(data []byte) string {
	p, unpin := native.PinSlice(data)
	defer unpin()

	var size int32
	sizePtr, unpinSize := native.PinValue(&size)
	defer unpinSize()

	return native.LoadAndRelease(
		func() unsafe.Pointer { return encodeDataBase64(p, int32(len(data)), sizePtr) },
		MemFree,
		func(p unsafe.Pointer) string { return string(native.CopyBytes(p, int(size))) },
	)
}

// DecodeDataBase64 decodes Base64 text.
func DecodeDataBase64(text string) []byte {
	t, release := native.CString(text)
	defer release()

	var size int32
	sizePtr, unpinSize := native.PinValue(&size)
	defer unpinSize()

	return memFreed[byte](func() unsafe.Pointer {
		return decodeDataBase64(t, sizePtr)
	}, &size)
}

// LoadAutomationEventList loads recorded events from fileName. An empty name
// creates an empty list with the default capacity.
func LoadAutomationEventList(fileName string) AutomationEventList {
	name, release := native.CStringOrNil(fileName)
	defer release()
	return loadAutomationEventList(name)
}

func UnloadAutomationEventList(list AutomationEventList) {
	unloadAutomationEventList(list)
}

func ExportAutomationEventList(list AutomationEventList, fileName string) bool {
	name, release := native.CString(fileName)
	defer release()
	return exportAutomationEventList(list, name)
}

var (
	recordingMu  sync.Mutex
	recordingPin runtime.Pinner
)

// SetAutomationEventList sets the list raylib records events into. raylib
// keeps the pointer, so list stays pinned until the next call or Unload.
func SetAutomationEventList(list *AutomationEventList) {
	recordingMu.Lock()
	defer recordingMu.Unlock()

	recordingPin.Unpin()
	if list != nil {
		recordingPin.Pin(list)
	}
	setAutomationEventList(list)
}

func releaseAutomationEventList() {
	recordingMu.Lock()
	defer recordingMu.Unlock()
	recordingPin.Unpin()
}

func SetAutomationEventBaseFrame(frame int32)   { setAutomationEventBaseFrame(frame) }
func StartAutomationEventRecording()            { startAutomationEventRecording() }
func StopAutomationEventRecording()             { stopAutomationEventRecording() }
func PlayAutomationEvent(event AutomationEvent) { playAutomationEvent(event) }
