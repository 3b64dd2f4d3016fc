package raylib

import (
	"unsafe"

	"github.com/jmorganca/raylib/internal/native"
)

var (
	isKeyPressed       func(key KeyboardKey) bool
	isKeyPressedRepeat func(key KeyboardKey) bool
	isKeyDown          func(key KeyboardKey) bool
	isKeyReleased      func(key KeyboardKey) bool
	isKeyUp            func(key KeyboardKey) bool
	getKeyPressed      func() KeyboardKey
	getCharPressed     func() int32
	setExitKey         func(key KeyboardKey)

	isGamepadAvailable      func(gamepad int32) bool
	getGamepadName          func(gamepad int32) unsafe.Pointer
	isGamepadButtonPressed  func(gamepad int32, button GamepadButton) bool
	isGamepadButtonDown     func(gamepad int32, button GamepadButton) bool
	isGamepadButtonReleased func(gamepad int32, button GamepadButton) bool
	isGamepadButtonUp       func(gamepad int32, button GamepadButton) bool
	getGamepadButtonPressed func() GamepadButton
	getGamepadAxisCount     func(gamepad int32) int32
	getGamepadAxisMovement  func(gamepad int32, axis GamepadAxis) float32
	setGamepadMappings      func(mappings *byte) int32
	setGamepadVibration     func(gamepad int32, leftMotor, rightMotor float32)

	isMouseButtonPressed  func(button MouseButton) bool
	isMouseButtonDown     func(button MouseButton) bool
	isMouseButtonReleased func(button MouseButton) bool
	isMouseButtonUp       func(button MouseButton) bool
	getMouseX             func() int32
	getMouseY             func() int32
	getMousePosition      func() Vector2
	getMouseDelta         func() Vector2
	setMousePosition      func(x, y int32)
	setMouseOffset        func(offsetX, offsetY int32)
	setMouseScale         func(scaleX, scaleY float32)
	getMouseWheelMove     func() float32
	getMouseWheelMoveV    func() Vector2
	setMouseCursor        func(cursor MouseCursor)

	getTouchX          func() int32
	getTouchY          func() int32
	getTouchPosition   func(index int32) Vector2
	getTouchPointId    func(index int32) int32
	getTouchPointCount func() int32

	setGesturesEnabled     func(flags Gesture)
	isGestureDetected      func(gesture Gesture) bool
	getGestureDetected     func() Gesture
	getGestureHoldDuration func() float32
	getGestureDragVector   func() Vector2
	getGestureDragAngle    func() float32
	getGesturePinchVector  func() Vector2
	getGesturePinchAngle   func() float32
)

var rcoreInputSymbols = []native.Symbol{
	{"IsKeyPressed", &isKeyPressed},
	{"IsKeyPressedRepeat", &isKeyPressedRepeat},
	{"IsKeyDown", &isKeyDown},
	{"IsKeyReleased", &isKeyReleased},
	{"IsKeyUp", &isKeyUp},
	{"GetKeyPressed", &getKeyPressed},
	{"GetCharPressed", &getCharPressed},
	{"SetExitKey", &setExitKey},

	{"IsGamepadAvailable", &isGamepadAvailable},
	{"GetGamepadName", &getGamepadName},
	{"IsGamepadButtonPressed", &isGamepadButtonPressed},
	{"IsGamepadButtonDown", &isGamepadButtonDown},
	{"IsGamepadButtonReleased", &isGamepadButtonReleased},
	{"IsGamepadButtonUp", &isGamepadButtonUp},
	{"GetGamepadButtonPressed", &getGamepadButtonPressed},
	{"GetGamepadAxisCount", &getGamepadAxisCount},
	{"GetGamepadAxisMovement", &getGamepadAxisMovement},
	{"SetGamepadMappings", &setGamepadMappings},
	{"SetGamepadVibration", &setGamepadVibration},

	{"IsMouseButtonPressed", &isMouseButtonPressed},
	{"IsMouseButtonDown", &isMouseButtonDown},
	{"IsMouseButtonReleased", &isMouseButtonReleased},
	{"IsMouseButtonUp", &isMouseButtonUp},
	{"GetMouseX", &getMouseX},
	{"GetMouseY", &getMouseY},
	{"GetMousePosition", &getMousePosition},
	{"GetMouseDelta", &getMouseDelta},
	{"SetMousePosition", &setMousePosition},
	{"SetMouseOffset", &setMouseOffset},
	{"SetMouseScale", &setMouseScale},
	{"GetMouseWheelMove", &getMouseWheelMove},
	{"GetMouseWheelMoveV", &getMouseWheelMoveV},
	{"SetMouseCursor", &setMouseCursor},

	{"GetTouchX", &getTouchX},
	{"GetTouchY", &getTouchY},
	{"GetTouchPosition", &getTouchPosition},
	{"GetTouchPointId", &getTouchPointId},
	{"GetTouchPointCount", &getTouchPointCount},

	{"SetGesturesEnabled", &setGesturesEnabled},
	{"IsGestureDetected", &isGestureDetected},
	{"GetGestureDetected", &getGestureDetected},
	{"GetGestureHoldDuration", &getGestureHoldDuration},
	{"GetGestureDragVector", &getGestureDragVector},
	{"GetGestureDragAngle", &getGestureDragAngle},
	{"GetGesturePinchVector", &getGesturePinchVector},
	{"GetGesturePinchAngle", &getGesturePinchAngle},
}

func IsKeyPressed(key KeyboardKey) bool { return isKeyPressed(key) }

// IsKeyPressedRepeat checks if a key has been pressed again, as repeat
// events do while it is held.
func IsKeyPressedRepeat(key KeyboardKey) bool { return isKeyPressedRepeat(key) }

func IsKeyDown(key KeyboardKey) bool     { return isKeyDown(key) }
func IsKeyReleased(key KeyboardKey) bool { return isKeyReleased(key) }
func IsKeyUp(key KeyboardKey) bool       { return isKeyUp(key) }

// GetKeyPressed returns the next key from the pressed queue, or KeyNull when
// the queue is empty.
func GetKeyPressed() KeyboardKey { return getKeyPressed() }

// GetCharPressed returns the next unicode codepoint from the char queue, or 0
// when the queue is empty.
func GetCharPressed() rune { return getCharPressed() }

// SetExitKey sets the key that closes the window. KeyNull disables it.
func SetExitKey(key KeyboardKey) { setExitKey(key) }

func IsGamepadAvailable(gamepad int32) bool { return isGamepadAvailable(gamepad) }

// GetGamepadName returns the internal name of the gamepad, or "" if none is
// connected at that index.
func GetGamepadName(gamepad int32) string {
	return native.GoString(getGamepadName(gamepad))
}

func IsGamepadButtonPressed(gamepad int32, button GamepadButton) bool {
	return isGamepadButtonPressed(gamepad, button)
}

func IsGamepadButtonDown(gamepad int32, button GamepadButton) bool {
	return isGamepadButtonDown(gamepad, button)
}

func IsGamepadButtonReleased(gamepad int32, button GamepadButton) bool {
	return isGamepadButtonReleased(gamepad, button)
}

func IsGamepadButtonUp(gamepad int32, button GamepadButton) bool {
	return isGamepadButtonUp(gamepad, button)
}

func GetGamepadButtonPressed() GamepadButton  { return getGamepadButtonPressed() }
func GetGamepadAxisCount(gamepad int32) int32 { return getGamepadAxisCount(gamepad) }

func GetGamepadAxisMovement(gamepad int32, axis GamepadAxis) float32 {
	return getGamepadAxisMovement(gamepad, axis)
}

// SetGamepadMappings adds SDL_GameControllerDB mappings.
func SetGamepadMappings(mappings string) int32 {
	m, release := native.CString(mappings)
	defer release()
	return setGamepadMappings(m)
}

func SetGamepadVibration(gamepad int32, leftMotor, rightMotor float32) {
	setGamepadVibration(gamepad, leftMotor, rightMotor)
}

func IsMouseButtonPressed(button MouseButton) bool  { return isMouseButtonPressed(button) }
func IsMouseButtonDown(button MouseButton) bool     { return isMouseButtonDown(button) }
func IsMouseButtonReleased(button MouseButton) bool { return isMouseButtonReleased(button) }
func IsMouseButtonUp(button MouseButton) bool       { return isMouseButtonUp(button) }
func GetMouseX() int32                              { return getMouseX() }
func GetMouseY() int32                              { return getMouseY() }
func GetMousePosition() Vector2                     { return getMousePosition() }
func GetMouseDelta() Vector2                        { return getMouseDelta() }
func SetMousePosition(x, y int32)                   { setMousePosition(x, y) }
func SetMouseOffset(offsetX, offsetY int32)         { setMouseOffset(offsetX, offsetY) }
func SetMouseScale(scaleX, scaleY float32)          { setMouseScale(scaleX, scaleY) }

// GetMouseWheelMove returns the larger of the two wheel axes.
func GetMouseWheelMove() float32 { return getMouseWheelMove() }

func GetMouseWheelMoveV() Vector2          { return getMouseWheelMoveV() }
func SetMouseCursor(cursor MouseCursor)    { setMouseCursor(cursor) }
func GetTouchX() int32                     { return getTouchX() }
func GetTouchY() int32                     { return getTouchY() }
func GetTouchPosition(index int32) Vector2 { return getTouchPosition(index) }
func GetTouchPointId(index int32) int32    { return getTouchPointId(index) }
func GetTouchPointCount() int32            { return getTouchPointCount() }

// SetGesturesEnabled enables the gestures in flags, a mask of Gesture values.
func SetGesturesEnabled(flags Gesture) { setGesturesEnabled(flags) }

func IsGestureDetected(gesture Gesture) bool { return isGestureDetected(gesture) }
func GetGestureDetected() Gesture            { return getGestureDetected() }
func GetGestureHoldDuration() float32        { return getGestureHoldDuration() }
func GetGestureDragVector() Vector2          { return getGestureDragVector() }
func GetGestureDragAngle() float32           { return getGestureDragAngle() }
func GetGesturePinchVector() Vector2         { return getGesturePinchVector() }
func GetGesturePinchAngle() float32          { return getGesturePinchAngle() }
