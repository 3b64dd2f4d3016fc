package raylib

import "github.com/jmorganca/raylib/internal/native"

var (
	updateCamera              func(camera *Camera, mode CameraMode)
	updateCameraPro           func(camera *Camera, movement, rotation Vector3, zoom float32)
	getCameraForward          func(camera *Camera) Vector3
	getCameraUp               func(camera *Camera) Vector3
	getCameraRight            func(camera *Camera) Vector3
	cameraMoveForward         func(camera *Camera, distance float32, moveInWorldPlane bool)
	cameraMoveUp              func(camera *Camera, distance float32)
	cameraMoveRight           func(camera *Camera, distance float32, moveInWorldPlane bool)
	cameraMoveToTarget        func(camera *Camera, delta float32)
	cameraYaw                 func(camera *Camera, angle float32, rotateAroundTarget bool)
	cameraPitch               func(camera *Camera, angle float32, lockView, rotateAroundTarget, rotateUp bool)
	cameraRoll                func(camera *Camera, angle float32)
	getCameraViewMatrix       func(camera *Camera) Matrix
	getCameraProjectionMatrix func(camera *Camera, aspect float32) Matrix
)

var rcameraSymbols = []native.Symbol{
	{"UpdateCamera", &updateCamera},
	{"UpdateCameraPro", &updateCameraPro},
	{"GetCameraForward", &getCameraForward},
	{"GetCameraUp", &getCameraUp},
	{"GetCameraRight", &getCameraRight},
	{"CameraMoveForward", &cameraMoveForward},
	{"CameraMoveUp", &cameraMoveUp},
	{"CameraMoveRight", &cameraMoveRight},
	{"CameraMoveToTarget", &cameraMoveToTarget},
	{"CameraYaw", &cameraYaw},
	{"CameraPitch", &cameraPitch},
	{"CameraRoll", &cameraRoll},
	{"GetCameraViewMatrix", &getCameraViewMatrix},
	{"GetCameraProjectionMatrix", &getCameraProjectionMatrix},
}

// withCamera pins camera for the duration of fn.
func withCamera[R any](camera *Camera, fn func(*Camera) R) R {
	c, release := native.PinValue(camera)
	defer release()
	return fn(c)
}

// UpdateCamera moves camera according to mode and the current input state.
func UpdateCamera(camera *Camera, mode CameraMode) {
	c, release := native.PinValue(camera)
	defer release()
	updateCamera(c, mode)
}

// UpdateCameraPro moves camera by explicit movement and rotation deltas.
// Rotation is in degrees per axis: yaw, pitch and roll.
func UpdateCameraPro(camera *Camera, movement, rotation Vector3, zoom float32) {
	c, release := native.PinValue(camera)
	defer release()
	updateCameraPro(c, movement, rotation, zoom)
}

func GetCameraForward(camera *Camera) Vector3 { return withCamera(camera, getCameraForward) }
func GetCameraUp(camera *Camera) Vector3      { return withCamera(camera, getCameraUp) }
func GetCameraRight(camera *Camera) Vector3   { return withCamera(camera, getCameraRight) }

func CameraMoveForward(camera *Camera, distance float32, moveInWorldPlane bool) {
	c, release := native.PinValue(camera)
	defer release()
	cameraMoveForward(c, distance, moveInWorldPlane)
}

func CameraMoveUp(camera *Camera, distance float32) {
	c, release := native.PinValue(camera)
	defer release()
	cameraMoveUp(c, distance)
}

func CameraMoveRight(camera *Camera, distance float32, moveInWorldPlane bool) {
	c, release := native.PinValue(camera)
	defer release()
	cameraMoveRight(c, distance, moveInWorldPlane)
}

// CameraMoveToTarget moves the camera position closer to or farther from
// its target.
func CameraMoveToTarget(camera *Camera, delta float32) {
	c, release := native.PinValue(camera)
	defer release()
	cameraMoveToTarget(c, delta)
}

// CameraYaw rotates the camera around its up vector. angle is in radians.
func CameraYaw(camera *Camera, angle float32, rotateAroundTarget bool) {
	c, release := native.PinValue(camera)
	defer release()
	cameraYaw(c, angle, rotateAroundTarget)
}

// CameraPitch rotates the camera around its right vector. angle is in
// radians; lockView stops it from overrotating.
func CameraPitch(camera *Camera, angle float32, lockView, rotateAroundTarget, rotateUp bool) {
	c, release := native.PinValue(camera)
	defer release()
	cameraPitch(c, angle, lockView, rotateAroundTarget, rotateUp)
}

func CameraRoll(camera *Camera, angle float32) {
	c, release := native.PinValue(camera)
	defer release()
	cameraRoll(c, angle)
}

func GetCameraViewMatrix(camera *Camera) Matrix { return withCamera(camera, getCameraViewMatrix) }

func GetCameraProjectionMatrix(camera *Camera, aspect float32) Matrix {
	c, release := native.PinValue(camera)
	defer release()
	return getCameraProjectionMatrix(c, aspect)
}
