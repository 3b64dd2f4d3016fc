package raylib

// ConfigFlags, system/window config flags
type ConfigFlags uint32

const (
	FlagVsyncHint              ConfigFlags = 0x00000040
	FlagFullscreenMode         ConfigFlags = 0x00000002
	FlagWindowResizable        ConfigFlags = 0x00000004
	FlagWindowUndecorated      ConfigFlags = 0x00000008
	FlagWindowHidden           ConfigFlags = 0x00000080
	FlagWindowMinimized        ConfigFlags = 0x00000200
	FlagWindowMaximized        ConfigFlags = 0x00000400
	FlagWindowUnfocused        ConfigFlags = 0x00000800
	FlagWindowTopmost          ConfigFlags = 0x00001000
	FlagWindowAlwaysRun        ConfigFlags = 0x00000100
	FlagWindowTransparent      ConfigFlags = 0x00000010
	FlagWindowHighdpi          ConfigFlags = 0x00002000
	FlagWindowMousePassthrough ConfigFlags = 0x00004000
	FlagBorderlessWindowedMode ConfigFlags = 0x00008000
	FlagMsaa4xHint             ConfigFlags = 0x00000020
	FlagInterlacedHint         ConfigFlags = 0x00010000
)

// TraceLogLevel, trace log level
type TraceLogLevel int32

const (
	LogAll TraceLogLevel = iota
	LogTrace
	LogDebug
	LogInfo
	LogWarning
	LogError
	LogFatal
	LogNone
)

// KeyboardKey, keyboard keys (US keyboard layout)
type KeyboardKey int32

const (
	KeyNull KeyboardKey = 0

	KeyApostrophe   KeyboardKey = 39
	KeyComma        KeyboardKey = 44
	KeyMinus        KeyboardKey = 45
	KeyPeriod       KeyboardKey = 46
	KeySlash        KeyboardKey = 47
	KeyZero         KeyboardKey = 48
	KeyOne          KeyboardKey = 49
	KeyTwo          KeyboardKey = 50
	KeyThree        KeyboardKey = 51
	KeyFour         KeyboardKey = 52
	KeyFive         KeyboardKey = 53
	KeySix          KeyboardKey = 54
	KeySeven        KeyboardKey = 55
	KeyEight        KeyboardKey = 56
	KeyNine         KeyboardKey = 57
	KeySemicolon    KeyboardKey = 59
	KeyEqual        KeyboardKey = 61
	KeyA            KeyboardKey = 65
	KeyB            KeyboardKey = 66
	KeyC            KeyboardKey = 67
	KeyD            KeyboardKey = 68
	KeyE            KeyboardKey = 69
	KeyF            KeyboardKey = 70
	KeyG            KeyboardKey = 71
	KeyH            KeyboardKey = 72
	KeyI            KeyboardKey = 73
	KeyJ            KeyboardKey = 74
	KeyK            KeyboardKey = 75
	KeyL            KeyboardKey = 76
	KeyM            KeyboardKey = 77
	KeyN            KeyboardKey = 78
	KeyO            KeyboardKey = 79
	KeyP            KeyboardKey = 80
	KeyQ            KeyboardKey = 81
	KeyR            KeyboardKey = 82
	KeyS            KeyboardKey = 83
	KeyT            KeyboardKey = 84
	KeyU            KeyboardKey = 85
	KeyV            KeyboardKey = 86
	KeyW            KeyboardKey = 87
	KeyX            KeyboardKey = 88
	KeyY            KeyboardKey = 89
	KeyZ            KeyboardKey = 90
	KeyLeftBracket  KeyboardKey = 91
	KeyBackslash    KeyboardKey = 92
	KeyRightBracket KeyboardKey = 93
	KeyGrave        KeyboardKey = 96

	KeySpace        KeyboardKey = 32
	KeyEscape       KeyboardKey = 256
	KeyEnter        KeyboardKey = 257
	KeyTab          KeyboardKey = 258
	KeyBackspace    KeyboardKey = 259
	KeyInsert       KeyboardKey = 260
	KeyDelete       KeyboardKey = 261
	KeyRight        KeyboardKey = 262
	KeyLeft         KeyboardKey = 263
	KeyDown         KeyboardKey = 264
	KeyUp           KeyboardKey = 265
	KeyPageUp       KeyboardKey = 266
	KeyPageDown     KeyboardKey = 267
	KeyHome         KeyboardKey = 268
	KeyEnd          KeyboardKey = 269
	KeyCapsLock     KeyboardKey = 280
	KeyScrollLock   KeyboardKey = 281
	KeyNumLock      KeyboardKey = 282
	KeyPrintScreen  KeyboardKey = 283
	KeyPause        KeyboardKey = 284
	KeyF1           KeyboardKey = 290
	KeyF2           KeyboardKey = 291
	KeyF3           KeyboardKey = 292
	KeyF4           KeyboardKey = 293
	KeyF5           KeyboardKey = 294
	KeyF6           KeyboardKey = 295
	KeyF7           KeyboardKey = 296
	KeyF8           KeyboardKey = 297
	KeyF9           KeyboardKey = 298
	KeyF10          KeyboardKey = 299
	KeyF11          KeyboardKey = 300
	KeyF12          KeyboardKey = 301
	KeyLeftShift    KeyboardKey = 340
	KeyLeftControl  KeyboardKey = 341
	KeyLeftAlt      KeyboardKey = 342
	KeyLeftSuper    KeyboardKey = 343
	KeyRightShift   KeyboardKey = 344
	KeyRightControl KeyboardKey = 345
	KeyRightAlt     KeyboardKey = 346
	KeyRightSuper   KeyboardKey = 347
	KeyKbMenu       KeyboardKey = 348

	KeyKp0        KeyboardKey = 320
	KeyKp1        KeyboardKey = 321
	KeyKp2        KeyboardKey = 322
	KeyKp3        KeyboardKey = 323
	KeyKp4        KeyboardKey = 324
	KeyKp5        KeyboardKey = 325
	KeyKp6        KeyboardKey = 326
	KeyKp7        KeyboardKey = 327
	KeyKp8        KeyboardKey = 328
	KeyKp9        KeyboardKey = 329
	KeyKpDecimal  KeyboardKey = 330
	KeyKpDivide   KeyboardKey = 331
	KeyKpMultiply KeyboardKey = 332
	KeyKpSubtract KeyboardKey = 333
	KeyKpAdd      KeyboardKey = 334
	KeyKpEnter    KeyboardKey = 335
	KeyKpEqual    KeyboardKey = 336

	// Android key buttons
	KeyBack       KeyboardKey = 4
	KeyMenu       KeyboardKey = 5
	KeyVolumeUp   KeyboardKey = 24
	KeyVolumeDown KeyboardKey = 25
)

// MouseButton, mouse buttons
type MouseButton int32

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
	MouseButtonSide
	MouseButtonExtra
	MouseButtonForward
	MouseButtonBack
)

// MouseCursor, mouse cursor
type MouseCursor int32

const (
	MouseCursorDefault MouseCursor = iota
	MouseCursorArrow
	MouseCursorIbeam
	MouseCursorCrosshair
	MouseCursorPointingHand
	MouseCursorResizeEW
	MouseCursorResizeNS
	MouseCursorResizeNWSE
	MouseCursorResizeNESW
	MouseCursorResizeAll
	MouseCursorNotAllowed
)

// GamepadButton, gamepad buttons
type GamepadButton int32

const (
	GamepadButtonUnknown GamepadButton = iota
	GamepadButtonLeftFaceUp
	GamepadButtonLeftFaceRight
	GamepadButtonLeftFaceDown
	GamepadButtonLeftFaceLeft
	GamepadButtonRightFaceUp
	GamepadButtonRightFaceRight
	GamepadButtonRightFaceDown
	GamepadButtonRightFaceLeft
	GamepadButtonLeftTrigger1
	GamepadButtonLeftTrigger2
	GamepadButtonRightTrigger1
	GamepadButtonRightTrigger2
	GamepadButtonMiddleLeft
	GamepadButtonMiddle
	GamepadButtonMiddleRight
	GamepadButtonLeftThumb
	GamepadButtonRightThumb
)

// GamepadAxis, gamepad axis
type GamepadAxis int32

const (
	GamepadAxisLeftX GamepadAxis = iota
	GamepadAxisLeftY
	GamepadAxisRightX
	GamepadAxisRightY
	GamepadAxisLeftTrigger
	GamepadAxisRightTrigger
)

// MaterialMapIndex, material map index
type MaterialMapIndex int32

const (
	MaterialMapAlbedo MaterialMapIndex = iota
	MaterialMapMetalness
	MaterialMapNormal
	MaterialMapRoughness
	MaterialMapOcclusion
	MaterialMapEmission
	MaterialMapHeight
	MaterialMapCubemap
	MaterialMapIrradiance
	MaterialMapPrefilter
	MaterialMapBrdf

	MaterialMapDiffuse  = MaterialMapAlbedo
	MaterialMapSpecular = MaterialMapMetalness
)

// ShaderLocationIndex, shader location index
type ShaderLocationIndex int32

const (
	ShaderLocVertexPosition ShaderLocationIndex = iota
	ShaderLocVertexTexcoord01
	ShaderLocVertexTexcoord02
	ShaderLocVertexNormal
	ShaderLocVertexTangent
	ShaderLocVertexColor
	ShaderLocMatrixMvp
	ShaderLocMatrixView
	ShaderLocMatrixProjection
	ShaderLocMatrixModel
	ShaderLocMatrixNormal
	ShaderLocVectorView
	ShaderLocColorDiffuse
	ShaderLocColorSpecular
	ShaderLocColorAmbient
	ShaderLocMapAlbedo
	ShaderLocMapMetalness
	ShaderLocMapNormal
	ShaderLocMapRoughness
	ShaderLocMapOcclusion
	ShaderLocMapEmission
	ShaderLocMapHeight
	ShaderLocMapCubemap
	ShaderLocMapIrradiance
	ShaderLocMapPrefilter
	ShaderLocMapBrdf
	ShaderLocVertexBoneids
	ShaderLocVertexBoneweights
	ShaderLocBoneMatrices
)

// ShaderUniformDataType, shader uniform data type
type ShaderUniformDataType int32

const (
	ShaderUniformFloat ShaderUniformDataType = iota
	ShaderUniformVec2
	ShaderUniformVec3
	ShaderUniformVec4
	ShaderUniformInt
	ShaderUniformIvec2
	ShaderUniformIvec3
	ShaderUniformIvec4
	ShaderUniformSampler2d
)

// ShaderAttributeDataType, shader attribute data types
type ShaderAttributeDataType int32

const (
	ShaderAttribFloat ShaderAttributeDataType = iota
	ShaderAttribVec2
	ShaderAttribVec3
	ShaderAttribVec4
)

// PixelFormat, pixel formats
type PixelFormat int32

const (
	PixelFormatUncompressedGrayscale PixelFormat = iota + 1
	PixelFormatUncompressedGrayAlpha
	PixelFormatUncompressedR5G6B5
	PixelFormatUncompressedR8G8B8
	PixelFormatUncompressedR5G5B5A1
	PixelFormatUncompressedR4G4B4A4
	PixelFormatUncompressedR8G8B8A8
	PixelFormatUncompressedR32
	PixelFormatUncompressedR32G32B32
	PixelFormatUncompressedR32G32B32A32
	PixelFormatUncompressedR16
	PixelFormatUncompressedR16G16B16
	PixelFormatUncompressedR16G16B16A16
	PixelFormatCompressedDxt1Rgb
	PixelFormatCompressedDxt1Rgba
	PixelFormatCompressedDxt3Rgba
	PixelFormatCompressedDxt5Rgba
	PixelFormatCompressedEtc1Rgb
	PixelFormatCompressedEtc2Rgb
	PixelFormatCompressedEtc2EacRgba
	PixelFormatCompressedPvrtRgb
	PixelFormatCompressedPvrtRgba
	PixelFormatCompressedAstc4x4Rgba
	PixelFormatCompressedAstc8x8Rgba
)

// TextureFilter, texture parameters: filter mode
type TextureFilter int32

const (
	TextureFilterPoint TextureFilter = iota
	TextureFilterBilinear
	TextureFilterTrilinear
	TextureFilterAnisotropic4x
	TextureFilterAnisotropic8x
	TextureFilterAnisotropic16x
)

// TextureWrap, texture parameters: wrap mode
type TextureWrap int32

const (
	TextureWrapRepeat TextureWrap = iota
	TextureWrapClamp
	TextureWrapMirrorRepeat
	TextureWrapMirrorClamp
)

// CubemapLayout, cubemap layouts
type CubemapLayout int32

const (
	CubemapLayoutAutoDetect CubemapLayout = iota
	CubemapLayoutLineVertical
	CubemapLayoutLineHorizontal
	CubemapLayoutCrossThreeByFour
	CubemapLayoutCrossFourByThree
)

// BlendMode, color blending modes (pre-defined)
type BlendMode int32

const (
	BlendAlpha BlendMode = iota
	BlendAdditive
	BlendMultiplied
	BlendAddColors
	BlendSubtractColors
	BlendAlphaPremultiply
	BlendCustom
	BlendCustomSeparate
)

// Gesture, gesture flags
type Gesture uint32

const (
	GestureNone       Gesture = 0
	GestureTap        Gesture = 1
	GestureDoubletap  Gesture = 2
	GestureHold       Gesture = 4
	GestureDrag       Gesture = 8
	GestureSwipeRight Gesture = 16
	GestureSwipeLeft  Gesture = 32
	GestureSwipeUp    Gesture = 64
	GestureSwipeDown  Gesture = 128
	GesturePinchIn    Gesture = 256
	GesturePinchOut   Gesture = 512
)

// CameraMode, camera system modes
type CameraMode int32

const (
	CameraCustom CameraMode = iota
	CameraFree
	CameraOrbital
	CameraFirstPerson
	CameraThirdPerson
)

// CameraProjection, camera projection
type CameraProjection int32

const (
	CameraPerspective CameraProjection = iota
	CameraOrthographic
)

// NPatchLayout, n-patch layout
type NPatchLayout int32

const (
	NPatchNinePatch NPatchLayout = iota
	NPatchThreePatchVertical
	NPatchThreePatchHorizontal
)
