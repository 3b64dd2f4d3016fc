package raylib

import "github.com/jmorganca/raylib/internal/native"

var (
	drawLine3D          func(startPos, endPos Vector3, color Color)
	drawCube            func(position Vector3, width, height, length float32, color Color)
	drawCubeV           func(position, size Vector3, color Color)
	drawCubeWires       func(position Vector3, width, height, length float32, color Color)
	drawSphere          func(centerPos Vector3, radius float32, color Color)
	drawPlane           func(centerPos Vector3, size Vector2, color Color)
	drawGrid            func(slices int32, spacing float32)
	drawRay             func(ray Ray, color Color)
	loadModel           func(fileName *byte) Model
	loadModelFromMesh   func(mesh Mesh) Model
	isModelReady        func(model Model) bool
	unloadModel         func(model Model)
	getModelBoundingBox func(model Model) BoundingBox
	drawModel           func(model Model, position Vector3, scale float32, tint Color)
	drawModelEx         func(model Model, position, rotationAxis Vector3, rotationAngle float32, scale Vector3, tint Color)
	drawModelWires      func(model Model, position Vector3, scale float32, tint Color)
	drawBoundingBox     func(box BoundingBox, color Color)

	genMeshCube          func(width, height, length float32) Mesh
	genMeshSphere        func(radius float32, rings, slices int32) Mesh
	genMeshPlane         func(width, length float32, resX, resZ int32) Mesh
	uploadMesh           func(mesh *Mesh, dynamic bool)
	unloadMesh           func(mesh Mesh)
	loadMaterialDefault  func() Material
	unloadMaterial       func(material Material)
	setMaterialTexture   func(material *Material, mapType MaterialMapIndex, texture Texture2D)
	setModelMeshMaterial func(model *Model, meshID, materialID int32)

	getRayCollisionBox    func(ray Ray, box BoundingBox) RayCollision
	getRayCollisionSphere func(ray Ray, center Vector3, radius float32) RayCollision
	getRayCollisionMesh   func(ray Ray, mesh Mesh, transform Matrix) RayCollision
	checkCollisionBoxes   func(box1, box2 BoundingBox) bool
)

var rmodelsSymbols = []native.Symbol{
	{"DrawLine3D", &drawLine3D},
	{"DrawCube", &drawCube},
	{"DrawCubeV", &drawCubeV},
	{"DrawCubeWires", &drawCubeWires},
	{"DrawSphere", &drawSphere},
	{"DrawPlane", &drawPlane},
	{"DrawGrid", &drawGrid},
	{"DrawRay", &drawRay},
	{"LoadModel", &loadModel},
	{"LoadModelFromMesh", &loadModelFromMesh},
	{"IsModelReady", &isModelReady},
	{"UnloadModel", &unloadModel},
	{"GetModelBoundingBox", &getModelBoundingBox},
	{"DrawModel", &drawModel},
	{"DrawModelEx", &drawModelEx},
	{"DrawModelWires", &drawModelWires},
	{"DrawBoundingBox", &drawBoundingBox},

	{"GenMeshCube", &genMeshCube},
	{"GenMeshSphere", &genMeshSphere},
	{"GenMeshPlane", &genMeshPlane},
	{"UploadMesh", &uploadMesh},
	{"UnloadMesh", &unloadMesh},
	{"LoadMaterialDefault", &loadMaterialDefault},
	{"UnloadMaterial", &unloadMaterial},
	{"SetMaterialTexture", &setMaterialTexture},
	{"SetModelMeshMaterial", &setModelMeshMaterial},

	{"GetRayCollisionBox", &getRayCollisionBox},
	{"GetRayCollisionSphere", &getRayCollisionSphere},
	{"GetRayCollisionMesh", &getRayCollisionMesh},
	{"CheckCollisionBoxes", &checkCollisionBoxes},
}

func DrawLine3D(startPos, endPos Vector3, color Color) { drawLine3D(startPos, endPos, color) }

func DrawCube(position Vector3, width, height, length float32, color Color) {
	drawCube(position, width, height, length, color)
}

func DrawCubeV(position, size Vector3, color Color) { drawCubeV(position, size, color) }

func DrawCubeWires(position Vector3, width, height, length float32, color Color) {
	drawCubeWires(position, width, height, length, color)
}

func DrawSphere(centerPos Vector3, radius float32, color Color) { drawSphere(centerPos, radius, color) }

// DrawPlane draws a plane on the XZ axis.
func DrawPlane(centerPos Vector3, size Vector2, color Color) { drawPlane(centerPos, size, color) }

// DrawGrid draws a grid centered at (0, 0, 0).
func DrawGrid(slices int32, spacing float32) { drawGrid(slices, spacing) }

func DrawRay(ray Ray, color Color) { drawRay(ray, color) }

// LoadModel loads a model from a file (.obj, .iqm, .gltf, .glb, .vox, .m3d).
func LoadModel(fileName string) Model {
	name, release := native.CString(fileName)
	defer release()
	return loadModel(name)
}

// LoadModelFromMesh wraps mesh in a model with a default material. The model
// owns the mesh afterwards; UnloadModel releases both.
func LoadModelFromMesh(mesh Mesh) Model { return loadModelFromMesh(mesh) }

func IsModelReady(model Model) bool { return isModelReady(model) }

// UnloadModel unloads the model and its meshes from CPU and GPU memory.
func UnloadModel(model Model) { unloadModel(model) }

func GetModelBoundingBox(model Model) BoundingBox { return getModelBoundingBox(model) }

func DrawModel(model Model, position Vector3, scale float32, tint Color) {
	drawModel(model, position, scale, tint)
}

// DrawModelEx draws a model rotated by rotationAngle degrees around
// rotationAxis.
func DrawModelEx(model Model, position, rotationAxis Vector3, rotationAngle float32, scale Vector3, tint Color) {
	drawModelEx(model, position, rotationAxis, rotationAngle, scale, tint)
}

func DrawModelWires(model Model, position Vector3, scale float32, tint Color) {
	drawModelWires(model, position, scale, tint)
}

func DrawBoundingBox(box BoundingBox, color Color) { drawBoundingBox(box, color) }

func GenMeshCube(width, height, length float32) Mesh { return genMeshCube(width, height, length) }

func GenMeshSphere(radius float32, rings, slices int32) Mesh {
	return genMeshSphere(radius, rings, slices)
}

func GenMeshPlane(width, length float32, resX, resZ int32) Mesh {
	return genMeshPlane(width, length, resX, resZ)
}

// UploadMesh uploads mesh vertex data to the GPU and fills in its VAO and VBO
// ids.
func UploadMesh(mesh *Mesh, dynamic bool) {
	m, release := native.PinValue(mesh)
	defer release()
	uploadMesh(m, dynamic)
}

func UnloadMesh(mesh Mesh) { unloadMesh(mesh) }

func LoadMaterialDefault() Material { return loadMaterialDefault() }

// UnloadMaterial unloads the material's shader and maps. Textures are left
// alone.
func UnloadMaterial(material Material) { unloadMaterial(material) }

func SetMaterialTexture(material *Material, mapType MaterialMapIndex, texture Texture2D) {
	m, release := native.PinValue(material)
	defer release()
	setMaterialTexture(m, mapType, texture)
}

func SetModelMeshMaterial(model *Model, meshID, materialID int32) {
	m, release := native.PinValue(model)
	defer release()
	setModelMeshMaterial(m, meshID, materialID)
}

// GetMaterial returns the model's material at materialIndex. The pointer
// refers to native memory owned by the model.
func GetMaterial(model *Model, materialIndex int) *Material {
	return &model.MaterialsView()[materialIndex]
}

// GetMaterialTexture returns the texture of one map of the model's material.
func GetMaterialTexture(model *Model, materialIndex int, mapIndex MaterialMapIndex) *Texture2D {
	return &GetMaterial(model, materialIndex).MapsView()[mapIndex].Texture
}

// SetMaterialShader sets the shader of the model's material at materialIndex.
func SetMaterialShader(model *Model, materialIndex int, shader Shader) {
	GetMaterial(model, materialIndex).Shader = shader
}

func GetRayCollisionBox(ray Ray, box BoundingBox) RayCollision { return getRayCollisionBox(ray, box) }

func GetRayCollisionSphere(ray Ray, center Vector3, radius float32) RayCollision {
	return getRayCollisionSphere(ray, center, radius)
}

func GetRayCollisionMesh(ray Ray, mesh Mesh, transform Matrix) RayCollision {
	return getRayCollisionMesh(ray, mesh, transform)
}

func CheckCollisionBoxes(box1, box2 BoundingBox) bool { return checkCollisionBoxes(box1, box2) }
