package render

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/fvillanueva/go-sceneview/pkg/transform"
)

// Camera is an immutable view of a pose: a position, a unit front vector
// and a unit up vector.
type Camera struct {
	position mgl32.Vec3
	front    mgl32.Vec3
	up       mgl32.Vec3
}

// NewCamera creates a camera at position looking along front with the given
// up vector. Front and up are expected to be unit length.
func NewCamera(position, front, up mgl32.Vec3) Camera {
	return Camera{position: position, front: front, up: up}
}

// Position returns the camera position.
func (c Camera) Position() mgl32.Vec3 {
	return c.position
}

// ViewMatrix returns the rigid transform carrying world space into camera
// space, looking from the camera position along its front vector.
func (c Camera) ViewMatrix() mgl32.Mat4 {
	return transform.LookAt(c.position, c.position.Add(c.front), c.up)
}

// CameraController owns a camera pose and mutates it in response to input:
// WASD translation, mouse-motion yaw/pitch and scroll zoom.
type CameraController struct {
	camera  Camera
	worldUp mgl32.Vec3

	// Euler angles in radians. The front vector is always the unit vector
	// derived from them.
	yaw   float32
	pitch float32

	translationSpeed    float32
	rotationSensitivity float32

	// Vertical field of view in radians, driven by the scroll wheel.
	zoom float32
}

// NewCameraController creates a controller at position with the default
// orientation (looking down -z), speeds and zoom.
func NewCameraController(position mgl32.Vec3) *CameraController {
	cc := &CameraController{
		camera:              NewCamera(position, mgl32.Vec3{0, 0, -1}, mgl32.Vec3{0, 1, 0}),
		worldUp:             mgl32.Vec3{0, 1, 0},
		yaw:                 DefaultYaw,
		pitch:               DefaultPitch,
		translationSpeed:    DefaultTranslationSpeed,
		rotationSensitivity: DefaultRotationSensitivity,
		zoom:                DefaultZoom,
	}
	cc.updateFront()
	return cc
}

// updateFront recomputes the unit front vector from yaw and pitch:
// cos(pitch) spreads over the horizontal (cos(yaw), 0, sin(yaw)) basis,
// sin(pitch) over world up.
func (cc *CameraController) updateFront() {
	cosPitch := math32.Cos(cc.pitch)
	front := mgl32.Vec3{
		cosPitch * math32.Cos(cc.yaw),
		math32.Sin(cc.pitch),
		cosPitch * math32.Sin(cc.yaw),
	}
	cc.camera.front = front.Normalize()
}

// right derives the camera-right direction from the current front vector.
func (cc *CameraController) right() mgl32.Vec3 {
	return cc.camera.front.Cross(cc.worldUp).Normalize()
}

// MoveFront translates the camera one step along its front vector.
func (cc *CameraController) MoveFront() {
	cc.camera.position = cc.camera.position.Add(cc.camera.front.Mul(cc.translationSpeed))
}

// MoveBack translates the camera one step against its front vector.
func (cc *CameraController) MoveBack() {
	cc.camera.position = cc.camera.position.Sub(cc.camera.front.Mul(cc.translationSpeed))
}

// MoveLeft translates the camera one step against its right vector.
func (cc *CameraController) MoveLeft() {
	cc.camera.position = cc.camera.position.Sub(cc.right().Mul(cc.translationSpeed))
}

// MoveRight translates the camera one step along its right vector.
func (cc *CameraController) MoveRight() {
	cc.camera.position = cc.camera.position.Add(cc.right().Mul(cc.translationSpeed))
}

// AddYawOffset accumulates a yaw delta in radians.
func (cc *CameraController) AddYawOffset(offset float32) {
	cc.yaw += offset
	cc.updateFront()
}

// AddPitchOffset accumulates a pitch delta in radians, clamping pitch just
// short of straight up/down to avoid the gimbal singularity.
func (cc *CameraController) AddPitchOffset(offset float32) {
	cc.pitch += offset
	if cc.pitch > MaxPitch {
		cc.pitch = MaxPitch
	}
	if cc.pitch < MinPitch {
		cc.pitch = MinPitch
	}
	cc.updateFront()
}

// AdjustZoom changes the field of view by offset radians, clamped to
// [MinZoom, MaxZoom]. The renderer rebuilds the projection from Zoom each
// frame.
func (cc *CameraController) AdjustZoom(offset float32) {
	cc.zoom += offset
	if cc.zoom > MaxZoom {
		cc.zoom = MaxZoom
	}
	if cc.zoom < MinZoom {
		cc.zoom = MinZoom
	}
}

// Zoom returns the current vertical field of view in radians.
func (cc *CameraController) Zoom() float32 {
	return cc.zoom
}

// RotationSensitivity returns the gain the mouse callbacks apply to cursor
// deltas before submitting yaw/pitch offsets.
func (cc *CameraController) RotationSensitivity() float32 {
	return cc.rotationSensitivity
}

// SetTranslationSpeed overrides the per-step translation distance.
func (cc *CameraController) SetTranslationSpeed(speed float32) {
	cc.translationSpeed = speed
}

// Camera returns the current camera pose.
func (cc *CameraController) Camera() Camera {
	return cc.camera
}

// ViewMatrix returns the view matrix for the current pose.
func (cc *CameraController) ViewMatrix() mgl32.Mat4 {
	return cc.camera.ViewMatrix()
}
