// Package transform provides the pure matrix builders the scene viewer
// composes into model, view and projection transforms. All functions are
// total and side-effect free; precondition violations panic because they
// are programming errors, not runtime conditions.
package transform

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Perspective builds the standard right-handed perspective projection with
// depth range [-1, 1] from a vertical field of view in radians, an aspect
// ratio, and the near/far plane distances. Panics unless 0 < fovy < pi,
// near > 0 and far > near.
func Perspective(fovy, aspect, near, far float32) mgl32.Mat4 {
	if fovy <= 0 || fovy >= math.Pi {
		panic(fmt.Sprintf("transform: field of view %v outside (0, pi)", fovy))
	}
	if near <= 0 || far <= near {
		panic(fmt.Sprintf("transform: invalid depth planes near=%v far=%v", near, far))
	}
	return mgl32.Perspective(fovy, aspect, near, far)
}

// LookAt builds the view matrix placing the camera at eye looking toward
// target, with up breaking the roll ambiguity. The result carries eye to
// the origin looking down -z.
func LookAt(eye, target, up mgl32.Vec3) mgl32.Mat4 {
	return mgl32.LookAtV(eye, target, up)
}

// Translate returns the matrix translating by v.
func Translate(v mgl32.Vec3) mgl32.Mat4 {
	return mgl32.Translate3D(v.X(), v.Y(), v.Z())
}

// Scale returns the matrix scaling each axis by the matching component of v.
func Scale(v mgl32.Vec3) mgl32.Mat4 {
	return mgl32.Scale3D(v.X(), v.Y(), v.Z())
}

// RotateAxisAngle returns the matrix rotating by angle radians around axis.
// The axis need not be unit length.
func RotateAxisAngle(axis mgl32.Vec3, angle float32) mgl32.Mat4 {
	return mgl32.HomogRotate3D(angle, axis.Normalize())
}

// DegToRad converts degrees to radians.
func DegToRad(degrees float32) float32 {
	return mgl32.DegToRad(degrees)
}

// RadToDeg converts radians to degrees.
func RadToDeg(radians float32) float32 {
	return mgl32.RadToDeg(radians)
}
