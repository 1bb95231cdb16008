package render

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestFrontVectorUnitLength(t *testing.T) {
	// Sweep yaw over a full turn and pitch over the clamped range.
	for yawStep := 0; yawStep < 36; yawStep++ {
		for pitchStep := 0; pitchStep < 18; pitchStep++ {
			cc := NewCameraController(mgl32.Vec3{})
			cc.AddYawOffset(float32(yawStep) * (2 * math.Pi / 36))
			cc.AddPitchOffset(float32(pitchStep-9) * (math.Pi / 18))

			front := cc.Camera().front
			assert.InDelta(t, 1, front.Len(), 1e-6, "yaw step %d pitch step %d", yawStep, pitchStep)
		}
	}
}

func TestPitchClamp(t *testing.T) {
	cc := NewCameraController(mgl32.Vec3{})
	cc.AddPitchOffset(10)
	cc.AddPitchOffset(-100)
	assert.Greater(t, cc.pitch, float32(-math.Pi/2))
	assert.Less(t, cc.pitch, float32(math.Pi/2))
}

func TestZoomClamp(t *testing.T) {
	cc := NewCameraController(mgl32.Vec3{})
	for range 100 {
		cc.AdjustZoom(10)
	}
	assert.Equal(t, float32(MaxZoom), cc.Zoom())

	for range 100 {
		cc.AdjustZoom(-10)
	}
	assert.Equal(t, float32(MinZoom), cc.Zoom())
}

func TestTranslationSteps(t *testing.T) {
	cc := NewCameraController(mgl32.Vec3{})
	cc.SetTranslationSpeed(0.1)

	for range 10 {
		cc.MoveBack()
	}
	// Default orientation looks down -z, so backing up walks along +z.
	pos := cc.Camera().Position()
	assert.InDelta(t, 0, pos.X(), 1e-6)
	assert.InDelta(t, 0, pos.Y(), 1e-6)
	assert.InDelta(t, 1, pos.Z(), 1e-6)

	cc.MoveFront()
	assert.InDelta(t, 0.9, cc.Camera().Position().Z(), 1e-6)

	// Right is front x worldUp: for a -z front that is +x.
	cc.MoveRight()
	assert.InDelta(t, 0.1, cc.Camera().Position().X(), 1e-6)
	cc.MoveLeft()
	cc.MoveLeft()
	assert.InDelta(t, -0.1, cc.Camera().Position().X(), 1e-6)
}

func TestMovementFollowsYaw(t *testing.T) {
	cc := NewCameraController(mgl32.Vec3{})
	cc.SetTranslationSpeed(1)
	// Turn a quarter to the left: front goes from -z to -x.
	cc.AddYawOffset(-math.Pi / 2)
	cc.MoveFront()

	pos := cc.Camera().Position()
	assert.InDelta(t, -1, pos.X(), 1e-6)
	assert.InDelta(t, 0, pos.Z(), 1e-6)
}

func TestViewMatrixSendsPositionToOrigin(t *testing.T) {
	cc := NewCameraController(mgl32.Vec3{3, -2, 7})
	cc.AddYawOffset(0.7)
	cc.AddPitchOffset(-0.3)

	origin := mgl32.TransformCoordinate(mgl32.Vec3{3, -2, 7}, cc.ViewMatrix())
	assert.InDelta(t, 0, origin.X(), 1e-5)
	assert.InDelta(t, 0, origin.Y(), 1e-5)
	assert.InDelta(t, 0, origin.Z(), 1e-5)

	// A point one step along the front vector lands on the -z axis.
	ahead := mgl32.TransformCoordinate(mgl32.Vec3{3, -2, 7}.Add(cc.Camera().front), cc.ViewMatrix())
	assert.InDelta(t, 0, ahead.X(), 1e-5)
	assert.InDelta(t, 0, ahead.Y(), 1e-5)
	assert.InDelta(t, -1, ahead.Z(), 1e-5)
}
