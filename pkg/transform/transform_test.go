package transform

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestLookAtSendsEyeToOrigin(t *testing.T) {
	cases := []struct {
		name            string
		eye, target, up mgl32.Vec3
	}{
		{"axis aligned", mgl32.Vec3{0, 0, 5}, mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 1, 0}},
		{"diagonal", mgl32.Vec3{3, 2, 1}, mgl32.Vec3{-1, 0, 4}, mgl32.Vec3{0, 1, 0}},
		{"from below", mgl32.Vec3{-2, -5, 3}, mgl32.Vec3{1, 1, 1}, mgl32.Vec3{0, 1, 0}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			view := LookAt(tc.eye, tc.target, tc.up)

			origin := mgl32.TransformCoordinate(tc.eye, view)
			assert.InDelta(t, 0, origin.X(), 1e-5)
			assert.InDelta(t, 0, origin.Y(), 1e-5)
			assert.InDelta(t, 0, origin.Z(), 1e-5)

			// The target lands on the negative z axis.
			tgt := mgl32.TransformCoordinate(tc.target, view)
			assert.InDelta(t, 0, tgt.X(), 1e-5)
			assert.InDelta(t, 0, tgt.Y(), 1e-5)
			assert.Less(t, tgt.Z(), float32(0))
		})
	}
}

func TestPerspectiveDepthRange(t *testing.T) {
	const near, far = 0.1, 20.0
	proj := Perspective(DegToRad(45), 640.0/480.0, near, far)

	// A point on the near plane divides to clip z = -1, one on the far
	// plane to clip z = +1.
	clipNear := proj.Mul4x1(mgl32.Vec4{0, 0, -near, 1})
	assert.InDelta(t, -1, clipNear.Z()/clipNear.W(), 1e-5)

	clipFar := proj.Mul4x1(mgl32.Vec4{0, 0, -far, 1})
	assert.InDelta(t, 1, clipFar.Z()/clipFar.W(), 1e-5)
}

func TestPerspectivePreconditions(t *testing.T) {
	assert.Panics(t, func() { Perspective(0, 1, 0.1, 10) })
	assert.Panics(t, func() { Perspective(math.Pi, 1, 0.1, 10) })
	assert.Panics(t, func() { Perspective(1, 1, -0.1, 10) })
	assert.Panics(t, func() { Perspective(1, 1, 10, 0.1) })
	assert.NotPanics(t, func() { Perspective(1, 1, 0.1, 10) })
}

func TestTranslateRoundTrip(t *testing.T) {
	v := mgl32.Vec3{1.5, -2.25, 7}
	m := Translate(v).Mul4(Translate(v.Mul(-1)))

	ident := mgl32.Ident4()
	for i := range m {
		assert.InDelta(t, ident[i], m[i], 1e-6)
	}
}

func TestScale(t *testing.T) {
	p := mgl32.TransformCoordinate(mgl32.Vec3{1, 1, 1}, Scale(mgl32.Vec3{2, 3, 4}))
	assert.Equal(t, mgl32.Vec3{2, 3, 4}, p)
}

func TestRotateAxisAngle(t *testing.T) {
	// A quarter turn around y carries +x to -z.
	m := RotateAxisAngle(mgl32.Vec3{0, 1, 0}, DegToRad(90))
	p := mgl32.TransformCoordinate(mgl32.Vec3{1, 0, 0}, m)
	assert.InDelta(t, 0, p.X(), 1e-6)
	assert.InDelta(t, 0, p.Y(), 1e-6)
	assert.InDelta(t, -1, p.Z(), 1e-6)
}

func TestDegreesRadiansRoundTrip(t *testing.T) {
	for deg := float32(-720); deg <= 720; deg += 45 {
		assert.InDelta(t, deg, RadToDeg(DegToRad(deg)), 1e-6*720)
	}
}
