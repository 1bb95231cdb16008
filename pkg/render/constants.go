package render

import "math"

// Camera defaults and constraints. Angles are radians.
const (
	// DefaultYaw faces -z so a freshly created controller looks into the
	// scene.
	DefaultYaw   = -math.Pi / 2
	DefaultPitch = 0

	DefaultTranslationSpeed    = 0.1
	DefaultRotationSensitivity = 0.005

	// Pitch stops just short of straight up/down; at exactly +-pi/2 the
	// front vector would be parallel to world up and the right vector
	// undefined.
	MaxPitch = math.Pi/2 - 0.01
	MinPitch = -MaxPitch

	// Zoom is the vertical field of view, scroll-adjustable between 5 and
	// 60 degrees.
	DefaultZoom = math.Pi / 4
	MinZoom     = math.Pi / 36
	MaxZoom     = math.Pi / 3
)
