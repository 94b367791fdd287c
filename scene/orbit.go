package scene

import (
	"math"

	"glint/render"
)

const (
	orbitRadius    = 3
	orbitRadiusMin = 1
	orbitRadiusMax = 8
)

// Orbit walks the camera around the world origin one degree per frame,
// counting 180 down through -179 and over again.
type Orbit struct {
	rot    int16
	radius render.Scalar
	Paused bool
}

// NewOrbit returns an orbit at its starting angle and radius.
func NewOrbit() *Orbit {
	return &Orbit{rot: 180, radius: orbitRadius}
}

// Angle returns the current orbit angle in degrees.
func (o *Orbit) Angle() int16 { return o.rot }

// Radius returns the current orbit radius.
func (o *Orbit) Radius() render.Scalar { return o.radius }

// Zoom moves the camera delta closer to or farther from the scene, staying
// inside the [1, 8] radius window.
func (o *Orbit) Zoom(delta render.Scalar) {
	r := o.radius + delta
	if r < orbitRadiusMin {
		r = orbitRadiusMin
	}
	if r > orbitRadiusMax {
		r = orbitRadiusMax
	}
	o.radius = r
}

// Apply aims cam at the scene from the current angle: yaw follows the angle
// and the location rides a circle in the base plane.
func (o *Orbit) Apply(cam *render.Camera) {
	if cam == nil {
		return
	}
	cam.Rotation.Z = render.Scalar(o.rot)
	cam.Location.X = render.Scalar(float64(o.radius) * -math.Cos(float64(o.rot)*(3.14159/180.0)))
	cam.Location.Y = render.Scalar(float64(o.radius) * math.Sin(float64(-o.rot)*(3.14159/180.0)))
}

// Step advances one degree unless paused, wrapping past -179 back to 180.
func (o *Orbit) Step() {
	if o.Paused {
		return
	}
	if o.rot <= -179 {
		o.rot = 180
	} else {
		o.rot--
	}
}

// Nudge moves the orbit by delta degrees, keeping the angle inside the
// [-179, 180] window Step uses.
func (o *Orbit) Nudge(delta int16) {
	r := int32(o.rot) + int32(delta)
	for r > 180 {
		r -= 360
	}
	for r < -179 {
		r += 360
	}
	o.rot = int16(r)
}
