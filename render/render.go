package render

import (
	"math"
	"sort"
)

// RenderFrame draws world into frame as seen from camera. The frame is fully
// overwritten: background first, then triangles back to front so nearer faces
// paint over farther ones. Blocking; touches only its arguments.
func RenderFrame(world *World, camera *Camera, frame *Framebuffer) {
	if world == nil || camera == nil || frame == nil {
		return
	}

	halfW := Scalar(frame.width / 2)
	halfH := Scalar(frame.height / 2)
	angleHPixel := Scalar(float64(camera.FOVHorizontal) * math.Pi / (float64(frame.width) * 180.0))
	angleVPixel := Scalar(float64(camera.FOVVertical) * math.Pi / (float64(frame.height) * 180.0))

	yaw := normalizeYaw(camera.Rotation.Z)
	pitch := Scalar(float64(camera.Rotation.Y) * math.Pi / 180.0)
	dir := cameraDirection(yaw, pitch)

	frame.Fill(world.Background)

	// Painter's algorithm: sort a copy of the triangle list so the farthest
	// centroid draws first.
	tris := make([]Triangle, len(world.Triangles))
	copy(tris, world.Triangles)
	loc := camera.Location
	sort.Slice(tris, func(i, j int) bool {
		return centroidDist2(&tris[i], loc) > centroidDist2(&tris[j], loc)
	})

	for i := range tris {
		t := &tris[i]
		d1 := t.P1.Sub(loc)
		d2 := t.P2.Sub(loc)
		d3 := t.P3.Sub(loc)

		// Hemisphere cull: skip only when every vertex is behind the camera.
		if Dot(d1, dir) <= 0 && Dot(d2, dir) <= 0 && Dot(d3, dir) <= 0 {
			continue
		}

		p1 := pointToScreen(d1, yaw, pitch, angleHPixel, angleVPixel, halfW, halfH)
		p2 := pointToScreen(d2, yaw, pitch, angleHPixel, angleVPixel, halfW, halfH)
		p3 := pointToScreen(d3, yaw, pitch, angleHPixel, angleVPixel, halfW, halfH)

		scanTriangle(frame, p1, p2, p3, t.Color)
	}
}

// normalizeYaw folds a yaw in degrees into (-180, 180] and converts to
// radians. Folding happens on the magnitude so the sign survives the wrap.
func normalizeYaw(deg Scalar) Scalar {
	a := deg
	if deg < 0 {
		a = -a
	}
	a = Scalar(math.Mod(float64(a+180), 360) - 180)
	if deg < 0 {
		a = -a
	}
	return Scalar(float64(a) * (math.Pi / 180.0))
}

// cameraDirection builds the heading vector used by the hemisphere cull.
// The Z component is a steep sentinel slope rather than tan(pitch) for any
// pitch inside the +-90 radian band; pitch 0 keeps the horizon at Z = 0.
func cameraDirection(yaw, pitch Scalar) Vector3 {
	var z Scalar
	if pitch <= -90 || pitch >= 90 {
		z = Scalar(math.Tan(float64(pitch)))
	} else {
		switch {
		case pitch > 0:
			z = 10000
		case pitch < 0:
			z = -10000
		}
	}
	return Vector3{
		X: Scalar(math.Cos(float64(yaw))),
		Y: Scalar(math.Sin(float64(yaw))),
		Z: z,
	}
}

// centroidDist2 is the squared distance from the triangle centroid to loc.
func centroidDist2(t *Triangle, loc Vector3) Scalar {
	cx := (t.P1.X + t.P2.X + t.P3.X) / 3
	cy := (t.P1.Y + t.P2.Y + t.P3.Y) / 3
	cz := (t.P1.Z + t.P2.Z + t.P3.Z) / 3
	dx := cx - loc.X
	dy := cy - loc.Y
	dz := cz - loc.Z
	return dx*dx + dy*dy + dz*dz
}
