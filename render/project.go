package render

import "math"

// pointToScreen maps a camera-relative delta to screen coordinates by angle.
// yaw and pitch are the camera heading in radians, angleHPixel and angleVPixel
// the field-of-view angle covered by one pixel, halfW and halfH the screen
// center.
func pointToScreen(delta Vector3, yaw, pitch, angleHPixel, angleVPixel, halfW, halfH Scalar) Point {
	var screen Point

	// Azimuth, wrapped into (-pi, pi] so the seam sits behind the camera.
	var angleH Scalar
	if delta.X == 0 && delta.Y == 0 {
		angleH = 0
	} else {
		angleH = Scalar(math.Atan2(float64(delta.Y), float64(delta.X)) - float64(yaw))
	}
	if float64(angleH) <= -math.Pi {
		angleH = Scalar(float64(angleH) + 2*math.Pi)
	} else if float64(angleH) > math.Pi {
		angleH = Scalar(float64(angleH) - 2*math.Pi)
	}
	screen.X = halfW - angleH/angleHPixel

	// Elevation against the horizontal distance. No wrap.
	var angleV Scalar
	if delta.X == 0 && delta.Y == 0 && delta.Z == 0 {
		angleV = 0
	} else {
		angleV = Scalar(math.Atan2(float64(delta.Z),
			math.Sqrt(float64(delta.X*delta.X+delta.Y*delta.Y))) - float64(pitch))
	}
	screen.Y = halfH - angleV/angleVPixel

	return screen
}
