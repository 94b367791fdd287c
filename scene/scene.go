// Package scene provides the demo world, the orbit the camera rides, and
// the decoder for keys arriving over the serial line.
package scene

import "glint/render"

// Pyramid returns the demo world: four faces meeting at an apex above a
// square base, one color per face, on a blue backdrop.
func Pyramid() *render.World {
	apex := render.V3(0, 0, 3)
	return &render.World{
		Background: render.ColorBlue,
		Triangles: []render.Triangle{
			{P1: apex, P2: render.V3(-1, -1, 0), P3: render.V3(-1, 1, 0), Color: render.ColorRed},
			{P1: apex, P2: render.V3(-1, -1, 0), P3: render.V3(1, -1, 0), Color: render.ColorMagenta},
			{P1: apex, P2: render.V3(-1, 1, 0), P3: render.V3(1, 1, 0), Color: render.ColorCyan},
			{P1: apex, P2: render.V3(1, 1, 0), P3: render.V3(1, -1, 0), Color: render.ColorGreen},
		},
	}
}

// DefaultCamera returns the viewpoint the demo starts from: above the base
// plane, pitched down at the pyramid. The orbit overwrites the location and
// yaw every frame.
func DefaultCamera() render.Camera {
	return render.Camera{
		Location:      render.V3(0, 0, 5),
		Rotation:      render.V3(0, -50, 0),
		FOVHorizontal: 100,
		FOVVertical:   75,
	}
}
