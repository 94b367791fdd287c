package scene

import (
	"testing"

	"glint/render"
)

func TestPyramid(t *testing.T) {
	w := Pyramid()

	if w.Background != render.ColorBlue {
		t.Fatalf("Background = %d; want blue", w.Background)
	}
	if len(w.Triangles) != 4 {
		t.Fatalf("len(Triangles) = %d; want 4", len(w.Triangles))
	}

	apex := render.V3(0, 0, 3)
	wantColors := []uint8{render.ColorRed, render.ColorMagenta, render.ColorCyan, render.ColorGreen}
	for i, tri := range w.Triangles {
		if tri.P1 != apex {
			t.Fatalf("triangle %d apex = %+v; want %+v", i, tri.P1, apex)
		}
		if tri.P2.Z != 0 || tri.P3.Z != 0 {
			t.Fatalf("triangle %d base not in z=0 plane: %+v %+v", i, tri.P2, tri.P3)
		}
		if tri.Color != wantColors[i] {
			t.Fatalf("triangle %d color = %d; want %d", i, tri.Color, wantColors[i])
		}
	}
}

func TestDefaultCamera(t *testing.T) {
	cam := DefaultCamera()

	if cam.Location != render.V3(0, 0, 5) {
		t.Fatalf("Location = %+v; want (0,0,5)", cam.Location)
	}
	if cam.Rotation.Y != -50 {
		t.Fatalf("pitch = %v; want -50", cam.Rotation.Y)
	}
	if cam.FOVHorizontal != 100 || cam.FOVVertical != 75 {
		t.Fatalf("FOV = %dx%d; want 100x75", cam.FOVHorizontal, cam.FOVVertical)
	}
}

func TestOrbitStepWrap(t *testing.T) {
	o := NewOrbit()
	if o.Angle() != 180 {
		t.Fatalf("start angle = %d; want 180", o.Angle())
	}

	o.Step()
	if o.Angle() != 179 {
		t.Fatalf("after one step = %d; want 179", o.Angle())
	}

	for o.Angle() != -179 {
		o.Step()
	}
	o.Step()
	if o.Angle() != 180 {
		t.Fatalf("after wrap = %d; want 180", o.Angle())
	}
}

func TestOrbitFullRevolution(t *testing.T) {
	o := NewOrbit()
	for i := 0; i < 360; i++ {
		o.Step()
		if a := o.Angle(); a < -179 || a > 180 {
			t.Fatalf("step %d left the angle window: %d", i, a)
		}
	}
	if o.Angle() != 180 {
		t.Fatalf("after 360 steps = %d; want 180", o.Angle())
	}
}

func TestOrbitPaused(t *testing.T) {
	o := NewOrbit()
	o.Paused = true
	o.Step()
	if o.Angle() != 180 {
		t.Fatalf("paused orbit moved to %d", o.Angle())
	}
}

func TestOrbitNudge(t *testing.T) {
	tests := []struct {
		start, delta, want int16
	}{
		{180, 1, -179},
		{-179, -1, 180},
		{178, 5, -177},
		{-177, -5, 178},
		{0, 5, 5},
	}
	for _, tc := range tests {
		o := &Orbit{rot: tc.start}
		o.Nudge(tc.delta)
		if o.Angle() != tc.want {
			t.Fatalf("Nudge(%d) from %d = %d; want %d", tc.delta, tc.start, o.Angle(), tc.want)
		}
	}
}

func TestOrbitApply(t *testing.T) {
	cam := DefaultCamera()

	o := NewOrbit()
	o.Nudge(-180)
	o.Apply(&cam)
	if cam.Rotation.Z != 0 {
		t.Fatalf("yaw = %v; want 0", cam.Rotation.Z)
	}
	if cam.Location.X != -3 || cam.Location.Y != 0 {
		t.Fatalf("location at 0 deg = (%v,%v); want (-3,0)", cam.Location.X, cam.Location.Y)
	}
	if cam.Location.Z != 5 {
		t.Fatalf("Apply touched Z: %v", cam.Location.Z)
	}

	o = NewOrbit()
	o.Apply(&cam)
	if cam.Rotation.Z != 180 {
		t.Fatalf("yaw = %v; want 180", cam.Rotation.Z)
	}
	if cam.Location.X != 3 {
		t.Fatalf("location X at 180 deg = %v; want 3", cam.Location.X)
	}
	if y := cam.Location.Y; y >= 0 || y < -1e-4 {
		t.Fatalf("location Y at 180 deg = %v; want tiny negative", y)
	}

	o = NewOrbit()
	o.Nudge(-90)
	o.Apply(&cam)
	if cam.Location.Y != -3 {
		t.Fatalf("location Y at 90 deg = %v; want -3", cam.Location.Y)
	}
	if x := cam.Location.X; x >= 0 || x < -1e-4 {
		t.Fatalf("location X at 90 deg = %v; want tiny negative", x)
	}

	o.Apply(nil)
}

func TestOrbitZoom(t *testing.T) {
	o := NewOrbit()
	if o.Radius() != 3 {
		t.Fatalf("start radius = %v; want 3", o.Radius())
	}

	o.Zoom(-0.25)
	if o.Radius() != 2.75 {
		t.Fatalf("radius = %v; want 2.75", o.Radius())
	}

	o.Zoom(-100)
	if o.Radius() != 1 {
		t.Fatalf("radius clamped low = %v; want 1", o.Radius())
	}
	o.Zoom(100)
	if o.Radius() != 8 {
		t.Fatalf("radius clamped high = %v; want 8", o.Radius())
	}

	cam := DefaultCamera()
	o = NewOrbit()
	o.Nudge(-180)
	o.Zoom(-1)
	o.Apply(&cam)
	if cam.Location.X != -2 || cam.Location.Y != 0 {
		t.Fatalf("location at radius 2 = (%v,%v); want (-2,0)", cam.Location.X, cam.Location.Y)
	}
}
