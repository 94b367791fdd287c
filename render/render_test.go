package render

import (
	"bytes"
	"math"
	"testing"
)

func testPyramid() *World {
	apex := V3(0, 0, 3)
	return &World{
		Background: 0,
		Triangles: []Triangle{
			{P1: apex, P2: V3(-1, -1, 0), P3: V3(-1, 1, 0), Color: 41},
			{P1: apex, P2: V3(-1, -1, 0), P3: V3(1, -1, 0), Color: 45},
			{P1: apex, P2: V3(-1, 1, 0), P3: V3(1, 1, 0), Color: 46},
			{P1: apex, P2: V3(1, 1, 0), P3: V3(1, -1, 0), Color: 42},
		},
	}
}

func testCamera() *Camera {
	return &Camera{
		Location:      V3(-3, 0, 5),
		Rotation:      V3(0, -50, 0),
		FOVHorizontal: 100,
		FOVVertical:   75,
	}
}

func TestRenderFrameNilArguments(t *testing.T) {
	f := newTestFrame(t)
	f.Fill(9)
	RenderFrame(nil, testCamera(), f)
	RenderFrame(testPyramid(), nil, f)
	RenderFrame(testPyramid(), testCamera(), nil)
	for i, p := range f.Pix() {
		if p != 9 {
			t.Fatalf("pixel %d = %d; want frame untouched", i, p)
		}
	}
}

func TestRenderFrameEmptyWorld(t *testing.T) {
	f := newTestFrame(t)
	f.Fill(9)
	RenderFrame(&World{Background: 44}, testCamera(), f)
	for i, p := range f.Pix() {
		if p != 44 {
			t.Fatalf("pixel %d = %d; want background 44", i, p)
		}
	}
}

func TestRenderFrameIdempotent(t *testing.T) {
	world := testPyramid()
	cam := testCamera()

	f1 := newTestFrame(t)
	RenderFrame(world, cam, f1)
	first := bytes.Clone(f1.Pix())

	painted := 0
	for _, p := range first {
		if p != world.Background {
			painted++
		}
	}
	if painted == 0 {
		t.Fatalf("no pixels painted; camera setup broken")
	}

	RenderFrame(world, cam, f1)
	if !bytes.Equal(first, f1.Pix()) {
		t.Fatalf("second render differs from first")
	}

	f2 := newTestFrame(t)
	f2.Fill(7)
	RenderFrame(world, cam, f2)
	if !bytes.Equal(first, f2.Pix()) {
		t.Fatalf("render into dirty frame differs")
	}
}

func TestRenderFrameCullsBehindCamera(t *testing.T) {
	world := &World{
		Background: 0,
		Triangles: []Triangle{
			{P1: V3(-5, -1, -1), P2: V3(-5, 1, -1), P3: V3(-5, 0, 1), Color: testInk},
		},
	}
	cam := &Camera{FOVHorizontal: 100, FOVVertical: 75}
	f := newTestFrame(t)
	RenderFrame(world, cam, f)
	for i, p := range f.Pix() {
		if p != 0 {
			t.Fatalf("pixel %d = %d; want culled triangle to leave background", i, p)
		}
	}
}

func TestRenderFrameSingleColumnTriangle(t *testing.T) {
	// Three vertices on the same bearing collapse to one screen column.
	world := &World{
		Triangles: []Triangle{
			{P1: V3(5, 0, 0), P2: V3(5, 0, 2), P3: V3(5, 0, -1), Color: testInk},
		},
	}
	cam := &Camera{FOVHorizontal: 100, FOVVertical: 75}
	f := newTestFrame(t)
	RenderFrame(world, cam, f)

	checkColumn(t, f, 40, 5, 15)
	for x := 0; x < f.Width(); x++ {
		if x == 40 {
			continue
		}
		for y := 0; y < f.Height(); y++ {
			if f.At(x, y) != 0 {
				t.Fatalf("stray pixel at (%d, %d)", x, y)
			}
		}
	}
}

func TestRenderFrameDepthOrder(t *testing.T) {
	near := Triangle{P1: V3(5, -1, -1), P2: V3(5, 1, -1), P3: V3(5, 0, 1), Color: 42}
	far := Triangle{P1: V3(10, -3, -3), P2: V3(10, 3, -3), P3: V3(10, 0, 3), Color: 41}

	// List the near triangle first to prove ordering comes from the sort,
	// not from the input.
	world := &World{Triangles: []Triangle{near, far}}
	cam := &Camera{FOVHorizontal: 100, FOVVertical: 75}
	f := newTestFrame(t)
	RenderFrame(world, cam, f)

	if got := f.At(40, 12); got != 42 {
		t.Fatalf("At(40, 12) = %d; want near triangle on top (42)", got)
	}
	if got := f.At(28, 16); got != 41 {
		t.Fatalf("At(28, 16) = %d; want far triangle visible around the near one (41)", got)
	}
	if got := f.At(0, 0); got != 0 {
		t.Fatalf("At(0, 0) = %d; want background", got)
	}
}

func TestRenderFrameHostileCoordinates(t *testing.T) {
	nan := Scalar(math.NaN())
	inf := Scalar(math.Inf(1))

	t.Run("all-nan triangle leaves background", func(t *testing.T) {
		world := &World{Triangles: []Triangle{
			{P1: V3(nan, nan, nan), P2: V3(nan, nan, nan), P3: V3(nan, nan, nan), Color: testInk},
		}}
		f := newTestFrame(t)
		RenderFrame(world, &Camera{FOVHorizontal: 100, FOVVertical: 75}, f)
		for i, p := range f.Pix() {
			if p != 0 {
				t.Fatalf("pixel %d = %d; want background", i, p)
			}
		}
	})

	t.Run("huge and infinite stay in bounds", func(t *testing.T) {
		world := &World{Triangles: []Triangle{
			{P1: V3(nan, nan, nan), P2: V3(5, 1, 0), P3: V3(5, -1, 0), Color: testInk},
			{P1: V3(1e9, 1e9, 0), P2: V3(1e9, -1e9, 0), P3: V3(1e9, 0, 1e9), Color: testInk},
			{P1: V3(inf, 0, 0), P2: V3(inf, inf, 0), P3: V3(5, 0, -inf), Color: testInk},
			{P1: V3(5, 1e30, 1), P2: V3(5, -1e30, 1), P3: V3(5, 0, -1e30), Color: testInk},
		}}
		f := newTestFrame(t)
		// Must terminate and must not write outside the buffer; paints are
		// free to land anywhere inside it.
		RenderFrame(world, &Camera{FOVHorizontal: 100, FOVVertical: 75}, f)
	})
}
