package render

// Pixel colors are SGR background codes, stored directly in framebuffer
// cells so the display path can emit them without translation.
const (
	ColorBlack uint8 = iota + 40
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
)

// Triangle is a single flat-colored face. Color is the terminal color code
// written into the framebuffer for every covered pixel.
type Triangle struct {
	P1, P2, P3 Vector3
	Color      uint8
}

// World is everything RenderFrame draws: a background color and a triangle
// list. The list is read-only during rendering; the depth sort works on a
// copy.
type World struct {
	Background uint8
	Triangles  []Triangle
}

// Camera places and aims the viewer.
//
// Rotation holds Euler angles in degrees: Z is yaw (heading in the XY plane),
// Y is pitch. X is roll and is carried but not applied. The fields of view are
// whole degrees and set the angular width and height of the frame.
type Camera struct {
	Location      Vector3
	Rotation      Vector3
	FOVHorizontal int
	FOVVertical   int
}
