package render

// Scalar is the numeric type used by render math operations.
//
// It is float32 to match the storage width of the target hardware. Library
// transcendentals run in float64 and are truncated back to Scalar on store.
type Scalar = float32

// Vector3 is a point or direction in world space.
type Vector3 struct {
	X, Y, Z Scalar
}

// Point is a projected screen coordinate. Pixel centers sit at .5 offsets.
type Point struct {
	X, Y Scalar
}

func V3(x, y, z Scalar) Vector3 { return Vector3{X: x, Y: y, Z: z} }

func (v Vector3) Add(o Vector3) Vector3 { return Vector3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vector3) Sub(o Vector3) Vector3 { return Vector3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vector3) Mul(s Scalar) Vector3  { return Vector3{v.X * s, v.Y * s, v.Z * s} }

func Dot(a, b Vector3) Scalar { return a.X*b.X + a.Y*b.Y + a.Z*b.Z }
