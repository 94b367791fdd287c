// Package render implements the Glint software 3D pipeline: triangle worlds
// projected through an angular camera into a small indexed-color framebuffer.
//
// The projection is spherical rather than pinhole: a vertex maps to screen by
// its azimuth and elevation relative to the camera heading, scaled by the
// per-pixel angle of the configured field of view. Visibility is a hemisphere
// test against the camera direction, and depth is handled painter-style by
// drawing triangles back to front. There is no z-buffer, no shading and no
// clipping beyond per-pixel bounds guards, which keeps a full 80x24 frame
// cheap enough for serial-terminal output from a microcontroller.
//
// Pipeline (fixed):
//
//	World → depth sort → hemisphere cull → angular projection → scan conversion.
//
// Numeric backend:
//
// Scalar is float32. Transcendentals evaluate in float64 through the math
// package and are truncated to Scalar on every store, mirroring 32-bit float
// hardware that calls double-precision libm. Frames are deterministic for a
// given world and camera.
package render
