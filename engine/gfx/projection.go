package gfx

// ortho builds a column-major orthographic projection mapping the box
// [left,right]x[bottom,top]x[near,far] onto the clip cube.
//
// The renderer works in screen coordinates (top-left origin, Y down), so
// callers pass the screen's top edge as bottom and vice versa; the swapped
// arguments flip the Y axis without a separate flip matrix.
func ortho(left, right, bottom, top, near, far float32) [16]float32 {
	rl := 1 / (right - left)
	tb := 1 / (top - bottom)
	fn := 1 / (far - near)
	return [16]float32{
		2 * rl, 0, 0, 0,
		0, 2 * tb, 0, 0,
		0, 0, -2 * fn, 0,
		-(right + left) * rl, -(top + bottom) * tb, -(far + near) * fn, 1,
	}
}
