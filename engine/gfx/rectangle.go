package gfx

import "iter"

// Rectangle is an axis-aligned rectangle of float32s, top-left origin.
type Rectangle struct {
	X, Y          float32
	Width, Height float32
}

// NewRectangle creates a new Rectangle.
func NewRectangle(x, y, width, height float32) Rectangle {
	return Rectangle{X: x, Y: y, Width: width, Height: height}
}

// RectangleRow returns an infinite sequence of horizontally adjacent
// rectangles, starting at the specified point and advancing along the X axis
// by one width per step. Handy for slicing spritesheet rows.
//
// The sequence never ends on its own; bound it at the consumer:
//
//	frames := make([]Rectangle, 0, 3)
//	for r := range RectangleRow(0, 0, 16, 16) {
//		frames = append(frames, r)
//		if len(frames) == 3 {
//			break
//		}
//	}
//
// Each range over the sequence restarts from the first rectangle.
func RectangleRow(x, y, width, height float32) iter.Seq[Rectangle] {
	return func(yield func(Rectangle) bool) {
		r := NewRectangle(x, y, width, height)
		for yield(r) {
			r.X += r.Width
		}
	}
}

// RectangleColumn is RectangleRow's vertical counterpart: each step advances
// along the Y axis by one height.
func RectangleColumn(x, y, width, height float32) iter.Seq[Rectangle] {
	return func(yield func(Rectangle) bool) {
		r := NewRectangle(x, y, width, height)
		for yield(r) {
			r.Y += r.Height
		}
	}
}

// TakeRectangles collects the first n rectangles of a sequence. Sugar for the
// common "slice a strip of n frames" case.
func TakeRectangles(seq iter.Seq[Rectangle], n int) []Rectangle {
	out := make([]Rectangle, 0, n)
	for r := range seq {
		out = append(out, r)
		if len(out) == n {
			break
		}
	}
	return out
}
