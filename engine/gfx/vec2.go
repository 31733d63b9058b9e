package gfx

// Vec2 is a 2D point or offset in pixels.
type Vec2 struct {
	X, Y float32
}

// V2 is shorthand for constructing a Vec2.
func V2(x, y float32) Vec2 { return Vec2{X: x, Y: y} }

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Mul multiplies component-wise (useful for applying a per-axis scale).
func (v Vec2) Mul(o Vec2) Vec2 { return Vec2{v.X * o.X, v.Y * o.Y} }
