package gfx

// Animation is a drawable that cycles through clip regions of a spritesheet.
// It only tracks which frame is current; when and how often Advance is called
// is up to the game loop.
type Animation struct {
	texture       *Texture
	frames        []Rectangle
	frameInterval int

	currentFrame int
	timer        int
}

// NewAnimation creates an animation over frames of texture, moving to the
// next frame every frameInterval ticks. Frames typically come from
// RectangleRow or RectangleColumn.
func NewAnimation(texture *Texture, frames []Rectangle, frameInterval int) *Animation {
	return &Animation{
		texture:       texture,
		frames:        frames,
		frameInterval: frameInterval,
	}
}

// Advance ticks the animation forward once, wrapping past the last frame.
func (a *Animation) Advance() {
	a.timer++
	if a.timer >= a.frameInterval {
		a.timer = 0
		a.currentFrame = (a.currentFrame + 1) % len(a.frames)
	}
}

// Restart rewinds to the first frame.
func (a *Animation) Restart() {
	a.currentFrame = 0
	a.timer = 0
}

// SetFrames replaces the frame list, restarting if the current index no
// longer exists.
func (a *Animation) SetFrames(frames []Rectangle) {
	a.frames = frames
	if a.currentFrame >= len(frames) {
		a.Restart()
	}
}

// CurrentFrame returns the index of the frame Draw would use.
func (a *Animation) CurrentFrame() int { return a.currentFrame }

// Draw renders the current frame, overriding any clip in params.
func (a *Animation) Draw(ctx *Context, params DrawParams) {
	params.Clip = &a.frames[a.currentFrame]
	a.texture.Draw(ctx, params)
}

var _ Drawable = (*Animation)(nil)
