package core

// Input tracks the latest key/mouse state from the event stream. The engine
// feeds it automatically; apps query it during update.
type Input struct {
	keys           map[Key]bool
	mouseX, mouseY float64
	scrollY        float64
}

func NewInput() *Input { return &Input{keys: map[Key]bool{}} }

func (in *Input) Handle(ev Event) {
	switch e := ev.(type) {
	case EventKey:
		in.keys[e.Key] = e.Down
	case EventMouseMove:
		in.mouseX, in.mouseY = e.X, e.Y
	case EventScroll:
		in.scrollY += e.Yoff
	}
}

func (in *Input) IsKeyDown(k Key) bool      { return in.keys[k] }
func (in *Input) Mouse() (float64, float64) { return in.mouseX, in.mouseY }

// TakeScroll returns the wheel movement since the last call and resets it.
func (in *Input) TakeScroll() float64 {
	s := in.scrollY
	in.scrollY = 0
	return s
}
