package gfx

// letterbox computes the centered destination rectangle the internal surface
// is blitted into. Scaling is integer-only so pixels stay square and crisp;
// the remaining window area is left to the clear color.
//
// When the window is smaller than the internal resolution the scale factor
// clamps to 1 rather than collapsing the destination to zero — the content
// gets cropped by the window edges instead of vanishing.
func letterbox(internalWidth, internalHeight, windowWidth, windowHeight int) Rectangle {
	var scaleFactor int
	if windowWidth <= windowHeight {
		scaleFactor = windowWidth / internalWidth
	} else {
		scaleFactor = windowHeight / internalHeight
	}
	if scaleFactor < 1 {
		scaleFactor = 1
	}

	width := internalWidth * scaleFactor
	height := internalHeight * scaleFactor
	x := (windowWidth - width) / 2
	y := (windowHeight - height) / 2

	return NewRectangle(float32(x), float32(y), float32(width), float32(height))
}
