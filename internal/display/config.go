package display

import "image/color"

// Colours used around and over the control.
var (
	Background   = color.RGBA{R: 0x1a, G: 0x1a, B: 0x1a, A: 0xFF}
	CaptionColor = color.RGBA{R: 0xd0, G: 0xe0, B: 0xd0, A: 0xFF}

	// CaptionSize is the value caption size in points.
	CaptionSize = 14.0
)
