// Package layout places rectangles inside a window: padding, bands and
// the letterboxed square a control is drawn into.
package layout

import "image"

// Inset shrinks rect by paddingPx on all sides.
func Inset(rect image.Rectangle, paddingPx int) image.Rectangle {
	if paddingPx <= 0 {
		return rect
	}
	out := image.Rect(rect.Min.X+paddingPx, rect.Min.Y+paddingPx, rect.Max.X-paddingPx, rect.Max.Y-paddingPx)
	return Normalize(out)
}

// Normalize ensures Min is <= Max on both axes.
func Normalize(rect image.Rectangle) image.Rectangle {
	if rect.Min.X > rect.Max.X {
		rect.Min.X, rect.Max.X = rect.Max.X, rect.Min.X
	}
	if rect.Min.Y > rect.Max.Y {
		rect.Min.Y, rect.Max.Y = rect.Max.Y, rect.Min.Y
	}
	return rect
}

// SplitHorizontal splits rect into top and bottom parts.
// topHeightPx is clamped to [0, rect.Dy()].
func SplitHorizontal(rect image.Rectangle, topHeightPx int) (top image.Rectangle, bottom image.Rectangle) {
	rect = Normalize(rect)
	topHeightPx = clamp(topHeightPx, 0, rect.Dy())
	top = image.Rect(rect.Min.X, rect.Min.Y, rect.Max.X, rect.Min.Y+topHeightPx)
	bottom = image.Rect(rect.Min.X, rect.Min.Y+topHeightPx, rect.Max.X, rect.Max.Y)
	return top, bottom
}

// AnchorTopLeft returns a rectangle of size (widthPx,heightPx) placed in the top-left of rect.
func AnchorTopLeft(rect image.Rectangle, widthPx, heightPx int) image.Rectangle {
	rect = Normalize(rect)
	widthPx = clamp(widthPx, 0, rect.Dx())
	heightPx = clamp(heightPx, 0, rect.Dy())
	return image.Rect(rect.Min.X, rect.Min.Y, rect.Min.X+widthPx, rect.Min.Y+heightPx)
}

// Center returns a rectangle of size (widthPx,heightPx) centred in rect.
// Sizes larger than rect are clamped; odd leftovers go to the right and bottom.
func Center(rect image.Rectangle, widthPx, heightPx int) image.Rectangle {
	r := AnchorTopLeft(rect, widthPx, heightPx)
	dx := (rect.Dx() - r.Dx()) / 2
	dy := (rect.Dy() - r.Dy()) / 2
	return r.Add(image.Pt(dx, dy))
}

// CenterSquare returns a square of side sidePx centred in rect, letterboxed
// along the longer axis. The side never exceeds the shorter axis of rect.
func CenterSquare(rect image.Rectangle, sidePx int) image.Rectangle {
	rect = Normalize(rect)
	sidePx = clamp(sidePx, 0, minSide(rect))
	return Center(rect, sidePx, sidePx)
}

func minSide(rect image.Rectangle) int {
	if rect.Dy() < rect.Dx() {
		return rect.Dy()
	}
	return rect.Dx()
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
