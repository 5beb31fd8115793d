package display

import (
	"image"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
)

const captionDPI = 72

// Caption renders a short centred label such as the current value.
type Caption struct {
	ttFont *truetype.Font
	face   font.Face
	size   float64
}

// NewCaption prepares the Go Regular face at size points. If the font cannot
// be parsed the caption falls back to the built-in bitmap face.
func NewCaption(size float64, logger Logger) *Caption {
	c := &Caption{size: size}
	tt, err := freetype.ParseFont(goregular.TTF)
	if err != nil {
		c.face = basicfont.Face7x13
		if logger != nil {
			logger.Errorf("caption", "truetype parse failed, using basicfont: %v", err)
		}
		return c
	}
	c.ttFont = tt
	c.face = truetype.NewFace(tt, &truetype.Options{Size: size, DPI: captionDPI, Hinting: font.HintingFull})
	if logger != nil {
		logger.Infof("caption", "loaded Go Regular at %.0fpt", size)
	}
	return c
}

// LineHeight is the height of one caption line in pixels.
func (c *Caption) LineHeight() int {
	return c.face.Metrics().Height.Ceil()
}

// Draw renders text horizontally centred in area, on the area's baseline
// derived from the face ascent.
func (c *Caption) Draw(dst *image.RGBA, area image.Rectangle, text string) error {
	if text == "" || area.Empty() {
		return nil
	}
	m := c.face.Metrics()
	width := font.MeasureString(c.face, text).Ceil()
	x := area.Min.X + (area.Dx()-width)/2
	baseline := area.Min.Y + (area.Dy()+m.Ascent.Ceil()-m.Descent.Ceil())/2
	src := image.NewUniform(CaptionColor)

	if c.ttFont == nil {
		d := &font.Drawer{Dst: dst, Src: src, Face: c.face}
		d.Dot = fixed.P(x, baseline)
		d.DrawString(text)
		return nil
	}

	ctx := freetype.NewContext()
	ctx.SetDPI(captionDPI)
	ctx.SetFont(c.ttFont)
	ctx.SetFontSize(c.size)
	ctx.SetHinting(font.HintingFull)
	ctx.SetClip(area)
	ctx.SetDst(dst)
	ctx.SetSrc(src)
	_, err := ctx.DrawString(text, freetype.Pt(x, baseline))
	return err
}
