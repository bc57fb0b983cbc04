package viewer

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// background of the preview area
var background, _ = colorful.MakeColor(PreviewBackground)

// blendARGB composites a packed ARGB pixel over bg
func blendARGB(argb uint32, bg colorful.Color) colorful.Color {
	a := float64(argb>>24) / 255
	if a == 0 {
		return bg
	}
	fg := colorful.Color{
		R: float64(uint8(argb>>16)) / 255,
		G: float64(uint8(argb>>8)) / 255,
		B: float64(uint8(argb)) / 255,
	}
	return bg.BlendRgb(fg, a).Clamped()
}

// toTcell converts to a truecolor terminal colour
func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
