package viewer

import (
	"image"
	"image/color"
	"image/png"
	"io"

	"golang.org/x/image/draw"

	"github.com/lixenwraith/kick/audio"
)

// PreviewBackground is the opaque colour previews are composited over
var PreviewBackground = color.NRGBA{R: 0x10, G: 0x10, B: 0x18, A: 0xFF}

// RenderImage composites p over the background, upscaled by scale with
// nearest-neighbour sampling
func RenderImage(p *audio.Preview, scale int) *image.NRGBA {
	if scale < 1 {
		scale = 1
	}
	src := p.Image()
	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))

	draw.Draw(dst, dst.Bounds(), image.NewUniform(PreviewBackground), image.Point{}, draw.Src)
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}

// WritePNG encodes the upscaled preview as PNG
func WritePNG(w io.Writer, p *audio.Preview, scale int) error {
	return png.Encode(w, RenderImage(p, scale))
}
