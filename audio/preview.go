package audio

import (
	"image"
	"image/color"

	"github.com/chewxy/math32"

	"github.com/lixenwraith/kick/constant"
	"github.com/lixenwraith/kick/dsp"
)

// Preview is a packed ARGB picture of a voice's envelopes
type Preview struct {
	Pix [constant.PreviewWidth * constant.PreviewHeight]uint32
}

// At returns the ARGB pixel at x, y
func (p *Preview) At(x, y int) uint32 {
	return p.Pix[x+constant.PreviewWidth*y]
}

// Image converts the preview to an NRGBA image
func (p *Preview) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, constant.PreviewWidth, constant.PreviewHeight))
	for y := 0; y < constant.PreviewHeight; y++ {
		for x := 0; x < constant.PreviewWidth; x++ {
			argb := p.At(x, y)
			img.SetNRGBA(x, y, color.NRGBA{
				R: uint8(argb >> 16),
				G: uint8(argb >> 8),
				B: uint8(argb),
				A: uint8(argb >> 24),
			})
		}
	}
	return img
}

// Preview returns the envelope picture, redrawn only after a control write.
// The result is owned by the voice and valid until the next write.
func (v *Voice) Preview() *Preview {
	if v.dirty {
		v.drawPreview()
		v.dirty = false
	}
	return &v.preview
}

// Dirty reports whether the preview is stale
func (v *Voice) Dirty() bool {
	return v.dirty
}

func (v *Voice) drawPreview() {
	const (
		w = constant.PreviewWidth
		h = constant.PreviewHeight
	)
	gfx := &v.preview.Pix
	for i := range gfx {
		gfx[i] = 0
	}

	c := &v.compiled

	// Amplitude: band mirrored around the horizontal centre
	for x := 0; x < w; x++ {
		t := float32(x) / w * constant.PreviewWindow
		amp := dsp.Clamp(c.amp.At(t, 1, 0), -1, 1)
		y0 := clampRow(h/2 - h/2*amp)
		y1 := clampRow(h/2 + h/2*amp)
		for y := y0; y < y1; y++ {
			gfx[x+w*y] = constant.PreviewAmpColor
		}
	}

	// Frequency: normalized sweep on a log scale, drawn as a connected line
	prev := dsp.Clamp(c.tone.At(0, 1, 0), -1, 1)
	for x := 0; x < w; x++ {
		t := float32(x) / w * constant.PreviewWindow
		hz := constant.PreviewFreqMin + c.tone.At(t, 1, 0)*(constant.PreviewFreqMax-constant.PreviewFreqMin)
		cur := 0.2 + dsp.Clamp01(logScale(constant.PreviewFreqMin, constant.PreviewFreqMax, hz))*0.8

		y0 := clampRow((h - 1) - (h-1)*prev)
		y1 := clampRow((h - 1) - (h-1)*cur)
		if y0 > y1 {
			y0, y1 = y1, y0
		}
		for y := y0; y <= y1 && y < h; y++ {
			gfx[x+w*y] = constant.PreviewFreqColor
		}
		prev = cur
	}
}

// logScale positions x between lo and hi on a logarithmic axis
func logScale(lo, hi, x float32) float32 {
	return math32.Log(math32.Max(1, x-lo)) / math32.Log(hi)
}

func clampRow(y float32) int {
	if !(y > 0) {
		return 0
	}
	if y > constant.PreviewHeight {
		return constant.PreviewHeight
	}
	return int(y)
}
