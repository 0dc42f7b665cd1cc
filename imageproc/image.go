package imageproc

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// Composite returns an image with the alpha channel removed by drawing
// over a white background.
func Composite(img image.Image) image.Image {
	return CompositeColor(img, color.White)
}

// CompositeColor returns an image with the alpha channel removed by
// drawing over the given background color.
func CompositeColor(img image.Image, bg color.Color) image.Image {
	dst := image.NewRGBA(img.Bounds())
	draw.Draw(dst, dst.Bounds(), &image.Uniform{bg}, image.Point{}, draw.Src)
	draw.Draw(dst, dst.Bounds(), img, img.Bounds().Min, draw.Over)
	return dst
}

// FromImage converts a decoded image to a 3-channel float32 tensor in
// HWC layout with values in the 0-255 range. Alpha is removed by
// compositing over white first.
func FromImage(img image.Image) Tensor {
	img = Composite(img)
	bounds := img.Bounds()
	h, w := bounds.Dy(), bounds.Dx()

	t := NewTensor(h, w, 3)
	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			// RGBA returns 16-bit values; keep the high byte.
			t.Data[i] = float32(r >> 8)
			t.Data[i+1] = float32(g >> 8)
			t.Data[i+2] = float32(b >> 8)
			i += 3
		}
	}

	return t
}

// ToImage converts a 3-channel tensor with 0-255 values back to an
// RGBA image, clamping out-of-range values. Useful for inspecting
// intermediate pipeline stages.
func ToImage(t Tensor) (*image.RGBA, error) {
	if err := t.validate(); err != nil {
		return nil, err
	}

	clamp := func(v float32) uint8 {
		if v < 0 {
			return 0
		}
		if v > 255 {
			return 255
		}
		return uint8(v)
	}

	img := image.NewRGBA(image.Rect(0, 0, t.Width, t.Height))
	for y := 0; y < t.Height; y++ {
		for x := 0; x < t.Width; x++ {
			img.SetRGBA(x, y, color.RGBA{
				R: clamp(t.At(y, x, 0)),
				G: clamp(t.At(y, x, min(1, t.Channels-1))),
				B: clamp(t.At(y, x, min(2, t.Channels-1))),
				A: 255,
			})
		}
	}

	return img, nil
}
