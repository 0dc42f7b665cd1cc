package imageproc

import (
	"fmt"
	"math"
)

// ResizeBilinear resamples the tensor to (newHeight, newWidth) using
// bilinear interpolation with half-pixel sample centers, i.e. the
// source coordinate for destination pixel d is (d+0.5)*scale-0.5,
// clamped to the source bounds. This is the align_corners=false
// convention; pinning it keeps low-order pixel values identical to
// the reference recipe.
func ResizeBilinear(t Tensor, newHeight, newWidth int) (Tensor, error) {
	if err := t.validate(); err != nil {
		return Tensor{}, err
	}
	if newHeight <= 0 || newWidth <= 0 {
		return Tensor{}, fmt.Errorf("%w: resize target %dx%d", ErrInvalidDimension, newHeight, newWidth)
	}

	if newHeight == t.Height && newWidth == t.Width {
		return t.Clone(), nil
	}

	out := NewTensor(newHeight, newWidth, t.Channels)

	scaleY := float64(t.Height) / float64(newHeight)
	scaleX := float64(t.Width) / float64(newWidth)

	for y := 0; y < newHeight; y++ {
		sy := (float64(y)+0.5)*scaleY - 0.5
		if sy < 0 {
			sy = 0
		}
		y0 := int(math.Floor(sy))
		if y0 > t.Height-1 {
			y0 = t.Height - 1
		}
		y1 := min(y0+1, t.Height-1)
		fy := float32(sy - float64(y0))

		for x := 0; x < newWidth; x++ {
			sx := (float64(x)+0.5)*scaleX - 0.5
			if sx < 0 {
				sx = 0
			}
			x0 := int(math.Floor(sx))
			if x0 > t.Width-1 {
				x0 = t.Width - 1
			}
			x1 := min(x0+1, t.Width-1)
			fx := float32(sx - float64(x0))

			for c := 0; c < t.Channels; c++ {
				top := t.At(y0, x0, c)*(1-fx) + t.At(y0, x1, c)*fx
				bottom := t.At(y1, x0, c)*(1-fx) + t.At(y1, x1, c)*fx
				out.Set(y, x, c, top*(1-fy)+bottom*fy)
			}
		}
	}

	return out, nil
}

// AspectPreservingResize rescales the tensor so that its smallest side
// becomes smallestSide, preserving aspect ratio.
func AspectPreservingResize(t Tensor, smallestSide int) (Tensor, error) {
	newHeight, newWidth, err := SmallestSizeAtLeast(t.Height, t.Width, smallestSide)
	if err != nil {
		return Tensor{}, err
	}
	return ResizeBilinear(t, newHeight, newWidth)
}
