package imageproc

import (
	"fmt"
	"math/rand"
)

// crop extracts the (cropHeight, cropWidth) window at (top, left).
// Callers have already validated the window against the image bounds.
func crop(t Tensor, top, left, cropHeight, cropWidth int) Tensor {
	out := NewTensor(cropHeight, cropWidth, t.Channels)
	rowLen := cropWidth * t.Channels

	for y := 0; y < cropHeight; y++ {
		src := ((top+y)*t.Width + left) * t.Channels
		dst := y * rowLen
		copy(out.Data[dst:dst+rowLen], t.Data[src:src+rowLen])
	}

	return out
}

// checkCrop validates the crop size against the image bounds.
func checkCrop(t Tensor, cropHeight, cropWidth int) error {
	if err := t.validate(); err != nil {
		return err
	}
	if cropHeight <= 0 || cropWidth <= 0 {
		return fmt.Errorf("%w: crop %dx%d", ErrInvalidDimension, cropHeight, cropWidth)
	}
	if cropHeight > t.Height || cropWidth > t.Width {
		return fmt.Errorf("%w: %dx%d > %dx%d", ErrCropTooLarge, cropHeight, cropWidth, t.Height, t.Width)
	}
	return nil
}

// RandomCropAndFlip crops a uniformly random (cropHeight, cropWidth)
// window out of the tensor, then flips the result left-right with
// probability 0.5. The crop position and the flip are independent
// draws from rng, in that order: top, left, flip. The resize step of
// the pipeline normally guarantees the image is large enough, but the
// bounds are enforced here regardless.
func RandomCropAndFlip(t Tensor, cropHeight, cropWidth int, rng *rand.Rand) (Tensor, error) {
	if err := checkCrop(t, cropHeight, cropWidth); err != nil {
		return Tensor{}, err
	}

	top := rng.Intn(t.Height - cropHeight + 1)
	left := rng.Intn(t.Width - cropWidth + 1)

	out := crop(t, top, left, cropHeight, cropWidth)

	if rng.Float64() < 0.5 {
		flipHorizontal(out)
	}

	return out, nil
}

// CentralCrop extracts the centered (cropHeight, cropWidth) window.
// Deterministic, no flip.
func CentralCrop(t Tensor, cropHeight, cropWidth int) (Tensor, error) {
	if err := checkCrop(t, cropHeight, cropWidth); err != nil {
		return Tensor{}, err
	}

	top := (t.Height - cropHeight) / 2
	left := (t.Width - cropWidth) / 2
	return crop(t, top, left, cropHeight, cropWidth), nil
}

// flipHorizontal mirrors the tensor around its vertical axis in place.
func flipHorizontal(t Tensor) {
	for y := 0; y < t.Height; y++ {
		for x := 0; x < t.Width/2; x++ {
			mx := t.Width - 1 - x
			for c := 0; c < t.Channels; c++ {
				a := t.At(y, x, c)
				t.Set(y, x, c, t.At(y, mx, c))
				t.Set(y, mx, c, a)
			}
		}
	}
}
