// Package imageproc implements the VGG-style image preprocessing
// pipeline: aspect-preserving resize, random or central cropping,
// horizontal flip augmentation and per-channel normalization.
//
// All operations work on dense float32 tensors in HWC layout and are
// pure functions of their inputs; randomness is always drawn from an
// injected *rand.Rand so concurrent calls with independent sources are
// safe and reproducible.
package imageproc

import "fmt"

// Tensor is a dense rank-3 float32 array in HWC (height, width,
// channel) layout. Data holds Height*Width*Channels values; the value
// at (y, x, c) lives at index (y*Width+x)*Channels + c.
type Tensor struct {
	Height   int
	Width    int
	Channels int
	Data     []float32
}

// NewTensor allocates a zero-filled tensor of the given shape.
func NewTensor(height, width, channels int) Tensor {
	return Tensor{
		Height:   height,
		Width:    width,
		Channels: channels,
		Data:     make([]float32, height*width*channels),
	}
}

// At returns the value at (y, x, c). No bounds checking beyond the
// slice access itself.
func (t Tensor) At(y, x, c int) float32 {
	return t.Data[(y*t.Width+x)*t.Channels+c]
}

// Set stores v at (y, x, c).
func (t Tensor) Set(y, x, c int, v float32) {
	t.Data[(y*t.Width+x)*t.Channels+c] = v
}

// Shape returns the tensor shape as (height, width, channels).
func (t Tensor) Shape() (int, int, int) {
	return t.Height, t.Width, t.Channels
}

// validate checks that the tensor describes a dense rank-3 array:
// strictly positive dimensions and a backing slice of exactly
// Height*Width*Channels values. A batched or flattened buffer fails
// here rather than producing silently wrong output downstream.
func (t Tensor) validate() error {
	if t.Height <= 0 || t.Width <= 0 || t.Channels <= 0 {
		return fmt.Errorf("%w: %dx%dx%d", ErrInvalidRank, t.Height, t.Width, t.Channels)
	}
	if len(t.Data) != t.Height*t.Width*t.Channels {
		return fmt.Errorf("%w: %d values for shape %dx%dx%d",
			ErrInvalidRank, len(t.Data), t.Height, t.Width, t.Channels)
	}
	return nil
}

// CHW returns a copy of the tensor data in CHW (channel-first) layout.
func (t Tensor) CHW() []float32 {
	chw := make([]float32, len(t.Data))
	planeSize := t.Height * t.Width

	for y := 0; y < t.Height; y++ {
		for x := 0; x < t.Width; x++ {
			src := (y*t.Width + x) * t.Channels
			dst := y*t.Width + x
			for c := 0; c < t.Channels; c++ {
				chw[c*planeSize+dst] = t.Data[src+c]
			}
		}
	}

	return chw
}

// Clone returns a deep copy of the tensor.
func (t Tensor) Clone() Tensor {
	out := t
	out.Data = make([]float32, len(t.Data))
	copy(out.Data, t.Data)
	return out
}
