package imageproc

import (
	"errors"
	"fmt"
	"math/rand"
)

// Per-channel statistics of the VGG preprocessing recipe, channel
// order R, G, B. Pixel values are expected in the 0-255 range before
// normalization.
var (
	VGGMean = [3]float32{123.68, 116.78, 103.94}
	VGGSTD  = [3]float32{0.229 * 255, 0.224 * 255, 0.225 * 255}
)

const (
	DefaultOutputSize    = 224
	DefaultResizeSideMin = 256
	DefaultResizeSideMax = 512
)

// Mode selects between the stochastic training transform and the
// deterministic evaluation transform. Both agree on output shape and
// value ranges.
type Mode int

const (
	Evaluation Mode = iota
	Training
)

func (m Mode) String() string {
	switch m {
	case Training:
		return "training"
	case Evaluation:
		return "evaluation"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// Options configures Preprocess. The zero value is not usable; start
// from DefaultOptions.
type Options struct {
	OutputHeight  int
	OutputWidth   int
	ResizeSideMin int
	ResizeSideMax int

	// Means and STDs override the VGG channel statistics. Length must
	// equal the input's channel count.
	Means []float32
	STDs  []float32
}

// DefaultOptions returns the reference configuration: 224x224 output,
// resize side sampled from [256, 512] in training mode, VGG channel
// statistics.
func DefaultOptions() Options {
	return Options{
		OutputHeight:  DefaultOutputSize,
		OutputWidth:   DefaultOutputSize,
		ResizeSideMin: DefaultResizeSideMin,
		ResizeSideMax: DefaultResizeSideMax,
		Means:         VGGMean[:],
		STDs:          VGGSTD[:],
	}
}

// Preprocess runs the full pipeline on a single image: aspect
// preserving resize, crop, and per-channel normalization.
//
// In training mode the resize side is drawn uniformly from
// [ResizeSideMin, ResizeSideMax], the crop window is random and the
// result is flipped left-right with probability 0.5; all three draws
// come from rng, in that order. In evaluation mode the resize side is
// fixed at ResizeSideMin, the crop is central and rng may be nil.
//
// The call either returns a tensor of exactly (OutputHeight,
// OutputWidth, channels) or an error; no partial result is ever
// returned.
func Preprocess(t Tensor, mode Mode, rng *rand.Rand, opts Options) (Tensor, error) {
	if err := t.validate(); err != nil {
		return Tensor{}, err
	}
	if opts.OutputHeight <= 0 || opts.OutputWidth <= 0 {
		return Tensor{}, fmt.Errorf("%w: output %dx%d", ErrInvalidDimension, opts.OutputHeight, opts.OutputWidth)
	}

	channels := t.Channels

	var resizeSide int
	switch mode {
	case Training:
		if rng == nil {
			return Tensor{}, errors.New("imageproc: training mode requires a random source")
		}
		if opts.ResizeSideMax < opts.ResizeSideMin {
			return Tensor{}, fmt.Errorf("%w: resize side range [%d, %d]",
				ErrInvalidDimension, opts.ResizeSideMin, opts.ResizeSideMax)
		}
		resizeSide = opts.ResizeSideMin + rng.Intn(opts.ResizeSideMax-opts.ResizeSideMin+1)
	case Evaluation:
		resizeSide = opts.ResizeSideMin
	default:
		return Tensor{}, fmt.Errorf("imageproc: unknown mode %d", int(mode))
	}

	resized, err := AspectPreservingResize(t, resizeSide)
	if err != nil {
		return Tensor{}, err
	}

	var cropped Tensor
	if mode == Training {
		cropped, err = RandomCropAndFlip(resized, opts.OutputHeight, opts.OutputWidth, rng)
	} else {
		cropped, err = CentralCrop(resized, opts.OutputHeight, opts.OutputWidth)
	}
	if err != nil {
		return Tensor{}, err
	}

	if cropped.Height != opts.OutputHeight || cropped.Width != opts.OutputWidth || cropped.Channels != channels {
		return Tensor{}, fmt.Errorf("%w: got %dx%dx%d, want %dx%dx%d",
			ErrShapeMismatch, cropped.Height, cropped.Width, cropped.Channels,
			opts.OutputHeight, opts.OutputWidth, channels)
	}

	return Normalize(cropped, opts.Means, opts.STDs)
}
