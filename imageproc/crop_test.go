package imageproc

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// coordTensor builds a tensor whose channel 0 holds the row index and
// channel 1 the column index, so crop positions can be read back from
// the output.
func coordTensor(height, width int) Tensor {
	t := NewTensor(height, width, 2)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			t.Set(y, x, 0, float32(y))
			t.Set(y, x, 1, float32(x))
		}
	}
	return t
}

func TestCentralCrop(t *testing.T) {
	src := coordTensor(256, 341)

	out, err := CentralCrop(src, 224, 224)
	if err != nil {
		t.Fatalf("CentralCrop() error = %v", err)
	}

	if out.Height != 224 || out.Width != 224 || out.Channels != 2 {
		t.Fatalf("shape = %dx%dx%d, want 224x224x2", out.Height, out.Width, out.Channels)
	}

	// top = (256-224)/2 = 16, left = (341-224)/2 = 58
	if got := out.At(0, 0, 0); got != 16 {
		t.Errorf("top = %v, want 16", got)
	}
	if got := out.At(0, 0, 1); got != 58 {
		t.Errorf("left = %v, want 58", got)
	}
}

func TestCentralCropDeterministic(t *testing.T) {
	src := coordTensor(300, 300)

	first, err := CentralCrop(src, 224, 224)
	if err != nil {
		t.Fatalf("CentralCrop() error = %v", err)
	}
	second, err := CentralCrop(src, 224, 224)
	if err != nil {
		t.Fatalf("CentralCrop() error = %v", err)
	}

	if diff := cmp.Diff(first.Data, second.Data); diff != "" {
		t.Errorf("central crop not deterministic (-first +second):\n%s", diff)
	}
}

func TestCentralCropExact(t *testing.T) {
	// Cropping away nothing returns the image unchanged.
	src := coordTensor(224, 224)

	out, err := CentralCrop(src, 224, 224)
	if err != nil {
		t.Fatalf("CentralCrop() error = %v", err)
	}
	if diff := cmp.Diff(src.Data, out.Data); diff != "" {
		t.Errorf("exact-size crop changed data (-src +out):\n%s", diff)
	}
}

func TestRandomCropBounds(t *testing.T) {
	src := coordTensor(300, 300)
	rng := rand.New(rand.NewSource(0))

	for i := 0; i < 1000; i++ {
		out, err := RandomCropAndFlip(src, 224, 224, rng)
		if err != nil {
			t.Fatalf("RandomCropAndFlip() error = %v", err)
		}

		top := out.At(0, 0, 0)
		// Under a flip the column values run right to left; the
		// window's left edge is the smaller of the two corners.
		left := min(out.At(0, 0, 1), out.At(0, 223, 1))

		if top < 0 || top > 76 {
			t.Fatalf("draw %d: top = %v, want within [0, 76]", i, top)
		}
		if left < 0 || left > 76 {
			t.Fatalf("draw %d: left = %v, want within [0, 76]", i, left)
		}
	}
}

func TestRandomCropFlipRate(t *testing.T) {
	src := coordTensor(300, 300)
	rng := rand.New(rand.NewSource(1))

	flips := 0
	const draws = 1000
	for i := 0; i < draws; i++ {
		out, err := RandomCropAndFlip(src, 224, 224, rng)
		if err != nil {
			t.Fatalf("RandomCropAndFlip() error = %v", err)
		}
		if out.At(0, 0, 1) > out.At(0, 223, 1) {
			flips++
		}
	}

	if flips < 400 || flips > 600 {
		t.Errorf("flips = %d/%d, want roughly half", flips, draws)
	}
}

func TestRandomCropDeterministicSeed(t *testing.T) {
	src := coordTensor(300, 300)

	first, err := RandomCropAndFlip(src, 224, 224, rand.New(rand.NewSource(42)))
	if err != nil {
		t.Fatalf("RandomCropAndFlip() error = %v", err)
	}
	second, err := RandomCropAndFlip(src, 224, 224, rand.New(rand.NewSource(42)))
	if err != nil {
		t.Fatalf("RandomCropAndFlip() error = %v", err)
	}

	if diff := cmp.Diff(first.Data, second.Data); diff != "" {
		t.Errorf("same seed produced different crops (-first +second):\n%s", diff)
	}
}

func TestCropTooLarge(t *testing.T) {
	src := NewTensor(100, 100, 3)
	rng := rand.New(rand.NewSource(0))

	if _, err := CentralCrop(src, 224, 224); !errors.Is(err, ErrCropTooLarge) {
		t.Errorf("CentralCrop() error = %v, want ErrCropTooLarge", err)
	}
	if _, err := RandomCropAndFlip(src, 224, 224, rng); !errors.Is(err, ErrCropTooLarge) {
		t.Errorf("RandomCropAndFlip() error = %v, want ErrCropTooLarge", err)
	}

	// One oversized axis is enough to fail.
	if _, err := CentralCrop(src, 50, 224); !errors.Is(err, ErrCropTooLarge) {
		t.Errorf("CentralCrop(50, 224) error = %v, want ErrCropTooLarge", err)
	}
}

func TestCropInvalidSize(t *testing.T) {
	src := NewTensor(100, 100, 3)

	if _, err := CentralCrop(src, 0, 50); !errors.Is(err, ErrInvalidDimension) {
		t.Errorf("CentralCrop(0, 50) error = %v, want ErrInvalidDimension", err)
	}
	if _, err := CentralCrop(src, 50, -1); !errors.Is(err, ErrInvalidDimension) {
		t.Errorf("CentralCrop(50, -1) error = %v, want ErrInvalidDimension", err)
	}
}

func TestFlipHorizontal(t *testing.T) {
	src := coordTensor(2, 3)
	flipHorizontal(src)

	want := []float32{
		0, 2, 0, 1, 0, 0,
		1, 2, 1, 1, 1, 0,
	}
	if diff := cmp.Diff(want, src.Data); diff != "" {
		t.Errorf("flip result mismatch (-want +got):\n%s", diff)
	}
}
