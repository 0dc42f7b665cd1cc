package imageproc

import "fmt"

// Normalize subtracts the per-channel means and divides by the
// per-channel standard deviations, returning a new tensor. The
// statistics vectors must match the tensor's channel count and every
// standard deviation must be strictly positive.
func Normalize(t Tensor, means, stds []float32) (Tensor, error) {
	if err := t.validate(); err != nil {
		return Tensor{}, err
	}
	if len(means) != t.Channels {
		return Tensor{}, fmt.Errorf("%w: %d means for %d channels", ErrChannelMismatch, len(means), t.Channels)
	}
	if len(stds) != t.Channels {
		return Tensor{}, fmt.Errorf("%w: %d stds for %d channels", ErrChannelMismatch, len(stds), t.Channels)
	}
	for c, std := range stds {
		if std <= 0 {
			return Tensor{}, fmt.Errorf("%w: std[%d] = %v", ErrInvalidStatistic, c, std)
		}
	}

	out := NewTensor(t.Height, t.Width, t.Channels)
	for i := 0; i < len(t.Data); i += t.Channels {
		for c := 0; c < t.Channels; c++ {
			out.Data[i+c] = (t.Data[i+c] - means[c]) / stds[c]
		}
	}

	return out, nil
}
