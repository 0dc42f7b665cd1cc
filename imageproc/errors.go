package imageproc

import "errors"

var (
	// ErrInvalidDimension is returned when a height, width or resize side
	// is zero or negative.
	ErrInvalidDimension = errors.New("imageproc: invalid dimension")

	// ErrChannelMismatch is returned when the length of a statistics
	// vector does not match the tensor's channel count.
	ErrChannelMismatch = errors.New("imageproc: channel mismatch")

	// ErrInvalidRank is returned when a tensor's backing data does not
	// describe a dense rank-3 (height, width, channel) array.
	ErrInvalidRank = errors.New("imageproc: tensor is not rank-3")

	// ErrCropTooLarge is returned when a requested crop window exceeds
	// the current image bounds.
	ErrCropTooLarge = errors.New("imageproc: crop larger than image")

	// ErrInvalidStatistic is returned when a standard deviation is zero
	// or negative.
	ErrInvalidStatistic = errors.New("imageproc: non-positive standard deviation")

	// ErrShapeMismatch is returned when the post-crop shape assertion
	// fails.
	ErrShapeMismatch = errors.New("imageproc: output shape mismatch")
)
