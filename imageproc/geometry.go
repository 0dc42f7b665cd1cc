package imageproc

import "fmt"

// SmallestSizeAtLeast computes the new shape whose smallest side
// equals smallestSide while preserving the original aspect ratio.
// The scale ratio is computed in float64 and both results use a
// truncating cast, so the smaller output side may undershoot
// smallestSide by at most one unit.
func SmallestSizeAtLeast(height, width, smallestSide int) (newHeight, newWidth int, err error) {
	if height <= 0 || width <= 0 {
		return 0, 0, fmt.Errorf("%w: %dx%d", ErrInvalidDimension, height, width)
	}
	if smallestSide <= 0 {
		return 0, 0, fmt.Errorf("%w: smallest side %d", ErrInvalidDimension, smallestSide)
	}

	smaller := min(height, width)
	scale := float64(smallestSide) / float64(smaller)

	newHeight = int(float64(height) * scale)
	newWidth = int(float64(width) * scale)
	return newHeight, newWidth, nil
}
