package outfit

import "errors"

var (
	// ErrEmptyWardrobe means there was nothing to score.
	ErrEmptyWardrobe = errors.New("wardrobe is empty")
	// ErrInvalidTemperature means the temperature was NaN or infinite.
	ErrInvalidTemperature = errors.New("temperature must be a finite number")
)
