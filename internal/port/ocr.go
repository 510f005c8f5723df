package port

import (
	"context"

	"paxscan/internal/domain"
)

// Observation is one recognized text line with the engine's confidence in [0,1].
type Observation struct {
	Text       string
	Confidence float64
}

// OCREngine abstracts the local text-recognition collaborator.
type OCREngine interface {
	Recognize(ctx context.Context, image domain.ImageInput, level domain.AccuracyLevel) ([]Observation, error)
}
