package port

import (
	"context"

	"paxscan/internal/domain"
)

// VisionReply is the raw answer from the remote multimodal model: the JSON
// text the model produced plus the usage the API reported. Schema validation
// happens in the strategy, not here.
type VisionReply struct {
	Body   []byte
	Model  string
	Tokens int
}

// VisionClient abstracts the remote vision-language collaborator.
type VisionClient interface {
	Infer(ctx context.Context, image domain.ImageInput, instructions string) (*VisionReply, error)
}

// OnDeviceModel abstracts the local language-model collaborator. The reply
// is free text, not schema-constrained.
type OnDeviceModel interface {
	Respond(ctx context.Context, prompt string) (string, error)
}
