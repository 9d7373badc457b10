package imaging

import "context"

// produces raw image bytes from a text prompt
type Synthesizer interface {
	Synthesize(ctx context.Context, prompt string) ([]byte, error)
}

// hosts uploaded images and applies generative edits.
// Upload and RemoveBackground return a hosted asset URL; RemoveObject
// returns a delivery URL with the removal transformation applied.
type Editor interface {
	Upload(ctx context.Context, image []byte) (string, error)
	RemoveBackground(ctx context.Context, image []byte) (string, error)
	RemoveObject(ctx context.Context, image []byte, object string) (string, error)
}
