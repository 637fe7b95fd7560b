// Package genimage wraps the remote text-to-image capability used for
// listing photo previews and image-less submissions.
package genimage

import "context"

// Generator synthesizes one image from a natural-language description and
// returns it base64-encoded.
type Generator interface {
	Generate(ctx context.Context, description string) (string, error)
}
