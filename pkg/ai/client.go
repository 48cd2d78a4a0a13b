package ai

import "context"

// Client is the external text-generation collaborator. An empty string with a
// nil error means the model answered with nothing.
type Client interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
