package llm

import "context"

// CompletionClient is the boundary to the external text-completion service.
// Implementations do not retry; a failed call is a terminal failure for the
// request.
type CompletionClient interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
