package llm

import "context"

// Chat is one stateful model conversation. The model accumulates its own
// history across sends; a failed Send must leave the handle usable for
// subsequent sends.
type Chat interface {
	Send(ctx context.Context, message string) (reply string, err error)
}

type Provider interface {
	// OpenChat starts a new conversation with no prior history.
	OpenChat(ctx context.Context) (Chat, error)
	Close() error
}
