package messaging

import "context"

// MessageSender delivers a plain-text message to a chat contact
type MessageSender interface {
	// SendText sends body to the contact identified by to.
	// Any error wraps ErrReplyDispatch.
	SendText(ctx context.Context, to, body string) error
}
