package notify

import "context"

// Notifier delivers a message to a user outside the request/response cycle.
// This abstraction allows swapping the mock with the real email sender
// without touching the handlers.
type Notifier interface {
	Send(ctx context.Context, to, subject, body string) error
}
