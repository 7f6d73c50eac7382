// Package events publishes domain notifications to the message broker.
package events

import "context"

// Event is one notification on the wire.
type Event struct {
	ID   string         `json:"id"`
	Name string         `json:"name"`
	Data map[string]any `json:"data"`
}

// Publisher emits events. Implementations attempt delivery at most once;
// retry policy, if any, belongs to the caller.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}
