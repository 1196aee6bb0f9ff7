package ports

import "github.com/smarthealthcare/clinic-api/internal/core/domain"

// Broadcaster fans an event out to every connected real-time listener.
// Fire-and-forget: per-listener failures are handled internally and never
// reach the caller.
type Broadcaster interface {
	Broadcast(event domain.Event)
}
