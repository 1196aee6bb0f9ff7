package domain

// Event types pushed over the real-time channel.
const (
	EventWelcome        = "WELCOME"
	EventNewAppointment = "NEW_APPOINTMENT"
)

// Event is the payload fanned out to connected listeners. Delivery is
// best-effort and at-most-once; events are never persisted.
type Event struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}
