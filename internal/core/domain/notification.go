package domain

type NotificationPhase int

const (
	NotificationCleared NotificationPhase = iota
	NotificationVisible
	NotificationFadingOut
)

func (p NotificationPhase) String() string {
	switch p {
	case NotificationVisible:
		return "visible"
	case NotificationFadingOut:
		return "fading-out"
	}
	return "cleared"
}

// A Notification is the single transient user message. Message is empty
// exactly when the phase is NotificationCleared.
type Notification struct {
	Message string
	Phase   NotificationPhase
}
