// Package notify surfaces playback transitions as desktop notifications.
package notify

// Urgency is the freedesktop notification urgency hint.
type Urgency byte

const (
	UrgencyLow      Urgency = 0
	UrgencyNormal   Urgency = 1
	UrgencyCritical Urgency = 2
)

// Notification describes a single desktop notification.
type Notification struct {
	Title   string
	Body    string
	Icon    string  // path or icon name, optional
	Timeout int32   // ms, -1 = server default, 0 = never expire
	Urgency Urgency // Low, Normal, Critical
}

// Notifier posts desktop notifications. Update replaces the client's
// previous notification so rapid transitions do not stack up, and
// Dismiss clears whatever is currently showing.
type Notifier interface {
	Update(n Notification) error
	Dismiss() error
}
