//go:build linux

package notify

import (
	"sync"

	"github.com/godbus/dbus/v5"
)

const (
	dbusNotifyDest      = "org.freedesktop.Notifications"
	dbusNotifyPath      = "/org/freedesktop/Notifications"
	dbusNotifyInterface = "org.freedesktop.Notifications"
)

// dbusNotifier sends notifications over the session bus, remembering the
// last notification ID so Update replaces rather than stacks.
type dbusNotifier struct {
	obj dbus.BusObject

	mu     sync.Mutex
	lastID uint32
}

// New creates a Notifier backed by the D-Bus session bus. Returns a
// no-op notifier when no session bus is reachable.
func New() (Notifier, error) {
	conn, err := dbus.SessionBus()
	if err != nil {
		return &stubNotifier{}, nil //nolint:nilerr // headless sessions lack a bus
	}
	return &dbusNotifier{obj: conn.Object(dbusNotifyDest, dbusNotifyPath)}, nil
}

func (n *dbusNotifier) Update(notif Notification) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	hints := map[string]dbus.Variant{
		"urgency":       dbus.MakeVariant(byte(notif.Urgency)),
		"desktop-entry": dbus.MakeVariant("studium"),
	}

	// Notify(app_name, replaces_id, icon, summary, body, actions, hints, timeout) -> id
	call := n.obj.Call(
		dbusNotifyInterface+".Notify",
		0,
		"Studium",
		n.lastID,
		notif.Icon,
		notif.Title,
		notif.Body,
		[]string{},
		hints,
		notif.Timeout,
	)
	if call.Err != nil {
		return call.Err
	}

	return call.Store(&n.lastID)
}

func (n *dbusNotifier) Dismiss() error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.lastID == 0 {
		return nil
	}
	call := n.obj.Call(dbusNotifyInterface+".CloseNotification", 0, n.lastID)
	n.lastID = 0
	return call.Err
}

// stubNotifier is used when the session bus is unavailable.
type stubNotifier struct{}

func (s *stubNotifier) Update(_ Notification) error { return nil }

func (s *stubNotifier) Dismiss() error { return nil }
