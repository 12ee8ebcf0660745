package platform

import (
	"fmt"

	"github.com/gen2brain/beeep"
)

// Notifier posts user-visible notifications.
type Notifier interface {
	Post(title, body, soundRef string) error
}

// DesktopNotifier posts desktop notifications through the host notification
// service.
type DesktopNotifier struct {
	// Authorized is the notification permission. When false Post returns
	// without posting.
	Authorized bool
	// Icon is an optional icon path.
	Icon string

	post func(title, body, icon string) error
}

// NewDesktopNotifier returns a notifier registered under appName.
func NewDesktopNotifier(appName string, authorized bool, icon string) *DesktopNotifier {
	if appName != "" {
		beeep.AppName = appName
	}
	return &DesktopNotifier{
		Authorized: authorized,
		Icon:       icon,
		post: func(title, body, icon string) error {
			return beeep.Notify(title, body, icon)
		},
	}
}

// Post shows a notification. soundRef names the sound the caller plays
// alongside it; desktop notifications carry no sound of their own.
func (n *DesktopNotifier) Post(title, body, soundRef string) error {
	if !n.Authorized {
		return nil
	}
	if err := n.post(title, body, n.Icon); err != nil {
		return fmt.Errorf("post notification %q: %w", title, err)
	}
	return nil
}

// NoopNotifier drops every notification.
type NoopNotifier struct{}

func (NoopNotifier) Post(string, string, string) error { return nil }
