// Package notifications arms one-shot local reminder notifications and
// delivers them through a platform notifier.
package notifications

import (
	"context"
	"os/exec"
	"sync"

	"github.com/dmitrijs2005/healthmate/internal/logging"
)

// Notification is one delivery. Tag is a fresh delivery-time identifier, so
// repeated deliveries never collide but are not de-duplicated either.
type Notification struct {
	Title              string
	Body               string
	Tag                string
	RequireInteraction bool
}

// Notifier presents notifications to the user.
//
// Show must be a silent no-op unless permission has been granted beforehand;
// RequestPermission is idempotent and is invoked once at dashboard entry,
// never by the scheduler itself.
type Notifier interface {
	RequestPermission() bool
	PermissionGranted() bool
	Show(n Notification)
}

// ExecNotifier delivers notifications by shelling out to a desktop
// notification command (notify-send style). Permission maps to the command
// being resolvable on PATH.
type ExecNotifier struct {
	command string
	log     logging.Logger

	mu      sync.Mutex
	probed  bool
	granted bool

	// test seams
	lookPath func(string) (string, error)
	run      func(name string, args ...string) error
}

func NewExecNotifier(command string, log logging.Logger) *ExecNotifier {
	return &ExecNotifier{
		command:  command,
		log:      log,
		lookPath: exec.LookPath,
		run: func(name string, args ...string) error {
			return exec.Command(name, args...).Run()
		},
	}
}

// RequestPermission probes for the notification command once and caches the
// result. Repeated calls are cheap and return the same answer.
func (n *ExecNotifier) RequestPermission() bool {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.probed {
		return n.granted
	}
	n.probed = true

	if n.command == "" {
		return false
	}
	if _, err := n.lookPath(n.command); err != nil {
		n.log.Warn(context.Background(), "notifications not supported on this system",
			"command", n.command)
		return false
	}
	n.granted = true
	return true
}

func (n *ExecNotifier) PermissionGranted() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.granted
}

// Show presents a notification. Without permission it is a silent no-op.
func (n *ExecNotifier) Show(note Notification) {
	if !n.PermissionGranted() {
		return
	}

	args := []string{}
	if note.RequireInteraction {
		// critical urgency keeps the notification on screen until dismissed
		args = append(args, "-u", "critical")
	}
	args = append(args, note.Title, note.Body)

	if err := n.run(n.command, args...); err != nil {
		n.log.Warn(context.Background(), "failed to show notification",
			"title", note.Title, "error", err)
	}
}

// NopNotifier ignores everything. Useful when notifications are disabled
// and in tests.
type NopNotifier struct{}

func (NopNotifier) RequestPermission() bool { return false }
func (NopNotifier) PermissionGranted() bool { return false }
func (NopNotifier) Show(Notification)       {}
