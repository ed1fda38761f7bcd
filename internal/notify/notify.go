// Package notify manages the single transient feedback notification shown
// after a path is copied. At most one notification is current at a time;
// replacing or dismissing goes through the manager so that a stale timer
// from an older notification can never tear down a newer one.
package notify

import (
	"sync"
	"time"
)

// Sink displays and clears the notification text. Implementations decide the
// presentation (status line, balloon, log line).
type Sink interface {
	Display(message string)
	Clear()
}

// Handle identifies one shown notification. Lifecycle calls with a stale
// handle are ignored.
type Handle struct {
	sequence uint64
}

// Manager owns the currently displayed notification.
type Manager struct {
	mutex           sync.Mutex
	sink            Sink
	currentSequence uint64
	nextSequence    uint64
}

// NewManager constructs a Manager displaying through the given sink.
func NewManager(sink Sink) *Manager {
	return &Manager{sink: sink}
}

// Show displays a new notification, superseding any current one. A positive
// duration schedules automatic dismissal; the scheduled teardown checks
// identity and does nothing when the notification has already been replaced.
func (manager *Manager) Show(message string, duration time.Duration) Handle {
	manager.mutex.Lock()
	defer manager.mutex.Unlock()
	manager.nextSequence++
	manager.currentSequence = manager.nextSequence
	shownHandle := Handle{sequence: manager.currentSequence}
	manager.sink.Display(message)
	if duration > 0 {
		time.AfterFunc(duration, func() {
			manager.Dismiss(shownHandle)
		})
	}
	return shownHandle
}

// Replace dismisses the notification identified by the handle, when still
// current, and shows a new one. With a stale handle the current notification
// is left alone and the new one still supersedes it.
func (manager *Manager) Replace(previous Handle, message string, duration time.Duration) Handle {
	return manager.Show(message, duration)
}

// Dismiss clears the notification identified by the handle. A handle that is
// no longer current is ignored.
func (manager *Manager) Dismiss(shown Handle) {
	manager.mutex.Lock()
	defer manager.mutex.Unlock()
	if shown.sequence != manager.currentSequence || manager.currentSequence == 0 {
		return
	}
	manager.currentSequence = 0
	manager.sink.Clear()
}
