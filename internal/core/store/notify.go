package store

import (
	"sync"
	"time"

	"github.com/goldencart/storefront/internal/core/domain"
)

const (
	DefaultFadeAfter  = 1500 * time.Millisecond
	DefaultClearAfter = 2000 * time.Millisecond
)

// Notifier drives the single transient notification through
// visible -> fading-out -> cleared. Both phase changes are scheduled
// when the notification is shown; a new Notify call cancels the pending
// pair before restarting the sequence, so a replaced notification can
// never be advanced by a stale timer.
type Notifier struct {
	mu         sync.Mutex
	cur        domain.Notification
	gen        uint64
	fadeTimer  *time.Timer
	clearTimer *time.Timer
	fadeAfter  time.Duration
	clearAfter time.Duration
}

// NewNotifier builds a notifier with the given phase delays, measured
// from the Notify call. Non-positive values fall back to the defaults.
func NewNotifier(fadeAfter, clearAfter time.Duration) *Notifier {
	if fadeAfter <= 0 {
		fadeAfter = DefaultFadeAfter
	}
	if clearAfter <= 0 {
		clearAfter = DefaultClearAfter
	}
	return &Notifier{fadeAfter: fadeAfter, clearAfter: clearAfter}
}

// Notify replaces the current notification and restarts both timers.
func (n *Notifier) Notify(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.stopTimers()
	n.gen++
	gen := n.gen

	n.cur = domain.Notification{
		Message: message,
		Phase:   domain.NotificationVisible,
	}
	n.fadeTimer = time.AfterFunc(n.fadeAfter, func() {
		n.advance(gen, domain.NotificationFadingOut)
	})
	n.clearTimer = time.AfterFunc(n.clearAfter, func() {
		n.advance(gen, domain.NotificationCleared)
	})
}

func (n *Notifier) advance(gen uint64, phase domain.NotificationPhase) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if gen != n.gen {
		// a newer notification replaced this one
		return
	}
	n.cur.Phase = phase
	if phase == domain.NotificationCleared {
		n.cur.Message = ""
	}
}

func (n *Notifier) Current() domain.Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.cur
}

// Stop cancels any pending phase changes. The current snapshot keeps
// its last phase.
func (n *Notifier) Stop() {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.stopTimers()
	n.gen++
}

func (n *Notifier) stopTimers() {
	if n.fadeTimer != nil {
		n.fadeTimer.Stop()
	}
	if n.clearTimer != nil {
		n.clearTimer.Stop()
	}
}
