package alerts

import (
	"sync"
	"time"
)

// DefaultVisibleFor is how long the success notification stays visible
// before auto-dismissing.
const DefaultVisibleFor = 5 * time.Second

// Notifier tracks the transient "alert created" success signal. Show makes
// it visible and schedules the auto-dismiss; a later Show restarts the clock.
type Notifier struct {
	mu         sync.Mutex
	visible    bool
	visibleFor time.Duration
	timer      *time.Timer
}

// NewNotifier returns a notifier with the given auto-dismiss delay. A zero
// duration uses DefaultVisibleFor.
func NewNotifier(visibleFor time.Duration) *Notifier {
	if visibleFor <= 0 {
		visibleFor = DefaultVisibleFor
	}
	return &Notifier{visibleFor: visibleFor}
}

// Show makes the success signal visible and arms the auto-dismiss timer.
func (n *Notifier) Show() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.visible = true
	if n.timer != nil {
		n.timer.Stop()
	}
	n.timer = time.AfterFunc(n.visibleFor, n.hide)
}

func (n *Notifier) hide() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.visible = false
}

// Visible reports whether the success signal is currently showing.
func (n *Notifier) Visible() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.visible
}
