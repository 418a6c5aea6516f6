package alerts

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNotifier_HiddenInitially(t *testing.T) {
	n := NewNotifier(0)

	assert.False(t, n.Visible())
}

func TestNotifier_ShowThenAutoDismiss(t *testing.T) {
	n := NewNotifier(20 * time.Millisecond)

	n.Show()
	assert.True(t, n.Visible())

	assert.Eventually(t, func() bool {
		return !n.Visible()
	}, time.Second, 5*time.Millisecond)
}

func TestNotifier_ShowRestartsClock(t *testing.T) {
	n := NewNotifier(50 * time.Millisecond)

	n.Show()
	time.Sleep(30 * time.Millisecond)
	n.Show()
	time.Sleep(30 * time.Millisecond)

	// The second Show rearmed the timer, so the signal is still up.
	assert.True(t, n.Visible())

	assert.Eventually(t, func() bool {
		return !n.Visible()
	}, time.Second, 5*time.Millisecond)
}

func TestNewNotifier_ZeroDurationUsesDefault(t *testing.T) {
	n := NewNotifier(0)

	assert.Equal(t, DefaultVisibleFor, n.visibleFor)
}
