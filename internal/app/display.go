package app

import (
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/keybridge/internal/logging"
)

// notifier delivers session UI requests to the tcell screen. Redraw requests
// are coalesced through a one-slot channel drained by the main loop.
type notifier struct {
	screen tcell.Screen
	log    *logging.Logger

	redraw chan struct{}
}

func newNotifier(screen tcell.Screen, log *logging.Logger) *notifier {
	return &notifier{
		screen: screen,
		log:    log.WithComponent("display"),
		redraw: make(chan struct{}, 1),
	}
}

// RequestRedraw schedules a repaint. Duplicate requests collapse.
func (n *notifier) RequestRedraw() {
	select {
	case n.redraw <- struct{}{}:
	default:
	}
}

// AdjustFontSize is a no-op on a desktop terminal; the hosting emulator owns
// the font.
func (n *notifier) AdjustFontSize(delta int) {
	n.log.Debug("font size change %+d ignored on this display", delta)
}

// TriggerHaptic substitutes the terminal bell for vibration.
func (n *notifier) TriggerHaptic() {
	n.screen.Beep()
}

// ResetScroll is satisfied trivially: the view always tracks the output
// tail.
func (n *notifier) ResetScroll() {}
