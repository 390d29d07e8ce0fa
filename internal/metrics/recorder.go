package metrics

import (
	"time"

	"github.com/vovakirdan/tui-slots/internal/changer"
)

// Recorder counts randomizer events. Attach one per session.
type Recorder struct{}

// NewRecorder creates a recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// OnEvent implements changer.Listener.
func (r *Recorder) OnEvent(e changer.Event) {
	switch e.Kind {
	case changer.EventSelect:
		SelectionsTotal.WithLabelValues(e.Target).Inc()
	case changer.EventSpin:
		SpinsTotal.Inc()
	case changer.EventSettle:
		OutcomesTotal.WithLabelValues(Result(e.Win)).Inc()
	}
}

// Result maps an outcome to its label value.
func Result(win bool) string {
	if win {
		return ResultWin
	}
	return ResultLose
}

// SessionStarted marks a new connected session.
func SessionStarted() {
	SessionsTotal.Inc()
	SessionsActive.Inc()
}

// SessionEnded marks a disconnected session.
func SessionEnded() {
	SessionsActive.Dec()
}

// ObserveLoaderWait records how long the loading screen held for assets.
func ObserveLoaderWait(d time.Duration) {
	LoaderWaitSeconds.Observe(d.Seconds())
}
