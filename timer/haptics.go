package timer

import (
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ayoisaiah/anuloma/internal/breath"
	"github.com/ayoisaiah/anuloma/internal/engine"
)

const (
	bell = "\a"

	// holdPulseGap separates the two pulses that announce a hold.
	holdPulseGap = 150 * time.Millisecond
)

// Haptics rings the terminal bell whenever a phase begins: one pulse before
// an inhale or exhale, two before a hold. It stands in for device vibration
// and does nothing unless enabled.
type Haptics struct {
	w       io.Writer
	gap     time.Duration
	mu      sync.Mutex
	enabled atomic.Bool
}

// NewHaptics returns a bell listener writing to w.
func NewHaptics(w io.Writer, enabled bool) *Haptics {
	h := &Haptics{
		w:   w,
		gap: holdPulseGap,
	}

	h.enabled.Store(enabled)

	return h
}

// SetEnabled follows the haptic feedback preference. It is safe to call from
// any goroutine.
func (h *Haptics) SetEnabled(enabled bool) {
	h.enabled.Store(enabled)
}

// OnEvent implements engine.Listener.
func (h *Haptics) OnEvent(ev engine.Event) {
	e, ok := ev.(engine.PhaseTransitioned)
	if !ok || !h.enabled.Load() {
		return
	}

	h.pulse()

	if e.Phase.Type == breath.Hold {
		time.AfterFunc(h.gap, h.pulse)
	}
}

func (h *Haptics) pulse() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, err := io.WriteString(h.w, bell); err != nil {
		slog.Debug("unable to ring bell", slog.Any("error", err))
	}
}
