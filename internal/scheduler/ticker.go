package scheduler

import "time"

// Ticker delivers ticks until it is stopped.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// TickerFunc creates a Ticker firing every d.
type TickerFunc func(d time.Duration) Ticker

type realTicker struct {
	*time.Ticker
}

func (t realTicker) C() <-chan time.Time {
	return t.Ticker.C
}

// NewRealTicker is the TickerFunc backed by time.Ticker.
func NewRealTicker(d time.Duration) Ticker {
	return realTicker{time.NewTicker(d)}
}

// chanOf returns nil for a missing ticker so that selecting on it blocks.
func chanOf(t Ticker) <-chan time.Time {
	if t == nil {
		return nil
	}

	return t.C()
}
