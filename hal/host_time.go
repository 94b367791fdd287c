//go:build !tinygo

package hal

import "time"

// hostTime emits one tick per elapsed millisecond of wall time, matching the
// device tick rate. Ticks are dropped rather than queued without bound when
// the consumer falls behind.
type hostTime struct {
	c    chan uint64
	n    uint64
	mark time.Time
	rem  time.Duration
}

func newHostTime() *hostTime {
	return &hostTime{c: make(chan uint64, 1024)}
}

func (t *hostTime) Ticks() <-chan uint64 { return t.c }

const hostTickDur = time.Millisecond

// advance converts wall time since the previous call into ticks. The first
// call emits a single tick so consumers see progress immediately.
func (t *hostTime) advance() {
	now := time.Now()
	if t.mark.IsZero() {
		t.mark = now
		t.rem = 0
		t.emit(1)
		return
	}

	t.rem += now.Sub(t.mark)
	t.mark = now

	ticks := uint64(t.rem / hostTickDur)
	if ticks == 0 {
		return
	}
	t.rem %= hostTickDur
	t.emit(ticks)
}

func (t *hostTime) emit(n uint64) {
	for i := uint64(0); i < n; i++ {
		t.n++
		select {
		case t.c <- t.n:
		default:
		}
	}
}
