package chasebench

import "time"

// Timer is a monotonic nanosecond clock source. A single Timer must not be
// read concurrently by more than one goroutine while a measurement is in
// flight; the Measurer owns it for the duration of one sample.
type Timer struct {
	epoch time.Time
}

// NewTimer constructs a Timer backed by the runtime's monotonic clock
// reading, sanity-checking that two back-to-back reads never go backwards.
// It returns ErrNoMonotonicClock if the host provides none, which the
// Driver treats as fatal.
func NewTimer() (*Timer, error) {
	t := &Timer{epoch: time.Now()}
	prev := t.NowNS()
	for i := 0; i < 8; i++ {
		cur := t.NowNS()
		if cur < prev {
			return nil, ErrNoMonotonicClock
		}
		prev = cur
	}
	return t, nil
}

// NowNS returns a monotonic wall-clock reading in nanoseconds relative to
// the Timer's construction. It never goes backwards on the same Timer.
func (t *Timer) NowNS() uint64 {
	return uint64(time.Since(t.epoch).Nanoseconds())
}
