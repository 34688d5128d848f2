package core

import "time"

// FixedStep throttles simulation updates to a steady rate independent of the
// frame rate of the caller.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given rate per second.
func NewFixedStep(rate int) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetRate(rate)
	fs.accumulator = fs.step
	return fs
}

// SetRate changes the step rate. Non-positive rates fall back to 60.
func (f *FixedStep) SetRate(rate int) {
	if rate <= 0 {
		rate = 60
	}
	f.step = time.Second / time.Duration(rate)
}

// Rate returns the configured steps per second.
func (f *FixedStep) Rate() int { return int(time.Second / f.step) }

// ShouldStep reports whether the simulation should advance by one step.
func (f *FixedStep) ShouldStep() bool {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	f.accumulator += now.Sub(f.last)
	f.last = now
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		return true
	}
	return false
}
