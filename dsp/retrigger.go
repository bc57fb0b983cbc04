package dsp

// Retrigger re-fires a voice at a fixed period for a bounded count.
// The zero value is Idle.
type Retrigger struct {
	count     int
	remaining float32
	period    float32
}

// Arm enters Armed with count repetitions every period seconds.
// A non-positive count leaves the scheduler Idle.
func (r *Retrigger) Arm(count int, period float32) {
	if count <= 0 {
		r.Disarm()
		return
	}
	r.count = count
	r.period = period
	r.remaining = period
}

// Disarm returns to Idle
func (r *Retrigger) Disarm() {
	r.count = 0
	r.remaining = 0
}

// SetPeriod changes the period used after the next fire
func (r *Retrigger) SetPeriod(period float32) {
	r.period = period
}

// Step advances the timer by dt. On a fire it reports the overshoot past
// the period boundary, so the caller can start the new note with that much
// time already elapsed.
func (r *Retrigger) Step(dt float32) (carry float32, fired bool) {
	if r.count <= 0 {
		return 0, false
	}

	r.remaining -= dt
	if r.remaining > 0 {
		return 0, false
	}

	carry = -r.remaining
	r.count--
	r.remaining = r.period
	return carry, true
}

// Armed reports whether repetitions remain
func (r *Retrigger) Armed() bool {
	return r.count > 0
}

// Count returns the repetitions left
func (r *Retrigger) Count() int {
	return r.count
}
