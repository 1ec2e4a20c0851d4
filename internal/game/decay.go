package game

import "time"

// DecayScheduler is a best-effort fixed-rate ticker driven by frame time.
// Once the accumulator reaches the interval it applies one decay step and
// resets to zero; any excess is dropped, so a stalled frame never produces
// more than one step.
type DecayScheduler struct {
	interval time.Duration
	elapsed  time.Duration
	steps    int
}

func NewDecayScheduler(interval time.Duration) *DecayScheduler {
	return &DecayScheduler{interval: interval}
}

// Advance accumulates dt and reports whether a decay step was applied to p.
func (d *DecayScheduler) Advance(dt time.Duration, p *Pet) bool {
	if dt > 0 {
		d.elapsed += dt
	}
	if d.interval <= 0 || d.elapsed < d.interval {
		return false
	}
	p.Apply(decayEffect)
	d.elapsed = 0
	d.steps++
	return true
}

// Elapsed is the time accumulated toward the next step.
func (d *DecayScheduler) Elapsed() time.Duration { return d.elapsed }

// Steps counts decay steps applied since construction.
func (d *DecayScheduler) Steps() int { return d.steps }
