package core

import (
	"math"
	"sync/atomic"
	"time"
)

// Clock is the monotonic timebase for one simulation. It decouples frame
// cadence from simulation cadence with a fixed-step accumulator: the frame
// loop reports real elapsed time through BeginFrame, then drains it in
// whole steps with ConsumeFixedStep.
//
// Getters and ConsumeFixedStep are safe from any goroutine. BeginFrame is
// single-writer: exactly one goroutine may drive frames.
//
//	clock.BeginFrame()
//	for clock.ConsumeFixedStep(clock.TickInterval()) {
//		world.Simulate(clock.TickInterval())
//		clock.Advance()
//	}
type Clock struct {
	tickRate     float64
	tickInterval float64
	start        time.Time
	lastFrame    time.Time

	tickCount atomic.Uint64
	// accumulated seconds, stored as float64 bits for lock-free CAS
	accumulated atomic.Uint64
}

// NewClock creates a clock assuming tickRate ticks per second. The rate
// must be positive and finite.
func NewClock(tickRate float64) (*Clock, error) {
	if !Finite(tickRate) || tickRate <= 0 {
		return nil, ErrInvalidReal
	}

	now := time.Now()
	c := &Clock{
		tickRate:     tickRate,
		tickInterval: 1.0 / tickRate,
		start:        now,
		lastFrame:    now,
	}
	c.accumulated.Store(math.Float64bits(0))
	return c, nil
}

// Advance increments the tick counter by one.
func (c *Clock) Advance() {
	c.tickCount.Add(1)
}

// TickRate returns the configured ticks per second.
func (c *Clock) TickRate() float64 {
	return c.tickRate
}

// TickInterval returns seconds per tick.
func (c *Clock) TickInterval() float64 {
	return c.tickInterval
}

// TickCount returns the total number of ticks advanced.
func (c *Clock) TickCount() uint64 {
	return c.tickCount.Load()
}

// ElapsedSeconds returns wall-clock seconds since the clock was created.
func (c *Clock) ElapsedSeconds() float64 {
	return time.Since(c.start).Seconds()
}

// AccumulatedTime returns the seconds currently banked for fixed stepping.
func (c *Clock) AccumulatedTime() float64 {
	return math.Float64frombits(c.accumulated.Load())
}

// BeginFrame adds the real time elapsed since the previous frame to the
// fixed-step accumulator. Call once at the top of each frame, from the
// single frame-driving goroutine.
func (c *Clock) BeginFrame() {
	now := time.Now()
	c.addAccumulated(now.Sub(c.lastFrame).Seconds())
	c.lastFrame = now
}

// ConsumeFixedStep subtracts step seconds from the accumulator and returns
// true if at least that much time was banked. It returns false for
// step <= 0. The compare-and-swap loop retries against a concurrent
// BeginFrame and never drives the accumulator negative.
func (c *Clock) ConsumeFixedStep(step float64) bool {
	if !Finite(step) || step <= 0 {
		return false
	}

	for {
		oldBits := c.accumulated.Load()
		current := math.Float64frombits(oldBits)
		if current < step {
			return false
		}
		newBits := math.Float64bits(current - step)
		if c.accumulated.CompareAndSwap(oldBits, newBits) {
			return true
		}
	}
}

func (c *Clock) addAccumulated(seconds float64) {
	for {
		oldBits := c.accumulated.Load()
		newBits := math.Float64bits(math.Float64frombits(oldBits) + seconds)
		if c.accumulated.CompareAndSwap(oldBits, newBits) {
			return
		}
	}
}
