package eyedrop

import "time"

// TickSources describes the three periodic triggers of a running round.
type TickSources struct {
	SimRate   int           // Simulation ticks per second
	Countdown time.Duration // Countdown period, one second
	Spawn     time.Duration // Spawn period for the difficulty
}

// Handlers are the tick entry points a Scheduler drives.
type Handlers interface {
	SimTick()
	CountdownTick()
	SpawnTick()
}

// Scheduler delivers ticks to handlers until stopped. Stop must take effect
// before it returns: no handler may run afterwards.
type Scheduler interface {
	Start(src TickSources, h Handlers)
	Stop()
	Running() bool
}

// FrameClock is a Scheduler driven by host frames. Each Advance counts one
// frame and fires however many ticks of each source have come due since
// Start, derived from the frame number so periods never drift.
type FrameClock struct {
	frameRate int

	src     TickSources
	h       Handlers
	running bool

	frames    int64
	sims      int64
	countdown int64
	spawns    int64
}

// NewFrameClock creates a stopped clock for a host running at frameRate.
func NewFrameClock(frameRate int) *FrameClock {
	if frameRate <= 0 {
		frameRate = 60
	}
	return &FrameClock{frameRate: frameRate}
}

// Start resets the frame counter and begins delivering ticks to h.
func (c *FrameClock) Start(src TickSources, h Handlers) {
	c.src = src
	c.h = h
	c.frames = 0
	c.sims = 0
	c.countdown = 0
	c.spawns = 0
	c.running = true
}

// Stop halts delivery. Ticks still due in the current Advance are dropped.
func (c *FrameClock) Stop() {
	c.running = false
}

// Running reports whether the clock is delivering ticks.
func (c *FrameClock) Running() bool {
	return c.running
}

// FrameRate returns the host frame rate.
func (c *FrameClock) FrameRate() int {
	return c.frameRate
}

// Frames returns the number of frames advanced since Start.
func (c *FrameClock) Frames() int64 {
	return c.frames
}

// Elapsed returns the simulated time since Start.
func (c *FrameClock) Elapsed() time.Duration {
	return time.Duration(c.frames) * time.Second / time.Duration(c.frameRate)
}

// Advance moves the clock one frame forward and fires due ticks in the order
// spawn, simulation, countdown. A handler that stops the clock ends delivery
// immediately.
func (c *FrameClock) Advance() {
	if !c.running {
		return
	}
	c.frames++
	elapsed := c.Elapsed()

	if c.src.Spawn > 0 {
		due := int64(elapsed / c.src.Spawn)
		for c.spawns < due && c.running {
			c.spawns++
			c.h.SpawnTick()
		}
	}

	if c.src.SimRate > 0 {
		due := c.frames * int64(c.src.SimRate) / int64(c.frameRate)
		for c.sims < due && c.running {
			c.sims++
			c.h.SimTick()
		}
	}

	if c.src.Countdown > 0 {
		due := int64(elapsed / c.src.Countdown)
		for c.countdown < due && c.running {
			c.countdown++
			c.h.CountdownTick()
		}
	}
}

var _ Scheduler = (*FrameClock)(nil)
