package csmasim

//
// CSMA/CA access-control state machine: DIFS/SIFS countdown, backoff
// window, NAV, allocated-burst window, collision-induced window doubling
//

import "math/rand"

// CSMARNG is a [CSMA] view of a random number generator, abstracted for
// testability (e.g. to inject a deterministic sequence of backoff draws).
type CSMARNG interface {
	// Int63n is like [rand.Rand.Int63n].
	Int63n(n int64) int64
}

var _ CSMARNG = &rand.Rand{}

// CSMA is the per-transmitter access-control state machine described in
// the package's DCF model. The zero value is invalid; use [NewCSMA] to
// construct.
type CSMA struct {
	// DifsAmount is the DCF interframe space, in simulated nanoseconds.
	DifsAmount int64

	// SifsAmount is the short interframe space, in simulated nanoseconds.
	SifsAmount int64

	// SlotTime is the duration of one backoff slot, in simulated
	// nanoseconds.
	SlotTime int64

	// FrameTime is the time to transmit a full-size frame at the
	// transmitter's data rate.
	FrameTime int64

	// CTSDuration is the reserved airtime advertised in an RTS; it covers
	// SIFS + CTS + SIFS + DATA + SIFS + ACK.
	CTSDuration int64

	// CWMin and CWMax bound the contention window.
	CWMin, CWMax int64

	timer         int64
	backoff       int64
	backoffWindow int64
	awaitingDraw  bool
	nav           int64
	allocated     int64

	rng CSMARNG
}

// NewCSMA creates a [CSMA] state machine from the run's configuration and
// a per-station data rate.
func NewCSMA(cfg *Config, dataRate int64, rng CSMARNG) *CSMA {
	frameTime := cfg.FrameBits * OneSecond / dataRate
	// Every frame type is assembled with cfg.FrameBits (see AssembleFrame),
	// so CTS, DATA, and ACK each take frameTime to transmit.
	return &CSMA{
		DifsAmount:    cfg.DifsAmount,
		SifsAmount:    cfg.SifsAmount,
		SlotTime:      cfg.SlotTime,
		FrameTime:     frameTime,
		CTSDuration:   3*cfg.SifsAmount + 3*frameTime,
		CWMin:         cfg.CWMin,
		CWMax:         cfg.CWMax,
		timer:         0,
		backoff:       0,
		backoffWindow: cfg.CWMin,
		awaitingDraw:  true,
		nav:           0,
		allocated:     0,
		rng:           rng,
	}
}

// SetDifs resets the interframe-space timer to DifsAmount.
func (c *CSMA) SetDifs() {
	c.timer = c.DifsAmount
}

// SetSifs resets the interframe-space timer to SifsAmount.
func (c *CSMA) SetSifs() {
	c.timer = c.SifsAmount
}

// SetNAV extends the network allocation vector to at least d nanoseconds.
func (c *CSMA) SetNAV(d int64) {
	if d > c.nav {
		c.nav = d
	}
}

// SetAllocated reserves d nanoseconds of protected airtime after winning
// a CTS exchange.
func (c *CSMA) SetAllocated(d int64) {
	c.allocated = d
}

// NAV returns the current network-allocation-vector remainder.
func (c *CSMA) NAV() int64 {
	return c.nav
}

// BackoffWindow returns the current contention window.
func (c *CSMA) BackoffWindow() int64 {
	return c.backoffWindow
}

// ResetBackoffRange resets the contention window to CWMin, as happens
// after a successful ACK.
func (c *CSMA) ResetBackoffRange() {
	c.backoffWindow = c.CWMin
}

// CollisionOccurred doubles the contention window, capped at CWMax.
func (c *CSMA) CollisionOccurred() {
	c.backoffWindow *= 2
	if c.backoffWindow > c.CWMax {
		c.backoffWindow = c.CWMax
	}
}

// IsDifs reports whether a fresh access attempt for frame should use
// DIFS (true) rather than SIFS (false). Fresh access attempts are DATA
// frames when RTS/CTS is disabled, and RTS frames (the first leg of the
// handshake) when it is enabled; every other frame type is a handshake
// reply and uses SIFS.
func (c *CSMA) IsDifs(withRTS bool, typ FrameType) bool {
	if withRTS {
		return typ == FrameTypeRTS
	}
	return typ == FrameTypeData
}

// CheckAndDecrease is the gating function a [Transmitter] calls on every
// tick, whether or not it has a frame queued, so that its timers keep
// running. It returns true exactly when access to the medium is granted
// this tick.
func (c *CSMA) CheckAndDecrease(isBusy bool, step int64) bool {
	if c.nav > 0 || c.allocated > 0 {
		c.nav = decrementFloor(c.nav, step)
		c.allocated = decrementFloor(c.allocated, step)
		return false
	}
	if isBusy {
		// Freeze: neither the interframe-space timer nor the backoff
		// counter progresses while the medium is busy. This is what
		// guarantees that two contenders with equal residual backoff
		// attempt transmission together.
		return false
	}
	if c.timer > 0 {
		c.timer = decrementFloor(c.timer, step)
		return false
	}
	if c.backoff == 0 && c.awaitingDraw {
		c.backoff = c.rng.Int63n(c.backoffWindow) * c.SlotTime
		c.awaitingDraw = false
	}
	if c.backoff > 0 {
		c.backoff = decrementFloor(c.backoff, step)
		return false
	}
	c.awaitingDraw = true
	return true
}

// decrementFloor decrements v by step, clamped to zero.
func decrementFloor(v, step int64) int64 {
	if v -= step; v < 0 {
		return 0
	}
	return v
}
