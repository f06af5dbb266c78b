package csmasim

//
// Frame-generating population member hosting a Transmitter
//

import "github.com/bassosimone/csmasim/internal/optional"

// Station generates DATA frames at a configured rate for randomly chosen
// peers and hosts a [Transmitter]. The zero value is invalid; stations
// are constructed internally by [NewMedium].
type Station struct {
	// ID identifies this station within its [Medium].
	ID uint64

	// Location is this station's fixed position on the 2D plane.
	Location Point

	// DetectRange is the maximum distance at which this station can
	// detect another station's transmission.
	DetectRange float64

	// Transmitter is this station's CSMA-backed transmitter.
	Transmitter *Transmitter

	world *World
}

// NewStation creates a [Station] at location, registers it with the
// [Timeline], and wires a fresh [Transmitter] for it.
func NewStation(world *World, id uint64, location Point) *Station {
	cfg := world.Config
	st := &Station{
		ID:          id,
		Location:    location,
		DetectRange: cfg.DetectRange,
		world:       world,
	}
	st.Transmitter = NewTransmitter(world, id, cfg.DataRate, cfg.SendQueueSize, cfg.RecvQueueSize)
	world.Timeline.AddParticipant(st)
	return st
}

// OnTickInit implements [Participant]. A station has nothing to observe
// ahead of its own mutation: the one piece of pre-tick state it depends
// on, detected/received frames, is already finalized for this tick by
// [Medium]'s OnTickInit, which runs before any station's OnTick.
func (st *Station) OnTickInit(step int64) {
	// nothing
}

// OnTick implements [Participant]: progress any in-flight receive, check
// for an ACK timeout, consider offering a new frame, and either continue
// an in-progress transmission or attempt to start a new one.
func (st *Station) OnTick(step int64) {
	tx := st.Transmitter

	tx.ProceedRecv(step)

	if tx.TimeoutOccurred(st.world.Timeline.Current) {
		tx.OnTimeout()
	}

	st.maybeOfferFrame(step)
	okay := tx.OkayToSend(step)

	switch {
	case tx.IsSending():
		tx.ProceedSend(step)
	case tx.WantToSend() && okay:
		tx.Send(step)
	}
}

// maybeOfferFrame offers a new DATA frame to a random peer with
// probability proportional to step and the configured frame rate,
// approximating a Poisson arrival process. When RTS/CTS is enabled, the
// station offers the RTS leg of the handshake instead of the DATA frame
// itself; the DATA frame is assembled later, once the CTS reply arrives
// (see [Transmitter]'s onCTS).
func (st *Station) maybeOfferFrame(step int64) {
	probability := float64(step) * st.world.Config.FrameRate / float64(OneSecond)
	if st.world.Rand.Float64() >= probability {
		return
	}
	peer := st.pickPeer()
	if peer == nil {
		return
	}
	if st.world.Config.WithRTS {
		rts := AssembleFrame(st.world, st, peer, FrameTypeRTS, optional.Some(st.Transmitter.CSMA.CTSDuration))
		st.Transmitter.Push(rts)
		return
	}
	data := AssembleFrame(st.world, st, peer, FrameTypeData, optional.None[int64]())
	st.Transmitter.Push(data)
}

// pickPeer returns a uniformly random station other than st, or nil if
// no other station exists.
func (st *Station) pickPeer() *Station {
	stations := st.world.Medium.Stations
	if len(stations) < 2 {
		return nil
	}
	for {
		candidate := stations[st.world.Rand.Intn(len(stations))]
		if candidate.ID != st.ID {
			return candidate
		}
	}
}

var _ Participant = &Station{}
