package csmasim

//
// Registry of stations and in-flight frames; owns the shared 2D space
//

import "math"

// Medium holds every [Station]'s position and the set of frames
// currently in flight, and is the only entity in the simulation that
// spans participants: it is responsible for delivering a frame to every
// station its propagation front newly reaches. The zero value is
// invalid; use [NewMedium] to construct.
type Medium struct {
	// Stations is every station sharing this medium, in placement order.
	Stations []*Station

	// Frames is every frame currently in flight.
	Frames []*Frame

	byID map[uint64]*Station
}

// NewMedium creates a [Medium] for world, places world.Config.StationCount
// stations (star or uniform-random, per world.Config.StarTopology), and
// registers the medium itself with the [Timeline] so it can deliver
// frame arrivals every tick.
func NewMedium(world *World) *Medium {
	m := &Medium{
		Stations: []*Station{},
		Frames:   []*Frame{},
		byID:     map[uint64]*Station{},
	}
	world.Medium = m

	for i := 0; i < world.Config.StationCount; i++ {
		loc := placementFor(world, i)
		st := NewStation(world, uint64(i), loc)
		m.Stations = append(m.Stations, st)
		m.byID[st.ID] = st
	}

	world.Timeline.AddParticipant(m)
	return m
}

// placementFor computes the location of the i-th station. With star
// topology, station 0 is the hub at the center of the area and every
// other station sits on a circle around it; otherwise stations are
// placed uniformly at random within the area.
func placementFor(world *World, i int) Point {
	cfg := world.Config
	center := Point{X: float64(cfg.AreaSize) / 2, Y: float64(cfg.AreaSize) / 2}

	if !cfg.StarTopology {
		return Point{
			X: world.Rand.Float64() * float64(cfg.AreaSize),
			Y: world.Rand.Float64() * float64(cfg.AreaSize),
		}
	}
	if i == 0 {
		return center
	}
	leaves := cfg.StationCount - 1
	if leaves <= 0 {
		return center
	}
	radius := float64(cfg.AreaSize) / 2 * 0.9
	angle := 2 * math.Pi * float64(i-1) / float64(leaves)
	return Point{
		X: center.X + radius*math.Cos(angle),
		Y: center.Y + radius*math.Sin(angle),
	}
}

// stationByID resolves a station by id. It panics if the id is unknown,
// which would indicate a programming error (a frame referencing a
// station that was never registered).
func (m *Medium) stationByID(id uint64) *Station {
	st, ok := m.byID[id]
	if !ok {
		panic("csmasim: unknown station id")
	}
	return st
}

// addFrame registers a departed frame as in flight.
func (m *Medium) addFrame(f *Frame) {
	m.Frames = append(m.Frames, f)
}

// removeFrame unregisters a frame. It is a no-op if the frame is not
// currently registered (e.g. called twice due to Vanish's idempotence).
func (m *Medium) removeFrame(f *Frame) {
	for i, registered := range m.Frames {
		if registered == f {
			m.Frames = append(m.Frames[:i], m.Frames[i+1:]...)
			return
		}
	}
}

// OnTickInit implements [Participant]. Delivering this tick's frame
// arrivals here, ahead of every station's OnTick, is what lets stations
// observe a consistent pre-tick view of the medium regardless of
// registration order: whichever station's OnTick runs first in this
// tick's OnTick phase sees exactly the same DetectedFrames state as the
// last one.
func (m *Medium) OnTickInit(step int64) {
	snapshot := make([]*Frame, len(m.Frames))
	copy(snapshot, m.Frames)

	for _, f := range snapshot {
		if !f.HasDeparted() || f.HasVanished() {
			continue
		}
		sender := m.stationByID(f.SenderID)
		front := f.Moved()
		for _, st := range m.Stations {
			if st.ID == f.SenderID || f.wasNotified(st.ID) {
				continue
			}
			d := Distance(st.Location, sender.Location)
			if d <= front && d <= f.MaxRange {
				f.Arrive(st)
				f.markNotified(st.ID)
			}
		}
	}
}

// OnTick implements [Participant]: frames whose propagation front has
// fully reached MaxRange have nothing left to deliver and vanish.
func (m *Medium) OnTick(step int64) {
	snapshot := make([]*Frame, len(m.Frames))
	copy(snapshot, m.Frames)

	for _, f := range snapshot {
		if !f.HasDeparted() || f.HasVanished() {
			continue
		}
		if f.Moved() >= f.MaxRange {
			f.Vanish()
		}
	}
}

var _ Participant = &Medium{}
