package csmasim

//
// Logical clock driving the simulation
//

// Participant is anything the [Timeline] drives, tick by tick.
type Participant interface {
	// OnTickInit lets the participant observe pre-tick state, before any
	// participant (including itself) has had a chance to mutate it.
	OnTickInit(step int64)

	// OnTick lets the participant mutate state for the current tick.
	OnTick(step int64)
}

// Timeline is a monotonically increasing logical clock, measured in
// simulated nanoseconds, that drives a set of registered [Participant]s
// one tick at a time up to a configured horizon. The zero value is
// invalid; use [NewTimeline] to construct.
type Timeline struct {
	// Current is the current tick, in simulated nanoseconds.
	Current int64

	// Horizon is the tick at which [Timeline.Run] stops.
	Horizon int64

	// Step is the number of simulated nanoseconds [Timeline.Run] advances
	// Current by on every iteration.
	Step int64

	afterTick    func(*Timeline)
	participants []Participant
}

// NewTimeline creates a new [Timeline] with the given step size and horizon,
// both in simulated nanoseconds.
func NewTimeline(step, horizon int64) *Timeline {
	return &Timeline{
		Current:      0,
		Horizon:      horizon,
		Step:         step,
		afterTick:    nil,
		participants: []Participant{},
	}
}

// AddParticipant registers a participant with the [Timeline].
func (tl *Timeline) AddParticipant(p Participant) {
	tl.participants = append(tl.participants, p)
}

// RemoveParticipant unregisters a participant from the [Timeline]. It is
// a no-op if the participant is not currently registered.
func (tl *Timeline) RemoveParticipant(p Participant) {
	for i, registered := range tl.participants {
		if registered == p {
			tl.participants = append(tl.participants[:i], tl.participants[i+1:]...)
			return
		}
	}
}

// SetAfterTick sets an optional hook invoked once per tick, after every
// participant's OnTick has run and before Current is advanced.
func (tl *Timeline) SetAfterTick(cb func(*Timeline)) {
	tl.afterTick = cb
}

// Run advances the [Timeline] one step at a time until Current reaches
// Horizon. Each tick runs in two phases so that every participant
// observes a consistent pre-tick state before any participant mutates it:
// first OnTickInit is called on every participant, then OnTick is called
// on every participant. Participants may unregister themselves (typically:
// a frame that vanishes) during either phase, so each phase iterates over
// a snapshot of the registered participants taken at the start of the tick.
func (tl *Timeline) Run() {
	for tl.Current < tl.Horizon {
		snapshot := make([]Participant, len(tl.participants))
		copy(snapshot, tl.participants)

		for _, p := range snapshot {
			p.OnTickInit(tl.Step)
		}
		for _, p := range snapshot {
			p.OnTick(tl.Step)
		}

		if tl.afterTick != nil {
			tl.afterTick(tl)
		}
		tl.Current += tl.Step
	}
}
