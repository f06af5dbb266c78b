package csmasim

//
// In-flight packet model
//

import "github.com/bassosimone/csmasim/internal/optional"

// FrameType is the tagged variant identifying a [Frame]'s role in the
// RTS/CTS/DATA/ACK handshake. Using a tagged variant here, rather than
// dispatching on a type string, lets the transmitter match exhaustively.
type FrameType int

const (
	// FrameTypeData is a data-carrying frame.
	FrameTypeData FrameType = iota

	// FrameTypeRTS is a request-to-send frame.
	FrameTypeRTS

	// FrameTypeCTS is a clear-to-send frame.
	FrameTypeCTS

	// FrameTypeACK is an acknowledgement frame.
	FrameTypeACK
)

// String renders typ for logging.
func (typ FrameType) String() string {
	switch typ {
	case FrameTypeData:
		return "DATA"
	case FrameTypeRTS:
		return "RTS"
	case FrameTypeCTS:
		return "CTS"
	case FrameTypeACK:
		return "ACK"
	default:
		return "UNKNOWN"
	}
}

// VisualizationHook is an optional collaborator a [Frame] invokes on
// every tick it is in flight. It exists so that a visualization can
// observe a frame's propagation front without the frame itself knowing
// anything about rendering; see the "mixin re-expressed as composition"
// note. The go-echarts snapshot in cmd/csmasim does not use it: it draws
// only the final station layout.
type VisualizationHook interface {
	OnFrameTick(f *Frame)
}

// Frame is an in-flight packet traveling from a sender to a receiver
// across the [Medium]'s 2D plane. The zero value is invalid; use
// [AssembleFrame] to construct one.
type Frame struct {
	// ID identifies this frame. Duplicates share the ID of the frame they
	// were duplicated from; consumers must use [Frame.IsEqual], not
	// pointer identity, to compare frames.
	ID uint64

	// SenderID and ReceiverID are the non-owning station ids of this
	// frame's endpoints.
	SenderID   uint64
	ReceiverID uint64

	// Type is this frame's role in the handshake.
	Type FrameType

	// Size is this frame's size, in bits.
	Size int64

	// Duration is the OPTIONAL reserved-airtime hint carried by RTS/CTS
	// frames, used to set the receivers' NAV.
	Duration optional.Value[int64]

	// PropagationSpeed is the speed, in meters per simulated nanosecond,
	// at which this frame's propagation front advances.
	PropagationSpeed float64

	// MaxRange is the maximum distance at which this frame can be detected.
	MaxRange float64

	// IsDuplicate marks a frame created by [Frame.Duplicate].
	IsDuplicate bool

	// Collision marks a frame that overlapped with another at a receiver.
	// This is visualization-only bookkeeping; the actual collision
	// handling lives in the [Transmitter].
	Collision bool

	sentTick     optional.Value[int64]
	vanishedTick optional.Value[int64]
	notified     map[uint64]bool

	world *World
	hook  VisualizationHook
}

// AssembleFrame creates a new [Frame] travelling from sender to receiver.
// Frame ids are minted monotonically by the world (see [World.NewFrameID]);
// the original tool's uniform-random sampling in [0, 10^6) is not used
// because it cannot guarantee uniqueness (see spec's open question).
func AssembleFrame(
	world *World,
	sender *Station,
	receiver *Station,
	typ FrameType,
	duration optional.Value[int64],
) *Frame {
	return &Frame{
		ID:               world.NewFrameID(),
		SenderID:         sender.ID,
		ReceiverID:       receiver.ID,
		Type:             typ,
		Size:             world.Config.FrameBits,
		Duration:         duration,
		PropagationSpeed: world.Config.PropagationSpeed,
		MaxRange:         world.Config.DetectRange,
		IsDuplicate:      false,
		Collision:        false,
		sentTick:         optional.None[int64](),
		vanishedTick:     optional.None[int64](),
		notified:         map[uint64]bool{},
		world:            world,
	}
}

// Duplicate returns a new [Frame] sharing this frame's id and parameters
// but with IsDuplicate set to true.
func (f *Frame) Duplicate() *Frame {
	dup := &Frame{
		ID:               f.ID,
		SenderID:         f.SenderID,
		ReceiverID:       f.ReceiverID,
		Type:             f.Type,
		Size:             f.Size,
		Duration:         f.Duration,
		PropagationSpeed: f.PropagationSpeed,
		MaxRange:         f.MaxRange,
		IsDuplicate:      true,
		sentTick:         optional.None[int64](),
		vanishedTick:     optional.None[int64](),
		notified:         map[uint64]bool{},
		world:            f.world,
	}
	return dup
}

// IsEqual reports whether two frames share the same id. Frame ids are not
// guaranteed globally unique, so this is the only comparison consumers
// should rely on.
func (f *Frame) IsEqual(other *Frame) bool {
	return other != nil && f.ID == other.ID
}

// SetVisualizationHook attaches an OPTIONAL visualization collaborator.
func (f *Frame) SetVisualizationHook(hook VisualizationHook) {
	f.hook = hook
}

// HasDeparted reports whether [Frame.Depart] has been called.
func (f *Frame) HasDeparted() bool {
	return !f.sentTick.Empty()
}

// HasVanished reports whether [Frame.Vanish] has been called.
func (f *Frame) HasVanished() bool {
	return !f.vanishedTick.Empty()
}

// SentTick returns the tick at which this frame departed. Only valid
// after [Frame.HasDeparted].
func (f *Frame) SentTick() int64 {
	return f.sentTick.Unwrap()
}

// VanishedTick returns the tick at which this frame vanished. Only valid
// after [Frame.HasVanished].
func (f *Frame) VanishedTick() int64 {
	return f.vanishedTick.Unwrap()
}

// Depart registers the frame with the [Timeline] and the [Medium] and
// records its departure tick.
func (f *Frame) Depart() {
	f.world.Timeline.AddParticipant(f)
	f.world.Medium.addFrame(f)
	f.sentTick = optional.Some(f.world.Timeline.Current)
}

// Arrive notifies a station's transmitter that this frame's propagation
// front has reached it.
func (f *Frame) Arrive(station *Station) {
	station.Transmitter.OnDetect(f)
}

// Vanish records the vanish tick, unregisters the frame from the
// [Medium], and evicts it from every station's detected-frames queue so
// that carrier sense reflects only propagation fronts that are still
// overlapping a station. It is idempotent: calling it more than once
// (e.g. once from [Transmitter.ProceedSend] and once from [Medium]'s
// propagation-horizon check) has no further effect.
func (f *Frame) Vanish() {
	if f.HasVanished() {
		return
	}
	f.vanishedTick = optional.Some(f.world.Timeline.Current)
	f.world.Medium.removeFrame(f)
	for _, st := range f.world.Medium.Stations {
		st.Transmitter.DetectedFrames.Remove(f)
	}
	f.world.Timeline.RemoveParticipant(f)
}

// Collide marks the frame as collided. Visualization only; the
// [Transmitter] independently detects and handles the collision via
// talkover/ACK-timeout.
func (f *Frame) Collide() {
	f.Collision = true
}

// Moved returns how far, in meters, this frame's propagation front has
// advanced from the sender, capped at MaxRange.
func (f *Frame) Moved() float64 {
	if !f.HasDeparted() {
		return 0
	}
	elapsed := float64(f.world.Timeline.Current - f.SentTick())
	moved := elapsed * f.PropagationSpeed
	if moved > f.MaxRange {
		return f.MaxRange
	}
	return moved
}

// Position returns this frame's current location, interpolated along the
// sender-to-receiver segment according to [Frame.Moved].
func (f *Frame) Position(sender, receiver Point) Point {
	total := Distance(sender, receiver)
	if total == 0 {
		return sender
	}
	frac := f.Moved() / total
	return Point{
		X: sender.X + (receiver.X-sender.X)*frac,
		Y: sender.Y + (receiver.Y-sender.Y)*frac,
	}
}

// wasNotified reports whether stationID has already been delivered this
// frame, and markNotified marks it as delivered.
func (f *Frame) wasNotified(stationID uint64) bool {
	return f.notified[stationID]
}

func (f *Frame) markNotified(stationID uint64) {
	f.notified[stationID] = true
}

// OnTick implements [Participant]. A frame has nothing to mutate on its
// own; it only gives its OPTIONAL visualization hook a chance to observe
// the current propagation front.
func (f *Frame) OnTick(step int64) {
	if !f.HasDeparted() || f.hook == nil {
		return
	}
	f.hook.OnFrameTick(f)
}

// OnTickInit implements [Participant]; frames have no pre-tick observation
// to perform.
func (f *Frame) OnTickInit(step int64) {
	// nothing: propagation state is derived, not cached
}

var _ Participant = &Frame{}
