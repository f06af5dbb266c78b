package csmasim

//
// Per-station coupling of CSMA with send/receive queues; implements the
// RTS/CTS/DATA/ACK handshake and timeout handling
//

import "github.com/bassosimone/csmasim/internal/optional"

// FrameRecord is an upserted per-type tally of frames sent or received.
// The original tool's equivalent both incremented an existing record and
// unconditionally appended a new one; this is treated as a bug (see
// DESIGN.md) and fixed here to a straightforward update-or-insert.
type FrameRecord struct {
	Type  FrameType
	Count int64
	Bytes int64
}

// Transmitter couples a [CSMA] state machine with a station's send,
// receive, and detected-frame queues, and implements the RTS/CTS/DATA/ACK
// handshake. The zero value is invalid; use [NewTransmitter] to construct.
type Transmitter struct {
	// StationID is the owning station's id.
	StationID uint64

	// DataRate is this transmitter's rate, in bits per second.
	DataRate int64

	// WithRTS enables the RTS/CTS handshake ahead of DATA frames.
	WithRTS bool

	// CSMA is this transmitter's access-control state machine.
	CSMA *CSMA

	// SendFrames, RecvFrames, and DetectedFrames are this transmitter's
	// three queues: frames awaiting transmission, frames being received,
	// and every frame currently overlapping this station (used to detect
	// talkover).
	SendFrames, RecvFrames, DetectedFrames *FrameStorage

	// Timeout is how long this transmitter waits for an ACK/CTS reply
	// before abandoning it.
	Timeout int64

	// Recv and Sent are upserted per-type counters of successfully
	// received and transmitted frames.
	Recv, Sent []FrameRecord

	// Collisions counts ACK-timeout events.
	Collisions int64

	// Wasted accumulates the airtime lost to ACK timeouts.
	Wasted int64

	recvCurrent float64
	sentCurrent float64
	lastSent    *Frame

	world *World
}

// NewTransmitter creates a [Transmitter] for a station with the given
// data rate and queue sizes (zero means unbounded).
func NewTransmitter(world *World, stationID uint64, dataRate int64, sendQueueSize, recvQueueSize int) *Transmitter {
	csma := NewCSMA(world.Config, dataRate, world.Rand)
	return &Transmitter{
		StationID:      stationID,
		DataRate:       dataRate,
		WithRTS:        world.Config.WithRTS,
		CSMA:           csma,
		SendFrames:     NewFrameStorage(queueCapacity(sendQueueSize)),
		RecvFrames:     NewFrameStorage(queueCapacity(recvQueueSize)),
		DetectedFrames: NewFrameStorage(optional.None[int]()),
		Timeout:        csma.SifsAmount + 2*csma.FrameTime,
		Recv:           []FrameRecord{},
		Sent:           []FrameRecord{},
		world:          world,
	}
}

func queueCapacity(size int) optional.Value[int] {
	if size <= 0 {
		return optional.None[int]()
	}
	return optional.Some(size)
}

func upsertRecord(records []FrameRecord, typ FrameType, bytes int64) []FrameRecord {
	for i := range records {
		if records[i].Type == typ {
			records[i].Count++
			records[i].Bytes += bytes
			return records
		}
	}
	return append(records, FrameRecord{Type: typ, Count: 1, Bytes: bytes})
}

// OnDetect is the receive-path entry point: every frame whose propagation
// front reaches this station is reported here, whether or not it is
// addressed to this station.
func (tx *Transmitter) OnDetect(frame *Frame) {
	tx.DetectedFrames.Push(frame)
	if tx.TalkoverDetected() {
		return
	}
	switch {
	case frame.Type == FrameTypeCTS || frame.Type == FrameTypeRTS:
		// Heard by everyone, so that NAV can be updated even when the
		// frame isn't addressed here.
		tx.RecvFrames.Push(frame)
	case frame.ReceiverID == tx.StationID:
		tx.RecvFrames.Push(frame)
	default:
		// Overheard traffic not addressed here: drop.
	}
}

// TalkoverDetected reports whether more than one frame currently overlaps
// this station, i.e. a collision is in progress.
func (tx *Transmitter) TalkoverDetected() bool {
	return tx.DetectedFrames.Count() > 1
}

// IsMediumBusy reports whether any frame currently overlaps this station.
func (tx *Transmitter) IsMediumBusy() bool {
	return !tx.DetectedFrames.IsEmpty()
}

// ProceedRecv advances this transmitter's in-flight receive by step
// simulated nanoseconds.
func (tx *Transmitter) ProceedRecv(step int64) {
	frame := tx.RecvFrames.Get()
	if frame == nil {
		return
	}

	switch {
	case tx.DetectedFrames.IsEmpty():
		// The in-flight frame vanished without completion.
		tx.onReceiveFailure()
	case tx.TalkoverDetected():
		// Talkover: byte progress is halted until the head changes.
	case !tx.DetectedFrames.Get().IsEqual(frame):
		// The frame that outlived ours is the one that collided with it.
		tx.onReceiveFailure()
	default:
		tx.recvCurrent += float64(step) * float64(tx.DataRate) / float64(OneSecond)
		if tx.recvCurrent >= float64(frame.Size) {
			tx.onReceiveSuccess()
		}
	}
}

func (tx *Transmitter) onReceiveFailure() {
	tx.RecvFrames.Pop()
	tx.recvCurrent = 0
}

func (tx *Transmitter) onReceiveSuccess() {
	frame := tx.RecvFrames.Pop()
	if frame.IsDuplicate {
		tx.recvCurrent = 0
		return
	}
	tx.Recv = upsertRecord(tx.Recv, frame.Type, frame.Size/8)
	tx.recvCurrent = 0

	switch frame.Type {
	case FrameTypeData:
		tx.onData(frame)
	case FrameTypeACK:
		tx.onAck()
	case FrameTypeRTS:
		tx.onRTS(frame)
	case FrameTypeCTS:
		tx.onCTS(frame)
	}
}

func (tx *Transmitter) onData(frame *Frame) {
	tx.CSMA.SetSifs()
	ackFrame := AssembleFrame(tx.world, tx.world.Medium.stationByID(frame.ReceiverID),
		tx.world.Medium.stationByID(frame.SenderID), FrameTypeACK, optional.None[int64]())
	tx.Push(ackFrame)
	tx.lastSent = nil
}

func (tx *Transmitter) onAck() {
	tx.CSMA.ResetBackoffRange()
	tx.CSMA.SetDifs()
	tx.lastSent = nil
}

func (tx *Transmitter) onRTS(frame *Frame) {
	if frame.ReceiverID == tx.StationID {
		tx.CSMA.SetSifs()
		ctsFrame := AssembleFrame(tx.world, tx.world.Medium.stationByID(frame.ReceiverID),
			tx.world.Medium.stationByID(frame.SenderID), FrameTypeCTS, optional.Some(tx.CSMA.CTSDuration))
		tx.Push(ctsFrame)
	} else {
		tx.CSMA.SetNAV(frame.Duration.Unwrap())
	}
}

func (tx *Transmitter) onCTS(frame *Frame) {
	if frame.ReceiverID == tx.StationID {
		tx.CSMA.ResetBackoffRange()
		tx.CSMA.SetSifs()
		dataFrame := AssembleFrame(tx.world, tx.world.Medium.stationByID(frame.ReceiverID),
			tx.world.Medium.stationByID(frame.SenderID), FrameTypeData, optional.None[int64]())
		tx.Push(dataFrame)
		tx.CSMA.SetAllocated(frame.Duration.Unwrap())
		tx.lastSent = nil
	} else {
		tx.CSMA.SetNAV(frame.Duration.Unwrap())
	}
}

// Push enqueues a frame for transmission. A fresh access attempt
// (DIFS-gated) pending at the head of the queue is pre-empted by a
// handshake reply (SIFS-gated): the new reply supersedes it.
func (tx *Transmitter) Push(frame *Frame) {
	if tx.CSMA.IsDifs(tx.WithRTS, frame.Type) {
		tx.CSMA.SetDifs()
	} else {
		tx.CSMA.SetSifs()
	}

	if queued := tx.SendFrames.Get(); queued != nil && tx.CSMA.IsDifs(tx.WithRTS, queued.Type) {
		tx.SendFrames.Pop()
	}
	tx.SendFrames.Push(frame)
}

// WantToSend reports whether a frame is queued for transmission.
func (tx *Transmitter) WantToSend() bool {
	return tx.SendFrames.Get() != nil
}

// IsAcked reports whether the last frame sent that expected a reply has
// been acknowledged (i.e. no reply is currently outstanding).
func (tx *Transmitter) IsAcked() bool {
	return tx.lastSent == nil
}

// OkayToSend reports whether this transmitter may begin sending this
// tick. It always runs the CSMA state machine forward by step, even when
// it ultimately returns false, because the NAV and allocated-burst
// timers decay on every tick regardless of whether this station has
// anything queued to send.
func (tx *Transmitter) OkayToSend(step int64) bool {
	isBusy := tx.IsMediumBusy()
	granted := tx.CSMA.CheckAndDecrease(isBusy, step)
	return tx.IsAcked() && !isBusy && granted
}

// Send departs the head of the send queue and progresses its bytes for
// this tick.
func (tx *Transmitter) Send(step int64) {
	frame := tx.SendFrames.Get()
	frame.Depart()
	if frame.Type != FrameTypeACK {
		// ACKs don't expect a reply.
		tx.lastSent = frame
	}
	tx.ProceedSend(step)
}

// IsSending reports whether a frame is mid-transmission.
func (tx *Transmitter) IsSending() bool {
	return tx.sentCurrent != 0
}

// ProceedSend advances the in-flight transmission by step simulated
// nanoseconds, completing it once its full size has been sent.
func (tx *Transmitter) ProceedSend(step int64) {
	frame := tx.SendFrames.Get()
	if frame == nil {
		return
	}
	tx.sentCurrent += float64(step) * float64(tx.DataRate) / float64(OneSecond)
	if tx.sentCurrent > float64(frame.Size) {
		frame.Vanish()
		tx.Sent = upsertRecord(tx.Sent, frame.Type, frame.Size/8)
		tx.sentCurrent = 0
		tx.SendFrames.Pop()
	}
}

// TimeoutOccurred reports whether the outstanding reply has exceeded
// Timeout as of current, clearing it if so.
func (tx *Transmitter) TimeoutOccurred(current int64) bool {
	if tx.IsAcked() {
		return false
	}
	if tx.lastSent.SentTick()+tx.Timeout < current {
		tx.lastSent = nil
		return true
	}
	return false
}

// OnTimeout handles an ACK-timeout event: it counts as a collision from
// this transmitter's perspective (it never learns whether a collision or
// a vanished receiver caused the silence) and the lost airtime is tallied
// as waste.
func (tx *Transmitter) OnTimeout() {
	tx.Collisions++
	tx.Wasted += tx.Timeout
	tx.CSMA.CollisionOccurred()
}
