package csmasim

//
// Bounded FIFO used for send/receive queues and carrier-sense detection
//

import "github.com/bassosimone/csmasim/internal/optional"

// FrameStorage is a bounded first-in-first-out queue of [Frame]s. When
// Capacity is empty the storage is unbounded. The zero value is invalid;
// use [NewFrameStorage] to construct.
type FrameStorage struct {
	Capacity optional.Value[int]
	frames   []*Frame
}

// NewFrameStorage creates a [FrameStorage] with the given OPTIONAL
// capacity.
func NewFrameStorage(capacity optional.Value[int]) *FrameStorage {
	return &FrameStorage{
		Capacity: capacity,
		frames:   []*Frame{},
	}
}

// IsFull reports whether the storage is at capacity.
func (fs *FrameStorage) IsFull() bool {
	if fs.Capacity.Empty() {
		return false
	}
	return len(fs.frames) >= fs.Capacity.Unwrap()
}

// IsEmpty reports whether the storage holds no frames.
func (fs *FrameStorage) IsEmpty() bool {
	return len(fs.frames) == 0
}

// Count returns the number of frames currently stored.
func (fs *FrameStorage) Count() int {
	return len(fs.frames)
}

// All returns every stored frame, oldest first. The caller must not
// mutate the returned slice.
func (fs *FrameStorage) All() []*Frame {
	return fs.frames
}

// Push appends a frame to the storage. Pushing onto a full storage is a
// silent no-op: this is how the simulator models a buffer overrun (a
// dropped frame), never an exception.
func (fs *FrameStorage) Push(frame *Frame) {
	if fs.IsFull() {
		return
	}
	fs.frames = append(fs.frames, frame)
}

// Pop removes and returns the oldest stored frame, or nil if empty.
func (fs *FrameStorage) Pop() *Frame {
	if fs.IsEmpty() {
		return nil
	}
	frame := fs.frames[0]
	fs.frames = fs.frames[1:]
	return frame
}

// Get peeks at the oldest stored frame without removing it, or returns
// nil if empty.
func (fs *FrameStorage) Get() *Frame {
	if fs.IsEmpty() {
		return nil
	}
	return fs.frames[0]
}

// Remove deletes the first frame matching target from the storage,
// identified by [Frame.IsEqual] rather than pointer identity (the same
// frame id can reach a station as a distinct duplicate object). Reports
// whether a matching frame was found and removed.
func (fs *FrameStorage) Remove(target *Frame) bool {
	for i, f := range fs.frames {
		if f.IsEqual(target) {
			fs.frames = append(fs.frames[:i], fs.frames[i+1:]...)
			return true
		}
	}
	return false
}
