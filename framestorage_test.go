package csmasim

import (
	"testing"

	"github.com/bassosimone/csmasim/internal/optional"
)

func TestFrameStorageUnbounded(t *testing.T) {
	fs := NewFrameStorage(optional.None[int]())
	if !fs.IsEmpty() {
		t.Fatal("expected empty")
	}
	if fs.IsFull() {
		t.Fatal("unbounded storage should never be full")
	}

	for i := 0; i < 100; i++ {
		fs.Push(&Frame{ID: uint64(i)})
	}
	if fs.Count() != 100 {
		t.Fatalf("Count() = %d, want 100", fs.Count())
	}
}

func TestFrameStorageBoundedDropsOnFull(t *testing.T) {
	fs := NewFrameStorage(optional.Some(2))
	fs.Push(&Frame{ID: 1})
	fs.Push(&Frame{ID: 2})
	if !fs.IsFull() {
		t.Fatal("expected full")
	}

	fs.Push(&Frame{ID: 3}) // silent drop
	if fs.Count() != 2 {
		t.Fatalf("Count() = %d, want 2 (push on full storage must be a no-op)", fs.Count())
	}

	got := fs.Get()
	if got == nil || got.ID != 1 {
		t.Fatalf("Get() = %v, want frame 1", got)
	}
}

func TestFrameStoragePopOrder(t *testing.T) {
	fs := NewFrameStorage(optional.None[int]())
	fs.Push(&Frame{ID: 1})
	fs.Push(&Frame{ID: 2})

	first := fs.Pop()
	if first == nil || first.ID != 1 {
		t.Fatalf("Pop() = %v, want frame 1", first)
	}
	if fs.Count() != 1 {
		t.Fatalf("Count() = %d, want 1", fs.Count())
	}

	second := fs.Pop()
	if second == nil || second.ID != 2 {
		t.Fatalf("Pop() = %v, want frame 2", second)
	}

	if fs.Pop() != nil {
		t.Fatal("Pop() on empty storage must return nil")
	}
	if fs.Get() != nil {
		t.Fatal("Get() on empty storage must return nil")
	}
}
