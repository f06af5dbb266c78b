package csmasim

import (
	"math/rand"
	"testing"

	"pgregory.net/rapid"
)

func newTestCSMA(rng CSMARNG) *CSMA {
	cfg := DefaultConfig()
	return NewCSMA(cfg, cfg.DataRate, rng)
}

func TestCSMAResetAndCollision(t *testing.T) {
	cfg := DefaultConfig()
	csma := newTestCSMA(rand.New(rand.NewSource(1)))

	if csma.BackoffWindow() != cfg.CWMin {
		t.Fatalf("initial BackoffWindow() = %d, want %d", csma.BackoffWindow(), cfg.CWMin)
	}

	csma.CollisionOccurred()
	if csma.BackoffWindow() != cfg.CWMin*2 {
		t.Fatalf("BackoffWindow() after one collision = %d, want %d", csma.BackoffWindow(), cfg.CWMin*2)
	}

	for i := 0; i < 20; i++ {
		csma.CollisionOccurred()
	}
	if csma.BackoffWindow() != cfg.CWMax {
		t.Fatalf("BackoffWindow() must be capped at CWMax, got %d", csma.BackoffWindow())
	}

	csma.ResetBackoffRange()
	if csma.BackoffWindow() != cfg.CWMin {
		t.Fatalf("BackoffWindow() after reset = %d, want %d", csma.BackoffWindow(), cfg.CWMin)
	}
}

func TestCSMANAVBlocksUntilDecayed(t *testing.T) {
	csma := newTestCSMA(rand.New(rand.NewSource(1)))
	csma.SetNAV(1000)

	if granted := csma.CheckAndDecrease(false, 400); granted {
		t.Fatal("access must not be granted while NAV is pending")
	}
	if csma.NAV() != 600 {
		t.Fatalf("NAV() = %d, want 600", csma.NAV())
	}

	csma.CheckAndDecrease(false, 600)
	if csma.NAV() != 0 {
		t.Fatalf("NAV() = %d, want 0", csma.NAV())
	}
}

func TestCSMABusyMediumFreezesProgress(t *testing.T) {
	csma := newTestCSMA(rand.New(rand.NewSource(1)))
	csma.SetDifs()
	before := csma.timer

	csma.CheckAndDecrease(true, 1000)
	if csma.timer != before {
		t.Fatalf("timer must not decrease while the medium is busy: before=%d after=%d", before, csma.timer)
	}
}

func TestCSMAIsDifs(t *testing.T) {
	csma := newTestCSMA(rand.New(rand.NewSource(1)))

	if !csma.IsDifs(false, FrameTypeData) {
		t.Fatal("without RTS, DATA is a fresh access attempt")
	}
	if csma.IsDifs(false, FrameTypeACK) {
		t.Fatal("without RTS, ACK is never a fresh access attempt")
	}
	if !csma.IsDifs(true, FrameTypeRTS) {
		t.Fatal("with RTS, RTS is the fresh access attempt")
	}
	if csma.IsDifs(true, FrameTypeData) {
		t.Fatal("with RTS, DATA is a handshake reply, not a fresh attempt")
	}
}

// TestCSMABackoffWindowInvariant checks, over randomly generated
// sequences of collision/ack events, that the backoff window always
// stays within [cw_min, cw_max].
func TestCSMABackoffWindowInvariant(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		seed := rapid.Int64().Draw(rt, "seed")
		csma := newTestCSMA(rand.New(rand.NewSource(seed)))
		cfg := DefaultConfig()

		events := rapid.SliceOfN(rapid.Bool(), 0, 200).Draw(rt, "events")
		for _, isCollision := range events {
			if isCollision {
				csma.CollisionOccurred()
			} else {
				csma.ResetBackoffRange()
			}
			if csma.BackoffWindow() < cfg.CWMin || csma.BackoffWindow() > cfg.CWMax {
				rt.Fatalf("BackoffWindow() = %d, want within [%d, %d]",
					csma.BackoffWindow(), cfg.CWMin, cfg.CWMax)
			}
		}
	})
}
