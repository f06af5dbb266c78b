package csmasim

//
// Per-run summary statistics, shared by the CSV writer and the
// Prometheus exporter
//

// StationStats is one station's summary at the end of a run.
type StationStats struct {
	// StationID identifies the station this summary describes.
	StationID uint64

	// Sent and Recv are the upserted per-type tallies of frames this
	// station transmitted and received successfully.
	Sent, Recv []FrameRecord

	// Collisions counts this station's ACK-timeout events.
	Collisions int64

	// Wasted accumulates the simulated nanoseconds this station lost to
	// collisions.
	Wasted int64
}

// Stats is a whole-run summary, one [StationStats] per station plus the
// totals a sweep cares about comparing across configurations.
type Stats struct {
	Stations []StationStats
}

// Snapshot collects a [Stats] summary of world's current state. The
// command-line driver calls it after [World.Run] completes.
func Snapshot(world *World) Stats {
	stats := Stats{Stations: make([]StationStats, 0, len(world.Medium.Stations))}
	for _, st := range world.Medium.Stations {
		tx := st.Transmitter
		stats.Stations = append(stats.Stations, StationStats{
			StationID:  st.ID,
			Sent:       tx.Sent,
			Recv:       tx.Recv,
			Collisions: tx.Collisions,
			Wasted:     tx.Wasted,
		})
	}
	return stats
}

// TotalFramesSent returns the sum of every station's sent-frame tallies.
func (s Stats) TotalFramesSent() int64 {
	var total int64
	for _, st := range s.Stations {
		for _, rec := range st.Sent {
			total += rec.Count
		}
	}
	return total
}

// TotalCollisions returns the sum of every station's collision count.
func (s Stats) TotalCollisions() int64 {
	var total int64
	for _, st := range s.Stations {
		total += st.Collisions
	}
	return total
}

// TotalWasted returns the sum of every station's wasted airtime.
func (s Stats) TotalWasted() int64 {
	var total int64
	for _, st := range s.Stations {
		total += st.Wasted
	}
	return total
}
