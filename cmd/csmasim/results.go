package main

//
// Per-tuple CSV result files
//

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/bassosimone/csmasim"
)

// summarizeSettings renders cfg into a short, filesystem-safe tag used
// as the result filename's stem.
func summarizeSettings(cfg *csmasim.Config) string {
	return fmt.Sprintf("stations%d_area%d_star%t_rts%t_rate%d",
		cfg.StationCount, cfg.AreaSize, cfg.StarTopology, cfg.WithRTS, cfg.DataRate)
}

// resultPath returns the CSV path for cfg under dir.
func resultPath(dir string, cfg *csmasim.Config) string {
	return filepath.Join(dir, summarizeSettings(cfg)+".csv")
}

// resultExists reports whether a result file for cfg already exists
// under dir, used by --pass-done to skip completed tuples.
func resultExists(dir string, cfg *csmasim.Config) bool {
	_, err := os.Stat(resultPath(dir, cfg))
	return err == nil
}

var resultColumns = []string{
	"station_id", "frame_type", "direction", "count", "bytes", "collisions", "wasted_ns",
}

// writeResult writes stats as a CSV file under dir, named after cfg's
// parameter tuple: one row per (station, frame type, direction).
func writeResult(dir string, cfg *csmasim.Config, stats csmasim.Stats) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("csmasim: creating results directory: %w", err)
	}

	f, err := os.Create(resultPath(dir, cfg))
	if err != nil {
		return fmt.Errorf("csmasim: creating result file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write(resultColumns); err != nil {
		return err
	}

	for _, st := range stats.Stations {
		if err := writeDirection(w, st, "sent", st.Sent); err != nil {
			return err
		}
		if err := writeDirection(w, st, "recv", st.Recv); err != nil {
			return err
		}
	}
	return w.Error()
}

func writeDirection(w *csv.Writer, st csmasim.StationStats, direction string, records []csmasim.FrameRecord) error {
	for _, rec := range records {
		row := []string{
			strconv.FormatUint(st.StationID, 10),
			rec.Type.String(),
			direction,
			strconv.FormatInt(rec.Count, 10),
			strconv.FormatInt(rec.Bytes, 10),
			strconv.FormatInt(st.Collisions, 10),
			strconv.FormatInt(st.Wasted, 10),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}
