package main

//
// The parameter sweep: the tuples a --simulation run iterates over
//

import "github.com/bassosimone/csmasim"

// variousSettings returns the configuration tuples swept by
// --simulation, varying station count, topology, and RTS around
// [csmasim.DefaultConfig]. Every tuple keeps the default data rate.
func variousSettings() []*csmasim.Config {
	var out []*csmasim.Config
	for _, stationCount := range []int{2, 3, 5} {
		for _, starTopology := range []bool{false, true} {
			for _, withRTS := range []bool{false, true} {
				cfg := csmasim.DefaultConfig()
				cfg.StationCount = stationCount
				cfg.StarTopology = starTopology
				cfg.WithRTS = withRTS
				out = append(out, cfg)
			}
		}
	}
	return out
}
