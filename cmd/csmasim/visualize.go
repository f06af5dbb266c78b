package main

//
// Optional HTML snapshot of the final station layout, via go-echarts
//

import (
	"os"

	"github.com/bassosimone/csmasim"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// writeVisualization renders a scatter chart of world's stations, each
// surrounded by its detect-range ring, to path as standalone HTML.
func writeVisualization(world *csmasim.World, path string) error {
	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "csmasim station layout",
			Theme:     "white",
			Width:     "900px",
			Height:    "900px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Station layout",
			Subtitle: "detect-range rings drawn as scatter overlays",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)

	stationData := make([]opts.ScatterData, 0, len(world.Medium.Stations))
	ringData := make([]opts.ScatterData, 0)
	for _, st := range world.Medium.Stations {
		stationData = append(stationData, opts.ScatterData{
			Value: []interface{}{st.Location.X, st.Location.Y},
		})
		for _, p := range csmasim.Circle(st.Location, int(st.DetectRange)) {
			ringData = append(ringData, opts.ScatterData{Value: []interface{}{p.X, p.Y}})
		}
	}

	scatter.AddSeries("stations", stationData, charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 10}))
	scatter.AddSeries("detect range", ringData, charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 1}))

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return scatter.Render(f)
}
