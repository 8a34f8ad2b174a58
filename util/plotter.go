package util

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"discovery-server/models"
)

// PlotResultsMap renders an ordered search result set as a geo scatter chart
// and writes the HTML page to w. Results without coordinates are left off
// the map.
func PlotResultsMap(results []models.SearchResult, w io.Writer) error {
	var points []opts.GeoData
	for i, r := range results {
		if r.Coordinates == nil {
			continue
		}
		points = append(points, opts.GeoData{
			Name:  fmt.Sprintf("#%d %s", i+1, r.Name),
			Value: []float64{r.Coordinates.Lng, r.Coordinates.Lat},
		})
	}

	geo := charts.NewGeo()
	geo.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Search Results Map",
			Width:     "800px",
			Height:    "600px",
		}),
		charts.WithGeoComponentOpts(opts.GeoComponent{
			Map:    "world",
			Silent: opts.Bool(true),
		}),
	)

	geo.AddSeries("Results", types.ChartScatter, points,
		charts.WithLabelOpts(opts.Label{
			Show:      opts.Bool(true),
			Formatter: "{b}",
		}),
	)

	if err := geo.Render(w); err != nil {
		return fmt.Errorf("failed to render results map: %w", err)
	}
	return nil
}
