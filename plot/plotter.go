package plot

import (
	"io"

	"foursquared/projector"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// PlotSearchRatings renders a bar chart of the ratings of a search's result
// venues as a standalone HTML page.
func PlotSearchRatings(view projector.ResultsView, w io.Writer) error {
	names := make([]string, 0, len(view.CurrentFetch.Results))
	ratings := make([]opts.BarData, 0, len(view.CurrentFetch.Results))
	for _, result := range view.CurrentFetch.Results {
		names = append(names, result.Name)
		ratings = append(ratings, opts.BarData{Value: result.Rating})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: view.CurrentFetch.Title,
			Width:     "900px",
			Height:    "500px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    view.CurrentFetch.Title,
			Subtitle: view.CurrentFetch.LongTitle,
		}),
	)

	bar.SetXAxis(names).AddSeries("Rating", ratings,
		charts.WithLabelOpts(opts.Label{
			Show:     opts.Bool(true),
			Position: "top",
		}),
	)

	return bar.Render(w)
}
