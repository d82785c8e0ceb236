// Package chart renders the phrase and hour-of-day bar charts.
package chart

import (
	"bytes"
	"fmt"
	"image/color"
	"math"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dtnitsch/tweetstats/models"
	"github.com/dtnitsch/tweetstats/pkg/storage"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
)

const (
	width  = 10 * vg.Inch
	height = 5 * vg.Inch
)

var barColor = color.RGBA{R: 31, G: 119, B: 180, A: 255}

// Renderer writes charts through a Storage.
type Renderer struct {
	store *storage.Storage
}

// NewRenderer returns a Renderer backed by store. A nil store uses the zero Storage.
func NewRenderer(store *storage.Storage) *Renderer {
	if store == nil {
		store = &storage.Storage{}
	}
	return &Renderer{store: store}
}

// PhraseBars draws one bar per phrase, labels rotated for readability.
// labels and values are parallel slices in display order.
func (r *Renderer) PhraseBars(labels []string, values []float64, path string) error {
	if len(labels) != len(values) {
		return fmt.Errorf("phrase chart: %d labels for %d values", len(labels), len(values))
	}

	p, err := barPlot(values)
	if err != nil {
		return fmt.Errorf("phrase chart: %w", err)
	}
	p.Title.Text = "Percent of tweets containing each phrase"
	p.Y.Label.Text = "Percent of tweets"
	p.NominalX(labels...)
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = text.XRight
	p.X.Tick.Label.YAlign = text.YCenter

	return r.save(p, path)
}

// HourBars draws the 24 hourly counts, hour 0 first.
func (r *Renderer) HourBars(hist models.HourHistogram, path string) error {
	values := make([]float64, len(hist))
	labels := make([]string, len(hist))
	for hour, n := range hist {
		values[hour] = float64(n)
		labels[hour] = strconv.Itoa(hour)
	}

	p, err := barPlot(values)
	if err != nil {
		return fmt.Errorf("hour chart: %w", err)
	}
	p.Title.Text = "Tweets by hour of day"
	p.X.Label.Text = "Hour of day"
	p.Y.Label.Text = "Number of tweets"
	p.NominalX(labels...)
	if hist.Total() == 0 {
		p.Y.Max = 1
	}

	return r.save(p, path)
}

func barPlot(values []float64) (*plot.Plot, error) {
	p := plot.New()

	bars, err := plotter.NewBarChart(plotter.Values(values), vg.Points(20))
	if err != nil {
		return nil, err
	}
	bars.Color = barColor
	bars.LineStyle.Width = 0
	p.Add(bars)
	p.Y.Min = 0

	return p, nil
}

// Format returns the image format implied by the file extension.
func Format(path string) (string, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	switch ext {
	case "png", "jpg", "jpeg", "svg", "pdf", "eps", "tif", "tiff":
		return ext, nil
	case "":
		return "", fmt.Errorf("chart path %q has no file extension", path)
	default:
		return "", fmt.Errorf("unsupported chart format %q", ext)
	}
}

func (r *Renderer) save(p *plot.Plot, path string) error {
	format, err := Format(path)
	if err != nil {
		return err
	}

	w, err := p.WriterTo(width, height, format)
	if err != nil {
		return fmt.Errorf("failed to render %s: %w", path, err)
	}

	var buf bytes.Buffer
	if _, err := w.WriteTo(&buf); err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}

	return r.store.SaveFile(path, buf.Bytes())
}
