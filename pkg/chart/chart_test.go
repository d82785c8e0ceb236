package chart

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/dtnitsch/tweetstats/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngMagic = []byte("\x89PNG\r\n\x1a\n")

func TestPhraseBarsWritesPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "charts", "tweet_counts.png")

	err := NewRenderer(nil).PhraseBars(
		[]string{"china", "fake news", "mainstream media"},
		[]float64{1.5, 0.25, 3},
		path,
	)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, pngMagic))
}

func TestPhraseBarsMismatchedInput(t *testing.T) {
	err := NewRenderer(nil).PhraseBars([]string{"a", "b"}, []float64{1}, filepath.Join(t.TempDir(), "x.png"))
	assert.Error(t, err)
}

func TestHourBarsWritesSVG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tweet_hours.svg")
	var hist models.HourHistogram
	hist[20] = 4
	hist[6] = 1

	require.NoError(t, NewRenderer(nil).HourBars(hist, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<svg")
}

func TestHourBarsEmptyHistogram(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.png")
	require.NoError(t, NewRenderer(nil).HourBars(models.HourHistogram{}, path))
	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestFormat(t *testing.T) {
	tests := []struct {
		path    string
		want    string
		wantErr bool
	}{
		{path: "tweet_counts.png", want: "png"},
		{path: "out/Chart.SVG", want: "svg"},
		{path: "chart", wantErr: true},
		{path: "chart.gif", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := Format(tt.path)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
