package temporal

import (
	"errors"
	"testing"

	"github.com/dtnitsch/tweetstats/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rec(createdAt string) models.Record {
	text := "hi"
	return models.Record{Text: &text, CreatedAt: &createdAt}
}

func TestHourOf(t *testing.T) {
	tests := []struct {
		name    string
		ts      string
		want    int
		wantErr bool
	}{
		{name: "utc", ts: "Wed Oct 10 20:19:24 +0000 2018", want: 20},
		{name: "midnight", ts: "Sun Jan 01 00:00:00 +0000 2017", want: 0},
		{name: "offset kept as written", ts: "Mon Mar 05 07:45:00 -0500 2012", want: 7},
		{name: "positive offset", ts: "Fri Jun 15 23:59:59 +0530 2018", want: 23},
		{name: "not a date", ts: "not-a-date", wantErr: true},
		{name: "iso format", ts: "2018-10-10T20:19:24Z", wantErr: true},
		{name: "missing offset", ts: "Wed Oct 10 20:19:24 2018", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := HourOf(tt.ts)
			if tt.wantErr {
				var tsErr *models.MalformedTimestampError
				require.True(t, errors.As(err, &tsErr), "got %v", err)
				assert.Equal(t, tt.ts, tsErr.Value)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHistogramSingleRecord(t *testing.T) {
	hist, err := Histogram(&models.Corpus{Records: []models.Record{rec("Wed Oct 10 20:19:24 +0000 2018")}})
	require.NoError(t, err)

	for hour, n := range hist {
		if hour == 20 {
			assert.Equal(t, 1, n)
		} else {
			assert.Equal(t, 0, n, "hour %d", hour)
		}
	}
}

func TestHistogramSkipsMissingTimestamps(t *testing.T) {
	text := "no timestamp"
	corpus := &models.Corpus{Records: []models.Record{
		rec("Wed Oct 10 20:19:24 +0000 2018"),
		rec("Thu Oct 11 20:01:00 +0000 2018"),
		rec("Thu Oct 11 06:30:00 +0000 2018"),
		rec(""),
		{Text: &text},
	}}

	hist, err := Histogram(corpus)
	require.NoError(t, err)

	assert.Len(t, hist, 24)
	assert.Equal(t, 2, hist[20])
	assert.Equal(t, 1, hist[6])
	assert.Equal(t, 3, hist.Total())
}

func TestHistogramMalformedTimestampFails(t *testing.T) {
	corpus := &models.Corpus{Records: []models.Record{
		rec("Wed Oct 10 20:19:24 +0000 2018"),
		rec("not-a-date"),
	}}

	hist, err := Histogram(corpus)

	var tsErr *models.MalformedTimestampError
	require.True(t, errors.As(err, &tsErr), "got %v", err)
	assert.Equal(t, "not-a-date", tsErr.Value)
	assert.Zero(t, hist.Total())
}
