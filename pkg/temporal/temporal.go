// Package temporal buckets records by the hour of day they were posted.
package temporal

import (
	"time"

	"github.com/dtnitsch/tweetstats/models"
)

// Layout is the created_at encoding, e.g. "Wed Oct 10 20:19:24 +0000 2018".
const Layout = time.RubyDate

// HourOf returns the hour component of ts as written, without converting its offset.
func HourOf(ts string) (int, error) {
	t, err := time.Parse(Layout, ts)
	if err != nil {
		return 0, &models.MalformedTimestampError{Value: ts, Err: err}
	}
	return t.Hour(), nil
}

// Histogram tallies records per hour of day.
// Records without created_at are skipped; a malformed value aborts the pass.
func Histogram(corpus *models.Corpus) (models.HourHistogram, error) {
	var hist models.HourHistogram
	if corpus == nil {
		return hist, nil
	}

	for _, r := range corpus.Records {
		ts, ok := r.Timestamp()
		if !ok {
			continue
		}
		hour, err := HourOf(ts)
		if err != nil {
			return models.HourHistogram{}, err
		}
		hist[hour]++
	}

	return hist, nil
}
