package analytics

import (
	"testing"

	"github.com/dtnitsch/tweetstats/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func corpusOf(texts ...string) *models.Corpus {
	c := &models.Corpus{}
	for i := range texts {
		c.Records = append(c.Records, models.Record{Text: &texts[i]})
	}
	return c
}

func TestCountPhrasesScenario(t *testing.T) {
	corpus := corpusOf("OBAMA and Mexico", "nothing relevant", "TRUMP, trump, TRUMP")
	phrases := []string{"obama", "trump", "mexico"}

	counts := CountPhrases(corpus, phrases)
	assert.Equal(t, models.CountTable{"obama": 1, "trump": 1, "mexico": 1}, counts)

	percents, err := Percentages(counts, corpus.Len())
	require.NoError(t, err)
	for _, p := range phrases {
		assert.InDelta(t, 33.3333, percents[p], 0.001, p)
	}
}

func TestCountPhrasesBounds(t *testing.T) {
	corpus := corpusOf("russia russia", "RUSSIA", "fake news about russia", "", "nothing")
	corpus.Records = append(corpus.Records, models.Record{})
	phrases := []string{"russia", "fake news", "absent"}

	counts := CountPhrases(corpus, phrases)
	percents, err := Percentages(counts, corpus.Len())
	require.NoError(t, err)

	for _, p := range phrases {
		assert.GreaterOrEqual(t, counts[p], 0)
		assert.LessOrEqual(t, counts[p], corpus.Len())
		assert.Equal(t, 100.0*float64(counts[p])/float64(corpus.Len()), percents[p])
	}
	assert.Equal(t, 3, counts["russia"])
	assert.Equal(t, 1, counts["fake news"])
	assert.Equal(t, 0, counts["absent"])
}

func TestCountPhrasesInitialisesEveryPhrase(t *testing.T) {
	counts := CountPhrases(&models.Corpus{}, []string{"a", "b"})
	assert.Equal(t, models.CountTable{"a": 0, "b": 0}, counts)
}

func TestPercentagesEmptyCorpus(t *testing.T) {
	_, err := Percentages(models.CountTable{"obama": 0}, 0)
	assert.ErrorIs(t, err, models.ErrEmptyCorpus)
}

func TestPercentagesNoRounding(t *testing.T) {
	percents, err := Percentages(models.CountTable{"wall": 1}, 600)
	require.NoError(t, err)
	assert.Equal(t, 100.0/600.0, percents["wall"])
}
