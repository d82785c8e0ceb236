// Package loader discovers corpus files by glob and decodes them into a single Corpus.
package loader

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/dtnitsch/tweetstats/models"
	"github.com/dtnitsch/tweetstats/pkg/storage"
)

var errNotArray = errors.New("top-level value is not a JSON array")

// Loader reads corpus files through a Storage.
type Loader struct {
	store *storage.Storage
}

// New returns a Loader backed by store. A nil store uses the zero Storage.
func New(store *storage.Storage) *Loader {
	if store == nil {
		store = &storage.Storage{}
	}
	return &Loader{store: store}
}

// Discover expands the glob patterns and returns the matched files in sorted order.
// Files matched by more than one pattern are listed once.
func Discover(patterns []string) ([]string, error) {
	seen := make(map[string]struct{})
	var files []string
	for _, pattern := range patterns {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid glob pattern %q: %w", pattern, err)
		}
		for _, m := range matches {
			if _, ok := seen[m]; ok {
				continue
			}
			seen[m] = struct{}{}
			files = append(files, m)
		}
	}

	if len(files) == 0 {
		return nil, &models.ConfigurationError{Patterns: patterns}
	}

	sort.Strings(files)
	return files, nil
}

// Load discovers the files matching patterns and concatenates their records.
// Any file that fails to read or decode aborts the whole load.
func (l *Loader) Load(patterns []string) (*models.Corpus, error) {
	files, err := Discover(patterns)
	if err != nil {
		return nil, err
	}

	corpus := &models.Corpus{Files: files}
	for _, fn := range files {
		records, err := l.LoadFile(fn)
		if err != nil {
			return nil, err
		}
		corpus.Records = append(corpus.Records, records...)
	}

	return corpus, nil
}

// LoadFile decodes one file holding a JSON array of record objects.
func (l *Loader) LoadFile(fn string) ([]models.Record, error) {
	data, err := l.store.ReadFile(fn)
	if err != nil {
		return nil, err
	}
	records, err := Decode(data)
	if err != nil {
		return nil, &models.ParseError{File: fn, Err: err}
	}
	return records, nil
}

// Decode parses a JSON array of objects into records.
func Decode(data []byte) ([]models.Record, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, errNotArray
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		return nil, err
	}

	records := make([]models.Record, 0, len(raw))
	for i, elem := range raw {
		elem = bytes.TrimSpace(elem)
		if len(elem) == 0 || elem[0] != '{' {
			return nil, fmt.Errorf("element %d is not a JSON object", i)
		}
		var r models.Record
		if err := json.Unmarshal(elem, &r); err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		records = append(records, r)
	}

	return records, nil
}
