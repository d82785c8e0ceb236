// Package models defines the records, tables and errors shared across the pipeline.
package models

import (
	"encoding/json"
	"fmt"
)

// Record is a single post as stored in the input JSON arrays.
// Fields other than text and created_at are ignored on decode.
type Record struct {
	Text      *string `json:"text,omitempty"`
	CreatedAt *string `json:"created_at,omitempty"`
}

// UnmarshalJSON reads exactly the "text" and "created_at" keys.
// encoding/json would otherwise also accept "Text" or "CREATED_AT".
// A null value counts as absent.
func (r *Record) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	var out Record
	var err error
	if out.Text, err = optionalString(fields, "text"); err != nil {
		return err
	}
	if out.CreatedAt, err = optionalString(fields, "created_at"); err != nil {
		return err
	}

	*r = out
	return nil
}

func optionalString(fields map[string]json.RawMessage, key string) (*string, error) {
	raw, ok := fields[key]
	if !ok || string(raw) == "null" {
		return nil, nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("field %q: %w", key, err)
	}
	return &s, nil
}

// TextOrEmpty returns the post text, or "" when the field is absent.
func (r Record) TextOrEmpty() string {
	if r.Text == nil {
		return ""
	}
	return *r.Text
}

// Timestamp returns the raw created_at value and whether it is present.
// An empty string counts as absent.
func (r Record) Timestamp() (string, bool) {
	if r.CreatedAt == nil || *r.CreatedAt == "" {
		return "", false
	}
	return *r.CreatedAt, true
}

// Corpus is the ordered, in-memory collection of records for one run.
type Corpus struct {
	Files   []string
	Records []Record
}

// Len returns the number of loaded records.
func (c *Corpus) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Records)
}

// CountTable maps each phrase to the number of records containing it.
type CountTable map[string]int

// PercentTable maps each phrase to its share of records, in percent.
type PercentTable map[string]float64

// HourHistogram holds record counts per hour of day, index 0 through 23.
type HourHistogram [24]int

// Total returns the number of records counted across all hours.
func (h HourHistogram) Total() int {
	total := 0
	for _, n := range h {
		total += n
	}
	return total
}
