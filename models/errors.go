package models

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyCorpus is returned when percentages are requested over zero records.
var ErrEmptyCorpus = errors.New("corpus is empty: input files contained no records")

// ConfigurationError reports that no input files matched the discovery patterns.
type ConfigurationError struct {
	Patterns []string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("no input files found matching %s; make sure the files are in the working directory (and unzipped)",
		strings.Join(e.Patterns, ", "))
}

// ParseError reports a file whose content is not a JSON array of objects.
type ParseError struct {
	File string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s: %v", e.File, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// MalformedTimestampError reports a created_at value that does not match the expected layout.
type MalformedTimestampError struct {
	Value string
	Err   error
}

func (e *MalformedTimestampError) Error() string {
	return fmt.Sprintf("malformed created_at %q: %v", e.Value, e.Err)
}

func (e *MalformedTimestampError) Unwrap() error {
	return e.Err
}
