package models

// Scheme names a file-naming convention for the input corpus.
type Scheme string

const (
	// SchemeCondensed selects the per-period files (condensed_2009.json, ...).
	SchemeCondensed Scheme = "condensed"
	// SchemeMaster selects the consolidated files (master_*.json).
	SchemeMaster Scheme = "master"
)

// DefaultPattern returns the glob used when no explicit pattern is configured.
func (s Scheme) DefaultPattern() string {
	switch s {
	case SchemeMaster:
		return "master_*.json"
	default:
		return "condensed_*.json"
	}
}

// Valid reports whether s is a recognised scheme.
func (s Scheme) Valid() bool {
	return s == SchemeCondensed || s == SchemeMaster
}

// DefaultPhrases is the phrase list used when none is configured.
var DefaultPhrases = []string{
	"obama",
	"trump",
	"mexico",
	"russia",
	"fake news",
	"china",
	"wall",
	"mainstream media",
}
