// Package report renders phrase percentages as a fixed-width markdown table.
package report

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/dtnitsch/tweetstats/models"
)

const (
	phraseHeader  = "phrase"
	percentHeader = "percent of tweets"
	percentWidth  = 15
)

// FormatPercent renders a percentage with two decimals, zero-padded to five characters ("00.17").
func FormatPercent(pct float64) string {
	return fmt.Sprintf("%05.2f", pct)
}

// SortedPhrases returns a sorted copy of phrases (byte-wise, case-sensitive).
func SortedPhrases(phrases []string) []string {
	sorted := make([]string, len(phrases))
	copy(sorted, phrases)
	sort.Strings(sorted)
	return sorted
}

// ColumnWidth returns the length of the longest phrase, in runes, matching fmt's padding.
func ColumnWidth(phrases []string) int {
	width := 0
	for _, p := range phrases {
		if n := utf8.RuneCountInString(p); n > width {
			width = n
		}
	}
	return width
}

// MarkdownTable renders one row per phrase in sorted order.
func MarkdownTable(percents models.PercentTable, phrases []string) string {
	width := ColumnWidth(phrases)

	var b strings.Builder
	fmt.Fprintf(&b, "| %-*s | %s |\n", width, phraseHeader, percentHeader)
	fmt.Fprintf(&b, "| %s | %s |\n", strings.Repeat("-", width), strings.Repeat("-", len(percentHeader)))

	for _, p := range SortedPhrases(phrases) {
		fmt.Fprintf(&b, "| %*s | %-*s |\n", width, p, percentWidth, FormatPercent(percents[p]))
	}

	return b.String()
}

// CountsLine formats the raw counts in phrase-list order, e.g. {'obama': 1, 'trump': 2}.
func CountsLine(counts models.CountTable, phrases []string) string {
	seen := make(map[string]struct{}, len(phrases))
	parts := make([]string, 0, len(phrases))
	for _, p := range phrases {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		parts = append(parts, fmt.Sprintf("'%s': %d", p, counts[p]))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
