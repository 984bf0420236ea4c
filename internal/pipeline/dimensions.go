// Package pipeline implements the HR attrition reporting transforms: the
// dimension builder, the enrichment join, temporal feature derivation, the
// monthly attrition rollup, and the star-schema cleaning rules.
package pipeline

import (
	"github.com/hrops/hr-reportgen/internal/model"
)

// BuildDimension deduplicates natural-key values in first-seen order and
// assigns 1-based sequential identifiers. Identifiers are reassigned from
// scratch every run. An empty input yields an empty dimension.
//
// The empty string stands in for a NULL natural key; it is kept here (it
// still receives an identifier) and removed later by the dimension cleaner.
func BuildDimension(keys []string) []model.DimensionEntry {
	seen := make(map[string]struct{}, len(keys))
	var entries []model.DimensionEntry
	for _, key := range keys {
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		entries = append(entries, model.DimensionEntry{
			Name: key,
			ID:   len(entries) + 1,
		})
	}
	return entries
}
