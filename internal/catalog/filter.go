package catalog

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
)

// FilterBatches narrows batches to those whose name fuzzy-matches the
// query. An empty query returns the input unchanged.
func FilterBatches(batches []Batch, query string) []Batch {
	query = strings.TrimSpace(query)
	if query == "" {
		return batches
	}
	return lo.Filter(batches, func(b Batch, _ int) bool {
		return fuzzy.MatchNormalizedFold(query, b.Name)
	})
}

// FilterContents narrows content items by fuzzy title match.
func FilterContents(items []ContentItem, query string) []ContentItem {
	query = strings.TrimSpace(query)
	if query == "" {
		return items
	}
	return lo.Filter(items, func(item ContentItem, _ int) bool {
		return fuzzy.MatchNormalizedFold(query, item.Title)
	})
}

// VideosOf keeps only the playable items of a chapter listing.
func VideosOf(items []ContentItem) []ContentItem {
	return lo.Filter(items, func(item ContentItem, _ int) bool {
		return item.Type.Playable()
	})
}
