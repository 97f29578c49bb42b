package perf

import (
	"math"
	"strings"

	"github.com/jkoster/portfolio-performance-backend/internal/model"
)

// MergeInto folds one incoming position into a position list.
//
// Two positions are the same instrument iff their tickers match
// case-insensitively. When no match exists the incoming position is
// appended unchanged, preserving list order. When a match exists the
// two lots are combined into a single weighted-average position, the
// stats calculator is re-run on the result, and the merged position
// replaces the existing entry at its original index. The input slice
// is never mutated; a new slice is returned.
func MergeInto(list []model.Position, incoming model.Position, inflation RateTable) []model.Position {
	for i := range list {
		if !strings.EqualFold(list[i].Ticker, incoming.Ticker) {
			continue
		}
		out := make([]model.Position, len(list))
		copy(out, list)
		out[i] = CalculateStats(mergePair(list[i], incoming), inflation)
		return out
	}

	out := make([]model.Position, len(list), len(list)+1)
	copy(out, list)
	return append(out, incoming)
}

// MergeAll folds every incoming position into the current list, in the
// given order. Order matters: a later incoming lot may match a position
// that an earlier merge in the same pass created.
func MergeAll(current, incoming []model.Position, inflation RateTable) []model.Position {
	result := current
	for _, p := range incoming {
		result = MergeInto(result, p, inflation)
	}
	return result
}

// mergePair combines two lots of the same instrument. The existing
// lot's ticker casing (and identity fields) survive the merge.
func mergePair(existing, incoming model.Position) model.Position {
	merged := existing

	totalShares := existing.Shares + incoming.Shares
	if totalShares == 0 {
		// Nothing held anymore: keep the incoming lot's display data
		// but zero out the economics.
		merged.Name = incoming.Name
		merged.Sector = incoming.Sector
		merged.CurrentPrice = incoming.CurrentPrice
		merged.LastUpdated = incoming.LastUpdated
		merged.Shares = 0
		merged.AvgCost = 0
		merged.YearsHeld = math.Max(existing.YearsHeld, incoming.YearsHeld)
		return merged
	}

	existingCost := existing.Shares * existing.AvgCost
	incomingCost := incoming.Shares * incoming.AvgCost

	merged.Shares = totalShares
	merged.AvgCost = (existingCost + incomingCost) / totalShares

	// Years held is weighted by invested capital, not share count:
	// a small recent lot must not skew the apparent holding age of a
	// large long-held lot.
	if existingCost+incomingCost == 0 {
		merged.YearsHeld = math.Max(existing.YearsHeld, incoming.YearsHeld)
	} else {
		merged.YearsHeld = round2(
			(existingCost*existing.YearsHeld + incomingCost*incoming.YearsHeld) /
				(existingCost + incomingCost))
	}

	if incoming.Name != "" {
		merged.Name = incoming.Name
	}
	if incoming.Sector != "" {
		merged.Sector = incoming.Sector
	}
	if incoming.CurrentPrice > 0 {
		merged.CurrentPrice = incoming.CurrentPrice
	}
	if incoming.LastUpdated != "" {
		merged.LastUpdated = incoming.LastUpdated
	}

	return merged
}
