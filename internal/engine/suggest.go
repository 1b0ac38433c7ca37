package engine

import (
	"math"
	"sort"

	"github.com/piwi3910/TrayCalc/internal/model"
)

// Suggestion holds the evaluation of one candidate tray against a cable list.
type Suggestion struct {
	Tray       model.TrayType
	Stats      model.TrayStats
	Assessment model.Assessment
}

// Passes reports whether the tray carries the cables within both limits.
func (s Suggestion) Passes() bool {
	return !s.Assessment.Status.Failing()
}

// FillOfLimit returns the area fill as a percentage of the recommended fill.
func (s Suggestion) FillOfLimit() float64 {
	if s.Stats.RecommendedMaxAreaFillPercent <= 0 {
		return 0
	}
	return s.Stats.AreaFillPercent / s.Stats.RecommendedMaxAreaFillPercent * 100.0
}

// Utilisation is the higher of structural utilisation and fill-of-limit,
// i.e. how close the tray is to its first limit.
func (s Suggestion) Utilisation() float64 {
	return math.Max(s.Stats.StructuralUtilisationPercent, s.FillOfLimit())
}

// SuggestTrays evaluates the cables against every tray. Passing trays come
// first, best used first, so the head of the list is the smallest adequate
// tray. Failing trays follow, least overloaded first. Ties keep the input
// order.
func SuggestTrays(cables []model.CableEntry, trays []model.TrayType, heightRatio float64) []Suggestion {
	empty := len(model.ValidEntries(cables)) == 0

	results := make([]Suggestion, 0, len(trays))
	for _, tray := range trays {
		stats := model.ComputeStatsWithHeightRatio(cables, tray, heightRatio)
		results = append(results, Suggestion{
			Tray:       tray,
			Stats:      stats,
			Assessment: model.Classify(stats, empty),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		pi, pj := results[i].Passes(), results[j].Passes()
		if pi != pj {
			return pi
		}
		if pi {
			return results[i].Utilisation() > results[j].Utilisation()
		}
		return results[i].Utilisation() < results[j].Utilisation()
	})

	return results
}

// BestTray returns the first passing suggestion, if any tray passes.
func BestTray(cables []model.CableEntry, trays []model.TrayType, heightRatio float64) (Suggestion, bool) {
	suggestions := SuggestTrays(cables, trays, heightRatio)
	if len(suggestions) == 0 || !suggestions[0].Passes() {
		return Suggestion{}, false
	}
	return suggestions[0], true
}
