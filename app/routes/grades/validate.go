package grades

import (
	"fmt"
	"sort"

	"github.com/OkoroJesse/result-manager-sub000/app/models"
)

// checkBands verifies a proposed rule set is well formed: every band has
// min <= max and no two bands overlap. Gaps are allowed, totals falling in
// a gap pick up the fallback grade.
func checkBands(rules []models.GradingRule) error {
	for _, r := range rules {
		if r.MinScore > r.MaxScore {
			return fmt.Errorf("band %s: min %.2f exceeds max %.2f", r.Grade, r.MinScore, r.MaxScore)
		}
		if r.MinScore < 0 || r.MaxScore > 100 {
			return fmt.Errorf("band %s: scores must be within 0-100", r.Grade)
		}
	}

	sorted := make([]models.GradingRule, len(rules))
	copy(sorted, rules)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].MinScore < sorted[j].MinScore
	})

	for i := 1; i < len(sorted); i++ {
		if sorted[i].MinScore <= sorted[i-1].MaxScore {
			return fmt.Errorf("bands %s and %s overlap", sorted[i-1].Grade, sorted[i].Grade)
		}
	}
	return nil
}
