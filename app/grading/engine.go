package grading

import (
	"sort"

	"github.com/OkoroJesse/result-manager-sub000/app/models"
)

// ComponentMaxima caps each score component before summing.
type ComponentMaxima struct {
	CA   float64
	Test float64
	Exam float64
}

// DefaultMaxima is the standard 40/20/40 split.
var DefaultMaxima = ComponentMaxima{CA: 40, Test: 20, Exam: 40}

// Fallback grade when no rule matches a total. Grading must never block a
// save, so an uncovered total fails closed to the worst band.
const (
	FallbackGrade  = "F"
	FallbackRemark = "Fail"
)

func clamp(score, max float64) float64 {
	if score < 0 {
		return 0
	}
	if score > max {
		return max
	}
	return score
}

// ComputeTotal clamps each component to [0, max] and sums them.
func ComputeTotal(ca, test, exam float64, maxima ComponentMaxima) float64 {
	return clamp(ca, maxima.CA) + clamp(test, maxima.Test) + clamp(exam, maxima.Exam)
}

// ComputeGrade resolves a total against the active rule set. Rules are
// evaluated highest band first so that if ranges improperly overlap, the
// highest qualifying band wins.
func ComputeGrade(total float64, rules []*models.GradingRule) (grade, remark string) {
	sorted := make([]*models.GradingRule, len(rules))
	copy(sorted, rules)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].MinScore > sorted[j].MinScore
	})

	for _, r := range sorted {
		if total >= r.MinScore && total <= r.MaxScore {
			return r.Grade, r.Remark
		}
	}
	return FallbackGrade, FallbackRemark
}
