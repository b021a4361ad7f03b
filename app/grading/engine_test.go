package grading

import (
	"testing"

	"github.com/OkoroJesse/result-manager-sub000/app/models"
)

func standardRules() []*models.GradingRule {
	return []*models.GradingRule{
		{MinScore: 0, MaxScore: 39, Grade: "F", Remark: "Fail"},
		{MinScore: 40, MaxScore: 49, Grade: "D", Remark: "Pass"},
		{MinScore: 50, MaxScore: 59, Grade: "C", Remark: "Credit"},
		{MinScore: 60, MaxScore: 69, Grade: "B", Remark: "Very Good"},
		{MinScore: 70, MaxScore: 100, Grade: "A", Remark: "Excellent"},
	}
}

func TestComputeTotal(t *testing.T) {
	tests := []struct {
		name           string
		ca, test, exam float64
		want           float64
	}{
		{name: "all zero", want: 0},
		{name: "plain sum", ca: 30, test: 15, exam: 35, want: 80},
		{name: "negative treated as zero", ca: -5, test: 10, exam: 20, want: 30},
		{name: "all negative", ca: -1, test: -2, exam: -3, want: 0},
		{name: "ca capped at 40", ca: 55, test: 10, exam: 10, want: 60},
		{name: "test capped at 20", ca: 10, test: 99, exam: 10, want: 40},
		{name: "exam capped at 40", ca: 10, test: 10, exam: 100, want: 60},
		{name: "all capped", ca: 100, test: 100, exam: 100, want: 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ComputeTotal(tt.ca, tt.test, tt.exam, DefaultMaxima); got != tt.want {
				t.Errorf("ComputeTotal(%v, %v, %v) = %v, want %v", tt.ca, tt.test, tt.exam, got, tt.want)
			}
		})
	}
}

func TestComputeTotalMonotonic(t *testing.T) {
	// Raising any single component within bounds never lowers the total.
	for ca := 0.0; ca < 40; ca += 7 {
		for test := 0.0; test < 20; test += 4 {
			for exam := 0.0; exam < 40; exam += 7 {
				base := ComputeTotal(ca, test, exam, DefaultMaxima)
				if ComputeTotal(ca+1, test, exam, DefaultMaxima) < base {
					t.Fatalf("total decreased when raising ca from %v", ca)
				}
				if ComputeTotal(ca, test+1, exam, DefaultMaxima) < base {
					t.Fatalf("total decreased when raising test from %v", test)
				}
				if ComputeTotal(ca, test, exam+1, DefaultMaxima) < base {
					t.Fatalf("total decreased when raising exam from %v", exam)
				}
			}
		}
	}
}

func TestComputeGrade(t *testing.T) {
	rules := standardRules()
	tests := []struct {
		total      float64
		wantGrade  string
		wantRemark string
	}{
		{0, "F", "Fail"},
		{39, "F", "Fail"},
		{40, "D", "Pass"},
		{55, "C", "Credit"},
		{69, "B", "Very Good"},
		{70, "A", "Excellent"},
		{80, "A", "Excellent"},
		{100, "A", "Excellent"},
	}
	for _, tt := range tests {
		grade, remark := ComputeGrade(tt.total, rules)
		if grade != tt.wantGrade || remark != tt.wantRemark {
			t.Errorf("ComputeGrade(%v) = (%q, %q), want (%q, %q)", tt.total, grade, remark, tt.wantGrade, tt.wantRemark)
		}
	}
}

func TestComputeGradeFullCoverage(t *testing.T) {
	// A well-formed rule set covering [0,100] never falls through to the
	// fallback for any integer total.
	rules := standardRules()
	for total := 0.0; total <= 100; total++ {
		grade, _ := ComputeGrade(total, rules)
		matched := false
		for _, r := range rules {
			if total >= r.MinScore && total <= r.MaxScore && r.Grade == grade {
				matched = true
			}
		}
		if !matched {
			t.Errorf("total %v resolved to %q outside the rule set", total, grade)
		}
	}
}

func TestComputeGradeOverlapHighestWins(t *testing.T) {
	rules := []*models.GradingRule{
		{MinScore: 0, MaxScore: 100, Grade: "P", Remark: "Pass"},
		{MinScore: 70, MaxScore: 100, Grade: "A", Remark: "Excellent"},
	}
	if grade, _ := ComputeGrade(85, rules); grade != "A" {
		t.Errorf("overlapping bands: got %q, want highest band A", grade)
	}
	if grade, _ := ComputeGrade(50, rules); grade != "P" {
		t.Errorf("overlapping bands below A: got %q, want P", grade)
	}
}

func TestComputeGradeFallback(t *testing.T) {
	rules := []*models.GradingRule{
		{MinScore: 50, MaxScore: 100, Grade: "P", Remark: "Pass"},
	}
	grade, remark := ComputeGrade(10, rules)
	if grade != FallbackGrade || remark != FallbackRemark {
		t.Errorf("uncovered total: got (%q, %q), want fallback", grade, remark)
	}
	grade, remark = ComputeGrade(10, nil)
	if grade != FallbackGrade || remark != FallbackRemark {
		t.Errorf("empty rule set: got (%q, %q), want fallback", grade, remark)
	}
}

func TestScenarioMathResult(t *testing.T) {
	total := ComputeTotal(30, 15, 35, DefaultMaxima)
	if total != 80 {
		t.Fatalf("total = %v, want 80", total)
	}
	grade, remark := ComputeGrade(total, standardRules())
	if grade != "A" || remark != "Excellent" {
		t.Errorf("got (%q, %q), want (A, Excellent)", grade, remark)
	}
}
