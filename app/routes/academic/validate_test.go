package academic

import (
	"testing"
	"time"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestTermWithinSession(t *testing.T) {
	sessStart := date("2025-09-01")
	sessEnd := date("2026-07-31")

	tests := []struct {
		name                 string
		termStart, termEnd   string
		want                 bool
	}{
		{name: "fully inside", termStart: "2025-09-08", termEnd: "2025-12-12", want: true},
		{name: "exact boundaries", termStart: "2025-09-01", termEnd: "2026-07-31", want: true},
		{name: "starts before session", termStart: "2025-08-20", termEnd: "2025-12-12", want: false},
		{name: "ends after session", termStart: "2026-04-01", termEnd: "2026-08-15", want: false},
		{name: "entirely outside", termStart: "2024-01-01", termEnd: "2024-04-01", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := termWithinSession(date(tt.termStart), date(tt.termEnd), sessStart, sessEnd)
			if got != tt.want {
				t.Errorf("termWithinSession(%s, %s) = %v, want %v", tt.termStart, tt.termEnd, got, tt.want)
			}
		})
	}
}

func TestDatesOrdered(t *testing.T) {
	if !datesOrdered(date("2025-09-01"), date("2025-12-12")) {
		t.Error("expected ordered dates to pass")
	}
	if datesOrdered(date("2025-12-12"), date("2025-09-01")) {
		t.Error("expected reversed dates to fail")
	}
	if datesOrdered(date("2025-09-01"), date("2025-09-01")) {
		t.Error("expected equal dates to fail")
	}
}
