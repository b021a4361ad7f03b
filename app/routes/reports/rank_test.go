package reports

import (
	"reflect"
	"testing"
)

func TestComputePositions(t *testing.T) {
	tests := []struct {
		name   string
		totals map[string]float64
		want   map[string]int
	}{
		{
			name:   "no ties",
			totals: map[string]float64{"a": 90, "b": 80, "c": 70},
			want:   map[string]int{"a": 1, "b": 2, "c": 3},
		},
		{
			name:   "dense ranking on ties",
			totals: map[string]float64{"a": 90, "b": 85, "c": 85, "d": 70},
			want:   map[string]int{"a": 1, "b": 2, "c": 2, "d": 3},
		},
		{
			name:   "all tied",
			totals: map[string]float64{"a": 60, "b": 60, "c": 60},
			want:   map[string]int{"a": 1, "b": 1, "c": 1},
		},
		{
			name:   "single student",
			totals: map[string]float64{"a": 42},
			want:   map[string]int{"a": 1},
		},
		{
			name:   "empty class",
			totals: map[string]float64{},
			want:   map[string]int{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ComputePositions(tt.totals); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ComputePositions(%v) = %v, want %v", tt.totals, got, tt.want)
			}
		})
	}
}
