package grades

import (
	"testing"

	"github.com/OkoroJesse/result-manager-sub000/app/models"
)

func band(min, max float64, grade string) models.GradingRule {
	return models.GradingRule{MinScore: min, MaxScore: max, Grade: grade, Remark: grade}
}

func TestCheckBands(t *testing.T) {
	tests := []struct {
		name    string
		rules   []models.GradingRule
		wantErr bool
	}{
		{
			name: "clean partition",
			rules: []models.GradingRule{
				band(70, 100, "A"), band(60, 69, "B"), band(50, 59, "C"),
				band(40, 49, "D"), band(0, 39, "F"),
			},
		},
		{
			name: "gap allowed",
			rules: []models.GradingRule{
				band(70, 100, "A"), band(0, 39, "F"),
			},
		},
		{
			name: "overlap rejected",
			rules: []models.GradingRule{
				band(70, 100, "A"), band(60, 75, "B"),
			},
			wantErr: true,
		},
		{
			name: "touching edges rejected",
			rules: []models.GradingRule{
				band(70, 100, "A"), band(60, 70, "B"),
			},
			wantErr: true,
		},
		{
			name:    "inverted band",
			rules:   []models.GradingRule{band(80, 70, "A")},
			wantErr: true,
		},
		{
			name:    "out of range",
			rules:   []models.GradingRule{band(90, 110, "A")},
			wantErr: true,
		},
		{
			name:  "empty set",
			rules: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkBands(tt.rules)
			if (err != nil) != tt.wantErr {
				t.Errorf("checkBands() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
