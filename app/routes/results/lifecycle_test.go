package results

import (
	"reflect"
	"testing"

	"github.com/OkoroJesse/result-manager-sub000/app/models"
)

func TestEditable(t *testing.T) {
	tests := []struct {
		status models.ResultStatus
		want   bool
	}{
		{models.ResultDraft, true},
		{models.ResultSubmitted, false},
		{models.ResultApproved, false},
	}
	for _, tt := range tests {
		if got := editable(tt.status); got != tt.want {
			t.Errorf("editable(%q) = %v, want %v", tt.status, got, tt.want)
		}
	}
}

func roster(ids ...string) []*models.Student {
	students := make([]*models.Student, len(ids))
	for i, id := range ids {
		students[i] = &models.Student{ID: id, FirstName: "Student", LastName: id}
	}
	return students
}

func TestMissingStudents(t *testing.T) {
	class := roster("s1", "s2", "s3")

	tests := []struct {
		name    string
		results []*models.Result
		want    []string
	}{
		{
			name: "complete roster",
			results: []*models.Result{
				{StudentID: "s1", Status: models.ResultDraft},
				{StudentID: "s2", Status: models.ResultDraft},
				{StudentID: "s3", Status: models.ResultDraft},
			},
			want: nil,
		},
		{
			name: "one missing",
			results: []*models.Result{
				{StudentID: "s1", Status: models.ResultDraft},
				{StudentID: "s3", Status: models.ResultDraft},
			},
			want: []string{"s2"},
		},
		{
			name:    "all missing",
			results: nil,
			want:    []string{"s1", "s2", "s3"},
		},
		{
			name: "already submitted rows count as present",
			results: []*models.Result{
				{StudentID: "s1", Status: models.ResultApproved},
				{StudentID: "s2", Status: models.ResultSubmitted},
				{StudentID: "s3", Status: models.ResultDraft},
			},
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			missing := missingStudents(class, tt.results)
			var got []string
			for _, s := range missing {
				got = append(got, s.ID)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("missingStudents() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestForeignDrafts(t *testing.T) {
	results := []*models.Result{
		{ID: "r1", Status: models.ResultDraft, EnteredBy: "t1"},
		{ID: "r2", Status: models.ResultDraft, EnteredBy: "t2"},
		{ID: "r3", Status: models.ResultSubmitted, EnteredBy: "t2"},
		{ID: "r4", Status: models.ResultDraft, EnteredBy: "t1"},
	}

	foreign := foreignDrafts(results, "t1")
	if len(foreign) != 1 || foreign[0].ID != "r2" {
		t.Errorf("foreignDrafts() = %v, want exactly r2", foreign)
	}

	// Non-draft rows entered by others never block the batch.
	foreign = foreignDrafts(results, "t2")
	if len(foreign) != 2 {
		t.Errorf("foreignDrafts() for t2 returned %d rows, want 2", len(foreign))
	}
}

func TestCountDrafts(t *testing.T) {
	results := []*models.Result{
		{Status: models.ResultDraft},
		{Status: models.ResultSubmitted},
		{Status: models.ResultApproved},
		{Status: models.ResultDraft},
	}
	if got := countDrafts(results); got != 2 {
		t.Errorf("countDrafts() = %d, want 2", got)
	}
	if got := countDrafts(nil); got != 0 {
		t.Errorf("countDrafts(nil) = %d, want 0", got)
	}
}

func TestStudentNames(t *testing.T) {
	students := []*models.Student{
		{FirstName: "Ada", LastName: "Okafor"},
		{FirstName: "Musa", LastName: "Bello"},
	}
	want := []string{"Ada Okafor", "Musa Bello"}
	if got := studentNames(students); !reflect.DeepEqual(got, want) {
		t.Errorf("studentNames() = %v, want %v", got, want)
	}
}
