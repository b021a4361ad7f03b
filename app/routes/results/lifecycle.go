package results

// Result state machine:
//
//	(none) --teacher saves score--> draft
//	draft --teacher saves score--> draft          (idempotent re-save)
//	draft --teacher submits batch--> submitted
//	submitted --admin approves--> approved
//	submitted --admin rejects--> draft
//	approved --(term closes)--> approved, immutable
//
// All transition checks live here and in the conditional updates in db.go;
// closure of a term blocks every mutation regardless of caller role.

import (
	"github.com/OkoroJesse/result-manager-sub000/app/models"
)

// editable reports whether a save may touch a result in the given status.
// The status lock binds admins too; only the assignment check is waived for
// them.
func editable(status models.ResultStatus) bool {
	return status == models.ResultDraft
}

// missingStudents returns the roster students that have no result row in the
// submission context. Rows already past draft count as present: a partially
// approved roster can still be resubmitted for its remaining drafts.
func missingStudents(roster []*models.Student, results []*models.Result) []*models.Student {
	have := make(map[string]bool, len(results))
	for _, r := range results {
		have[r.StudentID] = true
	}

	var missing []*models.Student
	for _, s := range roster {
		if !have[s.ID] {
			missing = append(missing, s)
		}
	}
	return missing
}

// foreignDrafts returns the draft rows entered by someone other than the
// submitting teacher. Any such row rejects the whole batch: a teacher may
// only submit drafts they own.
func foreignDrafts(results []*models.Result, teacherID string) []*models.Result {
	var foreign []*models.Result
	for _, r := range results {
		if r.Status == models.ResultDraft && r.EnteredBy != teacherID {
			foreign = append(foreign, r)
		}
	}
	return foreign
}

// countDrafts returns how many rows in the context are still drafts.
func countDrafts(results []*models.Result) int {
	n := 0
	for _, r := range results {
		if r.Status == models.ResultDraft {
			n++
		}
	}
	return n
}

// studentNames renders a readable list for completeness errors.
func studentNames(students []*models.Student) []string {
	names := make([]string, len(students))
	for i, s := range students {
		names[i] = s.FullName()
	}
	return names
}
