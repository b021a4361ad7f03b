package apperrors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for conditions that carry no extra detail.
var (
	ErrTermClosed       = errors.New("term is closed: results in a closed term are permanently locked")
	ErrSessionNotActive = errors.New("parent session is not the active session")
	ErrNoEligibleRows   = errors.New("no eligible records for this transition")
)

// NotAssignedError reports that a teacher lacks an active assignment for the
// class+subject in the given session.
type NotAssignedError struct {
	TeacherID string
	ClassID   string
	SubjectID string
	SessionID string
}

func (e NotAssignedError) Error() string {
	return fmt.Sprintf("teacher %s is not assigned to class %s, subject %s in session %s",
		e.TeacherID, e.ClassID, e.SubjectID, e.SessionID)
}

// NotOwnerError reports an attempt to submit drafts entered by someone else.
type NotOwnerError struct {
	TeacherID string
	Count     int
}

func (e NotOwnerError) Error() string {
	return fmt.Sprintf("%d draft(s) in this batch were entered by another teacher; only their owner can submit them", e.Count)
}

// StateConflictError reports an action attempted from a status that
// disallows it.
type StateConflictError struct {
	Action  string
	Current string
}

func (e StateConflictError) Error() string {
	return fmt.Sprintf("cannot %s a result in %q status", e.Action, e.Current)
}

// IncompleteRosterError names every active student still missing a draft.
type IncompleteRosterError struct {
	Missing []string // student display names
}

func (e IncompleteRosterError) Error() string {
	return fmt.Sprintf("%d student(s) missing scores: %s", len(e.Missing), strings.Join(e.Missing, ", "))
}
