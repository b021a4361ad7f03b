package models

// ResultStatus defines the lifecycle states of a result record.
// A rejected result returns to draft; "rejected" is never stored.
type ResultStatus string

const (
	ResultDraft     ResultStatus = "draft"
	ResultSubmitted ResultStatus = "submitted"
	ResultApproved  ResultStatus = "approved"
)

// TermStatus defines the possible status values for a term.
// Closed is terminal: a closed term can never be reopened.
type TermStatus string

const (
	TermDraft  TermStatus = "draft"
	TermActive TermStatus = "active"
	TermClosed TermStatus = "closed"
)

// StudentStatus defines the enrollment status of a student.
type StudentStatus string

const (
	StudentActive      StudentStatus = "active"
	StudentInactive    StudentStatus = "inactive"
	StudentGraduated   StudentStatus = "graduated"
	StudentTransferred StudentStatus = "transferred"
)

// Gender defines the possible gender values for a student.
type Gender string

const (
	Male   Gender = "male"
	Female Gender = "female"
	Other  Gender = "other"
)

// Role names recognised by the auth layer. Roles are granted through the
// user_roles table and fixed into the JWT at login; they are never inferred
// from any other attribute at request time.
const (
	RoleAdmin   = "admin"
	RoleTeacher = "teacher"
)
