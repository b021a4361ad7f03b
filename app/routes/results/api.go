package results

import (
	"database/sql"

	"github.com/OkoroJesse/result-manager-sub000/app/apperrors"
	"github.com/OkoroJesse/result-manager-sub000/app/database"
	"github.com/OkoroJesse/result-manager-sub000/app/grading"
	"github.com/OkoroJesse/result-manager-sub000/app/models"
	"github.com/OkoroJesse/result-manager-sub000/app/routes/assignments"
	"github.com/OkoroJesse/result-manager-sub000/app/routes/auth"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// Machine-readable rejection codes so the UI can distinguish "not your
// class" from "missing students" from "term is locked".
const (
	codeNotAssigned      = "NOT_ASSIGNED"
	codeNotOwner         = "NOT_OWNER"
	codeStateConflict    = "STATE_CONFLICT"
	codeTermClosed       = "TERM_CLOSED"
	codeIncompleteRoster = "INCOMPLETE_ROSTER"
	codeNoEligibleRows   = "NO_ELIGIBLE_ROWS"
)

// SaveDraftRequest carries one student's component scores. The active
// session and term are explicit inputs, never ambient state.
type SaveDraftRequest struct {
	StudentID string  `json:"student_id" validate:"required,uuid"`
	ClassID   string  `json:"class_id" validate:"required,uuid"`
	SubjectID string  `json:"subject_id" validate:"required,uuid"`
	SessionID string  `json:"session_id" validate:"required,uuid"`
	TermID    string  `json:"term_id" validate:"required,uuid"`
	CAScore   float64 `json:"ca_score" validate:"gte=0"`
	TestScore float64 `json:"test_score" validate:"gte=0"`
	ExamScore float64 `json:"exam_score" validate:"gte=0"`
}

// SaveDraftResult upserts one draft score row. Teachers need an active
// assignment for the class+subject+session; admins bypass the assignment
// check but not the status lock or term closure.
func SaveDraftResult(c *fiber.Ctx, db *sql.DB) error {
	var req SaveDraftRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	claims := auth.GetClaims(c)

	termStatus, found, err := getTermStatus(db, req.TermID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to look up term"})
	}
	if !found {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Term not found"})
	}
	if termStatus == models.TermClosed {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": apperrors.ErrTermClosed.Error(), "code": codeTermClosed,
		})
	}

	if !claims.HasRole(models.RoleAdmin) {
		assigned, err := assignments.IsAssigned(db, claims.UserID, req.ClassID, req.SubjectID, req.SessionID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to check assignment"})
		}
		if !assigned {
			notAssigned := apperrors.NotAssignedError{
				TeacherID: claims.UserID, ClassID: req.ClassID,
				SubjectID: req.SubjectID, SessionID: req.SessionID,
			}
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": notAssigned.Error(), "code": codeNotAssigned,
			})
		}
	}

	existing, err := getResultByKey(db, req.StudentID, req.SubjectID, req.SessionID, req.TermID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to look up result"})
	}
	if existing != nil && !editable(existing.Status) {
		conflict := apperrors.StateConflictError{Action: "edit", Current: string(existing.Status)}
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": conflict.Error(), "code": codeStateConflict,
		})
	}

	rules, err := database.GetActiveGradingRules(db)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load grading rules"})
	}

	// Total, grade and remark are always re-derived at write time; they are
	// never accepted from the client.
	total := grading.ComputeTotal(req.CAScore, req.TestScore, req.ExamScore, grading.DefaultMaxima)
	grade, remark := grading.ComputeGrade(total, rules)

	result := &models.Result{
		StudentID: req.StudentID,
		ClassID:   req.ClassID,
		SubjectID: req.SubjectID,
		SessionID: req.SessionID,
		TermID:    req.TermID,
		CAScore:   req.CAScore,
		TestScore: req.TestScore,
		ExamScore: req.ExamScore,
		Total:     total,
		Grade:     grade,
		Remark:    remark,
		EnteredBy: claims.UserID,
	}

	saved, err := upsertDraft(db, result)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save result"})
	}
	if !saved {
		// Lost a race with a submit; report the same conflict as above.
		conflict := apperrors.StateConflictError{Action: "edit", Current: string(models.ResultSubmitted)}
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": conflict.Error(), "code": codeStateConflict,
		})
	}

	return c.JSON(fiber.Map{"success": true, "result": result})
}

// SubmitRequest identifies the batch: every active student in the class must
// hold a result for this subject+session+term before any row flips.
type SubmitRequest struct {
	ClassID   string `json:"class_id" validate:"required,uuid"`
	SubjectID string `json:"subject_id" validate:"required,uuid"`
	SessionID string `json:"session_id" validate:"required,uuid"`
	TermID    string `json:"term_id" validate:"required,uuid"`
}

// SubmitResults flips the full class/subject roster of drafts to submitted.
// All-or-nothing: assignment, completeness and ownership must all hold or
// zero rows change.
func SubmitResults(c *fiber.Ctx, db *sql.DB) error {
	var req SubmitRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	claims := auth.GetClaims(c)

	termStatus, found, err := getTermStatus(db, req.TermID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to look up term"})
	}
	if !found {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Term not found"})
	}
	if termStatus == models.TermClosed {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": apperrors.ErrTermClosed.Error(), "code": codeTermClosed,
		})
	}

	// Submission is strictly a teacher capability tied to ownership, so no
	// admin bypass here.
	assigned, err := assignments.IsAssigned(db, claims.UserID, req.ClassID, req.SubjectID, req.SessionID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to check assignment"})
	}
	if !assigned {
		notAssigned := apperrors.NotAssignedError{
			TeacherID: claims.UserID, ClassID: req.ClassID,
			SubjectID: req.SubjectID, SessionID: req.SessionID,
		}
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": notAssigned.Error(), "code": codeNotAssigned,
		})
	}

	roster, err := database.GetActiveStudentsByClass(db, req.ClassID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load class roster"})
	}

	ctxResults, err := getResultsByContext(db, req.ClassID, req.SubjectID, req.SessionID, req.TermID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load results"})
	}

	if missing := missingStudents(roster, ctxResults); len(missing) > 0 {
		incomplete := apperrors.IncompleteRosterError{Missing: studentNames(missing)}
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error":            incomplete.Error(),
			"code":             codeIncompleteRoster,
			"missing_students": studentNames(missing),
		})
	}

	if foreign := foreignDrafts(ctxResults, claims.UserID); len(foreign) > 0 {
		notOwner := apperrors.NotOwnerError{TeacherID: claims.UserID, Count: len(foreign)}
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": notOwner.Error(), "code": codeNotOwner,
		})
	}

	if countDrafts(ctxResults) == 0 {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": apperrors.ErrNoEligibleRows.Error(), "code": codeNoEligibleRows,
		})
	}

	count, err := submitBatch(db, req.ClassID, req.SubjectID, req.SessionID, req.TermID, claims.UserID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to submit results"})
	}

	return c.JSON(fiber.Map{"success": true, "count": count, "message": "Results submitted for approval"})
}

// ReviewRequest lists the results an admin is approving or rejecting.
type ReviewRequest struct {
	ResultIDs []string `json:"result_ids" validate:"required,min=1,dive,uuid"`
}

// ApproveResults finalises submitted results. Rows not in submitted state,
// or bound to a closed term, are silently excluded from the count; callers
// re-query afterwards.
func ApproveResults(c *fiber.Ctx, db *sql.DB) error {
	var req ReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	claims := auth.GetClaims(c)

	count, err := approveBatch(db, req.ResultIDs, claims.UserID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to approve results"})
	}

	return c.JSON(fiber.Map{"success": true, "count": count})
}

// RejectResults returns submitted results to draft for re-editing.
func RejectResults(c *fiber.Ctx, db *sql.DB) error {
	var req ReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	count, err := rejectBatch(db, req.ResultIDs)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to reject results"})
	}

	return c.JSON(fiber.Map{"success": true, "count": count})
}

// GetResults returns the entry grid for a class+subject+session+term.
func GetResults(c *fiber.Ctx, db *sql.DB) error {
	classID := c.Query("class_id")
	subjectID := c.Query("subject_id")
	sessionID := c.Query("session_id")
	termID := c.Query("term_id")
	if classID == "" || subjectID == "" || sessionID == "" || termID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "class_id, subject_id, session_id and term_id are required",
		})
	}

	results, err := getResultsByContext(db, classID, subjectID, sessionID, termID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch results"})
	}
	return c.JSON(results)
}

// GetStudentResults lists one student's results for a session+term.
func GetStudentResults(c *fiber.Ctx, db *sql.DB) error {
	studentID := c.Params("studentId")
	sessionID := c.Query("session_id")
	termID := c.Query("term_id")
	if sessionID == "" || termID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "session_id and term_id are required"})
	}

	results, err := getResultsByStudent(db, studentID, sessionID, termID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch student results"})
	}
	return c.JSON(results)
}
