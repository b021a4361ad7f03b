package results

import (
	"database/sql"
	"fmt"

	"github.com/OkoroJesse/result-manager-sub000/app/models"

	"github.com/lib/pq"
)

// getTermStatus looks up the status of a term. Returns found=false when the
// term does not exist.
func getTermStatus(db *sql.DB, termID string) (models.TermStatus, bool, error) {
	var status models.TermStatus
	err := db.QueryRow(`SELECT status FROM terms WHERE id = $1 AND deleted_at IS NULL`, termID).Scan(&status)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to fetch term: %w", err)
	}
	return status, true, nil
}

// getResultByKey fetches the single result for the four-part tuple, or nil.
func getResultByKey(db *sql.DB, studentID, subjectID, sessionID, termID string) (*models.Result, error) {
	query := `SELECT id, student_id, class_id, subject_id, session_id, term_id,
			  ca_score, test_score, exam_score, total, grade, remark, status,
			  entered_by, approved_by, created_at, updated_at
			  FROM results
			  WHERE student_id = $1 AND subject_id = $2 AND session_id = $3 AND term_id = $4`

	r := &models.Result{}
	err := db.QueryRow(query, studentID, subjectID, sessionID, termID).Scan(
		&r.ID, &r.StudentID, &r.ClassID, &r.SubjectID, &r.SessionID, &r.TermID,
		&r.CAScore, &r.TestScore, &r.ExamScore, &r.Total, &r.Grade, &r.Remark, &r.Status,
		&r.EnteredBy, &r.ApprovedBy, &r.CreatedAt, &r.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch result: %w", err)
	}
	return r, nil
}

// upsertDraft saves a draft, collapsing to update-in-place on the uniqueness
// key. The status guard on the conflict branch makes the write conditional:
// a row already past draft is left untouched and reported as zero rows, so a
// racing submit cannot be overwritten.
func upsertDraft(db *sql.DB, r *models.Result) (bool, error) {
	query := `INSERT INTO results
			  (student_id, class_id, subject_id, session_id, term_id,
			   ca_score, test_score, exam_score, total, grade, remark, status, entered_by)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, 'draft', $12)
			  ON CONFLICT (student_id, subject_id, session_id, term_id)
			  DO UPDATE SET ca_score = EXCLUDED.ca_score, test_score = EXCLUDED.test_score,
					exam_score = EXCLUDED.exam_score, total = EXCLUDED.total,
					grade = EXCLUDED.grade, remark = EXCLUDED.remark,
					entered_by = EXCLUDED.entered_by, updated_at = NOW()
			  WHERE results.status = 'draft'
			  RETURNING id, status, created_at, updated_at`

	err := db.QueryRow(query,
		r.StudentID, r.ClassID, r.SubjectID, r.SessionID, r.TermID,
		r.CAScore, r.TestScore, r.ExamScore, r.Total, r.Grade, r.Remark, r.EnteredBy,
	).Scan(&r.ID, &r.Status, &r.CreatedAt, &r.UpdatedAt)

	if err == sql.ErrNoRows {
		// Conflict row exists but is no longer a draft.
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to save draft result: %w", err)
	}
	return true, nil
}

// getResultsByContext fetches all results for a class+subject+session+term
// with student details, the working set for submission and entry grids.
func getResultsByContext(db *sql.DB, classID, subjectID, sessionID, termID string) ([]*models.Result, error) {
	query := `SELECT r.id, r.student_id, r.class_id, r.subject_id, r.session_id, r.term_id,
			  r.ca_score, r.test_score, r.exam_score, r.total, r.grade, r.remark, r.status,
			  r.entered_by, r.approved_by, r.created_at, r.updated_at,
			  s.admission_no, s.first_name, s.last_name
			  FROM results r
			  JOIN students s ON r.student_id = s.id
			  WHERE r.class_id = $1 AND r.subject_id = $2 AND r.session_id = $3 AND r.term_id = $4
			  ORDER BY s.first_name, s.last_name`

	rows, err := db.Query(query, classID, subjectID, sessionID, termID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch results: %w", err)
	}
	defer rows.Close()

	var results []*models.Result
	for rows.Next() {
		r := &models.Result{}
		student := &models.Student{}
		err := rows.Scan(
			&r.ID, &r.StudentID, &r.ClassID, &r.SubjectID, &r.SessionID, &r.TermID,
			&r.CAScore, &r.TestScore, &r.ExamScore, &r.Total, &r.Grade, &r.Remark, &r.Status,
			&r.EnteredBy, &r.ApprovedBy, &r.CreatedAt, &r.UpdatedAt,
			&student.AdmissionNo, &student.FirstName, &student.LastName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan result: %w", err)
		}
		student.ID = r.StudentID
		r.Student = student
		results = append(results, r)
	}

	if results == nil {
		results = []*models.Result{}
	}
	return results, nil
}

// submitBatch flips every draft the teacher owns in the context to submitted
// as one conditional bulk update. The status and ownership predicates run in
// the database, so a concurrent transition simply reduces the affected count.
func submitBatch(db *sql.DB, classID, subjectID, sessionID, termID, teacherID string) (int64, error) {
	query := `UPDATE results
			  SET status = 'submitted', updated_at = NOW()
			  WHERE class_id = $1 AND subject_id = $2 AND session_id = $3 AND term_id = $4
			  AND status = 'draft' AND entered_by = $5`

	res, err := db.Exec(query, classID, subjectID, sessionID, termID, teacherID)
	if err != nil {
		return 0, fmt.Errorf("failed to submit results: %w", err)
	}
	return res.RowsAffected()
}

// approveBatch transitions the listed submitted results to approved,
// stamping the approver. Rows not in submitted state or bound to a closed
// term are excluded by the predicate, never erred on.
func approveBatch(db *sql.DB, resultIDs []string, approverID string) (int64, error) {
	query := `UPDATE results r
			  SET status = 'approved', approved_by = $2, updated_at = NOW()
			  FROM terms t
			  WHERE r.term_id = t.id AND r.id = ANY($1)
			  AND r.status = 'submitted' AND t.status != 'closed'`

	res, err := db.Exec(query, pq.Array(resultIDs), approverID)
	if err != nil {
		return 0, fmt.Errorf("failed to approve results: %w", err)
	}
	return res.RowsAffected()
}

// rejectBatch returns the listed submitted results to draft, dropping any
// approver stamp, so the entering teacher can re-edit and resubmit.
func rejectBatch(db *sql.DB, resultIDs []string) (int64, error) {
	query := `UPDATE results r
			  SET status = 'draft', approved_by = NULL, updated_at = NOW()
			  FROM terms t
			  WHERE r.term_id = t.id AND r.id = ANY($1)
			  AND r.status = 'submitted' AND t.status != 'closed'`

	res, err := db.Exec(query, pq.Array(resultIDs))
	if err != nil {
		return 0, fmt.Errorf("failed to reject results: %w", err)
	}
	return res.RowsAffected()
}

// getResultsByStudent lists a student's results for a session+term, any
// status, with subject details.
func getResultsByStudent(db *sql.DB, studentID, sessionID, termID string) ([]*models.Result, error) {
	query := `SELECT r.id, r.student_id, r.class_id, r.subject_id, r.session_id, r.term_id,
			  r.ca_score, r.test_score, r.exam_score, r.total, r.grade, r.remark, r.status,
			  r.entered_by, r.approved_by, r.created_at, r.updated_at,
			  sub.name, sub.code
			  FROM results r
			  JOIN subjects sub ON r.subject_id = sub.id
			  WHERE r.student_id = $1 AND r.session_id = $2 AND r.term_id = $3
			  ORDER BY sub.name`

	rows, err := db.Query(query, studentID, sessionID, termID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch student results: %w", err)
	}
	defer rows.Close()

	var results []*models.Result
	for rows.Next() {
		r := &models.Result{}
		subject := &models.Subject{}
		err := rows.Scan(
			&r.ID, &r.StudentID, &r.ClassID, &r.SubjectID, &r.SessionID, &r.TermID,
			&r.CAScore, &r.TestScore, &r.ExamScore, &r.Total, &r.Grade, &r.Remark, &r.Status,
			&r.EnteredBy, &r.ApprovedBy, &r.CreatedAt, &r.UpdatedAt,
			&subject.Name, &subject.Code,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan student result: %w", err)
		}
		subject.ID = r.SubjectID
		r.Subject = subject
		results = append(results, r)
	}

	if results == nil {
		results = []*models.Result{}
	}
	return results, nil
}
