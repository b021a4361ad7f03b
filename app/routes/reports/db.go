package reports

import (
	"database/sql"
	"fmt"

	"github.com/OkoroJesse/result-manager-sub000/app/models"
)

// Only approved results feed reports. No other read path to "final" scores
// is sanctioned.

func getApprovedResultsByStudent(db *sql.DB, studentID, sessionID, termID string) ([]*models.Result, error) {
	query := `SELECT r.id, r.subject_id, r.ca_score, r.test_score, r.exam_score,
			  r.total, r.grade, r.remark,
			  sub.name, sub.code
			  FROM results r
			  JOIN subjects sub ON r.subject_id = sub.id
			  WHERE r.student_id = $1 AND r.session_id = $2 AND r.term_id = $3
			  AND r.status = 'approved'
			  ORDER BY sub.name`

	rows, err := db.Query(query, studentID, sessionID, termID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch approved results: %w", err)
	}
	defer rows.Close()

	var results []*models.Result
	for rows.Next() {
		r := &models.Result{StudentID: studentID, SessionID: sessionID, TermID: termID, Status: models.ResultApproved}
		subject := &models.Subject{}
		err := rows.Scan(&r.ID, &r.SubjectID, &r.CAScore, &r.TestScore, &r.ExamScore,
			&r.Total, &r.Grade, &r.Remark,
			&subject.Name, &subject.Code)
		if err != nil {
			return nil, fmt.Errorf("failed to scan approved result: %w", err)
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

// StudentAggregate is one row of a class broadsheet.
type StudentAggregate struct {
	StudentID   string  `json:"student_id"`
	AdmissionNo string  `json:"admission_no"`
	Name        string  `json:"name"`
	Subjects    int     `json:"subjects"`
	Total       float64 `json:"total"`
	Average     float64 `json:"average"`
	Position    int     `json:"position"`
}

func getClassAggregates(db *sql.DB, classID, sessionID, termID string) ([]*StudentAggregate, error) {
	query := `SELECT r.student_id, s.admission_no, s.first_name, s.last_name,
			  COUNT(*), SUM(r.total), AVG(r.total)
			  FROM results r
			  JOIN students s ON r.student_id = s.id
			  WHERE r.class_id = $1 AND r.session_id = $2 AND r.term_id = $3
			  AND r.status = 'approved'
			  GROUP BY r.student_id, s.admission_no, s.first_name, s.last_name
			  ORDER BY AVG(r.total) DESC`

	rows, err := db.Query(query, classID, sessionID, termID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch class aggregates: %w", err)
	}
	defer rows.Close()

	var aggregates []*StudentAggregate
	for rows.Next() {
		a := &StudentAggregate{}
		var firstName, lastName string
		err := rows.Scan(&a.StudentID, &a.AdmissionNo, &firstName, &lastName,
			&a.Subjects, &a.Total, &a.Average)
		if err != nil {
			return nil, fmt.Errorf("failed to scan aggregate: %w", err)
		}
		a.Name = firstName + " " + lastName
		aggregates = append(aggregates, a)
	}

	if aggregates == nil {
		aggregates = []*StudentAggregate{}
	}
	return aggregates, nil
}

func getStudentByID(db *sql.DB, id string) (*models.Student, error) {
	query := `SELECT id, admission_no, first_name, last_name, gender, class_id, status, created_at, updated_at
			  FROM students WHERE id = $1 AND deleted_at IS NULL`

	s := &models.Student{}
	err := db.QueryRow(query, id).Scan(&s.ID, &s.AdmissionNo, &s.FirstName, &s.LastName,
		&s.Gender, &s.ClassID, &s.Status, &s.CreatedAt, &s.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch student: %w", err)
	}
	return s, nil
}
