package assignments

import (
	"database/sql"
	"fmt"

	"github.com/OkoroJesse/result-manager-sub000/app/models"
)

// IsAssigned reports whether the teacher holds an active assignment for
// exactly this class, subject and session. An assignment from a prior session
// never authorises current-session actions.
func IsAssigned(db *sql.DB, teacherID, classID, subjectID, sessionID string) (bool, error) {
	query := `SELECT EXISTS (
			  SELECT 1 FROM teacher_assignments
			  WHERE teacher_id = $1 AND class_id = $2 AND subject_id = $3 AND session_id = $4
			  AND is_active = true
			  )`

	var assigned bool
	err := db.QueryRow(query, teacherID, classID, subjectID, sessionID).Scan(&assigned)
	if err != nil {
		return false, fmt.Errorf("failed to check assignment: %w", err)
	}
	return assigned, nil
}

// createAssignment upserts on the four-key tuple; re-creating a deactivated
// assignment reactivates it.
func createAssignment(db *sql.DB, a *models.TeacherAssignment) error {
	query := `INSERT INTO teacher_assignments (teacher_id, class_id, subject_id, session_id, is_active)
			  VALUES ($1, $2, $3, $4, true)
			  ON CONFLICT (teacher_id, class_id, subject_id, session_id)
			  DO UPDATE SET is_active = true, updated_at = NOW()
			  RETURNING id, is_active, created_at, updated_at`

	err := db.QueryRow(query, a.TeacherID, a.ClassID, a.SubjectID, a.SessionID).
		Scan(&a.ID, &a.IsActive, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create assignment: %w", err)
	}
	return nil
}

func deactivateAssignment(db *sql.DB, id string) error {
	res, err := db.Exec(`UPDATE teacher_assignments SET is_active = false, updated_at = NOW() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to deactivate assignment: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

type AssignmentFilters struct {
	TeacherID string
	ClassID   string
	SessionID string
}

func listAssignments(db *sql.DB, f AssignmentFilters) ([]*models.TeacherAssignment, error) {
	query := `SELECT a.id, a.teacher_id, a.class_id, a.subject_id, a.session_id, a.is_active,
			  a.created_at, a.updated_at,
			  u.first_name, u.last_name, u.email,
			  c.name, c.code,
			  sub.name, sub.code,
			  s.name
			  FROM teacher_assignments a
			  JOIN users u ON a.teacher_id = u.id
			  JOIN classes c ON a.class_id = c.id
			  JOIN subjects sub ON a.subject_id = sub.id
			  JOIN academic_sessions s ON a.session_id = s.id
			  WHERE a.is_active = true`

	args := []interface{}{}
	if f.TeacherID != "" {
		args = append(args, f.TeacherID)
		query += fmt.Sprintf(" AND a.teacher_id = $%d", len(args))
	}
	if f.ClassID != "" {
		args = append(args, f.ClassID)
		query += fmt.Sprintf(" AND a.class_id = $%d", len(args))
	}
	if f.SessionID != "" {
		args = append(args, f.SessionID)
		query += fmt.Sprintf(" AND a.session_id = $%d", len(args))
	}
	query += " ORDER BY c.name, sub.name"

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch assignments: %w", err)
	}
	defer rows.Close()

	var assignments []*models.TeacherAssignment
	for rows.Next() {
		a := &models.TeacherAssignment{}
		teacher := &models.User{}
		class := &models.Class{}
		subject := &models.Subject{}
		session := &models.AcademicSession{}

		err := rows.Scan(&a.ID, &a.TeacherID, &a.ClassID, &a.SubjectID, &a.SessionID, &a.IsActive,
			&a.CreatedAt, &a.UpdatedAt,
			&teacher.FirstName, &teacher.LastName, &teacher.Email,
			&class.Name, &class.Code,
			&subject.Name, &subject.Code,
			&session.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to scan assignment: %w", err)
		}

		teacher.ID = a.TeacherID
		class.ID = a.ClassID
		subject.ID = a.SubjectID
		session.ID = a.SessionID
		a.Teacher = teacher
		a.Class = class
		a.Subject = subject
		a.Session = session
		assignments = append(assignments, a)
	}

	if assignments == nil {
		assignments = []*models.TeacherAssignment{}
	}
	return assignments, nil
}
