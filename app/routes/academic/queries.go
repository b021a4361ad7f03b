package academic

import (
	"database/sql"
	"fmt"

	"github.com/OkoroJesse/result-manager-sub000/app/apperrors"
	"github.com/OkoroJesse/result-manager-sub000/app/models"
)

func getAllSessions(db *sql.DB) ([]*models.AcademicSession, error) {
	query := `SELECT id, name, start_date, end_date, is_active, created_at, updated_at
			  FROM academic_sessions
			  WHERE deleted_at IS NULL
			  ORDER BY start_date DESC`

	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch sessions: %w", err)
	}
	defer rows.Close()

	var sessions []*models.AcademicSession
	for rows.Next() {
		s := &models.AcademicSession{}
		err := rows.Scan(&s.ID, &s.Name, &s.StartDate.Time, &s.EndDate.Time,
			&s.IsActive, &s.CreatedAt, &s.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		sessions = append(sessions, s)
	}
	if sessions == nil {
		sessions = []*models.AcademicSession{}
	}
	return sessions, nil
}

func getSessionByID(db *sql.DB, id string) (*models.AcademicSession, error) {
	query := `SELECT id, name, start_date, end_date, is_active, created_at, updated_at
			  FROM academic_sessions WHERE id = $1 AND deleted_at IS NULL`

	s := &models.AcademicSession{}
	err := db.QueryRow(query, id).Scan(&s.ID, &s.Name, &s.StartDate.Time, &s.EndDate.Time,
		&s.IsActive, &s.CreatedAt, &s.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch session: %w", err)
	}
	return s, nil
}

func createSession(db *sql.DB, s *models.AcademicSession) error {
	query := `INSERT INTO academic_sessions (name, start_date, end_date)
			  VALUES ($1, $2, $3)
			  RETURNING id, is_active, created_at, updated_at`

	err := db.QueryRow(query, s.Name, s.StartDate.Time, s.EndDate.Time).
		Scan(&s.ID, &s.IsActive, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	return nil
}

func updateSession(db *sql.DB, s *models.AcademicSession) error {
	query := `UPDATE academic_sessions
			  SET name = $1, start_date = $2, end_date = $3, updated_at = NOW()
			  WHERE id = $4 AND deleted_at IS NULL
			  RETURNING updated_at`

	err := db.QueryRow(query, s.Name, s.StartDate.Time, s.EndDate.Time, s.ID).Scan(&s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update session: %w", err)
	}
	return nil
}

// activateSession flips the single-active flag transactionally: all other
// sessions are deactivated and the target activated in one commit, so no
// request ever observes two active sessions.
func activateSession(db *sql.DB, id string) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`UPDATE academic_sessions SET is_active = false, updated_at = NOW() WHERE id != $1 AND is_active = true`, id); err != nil {
		return fmt.Errorf("failed to deactivate sessions: %w", err)
	}

	res, err := tx.Exec(`UPDATE academic_sessions SET is_active = true, updated_at = NOW() WHERE id = $1 AND deleted_at IS NULL`, id)
	if err != nil {
		return fmt.Errorf("failed to activate session: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}

	return tx.Commit()
}

func getTermsBySession(db *sql.DB, sessionID string) ([]*models.Term, error) {
	query := `SELECT id, session_id, name, start_date, end_date, status, is_active, created_at, updated_at
			  FROM terms
			  WHERE session_id = $1 AND deleted_at IS NULL
			  ORDER BY start_date`

	rows, err := db.Query(query, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch terms: %w", err)
	}
	defer rows.Close()

	var terms []*models.Term
	for rows.Next() {
		t := &models.Term{}
		err := rows.Scan(&t.ID, &t.SessionID, &t.Name, &t.StartDate.Time, &t.EndDate.Time,
			&t.Status, &t.IsActive, &t.CreatedAt, &t.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan term: %w", err)
		}
		terms = append(terms, t)
	}
	if terms == nil {
		terms = []*models.Term{}
	}
	return terms, nil
}

func getTermByID(db *sql.DB, id string) (*models.Term, error) {
	query := `SELECT t.id, t.session_id, t.name, t.start_date, t.end_date, t.status, t.is_active,
			  t.created_at, t.updated_at,
			  s.id, s.name, s.start_date, s.end_date, s.is_active
			  FROM terms t
			  JOIN academic_sessions s ON t.session_id = s.id
			  WHERE t.id = $1 AND t.deleted_at IS NULL`

	t := &models.Term{}
	s := &models.AcademicSession{}
	err := db.QueryRow(query, id).Scan(&t.ID, &t.SessionID, &t.Name, &t.StartDate.Time, &t.EndDate.Time,
		&t.Status, &t.IsActive, &t.CreatedAt, &t.UpdatedAt,
		&s.ID, &s.Name, &s.StartDate.Time, &s.EndDate.Time, &s.IsActive)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch term: %w", err)
	}
	t.Session = s
	return t, nil
}

func createTerm(db *sql.DB, t *models.Term) error {
	query := `INSERT INTO terms (session_id, name, start_date, end_date)
			  VALUES ($1, $2, $3, $4)
			  RETURNING id, status, is_active, created_at, updated_at`

	err := db.QueryRow(query, t.SessionID, t.Name, t.StartDate.Time, t.EndDate.Time).
		Scan(&t.ID, &t.Status, &t.IsActive, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create term: %w", err)
	}
	return nil
}

func updateTerm(db *sql.DB, t *models.Term) error {
	query := `UPDATE terms
			  SET name = $1, start_date = $2, end_date = $3, updated_at = NOW()
			  WHERE id = $4 AND status != 'closed' AND deleted_at IS NULL
			  RETURNING updated_at`

	err := db.QueryRow(query, t.Name, t.StartDate.Time, t.EndDate.Time, t.ID).Scan(&t.UpdatedAt)
	if err == sql.ErrNoRows {
		return apperrors.StateConflictError{Action: "update", Current: string(models.TermClosed)}
	}
	if err != nil {
		return fmt.Errorf("failed to update term: %w", err)
	}
	return nil
}

// activateTerm activates a term under the same single-active discipline as
// sessions. The parent session must already be the active session.
func activateTerm(db *sql.DB, id string) error {
	term, err := getTermByID(db, id)
	if err != nil {
		return err
	}
	if term == nil {
		return sql.ErrNoRows
	}
	if term.Session == nil || !term.Session.IsActive {
		return apperrors.ErrSessionNotActive
	}
	if term.IsClosed() {
		return apperrors.StateConflictError{Action: "activate", Current: string(term.Status)}
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`UPDATE terms SET is_active = false, updated_at = NOW() WHERE id != $1 AND is_active = true`, id); err != nil {
		return fmt.Errorf("failed to deactivate terms: %w", err)
	}

	// Status guard repeated here so a concurrent close loses no ground.
	res, err := tx.Exec(`UPDATE terms SET is_active = true, status = 'active', updated_at = NOW()
			  WHERE id = $1 AND status != 'closed' AND deleted_at IS NULL`, id)
	if err != nil {
		return fmt.Errorf("failed to activate term: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperrors.StateConflictError{Action: "activate", Current: string(models.TermClosed)}
	}

	return tx.Commit()
}

// closeTerm is one-way: it marks the term closed and inactive. There is no
// reopen operation; closure is the archival boundary for report integrity.
func closeTerm(db *sql.DB, id string) error {
	res, err := db.Exec(`UPDATE terms SET status = 'closed', is_active = false, updated_at = NOW()
			  WHERE id = $1 AND deleted_at IS NULL`, id)
	if err != nil {
		return fmt.Errorf("failed to close term: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// getActive returns the currently active session and term, either of which
// may be nil during administrative reconfiguration.
func getActive(db *sql.DB) (*models.AcademicSession, *models.Term, error) {
	session := &models.AcademicSession{}
	err := db.QueryRow(`SELECT id, name, start_date, end_date, is_active, created_at, updated_at
			  FROM academic_sessions WHERE is_active = true AND deleted_at IS NULL`).
		Scan(&session.ID, &session.Name, &session.StartDate.Time, &session.EndDate.Time,
			&session.IsActive, &session.CreatedAt, &session.UpdatedAt)
	if err == sql.ErrNoRows {
		session = nil
	} else if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch active session: %w", err)
	}

	term := &models.Term{}
	err = db.QueryRow(`SELECT id, session_id, name, start_date, end_date, status, is_active, created_at, updated_at
			  FROM terms WHERE is_active = true AND deleted_at IS NULL`).
		Scan(&term.ID, &term.SessionID, &term.Name, &term.StartDate.Time, &term.EndDate.Time,
			&term.Status, &term.IsActive, &term.CreatedAt, &term.UpdatedAt)
	if err == sql.ErrNoRows {
		term = nil
	} else if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch active term: %w", err)
	}

	return session, term, nil
}
