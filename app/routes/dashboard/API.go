package dashboard

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"
)

type Stats struct {
	Students         int `json:"students"`
	Teachers         int `json:"teachers"`
	Classes          int `json:"classes"`
	Subjects         int `json:"subjects"`
	PendingApprovals int `json:"pending_approvals"`
	DraftResults     int `json:"draft_results"`
	ApprovedResults  int `json:"approved_results"`
}

// GetStats returns headline counts for the admin landing page. Result counts
// are scoped to the active term so the numbers reset each term.
func GetStats(c *fiber.Ctx, db *sql.DB) error {
	query := `SELECT
		(SELECT COUNT(*) FROM students WHERE status = 'active' AND deleted_at IS NULL),
		(SELECT COUNT(*) FROM users u
			JOIN user_roles ur ON u.id = ur.user_id
			JOIN roles r ON ur.role_id = r.id
			WHERE r.name = 'teacher' AND u.is_active = true AND u.deleted_at IS NULL),
		(SELECT COUNT(*) FROM classes WHERE is_active = true AND deleted_at IS NULL),
		(SELECT COUNT(*) FROM subjects WHERE is_active = true AND deleted_at IS NULL),
		(SELECT COUNT(*) FROM results res JOIN terms t ON res.term_id = t.id
			WHERE res.status = 'submitted' AND t.is_active = true),
		(SELECT COUNT(*) FROM results res JOIN terms t ON res.term_id = t.id
			WHERE res.status = 'draft' AND t.is_active = true),
		(SELECT COUNT(*) FROM results res JOIN terms t ON res.term_id = t.id
			WHERE res.status = 'approved' AND t.is_active = true)`

	var s Stats
	err := db.QueryRow(query).Scan(&s.Students, &s.Teachers, &s.Classes, &s.Subjects,
		&s.PendingApprovals, &s.DraftResults, &s.ApprovedResults)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch dashboard stats"})
	}

	return c.JSON(s)
}
