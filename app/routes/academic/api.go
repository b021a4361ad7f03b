package academic

import (
	"database/sql"
	"errors"

	"github.com/OkoroJesse/result-manager-sub000/app/apperrors"
	"github.com/OkoroJesse/result-manager-sub000/app/models"

	"github.com/gofiber/fiber/v2"
)

// GetAllSessionsHandler returns all academic sessions with their terms.
func GetAllSessionsHandler(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sessions, err := getAllSessions(db)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve sessions"})
		}
		for _, s := range sessions {
			terms, err := getTermsBySession(db, s.ID)
			if err == nil {
				s.Terms = terms
			}
		}
		return c.JSON(sessions)
	}
}

func GetSessionHandler(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		session, err := getSessionByID(db, c.Params("id"))
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve session"})
		}
		if session == nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Session not found"})
		}
		terms, err := getTermsBySession(db, session.ID)
		if err == nil {
			session.Terms = terms
		}
		return c.JSON(session)
	}
}

func CreateSessionHandler(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var session models.AcademicSession
		if err := c.BodyParser(&session); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body: " + err.Error()})
		}

		if session.Name == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Session name is required"})
		}
		if !datesOrdered(session.StartDate.Time, session.EndDate.Time) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "End date must be after start date"})
		}

		if err := createSession(db, &session); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create session: " + err.Error()})
		}
		return c.Status(fiber.StatusCreated).JSON(session)
	}
}

func UpdateSessionHandler(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var session models.AcademicSession
		if err := c.BodyParser(&session); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
		}
		session.ID = c.Params("id")

		if !datesOrdered(session.StartDate.Time, session.EndDate.Time) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "End date must be after start date"})
		}

		if err := updateSession(db, &session); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Session not found"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update session"})
		}
		return c.JSON(session)
	}
}

// ActivateSessionHandler makes the target the single active session.
// Activating an already-active session is a no-op success.
func ActivateSessionHandler(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := activateSession(db, c.Params("id")); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Session not found"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to activate session"})
		}
		return c.JSON(fiber.Map{"success": true, "message": "Session activated"})
	}
}

func GetTermsBySessionHandler(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		terms, err := getTermsBySession(db, c.Params("sessionId"))
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve terms"})
		}
		return c.JSON(terms)
	}
}

func GetTermHandler(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		term, err := getTermByID(db, c.Params("id"))
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve term"})
		}
		if term == nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Term not found"})
		}
		return c.JSON(term)
	}
}

func CreateTermHandler(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var term models.Term
		if err := c.BodyParser(&term); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body: " + err.Error()})
		}

		if term.Name == "" || term.SessionID == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Term name and session_id are required"})
		}
		if !datesOrdered(term.StartDate.Time, term.EndDate.Time) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "End date must be after start date"})
		}

		session, err := getSessionByID(db, term.SessionID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to look up session"})
		}
		if session == nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Session not found"})
		}
		if !termWithinSession(term.StartDate.Time, term.EndDate.Time, session.StartDate.Time, session.EndDate.Time) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Term dates must fall within the session dates"})
		}

		if err := createTerm(db, &term); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create term: " + err.Error()})
		}
		return c.Status(fiber.StatusCreated).JSON(term)
	}
}

func UpdateTermHandler(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var term models.Term
		if err := c.BodyParser(&term); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
		}
		term.ID = c.Params("id")

		existing, err := getTermByID(db, term.ID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to look up term"})
		}
		if existing == nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Term not found"})
		}
		if !datesOrdered(term.StartDate.Time, term.EndDate.Time) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "End date must be after start date"})
		}
		if existing.Session != nil &&
			!termWithinSession(term.StartDate.Time, term.EndDate.Time, existing.Session.StartDate.Time, existing.Session.EndDate.Time) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Term dates must fall within the session dates"})
		}

		if err := updateTerm(db, &term); err != nil {
			var conflict apperrors.StateConflictError
			if errors.As(err, &conflict) {
				return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": conflict.Error()})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update term"})
		}
		return c.JSON(term)
	}
}

// ActivateTermHandler activates a term. The parent session must be the
// currently active session; activating a term of an inactive session is a
// validation error, not a silent no-op.
func ActivateTermHandler(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := activateTerm(db, c.Params("id")); err != nil {
			switch {
			case errors.Is(err, sql.ErrNoRows):
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Term not found"})
			case errors.Is(err, apperrors.ErrSessionNotActive):
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": apperrors.ErrSessionNotActive.Error()})
			default:
				var conflict apperrors.StateConflictError
				if errors.As(err, &conflict) {
					return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": conflict.Error()})
				}
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to activate term"})
			}
		}
		return c.JSON(fiber.Map{"success": true, "message": "Term activated"})
	}
}

// CloseTermHandler permanently closes a term. Idempotent toward closed.
func CloseTermHandler(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := closeTerm(db, c.Params("id")); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Term not found"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to close term"})
		}
		return c.JSON(fiber.Map{"success": true, "message": "Term closed; its results are now permanently locked"})
	}
}

// GetActiveHandler returns the current session and term, null when none.
func GetActiveHandler(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		session, term, err := getActive(db)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve active calendar"})
		}
		return c.JSON(fiber.Map{"session": session, "term": term})
	}
}
