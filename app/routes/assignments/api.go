package assignments

import (
	"database/sql"
	"errors"

	"github.com/OkoroJesse/result-manager-sub000/app/models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// CreateAssignmentRequest grants a teacher entry rights for a class+subject
// in one session.
type CreateAssignmentRequest struct {
	TeacherID string `json:"teacher_id" validate:"required,uuid"`
	ClassID   string `json:"class_id" validate:"required,uuid"`
	SubjectID string `json:"subject_id" validate:"required,uuid"`
	SessionID string `json:"session_id" validate:"required,uuid"`
}

func CreateAssignment(c *fiber.Ctx, db *sql.DB) error {
	var req CreateAssignmentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	assignment := &models.TeacherAssignment{
		TeacherID: req.TeacherID,
		ClassID:   req.ClassID,
		SubjectID: req.SubjectID,
		SessionID: req.SessionID,
	}
	if err := createAssignment(db, assignment); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create assignment"})
	}

	return c.Status(fiber.StatusCreated).JSON(assignment)
}

func GetAssignments(c *fiber.Ctx, db *sql.DB) error {
	filters := AssignmentFilters{
		TeacherID: c.Query("teacher_id"),
		ClassID:   c.Query("class_id"),
		SessionID: c.Query("session_id"),
	}

	assignments, err := listAssignments(db, filters)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch assignments"})
	}
	return c.JSON(assignments)
}

func DeactivateAssignment(c *fiber.Ctx, db *sql.DB) error {
	if err := deactivateAssignment(db, c.Params("id")); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Assignment not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to deactivate assignment"})
	}
	return c.JSON(fiber.Map{"success": true, "message": "Assignment deactivated"})
}
