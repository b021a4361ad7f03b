package subjects

import (
	"database/sql"

	"github.com/OkoroJesse/result-manager-sub000/app/models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

type SubjectRequest struct {
	Name string `json:"name" validate:"required"`
	Code string `json:"code" validate:"required"`
}

type MapSubjectRequest struct {
	ClassID      string `json:"class_id" validate:"required,uuid"`
	SubjectID    string `json:"subject_id" validate:"required,uuid"`
	IsCompulsory bool   `json:"is_compulsory"`
}

func GetSubjects(c *fiber.Ctx, db *sql.DB) error {
	query := `SELECT id, name, code, is_active, created_at, updated_at
			  FROM subjects WHERE deleted_at IS NULL
			  ORDER BY name`

	rows, err := db.Query(query)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch subjects"})
	}
	defer rows.Close()

	var subjects []*models.Subject
	for rows.Next() {
		s := &models.Subject{}
		err := rows.Scan(&s.ID, &s.Name, &s.Code, &s.IsActive, &s.CreatedAt, &s.UpdatedAt)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to scan subject"})
		}
		subjects = append(subjects, s)
	}
	if subjects == nil {
		subjects = []*models.Subject{}
	}

	return c.JSON(subjects)
}

func GetSubject(c *fiber.Ctx, db *sql.DB) error {
	query := `SELECT id, name, code, is_active, created_at, updated_at
			  FROM subjects WHERE id = $1 AND deleted_at IS NULL`

	s := &models.Subject{}
	err := db.QueryRow(query, c.Params("id")).Scan(&s.ID, &s.Name, &s.Code, &s.IsActive, &s.CreatedAt, &s.UpdatedAt)
	if err == sql.ErrNoRows {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Subject not found"})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch subject"})
	}

	return c.JSON(s)
}

func CreateSubject(c *fiber.Ctx, db *sql.DB) error {
	var req SubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	query := `INSERT INTO subjects (name, code)
			  VALUES ($1, $2)
			  RETURNING id, is_active, created_at, updated_at`

	s := &models.Subject{Name: req.Name, Code: req.Code}
	err := db.QueryRow(query, req.Name, req.Code).Scan(&s.ID, &s.IsActive, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create subject: " + err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(s)
}

func UpdateSubject(c *fiber.Ctx, db *sql.DB) error {
	var req SubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	query := `UPDATE subjects SET name = $1, code = $2, updated_at = NOW()
			  WHERE id = $3 AND deleted_at IS NULL`

	res, err := db.Exec(query, req.Name, req.Code, c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update subject"})
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Subject not found"})
	}

	return c.JSON(fiber.Map{"success": true, "message": "Subject updated"})
}

// MapSubjectToClass attaches a subject to a class curriculum. Re-mapping an
// existing pair just updates the compulsory flag.
func MapSubjectToClass(c *fiber.Ctx, db *sql.DB) error {
	var req MapSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	query := `INSERT INTO class_subjects (class_id, subject_id, is_compulsory)
			  VALUES ($1, $2, $3)
			  ON CONFLICT (class_id, subject_id)
			  DO UPDATE SET is_compulsory = EXCLUDED.is_compulsory, deleted_at = NULL, updated_at = NOW()`

	_, err := db.Exec(query, req.ClassID, req.SubjectID, req.IsCompulsory)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to map subject: " + err.Error()})
	}

	return c.JSON(fiber.Map{"success": true, "message": "Subject mapped to class"})
}

// UnmapSubjectFromClass removes a subject from a class curriculum.
func UnmapSubjectFromClass(c *fiber.Ctx, db *sql.DB) error {
	query := `UPDATE class_subjects SET deleted_at = NOW()
			  WHERE class_id = $1 AND subject_id = $2 AND deleted_at IS NULL`

	res, err := db.Exec(query, c.Query("class_id"), c.Query("subject_id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to unmap subject"})
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Mapping not found"})
	}

	return c.JSON(fiber.Map{"success": true, "message": "Subject unmapped from class"})
}
