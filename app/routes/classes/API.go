package classes

import (
	"database/sql"

	"github.com/OkoroJesse/result-manager-sub000/app/database"
	"github.com/OkoroJesse/result-manager-sub000/app/models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

type ClassRequest struct {
	Name      string  `json:"name" validate:"required"`
	Code      string  `json:"code" validate:"required"`
	TeacherID *string `json:"teacher_id" validate:"omitempty,uuid"`
}

func GetClasses(c *fiber.Ctx, db *sql.DB) error {
	query := `SELECT c.id, c.name, c.code, c.teacher_id, c.is_active, c.created_at, c.updated_at,
			  COALESCE(s.student_count, 0) as student_count
			  FROM classes c
			  LEFT JOIN (
				  SELECT class_id, COUNT(*) as student_count
				  FROM students
				  WHERE status = 'active' AND deleted_at IS NULL
				  GROUP BY class_id
			  ) s ON c.id = s.class_id
			  WHERE c.is_active = true AND c.deleted_at IS NULL
			  ORDER BY c.name`

	rows, err := db.Query(query)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch classes"})
	}
	defer rows.Close()

	var classes []*models.Class
	for rows.Next() {
		class := &models.Class{}
		err := rows.Scan(&class.ID, &class.Name, &class.Code, &class.TeacherID,
			&class.IsActive, &class.CreatedAt, &class.UpdatedAt, &class.StudentCount)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to scan class"})
		}
		classes = append(classes, class)
	}
	if classes == nil {
		classes = []*models.Class{}
	}

	return c.JSON(classes)
}

func GetClass(c *fiber.Ctx, db *sql.DB) error {
	query := `SELECT id, name, code, teacher_id, is_active, created_at, updated_at
			  FROM classes WHERE id = $1 AND deleted_at IS NULL`

	class := &models.Class{}
	err := db.QueryRow(query, c.Params("id")).Scan(&class.ID, &class.Name, &class.Code,
		&class.TeacherID, &class.IsActive, &class.CreatedAt, &class.UpdatedAt)
	if err == sql.ErrNoRows {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Class not found"})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch class"})
	}

	return c.JSON(class)
}

// GetClassStudents returns the active roster used for result entry.
func GetClassStudents(c *fiber.Ctx, db *sql.DB) error {
	students, err := database.GetActiveStudentsByClass(db, c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch class roster"})
	}
	return c.JSON(students)
}

// GetClassSubjects returns the curriculum mapped onto a class.
func GetClassSubjects(c *fiber.Ctx, db *sql.DB) error {
	query := `SELECT s.id, s.name, s.code, cs.is_compulsory
			  FROM class_subjects cs
			  JOIN subjects s ON cs.subject_id = s.id
			  WHERE cs.class_id = $1 AND cs.deleted_at IS NULL AND s.deleted_at IS NULL
			  ORDER BY s.name`

	rows, err := db.Query(query, c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch class subjects"})
	}
	defer rows.Close()

	type classSubject struct {
		ID           string `json:"id"`
		Name         string `json:"name"`
		Code         string `json:"code"`
		IsCompulsory bool   `json:"is_compulsory"`
	}
	var subjects []classSubject
	for rows.Next() {
		var cs classSubject
		if err := rows.Scan(&cs.ID, &cs.Name, &cs.Code, &cs.IsCompulsory); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to scan class subject"})
		}
		subjects = append(subjects, cs)
	}
	if subjects == nil {
		subjects = []classSubject{}
	}

	return c.JSON(subjects)
}

func CreateClass(c *fiber.Ctx, db *sql.DB) error {
	var req ClassRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	query := `INSERT INTO classes (name, code, teacher_id)
			  VALUES ($1, $2, $3)
			  RETURNING id, is_active, created_at, updated_at`

	class := &models.Class{Name: req.Name, Code: req.Code, TeacherID: req.TeacherID}
	err := db.QueryRow(query, req.Name, req.Code, req.TeacherID).
		Scan(&class.ID, &class.IsActive, &class.CreatedAt, &class.UpdatedAt)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create class: " + err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(class)
}

func UpdateClass(c *fiber.Ctx, db *sql.DB) error {
	var req ClassRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	query := `UPDATE classes SET name = $1, code = $2, teacher_id = $3, updated_at = NOW()
			  WHERE id = $4 AND deleted_at IS NULL`

	res, err := db.Exec(query, req.Name, req.Code, req.TeacherID, c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update class"})
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Class not found"})
	}

	return c.JSON(fiber.Map{"success": true, "message": "Class updated"})
}
