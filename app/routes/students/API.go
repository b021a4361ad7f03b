package students

import (
	"database/sql"
	"fmt"

	"github.com/OkoroJesse/result-manager-sub000/app/models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

type StudentRequest struct {
	AdmissionNo string  `json:"admission_no" validate:"required"`
	FirstName   string  `json:"first_name" validate:"required"`
	LastName    string  `json:"last_name" validate:"required"`
	Gender      string  `json:"gender" validate:"omitempty,oneof=male female other"`
	Address     string  `json:"address"`
	ClassID     *string `json:"class_id" validate:"omitempty,uuid"`
	Status      string  `json:"status" validate:"omitempty,oneof=active inactive graduated transferred"`
}

func GetStudents(c *fiber.Ctx, db *sql.DB) error {
	query := `SELECT id, admission_no, first_name, last_name, gender, address, class_id, status, created_at, updated_at
			  FROM students WHERE deleted_at IS NULL`

	args := []interface{}{}
	if classID := c.Query("class_id"); classID != "" {
		args = append(args, classID)
		query += fmt.Sprintf(" AND class_id = $%d", len(args))
	}
	if status := c.Query("status"); status != "" {
		args = append(args, status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if search := c.Query("search"); search != "" {
		args = append(args, "%"+search+"%")
		query += fmt.Sprintf(" AND (first_name ILIKE $%d OR last_name ILIKE $%d OR admission_no ILIKE $%d)",
			len(args), len(args), len(args))
	}
	query += " ORDER BY first_name, last_name"

	rows, err := db.Query(query, args...)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch students"})
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		s := &models.Student{}
		var address sql.NullString
		err := rows.Scan(&s.ID, &s.AdmissionNo, &s.FirstName, &s.LastName, &s.Gender,
			&address, &s.ClassID, &s.Status, &s.CreatedAt, &s.UpdatedAt)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to scan student"})
		}
		s.Address = address.String
		students = append(students, s)
	}
	if students == nil {
		students = []*models.Student{}
	}

	return c.JSON(students)
}

func GetStudent(c *fiber.Ctx, db *sql.DB) error {
	query := `SELECT id, admission_no, first_name, last_name, gender, address, class_id, status, created_at, updated_at
			  FROM students WHERE id = $1 AND deleted_at IS NULL`

	s := &models.Student{}
	var address sql.NullString
	err := db.QueryRow(query, c.Params("id")).Scan(&s.ID, &s.AdmissionNo, &s.FirstName, &s.LastName,
		&s.Gender, &address, &s.ClassID, &s.Status, &s.CreatedAt, &s.UpdatedAt)
	if err == sql.ErrNoRows {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Student not found"})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch student"})
	}
	s.Address = address.String

	return c.JSON(s)
}

func CreateStudent(c *fiber.Ctx, db *sql.DB) error {
	var req StudentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if req.Status == "" {
		req.Status = string(models.StudentActive)
	}

	query := `INSERT INTO students (admission_no, first_name, last_name, gender, address, class_id, status)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)
			  RETURNING id, created_at, updated_at`

	s := &models.Student{
		AdmissionNo: req.AdmissionNo,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Gender:      models.Gender(req.Gender),
		Address:     req.Address,
		ClassID:     req.ClassID,
		Status:      models.StudentStatus(req.Status),
	}
	err := db.QueryRow(query, s.AdmissionNo, s.FirstName, s.LastName, s.Gender, s.Address, s.ClassID, s.Status).
		Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create student: " + err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(s)
}

func UpdateStudent(c *fiber.Ctx, db *sql.DB) error {
	var req StudentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	query := `UPDATE students
			  SET admission_no = $1, first_name = $2, last_name = $3, gender = $4,
			  address = $5, class_id = $6, status = $7, updated_at = NOW()
			  WHERE id = $8 AND deleted_at IS NULL`

	res, err := db.Exec(query, req.AdmissionNo, req.FirstName, req.LastName, req.Gender,
		req.Address, req.ClassID, req.Status, c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update student"})
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Student not found"})
	}

	return c.JSON(fiber.Map{"success": true, "message": "Student updated"})
}

func DeleteStudent(c *fiber.Ctx, db *sql.DB) error {
	res, err := db.Exec(`UPDATE students SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`, c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete student"})
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Student not found"})
	}

	return c.JSON(fiber.Map{"success": true, "message": "Student deleted"})
}
