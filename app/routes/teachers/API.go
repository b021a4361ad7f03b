package teachers

import (
	"database/sql"

	"github.com/OkoroJesse/result-manager-sub000/app/database"
	"github.com/OkoroJesse/result-manager-sub000/app/models"
	"github.com/OkoroJesse/result-manager-sub000/app/routes/auth"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

type TeacherRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Phone     string `json:"phone"`
}

// GetTeachers lists active users holding the teacher role.
func GetTeachers(c *fiber.Ctx, db *sql.DB) error {
	query := `SELECT u.id, u.email, u.first_name, u.last_name, u.phone, u.is_active, u.created_at, u.updated_at
			  FROM users u
			  JOIN user_roles ur ON u.id = ur.user_id
			  JOIN roles r ON ur.role_id = r.id
			  WHERE r.name = 'teacher' AND u.is_active = true AND u.deleted_at IS NULL
			  ORDER BY u.first_name, u.last_name`

	rows, err := db.Query(query)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch teachers"})
	}
	defer rows.Close()

	var teachers []*models.User
	for rows.Next() {
		t := &models.User{}
		var phone sql.NullString
		err := rows.Scan(&t.ID, &t.Email, &t.FirstName, &t.LastName, &phone,
			&t.IsActive, &t.CreatedAt, &t.UpdatedAt)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to scan teacher"})
		}
		t.Phone = phone.String
		teachers = append(teachers, t)
	}
	if teachers == nil {
		teachers = []*models.User{}
	}

	return c.JSON(teachers)
}

// CreateTeacher registers a user and grants the teacher role.
func CreateTeacher(c *fiber.Ctx, db *sql.DB) error {
	var req TeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to hash password"})
	}

	query := `INSERT INTO users (email, password, first_name, last_name, phone)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING id, is_active, created_at, updated_at`

	user := &models.User{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
	}
	err = db.QueryRow(query, req.Email, hashed, req.FirstName, req.LastName, req.Phone).
		Scan(&user.ID, &user.IsActive, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create teacher: " + err.Error()})
	}

	if err := database.AssignRole(db, user.ID, models.RoleTeacher); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to assign teacher role"})
	}

	return c.Status(fiber.StatusCreated).JSON(user)
}

// DeactivateTeacher disables login without touching any result they entered.
func DeactivateTeacher(c *fiber.Ctx, db *sql.DB) error {
	res, err := db.Exec(`UPDATE users SET is_active = false, updated_at = NOW() WHERE id = $1`, c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to deactivate teacher"})
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Teacher not found"})
	}

	return c.JSON(fiber.Map{"success": true, "message": "Teacher deactivated"})
}
