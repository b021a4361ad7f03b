package grades

import (
	"database/sql"

	"github.com/OkoroJesse/result-manager-sub000/app/database"
	"github.com/OkoroJesse/result-manager-sub000/app/models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

type GradingRuleInput struct {
	MinScore float64 `json:"min_score" validate:"gte=0,lte=100"`
	MaxScore float64 `json:"max_score" validate:"gte=0,lte=100"`
	Grade    string  `json:"grade" validate:"required"`
	Remark   string  `json:"remark" validate:"required"`
}

type ReplaceRulesRequest struct {
	Rules []GradingRuleInput `json:"rules" validate:"required,min=1,dive"`
}

func GetGradingRules(c *fiber.Ctx, db *sql.DB) error {
	rules, err := database.GetActiveGradingRules(db)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch grading rules"})
	}
	return c.JSON(rules)
}

// ReplaceGradingRules swaps the active rule set atomically. Results already
// graded keep their stored grade, new rules only affect later recomputation.
func ReplaceGradingRules(c *fiber.Ctx, db *sql.DB) error {
	var req ReplaceRulesRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	proposed := make([]models.GradingRule, len(req.Rules))
	for i, r := range req.Rules {
		proposed[i] = models.GradingRule{
			MinScore: r.MinScore,
			MaxScore: r.MaxScore,
			Grade:    r.Grade,
			Remark:   r.Remark,
		}
	}
	if err := checkBands(proposed); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	tx, err := db.Begin()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to start transaction"})
	}
	defer tx.Rollback()

	_, err = tx.Exec(`UPDATE grading_rules SET is_active = false, updated_at = NOW() WHERE is_active = true`)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retire old rules"})
	}

	for _, r := range proposed {
		_, err = tx.Exec(`INSERT INTO grading_rules (min_score, max_score, grade, remark) VALUES ($1, $2, $3, $4)`,
			r.MinScore, r.MaxScore, r.Grade, r.Remark)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to insert grading rule"})
		}
	}

	if err := tx.Commit(); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to commit grading rules"})
	}

	return c.JSON(fiber.Map{"success": true, "message": "Grading rules replaced", "count": len(proposed)})
}
