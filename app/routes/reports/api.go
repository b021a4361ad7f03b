package reports

import (
	"database/sql"

	"github.com/OkoroJesse/result-manager-sub000/app/models"

	"github.com/gofiber/fiber/v2"
)

// StudentReport is the per-student term summary consumed by the report card.
type StudentReport struct {
	Student   *models.Student   `json:"student"`
	Results   []*models.Result  `json:"results"`
	Subjects  int               `json:"subjects"`
	Total     float64           `json:"total"`
	Average   float64           `json:"average"`
	Position  int               `json:"position"`
	ClassSize int               `json:"class_size"`
}

func buildStudentReport(db *sql.DB, studentID, sessionID, termID string) (*StudentReport, error) {
	student, err := getStudentByID(db, studentID)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, nil
	}

	results, err := getApprovedResultsByStudent(db, studentID, sessionID, termID)
	if err != nil {
		return nil, err
	}

	report := &StudentReport{Student: student, Results: results, Subjects: len(results)}
	for _, r := range results {
		report.Total += r.Total
	}
	if len(results) > 0 {
		report.Average = report.Total / float64(len(results))
	}

	// Position is ranked within the student's class on average of approved
	// totals, dense ranking.
	if student.ClassID != nil {
		aggregates, err := getClassAggregates(db, *student.ClassID, sessionID, termID)
		if err != nil {
			return nil, err
		}
		averages := make(map[string]float64, len(aggregates))
		for _, a := range aggregates {
			averages[a.StudentID] = a.Average
		}
		positions := ComputePositions(averages)
		report.Position = positions[studentID]
		report.ClassSize = len(aggregates)
	}

	return report, nil
}

// GetStudentReport returns one student's term summary from approved results.
func GetStudentReport(c *fiber.Ctx, db *sql.DB) error {
	studentID := c.Params("studentId")
	sessionID := c.Query("session_id")
	termID := c.Query("term_id")
	if sessionID == "" || termID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "session_id and term_id are required"})
	}

	report, err := buildStudentReport(db, studentID, sessionID, termID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to build report"})
	}
	if report == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Student not found"})
	}
	return c.JSON(report)
}

// GetClassBroadsheet returns the ranked class aggregates for a term.
func GetClassBroadsheet(c *fiber.Ctx, db *sql.DB) error {
	classID := c.Params("classId")
	sessionID := c.Query("session_id")
	termID := c.Query("term_id")
	if sessionID == "" || termID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "session_id and term_id are required"})
	}

	aggregates, err := getClassAggregates(db, classID, sessionID, termID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to build broadsheet"})
	}

	averages := make(map[string]float64, len(aggregates))
	for _, a := range aggregates {
		averages[a.StudentID] = a.Average
	}
	positions := ComputePositions(averages)
	for _, a := range aggregates {
		a.Position = positions[a.StudentID]
	}

	return c.JSON(aggregates)
}

// RenderReportCard serves the printable report card page.
func RenderReportCard(c *fiber.Ctx, db *sql.DB) error {
	studentID := c.Params("studentId")
	sessionID := c.Query("session_id")
	termID := c.Query("term_id")
	if sessionID == "" || termID == "" {
		return fiber.NewError(fiber.StatusBadRequest, "session_id and term_id are required")
	}

	report, err := buildStudentReport(db, studentID, sessionID, termID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to build report")
	}
	if report == nil {
		return fiber.NewError(fiber.StatusNotFound, "Student not found")
	}

	return c.Render("reports/report_card", fiber.Map{
		"Title":  "Report Card - " + report.Student.FullName(),
		"Report": report,
	})
}
