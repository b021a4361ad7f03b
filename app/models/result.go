package models

import "time"

// Result stores one student's scores for a subject in a session+term. Exactly
// one row exists per (student, subject, session, term); saves collapse to an
// update in place. Results are never deleted — only status and score fields
// change.
type Result struct {
	ID         string       `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	StudentID  string       `json:"student_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	ClassID    string       `json:"class_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	SubjectID  string       `json:"subject_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	SessionID  string       `json:"session_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	TermID     string       `json:"term_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	CAScore    float64      `json:"ca_score" gorm:"not null;type:decimal(5,2)" validate:"gte=0"`
	TestScore  float64      `json:"test_score" gorm:"not null;type:decimal(5,2)" validate:"gte=0"`
	ExamScore  float64      `json:"exam_score" gorm:"not null;type:decimal(5,2)" validate:"gte=0"`
	Total      float64      `json:"total" gorm:"not null;type:decimal(5,2)"`
	Grade      string       `json:"grade" gorm:"not null"`
	Remark     string       `json:"remark" gorm:"not null"`
	Status     ResultStatus `json:"status" gorm:"default:'draft';index"`
	EnteredBy  string       `json:"entered_by" gorm:"not null;type:uuid"`
	ApprovedBy *string      `json:"approved_by,omitempty" gorm:"type:uuid"`
	CreatedAt  time.Time    `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt  time.Time    `json:"updated_at" gorm:"autoUpdateTime"`
	Student    *Student     `json:"student,omitempty" gorm:"foreignKey:StudentID;references:ID"`
	Subject    *Subject     `json:"subject,omitempty" gorm:"foreignKey:SubjectID;references:ID"`
	Term       *Term        `json:"term,omitempty" gorm:"foreignKey:TermID;references:ID"`
}
