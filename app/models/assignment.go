package models

import "time"

// TeacherAssignment grants a teacher the right to enter results for one
// class+subject within a single session. Assignments from past sessions never
// authorise actions in the current session.
type TeacherAssignment struct {
	ID        string           `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	TeacherID string           `json:"teacher_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	ClassID   string           `json:"class_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	SubjectID string           `json:"subject_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	SessionID string           `json:"session_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	IsActive  bool             `json:"is_active" gorm:"default:true"`
	CreatedAt time.Time        `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time        `json:"updated_at" gorm:"autoUpdateTime"`
	Teacher   *User            `json:"teacher,omitempty" gorm:"foreignKey:TeacherID;references:ID"`
	Class     *Class           `json:"class,omitempty" gorm:"foreignKey:ClassID;references:ID"`
	Subject   *Subject         `json:"subject,omitempty" gorm:"foreignKey:SubjectID;references:ID"`
	Session   *AcademicSession `json:"session,omitempty" gorm:"foreignKey:SessionID;references:ID"`
}
