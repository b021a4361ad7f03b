package models

import "time"

// Term represents a term within an academic session. Its date range must fall
// inside the parent session's range. At most one term is active system-wide.
type Term struct {
	ID        string           `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	SessionID string           `json:"session_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	Name      string           `json:"name" gorm:"not null" validate:"required"`
	StartDate CustomDate       `json:"start_date" gorm:"not null;type:date" validate:"required"`
	EndDate   CustomDate       `json:"end_date" gorm:"not null;type:date" validate:"required"`
	Status    TermStatus       `json:"status" gorm:"default:'draft';index"`
	IsActive  bool             `json:"is_active" gorm:"default:false;index"`
	CreatedAt time.Time        `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time        `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt *time.Time       `json:"deleted_at,omitempty" gorm:"index"`
	Session   *AcademicSession `json:"session,omitempty" gorm:"foreignKey:SessionID;references:ID"`
}

// IsClosed reports whether the term has been permanently closed.
func (t *Term) IsClosed() bool {
	return t.Status == TermClosed
}
