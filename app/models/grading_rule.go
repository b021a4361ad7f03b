package models

import "time"

// GradingRule is a configured score band, e.g. 70-100 -> A "Excellent".
// The active set should partition [0,100] with no gaps or overlaps.
type GradingRule struct {
	ID        string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	MinScore  float64    `json:"min_score" gorm:"not null;type:decimal(5,2)" validate:"gte=0,lte=100"`
	MaxScore  float64    `json:"max_score" gorm:"not null;type:decimal(5,2)" validate:"gte=0,lte=100"`
	Grade     string     `json:"grade" gorm:"not null" validate:"required"`
	Remark    string     `json:"remark" gorm:"not null" validate:"required"`
	IsActive  bool       `json:"is_active" gorm:"default:true"`
	CreatedAt time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt *time.Time `json:"deleted_at,omitempty" gorm:"index"`
}
