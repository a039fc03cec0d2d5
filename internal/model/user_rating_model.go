package model

import (
	"time"

	"github.com/google/uuid"
)

type UserRating struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	RatingValue   float64    `gorm:"type:float" json:"rating_value"`
	ReviewText    string     `gorm:"type:text" json:"review_text"`
	RatedByUserID string     `gorm:"type:varchar(255)" json:"rated_by_user_id"`
	RatedUserID   string     `gorm:"type:varchar(255);index" json:"rated_user_id"`
	JobID         string     `gorm:"type:varchar(255)" json:"job_id"`
	RatingDate    *time.Time `json:"rating_date,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func (r *UserRating) TableName() string {
	return "userratings"
}
