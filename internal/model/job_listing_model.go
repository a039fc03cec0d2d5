package model

import (
	"time"

	"github.com/google/uuid"
)

type JobListing struct {
	ID                  uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	JobTitle            string     `gorm:"type:text" json:"job_title"`
	JobDescription      string     `gorm:"type:text" json:"job_description"`
	Location            string     `gorm:"type:varchar(255);index" json:"location"`
	HourlyRate          float64    `gorm:"type:float" json:"hourly_rate"`
	JobType             string     `gorm:"type:varchar(100);index" json:"job_type"` // e.g. "Part-Time", "Hourly"
	DatePosted          *time.Time `json:"date_posted,omitempty"`
	ApplicationDeadline *time.Time `json:"application_deadline,omitempty"`
	RequiredSkills      string     `gorm:"type:text" json:"required_skills"`
	JobImage            string     `gorm:"type:text" json:"job_image,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

func (j *JobListing) TableName() string {
	return "joblistings"
}
