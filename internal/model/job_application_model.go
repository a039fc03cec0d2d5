package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	ApplicationStatusPending  = "Pending"
	ApplicationStatusApproved = "Approved"
	ApplicationStatusRejected = "Rejected"
)

// JobApplication links an applicant to a listing. ApplicantID and JobListingID
// are copied as-is at creation and never checked against their targets.
type JobApplication struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	ApplicantID     string     `gorm:"type:varchar(255);index" json:"applicant_id"`
	JobListingID    string     `gorm:"type:varchar(255);index" json:"job_listing_id"`
	ApplicationDate *time.Time `json:"application_date,omitempty"`
	Status          string     `gorm:"type:varchar(50)" json:"status"`
	CoverLetter     string     `gorm:"type:text" json:"cover_letter"`
	ResumeURL       string     `gorm:"type:text" json:"resume_url,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func (a *JobApplication) TableName() string {
	return "jobapplications"
}
