package model

import (
	"time"

	"github.com/google/uuid"
)

const ContactStatusNew = "New"

type ContactSubmission struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	SenderName         string     `gorm:"type:varchar(255)" json:"sender_name"`
	SenderEmail        string     `gorm:"type:varchar(255)" json:"sender_email"`
	Subject            string     `gorm:"type:text" json:"subject"`
	MessageContent     string     `gorm:"type:text" json:"message_content"`
	SubmissionDateTime *time.Time `json:"submission_date_time,omitempty"`
	Status             string     `gorm:"type:varchar(50)" json:"status"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

func (s *ContactSubmission) TableName() string {
	return "contactsubmissions"
}
