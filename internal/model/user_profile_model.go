package model

import (
	"time"

	"github.com/google/uuid"
)

// UserProfile is migrated with the other collections but has no read or write path yet.
type UserProfile struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	FullName       string    `gorm:"type:varchar(255)" json:"full_name"`
	Email          string    `gorm:"type:varchar(255)" json:"email"`
	UserRole       string    `gorm:"type:varchar(50)" json:"user_role"`
	ProfilePicture string    `gorm:"type:text" json:"profile_picture,omitempty"`
	PhoneNumber    string    `gorm:"type:varchar(50)" json:"phone_number,omitempty"`
	Location       string    `gorm:"type:varchar(255)" json:"location,omitempty"`
	Bio            string    `gorm:"type:text" json:"bio,omitempty"`
	IsVerified     bool      `json:"is_verified"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (p *UserProfile) TableName() string {
	return "userprofiles"
}

// All returns every persisted model, in migration order.
func All() []any {
	return []any{&JobListing{}, &JobApplication{}, &ContactSubmission{}, &UserRating{}, &UserProfile{}}
}
