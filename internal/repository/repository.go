package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/localwork/marketplace/internal/model"
)

var ErrNotFound = errors.New("record not found")

type JobListingRepository interface {
	GetAll(ctx context.Context) ([]model.JobListing, error)
	GetByID(ctx context.Context, id string) (*model.JobListing, error)
	Create(ctx context.Context, listing *model.JobListing) error
}

type JobApplicationRepository interface {
	GetAll(ctx context.Context) ([]model.JobApplication, error)
	GetByID(ctx context.Context, id string) (*model.JobApplication, error)
	Create(ctx context.Context, application *model.JobApplication) error
}

type ContactSubmissionRepository interface {
	GetAll(ctx context.Context) ([]model.ContactSubmission, error)
	GetByID(ctx context.Context, id string) (*model.ContactSubmission, error)
	Create(ctx context.Context, submission *model.ContactSubmission) error
}

type UserRatingRepository interface {
	GetAll(ctx context.Context) ([]model.UserRating, error)
	GetByID(ctx context.Context, id string) (*model.UserRating, error)
	Create(ctx context.Context, rating *model.UserRating) error
}

// Repositories bundles one repository per collection. All four share a backend.
type Repositories struct {
	Jobs         JobListingRepository
	Applications JobApplicationRepository
	Contacts     ContactSubmissionRepository
	Ratings      UserRatingRepository
}

// record is the constraint every stored model satisfies through its pointer type.
type record[T any] interface {
	*T
	TableName() string
	RecordID() uuid.UUID
	Stamp(now time.Time)
}

func collectionName[T any, P record[T]]() string {
	return P(new(T)).TableName()
}

func parseID(id string) (uuid.UUID, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, ErrNotFound
	}
	return uid, nil
}
