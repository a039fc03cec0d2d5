package model

import (
	"time"

	"github.com/google/uuid"
)

func stamp(id *uuid.UUID, createdAt, updatedAt *time.Time, now time.Time) {
	if *id == uuid.Nil {
		*id = uuid.New()
	}
	if createdAt.IsZero() {
		*createdAt = now
	}
	if updatedAt.IsZero() {
		*updatedAt = now
	}
}

func (j *JobListing) RecordID() uuid.UUID { return j.ID }
func (j *JobListing) Stamp(now time.Time) { stamp(&j.ID, &j.CreatedAt, &j.UpdatedAt, now) }

func (a *JobApplication) RecordID() uuid.UUID { return a.ID }
func (a *JobApplication) Stamp(now time.Time) { stamp(&a.ID, &a.CreatedAt, &a.UpdatedAt, now) }

func (s *ContactSubmission) RecordID() uuid.UUID { return s.ID }
func (s *ContactSubmission) Stamp(now time.Time) { stamp(&s.ID, &s.CreatedAt, &s.UpdatedAt, now) }

func (r *UserRating) RecordID() uuid.UUID { return r.ID }
func (r *UserRating) Stamp(now time.Time) { stamp(&r.ID, &r.CreatedAt, &r.UpdatedAt, now) }
