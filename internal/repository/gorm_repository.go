package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/localwork/marketplace/internal/model"
	"gorm.io/gorm"
)

type gormCollection[T any, P record[T]] struct {
	db *gorm.DB
}

func (r *gormCollection[T, P]) GetAll(ctx context.Context) ([]T, error) {
	var items []T
	err := r.db.WithContext(ctx).Order("created_at").Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", collectionName[T, P](), err)
	}
	return items, nil
}

func (r *gormCollection[T, P]) GetByID(ctx context.Context, id string) (*T, error) {
	uid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	var item T
	err = r.db.WithContext(ctx).First(&item, "id = ?", uid).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get %s %s: %w", collectionName[T, P](), id, err)
	}
	return &item, nil
}

func (r *gormCollection[T, P]) Create(ctx context.Context, item *T) error {
	P(item).Stamp(time.Now())
	if err := r.db.WithContext(ctx).Create(item).Error; err != nil {
		return fmt.Errorf("create %s: %w", collectionName[T, P](), err)
	}
	return nil
}

func NewGormRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Jobs:         &gormCollection[model.JobListing, *model.JobListing]{db},
		Applications: &gormCollection[model.JobApplication, *model.JobApplication]{db},
		Contacts:     &gormCollection[model.ContactSubmission, *model.ContactSubmission]{db},
		Ratings:      &gormCollection[model.UserRating, *model.UserRating]{db},
	}
}
