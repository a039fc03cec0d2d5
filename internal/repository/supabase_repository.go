package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/localwork/marketplace/internal/model"
	supabase "github.com/nedpals/supabase-go"
)

// supabaseCollection talks to the hosted PostgREST record service. The SDK has no
// context support, so ctx is only checked before the call is issued.
type supabaseCollection[T any, P record[T]] struct {
	client *supabase.Client
}

func (r *supabaseCollection[T, P]) GetAll(ctx context.Context) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var items []T
	if err := r.client.DB.From(collectionName[T, P]()).Select("*").Execute(&items); err != nil {
		return nil, fmt.Errorf("list %s: %w", collectionName[T, P](), err)
	}
	return items, nil
}

func (r *supabaseCollection[T, P]) GetByID(ctx context.Context, id string) (*T, error) {
	uid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var items []T
	err = r.client.DB.From(collectionName[T, P]()).Select("*").Eq("id", uid.String()).Execute(&items)
	if err != nil {
		return nil, fmt.Errorf("get %s %s: %w", collectionName[T, P](), id, err)
	}
	if len(items) == 0 {
		return nil, ErrNotFound
	}
	return &items[0], nil
}

func (r *supabaseCollection[T, P]) Create(ctx context.Context, item *T) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	P(item).Stamp(time.Now())
	var created []T
	if err := r.client.DB.From(collectionName[T, P]()).Insert(*item).Execute(&created); err != nil {
		return fmt.Errorf("create %s: %w", collectionName[T, P](), err)
	}
	if len(created) > 0 {
		*item = created[0]
	}
	return nil
}

func NewSupabaseRepositories(client *supabase.Client) *Repositories {
	return &Repositories{
		Jobs:         &supabaseCollection[model.JobListing, *model.JobListing]{client},
		Applications: &supabaseCollection[model.JobApplication, *model.JobApplication]{client},
		Contacts:     &supabaseCollection[model.ContactSubmission, *model.ContactSubmission]{client},
		Ratings:      &supabaseCollection[model.UserRating, *model.UserRating]{client},
	}
}
