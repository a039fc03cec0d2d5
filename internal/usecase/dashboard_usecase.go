package usecase

import (
	"context"

	"github.com/localwork/marketplace/internal/identity"
	"github.com/localwork/marketplace/internal/model"
	"github.com/localwork/marketplace/internal/repository"
	"github.com/localwork/marketplace/internal/view"
	"golang.org/x/sync/errgroup"
)

type DashboardUsecase struct {
	repos *repository.Repositories
}

func NewDashboardUsecase(repos *repository.Repositories) *DashboardUsecase {
	return &DashboardUsecase{repos: repos}
}

type AdminDashboard struct {
	Jobs          []model.JobListing
	Applications  []model.JobApplication
	Contacts      []model.ContactSubmission
	Ratings       []model.UserRating
	JobTypes      []view.Bucket
	Statuses      []view.Bucket
	Pending       int
	AverageRating string
}

// Admin fetches all four collections as one concurrent batch. The first failure
// cancels the batch and is returned as is.
func (uc *DashboardUsecase) Admin(ctx context.Context) (*AdminDashboard, error) {
	d := &AdminDashboard{}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		d.Jobs, err = uc.repos.Jobs.GetAll(gctx)
		return err
	})
	g.Go(func() (err error) {
		d.Applications, err = uc.repos.Applications.GetAll(gctx)
		return err
	})
	g.Go(func() (err error) {
		d.Contacts, err = uc.repos.Contacts.GetAll(gctx)
		return err
	})
	g.Go(func() (err error) {
		d.Ratings, err = uc.repos.Ratings.GetAll(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	d.JobTypes = view.JobTypeBuckets(d.Jobs)
	d.Statuses = view.StatusBuckets(d.Applications)
	d.Pending = view.CountStatus(d.Applications, model.ApplicationStatusPending)
	d.AverageRating = view.AverageRating(d.Ratings, 2, "0")
	return d, nil
}

type ProfileDashboard struct {
	Member        identity.Member
	Applications  []model.JobApplication
	Ratings       []model.UserRating
	AverageRating string
}

// Profile loads the member's own applications and the ratings they received.
func (uc *DashboardUsecase) Profile(ctx context.Context, member identity.Member) (*ProfileDashboard, error) {
	var apps []model.JobApplication
	var ratings []model.UserRating

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		apps, err = uc.repos.Applications.GetAll(gctx)
		return err
	})
	g.Go(func() (err error) {
		ratings, err = uc.repos.Ratings.GetAll(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	p := &ProfileDashboard{Member: member}
	for _, a := range apps {
		if a.ApplicantID == member.ID {
			p.Applications = append(p.Applications, a)
		}
	}
	for _, r := range ratings {
		if r.RatedUserID == member.ID {
			p.Ratings = append(p.Ratings, r)
		}
	}
	p.AverageRating = view.AverageRating(p.Ratings, 1, "N/A")
	return p, nil
}
