package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/localwork/marketplace/internal/dto"
	"github.com/localwork/marketplace/internal/identity"
	"github.com/localwork/marketplace/internal/model"
	"github.com/localwork/marketplace/internal/repository"
	"github.com/localwork/marketplace/internal/view"
)

var ErrUnauthenticated = errors.New("sign in required")

type ListingUsecase struct {
	jobs         repository.JobListingRepository
	applications repository.JobApplicationRepository
	Now          func() time.Time
}

func NewListingUsecase(repos *repository.Repositories) *ListingUsecase {
	return &ListingUsecase{jobs: repos.Jobs, applications: repos.Applications, Now: time.Now}
}

// BrowsePage is the job browser: everything fetched plus the filtered view.
// Filter options come from the full set, so filtering never shrinks them.
type BrowsePage struct {
	Filter    view.Filter
	Listings  []model.JobListing
	Results   []model.JobListing
	Locations []string
	JobTypes  []string
}

func (p *BrowsePage) Empty() bool {
	return len(p.Results) == 0
}

func (uc *ListingUsecase) Browse(ctx context.Context, f view.Filter) (*BrowsePage, error) {
	listings, err := uc.jobs.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	f = f.Normalize()
	return &BrowsePage{
		Filter:    f,
		Listings:  listings,
		Results:   view.FilterListings(listings, f),
		Locations: view.DistinctLocations(listings),
		JobTypes:  view.DistinctJobTypes(listings),
	}, nil
}

// Detail returns repository.ErrNotFound for unknown ids.
func (uc *ListingUsecase) Detail(ctx context.Context, id string) (*model.JobListing, error) {
	return uc.jobs.GetByID(ctx, id)
}

// Apply records a Pending application from member for jobID. The listing id is
// stored as given; nothing checks that the listing still exists.
func (uc *ListingUsecase) Apply(ctx context.Context, member *identity.Member, jobID string, form dto.ApplyForm) (*model.JobApplication, error) {
	if member == nil {
		return nil, ErrUnauthenticated
	}
	if ferr := form.Validate(); ferr != nil {
		return nil, ferr
	}

	now := uc.Now()
	app := &model.JobApplication{
		ID:              uuid.New(),
		ApplicantID:     member.ID,
		JobListingID:    jobID,
		ApplicationDate: &now,
		Status:          model.ApplicationStatusPending,
		CoverLetter:     form.CoverLetter,
		ResumeURL:       strings.TrimSpace(form.ResumeURL),
	}
	if err := uc.applications.Create(ctx, app); err != nil {
		return nil, err
	}
	slog.Info("job application created", "id", app.ID, "job_listing_id", jobID, "applicant_id", member.ID)
	return app, nil
}

func (uc *ListingUsecase) Post(ctx context.Context, form dto.PostJobForm) (*model.JobListing, error) {
	if ferr := form.Validate(); ferr != nil {
		return nil, ferr
	}
	rate, _ := form.Rate()
	deadline, _ := form.Deadline()

	now := uc.Now()
	listing := &model.JobListing{
		ID:                  uuid.New(),
		JobTitle:            form.JobTitle,
		JobDescription:      form.JobDescription,
		Location:            form.Location,
		HourlyRate:          rate,
		JobType:             form.JobType,
		RequiredSkills:      form.RequiredSkills,
		DatePosted:          &now,
		ApplicationDeadline: deadline,
	}
	if err := uc.jobs.Create(ctx, listing); err != nil {
		return nil, err
	}
	slog.Info("job listing created", "id", listing.ID, "job_type", listing.JobType, "location", listing.Location)
	return listing, nil
}
