package main

import (
	"context"
	"time"

	"github.com/localwork/marketplace/internal/model"
	"github.com/localwork/marketplace/internal/repository"
)

// seedDemo fills the in-memory backend so a fresh dev server has something to browse.
func seedDemo(ctx context.Context, repos *repository.Repositories) error {
	now := time.Now()
	in := func(d time.Duration) *time.Time {
		t := now.Add(d)
		return &t
	}

	listings := []model.JobListing{
		{
			JobTitle:            "Weekend Barista",
			JobDescription:      "Pull espresso shots and keep the counter moving during the Saturday and Sunday rush.",
			Location:            "Seattle, WA",
			HourlyRate:          19.5,
			JobType:             "Weekend",
			RequiredSkills:      "customer service, espresso, cash handling",
			DatePosted:          in(-48 * time.Hour),
			ApplicationDeadline: in(14 * 24 * time.Hour),
		},
		{
			JobTitle:            "Moving Helper",
			JobDescription:      "Help a family pack and load a truck for a local move. Lifting required.",
			Location:            "Tacoma, WA",
			HourlyRate:          25,
			JobType:             "Daily",
			RequiredSkills:      "lifting, teamwork",
			DatePosted:          in(-24 * time.Hour),
			ApplicationDeadline: in(5 * 24 * time.Hour),
		},
		{
			JobTitle:            "Math Tutor",
			JobDescription:      "Evening tutoring for a high school student preparing for finals.",
			Location:            "Seattle, WA",
			HourlyRate:          35,
			JobType:             "Part-Time",
			RequiredSkills:      "algebra, geometry, patience",
			DatePosted:          in(-6 * time.Hour),
		},
	}
	for i := range listings {
		if err := repos.Jobs.Create(ctx, &listings[i]); err != nil {
			return err
		}
	}

	ratings := []model.UserRating{
		{RatingValue: 5, ReviewText: "Reliable and friendly.", RatedByUserID: "employer-1", RatedUserID: "dev-member", JobID: listings[1].ID.String(), RatingDate: in(-12 * time.Hour)},
		{RatingValue: 4, ReviewText: "Great work, arrived on time.", RatedByUserID: "employer-2", RatedUserID: "dev-member", JobID: listings[0].ID.String(), RatingDate: in(-2 * time.Hour)},
	}
	for i := range ratings {
		if err := repos.Ratings.Create(ctx, &ratings[i]); err != nil {
			return err
		}
	}
	return nil
}
