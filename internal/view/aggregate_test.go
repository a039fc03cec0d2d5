package view

import (
	"testing"
	"time"

	"github.com/localwork/marketplace/internal/model"
	"github.com/stretchr/testify/assert"
)

func ratings(values ...float64) []model.UserRating {
	out := make([]model.UserRating, 0, len(values))
	for _, v := range values {
		out = append(out, model.UserRating{RatingValue: v})
	}
	return out
}

func TestAverageRating(t *testing.T) {
	assert.Equal(t, "4.00", AverageRating(ratings(5, 3, 4), 2, "0"))
	assert.Equal(t, "4.0", AverageRating(ratings(5, 3, 4), 1, "N/A"))
	assert.Equal(t, "4.33", AverageRating(ratings(5, 4, 4), 2, "0"))
	assert.Equal(t, "0", AverageRating(nil, 2, "0"))
	assert.Equal(t, "N/A", AverageRating([]model.UserRating{}, 1, "N/A"))
}

func TestCountByKeepsFirstSeenOrder(t *testing.T) {
	apps := []model.JobApplication{
		{Status: "Pending"},
		{Status: "Approved"},
		{Status: "Pending"},
		{Status: ""},
	}
	got := StatusBuckets(apps)
	assert.Equal(t, []Bucket{
		{Name: "Pending", Count: 2, Percent: 50},
		{Name: "Approved", Count: 1, Percent: 25},
		{Name: UnknownBucket, Count: 1, Percent: 25},
	}, got)
	assert.Equal(t, 2, CountStatus(apps, model.ApplicationStatusPending))
}

func TestJobTypeBuckets(t *testing.T) {
	got := JobTypeBuckets(sampleListings())
	assert.Equal(t, []Bucket{
		{Name: "Part-Time", Count: 1, Percent: 25},
		{Name: "Hourly", Count: 2, Percent: 50},
		{Name: UnknownBucket, Count: 1, Percent: 25},
	}, got)
	assert.Empty(t, JobTypeBuckets(nil))
}

func TestStatusBadgeAndShortID(t *testing.T) {
	assert.Equal(t, "approved", StatusBadge("Approved"))
	assert.Equal(t, "rejected", StatusBadge("Rejected"))
	assert.Equal(t, "neutral", StatusBadge("Pending"))
	assert.Equal(t, "neutral", StatusBadge("On hold"))

	assert.Equal(t, "3f2a9c1e", ShortID("3f2a9c1e-77aa-4bb1-9c1d-0123456789ab"))
	assert.Equal(t, "abc", ShortID("abc"))
}

func TestNavLinksMarksActivePath(t *testing.T) {
	links := NavLinks("/find-jobs")
	active := 0
	for _, l := range links {
		if l.Active {
			active++
			assert.Equal(t, "/find-jobs", l.Path)
		}
	}
	assert.Equal(t, 1, active)

	for _, l := range NavLinks("/admin") {
		assert.False(t, l.Active)
	}
}

func TestDateFormatting(t *testing.T) {
	d := time.Date(2026, 7, 4, 15, 30, 0, 0, time.UTC)
	assert.Equal(t, "Jul 04, 2026", Date(&d))
	assert.Equal(t, "Jul 04, 2026 15:30", DateTime(&d))
	assert.Equal(t, "Jul 2026", MonthYear(d))
	assert.Equal(t, "", Date(nil))
	assert.Equal(t, "18.5", Rate(18.5))
}
