package view

import (
	"math"
	"strconv"

	"github.com/localwork/marketplace/internal/model"
)

const UnknownBucket = "Unknown"

type Bucket struct {
	Name    string
	Count   int
	Percent int
}

// CountBy groups items by key, in first-seen order. Empty keys count as Unknown.
func CountBy[T any](items []T, key func(*T) string) []Bucket {
	index := make(map[string]int)
	var buckets []Bucket
	for i := range items {
		k := key(&items[i])
		if k == "" {
			k = UnknownBucket
		}
		pos, ok := index[k]
		if !ok {
			pos = len(buckets)
			index[k] = pos
			buckets = append(buckets, Bucket{Name: k})
		}
		buckets[pos].Count++
	}
	for i := range buckets {
		buckets[i].Percent = int(math.Round(float64(buckets[i].Count) * 100 / float64(len(items))))
	}
	return buckets
}

func JobTypeBuckets(jobs []model.JobListing) []Bucket {
	return CountBy(jobs, func(j *model.JobListing) string { return j.JobType })
}

func StatusBuckets(apps []model.JobApplication) []Bucket {
	return CountBy(apps, func(a *model.JobApplication) string { return a.Status })
}

func CountStatus(apps []model.JobApplication, status string) int {
	n := 0
	for i := range apps {
		if apps[i].Status == status {
			n++
		}
	}
	return n
}

// AverageRating formats the mean rating with the given number of decimals,
// or returns fallback when there is nothing to average.
func AverageRating(ratings []model.UserRating, decimals int, fallback string) string {
	if len(ratings) == 0 {
		return fallback
	}
	sum := 0.0
	for i := range ratings {
		sum += ratings[i].RatingValue
	}
	return strconv.FormatFloat(sum/float64(len(ratings)), 'f', decimals, 64)
}

// StatusBadge picks the badge variant for an application status.
func StatusBadge(status string) string {
	switch status {
	case model.ApplicationStatusApproved:
		return "approved"
	case model.ApplicationStatusRejected:
		return "rejected"
	default:
		return "neutral"
	}
}

func ShortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}
