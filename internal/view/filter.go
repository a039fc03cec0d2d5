// Package view derives presentation-ready projections from already-fetched records.
// Everything here is pure and recomputed on every request.
package view

import (
	"strings"

	"github.com/localwork/marketplace/internal/model"
)

// All is the filter value that disables an equality filter.
const All = "all"

type Filter struct {
	Query    string
	Location string
	JobType  string
}

// Normalize trims the query and maps empty equality filters to All.
func (f Filter) Normalize() Filter {
	f.Query = strings.TrimSpace(f.Query)
	if f.Location == "" {
		f.Location = All
	}
	if f.JobType == "" {
		f.JobType = All
	}
	return f
}

func (f Filter) IsZero() bool {
	f = f.Normalize()
	return f.Query == "" && f.Location == All && f.JobType == All
}

// Match reports whether a listing passes all three filters.
func (f Filter) Match(j *model.JobListing) bool {
	f = f.Normalize()
	if f.Query != "" {
		q := strings.ToLower(f.Query)
		if !strings.Contains(strings.ToLower(j.JobTitle), q) &&
			!strings.Contains(strings.ToLower(j.JobDescription), q) &&
			!strings.Contains(strings.ToLower(j.RequiredSkills), q) {
			return false
		}
	}
	if f.Location != All && j.Location != f.Location {
		return false
	}
	if f.JobType != All && j.JobType != f.JobType {
		return false
	}
	return true
}

// FilterListings returns the listings passing f, in their original order.
func FilterListings(listings []model.JobListing, f Filter) []model.JobListing {
	f = f.Normalize()
	out := make([]model.JobListing, 0, len(listings))
	for i := range listings {
		if f.Match(&listings[i]) {
			out = append(out, listings[i])
		}
	}
	return out
}

func DistinctLocations(listings []model.JobListing) []string {
	return distinct(listings, func(j *model.JobListing) string { return j.Location })
}

func DistinctJobTypes(listings []model.JobListing) []string {
	return distinct(listings, func(j *model.JobListing) string { return j.JobType })
}

func distinct(listings []model.JobListing, key func(*model.JobListing) string) []string {
	seen := make(map[string]struct{})
	var out []string
	for i := range listings {
		v := key(&listings[i])
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
