package view

import (
	"testing"

	"github.com/localwork/marketplace/internal/model"
	"github.com/stretchr/testify/assert"
)

func sampleListings() []model.JobListing {
	return []model.JobListing{
		{JobTitle: "Dog Walker", JobDescription: "Afternoon walks", Location: "Seattle", JobType: "Part-Time", RequiredSkills: "Patience"},
		{JobTitle: "Barista", JobDescription: "Espresso bar, weekends", Location: "Tacoma", JobType: "Hourly", RequiredSkills: "latte art"},
		{JobTitle: "Tutor", JobDescription: "Math help for a DOG lover", Location: "Seattle", JobType: "Hourly", RequiredSkills: "algebra"},
		{JobTitle: "Mover", JobDescription: "Help move furniture", Location: "", JobType: "", RequiredSkills: "lifting"},
	}
}

func titles(listings []model.JobListing) []string {
	out := make([]string, 0, len(listings))
	for _, l := range listings {
		out = append(out, l.JobTitle)
	}
	return out
}

func TestFilterEmptyReturnsAllInOrder(t *testing.T) {
	listings := sampleListings()
	got := FilterListings(listings, Filter{Location: All, JobType: All})
	assert.Equal(t, listings, got)

	got = FilterListings(listings, Filter{})
	assert.Equal(t, listings, got)
}

func TestFilterQueryIsCaseInsensitiveAcrossFields(t *testing.T) {
	listings := sampleListings()

	assert.Equal(t, []string{"Dog Walker", "Tutor"}, titles(FilterListings(listings, Filter{Query: "dog"})))
	assert.Equal(t, []string{"Barista"}, titles(FilterListings(listings, Filter{Query: "LATTE"})))
	assert.Equal(t, []string{"Dog Walker"}, titles(FilterListings(listings, Filter{Query: "patience"})))
	assert.Empty(t, FilterListings(listings, Filter{Query: "plumber"}))
}

func TestFilterEqualityFiltersCombine(t *testing.T) {
	listings := sampleListings()

	assert.Equal(t, []string{"Dog Walker", "Tutor"}, titles(FilterListings(listings, Filter{Location: "Seattle"})))
	assert.Equal(t, []string{"Tutor"}, titles(FilterListings(listings, Filter{Location: "Seattle", JobType: "Hourly"})))
	assert.Equal(t, []string{"Tutor"}, titles(FilterListings(listings, Filter{Query: "math", Location: "Seattle", JobType: "Hourly"})))
	assert.Empty(t, FilterListings(listings, Filter{Query: "walks", JobType: "Hourly"}))
}

func TestFilterExcludesDifferentJobType(t *testing.T) {
	listings := []model.JobListing{{JobTitle: "Cashier", JobType: "Part-Time"}}
	assert.Empty(t, FilterListings(listings, Filter{JobType: "Hourly"}))
}

func TestFilterOnNoListings(t *testing.T) {
	got := FilterListings(nil, Filter{Query: "anything"})
	assert.Len(t, got, 0)
}

func TestFilterIsIdempotentAndSubsequence(t *testing.T) {
	listings := sampleListings()
	filters := []Filter{
		{},
		{Query: "e"},
		{Location: "Seattle"},
		{JobType: "Hourly"},
		{Query: "a", Location: "Tacoma", JobType: "Hourly"},
	}
	for _, f := range filters {
		first := FilterListings(listings, f)
		second := FilterListings(listings, f)
		assert.Equal(t, first, second)

		// every result passes the predicate and appears in source order
		pos := 0
		for _, got := range first {
			assert.True(t, f.Match(&got))
			for pos < len(listings) && listings[pos].JobTitle != got.JobTitle {
				pos++
			}
			assert.Less(t, pos, len(listings), "result out of source order for %+v", f)
			pos++
		}
		// every excluded listing fails the predicate
		kept := make(map[string]bool)
		for _, got := range first {
			kept[got.JobTitle] = true
		}
		for i := range listings {
			if !kept[listings[i].JobTitle] {
				assert.False(t, f.Match(&listings[i]))
			}
		}
	}
}

func TestDistinctOptionsSkipEmptyValues(t *testing.T) {
	listings := sampleListings()
	assert.Equal(t, []string{"Seattle", "Tacoma"}, DistinctLocations(listings))
	assert.Equal(t, []string{"Part-Time", "Hourly"}, DistinctJobTypes(listings))
	assert.Empty(t, DistinctLocations(nil))
}

func TestFilterIsZero(t *testing.T) {
	assert.True(t, Filter{}.IsZero())
	assert.True(t, Filter{Query: "  ", Location: All, JobType: All}.IsZero())
	assert.False(t, Filter{Location: "Seattle"}.IsZero())
}
