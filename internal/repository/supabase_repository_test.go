package repository

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/localwork/marketplace/internal/model"
	supabase "github.com/nedpals/supabase-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePostgrest serves a single collection the way the record service does:
// GET lists rows (optionally filtered by id=eq.<id>), POST inserts and echoes rows.
type fakePostgrest struct {
	mu    sync.Mutex
	table string
	rows  []map[string]any
}

func (f *fakePostgrest) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !strings.HasSuffix(r.URL.Path, "/"+f.table) {
		http.NotFound(w, r)
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	switch r.Method {
	case http.MethodGet:
		out := []map[string]any{}
		want := strings.TrimPrefix(r.URL.Query().Get("id"), "eq.")
		for _, row := range f.rows {
			if want == "" || row["id"] == want {
				out = append(out, row)
			}
		}
		_ = json.NewEncoder(w).Encode(out)
	case http.MethodPost:
		var body any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		var inserted []map[string]any
		switch v := body.(type) {
		case map[string]any:
			inserted = append(inserted, v)
		case []any:
			for _, item := range v {
				if row, ok := item.(map[string]any); ok {
					inserted = append(inserted, row)
				}
			}
		}
		f.rows = append(f.rows, inserted...)
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(inserted)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func TestSupabaseCreateThenGetByID(t *testing.T) {
	fake := &fakePostgrest{table: "joblistings"}
	srv := httptest.NewServer(fake)
	defer srv.Close()

	repos := NewSupabaseRepositories(supabase.CreateClient(srv.URL, "test-key"))
	ctx := context.Background()

	listing := &model.JobListing{
		JobTitle:       "Barista",
		JobDescription: "Weekend mornings",
		Location:       "Tacoma",
		HourlyRate:     21,
		JobType:        "Hourly",
	}
	require.NoError(t, repos.Jobs.Create(ctx, listing))
	require.NotEqual(t, uuid.Nil, listing.ID)

	got, err := repos.Jobs.GetByID(ctx, listing.ID.String())
	require.NoError(t, err)
	assert.Equal(t, listing.ID, got.ID)
	assert.Equal(t, "Barista", got.JobTitle)
	assert.Equal(t, "Tacoma", got.Location)
	assert.Equal(t, 21.0, got.HourlyRate)
	assert.Equal(t, "Hourly", got.JobType)

	all, err := repos.Jobs.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestSupabaseGetByIDNotFound(t *testing.T) {
	srv := httptest.NewServer(&fakePostgrest{table: "joblistings"})
	defer srv.Close()

	repos := NewSupabaseRepositories(supabase.CreateClient(srv.URL, "test-key"))

	_, err := repos.Jobs.GetByID(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, ErrNotFound)
}
