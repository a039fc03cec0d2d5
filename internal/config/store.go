package config

import (
	"fmt"
	"os"
	"strings"
	"sync"
)

const (
	BackendPostgres = "postgres"
	BackendSupabase = "supabase"
	BackendMemory   = "memory"
)

// StoreConfig selects where records live.
type StoreConfig struct {
	Backend     string
	SupabaseURL string
	SupabaseKey string
}

var (
	storeConfig *StoreConfig
	storeOnce   sync.Once
)

func LoadStoreConfig() *StoreConfig {
	storeOnce.Do(func() {
		storeConfig = &StoreConfig{
			Backend:     strings.ToLower(getenvDefault("RECORD_BACKEND", BackendPostgres)),
			SupabaseURL: os.Getenv("SUPABASE_URL"),
			SupabaseKey: os.Getenv("SUPABASE_KEY"),
		}
	})
	return storeConfig
}

func (c *StoreConfig) Validate() error {
	switch c.Backend {
	case BackendPostgres, BackendMemory:
		return nil
	case BackendSupabase:
		if c.SupabaseURL == "" || c.SupabaseKey == "" {
			return fmt.Errorf("SUPABASE_URL and SUPABASE_KEY are required for the supabase backend")
		}
		return nil
	default:
		return fmt.Errorf("unknown RECORD_BACKEND %q", c.Backend)
	}
}
