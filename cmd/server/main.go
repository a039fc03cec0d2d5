package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/joho/godotenv"
	"github.com/localwork/marketplace/internal/config"
	"github.com/localwork/marketplace/internal/domain/fiber/server"
	"github.com/localwork/marketplace/internal/identity"
	"github.com/localwork/marketplace/internal/model"
	"github.com/localwork/marketplace/internal/repository"
	"github.com/localwork/marketplace/internal/service"
	"github.com/nedpals/supabase-go"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		slog.Info("could not load .env file, using process environment")
	}

	appConfig := config.LoadAppConfig()
	storeConfig := config.LoadStoreConfig()
	authConfig := config.LoadAuthConfig()

	if err := storeConfig.Validate(); err != nil {
		fatal("invalid store config", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repos, err := openRepositories(ctx, storeConfig)
	if err != nil {
		fatal("open record backend", err)
	}
	slog.Info("record backend ready", "backend", storeConfig.Backend)

	provider, err := identityService(appConfig, authConfig)
	if err != nil {
		fatal("identity provider", err)
	}

	store := session.New(session.Config{
		Expiration:     24 * time.Hour,
		KeyLookup:      "cookie:session_id",
		CookieHTTPOnly: true,
		CookieSecure:   authConfig.SecureCookies,
		CookieSameSite: "Lax",
	})

	app := server.New(server.Options{
		App:       appConfig,
		Repos:     repos,
		Sessions:  identity.NewSessions(store),
		Identity:  provider,
		AccessLog: true,
	})

	// Monitor goroutine count
	go func() {
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				slog.Debug("runtime stats", "goroutines", runtime.NumGoroutine())
			}
		}
	}()

	go func() {
		<-ctx.Done()
		slog.Info("shutting down")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			slog.Error("shutdown", "error", err)
		}
	}()

	slog.Info("server running", "port", appConfig.Port, "env", appConfig.Env)
	if err := app.Listen(appConfig.Port); err != nil {
		fatal("listen", err)
	}
}

func fatal(msg string, err error) {
	slog.Error(msg, "error", err)
	os.Exit(1)
}

func openRepositories(ctx context.Context, cfg *config.StoreConfig) (*repository.Repositories, error) {
	switch cfg.Backend {
	case config.BackendSupabase:
		client := supabase.CreateClient(cfg.SupabaseURL, cfg.SupabaseKey)
		return repository.NewSupabaseRepositories(client), nil
	case config.BackendMemory:
		repos := repository.NewMemoryRepositories()
		if err := seedDemo(ctx, repos); err != nil {
			return nil, fmt.Errorf("seed demo records: %w", err)
		}
		return repos, nil
	default:
		db, err := ConnectDB()
		if err != nil {
			return nil, err
		}
		return repository.NewGormRepositories(db), nil
	}
}

// identityService picks the OAuth provider when configured. Without one the
// demo sign-in is used, which production refuses.
func identityService(app *config.AppConfig, auth *config.AuthConfig) (service.IdentityServiceInterface, error) {
	if auth.Enabled() {
		return service.NewOAuthIdentityService(auth)
	}
	if app.IsProduction() {
		return nil, errors.New("OAUTH_* settings are required in production")
	}
	slog.Warn("no OAuth provider configured, using demo sign-in")
	return service.NewDevIdentityService(), nil
}

func ConnectDB() (*gorm.DB, error) {
	dbConfig := config.LoadDBConfig()
	appConfig := config.LoadAppConfig()

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		dbConfig.Host,
		dbConfig.User,
		dbConfig.Password,
		dbConfig.Name,
		dbConfig.Port,
		dbConfig.SSLMode,
		dbConfig.TimeZone,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	pgDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get database instance: %w", err)
	}
	if !appConfig.IsProduction() {
		pgDB.SetMaxIdleConns(5)
		pgDB.SetMaxOpenConns(10)
		pgDB.SetConnMaxLifetime(30 * time.Minute)
	} else {
		pgDB.SetMaxIdleConns(20)
		pgDB.SetMaxOpenConns(200)
		pgDB.SetConnMaxLifetime(time.Hour)
	}

	if err := db.AutoMigrate(model.All()...); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}
	return db, nil
}
