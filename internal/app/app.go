package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/thenoetrevino/dotoo/internal/config"
	"github.com/thenoetrevino/dotoo/internal/database"
	"github.com/thenoetrevino/dotoo/internal/datamanager"
	"github.com/thenoetrevino/dotoo/internal/events"
	projectservice "github.com/thenoetrevino/dotoo/internal/services/project"
	taskservice "github.com/thenoetrevino/dotoo/internal/services/task"
	"github.com/thenoetrevino/dotoo/internal/types"
	"github.com/thenoetrevino/dotoo/internal/views/calendar"
	"github.com/thenoetrevino/dotoo/internal/views/gantt"
	"github.com/thenoetrevino/dotoo/internal/views/kanban"
)

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	Config   *config.Config
	Location *time.Location
	Clock    types.Clock
	Logger   *slog.Logger

	// Storage layer
	store database.BlobStore

	// Event system for live updates
	eventClient events.EventPublisher
	ownsEvents  bool

	// Service layer (business logic)
	ProjectService projectservice.Service
	TaskService    taskservice.Service
	DataManager    *datamanager.Manager

	// Interaction engines
	Kanban      *kanban.Engine
	Rescheduler *calendar.Rescheduler
	Dropdowns   *gantt.Dropdowns
}

// Open opens the SQLite store under cfg.DataDir and builds the App on it
func Open(ctx context.Context, cfg *config.Config, opts ...Option) (*App, error) {
	store, err := database.OpenSQLiteStore(ctx, cfg.DataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}
	a, err := New(ctx, store, cfg, opts...)
	if err != nil {
		_ = store.Close()
		return nil, err
	}
	return a, nil
}

// New creates a new App with all services initialized and loaded.
// Legacy tasks are migrated and the welcome project is created when needed.
func New(ctx context.Context, store database.BlobStore, cfg *config.Config, opts ...Option) (*App, error) {
	ac := &appConfig{logger: slog.Default(), clock: types.SystemClock{}}
	for _, opt := range opts {
		opt(ac)
	}
	if cfg == nil {
		cfg = config.Default()
	}
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	a := &App{
		Config:      cfg,
		Location:    loc,
		Clock:       ac.clock,
		Logger:      ac.logger,
		store:       store,
		eventClient: ac.eventClient,
	}
	if a.eventClient == nil {
		a.eventClient = events.NewBus()
		a.ownsEvents = true
	}

	repo := database.NewStateRepo(store)
	a.ProjectService = projectservice.NewService(repo, a.eventClient,
		projectservice.WithClock(ac.clock), projectservice.WithLogger(ac.logger))
	a.TaskService = taskservice.NewService(repo, a.ProjectService, a.eventClient,
		taskservice.WithClock(ac.clock), taskservice.WithLogger(ac.logger))

	// Only the task store writes task data; project deletion hands off here
	policy := cfg.OrphanPolicy
	a.ProjectService.SetDeleteHook(func(ctx context.Context, deletedID, fallbackID string) error {
		return a.TaskService.HandleProjectDeleted(ctx, deletedID, fallbackID, policy)
	})

	a.DataManager = datamanager.New(store, a.ProjectService, a.TaskService, a.eventClient,
		datamanager.WithClock(ac.clock),
		datamanager.WithLogger(ac.logger),
		datamanager.WithKeepBackups(cfg.Backups.Keep))

	a.Kanban = kanban.NewEngine(a.TaskService)
	a.Rescheduler = calendar.NewRescheduler(a.TaskService, loc)
	a.Dropdowns = gantt.NewDropdowns(a.TaskService)

	if err := a.load(ctx); err != nil {
		a.closeEvents()
		return nil, err
	}
	return a, nil
}

// load reads both namespaces, then moves pre-project tasks into a project
// and seeds the welcome project on an empty store
func (a *App) load(ctx context.Context) error {
	if err := a.ProjectService.Load(ctx); err != nil {
		return err
	}
	if err := a.TaskService.Load(ctx); err != nil {
		return err
	}

	if a.TaskService.HasLegacyTasks() {
		p, err := a.ProjectService.EnsureLegacyProject(ctx)
		if err != nil {
			return fmt.Errorf("failed to prepare legacy project: %w", err)
		}
		if _, err := a.TaskService.MigrateLegacyTasks(ctx, p.ID); err != nil {
			return fmt.Errorf("failed to migrate legacy tasks: %w", err)
		}
	}

	if _, err := a.ProjectService.InitializeDefaultProject(ctx); err != nil {
		return fmt.Errorf("failed to create welcome project: %w", err)
	}
	return nil
}

// Events returns the publisher the stores notify
func (a *App) Events() events.EventPublisher {
	return a.eventClient
}

// Store returns the underlying blob store
func (a *App) Store() database.BlobStore {
	return a.store
}

// Now is the current time in the configured location
func (a *App) Now() time.Time {
	return a.Clock.Now().In(a.Location)
}

// Close releases the event bus (when owned) and the store
func (a *App) Close() error {
	return errors.Join(a.closeEvents(), a.store.Close())
}

func (a *App) closeEvents() error {
	if !a.ownsEvents {
		return nil
	}
	return a.eventClient.Close()
}
