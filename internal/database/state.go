package database

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/thenoetrevino/dotoo/internal/models"
)

// Storage namespaces
const (
	TasksKey     = "dotoo-storage"
	ProjectsKey  = "dotoo-projects"
	BackupPrefix = "dotoo-backup-"
	stateVersion = 0
)

// TaskState is the persisted half of the task store
type TaskState struct {
	Tasks         []*models.Task       `json:"tasks"`
	IsDarkMode    bool                 `json:"isDarkMode"`
	SearchFilters models.SearchFilters `json:"searchFilters"`
}

// ProjectState is the persisted half of the project store
type ProjectState struct {
	Projects        []*models.Project `json:"projects"`
	ActiveProjectID string            `json:"activeProjectId,omitempty"`
}

type envelope[T any] struct {
	State   T   `json:"state"`
	Version int `json:"version"`
}

// StateRepo loads and saves the two state namespaces as whole blobs
type StateRepo struct {
	store BlobStore
}

// NewStateRepo wraps a blob store
func NewStateRepo(store BlobStore) *StateRepo {
	return &StateRepo{store: store}
}

// Store exposes the underlying blob store for backup handling
func (r *StateRepo) Store() BlobStore {
	return r.store
}

// LoadTasks reads the task namespace. A missing namespace yields an empty state.
func (r *StateRepo) LoadTasks(ctx context.Context) (*TaskState, error) {
	st := &TaskState{Tasks: []*models.Task{}}
	if err := load(ctx, r.store, TasksKey, st); err != nil {
		return nil, err
	}
	if st.Tasks == nil {
		st.Tasks = []*models.Task{}
	}
	return st, nil
}

// SaveTasks replaces the task namespace
func (r *StateRepo) SaveTasks(ctx context.Context, st *TaskState) error {
	return save(ctx, r.store, TasksKey, st)
}

// LoadProjects reads the project namespace. A missing namespace yields an empty state.
func (r *StateRepo) LoadProjects(ctx context.Context) (*ProjectState, error) {
	st := &ProjectState{Projects: []*models.Project{}}
	if err := load(ctx, r.store, ProjectsKey, st); err != nil {
		return nil, err
	}
	if st.Projects == nil {
		st.Projects = []*models.Project{}
	}
	return st, nil
}

// SaveProjects replaces the project namespace
func (r *StateRepo) SaveProjects(ctx context.Context, st *ProjectState) error {
	return save(ctx, r.store, ProjectsKey, st)
}

func load[T any](ctx context.Context, store BlobStore, key string, into *T) error {
	raw, err := store.Get(ctx, key)
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	env := envelope[*T]{State: into}
	if err := json.Unmarshal(raw, &env); err != nil {
		return fmt.Errorf("decoding %s: %w", key, err)
	}
	return nil
}

func save[T any](ctx context.Context, store BlobStore, key string, st *T) error {
	raw, err := json.Marshal(envelope[*T]{State: st, Version: stateVersion})
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}
	return store.Put(ctx, key, raw)
}
