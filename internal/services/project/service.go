package project

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/thenoetrevino/dotoo/internal/database"
	"github.com/thenoetrevino/dotoo/internal/events"
	"github.com/thenoetrevino/dotoo/internal/models"
	"github.com/thenoetrevino/dotoo/internal/types"
)

const maxNameLength = 100

// Default project names
const (
	WelcomeProjectName = "Welcome to DoToo"
	LegacyProjectName  = "Default Project"
)

// Service defines all project-related business operations.
// Operations on unknown ids leave state untouched and return ErrProjectNotFound.
type Service interface {
	// Load hydrates the store from persistence
	Load(ctx context.Context) error

	// Read operations
	GetAllProjects() []*models.Project
	GetProject(id string) (*models.Project, error)
	GetProjectsByType(t models.ProjectType) []*models.Project
	ActiveProject() *models.Project
	ActiveProjectID() string

	// Write operations
	CreateProject(ctx context.Context, req CreateProjectRequest) (*models.Project, error)
	UpdateProject(ctx context.Context, req UpdateProjectRequest) (*models.Project, error)
	DeleteProject(ctx context.Context, id string) error
	SetActiveProject(ctx context.Context, id string) error
	DuplicateProject(ctx context.Context, id, newName string) (*models.Project, error)
	InitializeDefaultProject(ctx context.Context) (*models.Project, error)
	EnsureLegacyProject(ctx context.Context) (*models.Project, error)

	// Bulk operations used by import and clear
	Replace(ctx context.Context, projects []*models.Project, activeID string) error
	Snapshot() ([]*models.Project, string)

	// SetDeleteHook registers the callback run before a project is removed
	SetDeleteHook(h DeleteHook)
}

// DeleteHook runs before a project is removed; an error aborts the delete.
// fallbackID is the first project that remains, or "".
type DeleteHook func(ctx context.Context, deletedID, fallbackID string) error

// CreateProjectRequest encapsulates data for creating a project.
// Zero values are filled from the type's preset.
type CreateProjectRequest struct {
	Name        string
	Description string
	Type        models.ProjectType
	ViewType    models.ViewType
	Color       string
	Icon        string
	Settings    *models.ProjectSettings
}

// UpdateProjectRequest encapsulates data for updating a project
// Fields with pointers are optional - nil means don't update
type UpdateProjectRequest struct {
	ID          string
	Name        *string
	Description *string
	Type        *models.ProjectType
	ViewType    *models.ViewType
	Color       *string
	Icon        *string
	Settings    *models.ProjectSettings
}

// repository defines the data access methods needed by the project service
// This interface is private to the service layer
type repository interface {
	LoadProjects(ctx context.Context) (*database.ProjectState, error)
	SaveProjects(ctx context.Context, st *database.ProjectState) error
}

// service implements Service interface with private repository
type service struct {
	mu       sync.RWMutex
	projects []*models.Project
	activeID string

	repo        repository
	clock       types.Clock
	eventClient events.EventPublisher
	logger      *slog.Logger
	onDelete    DeleteHook
}

// Option configures the project service
type Option func(*service)

// WithClock overrides the wall clock
func WithClock(c types.Clock) Option {
	return func(s *service) { s.clock = c }
}

// WithLogger overrides the default logger
func WithLogger(l *slog.Logger) Option {
	return func(s *service) { s.logger = l }
}

// NewService creates a new project service with private repository
func NewService(repo repository, eventClient events.EventPublisher, opts ...Option) Service {
	s := &service{
		projects:    []*models.Project{},
		repo:        repo,
		clock:       types.SystemClock{},
		eventClient: eventClient,
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) Load(ctx context.Context) error {
	st, err := s.repo.LoadProjects(ctx)
	if err != nil {
		return fmt.Errorf("failed to load projects: %w", err)
	}
	s.mu.Lock()
	s.projects = st.Projects
	s.activeID = st.ActiveProjectID
	s.mu.Unlock()
	return nil
}

func (s *service) SetDeleteHook(h DeleteHook) {
	s.mu.Lock()
	s.onDelete = h
	s.mu.Unlock()
}

// ============================================================================
// READS
// ============================================================================

func (s *service) GetAllProjects() []*models.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Project, len(s.projects))
	for i, p := range s.projects {
		out[i] = p.Clone()
	}
	return out
}

func (s *service) GetProject(id string) (*models.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.indexOf(id); i >= 0 {
		return s.projects[i].Clone(), nil
	}
	return nil, ErrProjectNotFound
}

func (s *service) GetProjectsByType(t models.ProjectType) []*models.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.Project
	for _, p := range s.projects {
		if p.Type == t {
			out = append(out, p.Clone())
		}
	}
	return out
}

// ActiveProject returns the project the active pointer names, or nil
func (s *service) ActiveProject() *models.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.indexOf(s.activeID); i >= 0 {
		return s.projects[i].Clone()
	}
	return nil
}

func (s *service) ActiveProjectID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.activeID
}

func (s *service) Snapshot() ([]*models.Project, string) {
	return s.GetAllProjects(), s.ActiveProjectID()
}

// ============================================================================
// WRITES
// ============================================================================

// CreateProject appends a project. It becomes active when no project is.
func (s *service) CreateProject(ctx context.Context, req CreateProjectRequest) (*models.Project, error) {
	name := strings.TrimSpace(req.Name)
	if err := validateName(name); err != nil {
		return nil, err
	}
	if req.Type == "" {
		req.Type = models.ProjectOther
	}
	if !req.Type.Valid() {
		return nil, ErrInvalidProjectType
	}
	if req.ViewType != "" && !req.ViewType.Valid() {
		return nil, ErrInvalidViewType
	}

	preset := models.PresetFor(req.Type)
	now := s.clock.Now()
	p := &models.Project{
		ID:          types.NewID(),
		Name:        name,
		Description: req.Description,
		Type:        req.Type,
		ViewType:    firstNonEmpty(req.ViewType, preset.DefaultViewType),
		Color:       firstNonEmpty(req.Color, preset.Color),
		Icon:        firstNonEmpty(req.Icon, preset.Icon),
		CreatedAt:   now,
		UpdatedAt:   now,
		Settings:    preset.Settings,
	}
	if req.Settings != nil {
		p.Settings = *req.Settings
	}

	s.mu.Lock()
	err := s.commit(ctx, func() {
		s.projects = append(s.projects, p)
		if s.activeID == "" {
			s.activeID = p.ID
		}
	})
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}

	s.logger.Info("project created", "project_id", p.ID, "name", p.Name, "type", p.Type)
	s.publish(p.ID)
	return p.Clone(), nil
}

// UpdateProject merges the set fields and refreshes UpdatedAt
func (s *service) UpdateProject(ctx context.Context, req UpdateProjectRequest) (*models.Project, error) {
	if req.Name != nil {
		trimmed := strings.TrimSpace(*req.Name)
		if err := validateName(trimmed); err != nil {
			return nil, err
		}
		req.Name = &trimmed
	}
	if req.Type != nil && !req.Type.Valid() {
		return nil, ErrInvalidProjectType
	}
	if req.ViewType != nil && !req.ViewType.Valid() {
		return nil, ErrInvalidViewType
	}

	s.mu.Lock()
	i := s.indexOf(req.ID)
	if i < 0 {
		s.mu.Unlock()
		s.logger.Debug("update of unknown project ignored", "project_id", req.ID)
		return nil, ErrProjectNotFound
	}

	updated := s.projects[i].Clone()
	if req.Name != nil {
		updated.Name = *req.Name
	}
	if req.Description != nil {
		updated.Description = *req.Description
	}
	if req.Type != nil {
		updated.Type = *req.Type
	}
	if req.ViewType != nil {
		updated.ViewType = *req.ViewType
	}
	if req.Color != nil {
		updated.Color = *req.Color
	}
	if req.Icon != nil {
		updated.Icon = *req.Icon
	}
	if req.Settings != nil {
		updated.Settings = *req.Settings
	}
	updated.UpdatedAt = s.clock.Now()

	err := s.commit(ctx, func() { s.projects[i] = updated })
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}

	s.publish(updated.ID)
	return updated.Clone(), nil
}

// DeleteProject removes a project. The delete hook runs first, so a failed
// task cascade leaves the project in place. When it was active the pointer
// moves to the first remaining project, or to none.
func (s *service) DeleteProject(ctx context.Context, id string) error {
	s.mu.Lock()
	i := s.indexOf(id)
	if i < 0 {
		s.mu.Unlock()
		s.logger.Debug("delete of unknown project ignored", "project_id", id)
		return ErrProjectNotFound
	}
	fallback := firstOther(s.projects, id)
	hook := s.onDelete
	s.mu.Unlock()

	if hook != nil {
		if err := hook(ctx, id, fallback); err != nil {
			return fmt.Errorf("failed to handle tasks of deleted project: %w", err)
		}
	}

	s.mu.Lock()
	i = s.indexOf(id)
	if i < 0 {
		s.mu.Unlock()
		return nil
	}
	err := s.commit(ctx, func() {
		s.projects = append(s.projects[:i:i], s.projects[i+1:]...)
		fallback = firstOther(s.projects, id)
		if s.activeID == id {
			s.activeID = fallback
		}
	})
	s.mu.Unlock()
	if err != nil {
		return err
	}

	s.logger.Info("project deleted", "project_id", id, "fallback", fallback)
	s.publish(id)
	return nil
}

func firstOther(projects []*models.Project, id string) string {
	for _, p := range projects {
		if p.ID != id {
			return p.ID
		}
	}
	return ""
}

// SetActiveProject swaps the active pointer. The id is not checked; "" clears it.
func (s *service) SetActiveProject(ctx context.Context, id string) error {
	s.mu.Lock()
	err := s.commit(ctx, func() { s.activeID = id })
	s.mu.Unlock()
	if err != nil {
		return err
	}
	s.publish(id)
	return nil
}

// DuplicateProject copies every field but identity and timestamps, then makes the copy active
func (s *service) DuplicateProject(ctx context.Context, id, newName string) (*models.Project, error) {
	name := strings.TrimSpace(newName)
	if err := validateName(name); err != nil {
		return nil, err
	}

	s.mu.Lock()
	i := s.indexOf(id)
	if i < 0 {
		s.mu.Unlock()
		s.logger.Debug("duplicate of unknown project ignored", "project_id", id)
		return nil, ErrProjectNotFound
	}

	dup := s.projects[i].Clone()
	now := s.clock.Now()
	dup.ID = types.NewID()
	dup.Name = name
	dup.CreatedAt = now
	dup.UpdatedAt = now
	dup.IsActive = false

	err := s.commit(ctx, func() {
		s.projects = append(s.projects, dup)
		s.activeID = dup.ID
	})
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}

	s.publish(dup.ID)
	return dup.Clone(), nil
}

// InitializeDefaultProject creates the welcome project when the store is empty.
// Returns nil when projects already exist.
func (s *service) InitializeDefaultProject(ctx context.Context) (*models.Project, error) {
	if len(s.GetAllProjects()) > 0 {
		return nil, nil
	}
	return s.CreateProject(ctx, CreateProjectRequest{
		Name:        WelcomeProjectName,
		Description: "Your first project. Create tasks, switch views and explore.",
		Type:        models.ProjectDevelopment,
	})
}

// EnsureLegacyProject returns the active project, creating the development
// preset "Default Project" when no project exists yet.
func (s *service) EnsureLegacyProject(ctx context.Context) (*models.Project, error) {
	if p := s.ActiveProject(); p != nil {
		return p, nil
	}
	if all := s.GetAllProjects(); len(all) > 0 {
		if err := s.SetActiveProject(ctx, all[0].ID); err != nil {
			return nil, err
		}
		return all[0], nil
	}
	return s.CreateProject(ctx, CreateProjectRequest{
		Name:        LegacyProjectName,
		Description: "Tasks created before projects existed",
		Type:        models.ProjectDevelopment,
	})
}

// Replace swaps the whole collection, as import and clear do
func (s *service) Replace(ctx context.Context, projects []*models.Project, activeID string) error {
	cp := make([]*models.Project, len(projects))
	for i, p := range projects {
		cp[i] = p.Clone()
	}
	if activeID == "" && len(cp) > 0 {
		activeID = cp[0].ID
	}

	s.mu.Lock()
	err := s.commit(ctx, func() {
		s.projects = cp
		s.activeID = activeID
	})
	s.mu.Unlock()
	if err != nil {
		return err
	}
	s.publish("")
	return nil
}

// ============================================================================
// HELPERS
// ============================================================================

// commit applies mutate and persists the result, restoring the previous
// state when the write fails. Caller holds s.mu.
func (s *service) commit(ctx context.Context, mutate func()) error {
	prevProjects := append([]*models.Project(nil), s.projects...)
	prevActive := s.activeID

	mutate()

	st := &database.ProjectState{Projects: s.projects, ActiveProjectID: s.activeID}
	if err := s.repo.SaveProjects(ctx, st); err != nil {
		s.projects = prevProjects
		s.activeID = prevActive
		return fmt.Errorf("failed to save projects: %w", err)
	}
	return nil
}

// indexOf returns the position of id or -1. Caller holds s.mu.
func (s *service) indexOf(id string) int {
	if id == "" {
		return -1
	}
	for i, p := range s.projects {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func (s *service) publish(projectID string) {
	if s.eventClient == nil {
		return
	}
	_ = events.Publish(s.eventClient, events.Event{
		Type:      events.EventProjectsChanged,
		ProjectID: projectID,
		Timestamp: s.clock.Now(),
	})
}

func validateName(name string) error {
	if name == "" {
		return ErrEmptyName
	}
	if len(name) > maxNameLength {
		return ErrNameTooLong
	}
	return nil
}

func firstNonEmpty[T ~string](v, def T) T {
	if v != "" {
		return v
	}
	return def
}
