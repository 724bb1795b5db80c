package task

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/thenoetrevino/dotoo/internal/database"
	"github.com/thenoetrevino/dotoo/internal/events"
	"github.com/thenoetrevino/dotoo/internal/models"
	"github.com/thenoetrevino/dotoo/internal/types"
)

const maxTitleLength = 255

// Orphan policies for tasks of a deleted project
const (
	PolicyCascade  = "cascade"
	PolicyReassign = "reassign"
	PolicyKeep     = "keep"
)

// Service defines all task-related business operations.
// Unknown ids and unmet preconditions leave state untouched, are logged,
// and surface as sentinel errors for callers that care.
type Service interface {
	// Load hydrates the store from persistence
	Load(ctx context.Context) error

	// Read operations
	GetTask(id string) (*models.Task, error)
	GetAllTasks() []*models.Task
	FilteredTasks() []*models.Task
	TasksByStatus(status models.Status) []*models.Task
	Stats() models.TaskStats
	SearchFilters() models.SearchFilters
	SelectedTask() *models.Task
	IsDarkMode() bool

	// Write operations
	AddTask(ctx context.Context, req CreateTaskRequest) (*models.Task, error)
	UpdateTask(ctx context.Context, req UpdateTaskRequest) (*models.Task, error)
	UpdateTaskStatus(ctx context.Context, id string, status models.Status) error
	DeleteTask(ctx context.Context, id string) error

	// UI state
	SelectTask(id string) error
	SetSearchFilters(ctx context.Context, patch models.SearchFilters) error
	UnsetFilters(ctx context.Context, fields ...string) error
	ClearFilters(ctx context.Context) error
	ToggleDarkMode(ctx context.Context) error

	// Maintenance
	MigrateLegacyTasks(ctx context.Context, projectID string) (int, error)
	HasLegacyTasks() bool
	HandleProjectDeleted(ctx context.Context, deletedID, fallbackID, policy string) error
	Replace(ctx context.Context, tasks []*models.Task, isDarkMode bool, filters models.SearchFilters) error
}

// CreateTaskRequest encapsulates all data needed to create a task.
// Zero values for category and priority fall back to the active project's defaults.
type CreateTaskRequest struct {
	Title          string
	Description    string
	Code           string
	Language       string
	Category       models.Category
	Priority       models.Priority
	Status         models.Status
	DueDate        *time.Time
	BranchName     string
	Tags           []string
	AssignedTo     string
	EstimatedHours *float64
	Dependencies   []string
	ParentTaskID   string
}

// UpdateTaskRequest encapsulates all data needed to update a task
// Fields with pointers are optional - nil means don't update
type UpdateTaskRequest struct {
	TaskID         string
	Title          *string
	Description    *string
	Code           *string
	Language       *string
	Category       *models.Category
	Priority       *models.Priority
	Status         *models.Status
	DueDate        *time.Time
	ClearDueDate   bool
	BranchName     *string
	Tags           []string
	AssignedTo     *string
	EstimatedHours *float64
	ActualHours    *float64
	Order          *int
}

// repository defines the data access methods needed by the task service
type repository interface {
	LoadTasks(ctx context.Context) (*database.TaskState, error)
	SaveTasks(ctx context.Context, st *database.TaskState) error
}

// projectReader is the read-only view of the project store this service needs
type projectReader interface {
	ActiveProject() *models.Project
	ActiveProjectID() string
}

// service implements Service interface
type service struct {
	mu         sync.RWMutex
	tasks      []*models.Task
	filters    models.SearchFilters
	isDarkMode bool
	selectedID string

	repo        repository
	projects    projectReader
	clock       types.Clock
	eventClient events.EventPublisher
	logger      *slog.Logger
}

// Option configures the task service
type Option func(*service)

// WithClock overrides the wall clock
func WithClock(c types.Clock) Option {
	return func(s *service) { s.clock = c }
}

// WithLogger overrides the default logger
func WithLogger(l *slog.Logger) Option {
	return func(s *service) { s.logger = l }
}

// NewService creates a new task service reading the active project from projects
func NewService(repo repository, projects projectReader, eventClient events.EventPublisher, opts ...Option) Service {
	s := &service{
		tasks:       []*models.Task{},
		repo:        repo,
		projects:    projects,
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
	st, err := s.repo.LoadTasks(ctx)
	if err != nil {
		return fmt.Errorf("failed to load tasks: %w", err)
	}
	s.mu.Lock()
	s.tasks = st.Tasks
	s.isDarkMode = st.IsDarkMode
	s.filters = st.SearchFilters
	s.mu.Unlock()
	return nil
}

// ============================================================================
// READS
// ============================================================================

func (s *service) GetTask(id string) (*models.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.indexOf(id); i >= 0 {
		return s.tasks[i].Clone(), nil
	}
	return nil, ErrTaskNotFound
}

func (s *service) GetAllTasks() []*models.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return models.CloneTasks(s.tasks)
}

// FilteredTasks applies the active project scope and the current filters
func (s *service) FilteredTasks() []*models.Task {
	active := s.projects.ActiveProjectID()
	s.mu.RLock()
	defer s.mu.RUnlock()
	return models.CloneTasks(Filter(s.tasks, active, s.filters, s.clock.Now()))
}

func (s *service) TasksByStatus(status models.Status) []*models.Task {
	var out []*models.Task
	for _, t := range s.FilteredTasks() {
		if t.Status == status {
			out = append(out, t)
		}
	}
	return out
}

// Stats summarizes the filtered tasks
func (s *service) Stats() models.TaskStats {
	return models.ComputeStats(s.FilteredTasks(), s.clock.Now())
}

func (s *service) SearchFilters() models.SearchFilters {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filters
}

func (s *service) SelectedTask() *models.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.indexOf(s.selectedID); i >= 0 {
		return s.tasks[i].Clone()
	}
	return nil
}

func (s *service) IsDarkMode() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isDarkMode
}

// ============================================================================
// WRITES
// ============================================================================

// AddTask creates a task in the active project. Without an active project
// nothing is added and ErrNoActiveProject is returned.
func (s *service) AddTask(ctx context.Context, req CreateTaskRequest) (*models.Task, error) {
	project := s.projects.ActiveProject()
	if project == nil {
		s.logger.Warn("task not added: no active project", "title", req.Title)
		return nil, ErrNoActiveProject
	}

	title := strings.TrimSpace(req.Title)
	if err := validateTitle(title); err != nil {
		return nil, err
	}

	category := req.Category
	if category == "" {
		category = project.Settings.DefaultCategory
	}
	if category == "" {
		category = models.CategoryFeature
	}
	priority := req.Priority
	if priority == "" {
		priority = project.Settings.DefaultPriority
	}
	if priority == "" {
		priority = models.PriorityMedium
	}
	status := req.Status
	if status == "" {
		status = models.StatusTodo
	}
	if err := validateEnums(category, priority, status); err != nil {
		return nil, err
	}

	branch := strings.TrimSpace(req.BranchName)
	if branch == "" {
		branch = models.BranchName(category, title)
	}

	t := &models.Task{
		ID:             types.NewID(),
		ProjectID:      project.ID,
		Title:          title,
		Description:    req.Description,
		Code:           req.Code,
		Language:       req.Language,
		Category:       category,
		Priority:       priority,
		Status:         status,
		CreatedAt:      s.clock.Now(),
		DueDate:        req.DueDate,
		BranchName:     branch,
		Tags:           append([]string(nil), req.Tags...),
		AssignedTo:     req.AssignedTo,
		EstimatedHours: req.EstimatedHours,
		Dependencies:   append([]string(nil), req.Dependencies...),
		ParentTaskID:   req.ParentTaskID,
	}

	s.mu.Lock()
	err := s.commit(ctx, func() { s.tasks = append(s.tasks, t) })
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}

	s.logger.Debug("task added", "task_id", t.ID, "project_id", t.ProjectID)
	s.publishTaskEvent(t.ProjectID, t.ID)
	return t.Clone(), nil
}

// UpdateTask merges the set fields into the task
func (s *service) UpdateTask(ctx context.Context, req UpdateTaskRequest) (*models.Task, error) {
	if req.Title != nil {
		trimmed := strings.TrimSpace(*req.Title)
		if err := validateTitle(trimmed); err != nil {
			return nil, err
		}
		req.Title = &trimmed
	}
	if req.Category != nil && !req.Category.Valid() {
		return nil, ErrInvalidCategory
	}
	if req.Priority != nil && !req.Priority.Valid() {
		return nil, ErrInvalidPriority
	}
	if req.Status != nil && !req.Status.Valid() {
		return nil, ErrInvalidStatus
	}

	s.mu.Lock()
	i := s.indexOf(req.TaskID)
	if i < 0 {
		s.mu.Unlock()
		s.logger.Debug("update of unknown task ignored", "task_id", req.TaskID)
		return nil, ErrTaskNotFound
	}

	updated := s.tasks[i].Clone()
	applyUpdate(updated, req)

	err := s.commit(ctx, func() { s.tasks[i] = updated })
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}

	s.publishTaskEvent(updated.ProjectID, updated.ID)
	return updated.Clone(), nil
}

// UpdateTaskStatus is the drag-and-drop hot path
func (s *service) UpdateTaskStatus(ctx context.Context, id string, status models.Status) error {
	_, err := s.UpdateTask(ctx, UpdateTaskRequest{TaskID: id, Status: &status})
	return err
}

// DeleteTask removes a task and clears the selection if it pointed at it
func (s *service) DeleteTask(ctx context.Context, id string) error {
	s.mu.Lock()
	i := s.indexOf(id)
	if i < 0 {
		s.mu.Unlock()
		s.logger.Debug("delete of unknown task ignored", "task_id", id)
		return ErrTaskNotFound
	}
	projectID := s.tasks[i].ProjectID

	err := s.commit(ctx, func() {
		s.tasks = append(s.tasks[:i:i], s.tasks[i+1:]...)
	})
	if err == nil && s.selectedID == id {
		s.selectedID = ""
	}
	s.mu.Unlock()
	if err != nil {
		return err
	}

	s.publishTaskEvent(projectID, id)
	return nil
}

// ============================================================================
// UI STATE
// ============================================================================

// SelectTask points the selection at id; "" clears it
func (s *service) SelectTask(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if id != "" && s.indexOf(id) < 0 {
		return ErrTaskNotFound
	}
	s.selectedID = id
	return nil
}

// SetSearchFilters merges patch into the current filters
func (s *service) SetSearchFilters(ctx context.Context, patch models.SearchFilters) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.commit(ctx, func() { s.filters = s.filters.Merge(patch) })
}

// UnsetFilters resets the named predicates and keeps the rest
func (s *service) UnsetFilters(ctx context.Context, fields ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, err := s.filters.Without(fields...)
	if err != nil {
		return err
	}
	return s.commit(ctx, func() { s.filters = next })
}

// ClearFilters resets every predicate to unconstrained
func (s *service) ClearFilters(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.commit(ctx, func() { s.filters = models.SearchFilters{} })
}

func (s *service) ToggleDarkMode(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.commit(ctx, func() { s.isDarkMode = !s.isDarkMode })
}

// ============================================================================
// MAINTENANCE
// ============================================================================

// HasLegacyTasks reports whether any task predates projects
func (s *service) HasLegacyTasks() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.tasks {
		if t.ProjectID == "" {
			return true
		}
	}
	return false
}

// MigrateLegacyTasks assigns every task without a project to projectID
func (s *service) MigrateLegacyTasks(ctx context.Context, projectID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var idx []int
	for i, t := range s.tasks {
		if t.ProjectID == "" {
			idx = append(idx, i)
		}
	}
	if len(idx) == 0 {
		return 0, nil
	}

	err := s.commit(ctx, func() {
		for _, i := range idx {
			t := s.tasks[i].Clone()
			t.ProjectID = projectID
			s.tasks[i] = t
		}
	})
	if err != nil {
		return 0, err
	}
	s.logger.Info("migrated legacy tasks", "count", len(idx), "project_id", projectID)
	return len(idx), nil
}

// HandleProjectDeleted applies the orphan policy to the deleted project's tasks
func (s *service) HandleProjectDeleted(ctx context.Context, deletedID, fallbackID, policy string) error {
	switch policy {
	case PolicyCascade, PolicyReassign, PolicyKeep:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidPolicy, policy)
	}
	if policy == PolicyKeep {
		return nil
	}
	if policy == PolicyReassign && fallbackID == "" {
		s.logger.Warn("no project to reassign orphaned tasks to, keeping them", "project_id", deletedID)
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	affected := 0
	err := s.commit(ctx, func() {
		kept := make([]*models.Task, 0, len(s.tasks))
		for _, t := range s.tasks {
			if t.ProjectID != deletedID {
				kept = append(kept, t)
				continue
			}
			affected++
			if policy == PolicyReassign {
				moved := t.Clone()
				moved.ProjectID = fallbackID
				kept = append(kept, moved)
			}
		}
		s.tasks = kept
		if s.indexOf(s.selectedID) < 0 {
			s.selectedID = ""
		}
	})
	if err != nil {
		return err
	}
	if affected > 0 {
		s.logger.Info("handled orphaned tasks", "policy", policy, "count", affected, "project_id", deletedID)
	}
	return nil
}

// Replace swaps the whole task namespace, as import and clear do
func (s *service) Replace(ctx context.Context, tasks []*models.Task, isDarkMode bool, filters models.SearchFilters) error {
	cp := models.CloneTasks(tasks)
	s.mu.Lock()
	err := s.commit(ctx, func() {
		s.tasks = cp
		s.isDarkMode = isDarkMode
		s.filters = filters
		s.selectedID = ""
	})
	s.mu.Unlock()
	if err != nil {
		return err
	}
	s.publishTaskEvent("", "")
	return nil
}

// ============================================================================
// HELPERS
// ============================================================================

// commit applies mutate and persists the namespace, restoring the previous
// state when the write fails. Caller holds s.mu.
func (s *service) commit(ctx context.Context, mutate func()) error {
	prevTasks := append([]*models.Task(nil), s.tasks...)
	prevFilters := s.filters
	prevDark := s.isDarkMode
	prevSelected := s.selectedID

	mutate()

	st := &database.TaskState{Tasks: s.tasks, IsDarkMode: s.isDarkMode, SearchFilters: s.filters}
	if err := s.repo.SaveTasks(ctx, st); err != nil {
		s.tasks = prevTasks
		s.filters = prevFilters
		s.isDarkMode = prevDark
		s.selectedID = prevSelected
		return fmt.Errorf("failed to save tasks: %w", err)
	}
	return nil
}

// indexOf returns the position of id or -1. Caller holds s.mu.
func (s *service) indexOf(id string) int {
	if id == "" {
		return -1
	}
	for i, t := range s.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// publishTaskEvent notifies listeners that task data changed
func (s *service) publishTaskEvent(projectID, taskID string) {
	if s.eventClient == nil {
		return
	}
	_ = events.Publish(s.eventClient, events.Event{
		Type:      events.EventTasksChanged,
		ProjectID: projectID,
		TaskID:    taskID,
		Timestamp: s.clock.Now(),
	})
}

// applyUpdate merges req into t. A branch name still equal to the one derived
// from the old title and category follows title or category changes; an
// explicit or hand-edited branch is kept.
func applyUpdate(t *models.Task, req UpdateTaskRequest) {
	derived := t.BranchName == models.BranchName(t.Category, t.Title)

	if req.Title != nil {
		t.Title = *req.Title
	}
	if req.Description != nil {
		t.Description = *req.Description
	}
	if req.Code != nil {
		t.Code = *req.Code
	}
	if req.Language != nil {
		t.Language = *req.Language
	}
	if req.Category != nil {
		t.Category = *req.Category
	}
	if req.Priority != nil {
		t.Priority = *req.Priority
	}
	if req.Status != nil {
		t.Status = *req.Status
	}
	if req.ClearDueDate {
		t.DueDate = nil
	} else if req.DueDate != nil {
		d := *req.DueDate
		t.DueDate = &d
	}
	if req.BranchName != nil {
		t.BranchName = *req.BranchName
	} else if derived && (req.Title != nil || req.Category != nil) {
		t.BranchName = models.BranchName(t.Category, t.Title)
	}
	if req.Tags != nil {
		t.Tags = append([]string(nil), req.Tags...)
	}
	if req.AssignedTo != nil {
		t.AssignedTo = *req.AssignedTo
	}
	if req.EstimatedHours != nil {
		v := *req.EstimatedHours
		t.EstimatedHours = &v
	}
	if req.ActualHours != nil {
		v := *req.ActualHours
		t.ActualHours = &v
	}
	if req.Order != nil {
		v := *req.Order
		t.Order = &v
	}
}

func validateTitle(title string) error {
	if title == "" {
		return ErrEmptyTitle
	}
	if len(title) > maxTitleLength {
		return ErrTitleTooLong
	}
	return nil
}

func validateEnums(c models.Category, p models.Priority, st models.Status) error {
	if !c.Valid() {
		return ErrInvalidCategory
	}
	if !p.Valid() {
		return ErrInvalidPriority
	}
	if !st.Valid() {
		return ErrInvalidStatus
	}
	return nil
}
