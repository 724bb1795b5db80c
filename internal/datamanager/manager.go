package datamanager

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"strings"

	"github.com/thenoetrevino/dotoo/internal/database"
	"github.com/thenoetrevino/dotoo/internal/events"
	"github.com/thenoetrevino/dotoo/internal/models"
	"github.com/thenoetrevino/dotoo/internal/types"
)

// DefaultKeepBackups is how many backups CleanupOldBackups retains
const DefaultKeepBackups = 10

const (
	preImportBackup = "pre-import-backup"
	preClearBackup  = "pre-clear-backup"
)

// projectStore is the slice of the project service the manager needs
type projectStore interface {
	GetAllProjects() []*models.Project
	ActiveProjectID() string
	Replace(ctx context.Context, projects []*models.Project, activeID string) error
}

// taskStore is the slice of the task service the manager needs
type taskStore interface {
	GetAllTasks() []*models.Task
	IsDarkMode() bool
	SearchFilters() models.SearchFilters
	HasLegacyTasks() bool
	MigrateLegacyTasks(ctx context.Context, projectID string) (int, error)
	Replace(ctx context.Context, tasks []*models.Task, isDarkMode bool, filters models.SearchFilters) error
}

// BackupInfo describes a stored backup
type BackupInfo struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"createdAt"`
	TaskCount int    `json:"taskCount"`
	Size      int    `json:"size"`
}

// backupRecord is the stored form of a backup
type backupRecord struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Data      json.RawMessage `json:"data"`
	CreatedAt string          `json:"createdAt"`
}

// backupSummary reads a backup without decoding its tasks
type backupSummary struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"createdAt"`
	Data      struct {
		Tasks []json.RawMessage `json:"tasks"`
	} `json:"data"`
}

// DataStats summarizes what is stored
type DataStats struct {
	TaskCount    int `json:"taskCount"`
	ProjectCount int `json:"projectCount"`
	BackupCount  int `json:"backupCount"`
	StorageSize  int `json:"storageSize"`
}

// Manager moves whole collections in and out of the stores
type Manager struct {
	store       database.BlobStore
	projects    projectStore
	tasks       taskStore
	eventClient events.EventPublisher
	clock       types.Clock
	logger      *slog.Logger
	keep        int
}

// Option configures a Manager
type Option func(*Manager)

// WithClock sets the time source for export and backup timestamps
func WithClock(c types.Clock) Option {
	return func(m *Manager) { m.clock = c }
}

// WithLogger sets the logger
func WithLogger(l *slog.Logger) Option {
	return func(m *Manager) { m.logger = l }
}

// WithKeepBackups sets how many backups cleanup retains
func WithKeepBackups(n int) Option {
	return func(m *Manager) {
		if n > 0 {
			m.keep = n
		}
	}
}

// New creates a Manager. Backups live in store beside the state blobs.
func New(store database.BlobStore, projects projectStore, tasks taskStore, eventClient events.EventPublisher, opts ...Option) *Manager {
	m := &Manager{
		store:       store,
		projects:    projects,
		tasks:       tasks,
		eventClient: eventClient,
		clock:       types.SystemClock{},
		logger:      slog.Default(),
		keep:        DefaultKeepBackups,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// ============================================================================
// EXPORT / IMPORT
// ============================================================================

// Export snapshots both stores
func (m *Manager) Export() *ExportData {
	return &ExportData{
		Version:         CurrentVersion,
		ExportedAt:      iso(m.clock.Now()),
		ActiveProjectID: m.projects.ActiveProjectID(),
		Projects:        m.projects.GetAllProjects(),
		Tasks:           m.tasks.GetAllTasks(),
		Settings: &Settings{
			IsDarkMode:    m.tasks.IsDarkMode(),
			SearchFilters: m.tasks.SearchFilters(),
		},
	}
}

// ExportJSON is Export encoded for a file
func (m *Manager) ExportJSON() ([]byte, error) {
	data, err := json.MarshalIndent(m.Export(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode export: %w", err)
	}
	return data, nil
}

// ExportCSV renders every task as CSV
func (m *Manager) ExportCSV() string {
	return CSV(m.tasks.GetAllTasks())
}

// Import validates raw and, when valid, takes a pre-import backup and
// replaces both stores. A bundle without projects keeps the current ones and
// adopts its project-less tasks into the active project.
func (m *Manager) Import(ctx context.Context, raw []byte) ValidationResult {
	res := ValidateImportData(raw)
	if !res.IsValid {
		return res
	}

	data, err := decodeBundle(raw)
	if err != nil {
		return importFailed(err)
	}

	if _, err := m.CreateBackup(ctx, preImportBackup); err != nil && !errors.Is(err, ErrNothingToExport) {
		return importFailed(err)
	}

	if data.Projects != nil {
		activeID := data.ActiveProjectID
		if !slices.ContainsFunc(data.Projects, func(p *models.Project) bool { return p.ID == activeID }) {
			activeID = ""
		}
		if err := m.projects.Replace(ctx, data.Projects, activeID); err != nil {
			return importFailed(err)
		}
	}

	settings := Settings{IsDarkMode: true}
	if data.Settings != nil {
		settings = *data.Settings
	}
	if err := m.tasks.Replace(ctx, data.Tasks, settings.IsDarkMode, settings.SearchFilters); err != nil {
		return importFailed(err)
	}

	if active := m.projects.ActiveProjectID(); active != "" && m.tasks.HasLegacyTasks() {
		if _, err := m.tasks.MigrateLegacyTasks(ctx, active); err != nil {
			return importFailed(err)
		}
	}

	m.logger.Info("data imported", "tasks", len(data.Tasks), "projects", len(data.Projects))
	m.publish(events.EventDataImported)
	return res
}

func importFailed(err error) ValidationResult {
	return failed("Import failed: " + err.Error())
}

// decodeBundle decodes a validated bundle, normalizing hand-typed dates into
// RFC 3339 first
func decodeBundle(raw []byte) (*ExportData, error) {
	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	tasks, _ := doc["tasks"].([]any)
	for _, t := range tasks {
		if tm, ok := t.(map[string]any); ok {
			normalizeDate(tm, "createdAt")
			normalizeDate(tm, "dueDate")
		}
	}
	projects, _ := doc["projects"].([]any)
	for _, p := range projects {
		if pm, ok := p.(map[string]any); ok {
			normalizeDate(pm, "createdAt")
			normalizeDate(pm, "updatedAt")
		}
	}

	clean, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	var data ExportData
	if err := json.Unmarshal(clean, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

func normalizeDate(m map[string]any, key string) {
	s, ok := m[key].(string)
	if !ok {
		if v, has := m[key]; has && v == nil {
			delete(m, key)
		}
		return
	}
	if t, err := parseDate(s); err == nil {
		m[key] = t.Format(isoLayout)
	}
}

// ============================================================================
// BACKUPS
// ============================================================================

// CreateBackup stores a full export under a new backup id. An empty name
// gets a timestamped default.
func (m *Manager) CreateBackup(ctx context.Context, name string) (*BackupInfo, error) {
	data := m.Export()
	if len(data.Tasks) == 0 && len(data.Projects) == 0 {
		return nil, ErrNothingToExport
	}

	now := m.clock.Now()
	if name == "" {
		name = "Backup " + now.Format("2006-01-02 15:04:05")
	}
	payload, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to encode backup: %w", err)
	}
	rec := backupRecord{
		ID:        database.BackupPrefix + strconv.FormatInt(now.UnixMilli(), 10) + "-" + types.NewID()[:8],
		Name:      name,
		Data:      payload,
		CreatedAt: iso(now),
	}
	blob, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("failed to encode backup: %w", err)
	}
	if err := m.store.Put(ctx, rec.ID, blob); err != nil {
		return nil, fmt.Errorf("failed to store backup: %w", err)
	}

	m.logger.Info("backup created", "backup_id", rec.ID, "name", name, "tasks", len(data.Tasks))
	m.publish(events.EventBackupCreated)
	return &BackupInfo{ID: rec.ID, Name: name, CreatedAt: rec.CreatedAt, TaskCount: len(data.Tasks), Size: len(blob)}, nil
}

// ListBackups returns every readable backup, newest first. Unreadable
// entries are skipped.
func (m *Manager) ListBackups(ctx context.Context) ([]BackupInfo, error) {
	keys, err := m.store.Keys(ctx, database.BackupPrefix)
	if err != nil {
		return nil, fmt.Errorf("failed to list backups: %w", err)
	}

	backups := make([]BackupInfo, 0, len(keys))
	for _, key := range keys {
		blob, err := m.store.Get(ctx, key)
		if err != nil {
			m.logger.Warn("failed to read backup", "backup_id", key, "error", err)
			continue
		}
		var rec backupSummary
		if err := json.Unmarshal(blob, &rec); err != nil {
			m.logger.Warn("failed to parse backup", "backup_id", key, "error", err)
			continue
		}
		backups = append(backups, BackupInfo{
			ID:        rec.ID,
			Name:      rec.Name,
			CreatedAt: rec.CreatedAt,
			TaskCount: len(rec.Data.Tasks),
			Size:      len(blob),
		})
	}

	slices.SortStableFunc(backups, func(a, b BackupInfo) int {
		if c := strings.Compare(b.CreatedAt, a.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(b.ID, a.ID)
	})
	return backups, nil
}

// RestoreBackup imports the backup's snapshot
func (m *Manager) RestoreBackup(ctx context.Context, id string) ValidationResult {
	blob, err := m.store.Get(ctx, id)
	if errors.Is(err, database.ErrNotFound) || (err == nil && !strings.HasPrefix(id, database.BackupPrefix)) {
		return failed("Backup not found")
	}
	if err != nil {
		return failed("Restore failed: " + err.Error())
	}
	var rec backupRecord
	if err := json.Unmarshal(blob, &rec); err != nil {
		return failed("Restore failed: " + err.Error())
	}
	return m.Import(ctx, rec.Data)
}

// DeleteBackup removes one backup
func (m *Manager) DeleteBackup(ctx context.Context, id string) error {
	if !strings.HasPrefix(id, database.BackupPrefix) {
		return ErrBackupNotFound
	}
	if _, err := m.store.Get(ctx, id); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return ErrBackupNotFound
		}
		return fmt.Errorf("failed to read backup: %w", err)
	}
	if err := m.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete backup: %w", err)
	}
	return nil
}

// CleanupOldBackups deletes all but the newest backups and returns how many
// were removed
func (m *Manager) CleanupOldBackups(ctx context.Context) (int, error) {
	backups, err := m.ListBackups(ctx)
	if err != nil {
		return 0, err
	}
	if len(backups) <= m.keep {
		return 0, nil
	}
	stale := backups[m.keep:]
	for _, b := range stale {
		if err := m.DeleteBackup(ctx, b.ID); err != nil {
			return 0, err
		}
	}
	m.logger.Info("old backups removed", "count", len(stale), "kept", m.keep)
	return len(stale), nil
}

// ClearAllData empties both stores after taking a pre-clear backup, then
// deletes every other backup
func (m *Manager) ClearAllData(ctx context.Context) error {
	if _, err := m.CreateBackup(ctx, preClearBackup); err != nil && !errors.Is(err, ErrNothingToExport) {
		return err
	}

	if err := m.tasks.Replace(ctx, nil, m.tasks.IsDarkMode(), models.SearchFilters{}); err != nil {
		return fmt.Errorf("failed to clear tasks: %w", err)
	}
	if err := m.projects.Replace(ctx, nil, ""); err != nil {
		return fmt.Errorf("failed to clear projects: %w", err)
	}

	backups, err := m.ListBackups(ctx)
	if err != nil {
		return err
	}
	for _, b := range backups {
		if strings.Contains(b.Name, preClearBackup) {
			continue
		}
		if err := m.DeleteBackup(ctx, b.ID); err != nil {
			return err
		}
	}

	m.logger.Info("all data cleared")
	m.publish(events.EventDataCleared)
	return nil
}

// DataStats counts records and measures the stored state blobs
func (m *Manager) DataStats(ctx context.Context) (DataStats, error) {
	st := DataStats{
		TaskCount:    len(m.tasks.GetAllTasks()),
		ProjectCount: len(m.projects.GetAllProjects()),
	}
	for _, key := range []string{database.TasksKey, database.ProjectsKey} {
		blob, err := m.store.Get(ctx, key)
		if errors.Is(err, database.ErrNotFound) {
			continue
		}
		if err != nil {
			return DataStats{}, fmt.Errorf("failed to read %s: %w", key, err)
		}
		st.StorageSize += len(blob)
	}
	keys, err := m.store.Keys(ctx, database.BackupPrefix)
	if err != nil {
		return DataStats{}, fmt.Errorf("failed to list backups: %w", err)
	}
	st.BackupCount = len(keys)
	return st, nil
}

func (m *Manager) publish(t events.EventType) {
	_ = events.Publish(m.eventClient, events.Event{Type: t, Timestamp: m.clock.Now()})
}

// GetID lets output helpers print just the id
func (b BackupInfo) GetID() string { return b.ID }
