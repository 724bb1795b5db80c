package project

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/dotoo/internal/database"
	"github.com/thenoetrevino/dotoo/internal/logging"
	"github.com/thenoetrevino/dotoo/internal/models"
	"github.com/thenoetrevino/dotoo/internal/types"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

var testNow = time.Date(2024, 6, 1, 9, 30, 0, 0, time.UTC)

func newTestService(t *testing.T) (Service, *database.StateRepo, *types.FixedClock) {
	t.Helper()
	repo := database.NewStateRepo(database.NewMemoryStore())
	clock := types.NewFixedClock(testNow)
	svc := NewService(repo, nil, WithClock(clock), WithLogger(logging.Discard()))
	require.NoError(t, svc.Load(context.Background()))
	return svc, repo, clock
}

func mustCreate(t *testing.T, svc Service, name string, pt models.ProjectType) *models.Project {
	t.Helper()
	p, err := svc.CreateProject(context.Background(), CreateProjectRequest{Name: name, Type: pt})
	require.NoError(t, err)
	return p
}

// failingRepo fails every save
type failingRepo struct{}

func (failingRepo) LoadProjects(context.Context) (*database.ProjectState, error) {
	return &database.ProjectState{Projects: []*models.Project{}}, nil
}

func (failingRepo) SaveProjects(context.Context, *database.ProjectState) error {
	return errors.New("disk full")
}

// ============================================================================
// CREATE
// ============================================================================

func TestCreateProject_FirstBecomesActive(t *testing.T) {
	svc, _, _ := newTestService(t)

	first := mustCreate(t, svc, "Alpha", models.ProjectDevelopment)
	second := mustCreate(t, svc, "Beta", models.ProjectDesign)

	assert.Equal(t, first.ID, svc.ActiveProjectID())
	assert.NotEqual(t, first.ID, second.ID)
	assert.Len(t, svc.GetAllProjects(), 2)
}

func TestCreateProject_FillsFromPreset(t *testing.T) {
	svc, _, _ := newTestService(t)

	p := mustCreate(t, svc, "  Launch  ", models.ProjectMarketing)

	assert.Equal(t, "Launch", p.Name)
	assert.Equal(t, models.ViewCalendar, p.ViewType)
	assert.Equal(t, "#10B981", p.Color)
	assert.Equal(t, "📢", p.Icon)
	assert.Equal(t, models.CategoryChore, p.Settings.DefaultCategory)
	assert.Equal(t, testNow, p.CreatedAt)
	assert.Equal(t, testNow, p.UpdatedAt)
}

func TestCreateProject_ExplicitFieldsWin(t *testing.T) {
	svc, _, _ := newTestService(t)

	p, err := svc.CreateProject(context.Background(), CreateProjectRequest{
		Name: "Custom", Type: models.ProjectResearch, ViewType: models.ViewGantt, Color: "#000000",
	})
	require.NoError(t, err)
	assert.Equal(t, models.ViewGantt, p.ViewType)
	assert.Equal(t, "#000000", p.Color)
	assert.Equal(t, "🔬", p.Icon)
}

func TestCreateProject_Validation(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreateProject(ctx, CreateProjectRequest{Name: "   "})
	assert.ErrorIs(t, err, ErrEmptyName)

	_, err = svc.CreateProject(ctx, CreateProjectRequest{Name: "x", Type: "spaceship"})
	assert.ErrorIs(t, err, ErrInvalidProjectType)

	_, err = svc.CreateProject(ctx, CreateProjectRequest{Name: "x", ViewType: "timeline"})
	assert.ErrorIs(t, err, ErrInvalidViewType)

	assert.Empty(t, svc.GetAllProjects())
}

func TestCreateProject_DuplicateNamesAllowed(t *testing.T) {
	svc, _, _ := newTestService(t)
	mustCreate(t, svc, "Same", models.ProjectOther)
	mustCreate(t, svc, "Same", models.ProjectOther)
	assert.Len(t, svc.GetAllProjects(), 2)
}

// ============================================================================
// UPDATE / DELETE
// ============================================================================

func TestUpdateProject_MergesAndStamps(t *testing.T) {
	svc, _, clock := newTestService(t)
	p := mustCreate(t, svc, "Alpha", models.ProjectDevelopment)

	clock.Advance(time.Hour)
	name := "Alpha 2"
	view := models.ViewList
	updated, err := svc.UpdateProject(context.Background(), UpdateProjectRequest{ID: p.ID, Name: &name, ViewType: &view})
	require.NoError(t, err)

	assert.Equal(t, "Alpha 2", updated.Name)
	assert.Equal(t, models.ViewList, updated.ViewType)
	assert.Equal(t, p.Color, updated.Color)
	assert.Equal(t, testNow.Add(time.Hour), updated.UpdatedAt)
	assert.Equal(t, testNow, updated.CreatedAt)
}

func TestUpdateProject_UnknownIDIsNoOp(t *testing.T) {
	svc, _, _ := newTestService(t)
	mustCreate(t, svc, "Alpha", models.ProjectDevelopment)
	before := svc.GetAllProjects()

	name := "ghost"
	_, err := svc.UpdateProject(context.Background(), UpdateProjectRequest{ID: "missing", Name: &name})

	assert.ErrorIs(t, err, ErrProjectNotFound)
	assert.Equal(t, before, svc.GetAllProjects())
}

func TestDeleteProject_ActiveFallsBack(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()
	a := mustCreate(t, svc, "A", models.ProjectOther)
	b := mustCreate(t, svc, "B", models.ProjectOther)

	require.NoError(t, svc.DeleteProject(ctx, a.ID))
	assert.Equal(t, b.ID, svc.ActiveProjectID())

	require.NoError(t, svc.DeleteProject(ctx, b.ID))
	assert.Empty(t, svc.ActiveProjectID())
	assert.Nil(t, svc.ActiveProject())
}

func TestDeleteProject_InactiveKeepsPointer(t *testing.T) {
	svc, _, _ := newTestService(t)
	a := mustCreate(t, svc, "A", models.ProjectOther)
	b := mustCreate(t, svc, "B", models.ProjectOther)

	require.NoError(t, svc.DeleteProject(context.Background(), b.ID))
	assert.Equal(t, a.ID, svc.ActiveProjectID())
}

func TestDeleteProject_RunsHook(t *testing.T) {
	svc, _, _ := newTestService(t)
	a := mustCreate(t, svc, "A", models.ProjectOther)
	b := mustCreate(t, svc, "B", models.ProjectOther)

	var gotDeleted, gotFallback string
	svc.SetDeleteHook(func(_ context.Context, deleted, fallback string) error {
		gotDeleted, gotFallback = deleted, fallback
		// the hook may read the store without deadlocking
		_ = svc.ActiveProjectID()
		return nil
	})

	require.NoError(t, svc.DeleteProject(context.Background(), a.ID))
	assert.Equal(t, a.ID, gotDeleted)
	assert.Equal(t, b.ID, gotFallback)
}

func TestDeleteProject_FailedHookKeepsProject(t *testing.T) {
	svc, _, _ := newTestService(t)
	a := mustCreate(t, svc, "A", models.ProjectOther)
	mustCreate(t, svc, "B", models.ProjectOther)
	require.NoError(t, svc.SetActiveProject(context.Background(), a.ID))

	boom := errors.New("cascade failed")
	svc.SetDeleteHook(func(_ context.Context, _, _ string) error { return boom })

	err := svc.DeleteProject(context.Background(), a.ID)
	require.ErrorIs(t, err, boom)

	_, err = svc.GetProject(a.ID)
	assert.NoError(t, err, "project survives a failed cascade")
	assert.Len(t, svc.GetAllProjects(), 2)
	assert.Equal(t, a.ID, svc.ActiveProjectID())
}

func TestDeleteProject_Unknown(t *testing.T) {
	svc, _, _ := newTestService(t)
	mustCreate(t, svc, "A", models.ProjectOther)

	assert.ErrorIs(t, svc.DeleteProject(context.Background(), "nope"), ErrProjectNotFound)
	assert.Len(t, svc.GetAllProjects(), 1)
}

// ============================================================================
// ACTIVE / DUPLICATE / QUERIES
// ============================================================================

func TestSetActiveProject_NoValidation(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()
	mustCreate(t, svc, "A", models.ProjectOther)

	require.NoError(t, svc.SetActiveProject(ctx, "dangling"))
	assert.Equal(t, "dangling", svc.ActiveProjectID())
	assert.Nil(t, svc.ActiveProject())

	require.NoError(t, svc.SetActiveProject(ctx, ""))
	assert.Empty(t, svc.ActiveProjectID())
}

func TestDuplicateProject(t *testing.T) {
	svc, _, clock := newTestService(t)
	orig := mustCreate(t, svc, "Orig", models.ProjectResearch)

	clock.Advance(24 * time.Hour)
	dup, err := svc.DuplicateProject(context.Background(), orig.ID, "Copy")
	require.NoError(t, err)

	assert.NotEqual(t, orig.ID, dup.ID)
	assert.Equal(t, "Copy", dup.Name)
	assert.Equal(t, orig.Type, dup.Type)
	assert.Equal(t, orig.Settings, dup.Settings)
	assert.Equal(t, testNow.Add(24*time.Hour), dup.CreatedAt)
	assert.Equal(t, dup.ID, svc.ActiveProjectID())

	_, err = svc.DuplicateProject(context.Background(), "missing", "x")
	assert.ErrorIs(t, err, ErrProjectNotFound)
}

func TestGetProjectsByType(t *testing.T) {
	svc, _, _ := newTestService(t)
	mustCreate(t, svc, "A", models.ProjectDesign)
	mustCreate(t, svc, "B", models.ProjectOther)
	mustCreate(t, svc, "C", models.ProjectDesign)

	got := svc.GetProjectsByType(models.ProjectDesign)
	require.Len(t, got, 2)
	assert.Equal(t, "A", got[0].Name)
	assert.Equal(t, "C", got[1].Name)
}

func TestReturnedProjectsAreCopies(t *testing.T) {
	svc, _, _ := newTestService(t)
	p := mustCreate(t, svc, "A", models.ProjectOther)

	p.Name = "mutated"
	got, err := svc.GetProject(p.ID)
	require.NoError(t, err)
	assert.Equal(t, "A", got.Name)
}

// ============================================================================
// DEFAULTS / PERSISTENCE
// ============================================================================

func TestInitializeDefaultProject(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	p, err := svc.InitializeDefaultProject(ctx)
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, WelcomeProjectName, p.Name)
	assert.Equal(t, p.ID, svc.ActiveProjectID())

	again, err := svc.InitializeDefaultProject(ctx)
	require.NoError(t, err)
	assert.Nil(t, again)
	assert.Len(t, svc.GetAllProjects(), 1)
}

func TestEnsureLegacyProject(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	p, err := svc.EnsureLegacyProject(ctx)
	require.NoError(t, err)
	assert.Equal(t, LegacyProjectName, p.Name)
	assert.Equal(t, models.ProjectDevelopment, p.Type)

	again, err := svc.EnsureLegacyProject(ctx)
	require.NoError(t, err)
	assert.Equal(t, p.ID, again.ID)
}

func TestPersistenceAcrossReload(t *testing.T) {
	svc, repo, clock := newTestService(t)
	a := mustCreate(t, svc, "A", models.ProjectOther)

	reloaded := NewService(repo, nil, WithClock(clock), WithLogger(logging.Discard()))
	require.NoError(t, reloaded.Load(context.Background()))

	assert.Equal(t, a.ID, reloaded.ActiveProjectID())
	require.Len(t, reloaded.GetAllProjects(), 1)
	assert.Equal(t, "A", reloaded.GetAllProjects()[0].Name)
}

func TestSaveFailureRollsBack(t *testing.T) {
	svc := NewService(failingRepo{}, nil, WithLogger(logging.Discard()))
	require.NoError(t, svc.Load(context.Background()))

	_, err := svc.CreateProject(context.Background(), CreateProjectRequest{Name: "A"})
	assert.Error(t, err)
	assert.Empty(t, svc.GetAllProjects())
	assert.Empty(t, svc.ActiveProjectID())
}

func TestReplace(t *testing.T) {
	svc, _, _ := newTestService(t)
	mustCreate(t, svc, "Old", models.ProjectOther)

	incoming := []*models.Project{{ID: "p1", Name: "One"}, {ID: "p2", Name: "Two"}}
	require.NoError(t, svc.Replace(context.Background(), incoming, ""))

	projects, active := svc.Snapshot()
	assert.Len(t, projects, 2)
	assert.Equal(t, "p1", active)
}
