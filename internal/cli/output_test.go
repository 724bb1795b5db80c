package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/dotoo/internal/testutil"
	projectservice "github.com/thenoetrevino/dotoo/internal/services/project"
	taskservice "github.com/thenoetrevino/dotoo/internal/services/task"
)

// ============================================================================
// Mock Types for Testing
// ============================================================================

type mockDataWithID struct {
	ID   string
	Name string
}

func (m mockDataWithID) GetID() string {
	return m.ID
}

type mockDataWithoutID struct {
	Name  string
	Value int
}

// ============================================================================
// Success
// ============================================================================

func TestOutputFormatter_Success_JSON(t *testing.T) {
	f := &OutputFormatter{JSON: true}

	out := testutil.CaptureOutput(t, func() {
		require.NoError(t, f.Success(mockDataWithID{ID: "abc", Name: "Test"}))
	})

	var result map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, true, result["success"])
	data := result["data"].(map[string]interface{})
	assert.Equal(t, "Test", data["Name"])
}

func TestOutputFormatter_Success_QuietWithID(t *testing.T) {
	f := &OutputFormatter{Quiet: true, JSON: true}

	out := testutil.CaptureOutput(t, func() {
		require.NoError(t, f.Success(mockDataWithID{ID: "abc"}))
	})

	assert.Equal(t, "abc\n", out)
}

func TestOutputFormatter_Success_QuietWithoutID(t *testing.T) {
	f := &OutputFormatter{Quiet: true}

	out := testutil.CaptureOutput(t, func() {
		require.NoError(t, f.Success(mockDataWithoutID{Name: "n", Value: 7}))
	})

	assert.Contains(t, out, "Value:7")
}

type stringer struct{}

func (stringer) String() string { return "rendered" }

func TestOutputFormatter_Success_HumanUsesStringer(t *testing.T) {
	f := &OutputFormatter{}
	out := testutil.CaptureOutput(t, func() {
		require.NoError(t, f.Success(stringer{}))
	})
	assert.Equal(t, "rendered\n", out)
}

// ============================================================================
// Errors
// ============================================================================

func TestOutputFormatter_Error_JSON(t *testing.T) {
	f := &OutputFormatter{JSON: true}

	out := testutil.CaptureOutput(t, func() {
		require.NoError(t, f.ErrorWithSuggestion("TASK_NOT_FOUND", "task x not found", "run task list"))
	})

	var result map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, false, result["success"])
	errData := result["error"].(map[string]interface{})
	assert.Equal(t, "TASK_NOT_FOUND", errData["code"])
	assert.Equal(t, "run task list", errData["suggestion"])
}

func TestOutputFormatter_Fail(t *testing.T) {
	f := &OutputFormatter{JSON: true}
	var err error

	out := testutil.CaptureOutput(t, func() {
		err = f.Fail(fmt.Errorf("lookup: %w", taskservice.ErrTaskNotFound))
	})

	assert.Equal(t, ExitNotFound, ExitCode(err))
	assert.True(t, strings.Contains(out, "TASK_NOT_FOUND"))
	assert.ErrorIs(t, err, taskservice.ErrTaskNotFound)
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"explicit", Exit(ExitDataErr, errors.New("bad file")), ExitDataErr},
		{"task not found", taskservice.ErrTaskNotFound, ExitNotFound},
		{"project not found", projectservice.ErrProjectNotFound, ExitNotFound},
		{"validation", taskservice.ErrInvalidStatus, ExitValidation},
		{"no project", taskservice.ErrNoActiveProject, ExitUsage},
		{"other", errors.New("disk on fire"), ExitError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCode(tt.err))
		})
	}
}
