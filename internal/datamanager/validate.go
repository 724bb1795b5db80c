package datamanager

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/thenoetrevino/dotoo/internal/models"
)

// ValidationStats counts the records seen by a validation pass
type ValidationStats struct {
	TotalTasks      int `json:"totalTasks"`
	ValidTasks      int `json:"validTasks"`
	InvalidTasks    int `json:"invalidTasks"`
	TotalProjects   int `json:"totalProjects"`
	ValidProjects   int `json:"validProjects"`
	InvalidProjects int `json:"invalidProjects"`
}

// ValidationResult is the outcome of validating, importing or restoring a
// bundle. Bad input data is reported here, never as a Go error.
type ValidationResult struct {
	IsValid  bool            `json:"isValid"`
	Errors   []string        `json:"errors"`
	Warnings []string        `json:"warnings"`
	Stats    ValidationStats `json:"stats"`
}

func failed(msg string) ValidationResult {
	return ValidationResult{Errors: []string{msg}, Warnings: []string{}}
}

// ValidateImportData checks a raw export bundle. Tasks are required; projects
// and settings are optional and only produce warnings when absent.
func ValidateImportData(raw []byte) ValidationResult {
	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil || doc == nil {
		return failed("Invalid data format")
	}
	return validateDoc(doc)
}

func validateDoc(doc map[string]any) ValidationResult {
	tasks, ok := doc["tasks"].([]any)
	if !ok {
		return failed("Tasks array is missing or invalid")
	}

	res := ValidationResult{Errors: []string{}, Warnings: []string{}}
	res.Stats.TotalTasks = len(tasks)
	for i, t := range tasks {
		if errs := validateTask(t); len(errs) > 0 {
			res.Stats.InvalidTasks++
			res.Errors = append(res.Errors, fmt.Sprintf("Task %d: %s", i+1, strings.Join(errs, ", ")))
		} else {
			res.Stats.ValidTasks++
		}
	}

	switch projects := doc["projects"].(type) {
	case nil:
		res.Warnings = append(res.Warnings, "Projects are missing, keeping current projects")
	case []any:
		res.Stats.TotalProjects = len(projects)
		for i, p := range projects {
			if errs := validateProject(p); len(errs) > 0 {
				res.Stats.InvalidProjects++
				res.Errors = append(res.Errors, fmt.Sprintf("Project %d: %s", i+1, strings.Join(errs, ", ")))
			} else {
				res.Stats.ValidProjects++
			}
		}
	default:
		res.Errors = append(res.Errors, "Projects array is invalid")
	}

	if v, ok := doc["version"].(string); ok && v != "" && v != CurrentVersion {
		res.Warnings = append(res.Warnings, fmt.Sprintf("Data version (%s) differs from current version (%s)", v, CurrentVersion))
	}
	if _, ok := doc["settings"].(map[string]any); !ok {
		res.Warnings = append(res.Warnings, "Settings are missing, using defaults")
	}

	res.IsValid = len(res.Errors) == 0
	return res
}

func validateTask(v any) []string {
	t, ok := v.(map[string]any)
	if !ok {
		return []string{"Invalid task format"}
	}
	var errs []string

	if !nonEmptyString(t["id"]) {
		errs = append(errs, "Missing or invalid ID")
	}
	if !nonEmptyString(t["title"]) {
		errs = append(errs, "Missing or invalid title")
	}
	if s, _ := t["category"].(string); !models.Category(s).Valid() {
		errs = append(errs, "Missing or invalid category")
	}
	if s, _ := t["priority"].(string); !models.Priority(s).Valid() {
		errs = append(errs, "Missing or invalid priority")
	}
	if s, _ := t["status"].(string); !models.Status(s).Valid() {
		errs = append(errs, "Missing or invalid status")
	}
	if !truthy(t["createdAt"]) {
		errs = append(errs, "Missing creation date")
	} else if !isDate(t["createdAt"]) {
		errs = append(errs, "Invalid creation date")
	}

	for _, f := range []struct{ key, msg string }{
		{"description", "Invalid description"},
		{"code", "Invalid code"},
		{"language", "Invalid language"},
	} {
		if present(t, f.key) && !isString(t[f.key]) {
			errs = append(errs, f.msg)
		}
	}
	if present(t, "dueDate") && !isDate(t["dueDate"]) {
		errs = append(errs, "Invalid due date")
	}
	if present(t, "branchName") && !isString(t["branchName"]) {
		errs = append(errs, "Invalid branch name")
	}
	if present(t, "tags") && !isStringArray(t["tags"]) {
		errs = append(errs, "Invalid tags")
	}
	return errs
}

func validateProject(v any) []string {
	p, ok := v.(map[string]any)
	if !ok {
		return []string{"Invalid project format"}
	}
	var errs []string

	if !nonEmptyString(p["id"]) {
		errs = append(errs, "Missing or invalid ID")
	}
	if !nonEmptyString(p["name"]) {
		errs = append(errs, "Missing or invalid name")
	}
	if s, _ := p["type"].(string); !models.ProjectType(s).Valid() {
		errs = append(errs, "Missing or invalid type")
	}
	if s, _ := p["viewType"].(string); !models.ViewType(s).Valid() {
		errs = append(errs, "Missing or invalid view type")
	}
	if !isString(p["color"]) {
		errs = append(errs, "Invalid color")
	}
	if present(p, "icon") && !isString(p["icon"]) {
		errs = append(errs, "Invalid icon")
	}
	if !truthy(p["createdAt"]) {
		errs = append(errs, "Missing creation date")
	}
	if !truthy(p["updatedAt"]) {
		errs = append(errs, "Missing update date")
	}
	return errs
}

// present treats JSON null like an absent key
func present(m map[string]any, key string) bool {
	v, ok := m[key]
	return ok && v != nil
}

func isString(v any) bool {
	_, ok := v.(string)
	return ok
}

func nonEmptyString(v any) bool {
	s, ok := v.(string)
	return ok && s != ""
}

func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case string:
		return x != ""
	case bool:
		return x
	case float64:
		return x != 0
	}
	return true
}

func isStringArray(v any) bool {
	arr, ok := v.([]any)
	if !ok {
		return false
	}
	for _, e := range arr {
		if !isString(e) {
			return false
		}
	}
	return true
}

func isDate(v any) bool {
	s, ok := v.(string)
	if !ok {
		return false
	}
	_, err := parseDate(s)
	return err == nil
}

var dateLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04:05", time.DateTime, time.DateOnly}

// parseDate accepts RFC 3339 timestamps and the shorter forms people type by
// hand. Zone-less values are read as UTC.
func parseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}
