package models

import "time"

// ProjectSettings holds per-project defaults and feature toggles
type ProjectSettings struct {
	Theme                string         `json:"theme,omitempty"`
	DefaultCategory      Category       `json:"defaultCategory,omitempty"`
	DefaultPriority      Priority       `json:"defaultPriority,omitempty"`
	EnableGitIntegration bool           `json:"enableGitIntegration"`
	EnableCodeSnippets   bool           `json:"enableCodeSnippets"`
	EnableTimeTracking   bool           `json:"enableTimeTracking"`
	CustomFields         map[string]any `json:"customFields,omitempty"`
}

// Project is the top-level organizational unit. Every task belongs to one.
type Project struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Type        ProjectType     `json:"type"`
	ViewType    ViewType        `json:"viewType"`
	Color       string          `json:"color"`
	Icon        string          `json:"icon,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
	IsActive    bool            `json:"isActive"`
	Settings    ProjectSettings `json:"settings"`
}

// Clone returns a deep copy so callers cannot reach into store state
func (p *Project) Clone() *Project {
	if p == nil {
		return nil
	}
	cp := *p
	if p.Settings.CustomFields != nil {
		cp.Settings.CustomFields = make(map[string]any, len(p.Settings.CustomFields))
		for k, v := range p.Settings.CustomFields {
			cp.Settings.CustomFields[k] = v
		}
	}
	return &cp
}

// GetID lets output helpers print just the id
func (p *Project) GetID() string { return p.ID }
