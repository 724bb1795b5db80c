package models

// ProjectPreset is the template applied when a project of a given type is created
type ProjectPreset struct {
	Label           string
	Icon            string
	Color           string
	DefaultViewType ViewType
	Settings        ProjectSettings
}

// ProjectPresets maps each project type to its defaults
var ProjectPresets = map[ProjectType]ProjectPreset{
	ProjectDevelopment: {
		Label: "Development", Icon: "💻", Color: "#3B82F6", DefaultViewType: ViewKanban,
		Settings: ProjectSettings{
			DefaultCategory: CategoryFeature, DefaultPriority: PriorityMedium,
			EnableGitIntegration: true, EnableCodeSnippets: true,
		},
	},
	ProjectDesign: {
		Label: "Design", Icon: "🎨", Color: "#8B5CF6", DefaultViewType: ViewKanban,
		Settings: ProjectSettings{DefaultCategory: CategoryFeature, DefaultPriority: PriorityMedium},
	},
	ProjectMarketing: {
		Label: "Marketing", Icon: "📢", Color: "#10B981", DefaultViewType: ViewCalendar,
		Settings: ProjectSettings{DefaultCategory: CategoryChore, DefaultPriority: PriorityMedium},
	},
	ProjectResearch: {
		Label: "Research", Icon: "🔬", Color: "#F59E0B", DefaultViewType: ViewList,
		Settings: ProjectSettings{
			DefaultCategory: CategoryDocs, DefaultPriority: PriorityLow,
			EnableCodeSnippets: true,
		},
	},
	ProjectPersonal: {
		Label: "Personal", Icon: "👤", Color: "#EF4444", DefaultViewType: ViewList,
		Settings: ProjectSettings{DefaultCategory: CategoryChore, DefaultPriority: PriorityMedium},
	},
	ProjectOther: {
		Label: "Other", Icon: "📁", Color: "#6B7280", DefaultViewType: ViewKanban,
		Settings: ProjectSettings{DefaultCategory: CategoryChore, DefaultPriority: PriorityMedium},
	},
}

// PresetFor returns the preset for t, falling back to "other"
func PresetFor(t ProjectType) ProjectPreset {
	if p, ok := ProjectPresets[t]; ok {
		return p
	}
	return ProjectPresets[ProjectOther]
}
