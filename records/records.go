package records

import "github.com/draftloop/structout/core/normalize"

// Priority levels shared by features and tasks.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Effort sizes for features.
const (
	EffortSmall  = "small"
	EffortMedium = "medium"
	EffortLarge  = "large"
)

// Task statuses.
const (
	StatusPending    = "pending"
	StatusInProgress = "in_progress"
	StatusDone       = "done"
)

// Feature is a product feature extracted from an LLM response.
type Feature struct {
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Priority        string   `json:"priority"`
	EstimatedEffort string   `json:"estimatedEffort"`
	Tags            []string `json:"tags"`
}

// Task is a unit of work extracted from an LLM response.
type Task struct {
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Priority       string   `json:"priority"`
	EstimatedHours float64  `json:"estimatedHours"`
	Status         string   `json:"status"`
	Dependencies   []string `json:"dependencies"`
}

// TemplateSection is one section of a document template.
type TemplateSection struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Prompt      string `json:"prompt"`
	Order       int    `json:"order"`
}

var featureSpec = normalize.Spec{
	Kind: "feature",
	Fields: []normalize.Field{
		{Name: "title", Kind: normalize.String, Default: "Untitled Feature"},
		{Name: "description", Kind: normalize.String, Default: ""},
		{Name: "priority", Kind: normalize.Enum, Default: PriorityMedium,
			Enum: []string{PriorityLow, PriorityMedium, PriorityHigh}},
		{Name: "estimatedEffort", Aliases: []string{"estimated_effort", "effort"},
			Kind: normalize.Enum, Default: EffortMedium,
			Enum: []string{EffortSmall, EffortMedium, EffortLarge}},
		{Name: "tags", Aliases: []string{"keywords"}, Kind: normalize.StringArray,
			Default: []string{}},
	},
}

var taskSpec = normalize.Spec{
	Kind: "task",
	Fields: []normalize.Field{
		{Name: "title", Kind: normalize.String, Default: "Untitled Task"},
		{Name: "description", Kind: normalize.String, Default: ""},
		{Name: "priority", Kind: normalize.Enum, Default: PriorityMedium,
			Enum: []string{PriorityLow, PriorityMedium, PriorityHigh}},
		{Name: "estimatedHours", Aliases: []string{"estimated_hours", "hours"},
			Kind: normalize.Number, Default: float64(0)},
		{Name: "status", Kind: normalize.Enum, Default: StatusPending,
			Enum: []string{StatusPending, StatusInProgress, StatusDone}},
		{Name: "dependencies", Aliases: []string{"dependsOn", "depends_on"},
			Kind: normalize.StringArray, Default: []string{}},
	},
}

var sectionSpec = normalize.Spec{
	Kind: "section",
	Fields: []normalize.Field{
		{Name: "title", Aliases: []string{"name", "heading"}, Kind: normalize.String,
			Default: "Untitled Section"},
		{Name: "description", Kind: normalize.String, Default: ""},
		{Name: "prompt", Aliases: []string{"instructions"}, Kind: normalize.String,
			Default: ""},
		{Name: "order", Aliases: []string{"position", "index"}, Kind: normalize.Number,
			Default: float64(0)},
	},
}

// Wrapper keys each record kind is commonly nested under.
var (
	featureWrapperKeys = []string{"features", "items", "data"}
	taskWrapperKeys    = []string{"tasks", "items", "data"}
	sectionWrapperKeys = []string{"sections", "templateSections", "items", "data"}
)
