package domain

import "context"

// GenerationMode tells whether the concept was supplied by an operator.
type GenerationMode string

const (
	ModeManual    GenerationMode = "manual"
	ModeAutomatic GenerationMode = "automatic"
)

// Outcome is the terminal, non-error result of a generation run.
type Outcome string

const (
	OutcomeSuccess           Outcome = "success"
	OutcomeDeclinedDuplicate Outcome = "declined-duplicate"
)

// GenerateRequest carries the optional operator overrides of a run.
type GenerateRequest struct {
	Concept   string
	ConceptFR string
	ThemeID   string
}

// DifficultyDistribution counts persisted questions per tier.
type DifficultyDistribution struct {
	Easy   int `json:"easy"`
	Medium int `json:"medium"`
	Hard   int `json:"hard"`
}

// Add increments the tally for d.
func (d *DifficultyDistribution) Add(diff Difficulty) {
	switch diff {
	case DifficultyEasy:
		d.Easy++
	case DifficultyHard:
		d.Hard++
	default:
		d.Medium++
	}
}

// GenerationResult is what a completed (non-fatal) run reports.
type GenerationResult struct {
	Outcome Outcome        `json:"outcome"`
	Mode    GenerationMode `json:"mode"`

	ThemeID   string `json:"theme_id"`
	ThemeName string `json:"theme"`
	ThemeIcon string `json:"theme_icon"`
	Concept   string `json:"concept"`

	QuestionsGenerated    int                    `json:"questions_generated"`
	Distribution          DifficultyDistribution `json:"difficulty_distribution"`
	TotalConceptsForTheme int                    `json:"total_concepts_for_theme"`

	Rejected   int `json:"rejected"`
	Duplicates int `json:"duplicates"`
	Failed     int `json:"failed"`

	// Set for declined outcomes.
	Message          string   `json:"message,omitempty"`
	ExistingConcepts []string `json:"existing_concepts,omitempty"`
}

// GenerationService runs the concept-selection and question-ingestion pipeline.
type GenerationService interface {
	Generate(ctx context.Context, req GenerateRequest) (*GenerationResult, error)
	// LastRun returns the last successful run stored for themeID, or nil.
	LastRun(ctx context.Context, themeID string) (*GenerationResult, error)
}
