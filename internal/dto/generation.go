package dto

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// FlexibleID accepts a JSON string or number and keeps its textual form.
type FlexibleID string

func (f *FlexibleID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexibleID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	if i, err := n.Int64(); err == nil {
		*f = FlexibleID(strconv.FormatInt(i, 10))
		return nil
	}
	*f = FlexibleID(n.String())
	return nil
}

// GenerateQuestionsRequest is the optional body of POST /api/generate-questions
// @Description Operator overrides; every field is optional
type GenerateQuestionsRequest struct {
	Concept   string     `json:"concept,omitempty"`
	ConceptFR string     `json:"concept_fr,omitempty"`
	ThemeID   FlexibleID `json:"theme_id,omitempty" swaggertype:"string"`
}

// DifficultyDistribution counts persisted questions per tier
type DifficultyDistribution struct {
	Easy   int `json:"easy"`
	Medium int `json:"medium"`
	Hard   int `json:"hard"`
}

// GenerateQuestionsResponse is returned by a successful run
// @Description Summary of a successful generation run
type GenerateQuestionsResponse struct {
	Success                bool                   `json:"success"`
	Mode                   string                 `json:"mode"`
	Theme                  string                 `json:"theme"`
	ThemeIcon              string                 `json:"theme_icon"`
	Concept                string                 `json:"concept"`
	QuestionsGenerated     int                    `json:"questions_generated"`
	DifficultyDistribution DifficultyDistribution `json:"difficulty_distribution"`
	TotalConceptsForTheme  int                    `json:"total_concepts_for_theme"`
}

// DuplicateConceptResponse is returned when the chosen concept already exists
type DuplicateConceptResponse struct {
	Success          bool     `json:"success"`
	Message          string   `json:"message"`
	Theme            string   `json:"theme"`
	Concept          string   `json:"concept"`
	ExistingConcepts []string `json:"existing_concepts,omitempty"`
}

// LastRunResponse wraps the last stored run summary of a theme
type LastRunResponse struct {
	Success bool `json:"success"`
	Run     any  `json:"run"`
}

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// HealthResponse reports dependency status
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Cache    string `json:"cache"`
}
