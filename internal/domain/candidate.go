package domain

import "encoding/json"

// CandidateAnswer is one answer option as returned by the model.
type CandidateAnswer struct {
	Text      string `json:"text"`
	IsCorrect bool   `json:"is_correct"`
}

// CandidateQuestion is one untrusted question record as returned by the model.
// Nothing here may be used before validation.ValidateCandidate accepts it.
type CandidateQuestion struct {
	QuestionEN    string            `json:"question_en"`
	QuestionFR    string            `json:"question_fr"`
	ExplanationEN string            `json:"explanation_en"`
	ExplanationFR string            `json:"explanation_fr"`
	Difficulty    DifficultyLabel   `json:"difficulty"`
	AnswersEN     []CandidateAnswer `json:"answers_en"`
	AnswersFR     []CandidateAnswer `json:"answers_fr"`

	// DecodeErr is set when the element could not be decoded into this shape.
	DecodeErr error `json:"-"`
}

// DifficultyLabel is the model's difficulty tier. Non-string JSON values
// decode to the empty label instead of failing the whole record.
type DifficultyLabel string

func (l *DifficultyLabel) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		*l = ""
		return nil
	}
	*l = DifficultyLabel(s)
	return nil
}

// ConceptProposal is the topic chosen for a run, forced or proposed by the model.
type ConceptProposal struct {
	Concept   string `json:"concept"`
	ConceptFR string `json:"concept_fr"`
}

// DifficultySplit is the number of questions requested per tier.
type DifficultySplit struct {
	Easy   int
	Medium int
	Hard   int
}

// Total returns the number of questions the split requests.
func (s DifficultySplit) Total() int {
	return s.Easy + s.Medium + s.Hard
}

// NewDifficultySplit assigns easy and hard their fixed counts and medium the
// remainder. When the fixed tiers exceed total they are clamped, hard first.
func NewDifficultySplit(total, easy, hard int) DifficultySplit {
	if total < 0 {
		total = 0
	}
	if easy < 0 {
		easy = 0
	}
	if hard < 0 {
		hard = 0
	}
	if easy+hard > total {
		hard = total - easy
		if hard < 0 {
			hard = 0
			easy = total
		}
	}
	return DifficultySplit{Easy: easy, Medium: total - easy - hard, Hard: hard}
}
