package validation

import (
	"quiz-forge/internal/domain"
	"strings"
)

// AnswersPerQuestion is the number of options each language must carry.
const AnswersPerQuestion = 4

// RejectReason is a stable machine-readable cause of a rejected candidate.
type RejectReason string

const (
	ReasonNone              RejectReason = ""
	ReasonUndecodable       RejectReason = "undecodable"
	ReasonMissingQuestionEN RejectReason = "missing_question_en"
	ReasonMissingQuestionFR RejectReason = "missing_question_fr"
	ReasonAnswerCountEN     RejectReason = "answer_count_en"
	ReasonAnswerCountFR     RejectReason = "answer_count_fr"
	ReasonCorrectCountEN    RejectReason = "correct_count_en"
	ReasonCorrectCountFR    RejectReason = "correct_count_fr"
	ReasonEmptyAnswerTextEN RejectReason = "empty_answer_text_en"
	ReasonEmptyAnswerTextFR RejectReason = "empty_answer_text_fr"
)

// Result is the verdict on one candidate.
type Result struct {
	Valid      bool
	Reason     RejectReason
	Difficulty domain.Difficulty
}

func reject(reason RejectReason) Result {
	return Result{Valid: false, Reason: reason}
}

// ValidateCandidate checks that a model-produced question can be persisted.
// It never fails on difficulty: unknown labels normalize to medium.
func ValidateCandidate(c *domain.CandidateQuestion) Result {
	if c == nil || c.DecodeErr != nil {
		return reject(ReasonUndecodable)
	}
	if isBlank(c.QuestionEN) {
		return reject(ReasonMissingQuestionEN)
	}
	if isBlank(c.QuestionFR) {
		return reject(ReasonMissingQuestionFR)
	}
	if len(c.AnswersEN) != AnswersPerQuestion {
		return reject(ReasonAnswerCountEN)
	}
	if len(c.AnswersFR) != AnswersPerQuestion {
		return reject(ReasonAnswerCountFR)
	}
	if countCorrect(c.AnswersEN) != 1 {
		return reject(ReasonCorrectCountEN)
	}
	if countCorrect(c.AnswersFR) != 1 {
		return reject(ReasonCorrectCountFR)
	}
	if hasBlankText(c.AnswersEN) {
		return reject(ReasonEmptyAnswerTextEN)
	}
	if hasBlankText(c.AnswersFR) {
		return reject(ReasonEmptyAnswerTextFR)
	}

	return Result{Valid: true, Difficulty: NormalizeDifficulty(string(c.Difficulty))}
}

// NormalizeDifficulty maps a model label onto a known tier, defaulting to medium.
func NormalizeDifficulty(label string) domain.Difficulty {
	if d, ok := domain.ParseDifficulty(label); ok {
		return d
	}
	return domain.DifficultyMedium
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func countCorrect(answers []domain.CandidateAnswer) int {
	n := 0
	for _, a := range answers {
		if a.IsCorrect {
			n++
		}
	}
	return n
}

func hasBlankText(answers []domain.CandidateAnswer) bool {
	for _, a := range answers {
		if isBlank(a.Text) {
			return true
		}
	}
	return false
}
