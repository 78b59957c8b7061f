package quizgen

import (
	"fmt"
	"quiz-forge/internal/domain"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildConceptPrompt_CapsAvoidList(t *testing.T) {
	used := make([]string, 120)
	for i := range used {
		used[i] = fmt.Sprintf("Concept %03d", i)
	}

	p := BuildConceptPrompt("History", used, 100)
	assert.Contains(t, p, "1. Concept 000")
	assert.Contains(t, p, "100. Concept 099")
	assert.NotContains(t, p, "Concept 100")
	assert.Contains(t, p, `"concept_fr"`)
}

func TestBuildConceptPrompt_NoUsedConcepts(t *testing.T) {
	p := BuildConceptPrompt("History", nil, 100)
	assert.NotContains(t, p, "ALREADY been covered")
	assert.True(t, strings.Contains(p, `"History"`))
}

func TestBuildQuestionsPrompt(t *testing.T) {
	p := BuildQuestionsPrompt("Jazz", "Music", domain.DifficultySplit{Easy: 6, Medium: 6, Hard: 3})
	assert.Contains(t, p, "Generate 15 diverse")
	assert.Contains(t, p, "6 EASY, 6 MEDIUM, 3 HARD")
	assert.Contains(t, p, "40-50%")
	assert.Contains(t, p, `"answers_fr"`)
}
