package service

import (
	"context"
	"fmt"
	"strings"

	"quiz-forge/internal/domain"
	"quiz-forge/internal/util"
	"quiz-forge/internal/validation"

	"go.uber.org/zap"
)

const answerTranslationsPerQuestion = validation.AnswersPerQuestion * 2

// PersistenceReport summarizes one Persist call.
type PersistenceReport struct {
	ConceptID    string
	Persisted    int
	Rejected     int
	Duplicates   int
	Failed       int
	Distribution domain.DifficultyDistribution
}

// PersistenceCoordinator writes a concept and its validated questions. Each
// question is its own saga: either all of its rows exist or none do.
type PersistenceCoordinator struct {
	concepts  domain.ConceptRepository
	questions domain.QuestionRepository
	logger    *zap.Logger
}

func NewPersistenceCoordinator(concepts domain.ConceptRepository, questions domain.QuestionRepository, logger *zap.Logger) *PersistenceCoordinator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PersistenceCoordinator{concepts: concepts, questions: questions, logger: logger}
}

type candidateOutcome int

const (
	outcomePersisted candidateOutcome = iota
	outcomeRejected
	outcomeDuplicate
	outcomeFailed
)

// Persist inserts the concept, then every candidate in order. If no candidate
// is persisted the concept is deleted again and ZERO_QUESTIONS_PERSISTED is
// returned.
func (p *PersistenceCoordinator) Persist(ctx context.Context, themeID string, proposal domain.ConceptProposal, candidates []*domain.CandidateQuestion) (*PersistenceReport, error) {
	concept := &domain.Concept{
		ID:      util.NewULID(),
		Name:    proposal.Concept,
		NameEN:  proposal.Concept,
		NameFR:  proposal.ConceptFR,
		ThemeID: themeID,
	}
	if err := p.concepts.InsertConcept(ctx, concept); err != nil {
		return nil, domain.NewConceptWriteError(err)
	}
	log := p.logger.With(zap.String("concept_id", concept.ID), zap.String("concept", concept.Name))
	log.Info("Concept saved")

	report := &PersistenceReport{ConceptID: concept.ID}
	for i, c := range candidates {
		res := validation.ValidateCandidate(c)
		if !res.Valid {
			report.Rejected++
			log.Warn("Question rejected", zap.Int("question_index", i), zap.String("reason", string(res.Reason)))
			continue
		}

		switch p.persistCandidate(ctx, log.With(zap.Int("question_index", i)), concept, c, res.Difficulty) {
		case outcomePersisted:
			report.Persisted++
			report.Distribution.Add(res.Difficulty)
		case outcomeDuplicate:
			report.Duplicates++
		case outcomeFailed:
			report.Failed++
		}
	}

	if report.Persisted == 0 {
		cleanupErr := p.concepts.DeleteConcept(ctx, concept.ID)
		if cleanupErr != nil {
			log.Error("Failed to delete concept without questions", zap.Error(cleanupErr))
		}
		return report, domain.NewZeroQuestionsPersistedError(concept.Name, cleanupErr)
	}

	log.Info("Questions saved",
		zap.Int("persisted", report.Persisted),
		zap.Int("rejected", report.Rejected),
		zap.Int("duplicates", report.Duplicates),
		zap.Int("failed", report.Failed))
	return report, nil
}

func (p *PersistenceCoordinator) persistCandidate(ctx context.Context, log *zap.Logger, concept *domain.Concept, c *domain.CandidateQuestion, difficulty domain.Difficulty) candidateOutcome {
	questionEN := strings.TrimSpace(c.QuestionEN)

	existingID, err := p.questions.FindQuestionIDByText(ctx, domain.LangEN, questionEN)
	if err != nil {
		log.Error("Duplicate lookup failed", zap.Error(err))
		return outcomeFailed
	}
	if existingID != "" {
		log.Info("Question already exists", zap.String("existing_question_id", existingID))
		return outcomeDuplicate
	}

	sg := newSaga(log)
	fail := func(step string, err error) candidateOutcome {
		log.Error("Failed to save question, rolling back", zap.String("step", step), zap.Error(err))
		_ = sg.compensate(ctx)
		return outcomeFailed
	}

	question := &domain.Question{
		ID:         util.NewULID(),
		ThemeID:    concept.ThemeID,
		ConceptID:  concept.ID,
		Difficulty: difficulty,
		TimesUsed:  0,
	}
	sg.add("delete question", func(ctx context.Context) error {
		return p.questions.DeleteQuestion(ctx, question.ID)
	})
	if err := p.questions.InsertQuestion(ctx, question); err != nil {
		return fail("question", err)
	}

	translations := []*domain.QuestionTranslation{
		{ID: util.NewULID(), QuestionID: question.ID, LanguageCode: domain.LangEN, QuestionText: questionEN, Explanation: strings.TrimSpace(c.ExplanationEN)},
		{ID: util.NewULID(), QuestionID: question.ID, LanguageCode: domain.LangFR, QuestionText: strings.TrimSpace(c.QuestionFR), Explanation: strings.TrimSpace(c.ExplanationFR)},
	}
	sg.add("delete question translations", func(ctx context.Context) error {
		return p.questions.DeleteQuestionTranslations(ctx, question.ID)
	})
	if err := confirmBatch(p.questions.InsertQuestionTranslations(ctx, translations))(len(translations)); err != nil {
		return fail("question translations", err)
	}

	answers := make([]*domain.Answer, len(c.AnswersEN))
	answerIDs := make([]string, len(c.AnswersEN))
	for i, a := range c.AnswersEN {
		answers[i] = &domain.Answer{ID: util.NewULID(), QuestionID: question.ID, IsCorrect: a.IsCorrect, DisplayOrder: i}
		answerIDs[i] = answers[i].ID
	}
	sg.add("delete answers", func(ctx context.Context) error {
		return p.questions.DeleteAnswers(ctx, question.ID)
	})
	if err := confirmBatch(p.questions.InsertAnswers(ctx, answers))(validation.AnswersPerQuestion); err != nil {
		return fail("answers", err)
	}

	answerTranslations := make([]*domain.AnswerTranslation, 0, answerTranslationsPerQuestion)
	for i, a := range answers {
		answerTranslations = append(answerTranslations,
			&domain.AnswerTranslation{ID: util.NewULID(), AnswerID: a.ID, LanguageCode: domain.LangEN, AnswerText: strings.TrimSpace(c.AnswersEN[i].Text)},
			&domain.AnswerTranslation{ID: util.NewULID(), AnswerID: a.ID, LanguageCode: domain.LangFR, AnswerText: strings.TrimSpace(c.AnswersFR[i].Text)},
		)
	}
	sg.add("delete answer translations", func(ctx context.Context) error {
		return p.questions.DeleteAnswerTranslations(ctx, answerIDs)
	})
	if err := confirmBatch(p.questions.InsertAnswerTranslations(ctx, answerTranslations))(answerTranslationsPerQuestion); err != nil {
		return fail("answer translations", err)
	}

	log.Debug("Question saved", zap.String("question_id", question.ID), zap.String("difficulty", string(difficulty)))
	return outcomePersisted
}

// confirmBatch turns a batch insert result into an error unless exactly
// want rows were confirmed.
func confirmBatch(n int64, err error) func(want int) error {
	return func(want int) error {
		if err != nil {
			return err
		}
		if n != int64(want) {
			return fmt.Errorf("store confirmed %d of %d rows", n, want)
		}
		return nil
	}
}
