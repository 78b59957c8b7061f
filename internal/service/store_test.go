package service

import (
	"context"
	"errors"
	"sync"

	"quiz-forge/internal/domain"
)

var errStoreDown = errors.New("store unavailable")

// memStore is an in-memory concept and question store with per-step fault
// injection. failOn maps a step name to the 1-based call that fails.
type memStore struct {
	mu sync.Mutex

	concepts  map[string]*domain.Concept
	questions map[string]*domain.Question
	qTrans    map[string][]*domain.QuestionTranslation
	answers   map[string][]*domain.Answer
	aTrans    map[string][]*domain.AnswerTranslation

	failOn      map[string]int
	partialOn   map[string]int
	failDelete  map[string]bool
	failLookup  bool
	calls       map[string]int
	deleteSteps []string
}

func newMemStore() *memStore {
	return &memStore{
		concepts:   map[string]*domain.Concept{},
		questions:  map[string]*domain.Question{},
		qTrans:     map[string][]*domain.QuestionTranslation{},
		answers:    map[string][]*domain.Answer{},
		aTrans:     map[string][]*domain.AnswerTranslation{},
		failOn:     map[string]int{},
		partialOn:  map[string]int{},
		failDelete: map[string]bool{},
		calls:      map[string]int{},
	}
}

func (s *memStore) hit(step string) (fail, partial bool) {
	s.calls[step]++
	return s.failOn[step] == s.calls[step], s.partialOn[step] == s.calls[step]
}

func (s *memStore) ListConceptNamesByTheme(_ context.Context, themeID string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var names []string
	for _, c := range s.concepts {
		if c.ThemeID == themeID {
			names = append(names, c.Name)
		}
	}
	return names, nil
}

func (s *memStore) InsertConcept(_ context.Context, c *domain.Concept) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if fail, _ := s.hit("concept"); fail {
		return errStoreDown
	}
	s.concepts[c.ID] = c
	return nil
}

func (s *memStore) DeleteConcept(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deleteSteps = append(s.deleteSteps, "concept")
	if s.failDelete["concept"] {
		return errStoreDown
	}
	delete(s.concepts, id)
	return nil
}

func (s *memStore) CountQuestionsByTheme(_ context.Context, themeID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, q := range s.questions {
		if q.ThemeID == themeID {
			n++
		}
	}
	return n, nil
}

func (s *memStore) FindQuestionIDByText(_ context.Context, lang, text string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failLookup {
		return "", errStoreDown
	}
	for qid, rows := range s.qTrans {
		for _, t := range rows {
			if t.LanguageCode == lang && t.QuestionText == text {
				return qid, nil
			}
		}
	}
	return "", nil
}

func (s *memStore) InsertQuestion(_ context.Context, q *domain.Question) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if fail, _ := s.hit("question"); fail {
		return errStoreDown
	}
	s.questions[q.ID] = q
	return nil
}

func (s *memStore) InsertQuestionTranslations(_ context.Context, rows []*domain.QuestionTranslation) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if fail, _ := s.hit("question_translations"); fail {
		return 0, errStoreDown
	}
	for _, r := range rows {
		s.qTrans[r.QuestionID] = append(s.qTrans[r.QuestionID], r)
	}
	return int64(len(rows)), nil
}

func (s *memStore) InsertAnswers(_ context.Context, rows []*domain.Answer) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fail, partial := s.hit("answers")
	if fail {
		return 0, errStoreDown
	}
	if partial {
		rows = rows[:len(rows)-1]
	}
	for _, r := range rows {
		s.answers[r.QuestionID] = append(s.answers[r.QuestionID], r)
	}
	return int64(len(rows)), nil
}

func (s *memStore) InsertAnswerTranslations(_ context.Context, rows []*domain.AnswerTranslation) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fail, partial := s.hit("answer_translations")
	if fail {
		return 0, errStoreDown
	}
	if partial {
		rows = rows[:len(rows)/2]
	}
	for _, r := range rows {
		s.aTrans[r.AnswerID] = append(s.aTrans[r.AnswerID], r)
	}
	return int64(len(rows)), nil
}

func (s *memStore) DeleteQuestion(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deleteSteps = append(s.deleteSteps, "question")
	if s.failDelete["question"] {
		return errStoreDown
	}
	delete(s.questions, id)
	return nil
}

func (s *memStore) DeleteQuestionTranslations(_ context.Context, questionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deleteSteps = append(s.deleteSteps, "question_translations")
	if s.failDelete["question_translations"] {
		return errStoreDown
	}
	delete(s.qTrans, questionID)
	return nil
}

func (s *memStore) DeleteAnswers(_ context.Context, questionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deleteSteps = append(s.deleteSteps, "answers")
	if s.failDelete["answers"] {
		return errStoreDown
	}
	delete(s.answers, questionID)
	return nil
}

func (s *memStore) DeleteAnswerTranslations(_ context.Context, answerIDs []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deleteSteps = append(s.deleteSteps, "answer_translations")
	if s.failDelete["answer_translations"] {
		return errStoreDown
	}
	for _, id := range answerIDs {
		delete(s.aTrans, id)
	}
	return nil
}

// orphanRows counts dependent rows whose question does not exist.
func (s *memStore) orphanRows() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	answerOwner := map[string]string{}
	for qid, rows := range s.qTrans {
		if _, ok := s.questions[qid]; !ok {
			n += len(rows)
		}
	}
	for qid, rows := range s.answers {
		for _, a := range rows {
			answerOwner[a.ID] = qid
		}
		if _, ok := s.questions[qid]; !ok {
			n += len(rows)
		}
	}
	for aid, rows := range s.aTrans {
		qid, ok := answerOwner[aid]
		if !ok {
			n += len(rows)
			continue
		}
		if _, ok := s.questions[qid]; !ok {
			n += len(rows)
		}
	}
	return n
}
