package services

import (
	"time"

	"github.com/google/uuid"
)

// SurveyStore abstracts persistence operations required by SurveyService.
type SurveyStore interface {
	FindUserByKey(key string) (*User, error)
	AddSession(sess *Session) error
	GetSession(id string) (*Session, error)
	SetSessionStatus(id, status string) error
	UpsertResponses(rs []*SurveyResponse) error
	AnsweredCategories(sessionID string) ([]Category, error)
}

// SurveyService drives the multi-step wizard: it opens sessions, persists
// per-question answers, and flips the session to completed once every
// category has a stored response set.
type SurveyService struct {
	store SurveyStore
	now   func() time.Time
	newID func() string
}

func NewSurveyService(store SurveyStore) *SurveyService {
	return &SurveyService{
		store: store,
		now:   func() time.Time { return time.Now().UTC() },
		newID: uuid.NewString,
	}
}

type StartResult struct {
	SessionID string
	Questions QuestionSet
}

// Start opens a new session for the resident behind userKey and hands the
// client the fixed question catalog.
func (s *SurveyService) Start(userKey string) (*StartResult, error) {
	u, err := s.store.FindUserByKey(userKey)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, NewNotFoundError("사용자를 찾을 수 없습니다.")
	}
	sess := &Session{
		ID:        s.newID(),
		UserID:    u.ID,
		Status:    SessionActive,
		CreatedAt: s.now(),
	}
	if err := s.store.AddSession(sess); err != nil {
		return nil, err
	}
	return &StartResult{SessionID: sess.ID, Questions: SurveyQuestions()}, nil
}

// Answer mirrors the inbound payload for one answered question.
type Answer struct {
	QuestionID int
	Question   string
	Answer     string
}

// SubmitAnswers stores one category's answers. Each answer is scored via the
// fixed option table and upserted keyed by (session, question), so
// resubmitting a category replaces its earlier answers instead of appending.
// Partial submissions are accepted; completeness per step is the client's
// judgment. Returns the session status after the write.
func (s *SurveyService) SubmitAnswers(sessionID, category string, answers []Answer) (string, error) {
	cat, ok := ParseCategory(category)
	if !ok {
		return "", NewInvalidError("알 수 없는 설문 항목입니다.")
	}
	sess, err := s.store.GetSession(sessionID)
	if err != nil {
		return "", err
	}
	if sess == nil {
		return "", NewNotFoundError("설문 세션을 찾을 수 없습니다.")
	}

	rs := make([]*SurveyResponse, 0, len(answers))
	for _, a := range answers {
		q, ok := QuestionInCategory(cat, a.QuestionID)
		if !ok {
			// Question does not belong to this category's fixed set.
			continue
		}
		rs = append(rs, &SurveyResponse{
			SessionID:  sessionID,
			Category:   cat,
			QuestionID: q.ID,
			Question:   q.Text,
			Answer:     a.Answer,
			Score:      AnswerScore(a.Answer),
		})
	}
	if len(rs) > 0 {
		if err := s.store.UpsertResponses(rs); err != nil {
			return "", err
		}
	}

	if sess.Status == SessionCompleted {
		return SessionCompleted, nil
	}
	answered, err := s.store.AnsweredCategories(sessionID)
	if err != nil {
		return "", err
	}
	if coversAllCategories(answered) {
		if err := s.store.SetSessionStatus(sessionID, SessionCompleted); err != nil {
			return "", err
		}
		return SessionCompleted, nil
	}
	return SessionActive, nil
}

func coversAllCategories(answered []Category) bool {
	seen := map[Category]bool{}
	for _, c := range answered {
		seen[c] = true
	}
	for _, c := range CategoryOrder {
		if !seen[c] {
			return false
		}
	}
	return true
}
