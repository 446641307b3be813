package api

import "github.com/jykim-dev/welfare-survey/internal/services"

type surveyStoreAdapter struct {
	store Store
}

func newSurveyStoreAdapter(store Store) services.SurveyStore {
	return &surveyStoreAdapter{store: store}
}

func (a *surveyStoreAdapter) FindUserByKey(key string) (*services.User, error) {
	return toServiceUser(a.store.GetUserByKey(key)), nil
}

func (a *surveyStoreAdapter) AddSession(sess *services.Session) error {
	if sess == nil {
		return services.NewInvalidError("session required")
	}
	a.store.AddSession(&SurveySession{
		ID:        sess.ID,
		UserID:    sess.UserID,
		Status:    sess.Status,
		CreatedAt: sess.CreatedAt,
	})
	return nil
}

func (a *surveyStoreAdapter) GetSession(id string) (*services.Session, error) {
	return toServiceSession(a.store.GetSession(id)), nil
}

func (a *surveyStoreAdapter) SetSessionStatus(id, status string) error {
	if !a.store.SetSessionStatus(id, status) {
		return services.NewNotFoundError("설문 세션을 찾을 수 없습니다.")
	}
	return nil
}

func (a *surveyStoreAdapter) UpsertResponses(rs []*services.SurveyResponse) error {
	out := make([]*SurveyResponse, 0, len(rs))
	for _, r := range rs {
		if r == nil {
			continue
		}
		out = append(out, &SurveyResponse{
			SessionID:  r.SessionID,
			Category:   string(r.Category),
			QuestionID: r.QuestionID,
			Question:   r.Question,
			Answer:     r.Answer,
			Score:      r.Score,
		})
	}
	a.store.UpsertResponses(out)
	return nil
}

func (a *surveyStoreAdapter) AnsweredCategories(sessionID string) ([]services.Category, error) {
	cats := a.store.AnsweredCategories(sessionID)
	out := make([]services.Category, 0, len(cats))
	for _, c := range cats {
		if parsed, ok := services.ParseCategory(c); ok {
			out = append(out, parsed)
		}
	}
	return out, nil
}

var _ services.SurveyStore = (*surveyStoreAdapter)(nil)
