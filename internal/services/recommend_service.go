package services

import (
	"fmt"
	"math/rand"
	"sort"
	"time"
)

// RecommendationStore abstracts persistence operations required by
// RecommendationService.
type RecommendationStore interface {
	GetSession(id string) (*Session, error)
	GetUserByID(id string) (*User, error)
	FindUserByKey(key string) (*User, error)
	LatestSessionForUser(userID string) (*Session, error)
	ListWelfareServicesForAge(age int) ([]*WelfareService, error)
}

// Scorer assigns a relevance score in [0, 1) to a catalog entry for a user.
// The default implementation is a placeholder policy; a real eligibility
// rules engine can replace it without touching session or storage logic.
type Scorer interface {
	Score(svc *WelfareService, u *User) float64
}

// RandomScorer assigns a uniform random score in [0.7, 1.0).
type RandomScorer struct{}

func (RandomScorer) Score(*WelfareService, *User) float64 {
	return 0.7 + 0.3*rand.Float64()
}

// maxRecommendations caps the ranked list returned to clients.
const maxRecommendations = 5

// RecommendationService filters the welfare catalog by the resident's
// current age and returns a ranked, rationalized top list. Survey answers
// are collected elsewhere but do not feed this computation; only the age
// filter applies.
type RecommendationService struct {
	store  RecommendationStore
	scorer Scorer
	now    func() time.Time
}

func NewRecommendationService(store RecommendationStore, scorer Scorer) *RecommendationService {
	if scorer == nil {
		scorer = RandomScorer{}
	}
	return &RecommendationService{
		store:  store,
		scorer: scorer,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// Recommendation is ephemeral: recomputed on every request, never persisted.
type Recommendation struct {
	WelfareService
	Score  float64 `json:"score"`
	Reason string  `json:"reason"`
}

type UserInfo struct {
	Name     string `json:"name,omitempty"`
	AgeGroup string `json:"age_group"`
	Age      int    `json:"age"`
}

type RecommendResult struct {
	Recommendations []*Recommendation
	UserInfo        UserInfo
}

// Recommend resolves the session's owning user and ranks the age-filtered
// catalog. Age is recomputed from the birth date at call time, so results
// can shift across the resident's birthday.
func (s *RecommendationService) Recommend(sessionID string) (*RecommendResult, error) {
	sess, err := s.store.GetSession(sessionID)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, NewNotFoundError("사용자 정보를 찾을 수 없습니다.")
	}
	u, err := s.store.GetUserByID(sess.UserID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, NewNotFoundError("사용자 정보를 찾을 수 없습니다.")
	}
	return s.recommendFor(u)
}

type KeyRecommendResult struct {
	HasSurvey       bool
	UserInfo        UserInfo
	Recommendations []*Recommendation
}

// RecommendByKey serves the returning-user lookup flow: it is driven by the
// most recently created session for the key. A registered user with no
// session is reported as hasSurvey=false rather than an error.
func (s *RecommendationService) RecommendByKey(userKey string) (*KeyRecommendResult, error) {
	u, err := s.store.FindUserByKey(userKey)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, NewNotFoundError("결과를 찾을 수 없습니다.")
	}
	sess, err := s.store.LatestSessionForUser(u.ID)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return &KeyRecommendResult{HasSurvey: false}, nil
	}
	res, err := s.recommendFor(u)
	if err != nil {
		return nil, err
	}
	info := res.UserInfo
	info.Name = u.Name
	return &KeyRecommendResult{HasSurvey: true, UserInfo: info, Recommendations: res.Recommendations}, nil
}

func (s *RecommendationService) recommendFor(u *User) (*RecommendResult, error) {
	birth, err := ParseBirthDate(u.BirthDate)
	if err != nil {
		return nil, NewInvalidError("생년월일 형식이 올바르지 않습니다.")
	}
	age := CalculateAge(birth, s.now())

	matches, err := s.store.ListWelfareServicesForAge(age)
	if err != nil {
		return nil, err
	}
	recs := make([]*Recommendation, 0, len(matches))
	for _, svc := range matches {
		recs = append(recs, &Recommendation{
			WelfareService: *svc,
			Score:          s.scorer.Score(svc, u),
			Reason:         recommendationReason(svc.Name, u.AgeGroup),
		})
	}
	sort.SliceStable(recs, func(i, j int) bool { return recs[i].Score > recs[j].Score })
	if len(recs) > maxRecommendations {
		recs = recs[:maxRecommendations]
	}
	return &RecommendResult{
		Recommendations: recs,
		UserInfo:        UserInfo{AgeGroup: u.AgeGroup, Age: age},
	}, nil
}

// Per-program rationale templates keyed by catalog name; %s is the age group.
var reasonTemplates = map[string]string{
	"기초연금":      "%s 어르신께 안정적인 소득 보장이 필요합니다.",
	"노인맞춤돌봄서비스": "%s 어르신께 맞춤형 돌봄 서비스를 추천합니다.",
	"노인일자리 사업":  "활동적인 %s 어르신께 적합한 일자리입니다.",
	"의료비 지원":    "%s 어르신의 의료비 부담을 덜어드립니다.",
	"치매검진 서비스":  "%s 어르신의 뇌건강 관리를 위해 추천합니다.",
}

func recommendationReason(serviceName, ageGroup string) string {
	if tpl, ok := reasonTemplates[serviceName]; ok {
		return fmt.Sprintf(tpl, ageGroup)
	}
	return fmt.Sprintf("%s 어르신께 도움이 될 서비스입니다.", ageGroup)
}
