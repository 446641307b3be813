package api

import (
	"sort"
	"sync"
	"time"
)

type User struct {
	ID           string    `json:"id"`
	UserKey      string    `json:"user_key"`
	Name         string    `json:"name"`
	BirthDate    string    `json:"birth_date"`
	Address      string    `json:"address"`
	DistrictCode string    `json:"district_code"`
	AgeGroup     string    `json:"age_group"`
	CreatedAt    time.Time `json:"created_at"`
}

type SurveySession struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type SurveyResponse struct {
	SessionID  string `json:"session_id"`
	Category   string `json:"category"`
	QuestionID int    `json:"question_id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Score      int    `json:"score"`
}

type WelfareService struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Category     string `json:"category"`
	Description  string `json:"description"`
	Benefits     string `json:"benefits"`
	Requirements string `json:"requirements"`
	ContactInfo  string `json:"contact_info"`
	IsNational   bool   `json:"is_national"`
	TargetAgeMin int    `json:"target_age_min"`
	TargetAgeMax int    `json:"target_age_max"`
}

type Admin struct {
	ID        string
	Username  string
	PassHash  []byte
	CreatedAt time.Time
}

// memoryStore keeps everything in process memory. It backs handler and
// service tests and small single-node deployments; production uses the
// sqlite-backed Store.
type memoryStore struct {
	mu             sync.RWMutex
	usersByKey     map[string]*User
	usersByID      map[string]*User
	sessions       map[string]*SurveySession
	sessionsByUser map[string][]*SurveySession
	// responses[sessionID][questionID] — the upsert key.
	responses map[string]map[int]*SurveyResponse
	welfare   []*WelfareService
	nextSvcID int64
	admins    map[string]*Admin
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		usersByKey:     map[string]*User{},
		usersByID:      map[string]*User{},
		sessions:       map[string]*SurveySession{},
		sessionsByUser: map[string][]*SurveySession{},
		responses:      map[string]map[int]*SurveyResponse{},
		welfare:        []*WelfareService{},
		nextSvcID:      1,
		admins:         map[string]*Admin{},
	}
}

// NewMemoryStore returns an empty in-memory Store.
func NewMemoryStore() Store { return newMemoryStore() }

func (s *memoryStore) AddUser(u *User) {
	if u == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.usersByKey[u.UserKey] = u
	s.usersByID[u.ID] = u
}

func (s *memoryStore) GetUserByKey(key string) *User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.usersByKey[key]
}

func (s *memoryStore) GetUserByID(id string) *User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.usersByID[id]
}

func (s *memoryStore) AddSession(sess *SurveySession) {
	if sess == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.ID] = sess
	s.sessionsByUser[sess.UserID] = append(s.sessionsByUser[sess.UserID], sess)
}

func (s *memoryStore) GetSession(id string) *SurveySession {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sessions[id]
}

func (s *memoryStore) LatestSessionForUser(userID string) *SurveySession {
	s.mu.RLock()
	defer s.mu.RUnlock()
	list := s.sessionsByUser[userID]
	if len(list) == 0 {
		return nil
	}
	latest := list[0]
	for _, sess := range list[1:] {
		if sess.CreatedAt.After(latest.CreatedAt) {
			latest = sess
		}
	}
	return latest
}

func (s *memoryStore) SetSessionStatus(id, status string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.sessions[id]
	if sess == nil {
		return false
	}
	sess.Status = status
	return true
}

func (s *memoryStore) UpsertResponses(rs []*SurveyResponse) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range rs {
		if r == nil {
			continue
		}
		m := s.responses[r.SessionID]
		if m == nil {
			m = map[int]*SurveyResponse{}
			s.responses[r.SessionID] = m
		}
		m[r.QuestionID] = r
	}
}

func (s *memoryStore) ListResponsesBySession(sessionID string) []*SurveyResponse {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m := s.responses[sessionID]
	out := make([]*SurveyResponse, 0, len(m))
	for _, r := range m {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].QuestionID < out[j].QuestionID })
	return out
}

func (s *memoryStore) AnsweredCategories(sessionID string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	seen := map[string]bool{}
	for _, r := range s.responses[sessionID] {
		seen[r.Category] = true
	}
	out := make([]string, 0, len(seen))
	for c := range seen {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

func (s *memoryStore) AddWelfareService(ws *WelfareService) *WelfareService {
	if ws == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if ws.ID == 0 {
		ws.ID = s.nextSvcID
	}
	if ws.ID >= s.nextSvcID {
		s.nextSvcID = ws.ID + 1
	}
	s.welfare = append(s.welfare, ws)
	return ws
}

func (s *memoryStore) UpdateWelfareService(ws *WelfareService) bool {
	if ws == nil {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, cur := range s.welfare {
		if cur.ID == ws.ID {
			s.welfare[i] = ws
			return true
		}
	}
	return false
}

func (s *memoryStore) DeleteWelfareService(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, cur := range s.welfare {
		if cur.ID == id {
			s.welfare = append(s.welfare[:i], s.welfare[i+1:]...)
			return true
		}
	}
	return false
}

func (s *memoryStore) ListWelfareServices() []*WelfareService {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]*WelfareService(nil), s.welfare...)
}

func (s *memoryStore) ListWelfareServicesForAge(age int) []*WelfareService {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []*WelfareService{}
	for _, ws := range s.welfare {
		if ws.TargetAgeMin <= age && age <= ws.TargetAgeMax {
			out = append(out, ws)
		}
	}
	return out
}

func (s *memoryStore) AddAdmin(a *Admin) {
	if a == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.admins[a.Username] = a
}

func (s *memoryStore) FindAdminByUsername(username string) *Admin {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.admins[username]
}

func (s *memoryStore) CountAdmins() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.admins)
}
