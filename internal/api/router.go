package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/jykim-dev/welfare-survey/internal/middleware"
	"github.com/jykim-dev/welfare-survey/internal/services"
)

type Router struct {
	store     Store
	users     *services.UserService
	survey    *services.SurveyService
	recommend *services.RecommendationService
	admin     *services.AdminService
}

func NewRouter(store Store) *Router {
	return &Router{
		store:     store,
		users:     services.NewUserService(newUserStoreAdapter(store)),
		survey:    services.NewSurveyService(newSurveyStoreAdapter(store)),
		recommend: services.NewRecommendationService(newRecommendStoreAdapter(store), nil),
		admin:     services.NewAdminService(newAdminStoreAdapter(store), middleware.SignToken),
	}
}

// BootstrapAdmin creates the initial admin account when none exists.
func (rt *Router) BootstrapAdmin(username, password string) error {
	return rt.admin.EnsureBootstrapAdmin(username, password)
}

func (rt *Router) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/users", rt.handleRegisterUser)              // POST
	mux.HandleFunc("/api/survey/start", rt.handleSurveyStart)        // POST
	mux.HandleFunc("/api/survey/answer", rt.handleSurveyAnswer)      // POST
	mux.HandleFunc("/api/recommendations", rt.handleRecommendations) // POST
	mux.HandleFunc("/api/results/", rt.handleResults)                // GET /api/results/{user_key}
	mux.HandleFunc("/api/admin/login", rt.handleAdminLogin)          // POST
	mux.Handle("/api/admin/services", middleware.RequireAuth(http.HandlerFunc(rt.handleAdminServices)))
	mux.Handle("/api/admin/services/", middleware.RequireAuth(http.HandlerFunc(rt.handleAdminServiceScoped)))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps service error codes to HTTP statuses; everything else is a
// 500 with a generic message.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	msg := "요청을 처리하지 못했습니다."
	if se, ok := services.AsServiceError(err); ok {
		msg = se.Message
		switch se.Code {
		case services.ErrorInvalid:
			status = http.StatusBadRequest
		case services.ErrorUnauthorized:
			status = http.StatusUnauthorized
		case services.ErrorForbidden:
			status = http.StatusForbidden
		case services.ErrorNotFound:
			status = http.StatusNotFound
		case services.ErrorConflict:
			status = http.StatusConflict
		}
	}
	writeJSON(w, status, map[string]any{"error": msg})
}

// POST /api/users
func (rt *Router) handleRegisterUser(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req struct {
		Name         string `json:"name"`
		BirthDate    string `json:"birth_date"`
		Address      string `json:"address"`
		DistrictCode string `json:"district_code"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, services.NewInvalidError("잘못된 요청입니다."))
		return
	}
	res, err := rt.users.Register(services.RegisterRequest{
		Name:         req.Name,
		BirthDate:    req.BirthDate,
		Address:      req.Address,
		DistrictCode: req.DistrictCode,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success":   true,
		"user_id":   res.UserID,
		"user_key":  res.UserKey,
		"age_group": res.AgeGroup,
		"message":   "사용자 정보가 성공적으로 등록되었습니다.",
	})
}

// POST /api/survey/start
func (rt *Router) handleSurveyStart(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req struct {
		UserKey string `json:"user_key"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, services.NewInvalidError("잘못된 요청입니다."))
		return
	}
	res, err := rt.survey.Start(req.UserKey)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success":    true,
		"session_id": res.SessionID,
		"questions":  res.Questions,
	})
}

// POST /api/survey/answer
func (rt *Router) handleSurveyAnswer(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req struct {
		SessionID string `json:"session_id"`
		Category  string `json:"category"`
		Answers   []struct {
			QuestionID int    `json:"question_id"`
			Question   string `json:"question"`
			Answer     string `json:"answer"`
		} `json:"answers"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, services.NewInvalidError("잘못된 요청입니다."))
		return
	}
	answers := make([]services.Answer, 0, len(req.Answers))
	for _, a := range req.Answers {
		answers = append(answers, services.Answer{QuestionID: a.QuestionID, Question: a.Question, Answer: a.Answer})
	}
	status, err := rt.survey.SubmitAnswers(req.SessionID, req.Category, answers)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success":        true,
		"session_status": status,
	})
}

// POST /api/recommendations
func (rt *Router) handleRecommendations(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req struct {
		SessionID string `json:"session_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, services.NewInvalidError("잘못된 요청입니다."))
		return
	}
	res, err := rt.recommend.Recommend(req.SessionID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success":         true,
		"recommendations": res.Recommendations,
		"user_info":       res.UserInfo,
	})
}

// GET /api/results/{user_key}
func (rt *Router) handleResults(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	key := strings.TrimPrefix(r.URL.Path, "/api/results/")
	if key == "" || strings.Contains(key, "/") {
		http.NotFound(w, r)
		return
	}
	res, err := rt.recommend.RecommendByKey(key)
	if err != nil {
		writeError(w, err)
		return
	}
	if !res.HasSurvey {
		writeJSON(w, http.StatusOK, map[string]any{
			"success":    true,
			"has_survey": false,
			"message":    "아직 설문조사를 완료하지 않았습니다.",
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success":         true,
		"has_survey":      true,
		"user_info":       res.UserInfo,
		"recommendations": res.Recommendations,
	})
}

// POST /api/admin/login
func (rt *Router) handleAdminLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, services.NewInvalidError("잘못된 요청입니다."))
		return
	}
	res, err := rt.admin.Login(req.Username, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "token": res.Token})
}

// GET|POST /api/admin/services
func (rt *Router) handleAdminServices(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		list, err := rt.admin.ListServices()
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "services": list})
	case http.MethodPost:
		var ws services.WelfareService
		if err := json.NewDecoder(r.Body).Decode(&ws); err != nil {
			writeError(w, services.NewInvalidError("잘못된 요청입니다."))
			return
		}
		ws.ID = 0
		created, err := rt.admin.CreateService(&ws)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "service": created})
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// PUT|DELETE /api/admin/services/{id}
func (rt *Router) handleAdminServiceScoped(w http.ResponseWriter, r *http.Request) {
	idStr := strings.TrimPrefix(r.URL.Path, "/api/admin/services/")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		http.NotFound(w, r)
		return
	}
	switch r.Method {
	case http.MethodPut:
		var ws services.WelfareService
		if err := json.NewDecoder(r.Body).Decode(&ws); err != nil {
			writeError(w, services.NewInvalidError("잘못된 요청입니다."))
			return
		}
		ws.ID = id
		if err := rt.admin.UpdateService(&ws); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "service": &ws})
	case http.MethodDelete:
		if err := rt.admin.DeleteService(id); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"success": true})
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}
