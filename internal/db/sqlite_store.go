package db

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/jykim-dev/welfare-survey/internal/api"
)

type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(db *sql.DB) (*SQLiteStore, error) {
	if db == nil {
		return nil, errors.New("nil db")
	}
	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
	}
	for _, stmt := range pragmas {
		if _, err := db.Exec(stmt); err != nil {
			return nil, fmt.Errorf("apply sqlite pragma %q: %w", stmt, err)
		}
	}
	return &SQLiteStore{db: db}, nil
}

func NewStore(db *sql.DB) (api.Store, error) {
	return NewSQLiteStore(db)
}

func (s *SQLiteStore) logErr(prefix string, err error) {
	if err != nil {
		log.Printf("sqlite store: %s: %v", prefix, err)
	}
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		t = time.Now().UTC()
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// --- Users ---

func (s *SQLiteStore) AddUser(u *api.User) {
	if u == nil {
		return
	}
	_, err := s.db.Exec(`INSERT INTO users (id, user_key, name, birth_date, address, district_code, age_group, created_at)
      VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		u.ID, u.UserKey, u.Name, u.BirthDate, u.Address, u.DistrictCode, u.AgeGroup, formatTime(u.CreatedAt))
	s.logErr("AddUser", err)
}

func (s *SQLiteStore) scanUser(row *sql.Row) *api.User {
	var u api.User
	var created string
	err := row.Scan(&u.ID, &u.UserKey, &u.Name, &u.BirthDate, &u.Address, &u.DistrictCode, &u.AgeGroup, &created)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			s.logErr("scanUser", err)
		}
		return nil
	}
	u.CreatedAt = parseTime(created)
	return &u
}

const userColumns = `id, user_key, name, birth_date, address, district_code, age_group, created_at`

func (s *SQLiteStore) GetUserByKey(key string) *api.User {
	if strings.TrimSpace(key) == "" {
		return nil
	}
	return s.scanUser(s.db.QueryRow(`SELECT `+userColumns+` FROM users WHERE user_key = ?`, key))
}

func (s *SQLiteStore) GetUserByID(id string) *api.User {
	if strings.TrimSpace(id) == "" {
		return nil
	}
	return s.scanUser(s.db.QueryRow(`SELECT `+userColumns+` FROM users WHERE id = ?`, id))
}

// --- Sessions ---

func (s *SQLiteStore) AddSession(sess *api.SurveySession) {
	if sess == nil {
		return
	}
	_, err := s.db.Exec(`INSERT INTO survey_sessions (id, user_id, status, created_at) VALUES (?, ?, ?, ?)`,
		sess.ID, sess.UserID, sess.Status, formatTime(sess.CreatedAt))
	s.logErr("AddSession", err)
}

func (s *SQLiteStore) scanSession(row *sql.Row) *api.SurveySession {
	var sess api.SurveySession
	var created string
	if err := row.Scan(&sess.ID, &sess.UserID, &sess.Status, &created); err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			s.logErr("scanSession", err)
		}
		return nil
	}
	sess.CreatedAt = parseTime(created)
	return &sess
}

func (s *SQLiteStore) GetSession(id string) *api.SurveySession {
	if strings.TrimSpace(id) == "" {
		return nil
	}
	return s.scanSession(s.db.QueryRow(`SELECT id, user_id, status, created_at FROM survey_sessions WHERE id = ?`, id))
}

func (s *SQLiteStore) LatestSessionForUser(userID string) *api.SurveySession {
	if strings.TrimSpace(userID) == "" {
		return nil
	}
	return s.scanSession(s.db.QueryRow(`SELECT id, user_id, status, created_at FROM survey_sessions
      WHERE user_id = ? ORDER BY created_at DESC LIMIT 1`, userID))
}

func (s *SQLiteStore) SetSessionStatus(id, status string) bool {
	res, err := s.db.Exec(`UPDATE survey_sessions SET status = ? WHERE id = ?`, status, id)
	if err != nil {
		s.logErr("SetSessionStatus", err)
		return false
	}
	n, _ := res.RowsAffected()
	return n > 0
}

// --- Responses ---

func (s *SQLiteStore) UpsertResponses(rs []*api.SurveyResponse) {
	for _, r := range rs {
		if r == nil {
			continue
		}
		_, err := s.db.Exec(`INSERT INTO survey_responses (session_id, category, question_id, question, answer, score)
          VALUES (?, ?, ?, ?, ?, ?)
          ON CONFLICT(session_id, question_id) DO UPDATE SET
            category = excluded.category,
            question = excluded.question,
            answer   = excluded.answer,
            score    = excluded.score`,
			r.SessionID, r.Category, r.QuestionID, r.Question, r.Answer, r.Score)
		s.logErr("UpsertResponses", err)
	}
}

func (s *SQLiteStore) ListResponsesBySession(sessionID string) []*api.SurveyResponse {
	if strings.TrimSpace(sessionID) == "" {
		return nil
	}
	rows, err := s.db.Query(`SELECT session_id, category, question_id, question, answer, score
      FROM survey_responses WHERE session_id = ? ORDER BY question_id ASC`, sessionID)
	if err != nil {
		s.logErr("ListResponsesBySession: query", err)
		return nil
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			s.logErr("ListResponsesBySession: rows.Close", cerr)
		}
	}()
	out := []*api.SurveyResponse{}
	for rows.Next() {
		var r api.SurveyResponse
		if err := rows.Scan(&r.SessionID, &r.Category, &r.QuestionID, &r.Question, &r.Answer, &r.Score); err == nil {
			out = append(out, &r)
		}
	}
	if err := rows.Err(); err != nil {
		s.logErr("ListResponsesBySession: rows.Err", err)
	}
	return out
}

func (s *SQLiteStore) AnsweredCategories(sessionID string) []string {
	if strings.TrimSpace(sessionID) == "" {
		return nil
	}
	rows, err := s.db.Query(`SELECT DISTINCT category FROM survey_responses WHERE session_id = ? ORDER BY category ASC`, sessionID)
	if err != nil {
		s.logErr("AnsweredCategories: query", err)
		return nil
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			s.logErr("AnsweredCategories: rows.Close", cerr)
		}
	}()
	out := []string{}
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err == nil {
			out = append(out, c)
		}
	}
	if err := rows.Err(); err != nil {
		s.logErr("AnsweredCategories: rows.Err", err)
	}
	return out
}

// --- Welfare catalog ---

const welfareColumns = `id, name, category, description, benefits, requirements, contact_info, is_national, target_age_min, target_age_max`

func (s *SQLiteStore) scanWelfareRows(rows *sql.Rows) []*api.WelfareService {
	out := []*api.WelfareService{}
	for rows.Next() {
		var ws api.WelfareService
		var national int64
		if err := rows.Scan(&ws.ID, &ws.Name, &ws.Category, &ws.Description, &ws.Benefits,
			&ws.Requirements, &ws.ContactInfo, &national, &ws.TargetAgeMin, &ws.TargetAgeMax); err == nil {
			ws.IsNational = national != 0
			out = append(out, &ws)
		}
	}
	if err := rows.Err(); err != nil {
		s.logErr("scanWelfareRows", err)
	}
	return out
}

func (s *SQLiteStore) AddWelfareService(ws *api.WelfareService) *api.WelfareService {
	if ws == nil {
		return nil
	}
	national := 0
	if ws.IsNational {
		national = 1
	}
	res, err := s.db.Exec(`INSERT INTO welfare_services
      (name, category, description, benefits, requirements, contact_info, is_national, target_age_min, target_age_max)
      VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		ws.Name, ws.Category, ws.Description, ws.Benefits, ws.Requirements, ws.ContactInfo,
		national, ws.TargetAgeMin, ws.TargetAgeMax)
	if err != nil {
		s.logErr("AddWelfareService", err)
		return nil
	}
	if id, err := res.LastInsertId(); err == nil {
		ws.ID = id
	}
	return ws
}

func (s *SQLiteStore) UpdateWelfareService(ws *api.WelfareService) bool {
	if ws == nil {
		return false
	}
	national := 0
	if ws.IsNational {
		national = 1
	}
	res, err := s.db.Exec(`UPDATE welfare_services SET
      name = ?, category = ?, description = ?, benefits = ?, requirements = ?,
      contact_info = ?, is_national = ?, target_age_min = ?, target_age_max = ?
      WHERE id = ?`,
		ws.Name, ws.Category, ws.Description, ws.Benefits, ws.Requirements, ws.ContactInfo,
		national, ws.TargetAgeMin, ws.TargetAgeMax, ws.ID)
	if err != nil {
		s.logErr("UpdateWelfareService", err)
		return false
	}
	n, _ := res.RowsAffected()
	return n > 0
}

func (s *SQLiteStore) DeleteWelfareService(id int64) bool {
	res, err := s.db.Exec(`DELETE FROM welfare_services WHERE id = ?`, id)
	if err != nil {
		s.logErr("DeleteWelfareService", err)
		return false
	}
	n, _ := res.RowsAffected()
	return n > 0
}

func (s *SQLiteStore) ListWelfareServices() []*api.WelfareService {
	rows, err := s.db.Query(`SELECT ` + welfareColumns + ` FROM welfare_services ORDER BY id ASC`)
	if err != nil {
		s.logErr("ListWelfareServices", err)
		return nil
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			s.logErr("ListWelfareServices: rows.Close", cerr)
		}
	}()
	return s.scanWelfareRows(rows)
}

func (s *SQLiteStore) ListWelfareServicesForAge(age int) []*api.WelfareService {
	rows, err := s.db.Query(`SELECT `+welfareColumns+` FROM welfare_services
      WHERE target_age_min <= ? AND target_age_max >= ? ORDER BY id ASC`, age, age)
	if err != nil {
		s.logErr("ListWelfareServicesForAge", err)
		return nil
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			s.logErr("ListWelfareServicesForAge: rows.Close", cerr)
		}
	}()
	return s.scanWelfareRows(rows)
}

// --- Admins ---

func (s *SQLiteStore) AddAdmin(a *api.Admin) {
	if a == nil {
		return
	}
	_, err := s.db.Exec(`INSERT INTO admins (id, username, pass_hash, created_at) VALUES (?, ?, ?, ?)`,
		a.ID, a.Username, a.PassHash, formatTime(a.CreatedAt))
	s.logErr("AddAdmin", err)
}

func (s *SQLiteStore) FindAdminByUsername(username string) *api.Admin {
	if strings.TrimSpace(username) == "" {
		return nil
	}
	var a api.Admin
	var created string
	row := s.db.QueryRow(`SELECT id, username, pass_hash, created_at FROM admins WHERE username = ?`, username)
	if err := row.Scan(&a.ID, &a.Username, &a.PassHash, &created); err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			s.logErr("FindAdminByUsername", err)
		}
		return nil
	}
	a.CreatedAt = parseTime(created)
	return &a
}

func (s *SQLiteStore) CountAdmins() int {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM admins`).Scan(&n); err != nil {
		s.logErr("CountAdmins", err)
		return 0
	}
	return n
}

var _ api.Store = (*SQLiteStore)(nil)
