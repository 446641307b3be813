package services

import "time"

// User is a registered elderly resident. Immutable after registration; the
// opaque user key is the sole external identifier and access credential.
type User struct {
	ID           string
	UserKey      string
	Name         string
	BirthDate    string // YYYY-MM-DD
	Address      string
	DistrictCode string
	AgeGroup     string
	CreatedAt    time.Time
}

// Session statuses. A session completes when every category has a stored
// response set; the transition is made server-side during answer submission.
const (
	SessionActive    = "active"
	SessionCompleted = "completed"
)

// Session is one survey attempt tied to a single user.
type Session struct {
	ID        string
	UserID    string
	Status    string
	CreatedAt time.Time
}

// SurveyResponse is one answered question within a session. Unique per
// (session, question); resubmission replaces the prior answer.
type SurveyResponse struct {
	SessionID  string
	Category   Category
	QuestionID int
	Question   string
	Answer     string
	Score      int
}

// WelfareService is one catalog entry describing a benefit program and its
// inclusive eligibility age range.
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

// Admin is a catalog maintainer account.
type Admin struct {
	ID        string
	Username  string
	PassHash  []byte
	CreatedAt time.Time
}
