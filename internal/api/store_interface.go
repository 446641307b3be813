package api

type Store interface {
	AddUser(u *User)
	GetUserByKey(key string) *User
	GetUserByID(id string) *User

	AddSession(sess *SurveySession)
	GetSession(id string) *SurveySession
	LatestSessionForUser(userID string) *SurveySession
	SetSessionStatus(id, status string) bool

	UpsertResponses(rs []*SurveyResponse)
	ListResponsesBySession(sessionID string) []*SurveyResponse
	AnsweredCategories(sessionID string) []string

	AddWelfareService(ws *WelfareService) *WelfareService
	UpdateWelfareService(ws *WelfareService) bool
	DeleteWelfareService(id int64) bool
	ListWelfareServices() []*WelfareService
	ListWelfareServicesForAge(age int) []*WelfareService

	AddAdmin(a *Admin)
	FindAdminByUsername(username string) *Admin
	CountAdmins() int
}

var _ Store = (*memoryStore)(nil)
