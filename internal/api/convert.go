package api

import "github.com/jykim-dev/welfare-survey/internal/services"

func toServiceUser(u *User) *services.User {
	if u == nil {
		return nil
	}
	return &services.User{
		ID:           u.ID,
		UserKey:      u.UserKey,
		Name:         u.Name,
		BirthDate:    u.BirthDate,
		Address:      u.Address,
		DistrictCode: u.DistrictCode,
		AgeGroup:     u.AgeGroup,
		CreatedAt:    u.CreatedAt,
	}
}

func toServiceSession(sess *SurveySession) *services.Session {
	if sess == nil {
		return nil
	}
	return &services.Session{
		ID:        sess.ID,
		UserID:    sess.UserID,
		Status:    sess.Status,
		CreatedAt: sess.CreatedAt,
	}
}

func toServiceWelfare(ws *WelfareService) *services.WelfareService {
	if ws == nil {
		return nil
	}
	return &services.WelfareService{
		ID:           ws.ID,
		Name:         ws.Name,
		Category:     ws.Category,
		Description:  ws.Description,
		Benefits:     ws.Benefits,
		Requirements: ws.Requirements,
		ContactInfo:  ws.ContactInfo,
		IsNational:   ws.IsNational,
		TargetAgeMin: ws.TargetAgeMin,
		TargetAgeMax: ws.TargetAgeMax,
	}
}

func fromServiceWelfare(ws *services.WelfareService) *WelfareService {
	if ws == nil {
		return nil
	}
	return &WelfareService{
		ID:           ws.ID,
		Name:         ws.Name,
		Category:     ws.Category,
		Description:  ws.Description,
		Benefits:     ws.Benefits,
		Requirements: ws.Requirements,
		ContactInfo:  ws.ContactInfo,
		IsNational:   ws.IsNational,
		TargetAgeMin: ws.TargetAgeMin,
		TargetAgeMax: ws.TargetAgeMax,
	}
}

// EnsureSeedCatalog loads the default welfare catalog into an empty store.
// Idempotent: a store that already has catalog rows is left untouched.
func EnsureSeedCatalog(store Store) {
	if store == nil || len(store.ListWelfareServices()) > 0 {
		return
	}
	for _, ws := range services.DefaultWelfareCatalog() {
		store.AddWelfareService(fromServiceWelfare(ws))
	}
}
