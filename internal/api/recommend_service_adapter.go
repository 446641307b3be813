package api

import "github.com/jykim-dev/welfare-survey/internal/services"

type recommendStoreAdapter struct {
	store Store
}

func newRecommendStoreAdapter(store Store) services.RecommendationStore {
	return &recommendStoreAdapter{store: store}
}

func (a *recommendStoreAdapter) GetSession(id string) (*services.Session, error) {
	return toServiceSession(a.store.GetSession(id)), nil
}

func (a *recommendStoreAdapter) GetUserByID(id string) (*services.User, error) {
	return toServiceUser(a.store.GetUserByID(id)), nil
}

func (a *recommendStoreAdapter) FindUserByKey(key string) (*services.User, error) {
	return toServiceUser(a.store.GetUserByKey(key)), nil
}

func (a *recommendStoreAdapter) LatestSessionForUser(userID string) (*services.Session, error) {
	return toServiceSession(a.store.LatestSessionForUser(userID)), nil
}

func (a *recommendStoreAdapter) ListWelfareServicesForAge(age int) ([]*services.WelfareService, error) {
	list := a.store.ListWelfareServicesForAge(age)
	out := make([]*services.WelfareService, 0, len(list))
	for _, ws := range list {
		out = append(out, toServiceWelfare(ws))
	}
	return out, nil
}

var _ services.RecommendationStore = (*recommendStoreAdapter)(nil)
