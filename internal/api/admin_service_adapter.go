package api

import "github.com/jykim-dev/welfare-survey/internal/services"

type adminStoreAdapter struct {
	store Store
}

func newAdminStoreAdapter(store Store) services.AdminStore {
	return &adminStoreAdapter{store: store}
}

func (a *adminStoreAdapter) FindAdminByUsername(username string) (*services.Admin, error) {
	adm := a.store.FindAdminByUsername(username)
	if adm == nil {
		return nil, nil
	}
	return &services.Admin{ID: adm.ID, Username: adm.Username, PassHash: adm.PassHash, CreatedAt: adm.CreatedAt}, nil
}

func (a *adminStoreAdapter) AddAdmin(adm *services.Admin) error {
	if adm == nil {
		return services.NewInvalidError("admin required")
	}
	a.store.AddAdmin(&Admin{ID: adm.ID, Username: adm.Username, PassHash: adm.PassHash, CreatedAt: adm.CreatedAt})
	return nil
}

func (a *adminStoreAdapter) CountAdmins() (int, error) {
	return a.store.CountAdmins(), nil
}

func (a *adminStoreAdapter) InsertWelfareService(ws *services.WelfareService) (*services.WelfareService, error) {
	stored := a.store.AddWelfareService(fromServiceWelfare(ws))
	if stored == nil {
		return nil, services.NewInvalidError("service required")
	}
	return toServiceWelfare(stored), nil
}

func (a *adminStoreAdapter) UpdateWelfareService(ws *services.WelfareService) error {
	if !a.store.UpdateWelfareService(fromServiceWelfare(ws)) {
		return services.NewNotFoundError("service not found")
	}
	return nil
}

func (a *adminStoreAdapter) DeleteWelfareService(id int64) error {
	if !a.store.DeleteWelfareService(id) {
		return services.NewNotFoundError("service not found")
	}
	return nil
}

func (a *adminStoreAdapter) ListWelfareServices() ([]*services.WelfareService, error) {
	list := a.store.ListWelfareServices()
	out := make([]*services.WelfareService, 0, len(list))
	for _, ws := range list {
		out = append(out, toServiceWelfare(ws))
	}
	return out, nil
}

var _ services.AdminStore = (*adminStoreAdapter)(nil)
