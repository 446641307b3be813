package api

import "github.com/jykim-dev/welfare-survey/internal/services"

type userStoreAdapter struct {
	store Store
}

func newUserStoreAdapter(store Store) services.UserStore {
	return &userStoreAdapter{store: store}
}

func (a *userStoreAdapter) AddUser(u *services.User) error {
	if u == nil {
		return services.NewInvalidError("user required")
	}
	a.store.AddUser(&User{
		ID:           u.ID,
		UserKey:      u.UserKey,
		Name:         u.Name,
		BirthDate:    u.BirthDate,
		Address:      u.Address,
		DistrictCode: u.DistrictCode,
		AgeGroup:     u.AgeGroup,
		CreatedAt:    u.CreatedAt,
	})
	return nil
}

func (a *userStoreAdapter) FindUserByKey(key string) (*services.User, error) {
	return toServiceUser(a.store.GetUserByKey(key)), nil
}

var _ services.UserStore = (*userStoreAdapter)(nil)
