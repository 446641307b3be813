package services

import (
	"testing"
	"time"
)

type stubUserStore struct {
	byKey map[string]*User
}

func newStubUserStore() *stubUserStore {
	return &stubUserStore{byKey: map[string]*User{}}
}

func (s *stubUserStore) AddUser(u *User) error {
	copy := *u
	s.byKey[u.UserKey] = &copy
	return nil
}

func (s *stubUserStore) FindUserByKey(key string) (*User, error) {
	if u, ok := s.byKey[key]; ok {
		copy := *u
		return &copy, nil
	}
	return nil, nil
}

func fixedNow() time.Time {
	return time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
}

func newTestUserService(store *stubUserStore) *UserService {
	svc := NewUserService(store)
	svc.now = fixedNow
	return svc
}

func TestRegisterEligible(t *testing.T) {
	store := newStubUserStore()
	svc := newTestUserService(store)

	res, err := svc.Register(RegisterRequest{
		Name:         "김영희",
		BirthDate:    "1955-03-02", // 70 at the fixed clock
		Address:      "남해군 남해읍",
		DistrictCode: "4884",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if res.AgeGroup != AgeGroupPre {
		t.Fatalf("age_group=%q, want %q", res.AgeGroup, AgeGroupPre)
	}
	if len(res.UserKey) != 32 {
		t.Fatalf("user key length %d, want 32 hex chars", len(res.UserKey))
	}
	stored, _ := store.FindUserByKey(res.UserKey)
	if stored == nil || stored.ID != res.UserID {
		t.Fatalf("registered user not stored under its key")
	}
}

func TestRegisterAgeGroups(t *testing.T) {
	cases := []struct {
		birth string
		want  string
	}{
		{"1940-01-01", AgeGroupSuper},   // 85
		{"1950-01-01", AgeGroupElderly}, // 75
		{"1960-06-15", AgeGroupPre},     // exactly 65
	}
	for _, c := range cases {
		svc := newTestUserService(newStubUserStore())
		res, err := svc.Register(RegisterRequest{Name: "이철수", BirthDate: c.birth, Address: "남해군", DistrictCode: "4884"})
		if err != nil {
			t.Fatalf("Register(%s): %v", c.birth, err)
		}
		if res.AgeGroup != c.want {
			t.Fatalf("Register(%s) age_group=%q, want %q", c.birth, res.AgeGroup, c.want)
		}
	}
}

func TestRegisterRejectsUnderage(t *testing.T) {
	svc := newTestUserService(newStubUserStore())
	// One day short of the 65th birthday at the fixed clock.
	_, err := svc.Register(RegisterRequest{Name: "박민수", BirthDate: "1960-06-16", Address: "남해군", DistrictCode: "4884"})
	se, ok := AsServiceError(err)
	if !ok || se.Code != ErrorInvalid {
		t.Fatalf("expected invalid error for age 64, got %v", err)
	}
}

func TestRegisterRejectsMissingFields(t *testing.T) {
	svc := newTestUserService(newStubUserStore())
	reqs := []RegisterRequest{
		{BirthDate: "1950-01-01", Address: "a", DistrictCode: "d"},
		{Name: "n", Address: "a", DistrictCode: "d"},
		{Name: "n", BirthDate: "1950-01-01", DistrictCode: "d"},
		{Name: "n", BirthDate: "1950-01-01", Address: "a"},
		{Name: " ", BirthDate: "1950-01-01", Address: "a", DistrictCode: "d"},
	}
	for i, req := range reqs {
		if _, err := svc.Register(req); err == nil {
			t.Fatalf("case %d: expected error for missing field", i)
		}
	}
}

func TestRegisterRejectsBadBirthDate(t *testing.T) {
	svc := newTestUserService(newStubUserStore())
	_, err := svc.Register(RegisterRequest{Name: "n", BirthDate: "01/01/1950", Address: "a", DistrictCode: "d"})
	se, ok := AsServiceError(err)
	if !ok || se.Code != ErrorInvalid {
		t.Fatalf("expected invalid error for malformed birth date, got %v", err)
	}
}

func TestFindByKey(t *testing.T) {
	store := newStubUserStore()
	svc := newTestUserService(store)
	res, err := svc.Register(RegisterRequest{Name: "김영희", BirthDate: "1950-01-01", Address: "a", DistrictCode: "d"})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	u, err := svc.FindByKey(res.UserKey)
	if err != nil || u == nil {
		t.Fatalf("FindByKey(known): %v", err)
	}
	if u.Name != "김영희" {
		t.Fatalf("FindByKey returned wrong user: %+v", u)
	}

	_, err = svc.FindByKey("deadbeef")
	se, ok := AsServiceError(err)
	if !ok || se.Code != ErrorNotFound {
		t.Fatalf("expected not_found for unknown key, got %v", err)
	}
}
