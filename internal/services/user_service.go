package services

import (
	"crypto/rand"
	"encoding/hex"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
)

// UserStore abstracts persistence operations required by UserService.
type UserStore interface {
	AddUser(u *User) error
	FindUserByKey(key string) (*User, error)
}

type UserService struct {
	store  UserStore
	now    func() time.Time
	newID  func() string
	newKey func() string
}

func NewUserService(store UserStore) *UserService {
	return &UserService{
		store:  store,
		now:    func() time.Time { return time.Now().UTC() },
		newID:  uuid.NewString,
		newKey: generateUserKey,
	}
}

// generateUserKey returns a 128-bit cryptographically random key, hex-encoded.
// Possession of the key is the only access control; it must be unguessable.
func generateUserKey() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		log.Printf("user service: generate key: %v", err)
		return ""
	}
	return hex.EncodeToString(b)
}

type RegisterRequest struct {
	Name         string
	BirthDate    string
	Address      string
	DistrictCode string
}

type RegisterResult struct {
	UserID   string
	UserKey  string
	AgeGroup string
}

// Register creates a resident record after the age-eligibility gate.
func (s *UserService) Register(req RegisterRequest) (*RegisterResult, error) {
	name := strings.TrimSpace(req.Name)
	birthDate := strings.TrimSpace(req.BirthDate)
	address := strings.TrimSpace(req.Address)
	district := strings.TrimSpace(req.DistrictCode)
	if name == "" || birthDate == "" || address == "" || district == "" {
		return nil, NewInvalidError("모든 필드가 필요합니다.")
	}

	birth, err := ParseBirthDate(birthDate)
	if err != nil {
		return nil, NewInvalidError("생년월일 형식이 올바르지 않습니다.")
	}
	age := CalculateAge(birth, s.now())
	if age < MinEligibleAge {
		return nil, NewInvalidError("이 서비스는 65세 이상 어르신을 대상으로 합니다.")
	}

	key := s.newKey()
	if key == "" {
		return nil, NewInvalidError("사용자 키 생성에 실패했습니다.")
	}
	u := &User{
		ID:           s.newID(),
		UserKey:      key,
		Name:         name,
		BirthDate:    birthDate,
		Address:      address,
		DistrictCode: district,
		AgeGroup:     AgeGroup(age),
		CreatedAt:    s.now(),
	}
	if err := s.store.AddUser(u); err != nil {
		return nil, err
	}
	return &RegisterResult{UserID: u.ID, UserKey: u.UserKey, AgeGroup: u.AgeGroup}, nil
}

// FindByKey resolves a resident by the opaque lookup key.
func (s *UserService) FindByKey(key string) (*User, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, NewNotFoundError("사용자를 찾을 수 없습니다.")
	}
	u, err := s.store.FindUserByKey(key)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, NewNotFoundError("사용자를 찾을 수 없습니다.")
	}
	return u, nil
}
