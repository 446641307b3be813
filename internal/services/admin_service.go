package services

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// AdminStore abstracts persistence operations required by AdminService.
type AdminStore interface {
	FindAdminByUsername(username string) (*Admin, error)
	AddAdmin(a *Admin) error
	CountAdmins() (int, error)

	InsertWelfareService(ws *WelfareService) (*WelfareService, error)
	UpdateWelfareService(ws *WelfareService) error
	DeleteWelfareService(id int64) error
	ListWelfareServices() ([]*WelfareService, error)
}

type TokenSigner func(adminID, username string, ttl time.Duration) (string, error)

// AdminService covers catalog maintenance: admin login and welfare-service
// CRUD. The public survey endpoints never require it.
type AdminService struct {
	store     AdminStore
	now       func() time.Time
	newID     func() string
	signToken TokenSigner
	tokenTTL  time.Duration
}

type AuthResult struct {
	Token   string
	AdminID string
}

func NewAdminService(store AdminStore, signer TokenSigner) *AdminService {
	return &AdminService{
		store:     store,
		now:       func() time.Time { return time.Now().UTC() },
		newID:     uuid.NewString,
		signToken: signer,
		tokenTTL:  12 * time.Hour,
	}
}

func (s *AdminService) Login(username, password string) (*AuthResult, error) {
	username = strings.TrimSpace(username)
	if username == "" || strings.TrimSpace(password) == "" {
		return nil, NewInvalidError("username/password required")
	}
	a, err := s.store.FindAdminByUsername(username)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, NewUnauthorizedError("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword(a.PassHash, []byte(password)); err != nil {
		return nil, NewUnauthorizedError("invalid credentials")
	}
	if s.signToken == nil {
		return nil, NewInvalidError("token signer not configured")
	}
	token, err := s.signToken(a.ID, a.Username, s.tokenTTL)
	if err != nil {
		return nil, err
	}
	return &AuthResult{Token: token, AdminID: a.ID}, nil
}

// EnsureBootstrapAdmin creates the initial admin account from configuration
// when none exists yet. A no-op when credentials are empty or an admin is
// already present.
func (s *AdminService) EnsureBootstrapAdmin(username, password string) error {
	username = strings.TrimSpace(username)
	if username == "" || strings.TrimSpace(password) == "" {
		return nil
	}
	n, err := s.store.CountAdmins()
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.store.AddAdmin(&Admin{
		ID:        s.newID(),
		Username:  username,
		PassHash:  hash,
		CreatedAt: s.now(),
	})
}

func (s *AdminService) ListServices() ([]*WelfareService, error) {
	return s.store.ListWelfareServices()
}

func (s *AdminService) CreateService(ws *WelfareService) (*WelfareService, error) {
	if err := validateWelfareService(ws); err != nil {
		return nil, err
	}
	return s.store.InsertWelfareService(ws)
}

func (s *AdminService) UpdateService(ws *WelfareService) error {
	if ws == nil || ws.ID <= 0 {
		return NewInvalidError("service id required")
	}
	if err := validateWelfareService(ws); err != nil {
		return err
	}
	return s.store.UpdateWelfareService(ws)
}

func (s *AdminService) DeleteService(id int64) error {
	if id <= 0 {
		return NewInvalidError("service id required")
	}
	return s.store.DeleteWelfareService(id)
}

func validateWelfareService(ws *WelfareService) error {
	if ws == nil {
		return NewInvalidError("service required")
	}
	if strings.TrimSpace(ws.Name) == "" || strings.TrimSpace(ws.Category) == "" {
		return NewInvalidError("name/category required")
	}
	if ws.TargetAgeMin < 0 || ws.TargetAgeMax < ws.TargetAgeMin {
		return NewInvalidError("invalid target age range")
	}
	return nil
}
