package user

import (
	"errors"
	"fmt"
	"strings"
	"time"

	policyRepo "growlife/database/repository/policy"
	userRepo "growlife/database/repository/user"
	"growlife/models"
	"growlife/services/auth"
	"growlife/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// AccountInput is the payload for administrative customer/agent creation.
type AccountInput struct {
	Username     string
	Email        string
	DateOfBirth  *time.Time
	Mobile       string
	Password     string
	Status       string
	RegisteredBy string
}

// AccountUpdate carries the fields an administrative edit may change. Nil
// pointers leave the stored value untouched. Role and registeredBy are never
// part of it.
type AccountUpdate struct {
	Username    *string
	Email       *string
	DateOfBirth *time.Time
	Mobile      *string
	Password    *string
	Status      *string
}

// UserService covers administrative account management and the dashboards.
type UserService interface {
	GetAll() ([]models.User, error)

	GetCustomers() ([]models.User, error)
	CreateCustomer(in AccountInput) (*models.User, error)
	UpdateCustomer(id string, upd AccountUpdate) (*models.User, error)
	DeleteCustomer(id string) error

	GetAgents() ([]models.User, error)
	CreateAgent(in AccountInput) (*models.User, error)
	UpdateAgent(id string, upd AccountUpdate) (*models.User, error)
	DeleteAgent(id string) error

	AgentList() ([]AgentRef, error)
	AgentAssignedPolicies(username string) ([]models.Policy, error)
	AgentsWithPolicies() ([]AgentWithPolicies, error)

	AdminDashboard() (*DashboardStats, error)
	AgentStats(agentID, agentUsername string) (*AgentStats, error)
}

// DefaultUserService is the production UserService.
type DefaultUserService struct {
	Users    userRepo.UserRepository
	Policies policyRepo.PolicyRepository
}

// GetAll returns every account.
func (s *DefaultUserService) GetAll() ([]models.User, error) {
	return s.Users.GetAll()
}

// GetCustomers returns accounts that are neither the admin nor agents.
func (s *DefaultUserService) GetCustomers() ([]models.User, error) {
	return s.Users.GetCustomers()
}

// GetAgents returns agent accounts.
func (s *DefaultUserService) GetAgents() ([]models.User, error) {
	return s.Users.GetAgents(nil)
}

// createAccount builds and persists an account from administrative input.
func (s *DefaultUserService) createAccount(in AccountInput) (*models.User, error) {
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))

	existing, err := s.Users.GetByEmail(in.Email)
	if err != nil {
		utils.GetLogger().Error("CreateAccount: email lookup failed", zap.Error(err))
		return nil, fmt.Errorf("failed to add account, please try again")
	}
	if existing != nil {
		return nil, ErrEmailExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.GetLogger().Error("CreateAccount: failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("failed to add account, please try again")
	}

	status := in.Status
	if status == "" {
		status = models.StatusActive
	}
	registeredBy := in.RegisteredBy
	if registeredBy == "" {
		registeredBy = "Self"
	}

	account := models.User{
		ID:                uuid.New().String(),
		Username:          in.Username,
		DateOfBirth:       in.DateOfBirth,
		Mobile:            in.Mobile,
		Email:             in.Email,
		PasswordHash:      string(hashed),
		Role:              auth.InferRole(in.Username),
		Status:            status,
		PurchasedPolicies: []string{},
		AssignedPolicies:  []string{},
		Claims:            []models.Claim{},
		Notifications:     []models.Notification{},
		RegisteredBy:      registeredBy,
	}

	if err := s.Users.Create(&account); err != nil {
		utils.GetLogger().Error("CreateAccount: failed to create account", zap.Error(err))
		return nil, fmt.Errorf("failed to add account, please try again")
	}
	return &account, nil
}

// CreateCustomer registers a customer on someone's behalf (agent or admin).
func (s *DefaultUserService) CreateCustomer(in AccountInput) (*models.User, error) {
	return s.createAccount(in)
}

// CreateAgent registers an agent account.
func (s *DefaultUserService) CreateAgent(in AccountInput) (*models.User, error) {
	return s.createAccount(in)
}

// updateAccount applies an administrative edit. The role and provenance
// fields are immutable here.
func (s *DefaultUserService) updateAccount(id string, upd AccountUpdate, notFound error) (*models.User, error) {
	account, err := s.Users.GetByID(id)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, notFound
	}

	if upd.Username != nil {
		account.Username = *upd.Username
	}
	if upd.Email != nil {
		account.Email = strings.ToLower(strings.TrimSpace(*upd.Email))
	}
	if upd.DateOfBirth != nil {
		account.DateOfBirth = upd.DateOfBirth
	}
	if upd.Mobile != nil {
		account.Mobile = *upd.Mobile
	}
	if upd.Status != nil {
		account.Status = *upd.Status
	}
	if upd.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*upd.Password), bcrypt.DefaultCost)
		if err != nil {
			utils.GetLogger().Error("UpdateAccount: failed to hash password", zap.Error(err))
			return nil, fmt.Errorf("failed to update account, please try again")
		}
		account.PasswordHash = string(hashed)
	}

	if err := s.Users.Update(account); err != nil {
		return nil, err
	}
	return account, nil
}

// UpdateCustomer applies an administrative edit to a customer.
func (s *DefaultUserService) UpdateCustomer(id string, upd AccountUpdate) (*models.User, error) {
	return s.updateAccount(id, upd, ErrCustomerNotFound)
}

// UpdateAgent applies an administrative edit to an agent.
func (s *DefaultUserService) UpdateAgent(id string, upd AccountUpdate) (*models.User, error) {
	return s.updateAccount(id, upd, ErrAgentNotFound)
}

func (s *DefaultUserService) deleteAccount(id string, notFound error) error {
	err := s.Users.Delete(id)
	if errors.Is(err, userRepo.ErrNotFound) {
		return notFound
	}
	return err
}

// DeleteCustomer removes a customer account.
func (s *DefaultUserService) DeleteCustomer(id string) error {
	return s.deleteAccount(id, ErrCustomerNotFound)
}

// DeleteAgent removes an agent account.
func (s *DefaultUserService) DeleteAgent(id string) error {
	return s.deleteAccount(id, ErrAgentNotFound)
}
