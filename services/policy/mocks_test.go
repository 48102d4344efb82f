package policy_test

import (
	"growlife/models"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	return m.Called(user).Error(0)
}

func (m *MockUserRepository) Update(user *models.User) error {
	return m.Called(user).Error(0)
}

func (m *MockUserRepository) Delete(id string) error {
	return m.Called(id).Error(0)
}

func (m *MockUserRepository) GetByID(id string) (*models.User, error) {
	args := m.Called(id)
	if u := args.Get(0); u != nil {
		return u.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) GetByUsername(username string) (*models.User, error) {
	args := m.Called(username)
	if u := args.Get(0); u != nil {
		return u.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) GetByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if u := args.Get(0); u != nil {
		return u.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) GetAll() ([]models.User, error) {
	args := m.Called()
	if u := args.Get(0); u != nil {
		return u.([]models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) GetCustomers() ([]models.User, error) {
	args := m.Called()
	if u := args.Get(0); u != nil {
		return u.([]models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) GetAgents(projection bson.M) ([]models.User, error) {
	args := m.Called(projection)
	if u := args.Get(0); u != nil {
		return u.([]models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) GetByClaimID(claimID string) (*models.User, error) {
	args := m.Called(claimID)
	if u := args.Get(0); u != nil {
		return u.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) RemoveClaim(claimID string) error {
	return m.Called(claimID).Error(0)
}

func (m *MockUserRepository) CountAgents() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) CountCustomers() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) CountPendingClaims() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) CountRegisteredBy(label string) (int64, error) {
	args := m.Called(label)
	return args.Get(0).(int64), args.Error(1)
}

type MockPolicyRepository struct {
	mock.Mock
}

func (m *MockPolicyRepository) Create(policy *models.Policy) error {
	return m.Called(policy).Error(0)
}

func (m *MockPolicyRepository) Update(policy *models.Policy) error {
	return m.Called(policy).Error(0)
}

func (m *MockPolicyRepository) Delete(id string) error {
	return m.Called(id).Error(0)
}

func (m *MockPolicyRepository) GetByID(id string) (*models.Policy, error) {
	args := m.Called(id)
	if p := args.Get(0); p != nil {
		return p.(*models.Policy), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPolicyRepository) GetByDisplayID(displayID string) (*models.Policy, error) {
	args := m.Called(displayID)
	if p := args.Get(0); p != nil {
		return p.(*models.Policy), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPolicyRepository) GetAll(category string) ([]models.Policy, error) {
	args := m.Called(category)
	if p := args.Get(0); p != nil {
		return p.([]models.Policy), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPolicyRepository) GetByIDs(ids []string) ([]models.Policy, error) {
	args := m.Called(ids)
	if p := args.Get(0); p != nil {
		return p.([]models.Policy), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPolicyRepository) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}
