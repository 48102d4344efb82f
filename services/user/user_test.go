package user_test

import (
	"testing"

	userRepo "growlife/database/repository/user"
	"growlife/models"
	"growlife/services/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"
)

func strPtr(s string) *string { return &s }

func TestCreateCustomer_EmailExists(t *testing.T) {
	users := new(MockUserRepository)
	svc := &user.DefaultUserService{Users: users, Policies: new(MockPolicyRepository)}

	users.On("GetByEmail", "lena@mail.com").Return(&models.User{ID: "u1"}, nil).Once()

	_, err := svc.CreateCustomer(user.AccountInput{
		Username: "lena",
		Email:    "lena@mail.com",
		Password: "secret123",
	})
	assert.ErrorIs(t, err, user.ErrEmailExists)
}

func TestCreateCustomer_EmailExistsIgnoresCase(t *testing.T) {
	users := new(MockUserRepository)
	svc := &user.DefaultUserService{Users: users, Policies: new(MockPolicyRepository)}

	users.On("GetByEmail", "lena@mail.com").Return(&models.User{ID: "u1"}, nil).Once()

	_, err := svc.CreateCustomer(user.AccountInput{
		Username: "lena",
		Email:    " Lena@Mail.com ",
		Password: "secret123",
	})
	assert.ErrorIs(t, err, user.ErrEmailExists)
	users.AssertExpectations(t)
}

func TestCreateCustomer_DefaultsAndRoleInference(t *testing.T) {
	users := new(MockUserRepository)
	svc := &user.DefaultUserService{Users: users, Policies: new(MockPolicyRepository)}

	users.On("GetByEmail", "lena@mail.com").Return(nil, nil).Once()
	users.On("Create", mock.AnythingOfType("*models.User")).Return(nil).Once()

	created, err := svc.CreateCustomer(user.AccountInput{
		Username: "lena",
		Email:    "Lena@Mail.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, created.Role)
	assert.Equal(t, models.StatusActive, created.Status)
	assert.Equal(t, "Self", created.RegisteredBy)
	assert.Equal(t, "lena@mail.com", created.Email)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("secret123")))
}

func TestCreateCustomer_KeepsAgentProvenanceLabel(t *testing.T) {
	users := new(MockUserRepository)
	svc := &user.DefaultUserService{Users: users, Policies: new(MockPolicyRepository)}

	users.On("GetByEmail", "noor@mail.com").Return(nil, nil).Once()
	users.On("Create", mock.AnythingOfType("*models.User")).Return(nil).Once()

	created, err := svc.CreateCustomer(user.AccountInput{
		Username:     "noor",
		Email:        "noor@mail.com",
		Password:     "secret123",
		RegisteredBy: "bob (Agent)",
	})
	require.NoError(t, err)
	assert.Equal(t, "bob (Agent)", created.RegisteredBy)
}

func TestUpdateCustomer_RoleAndProvenanceImmutable(t *testing.T) {
	users := new(MockUserRepository)
	svc := &user.DefaultUserService{Users: users, Policies: new(MockPolicyRepository)}

	stored := &models.User{
		ID:           "u1",
		Username:     "lena",
		Role:         models.RoleUser,
		RegisteredBy: "bob (Agent)",
		Status:       models.StatusActive,
	}
	users.On("GetByID", "u1").Return(stored, nil).Once()
	users.On("Update", mock.AnythingOfType("*models.User")).Return(nil).Once()

	updated, err := svc.UpdateCustomer("u1", user.AccountUpdate{
		Mobile: strPtr("0799999999"),
		Status: strPtr(models.StatusInactive),
	})
	require.NoError(t, err)
	assert.Equal(t, "0799999999", updated.Mobile)
	assert.Equal(t, models.StatusInactive, updated.Status)
	assert.Equal(t, models.RoleUser, updated.Role)
	assert.Equal(t, "bob (Agent)", updated.RegisteredBy)
}

func TestUpdateAgent_NotFound(t *testing.T) {
	users := new(MockUserRepository)
	svc := &user.DefaultUserService{Users: users, Policies: new(MockPolicyRepository)}

	users.On("GetByID", "ghost").Return(nil, nil).Once()

	_, err := svc.UpdateAgent("ghost", user.AccountUpdate{})
	assert.ErrorIs(t, err, user.ErrAgentNotFound)
}

func TestDeleteCustomer_MapsRepoNotFound(t *testing.T) {
	users := new(MockUserRepository)
	svc := &user.DefaultUserService{Users: users, Policies: new(MockPolicyRepository)}

	users.On("Delete", "ghost").Return(userRepo.ErrNotFound).Once()

	err := svc.DeleteCustomer("ghost")
	assert.ErrorIs(t, err, user.ErrCustomerNotFound)
}

func TestAdminDashboard_Counts(t *testing.T) {
	users := new(MockUserRepository)
	policies := new(MockPolicyRepository)
	svc := &user.DefaultUserService{Users: users, Policies: policies}

	policies.On("Count").Return(int64(12), nil).Once()
	users.On("CountAgents").Return(int64(3), nil).Once()
	users.On("CountCustomers").Return(int64(40), nil).Once()
	users.On("CountPendingClaims").Return(int64(5), nil).Once()

	stats, err := svc.AdminDashboard()
	require.NoError(t, err)
	assert.Equal(t, int64(12), stats.Policies)
	assert.Equal(t, int64(3), stats.Agents)
	assert.Equal(t, int64(40), stats.Customers)
	assert.Equal(t, int64(5), stats.Approvals)
}

func TestAgentStats_UsesProvenanceLabel(t *testing.T) {
	users := new(MockUserRepository)
	svc := &user.DefaultUserService{Users: users, Policies: new(MockPolicyRepository)}

	users.On("GetByID", "a1").Return(&models.User{
		ID:               "a1",
		Username:         "bob@agent",
		AssignedPolicies: []string{"rec-1", "rec-2"},
	}, nil).Once()
	users.On("CountRegisteredBy", "bob (Agent)").Return(int64(7), nil).Once()

	stats, err := svc.AgentStats("a1", "bob@agent")
	require.NoError(t, err)
	assert.Equal(t, int64(7), stats.CustomersRegisteredByMe)
	assert.Equal(t, 2, stats.AssignedPolicies)
	assert.NotNil(t, stats.RecentActivities)
}

func TestAgentsWithPolicies_ResolvesNames(t *testing.T) {
	users := new(MockUserRepository)
	policies := new(MockPolicyRepository)
	svc := &user.DefaultUserService{Users: users, Policies: policies}

	users.On("GetAgents", bson.M{"id": 1, "username": 1, "status": 1, "assignedPolicies": 1}).Return([]models.User{
		{ID: "a1", Username: "bob@agent", Status: models.StatusActive, AssignedPolicies: []string{"rec-1"}},
	}, nil).Once()
	policies.On("GetByIDs", []string{"rec-1"}).Return([]models.Policy{
		{ID: "rec-1", PolicyName: "Life Shield"},
	}, nil).Once()

	out, err := svc.AgentsWithPolicies()
	require.NoError(t, err)
	require.Len(t, out, 1)
	require.Len(t, out[0].AssignedPolicies, 1)
	assert.Equal(t, "Life Shield", out[0].AssignedPolicies[0].PolicyName)
}

func TestAgentAssignedPolicies_AgentNotFound(t *testing.T) {
	users := new(MockUserRepository)
	svc := &user.DefaultUserService{Users: users, Policies: new(MockPolicyRepository)}

	users.On("GetByUsername", "ghost@agent").Return(nil, nil).Once()

	_, err := svc.AgentAssignedPolicies("ghost@agent")
	assert.ErrorIs(t, err, user.ErrAgentNotFound)
}
