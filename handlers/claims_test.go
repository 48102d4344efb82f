package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"growlife/handlers"
	"growlife/middleware"
	"growlife/models"
	"growlife/services/claim"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockClaimService struct {
	mock.Mock
}

func (m *MockClaimService) File(userID string, in claim.FileClaimInput) (*models.Claim, error) {
	args := m.Called(userID, in)
	var c *models.Claim
	if v := args.Get(0); v != nil {
		c = v.(*models.Claim)
	}
	return c, args.Error(1)
}

func (m *MockClaimService) UserPolicies(userID string) ([]claim.PolicyOption, error) {
	args := m.Called(userID)
	var opts []claim.PolicyOption
	if v := args.Get(0); v != nil {
		opts = v.([]claim.PolicyOption)
	}
	return opts, args.Error(1)
}

func (m *MockClaimService) ListAll() ([]claim.ClaimView, error) {
	args := m.Called()
	var views []claim.ClaimView
	if v := args.Get(0); v != nil {
		views = v.([]claim.ClaimView)
	}
	return views, args.Error(1)
}

func (m *MockClaimService) ListForUser(userID string) ([]claim.ClaimView, error) {
	args := m.Called(userID)
	var views []claim.ClaimView
	if v := args.Get(0); v != nil {
		views = v.([]claim.ClaimView)
	}
	return views, args.Error(1)
}

func (m *MockClaimService) Get(userID, claimID string) (*claim.ClaimView, error) {
	args := m.Called(userID, claimID)
	var view *claim.ClaimView
	if v := args.Get(0); v != nil {
		view = v.(*claim.ClaimView)
	}
	return view, args.Error(1)
}

func (m *MockClaimService) SetStatus(claimID, status string) (bool, error) {
	args := m.Called(claimID, status)
	return args.Bool(0), args.Error(1)
}

func (m *MockClaimService) Delete(claimID string) error {
	args := m.Called(claimID)
	return args.Error(0)
}

func newClaimRouter(svc claim.ClaimService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := &handlers.ClaimHandler{Service: svc}

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.CtxUserID, "u1")
		c.Next()
	})
	r.GET("/api/claims/user-policies", h.UserPoliciesHandler)
	r.GET("/api/claims/user", h.UserClaimsHandler)
	r.GET("/api/claims/all", h.AllClaimsHandler)
	r.GET("/api/claims/:claimId", h.GetClaimHandler)
	return r
}

func getJSON(t *testing.T, r *gin.Engine, path string) (int, map[string]json.RawMessage) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	body := map[string]json.RawMessage{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec.Code, body
}

func TestUserPoliciesHandler_WrapsPoliciesEnvelope(t *testing.T) {
	svc := new(MockClaimService)
	svc.On("UserPolicies", "u1").Return([]claim.PolicyOption{
		{ID: "p1", DisplayID: "POL-123-AB", PolicyName: "Crop Cover"},
	}, nil).Once()

	code, body := getJSON(t, newClaimRouter(svc), "/api/claims/user-policies")
	assert.Equal(t, http.StatusOK, code)
	require.Contains(t, body, "policies")

	var opts []claim.PolicyOption
	require.NoError(t, json.Unmarshal(body["policies"], &opts))
	assert.Len(t, opts, 1)
	assert.Equal(t, "Crop Cover", opts[0].PolicyName)
}

func TestAllClaimsHandler_WrapsClaimsEnvelope(t *testing.T) {
	svc := new(MockClaimService)
	svc.On("ListAll").Return([]claim.ClaimView{
		{Claim: models.Claim{ClaimID: "c1", Status: models.ClaimPending}, Username: "lena", PolicyName: "Crop Cover"},
	}, nil).Once()

	code, body := getJSON(t, newClaimRouter(svc), "/api/claims/all")
	assert.Equal(t, http.StatusOK, code)
	require.Contains(t, body, "claims")

	var views []claim.ClaimView
	require.NoError(t, json.Unmarshal(body["claims"], &views))
	assert.Len(t, views, 1)
	assert.Equal(t, "c1", views[0].ClaimID)
}

func TestUserClaimsHandler_WrapsClaimsEnvelope(t *testing.T) {
	svc := new(MockClaimService)
	svc.On("ListForUser", "u1").Return([]claim.ClaimView{
		{Claim: models.Claim{ClaimID: "c1"}, PolicyName: "Crop Cover"},
	}, nil).Once()

	code, body := getJSON(t, newClaimRouter(svc), "/api/claims/user")
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, "claims")
}

func TestGetClaimHandler_WrapsClaimEnvelope(t *testing.T) {
	svc := new(MockClaimService)
	svc.On("Get", "u1", "c1").Return(&claim.ClaimView{
		Claim: models.Claim{ClaimID: "c1"}, PolicyName: "Crop Cover",
	}, nil).Once()

	code, body := getJSON(t, newClaimRouter(svc), "/api/claims/c1")
	assert.Equal(t, http.StatusOK, code)
	require.Contains(t, body, "claim")

	var view claim.ClaimView
	require.NoError(t, json.Unmarshal(body["claim"], &view))
	assert.Equal(t, "c1", view.ClaimID)
}
