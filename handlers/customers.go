package handlers

import (
	"errors"
	"net/http"
	"time"

	"growlife/services/user"
	"growlife/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AccountHandler serves the administrative customer and agent CRUD endpoints.
type AccountHandler struct {
	Service user.UserService
}

func NewAccountHandler(service user.UserService) *AccountHandler {
	return &AccountHandler{Service: service}
}

type accountCreateRequest struct {
	Username     string `json:"username" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	DateOfBirth  string `json:"dateofbirth"`
	Mobile       string `json:"mobile"`
	Password     string `json:"password" binding:"required"`
	Status       string `json:"status"`
	RegisteredBy string `json:"registeredBy"`
}

type accountUpdateRequest struct {
	Username    *string `json:"username"`
	Email       *string `json:"email"`
	DateOfBirth *string `json:"dateofbirth"`
	Mobile      *string `json:"mobile"`
	Password    *string `json:"password"`
	Status      *string `json:"status"`
}

func parseAccountDate(raw string) (*time.Time, error) {
	parsed, err := time.Parse("2006-01-02", raw)
	if err != nil {
		parsed, err = time.Parse(time.RFC3339, raw)
		if err != nil {
			return nil, err
		}
	}
	return &parsed, nil
}

func (r accountCreateRequest) toInput() (user.AccountInput, error) {
	in := user.AccountInput{
		Username:     r.Username,
		Email:        r.Email,
		Mobile:       r.Mobile,
		Password:     r.Password,
		Status:       r.Status,
		RegisteredBy: r.RegisteredBy,
	}
	if r.DateOfBirth != "" {
		dob, err := parseAccountDate(r.DateOfBirth)
		if err != nil {
			return in, err
		}
		in.DateOfBirth = dob
	}
	return in, nil
}

func (r accountUpdateRequest) toUpdate() (user.AccountUpdate, error) {
	upd := user.AccountUpdate{
		Username: r.Username,
		Email:    r.Email,
		Mobile:   r.Mobile,
		Password: r.Password,
		Status:   r.Status,
	}
	if r.DateOfBirth != nil && *r.DateOfBirth != "" {
		dob, err := parseAccountDate(*r.DateOfBirth)
		if err != nil {
			return upd, err
		}
		upd.DateOfBirth = dob
	}
	return upd, nil
}

// ListCustomersHandler handles GET /api/customers.
func (h *AccountHandler) ListCustomersHandler(c *gin.Context) {
	customers, err := h.Service.GetCustomers()
	if err != nil {
		utils.GetLogger().Error("Failed to list customers", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch customers"})
		return
	}
	c.JSON(http.StatusOK, customers)
}

// CreateCustomerHandler handles POST /api/customers.
func (h *AccountHandler) CreateCustomerHandler(c *gin.Context) {
	var req accountCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username, email and password are required."})
		return
	}
	in, err := req.toInput()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date of birth."})
		return
	}

	created, err := h.Service.CreateCustomer(in)
	switch {
	case err == nil:
		c.JSON(http.StatusCreated, created)
	case errors.Is(err, user.ErrEmailExists):
		c.JSON(http.StatusConflict, gin.H{"error": "Email already exists"})
	default:
		utils.GetLogger().Error("Failed to create customer", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create customer"})
	}
}

// UpdateCustomerHandler handles PUT /api/customers/:id.
func (h *AccountHandler) UpdateCustomerHandler(c *gin.Context) {
	var req accountUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body."})
		return
	}
	upd, err := req.toUpdate()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date of birth."})
		return
	}

	updated, err := h.Service.UpdateCustomer(c.Param("id"), upd)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, updated)
	case errors.Is(err, user.ErrCustomerNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
	default:
		utils.GetLogger().Error("Failed to update customer", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update customer"})
	}
}

// DeleteCustomerHandler handles DELETE /api/customers/:id.
func (h *AccountHandler) DeleteCustomerHandler(c *gin.Context) {
	err := h.Service.DeleteCustomer(c.Param("id"))
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"message": "Customer deleted successfully"})
	case errors.Is(err, user.ErrCustomerNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
	default:
		utils.GetLogger().Error("Failed to delete customer", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete customer"})
	}
}

// ListAgentsHandler handles GET /api/agents.
func (h *AccountHandler) ListAgentsHandler(c *gin.Context) {
	agents, err := h.Service.GetAgents()
	if err != nil {
		utils.GetLogger().Error("Failed to list agents", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch agents"})
		return
	}
	c.JSON(http.StatusOK, agents)
}

// CreateAgentHandler handles POST /api/agents.
func (h *AccountHandler) CreateAgentHandler(c *gin.Context) {
	var req accountCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username, email and password are required."})
		return
	}
	in, err := req.toInput()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date of birth."})
		return
	}

	created, err := h.Service.CreateAgent(in)
	switch {
	case err == nil:
		c.JSON(http.StatusCreated, created)
	case errors.Is(err, user.ErrEmailExists):
		c.JSON(http.StatusConflict, gin.H{"error": "Email already exists"})
	default:
		utils.GetLogger().Error("Failed to create agent", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create agent"})
	}
}

// UpdateAgentHandler handles PUT /api/agents/:id.
func (h *AccountHandler) UpdateAgentHandler(c *gin.Context) {
	var req accountUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body."})
		return
	}
	upd, err := req.toUpdate()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date of birth."})
		return
	}

	updated, err := h.Service.UpdateAgent(c.Param("id"), upd)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, updated)
	case errors.Is(err, user.ErrAgentNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Agent not found"})
	default:
		utils.GetLogger().Error("Failed to update agent", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update agent"})
	}
}

// DeleteAgentHandler handles DELETE /api/agents/:id.
func (h *AccountHandler) DeleteAgentHandler(c *gin.Context) {
	err := h.Service.DeleteAgent(c.Param("id"))
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"message": "Agent deleted successfully"})
	case errors.Is(err, user.ErrAgentNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Agent not found"})
	default:
		utils.GetLogger().Error("Failed to delete agent", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete agent"})
	}
}
