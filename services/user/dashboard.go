package user

import (
	"fmt"
	"strings"

	"growlife/models"
)

// DashboardStats are the admin landing-page aggregates.
type DashboardStats struct {
	Policies  int64 `json:"policies"`
	Agents    int64 `json:"agents"`
	Customers int64 `json:"customers"`
	Approvals int64 `json:"approvals"`
}

// AgentStats are the per-agent dashboard aggregates.
type AgentStats struct {
	CustomersRegisteredByMe int64             `json:"customersRegisteredByMe"`
	AssignedPolicies        int               `json:"assignedPolicies"`
	TargetCustomers         int               `json:"targetCustomers"`
	AchievedCustomers       int               `json:"achievedCustomers"`
	RecentActivities        []models.Activity `json:"recentActivities"`
}

// AdminDashboard computes the admin aggregate counts.
func (s *DefaultUserService) AdminDashboard() (*DashboardStats, error) {
	policies, err := s.Policies.Count()
	if err != nil {
		return nil, err
	}
	agents, err := s.Users.CountAgents()
	if err != nil {
		return nil, err
	}
	customers, err := s.Users.CountCustomers()
	if err != nil {
		return nil, err
	}
	pending, err := s.Users.CountPendingClaims()
	if err != nil {
		return nil, err
	}

	return &DashboardStats{
		Policies:  policies,
		Agents:    agents,
		Customers: customers,
		Approvals: pending,
	}, nil
}

// AgentStats computes the agent's own dashboard numbers. Customers the agent
// registered are matched on the "<name> (Agent)" provenance label written at
// registration time.
func (s *DefaultUserService) AgentStats(agentID, agentUsername string) (*AgentStats, error) {
	agent, err := s.Users.GetByID(agentID)
	if err != nil {
		return nil, err
	}
	if agent == nil {
		return nil, ErrAgentNotFound
	}

	label := fmt.Sprintf("%s (Agent)", strings.SplitN(agentUsername, "@", 2)[0])
	registered, err := s.Users.CountRegisteredBy(label)
	if err != nil {
		return nil, err
	}

	return &AgentStats{
		CustomersRegisteredByMe: registered,
		AssignedPolicies:        len(agent.AssignedPolicies),
		RecentActivities:        []models.Activity{},
	}, nil
}
