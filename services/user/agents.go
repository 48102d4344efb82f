package user

import (
	"growlife/models"

	"go.mongodb.org/mongo-driver/bson"
)

// AgentRef is a minimal agent handle for selection lists.
type AgentRef struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// AssignedPolicyRef is a policy handle inside an agent listing.
type AssignedPolicyRef struct {
	ID         string `json:"id"`
	PolicyName string `json:"policyName"`
}

// AgentWithPolicies is an agent joined with the names of its assigned policies.
type AgentWithPolicies struct {
	ID               string              `json:"id"`
	Username         string              `json:"username"`
	Status           string              `json:"status"`
	AssignedPolicies []AssignedPolicyRef `json:"assignedPolicies"`
}

// AgentList returns username handles for every agent account.
func (s *DefaultUserService) AgentList() ([]AgentRef, error) {
	agents, err := s.Users.GetAgents(bson.M{"id": 1, "username": 1})
	if err != nil {
		return nil, err
	}

	refs := make([]AgentRef, 0, len(agents))
	for _, a := range agents {
		refs = append(refs, AgentRef{ID: a.ID, Username: a.Username})
	}
	return refs, nil
}

// AgentAssignedPolicies resolves the agent's assigned policies, skipping
// dangling references.
func (s *DefaultUserService) AgentAssignedPolicies(username string) ([]models.Policy, error) {
	agent, err := s.Users.GetByUsername(username)
	if err != nil {
		return nil, err
	}
	if agent == nil {
		return nil, ErrAgentNotFound
	}
	return s.Policies.GetByIDs(agent.AssignedPolicies)
}

// AgentsWithPolicies lists every agent with the display names of its assigned
// policies populated.
func (s *DefaultUserService) AgentsWithPolicies() ([]AgentWithPolicies, error) {
	agents, err := s.Users.GetAgents(bson.M{"id": 1, "username": 1, "status": 1, "assignedPolicies": 1})
	if err != nil {
		return nil, err
	}

	out := make([]AgentWithPolicies, 0, len(agents))
	for _, a := range agents {
		policies, err := s.Policies.GetByIDs(a.AssignedPolicies)
		if err != nil {
			return nil, err
		}
		refs := make([]AssignedPolicyRef, 0, len(policies))
		for _, p := range policies {
			refs = append(refs, AssignedPolicyRef{ID: p.ID, PolicyName: p.PolicyName})
		}
		out = append(out, AgentWithPolicies{
			ID:               a.ID,
			Username:         a.Username,
			Status:           a.Status,
			AssignedPolicies: refs,
		})
	}
	return out, nil
}
