package policy

import (
	"fmt"
	"time"

	"growlife/models"
	"growlife/services/mail"
	"growlife/utils"

	"go.uber.org/zap"
)

// Purchase appends the policy to the customer's purchased list, records an
// in-app purchase notification and sends a confirmation email fire-and-forget.
// The list append and the notification append are two sequential saves, not a
// transaction: a crash in between leaves the purchase without its notification.
func (s *DefaultPolicyService) Purchase(username, policyID string) (*models.Policy, error) {
	customer, err := s.Users.GetByUsername(username)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, ErrCustomerNotFound
	}

	policy, err := s.Policies.GetByID(policyID)
	if err != nil {
		return nil, err
	}
	if policy == nil {
		return nil, ErrPolicyNotFound
	}

	if customer.HasPurchased(policyID) {
		return nil, AlreadyPurchasedError{PolicyName: policy.PolicyName}
	}

	customer.PurchasedPolicies = append(customer.PurchasedPolicies, policyID)
	if err := s.Users.Update(customer); err != nil {
		return nil, err
	}

	customer.Notifications = append(customer.Notifications, models.Notification{
		Message:   fmt.Sprintf("You have successfully purchased the policy: %q (ID: %s).", policy.PolicyName, policy.DisplayID),
		Timestamp: time.Now(),
		Type:      models.NotificationPurchase,
	})
	if err := s.Users.Update(customer); err != nil {
		return nil, err
	}

	if customer.Email != "" {
		subject, html := mail.PurchaseEmail(customer.Username, policy)
		s.Mail.Enqueue(customer.Email, subject, html)
	} else {
		utils.GetLogger().Warn("Customer has no email address, skipped purchase confirmation",
			zap.String("username", username))
	}

	return policy, nil
}

// Assign links a policy to an agent's assigned list.
func (s *DefaultPolicyService) Assign(agentUsername, policyID string) (*models.User, error) {
	policy, err := s.Policies.GetByID(policyID)
	if err != nil {
		return nil, err
	}
	if policy == nil {
		return nil, ErrPolicyNotFound
	}

	agent, err := s.Users.GetByUsername(agentUsername)
	if err != nil {
		return nil, err
	}
	if agent == nil {
		return nil, ErrAgentNotFound
	}

	if agent.HasAssigned(policyID) {
		return nil, ErrAlreadyAssigned
	}

	agent.AssignedPolicies = append(agent.AssignedPolicies, policyID)
	if err := s.Users.Update(agent); err != nil {
		return nil, err
	}
	return agent, nil
}
