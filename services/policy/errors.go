package policy

import (
	"errors"
	"fmt"
)

var (
	// ErrPolicyNotFound means the record id does not resolve.
	ErrPolicyNotFound = errors.New("policy not found")
	// ErrCustomerNotFound means the username does not resolve to an account.
	ErrCustomerNotFound = errors.New("customer not found")
	// ErrAgentNotFound means the username does not resolve to an agent account.
	ErrAgentNotFound = errors.New("agent not found")
	// ErrAlreadyAssigned reports a duplicate agent assignment.
	ErrAlreadyAssigned = errors.New("policy is already assigned to this agent")
	// ErrInvalidCategory rejects a category outside the product vocabulary.
	ErrInvalidCategory = errors.New("category must be one of: auto, life")
)

// AlreadyPurchasedError reports a duplicate purchase, carrying the policy
// name for the conflict message.
type AlreadyPurchasedError struct {
	PolicyName string
}

func (e AlreadyPurchasedError) Error() string {
	return fmt.Sprintf("policy %q is already in your purchased policies", e.PolicyName)
}
