package user

import "errors"

var (
	// ErrCustomerNotFound means the record id does not resolve to a customer.
	ErrCustomerNotFound = errors.New("customer not found")
	// ErrAgentNotFound means the record id or username does not resolve to an agent.
	ErrAgentNotFound = errors.New("agent not found")
	// ErrEmailExists reports a duplicate email at account creation.
	ErrEmailExists = errors.New("email already exists")
)
