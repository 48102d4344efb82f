package claim

import (
	"errors"
	"fmt"
)

var (
	// ErrUserNotFound means the authenticated account no longer resolves.
	ErrUserNotFound = errors.New("user not found")
	// ErrPolicyNotLinked means the policy number is not among the account's purchases.
	ErrPolicyNotLinked = errors.New("the provided policy number is not associated with your account")
	// ErrPolicyExpired blocks claims against a lapsed policy.
	ErrPolicyExpired = errors.New("this policy has expired and claims cannot be filed against it")
	// ErrClaimNotFound means no account holds a claim with the given id.
	ErrClaimNotFound = errors.New("claim not found")
	// ErrUnknownStatus rejects a status value outside the claim vocabulary.
	ErrUnknownStatus = errors.New("unknown claim status")
)

// ActiveClaimError reports that the policy already has a claim in flight.
// It carries the existing claim so callers can hand its id back.
type ActiveClaimError struct {
	ClaimID string
	Status  string
}

func (e ActiveClaimError) Error() string {
	return fmt.Sprintf("an active claim (%s) already exists for this policy", e.Status)
}

// InvalidTransitionError rejects a status change the lifecycle does not allow.
type InvalidTransitionError struct {
	From string
	To   string
}

func (e InvalidTransitionError) Error() string {
	return fmt.Sprintf("claim status cannot change from %s to %s", e.From, e.To)
}
