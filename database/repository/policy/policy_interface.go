package policyRepo

import (
	"errors"

	"growlife/models"
)

// ErrNotFound is returned when no policy document matches the query.
var ErrNotFound = errors.New("policy not found")

// PolicyRepository defines persistence operations for insurance products.
type PolicyRepository interface {
	// Create inserts the policy, assigning a display id when none is set.
	Create(policy *models.Policy) error
	// Update rewrites the mutable fields. The display id is never touched.
	Update(policy *models.Policy) error
	Delete(id string) error

	GetByID(id string) (*models.Policy, error)
	GetByDisplayID(displayID string) (*models.Policy, error)
	// GetAll lists policies, optionally restricted to a category.
	GetAll(category string) ([]models.Policy, error)
	// GetByIDs resolves a list of record ids, silently skipping dangling ones.
	GetByIDs(ids []string) ([]models.Policy, error)

	Count() (int64, error)
}
