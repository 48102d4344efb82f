package userRepo

import (
	"errors"

	"growlife/models"

	"go.mongodb.org/mongo-driver/bson"
)

// ErrNotFound is returned when no user document matches the query.
var ErrNotFound = errors.New("user not found")

// UserRepository defines persistence operations for accounts.
type UserRepository interface {
	Create(user *models.User) error
	Update(user *models.User) error
	Delete(id string) error

	GetByID(id string) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetAll() ([]models.User, error)

	// GetCustomers returns every account that is neither the admin nor an agent.
	GetCustomers() ([]models.User, error)
	// GetAgents returns accounts whose username marks them as agents.
	// Pass nil projection for full documents.
	GetAgents(projection bson.M) ([]models.User, error)

	// GetByClaimID locates the account owning the claim with the given id.
	GetByClaimID(claimID string) (*models.User, error)
	// RemoveClaim pulls the claim out of its owning account.
	RemoveClaim(claimID string) error

	CountAgents() (int64, error)
	CountCustomers() (int64, error)
	CountPendingClaims() (int64, error)
	CountRegisteredBy(label string) (int64, error)
}
