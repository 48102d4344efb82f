package policy

import (
	"errors"
	"time"

	policyRepo "growlife/database/repository/policy"
	userRepo "growlife/database/repository/user"
	"growlife/models"
	"growlife/services/mail"

	"github.com/google/uuid"
)

// PolicyInput is the payload for creating or editing a policy. The display id
// is never part of it: once assigned it cannot be rewritten.
type PolicyInput struct {
	PolicyName        string
	PolicyDescription string
	Premium           string
	PolicySpecs       []string
	Category          string
	Customer          string
	Agent             string
	ValidUntil        time.Time
}

// PolicyService covers the product catalog plus purchase, assignment and the
// notification feed.
type PolicyService interface {
	List(category string) ([]models.Policy, error)
	Get(id string) (*models.Policy, error)
	Create(in PolicyInput) (*models.Policy, error)
	Update(id string, in PolicyInput) (*models.Policy, error)
	Delete(id string) error

	Purchase(username, policyID string) (*models.Policy, error)
	Assign(agentUsername, policyID string) (*models.User, error)

	CustomerProfile(username string) (*CustomerProfile, error)
	AllPurchased() ([]CustomerWithPolicies, error)
	Notifications(username string) ([]NotificationView, error)
}

// DefaultPolicyService is the production PolicyService.
type DefaultPolicyService struct {
	Policies policyRepo.PolicyRepository
	Users    userRepo.UserRepository
	Mail     *mail.Service
}

// List returns the catalog, optionally restricted to a category.
func (s *DefaultPolicyService) List(category string) ([]models.Policy, error) {
	return s.Policies.GetAll(category)
}

// Get returns one policy by record id.
func (s *DefaultPolicyService) Get(id string) (*models.Policy, error) {
	p, err := s.Policies.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrPolicyNotFound
	}
	return p, nil
}

// Create adds a product to the catalog. The display id is generated by the
// repository when absent.
func (s *DefaultPolicyService) Create(in PolicyInput) (*models.Policy, error) {
	if !models.ValidCategory(in.Category) {
		return nil, ErrInvalidCategory
	}

	p := models.Policy{
		ID:                uuid.New().String(),
		PolicyName:        in.PolicyName,
		PolicyDescription: in.PolicyDescription,
		Premium:           in.Premium,
		PolicySpecs:       in.PolicySpecs,
		Category:          in.Category,
		Customer:          labelOrPlaceholder(in.Customer),
		Agent:             labelOrPlaceholder(in.Agent),
		ValidUntil:        in.ValidUntil,
	}
	if p.PolicySpecs == nil {
		p.PolicySpecs = []string{}
	}

	if err := s.Policies.Create(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Update rewrites the mutable fields of a policy. Category and display id
// are fixed at creation.
func (s *DefaultPolicyService) Update(id string, in PolicyInput) (*models.Policy, error) {
	existing, err := s.Policies.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrPolicyNotFound
	}

	existing.PolicyName = in.PolicyName
	existing.PolicyDescription = in.PolicyDescription
	existing.Premium = in.Premium
	existing.PolicySpecs = in.PolicySpecs
	existing.Customer = labelOrPlaceholder(in.Customer)
	existing.Agent = labelOrPlaceholder(in.Agent)
	existing.ValidUntil = in.ValidUntil

	if err := s.Policies.Update(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// Delete removes the policy. Accounts referencing it keep their now-dangling
// references; reads filter those defensively.
func (s *DefaultPolicyService) Delete(id string) error {
	err := s.Policies.Delete(id)
	if errors.Is(err, policyRepo.ErrNotFound) {
		return ErrPolicyNotFound
	}
	return err
}

func labelOrPlaceholder(label string) string {
	if label == "" {
		return models.PlaceholderLabel
	}
	return label
}
