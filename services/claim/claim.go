package claim

import (
	"errors"
	"sort"
	"time"

	policyRepo "growlife/database/repository/policy"
	userRepo "growlife/database/repository/user"
	"growlife/models"
	"growlife/services/mail"

	"github.com/google/uuid"
)

// missingPolicyName is rendered when a claim's policy reference no longer
// resolves (the policy was deleted after the claim was filed).
const missingPolicyName = "N/A"

// transitions is the allowed claim-status graph. Terminal states map to an
// empty set; a same-status update is treated as an idempotent no-op before
// this table is consulted.
var transitions = map[string][]string{
	models.ClaimPending:     {models.ClaimUnderReview, models.ClaimApproved, models.ClaimRejected, models.ClaimSettled},
	models.ClaimUnderReview: {models.ClaimApproved, models.ClaimRejected, models.ClaimSettled},
	models.ClaimApproved:    {},
	models.ClaimRejected:    {},
	models.ClaimSettled:     {},
}

// CanTransition reports whether a claim may move from one status to another.
func CanTransition(from, to string) bool {
	for _, allowed := range transitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// KnownStatus reports whether the value is part of the claim vocabulary.
func KnownStatus(status string) bool {
	_, ok := transitions[status]
	return ok
}

// FileClaimInput is the validated payload for filing a claim.
type FileClaimInput struct {
	PolicyNumber        string
	IncidentDate        time.Time
	IncidentDetails     string
	Amount              float64
	SupportingDocuments []string
}

// PolicyOption is one entry of the claim-form policy dropdown.
type PolicyOption struct {
	ID         string `json:"id"`
	DisplayID  string `json:"displayId"`
	PolicyName string `json:"policyName"`
}

// ClaimView is a claim joined with its owner and policy name for review lists.
type ClaimView struct {
	models.Claim
	UserID     string `json:"userId,omitempty"`
	Username   string `json:"username,omitempty"`
	PolicyName string `json:"policyName"`
}

// ClaimService governs creation, listing and status transitions of claims.
type ClaimService interface {
	File(userID string, in FileClaimInput) (*models.Claim, error)
	UserPolicies(userID string) ([]PolicyOption, error)
	ListAll() ([]ClaimView, error)
	ListForUser(userID string) ([]ClaimView, error)
	Get(userID, claimID string) (*ClaimView, error)
	// SetStatus reports whether the claim actually changed; a same-status
	// update succeeds without touching anything.
	SetStatus(claimID, status string) (bool, error)
	Delete(claimID string) error
}

// DefaultClaimService is the production ClaimService.
type DefaultClaimService struct {
	Users    userRepo.UserRepository
	Policies policyRepo.PolicyRepository
	Mail     *mail.Service
}

// File validates and records a new claim with status Pending. The policy must
// be among the account's purchases and still valid (end date inclusive through
// end of day), and the policy must have no other active claim on this account.
func (s *DefaultClaimService) File(userID string, in FileClaimInput) (*models.Claim, error) {
	user, err := s.Users.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	purchased, err := s.Policies.GetByIDs(user.PurchasedPolicies)
	if err != nil {
		return nil, err
	}
	var policy *models.Policy
	for i := range purchased {
		if purchased[i].DisplayID == in.PolicyNumber {
			policy = &purchased[i]
			break
		}
	}
	if policy == nil {
		return nil, ErrPolicyNotLinked
	}

	if policy.ExpiredAt(time.Now()) {
		return nil, ErrPolicyExpired
	}

	if existing := user.ActiveClaimFor(in.PolicyNumber); existing != nil {
		return nil, ActiveClaimError{ClaimID: existing.ClaimID, Status: existing.Status}
	}

	newClaim := models.Claim{
		ClaimID:             uuid.New().String(),
		PolicyNumber:        in.PolicyNumber,
		IncidentDate:        in.IncidentDate,
		IncidentDetails:     in.IncidentDetails,
		Amount:              in.Amount,
		SupportingDocuments: in.SupportingDocuments,
		Status:              models.ClaimPending,
		SubmittedAt:         time.Now(),
	}
	if newClaim.SupportingDocuments == nil {
		newClaim.SupportingDocuments = []string{}
	}

	user.Claims = append(user.Claims, newClaim)
	if err := s.Users.Update(user); err != nil {
		return nil, err
	}

	subject, html := mail.ClaimSubmittedEmail(user.Username, in.PolicyNumber, newClaim.ClaimID)
	s.Mail.Enqueue(user.Email, subject, html)

	return &newClaim, nil
}

// UserPolicies returns the claim-form dropdown entries for the account's
// purchased policies.
func (s *DefaultClaimService) UserPolicies(userID string) ([]PolicyOption, error) {
	user, err := s.Users.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	policies, err := s.Policies.GetByIDs(user.PurchasedPolicies)
	if err != nil {
		return nil, err
	}

	options := make([]PolicyOption, 0, len(policies))
	for _, p := range policies {
		options = append(options, PolicyOption{ID: p.ID, DisplayID: p.DisplayID, PolicyName: p.PolicyName})
	}
	return options, nil
}

// resolvePolicyName maps a policy number to its display name, with a sentinel
// for dangling references.
func (s *DefaultClaimService) resolvePolicyName(policyNumber string) string {
	policy, err := s.Policies.GetByDisplayID(policyNumber)
	if err != nil || policy == nil {
		return missingPolicyName
	}
	return policy.PolicyName
}

func sortBySubmittedDesc(views []ClaimView) {
	sort.SliceStable(views, func(i, j int) bool {
		return views[i].SubmittedAt.After(views[j].SubmittedAt)
	})
}

// ListAll returns every claim in the system joined with owner and policy name,
// most recent first.
func (s *DefaultClaimService) ListAll() ([]ClaimView, error) {
	users, err := s.Users.GetAll()
	if err != nil {
		return nil, err
	}

	var views []ClaimView
	for _, u := range users {
		for _, c := range u.Claims {
			views = append(views, ClaimView{
				Claim:      c,
				UserID:     u.ID,
				Username:   u.Username,
				PolicyName: s.resolvePolicyName(c.PolicyNumber),
			})
		}
	}
	sortBySubmittedDesc(views)
	return views, nil
}

// ListForUser returns the account's own claims, most recent first.
func (s *DefaultClaimService) ListForUser(userID string) ([]ClaimView, error) {
	user, err := s.Users.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	views := make([]ClaimView, 0, len(user.Claims))
	for _, c := range user.Claims {
		views = append(views, ClaimView{
			Claim:      c,
			PolicyName: s.resolvePolicyName(c.PolicyNumber),
		})
	}
	sortBySubmittedDesc(views)
	return views, nil
}

// Get returns one of the account's claims by id.
func (s *DefaultClaimService) Get(userID, claimID string) (*ClaimView, error) {
	user, err := s.Users.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	for _, c := range user.Claims {
		if c.ClaimID == claimID {
			return &ClaimView{
				Claim:      c,
				PolicyName: s.resolvePolicyName(c.PolicyNumber),
			}, nil
		}
	}
	return nil, ErrClaimNotFound
}

// SetStatus moves a claim along the lifecycle. Setting the current status
// again is a no-op success; any other move must be allowed by the transition
// table. A real change persists and notifies the holder fire-and-forget.
func (s *DefaultClaimService) SetStatus(claimID, status string) (bool, error) {
	if !KnownStatus(status) {
		return false, ErrUnknownStatus
	}

	user, err := s.Users.GetByClaimID(claimID)
	if err != nil {
		return false, err
	}
	if user == nil {
		return false, ErrClaimNotFound
	}

	var target *models.Claim
	for i := range user.Claims {
		if user.Claims[i].ClaimID == claimID {
			target = &user.Claims[i]
			break
		}
	}
	if target == nil {
		return false, ErrClaimNotFound
	}

	oldStatus := target.Status
	if oldStatus == status {
		return false, nil
	}
	if !CanTransition(oldStatus, status) {
		return false, InvalidTransitionError{From: oldStatus, To: status}
	}

	target.Status = status
	if err := s.Users.Update(user); err != nil {
		return false, err
	}

	subject, html := mail.ClaimStatusEmail(user.Username, claimID, target.PolicyNumber, oldStatus, status)
	s.Mail.Enqueue(user.Email, subject, html)

	return true, nil
}

// Delete removes the claim from its owning account.
func (s *DefaultClaimService) Delete(claimID string) error {
	err := s.Users.RemoveClaim(claimID)
	if errors.Is(err, userRepo.ErrNotFound) {
		return ErrClaimNotFound
	}
	return err
}
