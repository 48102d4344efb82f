package policy

import (
	"sort"

	"growlife/models"
)

// PurchasedPolicyView is a purchased policy annotated with the status of the
// holder's most recent claim against it.
type PurchasedPolicyView struct {
	models.Policy
	ClaimStatus string `json:"claimStatus"`
}

// CustomerProfile is an account with its purchased policies resolved and
// annotated. Claims are stripped from the response; claim access goes through
// the claims endpoints.
type CustomerProfile struct {
	models.User
	PurchasedPolicies []PurchasedPolicyView `json:"purchasedPolicies"`
}

// CustomerWithPolicies is the projection used by the all-purchased listing.
type CustomerWithPolicies struct {
	ID                string          `json:"id"`
	Username          string          `json:"username"`
	Email             string          `json:"email"`
	Mobile            string          `json:"mobile"`
	PurchasedPolicies []models.Policy `json:"purchasedPolicies"`
}

// CustomerProfile resolves the account's purchased policies (skipping dangling
// references) and annotates each with the latest claim status for that policy,
// or "Not Claimed" when no claim exists.
func (s *DefaultPolicyService) CustomerProfile(username string) (*CustomerProfile, error) {
	user, err := s.Users.GetByUsername(username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrCustomerNotFound
	}

	policies, err := s.Policies.GetByIDs(user.PurchasedPolicies)
	if err != nil {
		return nil, err
	}

	views := make([]PurchasedPolicyView, 0, len(policies))
	for _, p := range policies {
		views = append(views, PurchasedPolicyView{
			Policy:      p,
			ClaimStatus: latestClaimStatus(user.Claims, p.DisplayID),
		})
	}

	profile := CustomerProfile{User: *user, PurchasedPolicies: views}
	profile.Claims = nil
	return &profile, nil
}

// latestClaimStatus picks the status of the most recently submitted claim for
// the policy display id.
func latestClaimStatus(claims []models.Claim, displayID string) string {
	matching := make([]models.Claim, 0)
	for _, c := range claims {
		if c.PolicyNumber == displayID {
			matching = append(matching, c)
		}
	}
	if len(matching) == 0 {
		return "Not Claimed"
	}
	sort.SliceStable(matching, func(i, j int) bool {
		return matching[i].SubmittedAt.After(matching[j].SubmittedAt)
	})
	return matching[0].Status
}

// AllPurchased lists every account holding at least one resolvable purchased
// policy, with the policies populated.
func (s *DefaultPolicyService) AllPurchased() ([]CustomerWithPolicies, error) {
	users, err := s.Users.GetAll()
	if err != nil {
		return nil, err
	}

	var out []CustomerWithPolicies
	for _, u := range users {
		if len(u.PurchasedPolicies) == 0 {
			continue
		}
		policies, err := s.Policies.GetByIDs(u.PurchasedPolicies)
		if err != nil {
			return nil, err
		}
		if len(policies) == 0 {
			continue
		}
		out = append(out, CustomerWithPolicies{
			ID:                u.ID,
			Username:          u.Username,
			Email:             u.Email,
			Mobile:            u.Mobile,
			PurchasedPolicies: policies,
		})
	}
	return out, nil
}
