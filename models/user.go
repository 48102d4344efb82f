package models

import "time"

// Account roles.
const (
	RoleUser  = "user"
	RoleAgent = "agent"
	RoleAdmin = "admin"
)

// Account statuses.
const (
	StatusActive   = "Active"
	StatusInactive = "Inactive"
)

// Claim statuses.
const (
	ClaimPending     = "Pending"
	ClaimApproved    = "Approved"
	ClaimRejected    = "Rejected"
	ClaimUnderReview = "Under Review"
	ClaimSettled     = "Settled"
)

// Notification types.
const (
	NotificationPurchase   = "purchase"
	NotificationExpiration = "expiration"
)

// Claim is a claim filed against one of the holder's purchased policies.
// Claims live inside the user document rather than in their own collection.
type Claim struct {
	ClaimID             string    `bson:"claimId" json:"claimId"`
	PolicyNumber        string    `bson:"policyNumber" json:"policyNumber"`
	IncidentDate        time.Time `bson:"incidentDate" json:"incidentDate"`
	IncidentDetails     string    `bson:"incidentDetails" json:"incidentDetails"`
	Amount              float64   `bson:"amount" json:"amount"`
	SupportingDocuments []string  `bson:"supportingDocuments" json:"supportingDocuments"`
	Status              string    `bson:"status" json:"status"`
	SubmittedAt         time.Time `bson:"submittedAt" json:"submittedAt"`
}

// Active reports whether the claim still blocks a new claim on the same policy.
func (c Claim) Active() bool {
	return c.Status == ClaimPending || c.Status == ClaimUnderReview
}

// Notification is an in-app message embedded in the user document.
type Notification struct {
	Message   string    `bson:"message" json:"message"`
	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
	IsRead    bool      `bson:"isRead" json:"isRead"`
	Type      string    `bson:"type" json:"type"`
}

// User represents any account: customer, agent or admin. The role is derived
// from the username shape at creation time and never changes afterwards.
type User struct {
	ID                string         `bson:"id" json:"id"`
	Username          string         `bson:"username" json:"username"`
	DateOfBirth       *time.Time     `bson:"dateofbirth,omitempty" json:"dateofbirth,omitempty"`
	Mobile            string         `bson:"mobile" json:"mobile"`
	Email             string         `bson:"email" json:"email"`
	PasswordHash      string         `bson:"passwordHash" json:"-"`
	File              string         `bson:"file,omitempty" json:"file,omitempty"`
	Role              string         `bson:"role" json:"role"`
	Status            string         `bson:"status" json:"status"`
	PurchasedPolicies []string       `bson:"purchasedPolicies" json:"purchasedPolicies"`
	AssignedPolicies  []string       `bson:"assignedPolicies" json:"assignedPolicies"`
	Claims            []Claim        `bson:"claims" json:"claims,omitempty"`
	Notifications     []Notification `bson:"notifications" json:"notifications"`
	RegisteredBy      string         `bson:"registeredBy" json:"registeredBy"`
	CreatedAt         time.Time      `bson:"createdAt" json:"createdAt"`
	UpdatedAt         time.Time      `bson:"updatedAt" json:"updatedAt"`
}

// ActiveClaimFor returns the active claim for the given policy display id, if any.
func (u *User) ActiveClaimFor(policyNumber string) *Claim {
	for i := range u.Claims {
		if u.Claims[i].PolicyNumber == policyNumber && u.Claims[i].Active() {
			return &u.Claims[i]
		}
	}
	return nil
}

// HasPurchased reports whether the policy record id is in the purchased list.
func (u *User) HasPurchased(policyID string) bool {
	for _, id := range u.PurchasedPolicies {
		if id == policyID {
			return true
		}
	}
	return false
}

// HasAssigned reports whether the policy record id is in the assigned list.
func (u *User) HasAssigned(policyID string) bool {
	for _, id := range u.AssignedPolicies {
		if id == policyID {
			return true
		}
	}
	return false
}
