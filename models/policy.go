package models

import (
	"fmt"
	"math/rand"
	"time"
)

// Policy categories.
const (
	CategoryAuto = "auto"
	CategoryLife = "life"
)

// PlaceholderLabel is the default for the denormalized customer/agent labels.
const PlaceholderLabel = "--"

// Policy is an insurance product. DisplayID is the human-facing policy code
// printed on documents and referenced by claims; it is assigned once at
// creation and never changes, while ID is the internal record key.
type Policy struct {
	ID                string    `bson:"id" json:"id"`
	PolicyName        string    `bson:"policyName" json:"policyName"`
	PolicyDescription string    `bson:"policyDescription" json:"policyDescription"`
	Premium           string    `bson:"premium" json:"premium"`
	PolicySpecs       []string  `bson:"policySpecs" json:"policySpecs"`
	Category          string    `bson:"category" json:"category"`
	Customer          string    `bson:"customer" json:"customer"`
	Agent             string    `bson:"agent" json:"agent"`
	DisplayID         string    `bson:"displayId" json:"displayId"`
	ValidUntil        time.Time `bson:"validUntil" json:"validUntil"`
	CreatedAt         time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt         time.Time `bson:"updatedAt" json:"updatedAt"`
}

// NewDisplayID generates a fresh policy code: prefix, creation timestamp in
// milliseconds, random suffix.
func NewDisplayID() string {
	return fmt.Sprintf("POL-%d-%d", time.Now().UnixMilli(), rand.Intn(100000))
}

// ExpiredAt reports whether the policy's validity window has passed as of now.
// The end date is inclusive through end of day.
func (p Policy) ExpiredAt(now time.Time) bool {
	endOfDay := time.Date(
		p.ValidUntil.Year(), p.ValidUntil.Month(), p.ValidUntil.Day(),
		23, 59, 59, int(999*time.Millisecond), p.ValidUntil.Location(),
	)
	return now.After(endOfDay)
}

func ValidCategory(c string) bool {
	return c == CategoryAuto || c == CategoryLife
}
