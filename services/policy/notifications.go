package policy

import (
	"fmt"
	"math"
	"sort"
	"time"

	"growlife/models"
	"growlife/services/mail"
	"growlife/utils"

	"go.uber.org/zap"
)

// expirationWindowDays is how far ahead the feed warns about lapsing policies.
const expirationWindowDays = 30

// NotificationView is one entry of the merged notification feed.
type NotificationView struct {
	ID        string    `json:"id,omitempty"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	IsRead    bool      `json:"isRead"`
	Type      string    `json:"type"`
}

// Notifications merges the account's stored notifications with freshly
// computed expiration warnings for purchased policies lapsing within the next
// 30 days. Expiration entries are recomputed on every call and each one also
// triggers a reminder email; nothing here is persisted or deduplicated, so
// repeated calls repeat the reminders.
func (s *DefaultPolicyService) Notifications(username string) ([]NotificationView, error) {
	customer, err := s.Users.GetByUsername(username)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, ErrCustomerNotFound
	}

	policies, err := s.Policies.GetByIDs(customer.PurchasedPolicies)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	var views []NotificationView

	for i := range policies {
		p := policies[i]
		daysLeft := int(math.Ceil(p.ValidUntil.Sub(now).Hours() / 24))
		if daysLeft <= 0 || daysLeft > expirationWindowDays {
			continue
		}

		message := fmt.Sprintf("Your policy %q (ID: %s) is expiring in %d days.", p.PolicyName, p.DisplayID, daysLeft)

		if customer.Email != "" {
			subject, html := mail.ExpirationEmail(customer.Username, &p, daysLeft)
			s.Mail.Enqueue(customer.Email, subject, html)
		} else {
			utils.GetLogger().Warn("Customer has no email address, skipped expiration reminder",
				zap.String("username", username))
		}

		views = append(views, NotificationView{
			ID:        p.ID,
			Message:   message,
			Timestamp: now,
			Type:      models.NotificationExpiration,
		})
	}

	for _, n := range customer.Notifications {
		views = append(views, NotificationView{
			Message:   n.Message,
			Timestamp: n.Timestamp,
			IsRead:    n.IsRead,
			Type:      n.Type,
		})
	}

	sort.SliceStable(views, func(i, j int) bool {
		return views[i].Timestamp.After(views[j].Timestamp)
	})
	return views, nil
}
