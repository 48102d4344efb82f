package auth

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"fmt"
	"math/big"
	"time"

	"github.com/go-redis/redis/v8"
)

const (
	// OTPValidity is the window within which a code may be redeemed.
	OTPValidity = 10 * time.Minute
	// verifiedValidity bounds how long a verified-but-unregistered email
	// stays eligible for signup.
	verifiedValidity = 30 * time.Minute
	// otpRetention is how long a spent record lingers in redis so a late
	// verify attempt reads "expired" rather than "not found".
	otpRetention = 24 * time.Hour

	otpKeyPrefix      = "otp:"
	verifiedKeyPrefix = "verified:"
)

// otpRecord is what gets stored per email. The expiry lives inside the value,
// with the redis TTL set past it, so an expired code and a missing code stay
// distinguishable.
type otpRecord struct {
	Code      string    `json:"code"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// OTPStore holds outstanding OTP codes and verified-email marks in redis with
// short TTLs. This replaces the process-global maps of the original design;
// the state is still deliberately short-lived and non-durable in spirit.
type OTPStore struct {
	client *redis.Client
}

// NewOTPStore wraps the given redis client.
func NewOTPStore(client *redis.Client) *OTPStore {
	return &OTPStore{client: client}
}

// generateOTP returns a 6-digit numeric code.
func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", fmt.Errorf("failed to generate OTP: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}

// Issue creates and stores a fresh code for the email, replacing any
// outstanding one, and returns it for dispatch.
func (s *OTPStore) Issue(ctx context.Context, email string) (string, error) {
	code, err := generateOTP()
	if err != nil {
		return "", err
	}

	rec := otpRecord{Code: code, ExpiresAt: time.Now().Add(OTPValidity)}
	b, err := json.Marshal(rec)
	if err != nil {
		return "", fmt.Errorf("failed to encode OTP record: %w", err)
	}

	if err := s.client.Set(ctx, otpKeyPrefix+email, b, otpRetention).Err(); err != nil {
		return "", fmt.Errorf("failed to store OTP: %w", err)
	}
	return code, nil
}

// Verify redeems a code. On success the code is consumed (single use) and the
// email is marked verified for signup.
func (s *OTPStore) Verify(ctx context.Context, email, code string) error {
	key := otpKeyPrefix + email

	raw, err := s.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return ErrOTPNotFound
		}
		return fmt.Errorf("failed to retrieve OTP: %w", err)
	}

	var rec otpRecord
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		return fmt.Errorf("failed to decode OTP record: %w", err)
	}

	if time.Now().After(rec.ExpiresAt) {
		s.client.Del(ctx, key)
		return ErrOTPExpired
	}
	if rec.Code != code {
		return ErrOTPInvalid
	}

	s.client.Del(ctx, key)
	if err := s.client.Set(ctx, verifiedKeyPrefix+email, "1", verifiedValidity).Err(); err != nil {
		return fmt.Errorf("failed to mark email verified: %w", err)
	}
	return nil
}

// IsVerified reports whether the email passed the OTP gate.
func (s *OTPStore) IsVerified(ctx context.Context, email string) (bool, error) {
	_, err := s.client.Get(ctx, verifiedKeyPrefix+email).Result()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, fmt.Errorf("failed to check verified mark: %w", err)
	}
	return true, nil
}

// ConsumeVerified clears the verified mark once signup succeeds.
func (s *OTPStore) ConsumeVerified(ctx context.Context, email string) {
	s.client.Del(ctx, verifiedKeyPrefix+email)
}
