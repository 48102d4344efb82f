package auth_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"growlife/services/auth"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOTPStoreForTest(t *testing.T) (*auth.OTPStore, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return auth.NewOTPStore(client), client
}

func TestOTP_IssueAndVerify(t *testing.T) {
	store, _ := newOTPStoreForTest(t)
	ctx := context.Background()

	code, err := store.Issue(ctx, "lena@mail.com")
	require.NoError(t, err)
	assert.Len(t, code, 6)

	err = store.Verify(ctx, "lena@mail.com", code)
	assert.NoError(t, err)

	verified, err := store.IsVerified(ctx, "lena@mail.com")
	require.NoError(t, err)
	assert.True(t, verified)
}

func TestOTP_WrongCode(t *testing.T) {
	store, _ := newOTPStoreForTest(t)
	ctx := context.Background()

	_, err := store.Issue(ctx, "lena@mail.com")
	require.NoError(t, err)

	err = store.Verify(ctx, "lena@mail.com", "000000")
	assert.ErrorIs(t, err, auth.ErrOTPInvalid)

	// A wrong attempt must not consume the code.
	verified, err := store.IsVerified(ctx, "lena@mail.com")
	require.NoError(t, err)
	assert.False(t, verified)
}

func TestOTP_SingleUse(t *testing.T) {
	store, _ := newOTPStoreForTest(t)
	ctx := context.Background()

	code, err := store.Issue(ctx, "lena@mail.com")
	require.NoError(t, err)
	require.NoError(t, store.Verify(ctx, "lena@mail.com", code))

	err = store.Verify(ctx, "lena@mail.com", code)
	assert.ErrorIs(t, err, auth.ErrOTPNotFound)
}

func TestOTP_NoOutstandingCode(t *testing.T) {
	store, _ := newOTPStoreForTest(t)

	err := store.Verify(context.Background(), "nobody@mail.com", "123456")
	assert.ErrorIs(t, err, auth.ErrOTPNotFound)
}

func TestOTP_ReissueReplacesCode(t *testing.T) {
	store, _ := newOTPStoreForTest(t)
	ctx := context.Background()

	first, err := store.Issue(ctx, "lena@mail.com")
	require.NoError(t, err)
	second, err := store.Issue(ctx, "lena@mail.com")
	require.NoError(t, err)

	if first != second {
		err = store.Verify(ctx, "lena@mail.com", first)
		assert.ErrorIs(t, err, auth.ErrOTPInvalid)
	}
	assert.NoError(t, store.Verify(ctx, "lena@mail.com", second))
}

func TestOTP_ExpiredCode(t *testing.T) {
	store, client := newOTPStoreForTest(t)
	ctx := context.Background()

	// Plant a record whose logical expiry has already passed while the key
	// itself is still present.
	stale, err := json.Marshal(map[string]interface{}{
		"code":      "123456",
		"expiresAt": time.Now().Add(-time.Minute),
	})
	require.NoError(t, err)
	require.NoError(t, client.Set(ctx, "otp:lena@mail.com", stale, auth.OTPValidity).Err())

	err = store.Verify(ctx, "lena@mail.com", "123456")
	assert.ErrorIs(t, err, auth.ErrOTPExpired)

	// The stale record is cleared, so the next attempt reads as missing.
	err = store.Verify(ctx, "lena@mail.com", "123456")
	assert.ErrorIs(t, err, auth.ErrOTPNotFound)
}

func TestOTP_RecordOutlivesLogicalExpiry(t *testing.T) {
	store, client := newOTPStoreForTest(t)
	ctx := context.Background()

	_, err := store.Issue(ctx, "lena@mail.com")
	require.NoError(t, err)

	// The redis key is held well past the code's validity so a late verify
	// attempt still reads "expired" rather than "not found".
	ttl, err := client.TTL(ctx, "otp:lena@mail.com").Result()
	require.NoError(t, err)
	assert.Equal(t, 24*time.Hour, ttl)
}

func TestOTP_ConsumeVerified(t *testing.T) {
	store, _ := newOTPStoreForTest(t)
	ctx := context.Background()

	code, err := store.Issue(ctx, "lena@mail.com")
	require.NoError(t, err)
	require.NoError(t, store.Verify(ctx, "lena@mail.com", code))

	store.ConsumeVerified(ctx, "lena@mail.com")

	verified, err := store.IsVerified(ctx, "lena@mail.com")
	require.NoError(t, err)
	assert.False(t, verified)
}
