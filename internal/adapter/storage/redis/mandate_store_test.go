package redis_test

import (
	"context"
	"testing"
	"time"

	"charity-mandate-gateway/internal/adapter/storage/redis"
	"charity-mandate-gateway/internal/core/domain"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T, ttl time.Duration) (*redis.MandateStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return redis.NewMandateStore(client, ttl), mr
}

func TestMandateStore_EmptySlotsReturnNilNil(t *testing.T) {
	store, _ := newTestStore(t, time.Hour)
	ctx := context.Background()

	intent, err := store.GetIntent(ctx, "sess-1")
	require.NoError(t, err)
	assert.Nil(t, intent)

	consent, err := store.GetConsent(ctx, "sess-1")
	require.NoError(t, err)
	assert.Nil(t, consent)
}

func TestMandateStore_RoundTripPreservesStructure(t *testing.T) {
	store, _ := newTestStore(t, time.Hour)
	ctx := context.Background()

	cart := &domain.CartMandate{
		Contents: domain.CartContents{
			ID:                           "cart_0011223344aa",
			CartExpiry:                   "2026-03-01T12:15:00Z",
			MerchantName:                 "Room to Read",
			UserCartConfirmationRequired: true,
			PaymentRequest: domain.PaymentRequest{
				MethodData: []domain.PaymentMethodData{{
					SupportedMethods: []string{"card", "bank_transfer"},
					Data: domain.PaymentMethodParams{
						SupportedNetworks: []string{"visa", "mastercard", "amex"},
						SupportedTypes:    []string{"debit", "credit"},
					},
				}},
				Details: domain.PaymentDetails{
					DisplayItems: []domain.PaymentItem{{
						Label:  "Donation to Room to Read",
						Amount: domain.PaymentCurrencyAmount{Currency: "USD", Value: "50.00"},
					}},
					Total: domain.PaymentItem{
						Label:  "Total Donation",
						Amount: domain.PaymentCurrencyAmount{Currency: "USD", Value: "50.00"},
					},
				},
			},
		},
		MerchantAuthorization: "SIG_0011223344556677",
		Timestamp:             "2026-03-01T12:00:00Z",
	}

	require.NoError(t, store.PutCart(ctx, "sess-1", cart))

	got, err := store.GetCart(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, cart, got)
}

func TestMandateStore_SessionsAreIsolated(t *testing.T) {
	store, _ := newTestStore(t, time.Hour)
	ctx := context.Background()

	require.NoError(t, store.PutIntent(ctx, "sess-a", &domain.IntentMandate{IntentID: "intent_a"}))

	got, err := store.GetIntent(ctx, "sess-b")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMandateStore_DeleteSessionClearsEverySlot(t *testing.T) {
	store, _ := newTestStore(t, time.Hour)
	ctx := context.Background()

	require.NoError(t, store.PutIntent(ctx, "sess-1", &domain.IntentMandate{IntentID: "intent_x"}))
	require.NoError(t, store.PutCart(ctx, "sess-1", &domain.CartMandate{Contents: domain.CartContents{ID: "cart_x"}}))
	require.NoError(t, store.PutConsent(ctx, "sess-1", &domain.ConsentRecord{CartID: "cart_x", Decision: domain.ConsentGranted}))
	require.NoError(t, store.PutPayment(ctx, "sess-1", &domain.PaymentMandate{}))
	require.NoError(t, store.PutResult(ctx, "sess-1", &domain.TransactionResult{TransactionID: "txn_x"}))

	require.NoError(t, store.DeleteSession(ctx, "sess-1"))

	intent, err := store.GetIntent(ctx, "sess-1")
	require.NoError(t, err)
	assert.Nil(t, intent)
	result, err := store.GetResult(ctx, "sess-1")
	require.NoError(t, err)
	assert.Nil(t, result)
}

func TestMandateStore_SlotsExpireWithSessionTTL(t *testing.T) {
	store, mr := newTestStore(t, time.Hour)
	ctx := context.Background()

	require.NoError(t, store.PutIntent(ctx, "sess-1", &domain.IntentMandate{IntentID: "intent_x"}))

	mr.FastForward(time.Hour + time.Second)

	got, err := store.GetIntent(ctx, "sess-1")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestHealthCheck(t *testing.T) {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	defer client.Close()

	h := redis.NewHealthCheck(client)
	assert.Equal(t, "redis", h.Name())
	assert.NoError(t, h.Ping(context.Background()))

	mr.Close()
	assert.Error(t, h.Ping(context.Background()))
}
