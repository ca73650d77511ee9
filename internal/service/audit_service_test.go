package service

import (
	"context"
	"testing"
	"time"

	"charity-mandate-gateway/internal/adapter/storage/memory"
	"charity-mandate-gateway/internal/core/domain"
	"charity-mandate-gateway/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildChain runs the full pipeline against a shared store and returns it.
func buildChain(t *testing.T, store *memory.MandateStore, sessionID string) {
	t.Helper()
	ctx := context.Background()
	sigSvc := NewCanonicalSignatureService()

	intentSvc := NewIntentService(store, time.Hour, zerolog.Nop())
	_, err := intentSvc.CreateIntent(ctx, sessionID, validIntentRequest())
	require.NoError(t, err)

	offerSvc := NewOfferService(store, sigSvc, 15*time.Minute, zerolog.Nop())
	_, err = offerSvc.CreateOffer(ctx, sessionID)
	require.NoError(t, err)

	gate := NewConsentGate(store, zerolog.Nop())
	_, err = gate.RequestConsent(ctx, sessionID)
	require.NoError(t, err)
	_, err = gate.Resolve(ctx, sessionID, "yes")
	require.NoError(t, err)

	paymentSvc := NewPaymentService(store, zerolog.Nop())
	_, err = paymentSvc.ProcessPayment(ctx, sessionID)
	require.NoError(t, err)
}

func TestVerifyChain_CleanChain(t *testing.T) {
	store := memory.NewMandateStore()
	buildChain(t, store, "sess-1")

	audit := NewAuditService(store, NewCanonicalSignatureService(), zerolog.Nop())
	report, err := audit.VerifyChain(context.Background(), "sess-1")
	require.NoError(t, err)

	assert.Equal(t, "sess-1", report.SessionID)
	assert.Equal(t, domain.StatePaymentCompleted, report.State)
	require.NotNil(t, report.SignatureValid)
	assert.True(t, *report.SignatureValid)
	assert.True(t, report.LinkageValid)
	assert.Empty(t, report.Problems)
}

func TestVerifyChain_EmptySession(t *testing.T) {
	audit := NewAuditService(memory.NewMandateStore(), NewCanonicalSignatureService(), zerolog.Nop())

	report, err := audit.VerifyChain(context.Background(), "sess-empty")
	require.NoError(t, err)
	assert.Equal(t, domain.StateNoIntent, report.State)
	assert.Nil(t, report.SignatureValid)
	assert.True(t, report.LinkageValid)
}

func TestVerifyChain_TamperedCartIsFatal(t *testing.T) {
	store := memory.NewMandateStore()
	buildChain(t, store, "sess-1")
	ctx := context.Background()

	cart, err := store.GetCart(ctx, "sess-1")
	require.NoError(t, err)
	cart.Contents.PaymentRequest.Details.Total.Amount.Value = "5000.00"
	require.NoError(t, store.PutCart(ctx, "sess-1", cart))

	audit := NewAuditService(store, NewCanonicalSignatureService(), zerolog.Nop())
	_, err = audit.VerifyChain(ctx, "sess-1")
	require.Error(t, err)
	assert.True(t, apperror.HasCode(err, "CHAIN_004"))
}

func TestVerifyChain_ReportsLinkageProblems(t *testing.T) {
	store := memory.NewMandateStore()
	buildChain(t, store, "sess-1")
	ctx := context.Background()
	sigSvc := NewCanonicalSignatureService()

	// Re-sign the cart with a changed merchant so the signature itself
	// holds and only the intent linkage breaks.
	cart, err := store.GetCart(ctx, "sess-1")
	require.NoError(t, err)
	cart.Contents.MerchantName = "Some Other Charity"
	tag, err := sigSvc.Sign(cart.Contents)
	require.NoError(t, err)
	cart.MerchantAuthorization = tag
	require.NoError(t, store.PutCart(ctx, "sess-1", cart))

	audit := NewAuditService(store, sigSvc, zerolog.Nop())
	report, err := audit.VerifyChain(ctx, "sess-1")
	require.NoError(t, err)

	require.NotNil(t, report.SignatureValid)
	assert.True(t, *report.SignatureValid)
	assert.False(t, report.LinkageValid)
	assert.NotEmpty(t, report.Problems)
}

func TestVerifyChain_ConsentForDifferentCart(t *testing.T) {
	store := memory.NewMandateStore()
	buildChain(t, store, "sess-1")
	ctx := context.Background()

	consent, err := store.GetConsent(ctx, "sess-1")
	require.NoError(t, err)
	consent.CartID = "cart_deadbeef0000"
	require.NoError(t, store.PutConsent(ctx, "sess-1", consent))

	audit := NewAuditService(store, NewCanonicalSignatureService(), zerolog.Nop())
	report, err := audit.VerifyChain(ctx, "sess-1")
	require.NoError(t, err)

	assert.False(t, report.LinkageValid)
	assert.NotEmpty(t, report.Problems)
}
