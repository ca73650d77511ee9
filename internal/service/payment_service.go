package service

import (
	"context"
	"time"

	"charity-mandate-gateway/internal/core/domain"
	"charity-mandate-gateway/internal/core/ports"
	"charity-mandate-gateway/pkg/apperror"

	"github.com/rs/zerolog"
)

// PaymentServiceImpl implements ports.PaymentService.
type PaymentServiceImpl struct {
	store ports.MandateStore
	now   func() time.Time
	log   zerolog.Logger
}

// NewPaymentService creates a new PaymentServiceImpl.
func NewPaymentService(store ports.MandateStore, log zerolog.Logger) *PaymentServiceImpl {
	return &PaymentServiceImpl{
		store: store,
		now:   time.Now,
		log:   log,
	}
}

// ProcessPayment derives the PaymentMandate from the session's live,
// consented CartMandate and simulates settlement. The simulated network
// never fails on well-formed input; a real acquirer call would be
// fallible and belongs to the external payment collaborator.
func (s *PaymentServiceImpl) ProcessPayment(ctx context.Context, sessionID string) (*domain.TransactionResult, error) {
	cart, err := s.store.GetCart(ctx, sessionID)
	if err != nil {
		return nil, apperror.ErrStoreError(err)
	}
	if cart == nil {
		return nil, apperror.ErrMissingPredecessor("cart")
	}
	if cart.Contents.ID == "" {
		return nil, apperror.ErrMalformedMandate("cart has no contents")
	}

	now := s.now().UTC()
	valid, err := domain.ExpiryValid(cart.Contents.CartExpiry, now)
	if err != nil {
		return nil, apperror.ErrMalformedMandate("cart expiry is unreadable")
	}
	if !valid {
		return nil, apperror.ErrExpiredMandate("cart")
	}

	consent, err := s.store.GetConsent(ctx, sessionID)
	if err != nil {
		return nil, apperror.ErrStoreError(err)
	}
	// A consent given for an older, overwritten cart does not carry over.
	if consent == nil || consent.CartID != cart.Contents.ID {
		return nil, apperror.ErrConsentNotObtained()
	}
	if !consent.Granted() {
		return nil, apperror.ErrConsentDenied()
	}

	total := cart.Total()
	if total.Value == "" || total.Currency == "" || cart.Contents.MerchantName == "" {
		return nil, apperror.ErrMalformedMandate("cart total or merchant is missing")
	}

	mandate := &domain.PaymentMandate{
		Contents: domain.PaymentMandateContents{
			PaymentMandateID: domain.NewPaymentMandateID(cart.Contents.ID, now),
			PaymentDetailsID: cart.Contents.ID,
			MerchantName:     cart.Contents.MerchantName,
			Amount:           total,
			UserConsent:      true,
			ConsentTimestamp: consent.Timestamp,
			Timestamp:        now.Format(time.RFC3339),
		},
		AgentPresent: true,
	}

	if err := s.store.PutPayment(ctx, sessionID, mandate); err != nil {
		return nil, apperror.ErrStoreError(err)
	}

	result := &domain.TransactionResult{
		TransactionID: domain.NewTransactionID(cart.Contents.ID, s.now().UTC()),
		Status:        domain.TransactionStatusCompleted,
		Amount:        total.Value,
		Currency:      total.Currency,
		Merchant:      cart.Contents.MerchantName,
		Timestamp:     now.Format(time.RFC3339),
		Simulation:    true,
	}

	if err := s.store.PutResult(ctx, sessionID, result); err != nil {
		return nil, apperror.ErrStoreError(err)
	}

	s.log.Info().
		Str("session_id", sessionID).
		Str("payment_mandate_id", mandate.Contents.PaymentMandateID).
		Str("transaction_id", result.TransactionID).
		Str("amount", result.Amount).
		Str("merchant", result.Merchant).
		Msg("payment processed (simulated)")

	return result, nil
}
