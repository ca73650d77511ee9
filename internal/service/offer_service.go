package service

import (
	"context"
	"fmt"
	"time"

	"charity-mandate-gateway/internal/core/domain"
	"charity-mandate-gateway/internal/core/ports"
	"charity-mandate-gateway/pkg/apperror"

	"github.com/rs/zerolog"
)

// OfferServiceImpl implements ports.OfferService.
type OfferServiceImpl struct {
	store   ports.MandateStore
	sigSvc  ports.SignatureService
	cartTTL time.Duration
	now     func() time.Time
	log     zerolog.Logger
}

// NewOfferService creates a new OfferServiceImpl. cartTTL must be
// tighter than the intent window (enforced by config validation).
func NewOfferService(store ports.MandateStore, sigSvc ports.SignatureService, cartTTL time.Duration, log zerolog.Logger) *OfferServiceImpl {
	return &OfferServiceImpl{
		store:   store,
		sigSvc:  sigSvc,
		cartTTL: cartTTL,
		now:     time.Now,
		log:     log,
	}
}

// CreateOffer derives a signed CartMandate from the session's live
// IntentMandate. An expired intent is fatal to the chain: a fresh
// intent must be created before retrying.
func (s *OfferServiceImpl) CreateOffer(ctx context.Context, sessionID string) (*domain.CartMandate, error) {
	intent, err := s.store.GetIntent(ctx, sessionID)
	if err != nil {
		return nil, apperror.ErrStoreError(err)
	}
	if intent == nil {
		return nil, apperror.ErrMissingPredecessor("intent")
	}

	now := s.now().UTC()
	valid, err := domain.ExpiryValid(intent.IntentExpiry, now)
	if err != nil {
		return nil, apperror.ErrMalformedMandate("intent expiry is unreadable")
	}
	if !valid {
		return nil, apperror.ErrExpiredMandate("intent")
	}

	merchant, ok := intent.PrimaryMerchant()
	if !ok {
		return nil, apperror.ErrMalformedMandate("intent names no merchant")
	}
	if intent.Amount <= 0 {
		return nil, apperror.ErrMalformedMandate("intent carries no amount")
	}

	value := domain.FormatAmount(intent.Amount)
	contents := domain.CartContents{
		ID:                           domain.NewCartID(merchant, now),
		CartExpiry:                   now.Add(s.cartTTL).Format(time.RFC3339),
		MerchantName:                 merchant,
		UserCartConfirmationRequired: intent.UserCartConfirmationRequired,
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
					Label:  "Donation to " + merchant,
					Amount: domain.PaymentCurrencyAmount{Currency: intent.Currency, Value: value},
				}},
				Total: domain.PaymentItem{
					Label:  "Total Donation",
					Amount: domain.PaymentCurrencyAmount{Currency: intent.Currency, Value: value},
				},
			},
			// Donations ship nothing and need no payer details.
			Options: domain.PaymentOptions{},
		},
	}

	signature, err := s.sigSvc.Sign(contents)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("signing cart contents: %w", err))
	}

	cart := &domain.CartMandate{
		Contents:              contents,
		MerchantAuthorization: signature,
		Timestamp:             now.Format(time.RFC3339),
	}

	if err := s.store.PutCart(ctx, sessionID, cart); err != nil {
		return nil, apperror.ErrStoreError(err)
	}

	s.log.Info().
		Str("session_id", sessionID).
		Str("cart_id", contents.ID).
		Str("merchant", merchant).
		Str("total", value).
		Str("cart_expiry", contents.CartExpiry).
		Msg("cart mandate created")

	return cart, nil
}
