package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"charity-mandate-gateway/internal/core/domain"
	"charity-mandate-gateway/internal/core/ports"
	"charity-mandate-gateway/pkg/apperror"

	"github.com/rs/zerolog"
)

// maxDonationAmount bounds a single donation.
const maxDonationAmount = 1_000_000

var (
	einRe      = regexp.MustCompile(`^\d{2}-\d{7}$`)
	currencyRe = regexp.MustCompile(`^[A-Z]{3}$`)
)

// IntentServiceImpl implements ports.IntentService.
type IntentServiceImpl struct {
	store     ports.MandateStore
	intentTTL time.Duration
	now       func() time.Time
	log       zerolog.Logger
}

// NewIntentService creates a new IntentServiceImpl. intentTTL is the
// validity window stamped onto every IntentMandate.
func NewIntentService(store ports.MandateStore, intentTTL time.Duration, log zerolog.Logger) *IntentServiceImpl {
	return &IntentServiceImpl{
		store:     store,
		intentTTL: intentTTL,
		now:       time.Now,
		log:       log,
	}
}

// CreateIntent validates the donor's selection and writes an immutable
// IntentMandate under the session's intent slot. Validation runs in
// order (name, EIN, amount, currency); on any failure nothing is written.
func (s *IntentServiceImpl) CreateIntent(ctx context.Context, sessionID string, req ports.IntentRequest) (*domain.IntentMandate, error) {
	name := strings.TrimSpace(req.CharityName)
	if name == "" {
		return nil, apperror.ErrValidationFailure("charity_name", "must not be empty")
	}
	if !einRe.MatchString(req.CharityEIN) {
		return nil, apperror.ErrValidationFailure("charity_ein", "must match the XX-XXXXXXX format")
	}
	if req.Amount <= 0 {
		return nil, apperror.ErrValidationFailure("amount", "must be positive")
	}
	if req.Amount > maxDonationAmount {
		return nil, apperror.ErrValidationFailure("amount", fmt.Sprintf("must not exceed %d", maxDonationAmount))
	}
	currency := req.Currency
	if currency == "" {
		currency = "USD"
	}
	if !currencyRe.MatchString(currency) {
		return nil, apperror.ErrValidationFailure("currency", "must be a 3-letter ISO code")
	}

	now := s.now().UTC()
	mandate := &domain.IntentMandate{
		IntentID:                     domain.NewIntentID(req.CharityEIN, now),
		NaturalLanguageDescription:   fmt.Sprintf("Donate %s %s to %s", domain.FormatAmount(req.Amount), currency, name),
		Merchants:                    []string{name},
		RequiresRefundability:        false,
		UserCartConfirmationRequired: true,
		CharityEIN:                   req.CharityEIN,
		Amount:                       req.Amount,
		Currency:                     currency,
		IntentExpiry:                 now.Add(s.intentTTL).Format(time.RFC3339),
		Timestamp:                    now.Format(time.RFC3339),
	}

	if err := s.store.PutIntent(ctx, sessionID, mandate); err != nil {
		return nil, apperror.ErrStoreError(err)
	}

	s.log.Info().
		Str("session_id", sessionID).
		Str("intent_id", mandate.IntentID).
		Str("merchant", name).
		Str("amount", domain.FormatAmount(req.Amount)).
		Msg("intent mandate created")

	return mandate, nil
}
