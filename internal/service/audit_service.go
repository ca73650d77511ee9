package service

import (
	"context"
	"fmt"

	"charity-mandate-gateway/internal/core/domain"
	"charity-mandate-gateway/internal/core/ports"
	"charity-mandate-gateway/pkg/apperror"

	"github.com/rs/zerolog"
)

// AuditServiceImpl implements ports.AuditService. The happy-path flow
// never re-checks the merchant authorization; this service gives an
// auditor that check, plus every cross-mandate linkage invariant.
type AuditServiceImpl struct {
	store  ports.MandateStore
	sigSvc ports.SignatureService
	log    zerolog.Logger
}

// NewAuditService creates a new AuditServiceImpl.
func NewAuditService(store ports.MandateStore, sigSvc ports.SignatureService, log zerolog.Logger) *AuditServiceImpl {
	return &AuditServiceImpl{store: store, sigSvc: sigSvc, log: log}
}

// VerifyChain recomputes the cart signature and checks linkage across
// the stored chain. A signature mismatch is a tamper indication and is
// fatal; linkage problems are reported but do not error.
func (s *AuditServiceImpl) VerifyChain(ctx context.Context, sessionID string) (*ports.ChainReport, error) {
	intent, err := s.store.GetIntent(ctx, sessionID)
	if err != nil {
		return nil, apperror.ErrStoreError(err)
	}
	cart, err := s.store.GetCart(ctx, sessionID)
	if err != nil {
		return nil, apperror.ErrStoreError(err)
	}
	consent, err := s.store.GetConsent(ctx, sessionID)
	if err != nil {
		return nil, apperror.ErrStoreError(err)
	}
	payment, err := s.store.GetPayment(ctx, sessionID)
	if err != nil {
		return nil, apperror.ErrStoreError(err)
	}
	result, err := s.store.GetResult(ctx, sessionID)
	if err != nil {
		return nil, apperror.ErrStoreError(err)
	}

	report := &ports.ChainReport{
		SessionID:    sessionID,
		State:        domain.DeriveState(intent, cart, consent, result, false),
		LinkageValid: true,
	}

	if cart != nil {
		ok, err := s.sigSvc.Verify(cart.Contents, cart.MerchantAuthorization)
		if err != nil {
			return nil, apperror.InternalError(fmt.Errorf("recomputing cart signature: %w", err))
		}
		report.SignatureValid = &ok
		if !ok {
			s.log.Warn().
				Str("session_id", sessionID).
				Str("cart_id", cart.Contents.ID).
				Msg("cart signature mismatch detected during audit")
			return nil, apperror.ErrSignatureMismatch()
		}
	}

	addProblem := func(format string, args ...interface{}) {
		report.LinkageValid = false
		report.Problems = append(report.Problems, fmt.Sprintf(format, args...))
	}

	if intent != nil && cart != nil {
		if merchant, ok := intent.PrimaryMerchant(); !ok || cart.Contents.MerchantName != merchant {
			addProblem("cart merchant %q does not match intent merchant", cart.Contents.MerchantName)
		}
		total := cart.Total()
		if total.Value != domain.FormatAmount(intent.Amount) {
			addProblem("cart total %s does not match intent amount %s", total.Value, domain.FormatAmount(intent.Amount))
		}
		if total.Currency != intent.Currency {
			addProblem("cart currency %s does not match intent currency %s", total.Currency, intent.Currency)
		}
	}

	if cart != nil && payment != nil {
		if payment.Contents.PaymentDetailsID != cart.Contents.ID {
			addProblem("payment references cart %s but the stored cart is %s", payment.Contents.PaymentDetailsID, cart.Contents.ID)
		}
		if payment.Contents.Amount != cart.Total() {
			addProblem("payment amount %s %s does not match cart total", payment.Contents.Amount.Currency, payment.Contents.Amount.Value)
		}
	}

	if payment != nil {
		if !payment.Contents.UserConsent {
			addProblem("payment mandate exists without recorded consent")
		}
		if consent == nil || !consent.Granted() || consent.CartID != payment.Contents.PaymentDetailsID {
			addProblem("payment mandate is not backed by a granted consent for its cart")
		}
	}

	if result != nil && cart != nil {
		total := cart.Total()
		if result.Amount != total.Value || result.Currency != total.Currency {
			addProblem("settled amount %s %s does not match cart total", result.Currency, result.Amount)
		}
	}

	return report, nil
}
