package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"charity-mandate-gateway/internal/core/domain"
	"charity-mandate-gateway/internal/core/ports"
	"charity-mandate-gateway/pkg/apperror"

	"github.com/rs/zerolog"
)

// ConsentGate implements ports.ConsentService. It is the explicit
// suspension point of the pipeline: a session stays pending until the
// donor answers, with no timeout and no default decision.
type ConsentGate struct {
	store ports.MandateStore
	now   func() time.Time
	log   zerolog.Logger

	mu      sync.Mutex
	pending map[string]bool
	waiters map[string][]chan domain.ConsentDecision
}

// NewConsentGate creates a new ConsentGate.
func NewConsentGate(store ports.MandateStore, log zerolog.Logger) *ConsentGate {
	return &ConsentGate{
		store:   store,
		now:     time.Now,
		log:     log,
		pending: make(map[string]bool),
		waiters: make(map[string][]chan domain.ConsentDecision),
	}
}

// RequestConsent surfaces the cart's terms (merchant, total, currency)
// and marks the session as awaiting an explicit decision.
func (g *ConsentGate) RequestConsent(ctx context.Context, sessionID string) (*ports.ConsentPrompt, error) {
	cart, err := g.store.GetCart(ctx, sessionID)
	if err != nil {
		return nil, apperror.ErrStoreError(err)
	}
	if cart == nil {
		return nil, apperror.ErrMissingPredecessor("cart")
	}

	valid, err := domain.ExpiryValid(cart.Contents.CartExpiry, g.now().UTC())
	if err != nil {
		return nil, apperror.ErrMalformedMandate("cart expiry is unreadable")
	}
	if !valid {
		return nil, apperror.ErrExpiredMandate("cart")
	}

	g.mu.Lock()
	g.pending[sessionID] = true
	g.mu.Unlock()

	total := cart.Total()
	g.log.Info().
		Str("session_id", sessionID).
		Str("cart_id", cart.Contents.ID).
		Str("total", total.Value).
		Msg("consent requested from donor")

	return &ports.ConsentPrompt{
		CartID:       cart.Contents.ID,
		MerchantName: cart.Contents.MerchantName,
		Amount:       total.Value,
		Currency:     total.Currency,
		CartExpiry:   cart.Contents.CartExpiry,
	}, nil
}

// Resolve records the donor's decision against the current cart and
// wakes any blocked Await callers. Only an explicit affirmative grants
// consent; every other response, including silence-breaking chatter,
// is a denial.
func (g *ConsentGate) Resolve(ctx context.Context, sessionID string, response string) (*domain.ConsentRecord, error) {
	cart, err := g.store.GetCart(ctx, sessionID)
	if err != nil {
		return nil, apperror.ErrStoreError(err)
	}
	if cart == nil {
		return nil, apperror.ErrMissingPredecessor("cart")
	}

	decision := NormalizeConsentResponse(response)
	record := &domain.ConsentRecord{
		CartID:    cart.Contents.ID,
		Decision:  decision,
		Timestamp: g.now().UTC().Format(time.RFC3339),
	}

	if err := g.store.PutConsent(ctx, sessionID, record); err != nil {
		return nil, apperror.ErrStoreError(err)
	}

	g.mu.Lock()
	delete(g.pending, sessionID)
	waiters := g.waiters[sessionID]
	delete(g.waiters, sessionID)
	g.mu.Unlock()

	for _, ch := range waiters {
		ch <- decision // buffered, never blocks
	}

	g.log.Info().
		Str("session_id", sessionID).
		Str("cart_id", record.CartID).
		Str("decision", string(decision)).
		Msg("consent resolved")

	return record, nil
}

// Await blocks until a decision is recorded for the session or ctx is
// cancelled. If a decision already exists it returns immediately.
func (g *ConsentGate) Await(ctx context.Context, sessionID string) (domain.ConsentDecision, error) {
	record, err := g.store.GetConsent(ctx, sessionID)
	if err != nil {
		return "", apperror.ErrStoreError(err)
	}
	if record != nil {
		return record.Decision, nil
	}

	ch := make(chan domain.ConsentDecision, 1)
	g.mu.Lock()
	g.waiters[sessionID] = append(g.waiters[sessionID], ch)
	g.mu.Unlock()

	select {
	case decision := <-ch:
		return decision, nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// Pending reports whether a prompt is awaiting a decision.
func (g *ConsentGate) Pending(sessionID string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.pending[sessionID]
}

// NormalizeConsentResponse maps a free-form donor response to a
// decision. Only an explicit affirmative grants.
func NormalizeConsentResponse(response string) domain.ConsentDecision {
	switch strings.ToLower(strings.TrimSpace(response)) {
	case "yes", "y", "approve", "approved", "confirm", "confirmed", "affirmative", "grant", "granted":
		return domain.ConsentGranted
	default:
		return domain.ConsentDenied
	}
}
