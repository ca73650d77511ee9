package ports

import (
	"context"

	"charity-mandate-gateway/internal/core/domain"
)

// MandateStore holds at most one mandate of each kind per session.
// Each stage writes its own slot exactly once per successful run;
// re-running a stage overwrites the prior value. Getters return
// (nil, nil) when the slot is empty. Sessions never share state.
type MandateStore interface {
	PutIntent(ctx context.Context, sessionID string, m *domain.IntentMandate) error
	GetIntent(ctx context.Context, sessionID string) (*domain.IntentMandate, error)

	PutCart(ctx context.Context, sessionID string, m *domain.CartMandate) error
	GetCart(ctx context.Context, sessionID string) (*domain.CartMandate, error)

	PutConsent(ctx context.Context, sessionID string, r *domain.ConsentRecord) error
	GetConsent(ctx context.Context, sessionID string) (*domain.ConsentRecord, error)

	PutPayment(ctx context.Context, sessionID string, m *domain.PaymentMandate) error
	GetPayment(ctx context.Context, sessionID string) (*domain.PaymentMandate, error)

	PutResult(ctx context.Context, sessionID string, r *domain.TransactionResult) error
	GetResult(ctx context.Context, sessionID string) (*domain.TransactionResult, error)

	// DeleteSession removes every slot belonging to a session.
	DeleteSession(ctx context.Context, sessionID string) error
}
