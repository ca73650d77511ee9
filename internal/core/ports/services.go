package ports

import (
	"context"
	"time"

	"charity-mandate-gateway/internal/core/domain"
)

// SignatureService produces and verifies deterministic binding tags
// over structured mandate contents. The canonical-hash implementation
// stands in for asymmetric merchant signing; a real PKI signer can be
// substituted behind this interface without touching the stages.
type SignatureService interface {
	Sign(contents interface{}) (string, error)
	Verify(contents interface{}, tag string) (bool, error)
}

// CharityCatalog is the external charity lookup collaborator.
// An empty result means "no match", never an error.
type CharityCatalog interface {
	FindByCause(ctx context.Context, causeArea string) ([]domain.Charity, error)
}

// TokenService issues and validates session bearer tokens.
type TokenService interface {
	Generate(sessionID string) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed session token claims.
type TokenClaims struct {
	SessionID string
}

// --- Stage Ports (Pipeline Business Logic) ---

// IntentRequest holds validated donor input for intent creation.
type IntentRequest struct {
	CharityName string
	CharityEIN  string
	Amount      float64
	Currency    string
}

// IntentService turns a validated donor selection into an IntentMandate.
type IntentService interface {
	CreateIntent(ctx context.Context, sessionID string, req IntentRequest) (*domain.IntentMandate, error)
}

// OfferService derives a signed CartMandate from a live IntentMandate.
type OfferService interface {
	CreateOffer(ctx context.Context, sessionID string) (*domain.CartMandate, error)
}

// ConsentPrompt carries the cart terms surfaced to the donor.
type ConsentPrompt struct {
	CartID       string `json:"cart_id"`
	MerchantName string `json:"merchant_name"`
	Amount       string `json:"amount"`
	Currency     string `json:"currency"`
	CartExpiry   string `json:"cart_expiry"`
}

// ConsentService is the human-in-the-loop gate before payment.
type ConsentService interface {
	// RequestConsent surfaces the cart terms and marks the session as
	// awaiting an explicit decision.
	RequestConsent(ctx context.Context, sessionID string) (*ConsentPrompt, error)
	// Resolve records the donor's response. Only an explicit
	// affirmative grants consent; anything else denies it.
	Resolve(ctx context.Context, sessionID string, response string) (*domain.ConsentRecord, error)
	// Await blocks until a decision is recorded or ctx is cancelled.
	Await(ctx context.Context, sessionID string) (domain.ConsentDecision, error)
	// Pending reports whether a prompt is awaiting a decision.
	Pending(sessionID string) bool
}

// PaymentService derives the PaymentMandate and simulates settlement.
type PaymentService interface {
	ProcessPayment(ctx context.Context, sessionID string) (*domain.TransactionResult, error)
}

// ChainReport is the auditor's view of one session's mandate chain.
type ChainReport struct {
	SessionID      string              `json:"session_id"`
	State          domain.SessionState `json:"state"`
	SignatureValid *bool               `json:"signature_valid,omitempty"` // nil when no cart exists
	LinkageValid   bool                `json:"linkage_valid"`
	Problems       []string            `json:"problems,omitempty"`
}

// AuditService verifies a stored chain after the fact: signature
// recomputation plus the cross-mandate linkage invariants.
type AuditService interface {
	VerifyChain(ctx context.Context, sessionID string) (*ChainReport, error)
}
