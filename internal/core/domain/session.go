package domain

// SessionState is the derived position of a session in the pipeline
// state machine. Control flow is strictly linear; the only branches are
// reject-and-halt on validation failure or explicit denial.
type SessionState string

const (
	StateNoIntent         SessionState = "no_intent"
	StateIntentCreated    SessionState = "intent_created"
	StateOfferCreated     SessionState = "offer_created"
	StateConsentPending   SessionState = "consent_pending"
	StateConsentGranted   SessionState = "consent_granted"
	StateConsentDenied    SessionState = "consent_denied"
	StatePaymentCompleted SessionState = "payment_completed"
)

// DeriveState computes the session state from stored mandates.
// awaitingConsent reports whether a consent prompt has been surfaced
// and no decision recorded yet.
func DeriveState(
	intent *IntentMandate,
	cart *CartMandate,
	consent *ConsentRecord,
	result *TransactionResult,
	awaitingConsent bool,
) SessionState {
	switch {
	case result != nil:
		return StatePaymentCompleted
	case consent != nil && !consent.Granted():
		return StateConsentDenied
	case consent != nil:
		return StateConsentGranted
	case cart != nil && awaitingConsent:
		return StateConsentPending
	case cart != nil:
		return StateOfferCreated
	case intent != nil:
		return StateIntentCreated
	default:
		return StateNoIntent
	}
}
