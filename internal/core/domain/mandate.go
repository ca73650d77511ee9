package domain

import (
	"encoding/hex"
	"strconv"
	"strings"
	"time"

	"golang.org/x/crypto/sha3"
)

// MandateKind identifies a slot in the per-session mandate chain.
type MandateKind string

const (
	KindIntent  MandateKind = "intent"
	KindCart    MandateKind = "cart"
	KindConsent MandateKind = "consent"
	KindPayment MandateKind = "payment"
	KindResult  MandateKind = "result"
)

// IntentMandate records what the donor wants: a specific amount to a
// specific vetted recipient. Created once, immutable thereafter.
type IntentMandate struct {
	IntentID                     string   `json:"intent_id"`
	NaturalLanguageDescription   string   `json:"natural_language_description"`
	Merchants                    []string `json:"merchants"`
	SKUs                         []string `json:"skus,omitempty"`
	RequiresRefundability        bool     `json:"requires_refundability"`
	UserCartConfirmationRequired bool     `json:"user_cart_confirmation_required"`
	CharityEIN                   string   `json:"charity_ein"`
	Amount                       float64  `json:"amount"`
	Currency                     string   `json:"currency"`
	IntentExpiry                 string   `json:"intent_expiry"`
	Timestamp                    string   `json:"timestamp"`
}

// PrimaryMerchant returns the first eligible merchant name.
func (m *IntentMandate) PrimaryMerchant() (string, bool) {
	if len(m.Merchants) == 0 {
		return "", false
	}
	return m.Merchants[0], true
}

// CartMandate is the merchant's binding counter-offer: signed contents
// with a deliberately tighter expiry than the parent intent.
type CartMandate struct {
	Contents              CartContents `json:"contents"`
	MerchantAuthorization string       `json:"merchant_authorization"`
	Timestamp             string       `json:"timestamp"`
}

// CartContents is the signed portion of a CartMandate.
type CartContents struct {
	ID                           string         `json:"id"`
	CartExpiry                   string         `json:"cart_expiry"`
	MerchantName                 string         `json:"merchant_name"`
	UserCartConfirmationRequired bool           `json:"user_cart_confirmation_required"`
	PaymentRequest               PaymentRequest `json:"payment_request"`
}

// Total returns the cart's total amount.
func (c *CartMandate) Total() PaymentCurrencyAmount {
	return c.Contents.PaymentRequest.Details.Total.Amount
}

// PaymentRequest mirrors the W3C PaymentRequest structure.
type PaymentRequest struct {
	MethodData []PaymentMethodData `json:"method_data"`
	Details    PaymentDetails      `json:"details"`
	Options    PaymentOptions      `json:"options"`
}

// PaymentMethodData lists the payment rails a merchant accepts.
type PaymentMethodData struct {
	SupportedMethods []string            `json:"supported_methods"`
	Data             PaymentMethodParams `json:"data"`
}

type PaymentMethodParams struct {
	SupportedNetworks []string `json:"supported_networks"`
	SupportedTypes    []string `json:"supported_types"`
}

type PaymentDetails struct {
	DisplayItems []PaymentItem `json:"display_items"`
	Total        PaymentItem   `json:"total"`
}

type PaymentItem struct {
	Label  string                `json:"label"`
	Amount PaymentCurrencyAmount `json:"amount"`
}

// PaymentCurrencyAmount pairs a fixed two-decimal value with an ISO
// currency code.
type PaymentCurrencyAmount struct {
	Currency string `json:"currency"`
	Value    string `json:"value"`
}

type PaymentOptions struct {
	RequestPayerName  bool `json:"request_payer_name"`
	RequestPayerEmail bool `json:"request_payer_email"`
	RequestPayerPhone bool `json:"request_payer_phone"`
	RequestShipping   bool `json:"request_shipping"`
}

// PaymentMandate is the execution authorization, gated by explicit
// donor consent. Terminal artifact of the chain.
type PaymentMandate struct {
	Contents     PaymentMandateContents `json:"payment_mandate_contents"`
	AgentPresent bool                   `json:"agent_present"`
}

type PaymentMandateContents struct {
	PaymentMandateID string                `json:"payment_mandate_id"`
	PaymentDetailsID string                `json:"payment_details_id"` // originating cart ID
	MerchantName     string                `json:"merchant_name"`
	Amount           PaymentCurrencyAmount `json:"amount"`
	UserConsent      bool                  `json:"user_consent"`
	ConsentTimestamp string                `json:"consent_timestamp"`
	Timestamp        string                `json:"timestamp"`
}

// TransactionStatus is the settlement outcome.
type TransactionStatus string

const (
	TransactionStatusCompleted TransactionStatus = "completed"
	TransactionStatusFailed    TransactionStatus = "failed"
)

// TransactionResult is the simulated settlement record. Never mutated.
type TransactionResult struct {
	TransactionID string            `json:"transaction_id"`
	Status        TransactionStatus `json:"status"`
	Amount        string            `json:"amount"`
	Currency      string            `json:"currency"`
	Merchant      string            `json:"merchant"`
	Timestamp     string            `json:"timestamp"`
	Simulation    bool              `json:"simulation"`
}

// ConsentDecision is the outcome of the consent gate. Anything other
// than an explicit affirmative maps to denied.
type ConsentDecision string

const (
	ConsentGranted ConsentDecision = "granted"
	ConsentDenied  ConsentDecision = "denied"
)

// ConsentRecord binds a consent decision to the cart it was given for.
type ConsentRecord struct {
	CartID    string          `json:"cart_id"`
	Decision  ConsentDecision `json:"decision"`
	Timestamp string          `json:"timestamp"`
}

// Granted reports an explicit affirmative decision.
func (r *ConsentRecord) Granted() bool {
	return r.Decision == ConsentGranted
}

// FormatAmount renders a monetary value as a fixed two-decimal string.
func FormatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// NewIntentID builds intent_<ein-digits><epoch-seconds>.
func NewIntentID(ein string, createdAt time.Time) string {
	digits := strings.ReplaceAll(ein, "-", "")
	return "intent_" + digits + strconv.FormatInt(createdAt.Unix(), 10)
}

// NewCartID builds cart_<12-hex> from the merchant name and creation time.
func NewCartID(merchantName string, createdAt time.Time) string {
	return "cart_" + digestHex(12, merchantName, createdAt.Format(time.RFC3339Nano))
}

// NewPaymentMandateID builds payment_<12-hex> from the cart ID and creation time.
func NewPaymentMandateID(cartID string, createdAt time.Time) string {
	return "payment_" + digestHex(12, cartID, createdAt.Format(time.RFC3339Nano))
}

// NewTransactionID builds txn_<16-hex> from the cart ID and settlement time.
func NewTransactionID(cartID string, settledAt time.Time) string {
	return "txn_" + digestHex(16, cartID, settledAt.Format(time.RFC3339Nano))
}

// digestHex hashes the joined parts with SHA3-256 and returns the first
// n hex characters.
func digestHex(n int, parts ...string) string {
	sum := sha3.Sum256([]byte(strings.Join(parts, "|")))
	return hex.EncodeToString(sum[:])[:n]
}
