package dto

// CreateIntentRequest is the request body for the intent stage.
type CreateIntentRequest struct {
	CharityName string  `json:"charity_name" binding:"required,min=1,max=100"`
	CharityEIN  string  `json:"charity_ein" binding:"required,ein"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Currency    string  `json:"currency" binding:"omitempty,len=3"`
}

// ResolveConsentRequest is the request body carrying the donor's answer.
type ResolveConsentRequest struct {
	Response string `json:"response" binding:"required"`
}

// CreateSessionResponse is the response body for session creation.
type CreateSessionResponse struct {
	SessionID string `json:"session_id"`
	Token     string `json:"token"`
	ExpiresAt string `json:"expires_at"`
}

// ConsentResolutionResponse reports the recorded decision.
type ConsentResolutionResponse struct {
	CartID    string `json:"cart_id"`
	Decision  string `json:"decision"`
	Timestamp string `json:"timestamp"`
}

// SessionSnapshotResponse is the full view of one donation session.
type SessionSnapshotResponse struct {
	SessionID string      `json:"session_id"`
	State     string      `json:"state"`
	Intent    interface{} `json:"intent,omitempty"`
	Cart      interface{} `json:"cart,omitempty"`
	Consent   interface{} `json:"consent,omitempty"`
	Payment   interface{} `json:"payment,omitempty"`
	Result    interface{} `json:"result,omitempty"`
}
