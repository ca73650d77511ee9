package handler

import (
	"time"

	"charity-mandate-gateway/internal/adapter/http/dto"
	"charity-mandate-gateway/internal/adapter/http/middleware"
	"charity-mandate-gateway/internal/core/domain"
	"charity-mandate-gateway/internal/core/ports"
	"charity-mandate-gateway/pkg/apperror"
	"charity-mandate-gateway/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SessionHandler handles session lifecycle endpoints.
type SessionHandler struct {
	tokenSvc   ports.TokenService
	store      ports.MandateStore
	consentSvc ports.ConsentService
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(tokenSvc ports.TokenService, store ports.MandateStore, consentSvc ports.ConsentService) *SessionHandler {
	return &SessionHandler{tokenSvc: tokenSvc, store: store, consentSvc: consentSvc}
}

// Create handles POST /api/v1/sessions. It mints a fresh session ID
// and a bearer token scoped to it.
func (h *SessionHandler) Create(c *gin.Context) {
	sessionID := uuid.NewString()

	token, expiresAt, err := h.tokenSvc.Generate(sessionID)
	if err != nil {
		response.Error(c, apperror.InternalError(err))
		return
	}

	response.Created(c, dto.CreateSessionResponse{
		SessionID: sessionID,
		Token:     token,
		ExpiresAt: expiresAt.UTC().Format(time.RFC3339),
	})
}

// Snapshot handles GET /api/v1/session. It returns every stored
// mandate plus the derived pipeline state.
func (h *SessionHandler) Snapshot(c *gin.Context) {
	sessionID := c.GetString(middleware.CtxSessionID)
	ctx := c.Request.Context()

	intent, err := h.store.GetIntent(ctx, sessionID)
	if err != nil {
		response.Error(c, apperror.ErrStoreError(err))
		return
	}
	cart, err := h.store.GetCart(ctx, sessionID)
	if err != nil {
		response.Error(c, apperror.ErrStoreError(err))
		return
	}
	consent, err := h.store.GetConsent(ctx, sessionID)
	if err != nil {
		response.Error(c, apperror.ErrStoreError(err))
		return
	}
	payment, err := h.store.GetPayment(ctx, sessionID)
	if err != nil {
		response.Error(c, apperror.ErrStoreError(err))
		return
	}
	result, err := h.store.GetResult(ctx, sessionID)
	if err != nil {
		response.Error(c, apperror.ErrStoreError(err))
		return
	}

	state := domain.DeriveState(intent, cart, consent, result, h.consentSvc.Pending(sessionID))

	snapshot := dto.SessionSnapshotResponse{
		SessionID: sessionID,
		State:     string(state),
	}
	if intent != nil {
		snapshot.Intent = intent
	}
	if cart != nil {
		snapshot.Cart = cart
	}
	if consent != nil {
		snapshot.Consent = consent
	}
	if payment != nil {
		snapshot.Payment = payment
	}
	if result != nil {
		snapshot.Result = result
	}

	response.OK(c, snapshot)
}

// Delete handles DELETE /api/v1/session, discarding every mandate
// slot of the current session.
func (h *SessionHandler) Delete(c *gin.Context) {
	sessionID := c.GetString(middleware.CtxSessionID)

	if err := h.store.DeleteSession(c.Request.Context(), sessionID); err != nil {
		response.Error(c, apperror.ErrStoreError(err))
		return
	}

	response.OK(c, gin.H{"session_id": sessionID, "deleted": true})
}
