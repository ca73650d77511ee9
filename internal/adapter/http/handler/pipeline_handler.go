package handler

import (
	"charity-mandate-gateway/internal/adapter/http/dto"
	"charity-mandate-gateway/internal/adapter/http/middleware"
	"charity-mandate-gateway/internal/core/ports"
	"charity-mandate-gateway/pkg/apperror"
	"charity-mandate-gateway/pkg/response"

	"github.com/gin-gonic/gin"
)

// PipelineHandler handles the donation pipeline stage endpoints.
type PipelineHandler struct {
	intentSvc  ports.IntentService
	offerSvc   ports.OfferService
	consentSvc ports.ConsentService
	paymentSvc ports.PaymentService
	auditSvc   ports.AuditService
}

// NewPipelineHandler creates a new PipelineHandler.
func NewPipelineHandler(
	intentSvc ports.IntentService,
	offerSvc ports.OfferService,
	consentSvc ports.ConsentService,
	paymentSvc ports.PaymentService,
	auditSvc ports.AuditService,
) *PipelineHandler {
	return &PipelineHandler{
		intentSvc:  intentSvc,
		offerSvc:   offerSvc,
		consentSvc: consentSvc,
		paymentSvc: paymentSvc,
		auditSvc:   auditSvc,
	}
}

// CreateIntent handles POST /api/v1/session/intent.
func (h *PipelineHandler) CreateIntent(c *gin.Context) {
	sessionID := c.GetString(middleware.CtxSessionID)

	var req dto.CreateIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.TrimStruct(&req)

	mandate, err := h.intentSvc.CreateIntent(c.Request.Context(), sessionID, ports.IntentRequest{
		CharityName: req.CharityName,
		CharityEIN:  req.CharityEIN,
		Amount:      req.Amount,
		Currency:    req.Currency,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, mandate)
}

// CreateOffer handles POST /api/v1/session/offer.
func (h *PipelineHandler) CreateOffer(c *gin.Context) {
	sessionID := c.GetString(middleware.CtxSessionID)

	cart, err := h.offerSvc.CreateOffer(c.Request.Context(), sessionID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, cart)
}

// GetConsentPrompt handles GET /api/v1/session/consent. It surfaces
// the cart terms the donor must approve and marks the session pending.
func (h *PipelineHandler) GetConsentPrompt(c *gin.Context) {
	sessionID := c.GetString(middleware.CtxSessionID)

	prompt, err := h.consentSvc.RequestConsent(c.Request.Context(), sessionID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, prompt)
}

// ResolveConsent handles POST /api/v1/session/consent.
func (h *PipelineHandler) ResolveConsent(c *gin.Context) {
	sessionID := c.GetString(middleware.CtxSessionID)

	var req dto.ResolveConsentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	record, err := h.consentSvc.Resolve(c.Request.Context(), sessionID, req.Response)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.ConsentResolutionResponse{
		CartID:    record.CartID,
		Decision:  string(record.Decision),
		Timestamp: record.Timestamp,
	})
}

// ProcessPayment handles POST /api/v1/session/payment.
func (h *PipelineHandler) ProcessPayment(c *gin.Context) {
	sessionID := c.GetString(middleware.CtxSessionID)

	result, err := h.paymentSvc.ProcessPayment(c.Request.Context(), sessionID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, result)
}

// Audit handles GET /api/v1/session/audit.
func (h *PipelineHandler) Audit(c *gin.Context) {
	sessionID := c.GetString(middleware.CtxSessionID)

	report, err := h.auditSvc.VerifyChain(c.Request.Context(), sessionID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, report)
}
