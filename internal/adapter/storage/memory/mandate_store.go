// Package memory provides an in-process MandateStore for single-node
// deployments and tests.
package memory

import (
	"context"
	"sync"

	"charity-mandate-gateway/internal/core/domain"
)

// sessionRecord holds the five per-session mandate slots.
type sessionRecord struct {
	intent  *domain.IntentMandate
	cart    *domain.CartMandate
	consent *domain.ConsentRecord
	payment *domain.PaymentMandate
	result  *domain.TransactionResult
}

// MandateStore implements ports.MandateStore with a mutex-guarded map.
type MandateStore struct {
	mu       sync.RWMutex
	sessions map[string]*sessionRecord
}

// NewMandateStore creates an empty in-memory mandate store.
func NewMandateStore() *MandateStore {
	return &MandateStore{sessions: make(map[string]*sessionRecord)}
}

func (s *MandateStore) record(sessionID string) *sessionRecord {
	rec, ok := s.sessions[sessionID]
	if !ok {
		rec = &sessionRecord{}
		s.sessions[sessionID] = rec
	}
	return rec
}

func (s *MandateStore) PutIntent(_ context.Context, sessionID string, m *domain.IntentMandate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record(sessionID).intent = m
	return nil
}

func (s *MandateStore) GetIntent(_ context.Context, sessionID string) (*domain.IntentMandate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if rec, ok := s.sessions[sessionID]; ok {
		return rec.intent, nil
	}
	return nil, nil
}

func (s *MandateStore) PutCart(_ context.Context, sessionID string, m *domain.CartMandate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record(sessionID).cart = m
	return nil
}

func (s *MandateStore) GetCart(_ context.Context, sessionID string) (*domain.CartMandate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if rec, ok := s.sessions[sessionID]; ok {
		return rec.cart, nil
	}
	return nil, nil
}

func (s *MandateStore) PutConsent(_ context.Context, sessionID string, r *domain.ConsentRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record(sessionID).consent = r
	return nil
}

func (s *MandateStore) GetConsent(_ context.Context, sessionID string) (*domain.ConsentRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if rec, ok := s.sessions[sessionID]; ok {
		return rec.consent, nil
	}
	return nil, nil
}

func (s *MandateStore) PutPayment(_ context.Context, sessionID string, m *domain.PaymentMandate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record(sessionID).payment = m
	return nil
}

func (s *MandateStore) GetPayment(_ context.Context, sessionID string) (*domain.PaymentMandate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if rec, ok := s.sessions[sessionID]; ok {
		return rec.payment, nil
	}
	return nil, nil
}

func (s *MandateStore) PutResult(_ context.Context, sessionID string, r *domain.TransactionResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record(sessionID).result = r
	return nil
}

func (s *MandateStore) GetResult(_ context.Context, sessionID string) (*domain.TransactionResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if rec, ok := s.sessions[sessionID]; ok {
		return rec.result, nil
	}
	return nil, nil
}

func (s *MandateStore) DeleteSession(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	return nil
}
