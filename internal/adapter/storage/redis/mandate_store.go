package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"charity-mandate-gateway/internal/core/domain"

	goredis "github.com/redis/go-redis/v9"
)

// MandateStore implements ports.MandateStore on Redis. Each mandate
// slot is one JSON value keyed by session and kind; every write
// refreshes the session TTL so abandoned sessions age out together.
type MandateStore struct {
	client *goredis.Client
	prefix string
	ttl    time.Duration
}

// NewMandateStore creates a Redis-backed mandate store. ttl is the key
// lifetime per slot; zero means no expiry.
func NewMandateStore(client *goredis.Client, ttl time.Duration) *MandateStore {
	return &MandateStore{
		client: client,
		prefix: "mandate:",
		ttl:    ttl,
	}
}

func (s *MandateStore) key(sessionID string, kind domain.MandateKind) string {
	return fmt.Sprintf("%s%s:%s", s.prefix, sessionID, kind)
}

func (s *MandateStore) put(ctx context.Context, sessionID string, kind domain.MandateKind, v interface{}) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshaling %s mandate: %w", kind, err)
	}
	if err := s.client.Set(ctx, s.key(sessionID, kind), raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis mandate set: %w", err)
	}
	return nil
}

// get unmarshals the slot into v. Reports false when the slot is empty.
func (s *MandateStore) get(ctx context.Context, sessionID string, kind domain.MandateKind, v interface{}) (bool, error) {
	raw, err := s.client.Get(ctx, s.key(sessionID, kind)).Bytes()
	if err != nil {
		if err == goredis.Nil {
			return false, nil
		}
		return false, fmt.Errorf("redis mandate get: %w", err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return false, fmt.Errorf("unmarshaling %s mandate: %w", kind, err)
	}
	return true, nil
}

func (s *MandateStore) PutIntent(ctx context.Context, sessionID string, m *domain.IntentMandate) error {
	return s.put(ctx, sessionID, domain.KindIntent, m)
}

func (s *MandateStore) GetIntent(ctx context.Context, sessionID string) (*domain.IntentMandate, error) {
	var m domain.IntentMandate
	ok, err := s.get(ctx, sessionID, domain.KindIntent, &m)
	if err != nil || !ok {
		return nil, err
	}
	return &m, nil
}

func (s *MandateStore) PutCart(ctx context.Context, sessionID string, m *domain.CartMandate) error {
	return s.put(ctx, sessionID, domain.KindCart, m)
}

func (s *MandateStore) GetCart(ctx context.Context, sessionID string) (*domain.CartMandate, error) {
	var m domain.CartMandate
	ok, err := s.get(ctx, sessionID, domain.KindCart, &m)
	if err != nil || !ok {
		return nil, err
	}
	return &m, nil
}

func (s *MandateStore) PutConsent(ctx context.Context, sessionID string, r *domain.ConsentRecord) error {
	return s.put(ctx, sessionID, domain.KindConsent, r)
}

func (s *MandateStore) GetConsent(ctx context.Context, sessionID string) (*domain.ConsentRecord, error) {
	var r domain.ConsentRecord
	ok, err := s.get(ctx, sessionID, domain.KindConsent, &r)
	if err != nil || !ok {
		return nil, err
	}
	return &r, nil
}

func (s *MandateStore) PutPayment(ctx context.Context, sessionID string, m *domain.PaymentMandate) error {
	return s.put(ctx, sessionID, domain.KindPayment, m)
}

func (s *MandateStore) GetPayment(ctx context.Context, sessionID string) (*domain.PaymentMandate, error) {
	var m domain.PaymentMandate
	ok, err := s.get(ctx, sessionID, domain.KindPayment, &m)
	if err != nil || !ok {
		return nil, err
	}
	return &m, nil
}

func (s *MandateStore) PutResult(ctx context.Context, sessionID string, r *domain.TransactionResult) error {
	return s.put(ctx, sessionID, domain.KindResult, r)
}

func (s *MandateStore) GetResult(ctx context.Context, sessionID string) (*domain.TransactionResult, error) {
	var r domain.TransactionResult
	ok, err := s.get(ctx, sessionID, domain.KindResult, &r)
	if err != nil || !ok {
		return nil, err
	}
	return &r, nil
}

// DeleteSession removes every mandate slot belonging to a session.
func (s *MandateStore) DeleteSession(ctx context.Context, sessionID string) error {
	keys := []string{
		s.key(sessionID, domain.KindIntent),
		s.key(sessionID, domain.KindCart),
		s.key(sessionID, domain.KindConsent),
		s.key(sessionID, domain.KindPayment),
		s.key(sessionID, domain.KindResult),
	}
	if err := s.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("redis mandate delete: %w", err)
	}
	return nil
}
