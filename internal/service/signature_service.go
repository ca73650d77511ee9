package service

import (
	"crypto/hmac"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/gowebpki/jcs"
	"golang.org/x/crypto/sha3"
)

const (
	sigPrefix = "SIG_"
	sigHexLen = 16
)

// CanonicalSignatureService implements ports.SignatureService by hashing
// an RFC 8785 canonicalization of the contents. Key insertion order
// never affects the tag, so a later stage can prove tampering by
// recomputing and comparing. This is a deterministic content-binding
// stand-in for asymmetric merchant signing.
type CanonicalSignatureService struct{}

// NewCanonicalSignatureService creates a new canonical-hash signature service.
func NewCanonicalSignatureService() *CanonicalSignatureService {
	return &CanonicalSignatureService{}
}

// Sign serializes contents, canonicalizes the JSON per RFC 8785, and
// returns SIG_ followed by the first 16 hex chars of the SHA3-256 digest.
func (s *CanonicalSignatureService) Sign(contents interface{}) (string, error) {
	raw, err := json.Marshal(contents)
	if err != nil {
		return "", fmt.Errorf("marshaling contents: %w", err)
	}

	canonical, err := jcs.Transform(raw)
	if err != nil {
		return "", fmt.Errorf("canonicalizing contents: %w", err)
	}

	sum := sha3.Sum256(canonical)
	return sigPrefix + hex.EncodeToString(sum[:])[:sigHexLen], nil
}

// Verify recomputes the tag for contents and compares it to the stored
// one in constant time.
func (s *CanonicalSignatureService) Verify(contents interface{}, tag string) (bool, error) {
	expected, err := s.Sign(contents)
	if err != nil {
		return false, err
	}
	return hmac.Equal([]byte(expected), []byte(tag)), nil
}
