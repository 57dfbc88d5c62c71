// Package publiclink signs the (quoteId, ownerId) pair carried by public
// quote links.
package publiclink

import (
	"errors"
	"fmt"
	"time"

	"focusquote/internal/usecase/interfaces"

	"github.com/golang-jwt/jwt/v5"
)

const issuer = "focusquote"

var signingMethod = jwt.SigningMethodHS256

var (
	ErrTokenRequired = errors.New("public link token is required")
	ErrTokenMismatch = errors.New("public link token does not match the link")
)

type linkClaims struct {
	QuoteID string `json:"q"`
	OwnerID string `json:"u"`
	jwt.RegisteredClaims
}

// Signer issues HS256 tokens bound to one quote link. A zero TTL issues
// tokens without expiry. With an empty secret the signer is disabled and
// accepts every link.
type Signer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

var _ interfaces.ILinkSigner = (*Signer)(nil)

func NewSigner(secret string, ttl time.Duration) *Signer {
	return &Signer{secret: []byte(secret), ttl: ttl, now: time.Now}
}

func (s *Signer) Enabled() bool {
	return s != nil && len(s.secret) > 0
}

func (s *Signer) Sign(quoteID, ownerID string) (string, error) {
	if !s.Enabled() {
		return "", nil
	}
	now := s.now()
	claims := linkClaims{
		QuoteID: quoteID,
		OwnerID: ownerID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:   issuer,
			IssuedAt: jwt.NewNumericDate(now),
		},
	}
	if s.ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(s.ttl))
	}

	signed, err := jwt.NewWithClaims(signingMethod, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("signing link token: %w", err)
	}
	return signed, nil
}

func (s *Signer) Verify(token, quoteID, ownerID string) error {
	if !s.Enabled() {
		return nil
	}
	if token == "" {
		return ErrTokenRequired
	}

	claims := &linkClaims{}
	_, err := jwt.ParseWithClaims(
		token,
		claims,
		func(t *jwt.Token) (interface{}, error) {
			return s.secret, nil
		},
		jwt.WithValidMethods([]string{signingMethod.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return fmt.Errorf("parsing link token: %w", err)
	}
	if claims.QuoteID != quoteID || claims.OwnerID != ownerID {
		return ErrTokenMismatch
	}
	return nil
}
