package auth

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"time"

	"aidanwoods.dev/go-paseto"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/vadimbarashkov/qr-redirect/internal/entity"
)

const (
	tokenIssuer   = "qr-redirect"
	tokenAudience = "qr-redirect-api"

	keyBytesSize = 32
	keyHexSize   = 64
)

// TokenService issues and verifies PASETO v4.local access tokens whose
// subject is the user id.
type TokenService struct {
	key paseto.V4SymmetricKey
	ttl time.Duration
	now func() time.Time
}

// NewTokenService creates a TokenService from a 32-byte hex encoded key.
func NewTokenService(keyHex string, ttl time.Duration) (*TokenService, error) {
	const op = "auth.NewTokenService"

	if len(keyHex) != keyHexSize {
		return nil, fmt.Errorf("%s: key must be exactly %d hex characters (%d bytes), got %d", op, keyHexSize, keyBytesSize, len(keyHex))
	}

	keyBytes, err := hex.DecodeString(keyHex)
	if err != nil {
		return nil, fmt.Errorf("%s: invalid hex key: %w", op, err)
	}

	key, err := paseto.V4SymmetricKeyFromBytes(keyBytes)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to create symmetric key: %w", op, err)
	}

	return &TokenService{
		key: key,
		ttl: ttl,
		now: time.Now,
	}, nil
}

// Issue returns an encrypted token for userID and its expiry.
func (s *TokenService) Issue(userID int64) (string, time.Time, error) {
	const op = "auth.TokenService.Issue"

	now := s.now()
	expiresAt := now.Add(s.ttl)

	jti, err := gonanoid.New()
	if err != nil {
		return "", time.Time{}, fmt.Errorf("%s: failed to generate token id: %w", op, err)
	}

	token := paseto.NewToken()
	token.SetIssuer(tokenIssuer)
	token.SetAudience(tokenAudience)
	token.SetSubject(strconv.FormatInt(userID, 10))
	token.SetIssuedAt(now)
	token.SetNotBefore(now)
	token.SetExpiration(expiresAt)
	token.SetJti(jti)

	return token.V4Encrypt(s.key, nil), expiresAt, nil
}

// Verify decrypts the token, checks its claims and returns the user id.
// Every failure is reported as entity.ErrInvalidToken.
func (s *TokenService) Verify(tokenString string) (int64, error) {
	const op = "auth.TokenService.Verify"

	parser := paseto.NewParser()
	parser.AddRule(paseto.ForAudience(tokenAudience))
	parser.AddRule(paseto.IssuedBy(tokenIssuer))
	parser.AddRule(paseto.NotExpired())
	parser.AddRule(paseto.ValidAt(s.now()))

	token, err := parser.ParseV4Local(s.key, tokenString, nil)
	if err != nil {
		return 0, fmt.Errorf("%s: %w: %w", op, entity.ErrInvalidToken, err)
	}

	sub, err := token.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("%s: %w: %w", op, entity.ErrInvalidToken, err)
	}

	userID, err := strconv.ParseInt(sub, 10, 64)
	if err != nil || userID <= 0 {
		return 0, fmt.Errorf("%s: %w: bad subject", op, entity.ErrInvalidToken)
	}

	return userID, nil
}
