package identity_adapter

import (
	"context"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/srinugalla/the-slice-x/internal/contextkeys"
	"github.com/srinugalla/the-slice-x/internal/core/domain"
	"github.com/srinugalla/the-slice-x/internal/core/port"
)

// anonRole - роль токена публичного ключа. Такой токен не принадлежит пользователю.
const anonRole = "anon"

// JWTVerifier проверяет access-токены провайдера локально по общему секрету (HS256).
type JWTVerifier struct {
	signingKey []byte
	parser     *jwt.Parser
}

type accessTokenClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// NewJWTVerifier создает верификатор. Пустой audience отключает проверку aud.
func NewJWTVerifier(signingKey, audience string) (*JWTVerifier, error) {
	if signingKey == "" {
		return nil, fmt.Errorf("JWT signing key cannot be empty")
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if audience != "" {
		opts = append(opts, jwt.WithAudience(audience))
	}

	return &JWTVerifier{
		signingKey: []byte(signingKey),
		parser:     jwt.NewParser(opts...),
	}, nil
}

func (v *JWTVerifier) Authenticate(ctx context.Context, token string) (*domain.Identity, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "JWTVerifier",
		"method":    "Authenticate",
	})

	claims := &accessTokenClaims{}
	parsed, err := v.parser.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return v.signingKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			logger.Warn("Token has expired", nil)
		} else {
			logger.Warn("Invalid token format or signature", port.Fields{"error": err.Error()})
		}
		return nil, fmt.Errorf("%w: %w", domain.ErrUnauthorized, err)
	}
	if !parsed.Valid {
		return nil, domain.ErrUnauthorized
	}

	if claims.Subject == "" {
		logger.Warn("Token has no subject", nil)
		return nil, fmt.Errorf("%w: token has no subject", domain.ErrUnauthorized)
	}
	if claims.Role == anonRole {
		logger.Warn("Anonymous key used as user token", nil)
		return nil, fmt.Errorf("%w: anonymous token", domain.ErrUnauthorized)
	}

	return &domain.Identity{
		UserID: claims.Subject,
		Email:  claims.Email,
		Role:   claims.Role,
	}, nil
}
