package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/srinugalla/the-slice-x/internal/contextkeys"
	"github.com/srinugalla/the-slice-x/internal/core/domain"
	"github.com/srinugalla/the-slice-x/internal/core/port"
)

type AuthenticateCallerUseCase struct {
	identity port.IdentityProviderPort
}

func NewAuthenticateCallerUseCase(identity port.IdentityProviderPort) *AuthenticateCallerUseCase {
	return &AuthenticateCallerUseCase{identity: identity}
}

// Execute обменивает токен на пользователя. Любой отказ провайдера,
// включая его недоступность, возвращается как domain.ErrUnauthorized.
func (uc *AuthenticateCallerUseCase) Execute(ctx context.Context, token string) (*domain.Identity, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "AuthenticateCaller",
	})

	if strings.TrimSpace(token) == "" {
		ucLogger.Warn("Empty bearer token", nil)
		return nil, domain.ErrUnauthorized
	}

	identity, err := uc.identity.Authenticate(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			ucLogger.Warn("Token rejected by identity provider", port.Fields{"error": err.Error()})
			return nil, err
		}
		ucLogger.Error("Identity provider call failed", err, nil)
		return nil, fmt.Errorf("%w: %w", domain.ErrUnauthorized, err)
	}
	if identity == nil || identity.UserID == "" {
		ucLogger.Warn("Identity provider returned no user", nil)
		return nil, domain.ErrUnauthorized
	}

	ucLogger.Debug("Caller authenticated", port.Fields{"user_id": identity.UserID, "role": identity.Role})
	return identity, nil
}
