package port

import (
	"context"

	"github.com/srinugalla/the-slice-x/internal/core/domain"
)

// IdentityProviderPort обменивает bearer-токен на пользователя.
// Невалидный токен - ошибка, обернутая в domain.ErrUnauthorized.
type IdentityProviderPort interface {
	Authenticate(ctx context.Context, token string) (*domain.Identity, error)
}
