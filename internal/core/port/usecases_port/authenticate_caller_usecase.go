package usecases_port

import (
	"context"

	"github.com/srinugalla/the-slice-x/internal/core/domain"
)

type AuthenticateCallerUseCasePort interface {
	Execute(ctx context.Context, token string) (*domain.Identity, error)
}
