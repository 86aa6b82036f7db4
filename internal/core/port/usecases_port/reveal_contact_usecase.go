package usecases_port

import (
	"context"

	"github.com/srinugalla/the-slice-x/internal/core/domain"
)

type RevealContactUseCasePort interface {
	// caller - пользователь, уже прошедший аутентификацию; nil означает отказ.
	Execute(ctx context.Context, caller *domain.Identity, req domain.RevealRequest) (*domain.RevealResult, error)
}
