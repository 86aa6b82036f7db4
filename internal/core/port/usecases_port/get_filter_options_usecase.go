package usecases_port

import (
	"context"

	"github.com/srinugalla/the-slice-x/internal/core/domain"
)

type GetFilterOptionsUseCasePort interface {
	Execute(ctx context.Context, state, district string) (*domain.FilterOptions, error)
}
