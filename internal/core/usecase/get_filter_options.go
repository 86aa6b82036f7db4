package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/srinugalla/the-slice-x/internal/contextkeys"
	"github.com/srinugalla/the-slice-x/internal/core/domain"
	"github.com/srinugalla/the-slice-x/internal/core/port"
)

type GetFilterOptionsUseCase struct {
	repo port.FilterRepositoryPort
}

func NewGetFilterOptionsUseCase(repo port.FilterRepositoryPort) *GetFilterOptionsUseCase {
	return &GetFilterOptionsUseCase{repo: repo}
}

// Execute возвращает штаты, округа выбранного штата и мандалы выбранного округа.
// Округ без штата не учитывается, как и на главной странице.
func (uc *GetFilterOptionsUseCase) Execute(ctx context.Context, state, district string) (*domain.FilterOptions, error) {
	state = strings.TrimSpace(state)
	district = strings.TrimSpace(district)
	if state == "" {
		district = ""
	}

	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "GetFilterOptions",
		"state":    state,
		"district": district,
	})
	ucLogger.Debug("Use case started", nil)

	options, err := uc.repo.GetFilterOptions(ctx, state, district)
	if err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return nil, fmt.Errorf("failed to get filter options: %w", err)
	}

	if options.States == nil {
		options.States = []string{}
	}
	if options.Districts == nil {
		options.Districts = []string{}
	}
	if options.Mandals == nil {
		options.Mandals = []string{}
	}
	return options, nil
}
