package usecase

import (
	"context"
	"fmt"

	"github.com/srinugalla/the-slice-x/internal/contextkeys"
	"github.com/srinugalla/the-slice-x/internal/core/domain"
	"github.com/srinugalla/the-slice-x/internal/core/port"
)

type RevealContactUseCase struct {
	storage port.ListingStoragePort
}

func NewRevealContactUseCase(storage port.ListingStoragePort) *RevealContactUseCase {
	return &RevealContactUseCase{storage: storage}
}

func (uc *RevealContactUseCase) Execute(ctx context.Context, caller *domain.Identity, req domain.RevealRequest) (*domain.RevealResult, error) {
	logger := contextkeys.LoggerFromContext(ctx)

	// Без пользователя в хранилище не ходим.
	if caller == nil || caller.UserID == "" {
		logger.Warn("Reveal attempted without an authenticated caller", nil)
		return nil, domain.ErrUnauthorized
	}

	ucLogger := logger.WithFields(port.Fields{
		"use_case": "RevealContact",
		"user_id":  caller.UserID,
	})

	switch r := req.(type) {
	case domain.ByIDRequest:
		return uc.revealOne(ctx, ucLogger, r)
	case domain.PageRequest:
		return uc.revealPage(ctx, ucLogger, r)
	default:
		ucLogger.Warn("Unsupported request variant", port.Fields{"type": fmt.Sprintf("%T", req)})
		return nil, domain.ErrBadRequest
	}
}

func (uc *RevealContactUseCase) revealOne(ctx context.Context, logger port.LoggerPort, req domain.ByIDRequest) (*domain.RevealResult, error) {
	if req.LandID <= 0 {
		return nil, fmt.Errorf("%w: land_id must be positive", domain.ErrBadRequest)
	}
	ucLogger := logger.WithFields(port.Fields{"land_id": req.LandID})
	ucLogger.Info("Use case started: single listing", nil)

	listing, err := uc.storage.GetByLandID(ctx, req.LandID)
	if err != nil {
		ucLogger.Warn("Storage returned an error", port.Fields{"error": err.Error()})
		return nil, fmt.Errorf("failed to get listing %d: %w", req.LandID, err)
	}

	listing.NormalizeContact()

	ucLogger.Info("Use case finished successfully", port.Fields{"has_phone": listing.Phone != nil})
	return &domain.RevealResult{Listing: listing}, nil
}

func (uc *RevealContactUseCase) revealPage(ctx context.Context, logger port.LoggerPort, req domain.PageRequest) (*domain.RevealResult, error) {
	if req.Page < 1 || req.Limit < 1 {
		return nil, fmt.Errorf("%w: page and limit must be positive", domain.ErrBadRequest)
	}
	from, to := req.Window()
	filters := req.Filters.Normalize()

	ucLogger := logger.WithFields(port.Fields{
		"page":  req.Page,
		"limit": req.Limit,
		"from":  from,
		"to":    to,
	})
	ucLogger.Info("Use case started: listings page", port.Fields{"filtered": !filters.IsEmpty()})

	listings, err := uc.storage.FindPage(ctx, filters, req.Limit, from)
	if err != nil {
		ucLogger.Warn("Storage returned an error", port.Fields{"error": err.Error()})
		return nil, fmt.Errorf("failed to get listings page %d: %w", req.Page, err)
	}

	// Хранилище может вернуть больше, чем просили, если адаптер неисправен.
	if len(listings) > req.Limit {
		listings = listings[:req.Limit]
	}
	for i := range listings {
		listings[i].NormalizeContact()
	}
	if listings == nil {
		listings = []domain.Listing{}
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"items_on_page": len(listings)})
	return &domain.RevealResult{
		Page: &domain.ListingsPage{
			Page:     req.Page,
			Limit:    req.Limit,
			Listings: listings,
		},
	}, nil
}
