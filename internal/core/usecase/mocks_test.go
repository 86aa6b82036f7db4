package usecase

import (
	"context"

	"github.com/srinugalla/the-slice-x/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

type MockListingStorage struct{ mock.Mock }

func (m *MockListingStorage) GetByLandID(ctx context.Context, landID int64) (*domain.Listing, error) {
	args := m.Called(ctx, landID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Listing), args.Error(1)
}

func (m *MockListingStorage) FindPage(ctx context.Context, filters domain.ListingFilters, limit, offset int) ([]domain.Listing, error) {
	args := m.Called(ctx, filters, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Listing), args.Error(1)
}

type MockIdentityProvider struct{ mock.Mock }

func (m *MockIdentityProvider) Authenticate(ctx context.Context, token string) (*domain.Identity, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Identity), args.Error(1)
}

type MockFilterRepository struct{ mock.Mock }

func (m *MockFilterRepository) GetFilterOptions(ctx context.Context, state, district string) (*domain.FilterOptions, error) {
	args := m.Called(ctx, state, district)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FilterOptions), args.Error(1)
}

// sliceStorage - хранилище в памяти с порядком по индексу.
type sliceStorage struct {
	listings []domain.Listing
}

func (s *sliceStorage) GetByLandID(_ context.Context, landID int64) (*domain.Listing, error) {
	for _, l := range s.listings {
		if l.LandID == landID {
			copied := l
			return &copied, nil
		}
	}
	return nil, domain.ErrListingNotFound
}

func (s *sliceStorage) FindPage(_ context.Context, _ domain.ListingFilters, limit, offset int) ([]domain.Listing, error) {
	if offset >= len(s.listings) {
		return []domain.Listing{}, nil
	}
	end := offset + limit
	if end > len(s.listings) {
		end = len(s.listings)
	}
	page := make([]domain.Listing, end-offset)
	copy(page, s.listings[offset:end])
	return page, nil
}
