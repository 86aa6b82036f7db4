package port

import (
	"context"

	"github.com/srinugalla/the-slice-x/internal/core/domain"
)

// ListingStoragePort - контракт хранилища объявлений (только чтение).
type ListingStoragePort interface {
	// GetByLandID возвращает domain.ErrListingNotFound, если записи нет,
	// и *domain.StoreError при сбое запроса.
	GetByLandID(ctx context.Context, landID int64) (*domain.Listing, error)
	// FindPage возвращает записи с порядковыми номерами [offset, offset+limit) в порядке land_id.
	FindPage(ctx context.Context, filters domain.ListingFilters, limit, offset int) ([]domain.Listing, error)
}

// FilterRepositoryPort отдает значения для фильтров по локации.
type FilterRepositoryPort interface {
	GetFilterOptions(ctx context.Context, state, district string) (*domain.FilterOptions, error)
}

// PingerPort - проверка доступности хранилища. Реализуется *pgxpool.Pool.
type PingerPort interface {
	Ping(ctx context.Context) error
}
