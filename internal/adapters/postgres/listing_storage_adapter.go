package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/srinugalla/the-slice-x/internal/core/domain"
)

// ListingStorageAdapter читает объявления из таблицы land_listings.
type ListingStorageAdapter struct {
	pool         *pgxpool.Pool
	queryTimeout time.Duration
}

// NewListingStorageAdapter создает адаптер. queryTimeout = 0 означает без таймаута.
func NewListingStorageAdapter(pool *pgxpool.Pool, queryTimeout time.Duration) (*ListingStorageAdapter, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &ListingStorageAdapter{
		pool:         pool,
		queryTimeout: queryTimeout,
	}, nil
}

func (a *ListingStorageAdapter) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if a.queryTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, a.queryTimeout)
}

func (a *ListingStorageAdapter) GetByLandID(ctx context.Context, landID int64) (*domain.Listing, error) {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	query := fmt.Sprintf(`SELECT %s FROM land_listings WHERE land_id = $1`, listingColumns)

	listing, err := scanListing(a.pool.QueryRow(ctx, query, landID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrListingNotFound
		}
		return nil, &domain.StoreError{Op: "GetByLandID", Err: err}
	}
	return listing, nil
}

func (a *ListingStorageAdapter) FindPage(ctx context.Context, filters domain.ListingFilters, limit, offset int) ([]domain.Listing, error) {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	query, args := buildPageQuery(filters, limit, offset)

	rows, err := a.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, &domain.StoreError{Op: "FindPage", Err: err}
	}
	defer rows.Close()

	listings := make([]domain.Listing, 0, limit)
	for rows.Next() {
		listing, err := scanListing(rows)
		if err != nil {
			return nil, &domain.StoreError{Op: "FindPage", Err: err}
		}
		listings = append(listings, *listing)
	}

	if err = rows.Err(); err != nil {
		return nil, &domain.StoreError{Op: "FindPage", Err: err}
	}

	return listings, nil
}

func scanListing(row pgx.Row) (*domain.Listing, error) {
	var (
		l         domain.Listing
		imagesRaw []byte
	)
	err := row.Scan(
		&l.LandID,
		&l.State, &l.District, &l.Mandal, &l.Village,
		&l.TotalPrice, &l.PricePerUnit, &l.Area, &l.AreaUnit,
		&l.OwnerName, &l.Phone, &l.SellerType,
		&imagesRaw,
	)
	if err != nil {
		return nil, err
	}
	l.ImageURLs = decodeImageURLs(imagesRaw)
	return &l, nil
}

// decodeImageURLs принимает image_urls в виде JSON: строка "a|b" в старых
// записях или массив в новых. Все остальное дает пустой список.
func decodeImageURLs(raw []byte) []string {
	if len(raw) == 0 {
		return []string{}
	}

	var value interface{}
	if err := json.Unmarshal(raw, &value); err != nil {
		return []string{}
	}

	switch v := value.(type) {
	case string:
		return domain.SplitImageURLs(v)
	case []interface{}:
		urls := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				urls = append(urls, s)
			}
		}
		return domain.CleanImageURLs(urls)
	default:
		return []string{}
	}
}
