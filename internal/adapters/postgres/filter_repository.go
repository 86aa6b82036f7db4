package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/srinugalla/the-slice-x/internal/core/domain"
)

type FilterRepository struct {
	pool         *pgxpool.Pool
	queryTimeout time.Duration
}

func NewFilterRepository(pool *pgxpool.Pool, queryTimeout time.Duration) (*FilterRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &FilterRepository{
		pool:         pool,
		queryTimeout: queryTimeout,
	}, nil
}

// GetFilterOptions возвращает отсортированные уникальные штаты, округа штата
// и мандалы округа. Пустой state или district пропускает соответствующий список.
func (r *FilterRepository) GetFilterOptions(ctx context.Context, state, district string) (*domain.FilterOptions, error) {
	if r.queryTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.queryTimeout)
		defer cancel()
	}

	options := &domain.FilterOptions{
		Districts: []string{},
		Mandals:   []string{},
	}

	var err error
	options.States, err = r.distinct(ctx, "GetStates", "state", nil)
	if err != nil {
		return nil, err
	}

	if state != "" {
		options.Districts, err = r.distinct(ctx, "GetDistricts", "district", map[string]string{"state": state})
		if err != nil {
			return nil, err
		}
	}

	if state != "" && district != "" {
		options.Mandals, err = r.distinct(ctx, "GetMandals", "mandal", map[string]string{"state": state, "district": district})
		if err != nil {
			return nil, err
		}
	}

	return options, nil
}

// distinct выбирает непустые уникальные значения column с точными фильтрами по parents.
func (r *FilterRepository) distinct(ctx context.Context, op, column string, parents map[string]string) ([]string, error) {
	qb := newQueryBuilder()
	qb.conditions = append(qb.conditions, fmt.Sprintf("%s IS NOT NULL AND %s <> ''", column, column))
	for _, parent := range []string{"state", "district"} {
		if value, ok := parents[parent]; ok {
			qb.addCondition("%s = $%d", parent, value)
		}
	}

	query := fmt.Sprintf(`SELECT DISTINCT %s FROM land_listings %s ORDER BY %s ASC`, column, qb.where(), column)

	rows, err := r.pool.Query(ctx, query, qb.args...)
	if err != nil {
		return nil, &domain.StoreError{Op: op, Err: err}
	}
	defer rows.Close()

	values := make([]string, 0)
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, &domain.StoreError{Op: op, Err: err}
		}
		values = append(values, v)
	}
	if err := rows.Err(); err != nil {
		return nil, &domain.StoreError{Op: op, Err: err}
	}

	return values, nil
}
