package postgres

import (
	"fmt"
	"strings"

	"github.com/srinugalla/the-slice-x/internal/core/domain"
)

// listingColumns - колонки в порядке scanListing.
const listingColumns = `land_id,
	COALESCE(state, ''), COALESCE(district, ''), COALESCE(mandal, ''), COALESCE(village, ''),
	total_price::float8, price_per_unit::float8, area::float8, COALESCE(area_unit, ''),
	owner_name, phone::text, seller_type,
	to_jsonb(image_urls)`

type queryBuilder struct {
	conditions []string
	args       []interface{}
	argId      int
}

func newQueryBuilder() *queryBuilder {
	return &queryBuilder{
		argId: 1,
		args:  make([]interface{}, 0),
	}
}

func (qb *queryBuilder) addCondition(condition string, fieldName string, arg interface{}) {
	qb.conditions = append(qb.conditions, fmt.Sprintf(condition, fieldName, qb.argId))
	qb.args = append(qb.args, arg)
	qb.argId++
}

// nextArg резервирует плейсхолдер под аргумент вне WHERE (LIMIT, OFFSET).
func (qb *queryBuilder) nextArg(arg interface{}) string {
	placeholder := fmt.Sprintf("$%d", qb.argId)
	qb.args = append(qb.args, arg)
	qb.argId++
	return placeholder
}

func (qb *queryBuilder) where() string {
	if len(qb.conditions) == 0 {
		return ""
	}
	return "WHERE " + strings.Join(qb.conditions, " AND ")
}

// applyFilters переводит фильтры главной страницы в условия WHERE.
// Ожидает уже нормализованные фильтры.
func applyFilters(filters domain.ListingFilters) *queryBuilder {
	qb := newQueryBuilder()

	if filters.State != "" {
		qb.addCondition("%s = $%d", "state", filters.State)
	}
	if filters.District != "" {
		qb.addCondition("%s = $%d", "district", filters.District)
	}
	if filters.Mandal != "" {
		qb.addCondition("%s = $%d", "mandal", filters.Mandal)
	}
	// Поиск по подстроке в названии деревни без учета регистра.
	if filters.Search != "" {
		qb.addCondition(`lower(%s) LIKE $%d ESCAPE '\'`, "village", "%"+escapeLike(filters.Search)+"%")
	}

	return qb
}

// buildPageQuery строит запрос страницы, упорядоченной по land_id.
func buildPageQuery(filters domain.ListingFilters, limit, offset int) (string, []interface{}) {
	qb := applyFilters(filters)
	limitArg := qb.nextArg(limit)
	offsetArg := qb.nextArg(offset)

	query := fmt.Sprintf(`SELECT %s FROM land_listings %s ORDER BY land_id ASC LIMIT %s OFFSET %s`,
		listingColumns, qb.where(), limitArg, offsetArg)
	return query, qb.args
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
