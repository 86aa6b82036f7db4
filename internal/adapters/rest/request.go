package rest

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/srinugalla/the-slice-x/internal/core/domain"
	"github.com/srinugalla/the-slice-x/internal/core/port"
)

const (
	revealRequestSchema  = "RevealContactRequest"
	revealRequestVersion = "1.0.0"

	defaultPage = 1
	maxPage     = math.MaxInt32
)

// PageDefaults задает размер страницы по умолчанию и верхнюю границу limit.
type PageDefaults struct {
	DefaultLimit int
	MaxLimit     int
}

func (d PageDefaults) withFallbacks() PageDefaults {
	if d.MaxLimit < 1 {
		d.MaxLimit = 100
	}
	if d.DefaultLimit < 1 || d.DefaultLimit > d.MaxLimit {
		d.DefaultLimit = 20
		if d.DefaultLimit > d.MaxLimit {
			d.DefaultLimit = d.MaxLimit
		}
	}
	return d
}

// buildRevealRequest строит вариант запроса из тела, уже прошедшего схему.
// land_id (не null) выбирает одно объявление. Некорректные page и limit
// заменяются значениями по умолчанию.
func (d PageDefaults) buildRevealRequest(body map[string]interface{}) (domain.RevealRequest, error) {
	if raw, ok := body["land_id"]; ok && raw != nil {
		landID, ok := wholeNumber(raw)
		if !ok || landID <= 0 {
			return nil, fmt.Errorf("%w: land_id must be a positive integer", domain.ErrBadRequest)
		}
		return domain.ByIDRequest{LandID: landID}, nil
	}

	d = d.withFallbacks()

	page := defaultPage
	if n, ok := wholeNumber(body["page"]); ok && n >= 1 && n <= maxPage {
		page = int(n)
	}

	limit := d.DefaultLimit
	if n, ok := wholeNumber(body["limit"]); ok && n >= 1 && n <= int64(d.MaxLimit) {
		limit = int(n)
	}

	return domain.PageRequest{
		Page:  page,
		Limit: limit,
		Filters: domain.ListingFilters{
			State:    stringField(body, "state"),
			District: stringField(body, "district"),
			Mandal:   stringField(body, "mandal"),
			Search:   stringField(body, "search"),
		},
	}, nil
}

// wholeNumber принимает json.Number или строку с целым числом ("2", "2.0").
func wholeNumber(v interface{}) (int64, bool) {
	var s string
	switch t := v.(type) {
	case json.Number:
		s = t.String()
	case string:
		s = strings.TrimSpace(t)
	default:
		return 0, false
	}

	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n, true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) || f != math.Trunc(f) {
		return 0, false
	}
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, false
	}
	return int64(f), true
}

func stringField(body map[string]interface{}, key string) string {
	s, _ := body[key].(string)
	return s
}

func requestKind(req domain.RevealRequest) string {
	switch req.(type) {
	case domain.ByIDRequest:
		return port.KindByID
	case domain.PageRequest:
		return port.KindPage
	default:
		return port.KindUnknown
	}
}
