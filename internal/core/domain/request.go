package domain

import (
	"strings"

	"golang.org/x/text/cases"
)

// RevealRequest - запрос на раскрытие контакта. Реализуется только ByIDRequest и PageRequest.
type RevealRequest interface {
	isRevealRequest()
}

// ByIDRequest - запрос одного объявления по land_id.
type ByIDRequest struct {
	LandID int64
}

// PageRequest - запрос страницы объявлений. Page начинается с 1.
type PageRequest struct {
	Page    int
	Limit   int
	Filters ListingFilters
}

func (ByIDRequest) isRevealRequest() {}
func (PageRequest) isRevealRequest() {}

// Offset - смещение первой записи страницы.
func (r PageRequest) Offset() int {
	return (r.Page - 1) * r.Limit
}

// Window возвращает включительные границы [from, to] страницы в порядке хранилища.
func (r PageRequest) Window() (from, to int) {
	from = r.Offset()
	return from, from + r.Limit - 1
}

// ListingFilters - фильтры главной страницы: штат, округ, мандал и поиск по деревне.
type ListingFilters struct {
	State    string
	District string
	Mandal   string
	Search   string
}

// Normalize обрезает пробелы и приводит строку поиска к регистронезависимому виду.
// cases.Caser хранит состояние, поэтому создается на каждый вызов.
func (f ListingFilters) Normalize() ListingFilters {
	return ListingFilters{
		State:    strings.TrimSpace(f.State),
		District: strings.TrimSpace(f.District),
		Mandal:   strings.TrimSpace(f.Mandal),
		Search:   cases.Fold().String(strings.TrimSpace(f.Search)),
	}
}

// IsEmpty - true, если ни один фильтр не задан.
func (f ListingFilters) IsEmpty() bool {
	return f.State == "" && f.District == "" && f.Mandal == "" && f.Search == ""
}

// FilterOptions - значения для выпадающих списков фильтров.
type FilterOptions struct {
	States    []string
	Districts []string
	Mandals   []string
}
