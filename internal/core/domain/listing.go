package domain

import "strings"

// imageURLSeparator - разделитель, которым склеены ссылки на фото в старых записях.
const imageURLSeparator = "|"

// Listing - участок земли, выставленный на продажу.
type Listing struct {
	LandID int64

	State    string
	District string
	Mandal   string
	Village  string

	TotalPrice   *float64
	PricePerUnit *float64
	Area         *float64
	AreaUnit     string

	OwnerName  *string
	Phone      *string
	SellerType *string

	ImageURLs []string
}

// NormalizePhone возвращает nil для значений, означающих "контакта нет": NULL, "" и "0".
func NormalizePhone(phone *string) *string {
	if phone == nil || *phone == "" || *phone == "0" {
		return nil
	}
	return phone
}

// NormalizeContact приводит телефон продавца к каноническому виду.
func (l *Listing) NormalizeContact() {
	l.Phone = NormalizePhone(l.Phone)
}

// SplitImageURLs разбирает строку вида "a.jpg | b.jpg".
func SplitImageURLs(raw string) []string {
	return CleanImageURLs(strings.Split(raw, imageURLSeparator))
}

// CleanImageURLs обрезает пробелы и выкидывает пустые ссылки. Никогда не возвращает nil.
func CleanImageURLs(urls []string) []string {
	cleaned := make([]string, 0, len(urls))
	for _, u := range urls {
		u = strings.TrimSpace(u)
		if u != "" {
			cleaned = append(cleaned, u)
		}
	}
	return cleaned
}

// ListingsPage - одна страница выдачи.
type ListingsPage struct {
	Page     int
	Limit    int
	Listings []Listing
}

// RevealResult - результат раскрытия контакта: либо одно объявление, либо страница.
type RevealResult struct {
	Listing *Listing
	Page    *ListingsPage
}
