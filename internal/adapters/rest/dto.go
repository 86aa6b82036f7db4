package rest

import "github.com/srinugalla/the-slice-x/internal/core/domain"

type ErrorResponse struct {
	Error string `json:"error"`
}

// ListingResponse - объявление в формате таблицы land_listings.
// Отсутствующие значения сериализуются как null.
type ListingResponse struct {
	LandID       int64    `json:"land_id"`
	State        string   `json:"state"`
	District     string   `json:"district"`
	Mandal       string   `json:"mandal"`
	Village      string   `json:"village"`
	TotalPrice   *float64 `json:"total_price"`
	PricePerUnit *float64 `json:"price_per_unit"`
	Area         *float64 `json:"area"`
	AreaUnit     string   `json:"area_unit"`
	OwnerName    *string  `json:"owner_name"`
	Phone        *string  `json:"phone"`
	SellerType   *string  `json:"seller_type"`
	ImageURLs    []string `json:"image_urls"`
}

type RevealListingResponse struct {
	Listing ListingResponse `json:"listing"`
}

type RevealPageResponse struct {
	Page     int               `json:"page"`
	Limit    int               `json:"limit"`
	Listings []ListingResponse `json:"listings"`
}

type FilterOptionsResponse struct {
	States    []string `json:"states"`
	Districts []string `json:"districts"`
	Mandals   []string `json:"mandals"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

func toListingResponse(l domain.Listing) ListingResponse {
	images := l.ImageURLs
	if images == nil {
		images = []string{}
	}
	return ListingResponse{
		LandID:       l.LandID,
		State:        l.State,
		District:     l.District,
		Mandal:       l.Mandal,
		Village:      l.Village,
		TotalPrice:   l.TotalPrice,
		PricePerUnit: l.PricePerUnit,
		Area:         l.Area,
		AreaUnit:     l.AreaUnit,
		OwnerName:    l.OwnerName,
		Phone:        l.Phone,
		SellerType:   l.SellerType,
		ImageURLs:    images,
	}
}

func toPageResponse(p *domain.ListingsPage) RevealPageResponse {
	listings := make([]ListingResponse, 0, len(p.Listings))
	for _, l := range p.Listings {
		listings = append(listings, toListingResponse(l))
	}
	return RevealPageResponse{
		Page:     p.Page,
		Limit:    p.Limit,
		Listings: listings,
	}
}
