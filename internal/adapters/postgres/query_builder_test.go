package postgres

import (
	"strings"
	"testing"

	"github.com/srinugalla/the-slice-x/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestBuildPageQuery_NoFilters(t *testing.T) {
	query, args := buildPageQuery(domain.ListingFilters{}, 20, 40)

	assert.NotContains(t, query, "WHERE")
	assert.True(t, strings.HasSuffix(query, "ORDER BY land_id ASC LIMIT $1 OFFSET $2"))
	assert.Equal(t, []interface{}{20, 40}, args)
}

func TestBuildPageQuery_AllFilters(t *testing.T) {
	filters := domain.ListingFilters{
		State:    "Andhra Pradesh",
		District: "Guntur",
		Mandal:   "Tenali",
		Search:   "kollur",
	}

	query, args := buildPageQuery(filters, 10, 0)

	assert.Contains(t, query, `WHERE state = $1 AND district = $2 AND mandal = $3 AND lower(village) LIKE $4 ESCAPE '\'`)
	assert.Contains(t, query, "LIMIT $5 OFFSET $6")
	assert.Equal(t, []interface{}{"Andhra Pradesh", "Guntur", "Tenali", "%kollur%", 10, 0}, args)
}

func TestBuildPageQuery_SearchOnly(t *testing.T) {
	query, args := buildPageQuery(domain.ListingFilters{Search: "50%_off"}, 5, 5)

	assert.Contains(t, query, "WHERE lower(village) LIKE $1")
	assert.Equal(t, `%50\%\_off%`, args[0])
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `a\\b`, escapeLike(`a\b`))
	assert.Equal(t, `100\%`, escapeLike(`100%`))
	assert.Equal(t, `x\_y`, escapeLike(`x_y`))
	assert.Equal(t, "plain", escapeLike("plain"))
}

func TestDecodeImageURLs(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{name: "null column", raw: "", want: []string{}},
		{name: "json null", raw: "null", want: []string{}},
		{name: "pipe joined string", raw: `"https://cdn/a.jpg| https://cdn/b.jpg |"`, want: []string{"https://cdn/a.jpg", "https://cdn/b.jpg"}},
		{name: "array", raw: `[" https://cdn/a.jpg", "", null, "https://cdn/c.jpg"]`, want: []string{"https://cdn/a.jpg", "https://cdn/c.jpg"}},
		{name: "unexpected number", raw: `42`, want: []string{}},
		{name: "garbage", raw: `{`, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, decodeImageURLs([]byte(tt.raw)))
		})
	}
}
