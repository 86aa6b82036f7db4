package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name  string
		phone *string
		want  *string
	}{
		{name: "null stays null", phone: nil, want: nil},
		{name: "empty string", phone: strPtr(""), want: nil},
		{name: "zero sentinel", phone: strPtr("0"), want: nil},
		{name: "real number", phone: strPtr("+91 98480 22338"), want: strPtr("+91 98480 22338")},
		{name: "number starting with zero", phone: strPtr("0863222111"), want: strPtr("0863222111")},
		{name: "double zero is a value", phone: strPtr("00"), want: strPtr("00")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizePhone(tt.phone))
		})
	}
}

func TestListing_NormalizeContact(t *testing.T) {
	l := Listing{LandID: 42, Village: "X", Phone: strPtr("0")}
	l.NormalizeContact()
	assert.Nil(t, l.Phone)
	assert.Equal(t, "X", l.Village)
}

func TestSplitImageURLs(t *testing.T) {
	assert.Equal(t,
		[]string{"https://cdn/a.jpg", "https://cdn/b.jpg"},
		SplitImageURLs(" https://cdn/a.jpg | | https://cdn/b.jpg|"),
	)
	assert.Equal(t, []string{}, SplitImageURLs(""))
}

func TestCleanImageURLs_NeverNil(t *testing.T) {
	got := CleanImageURLs(nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
