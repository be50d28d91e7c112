// Copyright (c) 2026 Super 3000. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/super3000/internal/catalog"
)

func TestFormatYears(t *testing.T) {
	tests := []struct {
		name     string
		years    []int
		expected string
	}{
		{"empty", nil, ""},
		{"single", []int{2015}, "2015"},
		{"unsorted_span", []int{2018, 2015, 2016}, "2015-2018"},
		{"gap_is_still_a_span", []int{2015, 2016, 2018}, "2015-2018"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, catalog.FormatYears(tt.years))
		})
	}
}

func TestFormatYears_DoesNotReorderInput(t *testing.T) {
	years := []int{2018, 2015}
	catalog.FormatYears(years)
	assert.Equal(t, []int{2018, 2015}, years)
}

func TestCompatibilityLine(t *testing.T) {
	assert.Equal(t, "Kia Rio 2012-2013",
		catalog.CompatibilityLine(catalog.CompatibleCar{Make: "Kia", Model: "Rio", Years: []int{2013, 2012}}))
	assert.Equal(t, "Kia Rio",
		catalog.CompatibilityLine(catalog.CompatibleCar{Make: "Kia", Model: "Rio"}))
}

func TestImageOrPlaceholder(t *testing.T) {
	assert.Equal(t, catalog.PlaceholderImage, catalog.ImageOrPlaceholder(""))
	assert.Equal(t, catalog.PlaceholderImage, catalog.ImageOrPlaceholder("   "))
	assert.Equal(t, "/products/oil.png", catalog.ImageOrPlaceholder("/products/oil.png"))
}
