// Copyright (c) 2026 Super 3000. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// PlaceholderImage is shown for products without an image.
const PlaceholderImage = "/products/placeholder.png"

// # Display Formatting

// FormatYears renders a year set as a span for display.
//
// The span is purely visual: {2015, 2016, 2018} renders as "2015-2018" even
// though 2017 is not supported. An empty set renders as "".
func FormatYears(years []int) string {
	if len(years) == 0 {
		return ""
	}

	sorted := slices.Clone(years)
	slices.Sort(sorted)

	if len(sorted) == 1 {
		return strconv.Itoa(sorted[0])
	}
	return fmt.Sprintf("%d-%d", sorted[0], sorted[len(sorted)-1])
}

// CompatibilityLine renders a compatibility entry as "Make Model 2015-2018".
func CompatibilityLine(car CompatibleCar) string {
	return strings.TrimSpace(fmt.Sprintf("%s %s %s", car.Make, car.Model, FormatYears(car.Years)))
}

// ImageOrPlaceholder returns the product image, or [PlaceholderImage] when it
// is empty or blank.
func ImageOrPlaceholder(image string) string {
	if strings.TrimSpace(image) == "" {
		return PlaceholderImage
	}
	return image
}
