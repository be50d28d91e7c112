// Copyright (c) 2026 Super 3000. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog_test

import (
	"github.com/taibuivan/super3000/internal/catalog"
	"github.com/taibuivan/super3000/internal/i18n"
)

func text(arabic, english string) catalog.Text {
	return catalog.Text{i18n.Arabic: arabic, i18n.English: english}
}

// fixture returns a small catalogue with one dangling category reference and
// a duplicated make to exercise first-wins lookups.
func fixture() catalog.Data {
	return catalog.Data{
		Categories: []catalog.Category{
			{ID: "filters", Name: text("فلاتر", "Filters")},
			{ID: "oils", Name: text("زيوت", "Oils")},
			{ID: "unnamed", Name: text("", "")},
		},
		Cars: []catalog.CarMake{
			{Make: "Kia", Models: []catalog.CarModel{
				{Model: "Rio", Years: []int{2013, 2012}},
				{Model: "Cerato", Years: []int{2018}},
			}},
			{Make: "Toyota", Models: []catalog.CarModel{
				{Model: "Corolla", Years: []int{2015, 2016, 2018}},
			}},
			{Make: "Kia", Models: []catalog.CarModel{
				{Model: "Sportage", Years: []int{2020}},
			}},
		},
		Products: []catalog.Product{
			{
				ID:       "p-1",
				Name:     text("فلتر زيت", "Premium Oil Filter"),
				Category: "filters",
				Variants: []catalog.Variant{{Origin: "Korean", SKU: "OF-KR"}},
				CompatibleCars: []catalog.CompatibleCar{
					{Make: "Kia", Model: "Rio", Years: []int{2012, 2013}},
				},
			},
			{
				ID:       "p-2",
				Name:     text("زيت محرك", "Engine Oil"),
				Category: "ghost-cat",
				Variants: []catalog.Variant{{Origin: "Thai", SKU: "EO-TH"}},
			},
		},
	}
}
