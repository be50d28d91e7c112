// Copyright (c) 2026 Super 3000. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package filter_test

import (
	"github.com/taibuivan/super3000/internal/catalog"
	"github.com/taibuivan/super3000/internal/i18n"
)

func text(arabic, english string) catalog.Text {
	return catalog.Text{i18n.Arabic: arabic, i18n.English: english}
}

func fixture() *catalog.Index {
	return catalog.NewIndex(catalog.Data{
		Categories: []catalog.Category{
			{ID: "filters", Name: text("فلاتر", "Filters")},
			{ID: "oils", Name: text("زيوت", "Oils")},
		},
		Cars: []catalog.CarMake{
			{Make: "Kia", Models: []catalog.CarModel{
				{Model: "Rio", Years: []int{2012, 2013}},
				{Model: "Cerato", Years: []int{2018}},
			}},
			{Make: "Toyota", Models: []catalog.CarModel{
				{Model: "Corolla", Years: []int{2015, 2016, 2018}},
			}},
			{Make: "Kia", Models: []catalog.CarModel{
				{Model: "Picanto", Years: []int{2011}},
			}},
		},
		Products: []catalog.Product{
			{
				ID:       "A",
				Name:     text("فلتر زيت ممتاز", "Premium Oil Filter"),
				Category: "filters",
				Variants: []catalog.Variant{{Origin: "Korean", SKU: "A-KR"}},
				CompatibleCars: []catalog.CompatibleCar{
					{Make: "Kia", Model: "Rio", Years: []int{2012, 2013}},
				},
			},
			{
				ID:       "B",
				Name:     text("زيت تروس", "Gear Lubricant 75W-90"),
				Category: "oils",
				Variants: []catalog.Variant{{Origin: "Thai", SKU: "B-TH"}, {Origin: "Chinese", SKU: "B-CN"}},
				CompatibleCars: []catalog.CompatibleCar{
					{Make: "Toyota", Model: "Corolla", Years: []int{2015, 2016, 2018}},
				},
			},
			{
				ID:       "C",
				Name:     text("تيل فرامل", "Brake Pad"),
				Category: "ghost-cat",
				Variants: []catalog.Variant{{Origin: "Chinese", SKU: "C-CN"}},
				CompatibleCars: []catalog.CompatibleCar{
					{Make: "Hyundai", Model: "Elantra", Years: []int{2016}},
				},
			},
		},
	})
}

func ids(products []catalog.Product) []string {
	result := make([]string, 0, len(products))
	for _, product := range products {
		result = append(result, product.ID)
	}
	return result
}
