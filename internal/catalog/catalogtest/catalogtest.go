// Copyright (c) 2026 Super 3000. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package catalogtest provides a small, fixed catalogue for tests of the
// packages built on [catalog.Index].
//
// Products:
//
//   - "A" Premium Oil Filter: filters, Korean, Kia Rio 2012/2013.
//   - "B" Gear Lubricant 75W-90: oils, Thai and Chinese, Toyota Corolla 2015/2016/2018.
//   - "C" Brake Pad: unknown category "ghost-cat", Chinese, Hyundai Elantra 2016, no image.
package catalogtest

import (
	"github.com/taibuivan/super3000/internal/catalog"
	"github.com/taibuivan/super3000/internal/i18n"
)

// Text builds a two-locale [catalog.Text].
func Text(arabic, english string) catalog.Text {
	return catalog.Text{i18n.Arabic: arabic, i18n.English: english}
}

// Data returns a fresh copy of the test catalogue.
func Data() catalog.Data {
	return catalog.Data{
		Categories: []catalog.Category{
			{ID: "filters", Name: Text("فلاتر", "Filters")},
			{ID: "oils", Name: Text("زيوت", "Oils")},
		},
		Cars: []catalog.CarMake{
			{Make: "Kia", Models: []catalog.CarModel{
				{Model: "Rio", Years: []int{2012, 2013}},
				{Model: "Cerato", Years: []int{2018}},
			}},
			{Make: "Toyota", Models: []catalog.CarModel{
				{Model: "Corolla", Years: []int{2015, 2016, 2018}},
			}},
			{Make: "Hyundai", Models: []catalog.CarModel{
				{Model: "Elantra", Years: []int{2016}},
			}},
		},
		Products: []catalog.Product{
			{
				ID:          "A",
				Name:        Text("فلتر زيت ممتاز", "Premium Oil Filter"),
				Description: Text("فلتر زيت عالي الكفاءة", "High efficiency oil filter"),
				Category:    "filters",
				Image:       "/products/oil-filter.png",
				Variants: []catalog.Variant{
					{Origin: i18n.OriginKorean, SKU: "A-KR", Note: Text("أصلي", "Genuine")},
				},
				CompatibleCars: []catalog.CompatibleCar{
					{Make: "Kia", Model: "Rio", Years: []int{2013, 2012}},
				},
			},
			{
				ID:          "B",
				Name:        Text("زيت تروس", "Gear Lubricant 75W-90"),
				Description: Text("زيت تروس صناعي", "Synthetic gear oil"),
				Category:    "oils",
				Image:       "/products/gear-oil.png",
				Variants: []catalog.Variant{
					{Origin: i18n.OriginThai, SKU: "B-TH", Note: Text("تايلاندي", "Thai made")},
					{Origin: i18n.OriginChinese, SKU: "B-CN", Note: Text("اقتصادي", "Economy")},
				},
				CompatibleCars: []catalog.CompatibleCar{
					{Make: "Toyota", Model: "Corolla", Years: []int{2015, 2016, 2018}},
					{Make: "Kia", Model: "Cerato", Years: []int{2018}},
					{Make: "Hyundai", Model: "Elantra", Years: []int{2016}},
				},
			},
			{
				ID:       "C",
				Name:     Text("تيل فرامل", "Brake Pad"),
				Category: "ghost-cat",
				Variants: []catalog.Variant{
					{Origin: i18n.OriginChinese, SKU: "C-CN"},
				},
				CompatibleCars: []catalog.CompatibleCar{
					{Make: "Hyundai", Model: "Elantra", Years: []int{2016}},
				},
			},
		},
	}
}

// Index returns an index over [Data].
func Index() *catalog.Index {
	return catalog.NewIndex(Data())
}
