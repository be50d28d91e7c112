// Copyright (c) 2026 Super 3000. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"github.com/taibuivan/super3000/internal/i18n"
)

// # Index

// Index is the immutable, load-once view of the catalogue with constant-time
// category and make/model lookups.
//
// # Concurrency
//
// An Index is never mutated after [NewIndex] returns, so it is safe to share
// between any number of goroutines. Accessors return deep copies, so nothing a
// caller does to a returned value reaches the index.
type Index struct {
	categories []Category
	cars       []CarMake
	products   []Product

	categoryByID map[string]int
	makeByName   map[string]int
	yearsByModel map[modelKey][]int
	productByID  map[string]int
}

// modelKey addresses one model of one make.
type modelKey struct {
	make  string
	model string
}

// NewIndex builds an [Index] from raw collections.
//
// Construction never fails. When an id or name repeats, the first occurrence
// wins for lookups; every entry is still retained in list order.
func NewIndex(data Data) *Index {
	index := &Index{
		categories:   cloneAll(data.Categories, Category.Clone),
		cars:         cloneAll(data.Cars, CarMake.Clone),
		products:     cloneAll(data.Products, Product.Clone),
		categoryByID: make(map[string]int, len(data.Categories)),
		makeByName:   make(map[string]int, len(data.Cars)),
		yearsByModel: make(map[modelKey][]int),
		productByID:  make(map[string]int, len(data.Products)),
	}

	for i, category := range index.categories {
		if _, seen := index.categoryByID[category.ID]; !seen {
			index.categoryByID[category.ID] = i
		}
	}

	for i, car := range index.cars {
		if _, seen := index.makeByName[car.Make]; seen {
			continue
		}
		index.makeByName[car.Make] = i

		for _, model := range car.Models {
			key := modelKey{make: car.Make, model: model.Model}
			if _, seen := index.yearsByModel[key]; !seen {
				index.yearsByModel[key] = model.Years
			}
		}
	}

	for i, product := range index.products {
		if _, seen := index.productByID[product.ID]; !seen {
			index.productByID[product.ID] = i
		}
	}

	return index
}

// # Categories

// CategoryName returns the localized name of category id, or id itself when
// the category is unknown or has no name in locale.
func (index *Index) CategoryName(id string, locale i18n.Locale) string {
	position, ok := index.categoryByID[id]
	if !ok {
		return id
	}

	if name := index.categories[position].Name.In(locale); name != "" {
		return name
	}
	return id
}

// Categories returns all categories in source order.
func (index *Index) Categories() []Category {
	return cloneAll(index.categories, Category.Clone)
}

// Category returns the category with the given id.
func (index *Index) Category(id string) (Category, bool) {
	position, ok := index.categoryByID[id]
	if !ok {
		return Category{}, false
	}
	return index.categories[position].Clone(), true
}

// # Vehicle Taxonomy

// Makes returns every make name in source order.
func (index *Index) Makes() []string {
	makes := make([]string, 0, len(index.cars))
	for _, car := range index.cars {
		makes = append(makes, car.Make)
	}
	return makes
}

// ModelsFor returns the model names of make in catalogue order. An empty or
// unknown make yields an empty list.
func (index *Index) ModelsFor(makeName string) []string {
	car, ok := index.carMake(makeName)
	if !ok {
		return []string{}
	}

	models := make([]string, 0, len(car.Models))
	for _, model := range car.Models {
		models = append(models, model.Model)
	}
	return models
}

// YearsFor returns the years of the make/model pair in catalogue order. An
// empty or unknown make or model yields an empty list.
func (index *Index) YearsFor(makeName, model string) []int {
	if makeName == "" || model == "" {
		return []int{}
	}

	years, ok := index.yearsByModel[modelKey{make: makeName, model: model}]
	if !ok {
		return []int{}
	}
	return append([]int{}, years...)
}

// carMake resolves a make name to its taxonomy entry.
func (index *Index) carMake(name string) (CarMake, bool) {
	if name == "" {
		return CarMake{}, false
	}

	position, ok := index.makeByName[name]
	if !ok {
		return CarMake{}, false
	}
	return index.cars[position], true
}

// # Products

// Products returns every product in catalogue order.
func (index *Index) Products() []Product {
	return cloneAll(index.products, Product.Clone)
}

// Product returns the product with the given id.
func (index *Index) Product(id string) (Product, bool) {
	position, ok := index.productByID[id]
	if !ok {
		return Product{}, false
	}
	return index.products[position].Clone(), true
}

// Len returns the number of products.
func (index *Index) Len() int {
	return len(index.products)
}

// cloneAll deep-copies every element of items. A nil input stays nil.
func cloneAll[T any](items []T, clone func(T) T) []T {
	if items == nil {
		return nil
	}

	out := make([]T, len(items))
	for i, item := range items {
		out[i] = clone(item)
	}
	return out
}
