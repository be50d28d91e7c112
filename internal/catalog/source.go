// Copyright (c) 2026 Super 3000. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"context"

	"github.com/taibuivan/super3000/internal/i18n"
)

// # Catalogue Sources

// Source delivers the three raw catalogue collections.
type Source interface {
	/*
		Load reads categories, cars, and products.

		Parameters:
		  - ctx: context.Context

		Returns:
		  - Data: The raw collections in source order
		  - error: I/O or decoding failures
	*/
	Load(ctx context.Context) (Data, error)
}

// Load reads data from source and builds an [Index] from it.
func Load(ctx context.Context, source Source) (*Index, error) {
	data, err := source.Load(ctx)
	if err != nil {
		return nil, err
	}
	return NewIndex(data), nil
}

// # Record Format
//
// Records mirror the storefront's data files, which carry one field per
// locale (name_ar, name_en). They are folded into [Text] on decode.

type categoryRecord struct {
	ID     string `json:"id" yaml:"id"`
	NameAR string `json:"name_ar" yaml:"name_ar"`
	NameEN string `json:"name_en" yaml:"name_en"`
}

type carModelRecord struct {
	Model string `json:"model" yaml:"model"`
	Years []int  `json:"years" yaml:"years"`
}

type carMakeRecord struct {
	Make   string           `json:"make" yaml:"make"`
	Models []carModelRecord `json:"models" yaml:"models"`
}

type variantRecord struct {
	Origin string `json:"origin" yaml:"origin"`
	SKU    string `json:"sku" yaml:"sku"`
	NoteAR string `json:"note_ar" yaml:"note_ar"`
	NoteEN string `json:"note_en" yaml:"note_en"`
}

type compatibleCarRecord struct {
	Make  string `json:"make" yaml:"make"`
	Model string `json:"model" yaml:"model"`
	Years []int  `json:"years" yaml:"years"`
}

type productRecord struct {
	ID             string                `json:"id" yaml:"id"`
	NameAR         string                `json:"name_ar" yaml:"name_ar"`
	NameEN         string                `json:"name_en" yaml:"name_en"`
	Category       string                `json:"category" yaml:"category"`
	Image          string                `json:"image,omitempty" yaml:"image,omitempty"`
	DescriptionAR  string                `json:"description_ar" yaml:"description_ar"`
	DescriptionEN  string                `json:"description_en" yaml:"description_en"`
	Variants       []variantRecord       `json:"variants" yaml:"variants"`
	CompatibleCars []compatibleCarRecord `json:"compatibleCars" yaml:"compatibleCars"`
}

// localized folds per-locale fields into a [Text].
func localized(arabic, english string) Text {
	return Text{i18n.Arabic: arabic, i18n.English: english}
}

func (r categoryRecord) toCategory() Category {
	return Category{ID: r.ID, Name: localized(r.NameAR, r.NameEN)}
}

func (r carMakeRecord) toCarMake() CarMake {
	car := CarMake{Make: r.Make, Models: make([]CarModel, 0, len(r.Models))}
	for _, model := range r.Models {
		car.Models = append(car.Models, CarModel{Model: model.Model, Years: model.Years})
	}
	return car
}

func (r productRecord) toProduct() Product {
	product := Product{
		ID:             r.ID,
		Name:           localized(r.NameAR, r.NameEN),
		Description:    localized(r.DescriptionAR, r.DescriptionEN),
		Category:       r.Category,
		Image:          r.Image,
		Variants:       make([]Variant, 0, len(r.Variants)),
		CompatibleCars: make([]CompatibleCar, 0, len(r.CompatibleCars)),
	}

	for _, variant := range r.Variants {
		product.Variants = append(product.Variants, Variant{
			Origin: variant.Origin,
			SKU:    variant.SKU,
			Note:   localized(variant.NoteAR, variant.NoteEN),
		})
	}

	for _, car := range r.CompatibleCars {
		product.CompatibleCars = append(product.CompatibleCars, CompatibleCar{
			Make:  car.Make,
			Model: car.Model,
			Years: car.Years,
		})
	}

	return product
}
