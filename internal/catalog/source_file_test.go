// Copyright (c) 2026 Super 3000. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/super3000/internal/catalog"
	"github.com/taibuivan/super3000/internal/i18n"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
}

/*
TestFileSource_JSON loads the storefront's flat per-locale record format.
*/
func TestFileSource_JSON(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "categories.json", `[{"id":"filters","name_ar":"فلاتر","name_en":"Filters"}]`)
	writeFile(t, dir, "cars.json", `[{"make":"Kia","models":[{"model":"Rio","years":[2012,2013]}]}]`)
	writeFile(t, dir, "products.json", `[{
		"id":"A","name_ar":"فلتر","name_en":"Oil Filter","category":"filters",
		"description_ar":"وصف","description_en":"Spin-on filter",
		"variants":[{"origin":"Korean","sku":"A-KR","note_ar":"أصلي","note_en":"Genuine"}],
		"compatibleCars":[{"make":"Kia","model":"Rio","years":[2012,2013]}]
	}]`)

	index, err := catalog.Load(context.Background(), catalog.NewFileSource(dir))
	require.NoError(t, err)

	assert.Equal(t, "Filters", index.CategoryName("filters", i18n.English))
	assert.Equal(t, []int{2012, 2013}, index.YearsFor("Kia", "Rio"))

	product, ok := index.Product("A")
	require.True(t, ok)
	assert.Equal(t, "فلتر", product.Name.In(i18n.Arabic))
	assert.Equal(t, "Spin-on filter", product.Description.In(i18n.English))
	require.Len(t, product.Variants, 1)
	assert.Equal(t, "Genuine", product.Variants[0].Note.In(i18n.English))
	require.Len(t, product.CompatibleCars, 1)
	assert.Equal(t, "Rio", product.CompatibleCars[0].Model)
	assert.Empty(t, product.Image)
}

/*
TestFileSource_YAML verifies YAML files are accepted with the same field names.
*/
func TestFileSource_YAML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "categories.yaml", "- id: oils\n  name_ar: زيوت\n  name_en: Oils\n")
	writeFile(t, dir, "cars.yml", "- make: Toyota\n  models:\n    - model: Corolla\n      years: [2015, 2016, 2018]\n")
	writeFile(t, dir, "products.yaml", "- id: B\n  name_en: Engine Oil\n  category: oils\n  variants:\n    - origin: Thai\n      sku: B-TH\n")

	index, err := catalog.Load(context.Background(), catalog.NewFileSource(dir))
	require.NoError(t, err)

	assert.Equal(t, []string{"Toyota"}, index.Makes())
	assert.Equal(t, []int{2015, 2016, 2018}, index.YearsFor("Toyota", "Corolla"))

	product, ok := index.Product("B")
	require.True(t, ok)
	assert.True(t, product.HasOrigin("Thai"))
	assert.Empty(t, product.CompatibleCars)
}

/*
TestFileSource_Errors covers missing and malformed files.
*/
func TestFileSource_Errors(t *testing.T) {
	t.Run("missing_file", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "categories.json", `[]`)

		_, err := catalog.NewFileSource(dir).Load(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cars")
	})

	t.Run("malformed_json", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "categories.json", `[`)

		_, err := catalog.NewFileSource(dir).Load(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "decode")
	})
}

/*
TestFileSource_ShippedCatalogue keeps the bundled sample data loadable and
internally consistent.
*/
func TestFileSource_ShippedCatalogue(t *testing.T) {
	index, err := catalog.Load(context.Background(), catalog.NewFileSource(filepath.Join("..", "..", "data", "catalog")))
	require.NoError(t, err)
	require.NotZero(t, index.Len())

	makes := index.Makes()
	seen := make(map[string]bool, index.Len())
	for _, product := range index.Products() {
		assert.False(t, seen[product.ID], "duplicate product id %q", product.ID)
		seen[product.ID] = true

		_, ok := index.Category(product.Category)
		assert.True(t, ok, "product %q has unknown category %q", product.ID, product.Category)
		assert.NotEmpty(t, product.Name.In(i18n.Arabic), "product %q has no Arabic name", product.ID)
		assert.NotEmpty(t, product.Name.In(i18n.English), "product %q has no English name", product.ID)

		for _, car := range product.CompatibleCars {
			assert.Contains(t, makes, car.Make)
			assert.Contains(t, index.ModelsFor(car.Make), car.Model)
		}
	}
}
