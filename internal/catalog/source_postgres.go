// Copyright (c) 2026 Super 3000. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/super3000/internal/platform/database/schema"
)

// PostgresSource reads the catalogue from the catalog.* tables.
//
// Rows are read in their stored position order so that the resulting [Index]
// preserves the same catalogue order as the file source.
type PostgresSource struct {
	db *pgxpool.Pool
}

// NewPostgresSource creates a [PostgresSource] backed by pool.
func NewPostgresSource(pool *pgxpool.Pool) *PostgresSource {
	return &PostgresSource{db: pool}
}

// Load implements [Source].
func (source *PostgresSource) Load(ctx context.Context) (Data, error) {
	categories, err := source.loadCategories(ctx)
	if err != nil {
		return Data{}, err
	}

	cars, err := source.loadCars(ctx)
	if err != nil {
		return Data{}, err
	}

	products, err := source.loadProducts(ctx)
	if err != nil {
		return Data{}, err
	}

	return Data{Categories: categories, Cars: cars, Products: products}, nil
}

// # Categories

func (source *PostgresSource) loadCategories(ctx context.Context) ([]Category, error) {
	query := fmt.Sprintf(`SELECT %s, %s FROM %s ORDER BY %s ASC`,
		schema.CatalogCategory.ID, schema.CatalogCategory.Name,
		schema.CatalogCategory.Table, schema.CatalogCategory.Position)

	rows, err := source.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("catalog: list categories: %w", err)
	}
	defer rows.Close()

	categories := make([]Category, 0)
	for rows.Next() {
		category := Category{}
		if err := rows.Scan(&category.ID, &category.Name); err != nil {
			return nil, fmt.Errorf("catalog: scan category: %w", err)
		}
		categories = append(categories, category)
	}

	return categories, rows.Err()
}

// # Vehicle Taxonomy

func (source *PostgresSource) loadCars(ctx context.Context) ([]CarMake, error) {
	makeQuery := fmt.Sprintf(`SELECT %s FROM %s ORDER BY %s ASC`,
		schema.CatalogCarMake.Make, schema.CatalogCarMake.Table, schema.CatalogCarMake.Position)
	modelQuery := fmt.Sprintf(`SELECT %s, %s, %s FROM %s ORDER BY %s ASC`,
		schema.CatalogCarModel.Make, schema.CatalogCarModel.Model, schema.CatalogCarModel.Years,
		schema.CatalogCarModel.Table, schema.CatalogCarModel.Position)

	makeRows, err := source.db.Query(ctx, makeQuery)
	if err != nil {
		return nil, fmt.Errorf("catalog: list makes: %w", err)
	}
	defer makeRows.Close()

	cars := make([]CarMake, 0)
	makePosition := make(map[string]int)

	for makeRows.Next() {
		car := CarMake{Models: make([]CarModel, 0)}
		if err := makeRows.Scan(&car.Make); err != nil {
			return nil, fmt.Errorf("catalog: scan make: %w", err)
		}
		makePosition[car.Make] = len(cars)
		cars = append(cars, car)
	}
	if err := makeRows.Err(); err != nil {
		return nil, fmt.Errorf("catalog: list makes: %w", err)
	}
	makeRows.Close()

	modelRows, err := source.db.Query(ctx, modelQuery)
	if err != nil {
		return nil, fmt.Errorf("catalog: list models: %w", err)
	}
	defer modelRows.Close()

	for modelRows.Next() {
		var (
			makeName string
			model    CarModel
			years    []int32
		)
		if err := modelRows.Scan(&makeName, &model.Model, &years); err != nil {
			return nil, fmt.Errorf("catalog: scan model: %w", err)
		}
		model.Years = widenYears(years)

		if position, ok := makePosition[makeName]; ok {
			cars[position].Models = append(cars[position].Models, model)
		}
	}

	return cars, modelRows.Err()
}

// # Products

func (source *PostgresSource) loadProducts(ctx context.Context) ([]Product, error) {
	productQuery := fmt.Sprintf(`SELECT %s FROM %s ORDER BY %s ASC`,
		strings.Join(schema.CatalogProduct.Columns()[:5], ", "),
		schema.CatalogProduct.Table, schema.CatalogProduct.Position)

	rows, err := source.db.Query(ctx, productQuery)
	if err != nil {
		return nil, fmt.Errorf("catalog: list products: %w", err)
	}
	defer rows.Close()

	products := make([]Product, 0)
	productPosition := make(map[string]int)

	for rows.Next() {
		product := Product{Variants: make([]Variant, 0), CompatibleCars: make([]CompatibleCar, 0)}
		if err := rows.Scan(&product.ID, &product.Name, &product.Description, &product.Category, &product.Image); err != nil {
			return nil, fmt.Errorf("catalog: scan product: %w", err)
		}
		productPosition[product.ID] = len(products)
		products = append(products, product)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("catalog: list products: %w", err)
	}
	rows.Close()

	if err := source.attachVariants(ctx, products, productPosition); err != nil {
		return nil, err
	}
	if err := source.attachCompatibleCars(ctx, products, productPosition); err != nil {
		return nil, err
	}

	return products, nil
}

func (source *PostgresSource) attachVariants(ctx context.Context, products []Product, position map[string]int) error {
	query := fmt.Sprintf(`SELECT %s, %s, %s, %s FROM %s ORDER BY %s ASC, %s ASC`,
		schema.CatalogProductVariant.ProductID, schema.CatalogProductVariant.Origin,
		schema.CatalogProductVariant.SKU, schema.CatalogProductVariant.Note,
		schema.CatalogProductVariant.Table,
		schema.CatalogProductVariant.ProductID, schema.CatalogProductVariant.Position)

	rows, err := source.db.Query(ctx, query)
	if err != nil {
		return fmt.Errorf("catalog: list variants: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			productID string
			variant   Variant
		)
		if err := rows.Scan(&productID, &variant.Origin, &variant.SKU, &variant.Note); err != nil {
			return fmt.Errorf("catalog: scan variant: %w", err)
		}
		if i, ok := position[productID]; ok {
			products[i].Variants = append(products[i].Variants, variant)
		}
	}

	return rows.Err()
}

func (source *PostgresSource) attachCompatibleCars(ctx context.Context, products []Product, position map[string]int) error {
	query := fmt.Sprintf(`SELECT %s, %s, %s, %s FROM %s ORDER BY %s ASC, %s ASC`,
		schema.CatalogCompatibleCar.ProductID, schema.CatalogCompatibleCar.Make,
		schema.CatalogCompatibleCar.Model, schema.CatalogCompatibleCar.Years,
		schema.CatalogCompatibleCar.Table,
		schema.CatalogCompatibleCar.ProductID, schema.CatalogCompatibleCar.Position)

	rows, err := source.db.Query(ctx, query)
	if err != nil {
		return fmt.Errorf("catalog: list compatible cars: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			productID string
			car       CompatibleCar
			years     []int32
		)
		if err := rows.Scan(&productID, &car.Make, &car.Model, &years); err != nil {
			return fmt.Errorf("catalog: scan compatible car: %w", err)
		}
		car.Years = widenYears(years)

		if i, ok := position[productID]; ok {
			products[i].CompatibleCars = append(products[i].CompatibleCars, car)
		}
	}

	return rows.Err()
}

// # Import

// ReplacePostgres overwrites the catalog.* tables with data in one
// transaction. Positions are taken from slice order.
func ReplacePostgres(ctx context.Context, pool *pgxpool.Pool, data Data) error {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("catalog: begin import: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	truncate := fmt.Sprintf(`TRUNCATE %s, %s, %s, %s, %s, %s`,
		schema.CatalogCompatibleCar.Table, schema.CatalogProductVariant.Table, schema.CatalogProduct.Table,
		schema.CatalogCarModel.Table, schema.CatalogCarMake.Table, schema.CatalogCategory.Table)
	if _, err := tx.Exec(ctx, truncate); err != nil {
		return fmt.Errorf("catalog: truncate: %w", err)
	}

	batch := &pgx.Batch{}
	queueCategories(batch, data.Categories)
	queueCars(batch, data.Cars)
	queueProducts(batch, data.Products)

	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("catalog: import rows: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("catalog: commit import: %w", err)
	}
	return nil
}

func queueCategories(batch *pgx.Batch, categories []Category) {
	insert := insertStatement(schema.CatalogCategory.Table, schema.CatalogCategory.Columns())
	for i, category := range categories {
		batch.Queue(insert, category.ID, category.Name, i)
	}
}

func queueCars(batch *pgx.Batch, cars []CarMake) {
	insertMake := insertStatement(schema.CatalogCarMake.Table, schema.CatalogCarMake.Columns())
	insertModel := insertStatement(schema.CatalogCarModel.Table, schema.CatalogCarModel.Columns())

	for i, car := range cars {
		batch.Queue(insertMake, car.Make, i)
		for j, model := range car.Models {
			batch.Queue(insertModel, car.Make, model.Model, narrowYears(model.Years), j)
		}
	}
}

func queueProducts(batch *pgx.Batch, products []Product) {
	insertProduct := insertStatement(schema.CatalogProduct.Table, schema.CatalogProduct.Columns())
	insertVariant := insertStatement(schema.CatalogProductVariant.Table, schema.CatalogProductVariant.Columns())
	insertCar := insertStatement(schema.CatalogCompatibleCar.Table, schema.CatalogCompatibleCar.Columns())

	for i, product := range products {
		batch.Queue(insertProduct, product.ID, product.Name, product.Description, product.Category, product.Image, i)
		for j, variant := range product.Variants {
			batch.Queue(insertVariant, product.ID, variant.Origin, variant.SKU, variant.Note, j)
		}
		for j, car := range product.CompatibleCars {
			batch.Queue(insertCar, product.ID, car.Make, car.Model, narrowYears(car.Years), j)
		}
	}
}

// insertStatement builds "INSERT INTO table (a, b) VALUES ($1, $2)".
func insertStatement(table string, columns []string) string {
	placeholders := make([]string, len(columns))
	for i := range columns {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}
	return fmt.Sprintf(`INSERT INTO %s (%s) VALUES (%s)`,
		table, strings.Join(columns, ", "), strings.Join(placeholders, ", "))
}

func widenYears(years []int32) []int {
	widened := make([]int, len(years))
	for i, year := range years {
		widened[i] = int(year)
	}
	return widened
}

func narrowYears(years []int) []int32 {
	narrowed := make([]int32, len(years))
	for i, year := range years {
		narrowed[i] = int32(year)
	}
	return narrowed
}
