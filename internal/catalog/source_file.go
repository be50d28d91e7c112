// Copyright (c) 2026 Super 3000. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Base names of the catalogue files inside a [FileSource] directory.
const (
	CategoriesFile = "categories"
	CarsFile       = "cars"
	ProductsFile   = "products"
)

// fileExtensions are tried in order for every base name.
var fileExtensions = []string{".json", ".yaml", ".yml"}

// FileSource reads the catalogue from JSON or YAML files in one directory.
type FileSource struct {
	dir string
}

// NewFileSource creates a [FileSource] rooted at dir.
func NewFileSource(dir string) *FileSource {
	return &FileSource{dir: dir}
}

// Load implements [Source].
func (source *FileSource) Load(_ context.Context) (Data, error) {
	var (
		categories []categoryRecord
		cars       []carMakeRecord
		products   []productRecord
	)

	if err := source.decode(CategoriesFile, &categories); err != nil {
		return Data{}, err
	}
	if err := source.decode(CarsFile, &cars); err != nil {
		return Data{}, err
	}
	if err := source.decode(ProductsFile, &products); err != nil {
		return Data{}, err
	}

	data := Data{
		Categories: make([]Category, 0, len(categories)),
		Cars:       make([]CarMake, 0, len(cars)),
		Products:   make([]Product, 0, len(products)),
	}
	for _, record := range categories {
		data.Categories = append(data.Categories, record.toCategory())
	}
	for _, record := range cars {
		data.Cars = append(data.Cars, record.toCarMake())
	}
	for _, record := range products {
		data.Products = append(data.Products, record.toProduct())
	}

	return data, nil
}

// decode finds the first existing file for name and decodes it into target.
func (source *FileSource) decode(name string, target any) error {
	path, err := source.resolve(name)
	if err != nil {
		return err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("catalog: failed to read %s: %w", path, err)
	}

	switch filepath.Ext(path) {
	case ".json":
		err = json.Unmarshal(content, target)
	default:
		err = yaml.Unmarshal(content, target)
	}
	if err != nil {
		return fmt.Errorf("catalog: failed to decode %s: %w", path, err)
	}

	return nil
}

// resolve returns the path of the first existing file for name.
func (source *FileSource) resolve(name string) (string, error) {
	for _, extension := range fileExtensions {
		path := filepath.Join(source.dir, name+extension)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		} else if !errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("catalog: failed to stat %s: %w", path, err)
		}
	}
	return "", fmt.Errorf("catalog: no %s file (json, yaml) in %s", name, source.dir)
}
