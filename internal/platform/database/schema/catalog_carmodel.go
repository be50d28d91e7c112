package schema

// CatalogCarModelTable represents the 'catalog.carmodel' table
type CatalogCarModelTable struct {
	Table    string
	Make     string
	Model    string
	Years    string
	Position string
}

// CatalogCarModel is the schema definition for catalog.carmodel
var CatalogCarModel = CatalogCarModelTable{
	Table:    "catalog.carmodel",
	Make:     "make",
	Model:    "model",
	Years:    "years",
	Position: "position",
}

func (t CatalogCarModelTable) Columns() []string {
	return []string{t.Make, t.Model, t.Years, t.Position}
}
