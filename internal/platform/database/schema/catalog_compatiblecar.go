package schema

// CatalogCompatibleCarTable represents the 'catalog.compatiblecar' table
type CatalogCompatibleCarTable struct {
	Table     string
	ProductID string
	Make      string
	Model     string
	Years     string
	Position  string
}

// CatalogCompatibleCar is the schema definition for catalog.compatiblecar
var CatalogCompatibleCar = CatalogCompatibleCarTable{
	Table:     "catalog.compatiblecar",
	ProductID: "productid",
	Make:      "make",
	Model:     "model",
	Years:     "years",
	Position:  "position",
}

func (t CatalogCompatibleCarTable) Columns() []string {
	return []string{t.ProductID, t.Make, t.Model, t.Years, t.Position}
}
